package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nathanchatagny/Sokoban/internal/core"
	"github.com/nathanchatagny/Sokoban/internal/game"
	"github.com/nathanchatagny/Sokoban/internal/platform/tui"
	"github.com/nathanchatagny/Sokoban/internal/registry"
	"github.com/nathanchatagny/Sokoban/internal/storage"
)

var (
	flagConfig string
	flagLevel  int
	flagSelect bool
)

var playCmd = &cobra.Command{
	Use:   "play <pack>",
	Short: "Play a level pack",
	Long: `Start playing the specified level pack.

Controls:
  Arrows/WASD/HJKL - Move and push
  R                - Restart the current level
  Enter/Space      - Next level (after completing one)
  Esc/B            - Back
  Q/Ctrl+C         - Quit

Examples:
  sokoban play classic
  sokoban play tutorial --level 2
  sokoban play classic --select
  sokoban play classic --config ./my-theme.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML (theme and scoring)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-based, 0 = first)")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the starting level interactively")
}

func runPlay(cmd *cobra.Command, args []string) {
	packID := args[0]

	if !registry.Exists(packID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available packs.")
		os.Exit(1)
	}

	// Get terminal size early for the level selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	game.SetConfigPath(flagConfig)
	startLevel := flagLevel

	if flagSelect {
		// A throwaway instance provides the pack metadata for the selector
		probe, probeErr := registry.Create(packID)
		if probeErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", probeErr)
			os.Exit(1)
		}

		selection, selErr := tui.RunLevelSelector(probe.Title(), packID, probe.LevelIDs(), store, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if selection == nil {
			// User backed out
			if store != nil {
				store.Close()
			}
			return
		}
		startLevel = selection.Level
	}

	if startLevel > 0 {
		game.SetStartLevel(startLevel)
	}

	g, err := registry.Create(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// sokoban is a terminal Sokoban with bundled level packs, per-pack high
// scores, and an SSH server for remote play.
//
// Usage:
//
//	sokoban list              - List available level packs
//	sokoban play <pack>       - Play a level pack
//	sokoban serve             - Start SSH server for remote play
//	sokoban scores <pack>     - Show high scores for a pack
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.sokoban/scores.db)
//	--levels <dir>   - Load additional level packs from a directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathanchatagny/Sokoban/internal/game"
	"github.com/nathanchatagny/Sokoban/internal/game/level"
	"github.com/nathanchatagny/Sokoban/internal/registry"
)

var (
	// Global flags
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - Push boxes onto goals in your terminal",
	Long: `Sokoban is a terminal puzzle game: push every box onto a goal
using as few moves as you can. Fewer moves means a higher score.

Available commands:
  list     - Show all available level packs
  play     - Play a level pack
  serve    - Start SSH server for remote play
  scores   - View high scores and solved levels

Examples:
  sokoban list
  sokoban play classic
  sokoban play tutorial --level 2
  sokoban serve --ssh :2222
  sokoban scores classic`,
	PersistentPreRunE: loadExternalPacks,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level packs (one subdirectory of .xsb files per pack)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadExternalPacks registers packs from --levels alongside the builtins.
func loadExternalPacks(_ *cobra.Command, _ []string) error {
	if flagLevelsDir == "" {
		return nil
	}

	packs, err := level.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		return fmt.Errorf("loading level packs from %s: %w", flagLevelsDir, err)
	}
	for _, p := range packs {
		if registry.Exists(p.ID) {
			fmt.Fprintf(os.Stderr, "Warning: skipping pack %q, ID already registered\n", p.ID)
			continue
		}
		game.RegisterPack(p)
	}
	return nil
}

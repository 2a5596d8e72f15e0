package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nathanchatagny/Sokoban/internal/platform/tui"
	"github.com/nathanchatagny/Sokoban/internal/registry"
	"github.com/nathanchatagny/Sokoban/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores <pack>",
	Short: "Show high scores for a level pack",
	Long: `Display the top 10 play-through scores and the solved levels for
the specified pack.

Examples:
  sokoban scores classic
  sokoban scores tutorial
  sokoban scores classic --interactive`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a full-screen scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	packID := args[0]

	if !registry.Exists(packID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available packs.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	// Pack title comes from a throwaway instance
	g, err := registry.Create(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	scores, err := store.TopScores(packID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first high score!\n", packID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		fmt.Println()
		if highScore, hsErr := store.HighScore(packID); hsErr == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	// Per-level completion records
	completions, err := store.Completions(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving completions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Solved levels: %d/%d\n", len(completions), g.LevelCount())
	if len(completions) > 0 {
		fmt.Println()
		fmt.Printf("  %-8s  %-7s  %-7s  %s\n", "Level", "Moves", "Pushes", "Score")
		fmt.Printf("  %-8s  %-7s  %-7s  %s\n", "-----", "-----", "------", "-----")
		for _, c := range completions {
			fmt.Printf("  %-8s  %-7d  %-7d  %d\n", c.LevelID, c.Moves, c.Pushes, c.Score)
		}
	}
}

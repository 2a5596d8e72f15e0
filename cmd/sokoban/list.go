package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathanchatagny/Sokoban/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available level packs",
	Long:  `Shows every level pack registered, builtin and loaded via --levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Available level packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-7d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a pack.")
}

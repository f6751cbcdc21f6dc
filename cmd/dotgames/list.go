package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotgames/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games offered on the selection screen, in scroll order.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-*s  %s\n", "#", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-3s  %-*s  %-*s  %s\n", "-", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	// Print games
	for i, g := range games {
		fmt.Printf("  %-3d  %-*s  %-*s  %s\n", i, maxIDLen, g.ID, maxTitleLen, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'dotgames glyphs' to see each title screen.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shield-runner/internal/games/runner"
	"github.com/vovakirdan/shield-runner/internal/registry"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List all available skins",
	Long:  `Shows the skins the runner can wear, in picker order.`,
	Args:  cobra.NoArgs,
	Run:   runSkins,
}

func runSkins(_ *cobra.Command, _ []string) {
	skins := registry.List()

	if len(skins) == 0 {
		fmt.Println("No skins available.")
		return
	}

	fmt.Println("Available skins:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range skins {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "Key", maxIDLen, "ID", "Title")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxIDLen, "--", "-----")

	for i, s := range skins {
		title := s.Title
		if s.ID == runner.DefaultSkin {
			title += " (default)"
		}
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxIDLen, s.ID, title)
	}

	fmt.Println()
	fmt.Println("Pick one from the Skins screen in 'runner play'.")
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [venue]",
	Short: "Classify a venue as domestic or international",
	Long: `Classify a venue string with the configured lookup tables. This runs
locally and does not need the daemon.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	v := strings.Join(args, " ")
	result := cfg.Classifier().Classify(v)

	fmt.Printf("Venue:    %s\n", v)
	fmt.Printf("Class:    %s\n", result.Class)
	if result.Country != "" {
		fmt.Printf("Country:  %s\n", result.Country)
	}
	if result.NeedsAutomation() {
		fmt.Println("Venue-triggered tasks apply")
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export events and tasks",
}

var exportICSCmd = &cobra.Command{
	Use:   "ics",
	Short: "Export events and task deadlines as an iCalendar file",
	Args:  cobra.NoArgs,
	RunE:  runExportICS,
}

var exportOut string

func init() {
	exportCmd.AddCommand(exportICSCmd)

	exportICSCmd.Flags().StringVar(&viewEvent, "event", "", "Restrict to one event")
	exportICSCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}

func runExportICS(cmd *cobra.Command, args []string) error {
	body, err := apiGet(eventQuery("/calendar.ics"))
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err := os.Stdout.Write(body)
		return err
	}
	if err := os.WriteFile(exportOut, body, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Printf("Wrote %s\n", exportOut)
	return nil
}

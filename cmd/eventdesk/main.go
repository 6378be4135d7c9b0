package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ridaofranco/eventdesk/internal/config"
	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "eventdesk",
	Short: "eventdesk - production task automation for live events",
	Long: `eventdesk keeps the production checklist of every show in one place.
It derives logistics tasks from each event's venue, instantiates the standard
department checklists with criticality-based deadlines, and reports overdue
work and reminders.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		if err := dates.UseZone(cfg.Automation.Timezone); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}

		if apiAddr == "" {
			apiAddr = "http://" + cfg.Server.Listen
		}
		apiAddr = strings.TrimRight(apiAddr, "/")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	// No RunE - defaults to showing help when no subcommand is provided
}

var (
	apiAddr    string
	configPath string

	cfg    *config.Config
	logger = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api", "", "API server address (default: http://<server.listen>)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to config file")

	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

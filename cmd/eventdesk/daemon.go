package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ridaofranco/eventdesk/internal/automation"
	"github.com/ridaofranco/eventdesk/internal/dashboard"
	"github.com/ridaofranco/eventdesk/internal/store"
)

var (
	listenAddr string
	dbPath     string
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Start the eventdesk daemon",
	Long: `Starts the eventdesk daemon which serves the dashboard API.
Task derivation never runs on a timer; it runs when a client asks for it.`,
	RunE: runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address for the API server (default: server.listen from config)")
	daemonCmd.Flags().StringVar(&dbPath, "db", "", "Path to SQLite database (default: database.path from config)")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	if listenAddr == "" {
		listenAddr = cfg.Server.Listen
	}
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}

	logger.Info("starting eventdesk daemon",
		zap.String("db", dbPath),
		zap.String("timezone", cfg.Automation.Timezone))

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		logger.Info("closing database connection")
		if err := s.Close(); err != nil {
			logger.Error("database close error", zap.Error(err))
		}
	}()

	engine := automation.New(s, cfg.AutomationOptions(),
		automation.WithLogger(logger.Named("automation")),
		automation.WithClassifier(cfg.Classifier()))
	service := dashboard.NewService(s, engine,
		dashboard.WithLogger(logger.Named("dashboard")),
		dashboard.WithStaleAfter(cfg.StaleAfter()))
	server := dashboard.NewServer(service, listenAddr, logger.Named("http"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("daemon stopped with error", zap.Error(err))
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the LEADER leave-planner server, or runs one
  of the offline subcommands. Handles configuration, dependency
  injection, and graceful shutdown.

STARTUP SEQUENCE (serve):
  1. Load configuration (file + defaults via viper)
  2. Initialize zap logger at the configured level
  3. Load period/holiday tables (built-in or from a JSON file)
  4. Create API handler with dependencies
  5. Configure HTTP router
  6. Start server with graceful shutdown

SUBCOMMANDS:
  serve    Run the HTTP API server
  export   Write the busy-period ICS calendar for a year to a file

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with built-in tables
  ./leave-planner serve

  # Run with a custom table file and port
  ./leave-planner serve --config ./leave-planner.yaml

  # Export next year's busy periods
  ./leave-planner export --year 2027 --out ./LEADER_Busy_Periods_2027.ics

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Configuration loading
  - factory/defaults.go: Built-in tables
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leader/leave-planner/api"
	"github.com/leader/leave-planner/config"
	"github.com/leader/leave-planner/factory"
	"github.com/leader/leave-planner/planner"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "leave-planner",
		Short: "LEADER leave-request planning service",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(serveCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// =============================================================================
// SERVE
// =============================================================================

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := newLogger(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()

			tables, err := loadTables(cfg)
			if err != nil {
				return fmt.Errorf("load tables: %w", err)
			}

			handler, err := api.NewHandler(tables, logger)
			if err != nil {
				return fmt.Errorf("init handler: %w", err)
			}

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
				Handler:      api.NewRouter(handler, cfg.Server.AllowedOrigins),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				logger.Info("server starting",
					zap.Int("port", cfg.Server.Port),
					zap.Int("rules", len(tables.Rules)),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("server failed", zap.Error(err))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Info("shutting down server")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}

			logger.Info("server stopped")
			return nil
		},
	}
}

// =============================================================================
// EXPORT
// =============================================================================

func exportCmd() *cobra.Command {
	var year int
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the busy-period ICS calendar for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			tables, err := loadTables(cfg)
			if err != nil {
				return fmt.Errorf("load tables: %w", err)
			}
			classifier, err := tables.NewClassifier()
			if err != nil {
				return fmt.Errorf("build classifier: %w", err)
			}

			if year == 0 {
				year = time.Now().Year()
			}
			if out == "" {
				out = planner.ICSFileName(year)
			}

			payload, err := planner.BusyPeriodsICS(classifier, year)
			if err != nil {
				return fmt.Errorf("generate calendar: %w", err)
			}
			if err := os.WriteFile(out, payload, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Printf("Wrote %s (%d bytes)\n", out, len(payload))
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: LEADER_Busy_Periods_<year>.ics)")
	return cmd
}

// =============================================================================
// WIRING HELPERS
// =============================================================================

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// loadTables returns the built-in tables unless a table file is
// configured, in which case that file replaces them entirely.
func loadTables(cfg *config.Config) (*factory.Tables, error) {
	if cfg.Tables.File == "" {
		return factory.DefaultTables(), nil
	}
	raw, err := os.ReadFile(cfg.Tables.File)
	if err != nil {
		return nil, err
	}
	return factory.ParseTables(string(raw))
}

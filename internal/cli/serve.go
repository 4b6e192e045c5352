package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/fitdash/internal/app"
	"github.com/emiliopalmerini/fitdash/internal/dataset"
	"github.com/emiliopalmerini/fitdash/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the local web dashboard server.

Examples:
  fitdash serve                       # Serve exports from the working directory
  fitdash serve --port 3000           # Start on port 3000
  fitdash serve --data-dir ~/exports  # Read CSV exports from another directory`,
	RunE: runServe,
}

var (
	servePort    int
	serveDataDir string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from PORT env, 8080)")
	serveCmd.Flags().StringVarP(&serveDataDir, "data-dir", "d", "", "Directory holding the CSV exports (default from DATA_DIR env, \".\")")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = serveDataDir
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		cancel()
	}()

	loader := dataset.NewLoader(cfg.DataDir)
	server := web.NewServer(loader, cfg.Port, cfg.ShutdownTimeout, logger)
	return server.Start(ctx)
}

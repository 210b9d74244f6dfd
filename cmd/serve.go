package cmd

import (
	"fmt"

	"httpintake/internal/bootstrap"
	"httpintake/internal/config"
	"httpintake/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Accept connections and answer every request with a summary of it",
	Long: `Listen on HTTP_PORT and parse every request received. Limits, timeouts
and logging are read from the environment and from a .env file in the
working directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.MustLoad()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel(), cfg.LogJSON())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	app, err := bootstrap.New(cfg, log)
	if err != nil {
		log.Error("Failed to initialize application", zap.Error(err))
		return err
	}

	if err = app.Run(); err != nil {
		log.Error("Application stopped", zap.Error(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-box/cmd/config"
	migration "recipe-box/cmd/database/migrate"
	"recipe-box/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "Migrate the database before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if autoMigrate {
		if err := migration.Migrate(db); err != nil {
			return err
		}
	}

	app, err := config.NewApp(ctx, db, cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Info("listening", zap.String("port", cfg.AppPort))
		errCh <- app.Listen(":" + cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	utils.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

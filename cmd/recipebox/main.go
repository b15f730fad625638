// Command recipebox serves and maintains a recipe box.
package main

import (
	"errors"
	"fmt"
	"os"

	"recipe-box/cmd/config"
	"recipe-box/internal/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

// errReported signals that the command already wrote its failure to stdout.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "recipebox",
	Short: "Recipe box server and maintenance tool",
	Long: `recipebox stores recipes, imports them from JSON or from recipe web pages,
and tracks cooking sessions.

Examples:
  recipebox serve                    # Start the HTTP API
  recipebox migrate                  # Create or update the tables
  recipebox digest cookies.json      # Import one recipe from a file
  cat cookies.json | recipebox digest -
  recipebox hash-password s3cret     # Produce AUTH_PASSWORD_HASH`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// bootstrap loads the config, starts logging and connects to the database.
func bootstrap() (*utils.Config, *gorm.DB, error) {
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := utils.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, nil, err
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func main() {
	err := rootCmd.Execute()
	utils.SyncLogger()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		}
		os.Exit(1)
	}
}

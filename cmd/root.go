package cmd

import (
	"fmt"
	"os"

	"catalog-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is the directory LoadConfig reads the .env file from.
var configDir string

// RootCmd is the catalog-manager command.
var RootCmd = &cobra.Command{
	Use:   "catalog-manager",
	Short: "Browse catalog sources and manage marked records",
	Long: `Catalog Manager loads catalog sources written in a nested text format,
keeps track of marked records and imports or exports them as tabular files.

Configuration is read from .env in --config-dir and from the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}
	reportError(err)
	os.Exit(1)
}

// reportError prints err through a console logger, or plainly if none can be built.
func reportError(err error) {
	l, logErr := logger.New(&logger.Config{Level: "info", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	l.Error("Command failed", zap.Error(err))
	_ = l.Sync()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
}

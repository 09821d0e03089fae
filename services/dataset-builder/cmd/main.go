package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
	"github.com/errata-labs/errata-go/services/dataset-builder/configs"
)

var Version = "dev"

func main() {
	// Initialize logger
	pkg.InitLogger()
	logger := pkg.Logger
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := configs.Load(logger)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	rootCmd := &cobra.Command{
		Use:     "dataset-builder",
		Short:   "Errata dataset pipeline: collect, transform, and ingest API error patterns",
		Version: Version,
	}

	// Add subcommands
	rootCmd.AddCommand(collectCmd(logger, cfg))
	rootCmd.AddCommand(transformCmd(logger))
	rootCmd.AddCommand(ingestCmd(logger, cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

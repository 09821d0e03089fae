package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/pkg/helix"
	"github.com/errata-labs/errata-go/services/dataset-builder/configs"
	"github.com/errata-labs/errata-go/services/dataset-builder/internal/ingest"
)

func ingestCmd(logger *zap.Logger, cfg *configs.Config) *cobra.Command {
	var snapshot string
	var storeAddr string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Push a snapshot into the remote error-pattern store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshot == "" {
				snapshot = cfg.SnapshotPath
			}
			if storeAddr == "" {
				storeAddr = cfg.HelixAddr
			}
			if storeAddr == "" {
				return errors.New("store address required (--store or APP_HELIX_ADDR)")
			}

			// The snapshot is ingested as-is, duplicates included: decline-code
			// variants share a natural key but are distinct store nodes.
			records, err := dataset.ReadSnapshot(snapshot)
			if err != nil {
				return err
			}

			ingester := ingest.NewIngester(logger, helix.NewClient(storeAddr, logger))
			report, err := ingester.IngestAll(cmd.Context(), records)
			if err != nil {
				return err
			}

			logger.Info("ingest report",
				zap.String("snapshot", snapshot),
				zap.Int("processed", report.Processed),
				zap.Int("failed", report.Failed),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&snapshot, "snapshot", "s", "", "snapshot path (default from config)")
	cmd.Flags().StringVar(&storeAddr, "store", "", "store base URL (default from config)")

	return cmd
}

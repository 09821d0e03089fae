package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/services/dataset-builder/configs"
)

func collectCmd(logger *zap.Logger, cfg *configs.Config) *cobra.Command {
	var out string
	var date string

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Build the normalized error collection from the curated seed set and write the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = cfg.SnapshotPath
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			records, err := dataset.Build(date)
			if err != nil {
				return err
			}
			if err := dataset.WriteSnapshot(out, records); err != nil {
				return err
			}

			logger.Info("snapshot written",
				zap.String("path", out),
				zap.Int("records", len(records)),
				zap.String("date", date),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "snapshot output path (default from config)")
	cmd.Flags().StringVar(&date, "date", "", "verification date stamp, YYYY-MM-DD (default today)")

	return cmd
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/dataset"
)

func transformCmd(logger *zap.Logger) *cobra.Command {
	var out string
	var date string

	cmd := &cobra.Command{
		Use:   "transform [raw-file]",
		Short: "Parse a raw scraped error listing into classified records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read raw listing: %w", err)
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			records := dataset.TransformRaw(string(raw), date)
			if len(records) == 0 {
				logger.Warn("no records parsed from raw listing", zap.String("path", args[0]))
			}
			if err := dataset.WriteSnapshot(out, records); err != nil {
				return err
			}

			logger.Info("transformed records written",
				zap.String("in", args[0]),
				zap.String("out", out),
				zap.Int("records", len(records)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "./data/transformed-errors.json", "output path for classified records")
	cmd.Flags().StringVar(&date, "date", "", "verification date stamp, YYYY-MM-DD (default today)")

	return cmd
}

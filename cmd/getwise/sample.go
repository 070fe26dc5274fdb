package main

import (
	"encoding/json"
	"fmt"
	"time"

	"getwise/internal/services"

	"github.com/spf13/cobra"
)

func sampleCmd() *cobra.Command {
	var days int
	var seed int64
	var end string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a realistic sample snapshot as JSON",
		Long: `Print a generated snapshot in the shape --snapshot and the HTTP API accept.

  getwise sample --days 60 --seed 7 > snapshot.json
  getwise advise budget --snapshot snapshot.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			endDate := time.Now().UTC()
			if end != "" {
				parsed, err := time.Parse(time.DateOnly, end)
				if err != nil {
					return fmt.Errorf("invalid --end %q: expected YYYY-MM-DD", end)
				}
				endDate = parsed
			}
			if days < 1 || days > services.MaxSampleDays {
				return fmt.Errorf("--days must be between 1 and %d", services.MaxSampleDays)
			}

			snapshot := services.NewSnapshotGenerator(seed).Generate(days, endDate)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(snapshot)
		},
	}

	cmd.Flags().IntVar(&days, "days", services.DefaultSampleDays, "days of history to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed seed for a reproducible snapshot (0 draws a random seed)")
	cmd.Flags().StringVar(&end, "end", "", "last day of the history, YYYY-MM-DD (default today)")
	return cmd
}

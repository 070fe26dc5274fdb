package main

import (
	"fmt"
	"text/tabwriter"

	"getwise/internal/advisory"
	"getwise/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func guidelinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guidelines",
		Short: "List the category spending guidelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tIDEAL\tHIGH")
			for _, entry := range advisory.DefaultTables().Guidelines() {
				fmt.Fprintf(tw, "%s\t%s%%\t%s%%\n", guidelineLabel(entry), percent(entry.Guideline.Ideal), percent(entry.Guideline.High))
			}
			return tw.Flush()
		},
	}
}

func guidelineLabel(entry models.GuidelineEntry) string {
	if entry.Default {
		return entry.Category + " (default)"
	}
	return entry.Category
}

func percent(ratio float64) string {
	return decimal.NewFromFloat(ratio).Shift(2).String()
}

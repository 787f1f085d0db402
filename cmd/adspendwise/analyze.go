package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func analyzeAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze-all",
		Short: "Analyze every campaign without a recent analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(context.Background())

			analyses, err := a.analysisService.BulkAnalyze(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, an := range analyses {
				fmt.Fprintf(out, "%s\t%d\t%s\n", an.CampaignID, an.OverallScore, an.Source)
			}
			fmt.Fprintf(out, "Created %d new analyses\n", len(analyses))
			return nil
		},
	}
}

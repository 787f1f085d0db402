package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

func importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import campaigns from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open CSV file: %w", err)
			}
			defer file.Close()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(context.Background())

			campaigns, err := a.campaignService.Import(ctx, file)
			if err != nil {
				return fmt.Errorf("failed to import data: %w", err)
			}

			slog.Info("Data imported successfully", "file", args[0], "campaigns", len(campaigns))
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully uploaded %d campaigns\n", len(campaigns))
			return nil
		},
	}
}

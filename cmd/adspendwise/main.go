package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "adspendwise",
		Short: "AI ad campaign optimizer for startups",
		Long: `adspendwise stores advertising campaigns, computes their KPIs and asks an
AI model for optimization advice.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding config.yaml")

	rootCmd.AddCommand(
		serveCommand(),
		importCommand(),
		analyzeAllCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd := &cobra.Command{
		Use:   "fakedata",
		Short: "Simulate a confounded cohort with a known treatment effect",
		Long: `fakedata simulates an observational dataset whose causal structure is
known by construction: GPA drives GRE, both confounders lower the chance
of treatment, and the outcome mixes confounders, treatment, and noise.

Because the injected treatment effect is known, the dataset demonstrates
how a naive regression understates the effect and a confounder-adjusted
regression recovers it.`,
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newEstimateCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fakedata version %s\n", version)
		},
	}
}

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldorson/fakedata/pkg/cohort"
)

// addRunFlags registers the flags shared by every command that runs the
// pipeline. Flag values override the config file, which overrides the
// defaults.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("n", 0, "Cohort size (overrides config)")
	cmd.Flags().Uint64("seed", 0, "Random seed (overrides config)")
	cmd.Flags().String("config", "", "YAML config file overlaying the defaults")
}

// loadRunConfig resolves the effective configuration for a command.
func loadRunConfig(cmd *cobra.Command) (cohort.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cohort.LoadConfig(path)
	if err != nil {
		return cohort.Config{}, err
	}
	if cmd.Flags().Changed("n") {
		cfg.N, _ = cmd.Flags().GetInt("n")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return cohort.Config{}, err
	}
	return cfg, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the cohort and write the CSV artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			c, err := cohort.Generate(cfg)
			if err != nil {
				return err
			}

			if out == "-" {
				return c.WriteCSV(os.Stdout)
			}
			if err := c.SaveCSV(out); err != nil {
				return err
			}
			slog.Info("cohort written",
				slog.Int("n", c.N()),
				slog.Uint64("seed", cfg.Seed),
				slog.String("path", out),
			)
			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().String("out", "cohort.csv", "Output CSV path, or - for stdout")
	return cmd
}

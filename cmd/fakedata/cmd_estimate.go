package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ldorson/fakedata/pkg/cohort"
	"github.com/ldorson/fakedata/pkg/model"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Generate the cohort and compare naive vs adjusted effect estimates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}

			c, err := cohort.Generate(cfg)
			if err != nil {
				return err
			}
			slog.Info("cohort generated", slog.Int("n", c.N()), slog.Uint64("seed", cfg.Seed))

			cmp, err := model.CompareEffects(c, cfg.InjectedEffect())
			if err != nil {
				return err
			}

			fmt.Println(cmp.Naive.Summary())
			fmt.Println(cmp.Adjusted.Summary())

			naive, _ := cmp.Naive.Coef(cohort.ColTreatment)
			adjusted, _ := cmp.Adjusted.Coef(cohort.ColTreatment)
			fmt.Printf("injected effect:  %8.4f (nominal, before rescale)\n", cmp.Nominal)
			fmt.Printf("naive estimate:   %8.4f\n", naive.Value)
			fmt.Printf("adjusted estimate:%8.4f\n", adjusted.Value)
			return nil
		},
	}
	addRunFlags(cmd)
	return cmd
}

package model

import (
	"fmt"

	"github.com/ldorson/fakedata/pkg/cohort"
)

// EffectComparison pairs the naive and confounder-adjusted fits of the
// treatment effect over one cohort. The naive estimate absorbs the
// confounding bias; the adjusted estimate should land near the nominal
// injected coefficient. Near, not at: the outcome rescale linearly
// compresses the whole distribution, so the realized effect is
// proportional to the nominal one, not equal to it.
type EffectComparison struct {
	Naive    *Result
	Adjusted *Result
	Nominal  float64
}

// CompareEffects fits outcome ~ treatment and outcome ~ treatment + gpa +
// gre over the cohort. nominal is the injected treatment coefficient.
func CompareEffects(c *cohort.Cohort, nominal float64) (*EffectComparison, error) {
	naive, err := Fit("outcome", c.Outcomes(),
		[]string{cohort.ColTreatment}, c.Treatments())
	if err != nil {
		return nil, fmt.Errorf("naive fit: %w", err)
	}
	adjusted, err := Fit("outcome", c.Outcomes(),
		[]string{cohort.ColTreatment, cohort.ColGPA, cohort.ColGRE},
		c.Treatments(), c.GPAs(), c.GREs())
	if err != nil {
		return nil, fmt.Errorf("adjusted fit: %w", err)
	}
	return &EffectComparison{Naive: naive, Adjusted: adjusted, Nominal: nominal}, nil
}

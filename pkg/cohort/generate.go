package cohort

import (
	"github.com/ldorson/fakedata/pkg/rng"
)

// Generate runs the five-stage pipeline exactly once and returns the
// frozen cohort. The whole run either completes or fails; on error no
// cohort is returned. Given a fixed seed and configuration the result is
// identical across runs, including any failure.
func Generate(cfg Config) (*Cohort, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := rng.New(cfg.Seed)

	// Stage 1: independent baselines.
	cov := sampleCovariates(g, &cfg)
	cols := map[string][]float64{ColGPA: cov.gpa}

	// Stage 2: GRE from GPA plus raw GRE baseline, rescaled to its bound
	// and rounded to whole points.
	gre, err := derivation{name: "gre", stage: cfg.GRE, baseline: cov.greRaw, decimals: 0}.run(g, cols)
	if err != nil {
		return nil, err
	}
	cols[ColGRE] = gre

	// Stage 3: propensity from the confounders, then the realized
	// treatment as a per-unit Bernoulli draw.
	probability, err := derivation{name: "propensity", stage: cfg.Propensity, baseline: cov.treatmentRaw, decimals: -1}.run(g, cols)
	if err != nil {
		return nil, err
	}
	treatment := assignTreatment(g, probability)
	cols[ColTreatment] = treatment

	// Stage 4: outcome from confounders, treatment, and the raw baseline.
	outcome, err := derivation{name: "outcome", stage: cfg.Outcome, baseline: cov.outcomeRaw, decimals: 1}.run(g, cols)
	if err != nil {
		return nil, err
	}

	// Stage 5: project to the final schema, dropping scratch columns.
	units := make([]Unit, cfg.N)
	for i := range units {
		units[i] = Unit{
			ID:                   i + 1,
			GPA:                  cov.gpa[i],
			GRE:                  gre[i],
			TreatmentProbability: probability[i],
			Treatment:            treatment[i],
			Outcome:              outcome[i],
		}
	}
	return &Cohort{Units: units}, nil
}

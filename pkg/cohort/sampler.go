package cohort

import (
	"github.com/ldorson/fakedata/pkg/rng"
	"github.com/ldorson/fakedata/pkg/stats"
)

// covariates holds the stage-1 baseline columns. The four draws are
// mutually independent; every later dependence is introduced explicitly by
// the derivation stages.
type covariates struct {
	gpa          []float64
	greRaw       []float64
	treatmentRaw []float64
	outcomeRaw   []float64
}

// sampleCovariates draws the baselines in fixed order from the shared
// generator. Rounding is applied immediately; the raw gre, treatment, and
// outcome columns are scratch values overwritten by later stages.
func sampleCovariates(g *rng.Generator, cfg *Config) covariates {
	cov := covariates{
		gpa:          g.TruncNormal(cfg.N, cfg.GPA.Mean, cfg.GPA.SD, cfg.GPA.Lo, cfg.GPA.Hi),
		greRaw:       g.TruncNormal(cfg.N, cfg.GRERaw.Mean, cfg.GRERaw.SD, cfg.GRERaw.Lo, cfg.GRERaw.Hi),
		treatmentRaw: g.Bernoulli(cfg.N, cfg.TreatmentRawP),
		outcomeRaw:   g.Beta(cfg.N, cfg.OutcomeRaw.Alpha, cfg.OutcomeRaw.Beta),
	}
	for i := range cov.gpa {
		cov.gpa[i] = stats.RoundTo(cov.gpa[i], 2)
		cov.greRaw[i] = stats.RoundTo(cov.greRaw[i], 0)
		cov.outcomeRaw[i] = stats.RoundTo(cov.outcomeRaw[i]*100, 1)
	}
	return cov
}

package cohort

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Column names usable as predictors in derivation stages.
const (
	ColGPA       = "gpa"
	ColGRE       = "gre"
	ColTreatment = "treatment"
)

// Interval is a closed rescale target [Lo, Hi].
type Interval struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// TruncNormalParams parameterizes a truncated-normal baseline draw.
type TruncNormalParams struct {
	Mean float64 `yaml:"mean"`
	SD   float64 `yaml:"sd"`
	Lo   float64 `yaml:"lo"`
	Hi   float64 `yaml:"hi"`
}

// BetaParams parameterizes the skewed baseline-outcome draw.
type BetaParams struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

// Term is one predictor and its coefficient in a derivation stage.
// Terms are an ordered list so the combination sums in a fixed order and a
// fixed seed reproduces byte-identical output.
type Term struct {
	Column string  `yaml:"column"`
	Coef   float64 `yaml:"coef"`
}

// Stage configures one combine-then-rescale derivation: the linear terms,
// the additive Gaussian noise, and the target interval.
type Stage struct {
	Terms   []Term   `yaml:"terms"`
	NoiseSD float64  `yaml:"noise_sd"`
	Target  Interval `yaml:"target"`
}

// Config holds every parameter of a run. All values are plain parameters;
// a YAML file may overlay the defaults.
type Config struct {
	// N is the cohort size. Unit ids are exactly 1..N.
	N int `yaml:"n"`

	// Seed drives the single generator shared by all stages.
	Seed uint64 `yaml:"seed"`

	// Stage-1 independent baselines.
	GPA           TruncNormalParams `yaml:"gpa"`
	GRERaw        TruncNormalParams `yaml:"gre_raw"`
	TreatmentRawP float64           `yaml:"treatment_raw_p"`
	OutcomeRaw    BetaParams        `yaml:"outcome_raw"`

	// Derivation stages, in dependency order.
	GRE        Stage `yaml:"gre"`
	Propensity Stage `yaml:"propensity"`
	Outcome    Stage `yaml:"outcome"`
}

// DefaultConfig returns the reference scenario: 2500 units, seed 4660, a
// nominal injected treatment effect of 10 grade points.
func DefaultConfig() Config {
	return Config{
		N:             2500,
		Seed:          4660,
		GPA:           TruncNormalParams{Mean: 3.5, SD: 0.5, Lo: 1.5, Hi: 4.0},
		GRERaw:        TruncNormalParams{Mean: 150, SD: 7, Lo: 130, Hi: 170},
		TreatmentRawP: 0.5,
		OutcomeRaw:    BetaParams{Alpha: 7, Beta: 3},
		GRE: Stage{
			Terms:   []Term{{Column: ColGPA, Coef: 15}},
			NoiseSD: 5,
			Target:  Interval{Lo: 130, Hi: 170},
		},
		Propensity: Stage{
			Terms:   []Term{{Column: ColGPA, Coef: -1.5}, {Column: ColGRE, Coef: -0.3}},
			NoiseSD: 1,
			Target:  Interval{Lo: 0, Hi: 1},
		},
		Outcome: Stage{
			Terms:   []Term{{Column: ColGPA, Coef: 5}, {Column: ColGRE, Coef: 0.5}, {Column: ColTreatment, Coef: 10}},
			NoiseSD: 5,
			Target:  Interval{Lo: 0, Hi: 100},
		},
	}
}

// LoadConfig overlays a YAML file onto the defaults and validates the
// result. An empty path returns the validated defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// InjectedEffect returns the nominal treatment coefficient in the outcome
// stage, the "true" causal effect the pipeline injects.
func (c *Config) InjectedEffect() float64 {
	for _, t := range c.Outcome.Terms {
		if t.Column == ColTreatment {
			return t.Coef
		}
	}
	return 0
}

// Validate rejects configurations that cannot produce a run. It fails
// before any sampling so no partial state is ever created.
func (c *Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("cohort size must be positive, got %d: %w", c.N, ErrInvalidConfig)
	}
	if err := validateTruncNormal("gpa", c.GPA); err != nil {
		return err
	}
	if err := validateTruncNormal("gre_raw", c.GRERaw); err != nil {
		return err
	}
	if c.TreatmentRawP < 0 || c.TreatmentRawP > 1 {
		return fmt.Errorf("treatment_raw_p must be in [0, 1], got %g: %w", c.TreatmentRawP, ErrInvalidConfig)
	}
	if c.OutcomeRaw.Alpha <= 0 || c.OutcomeRaw.Beta <= 0 {
		return fmt.Errorf("outcome_raw shape parameters must be positive, got (%g, %g): %w",
			c.OutcomeRaw.Alpha, c.OutcomeRaw.Beta, ErrInvalidConfig)
	}

	stages := []struct {
		name    string
		stage   Stage
		allowed map[string]bool
	}{
		{"gre", c.GRE, map[string]bool{ColGPA: true}},
		{"propensity", c.Propensity, map[string]bool{ColGPA: true, ColGRE: true}},
		{"outcome", c.Outcome, map[string]bool{ColGPA: true, ColGRE: true, ColTreatment: true}},
	}
	for _, s := range stages {
		if s.stage.NoiseSD < 0 {
			return fmt.Errorf("%s noise sd must be non-negative, got %g: %w", s.name, s.stage.NoiseSD, ErrInvalidConfig)
		}
		if s.stage.Target.Lo >= s.stage.Target.Hi {
			return fmt.Errorf("%s target interval [%g, %g] must have lo < hi: %w",
				s.name, s.stage.Target.Lo, s.stage.Target.Hi, ErrInvalidConfig)
		}
		for _, t := range s.stage.Terms {
			if !s.allowed[t.Column] {
				return fmt.Errorf("%s stage cannot use column %q, only previously produced columns: %w",
					s.name, t.Column, ErrInvalidConfig)
			}
		}
	}
	return nil
}

func validateTruncNormal(name string, p TruncNormalParams) error {
	if p.SD < 0 {
		return fmt.Errorf("%s sd must be non-negative, got %g: %w", name, p.SD, ErrInvalidConfig)
	}
	if p.Lo >= p.Hi {
		return fmt.Errorf("%s truncation bounds [%g, %g] must have lo < hi: %w", name, p.Lo, p.Hi, ErrInvalidConfig)
	}
	// Rejection sampling stalls when the mean sits outside the bounds.
	if p.Mean < p.Lo || p.Mean > p.Hi {
		return fmt.Errorf("%s mean %g must lie within truncation bounds [%g, %g]: %w",
			name, p.Mean, p.Lo, p.Hi, ErrInvalidConfig)
	}
	return nil
}

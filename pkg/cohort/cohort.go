// Package cohort generates a synthetic observational dataset whose causal
// structure is known by construction. GPA drives GRE; GPA and GRE lower the
// probability of treatment; GPA, GRE, and treatment drive the outcome. The
// injected treatment coefficient is the effect a downstream adjusted
// regression is designed to recover.
package cohort

// Unit is one synthetic observation. Fields are frozen once the pipeline
// completes; there are no update or delete operations.
type Unit struct {
	ID                   int
	GPA                  float64
	GRE                  float64
	TreatmentProbability float64
	Treatment            float64
	Outcome              float64
}

// Cohort is an ordered collection of units with ids exactly 1..N.
type Cohort struct {
	Units []Unit
}

// N returns the cohort size.
func (c *Cohort) N() int { return len(c.Units) }

func (c *Cohort) column(get func(Unit) float64) []float64 {
	out := make([]float64, len(c.Units))
	for i, u := range c.Units {
		out[i] = get(u)
	}
	return out
}

// GPAs returns the gpa column.
func (c *Cohort) GPAs() []float64 { return c.column(func(u Unit) float64 { return u.GPA }) }

// GREs returns the gre column.
func (c *Cohort) GREs() []float64 { return c.column(func(u Unit) float64 { return u.GRE }) }

// TreatmentProbabilities returns the propensity column.
func (c *Cohort) TreatmentProbabilities() []float64 {
	return c.column(func(u Unit) float64 { return u.TreatmentProbability })
}

// Treatments returns the binary treatment column.
func (c *Cohort) Treatments() []float64 {
	return c.column(func(u Unit) float64 { return u.Treatment })
}

// Outcomes returns the outcome column. The outcome stays in memory for
// model fitting and is not part of the exported artifact.
func (c *Cohort) Outcomes() []float64 { return c.column(func(u Unit) float64 { return u.Outcome }) }

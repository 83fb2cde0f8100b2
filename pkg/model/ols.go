// Package model fits ordinary least squares regressions over generated
// cohorts. Fits are exact (QR factorization) rather than iterative so each
// coefficient carries a standard error, t statistic, and p value — the
// quantities the effect-recovery comparison is judged on.
package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadFit reports a design matrix that cannot be solved: more terms than
// observations, mismatched column lengths, or collinear predictors.
var ErrBadFit = errors.New("cannot fit model")

// Coefficient is one fitted term with its inference statistics. The p
// value is two-sided against Student's t with n-p degrees of freedom.
type Coefficient struct {
	Name   string
	Value  float64
	StdErr float64
	TStat  float64
	PValue float64
}

// Result holds a fitted regression. Coefficients[0] is the intercept.
type Result struct {
	Response     string
	Coefficients []Coefficient
	R2           float64
	N            int
	DF           int
}

// Fit estimates response = b0 + sum(bj * predictor_j) by least squares.
// Predictors are whole columns; names and cols must align.
func Fit(response string, y []float64, names []string, cols ...[]float64) (*Result, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d predictor columns: %w", len(names), len(cols), ErrBadFit)
	}
	n := len(y)
	p := len(cols) + 1
	if n <= p {
		return nil, fmt.Errorf("%d observations for %d terms: %w", n, p, ErrBadFit)
	}
	for i, col := range cols {
		if len(col) != n {
			return nil, fmt.Errorf("column %s has %d values, response has %d: %w", names[i], len(col), n, ErrBadFit)
		}
	}

	x := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j, col := range cols {
			x.Set(i, j+1, col[i])
		}
	}
	yv := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yv); err != nil {
		return nil, fmt.Errorf("least squares solve (%v): %w", err, ErrBadFit)
	}

	// Residual variance and R².
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)
	var fitted mat.VecDense
	fitted.MulVec(x, &beta)
	rss, tss := 0.0, 0.0
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		rss += r * r
		d := y[i] - mean
		tss += d * d
	}
	df := n - p
	sigma2 := rss / float64(df)

	// Standard errors from the diagonal of sigma² (X'X)⁻¹.
	var xtx, xtxInv mat.Dense
	xtx.Mul(x.T(), x)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("covariance of estimates (%v): %w", err, ErrBadFit)
	}

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	coefs := make([]Coefficient, p)
	for j := 0; j < p; j++ {
		name := "(intercept)"
		if j > 0 {
			name = names[j-1]
		}
		b := beta.AtVec(j)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		t := b / se
		coefs[j] = Coefficient{
			Name:   name,
			Value:  b,
			StdErr: se,
			TStat:  t,
			PValue: 2 * tdist.CDF(-math.Abs(t)),
		}
	}

	r2 := 0.0
	if tss > 0 {
		r2 = 1 - rss/tss
	}
	return &Result{Response: response, Coefficients: coefs, R2: r2, N: n, DF: df}, nil
}

// Coef returns the fitted coefficient for the named term, or false if the
// model has no such term.
func (r *Result) Coef(name string) (Coefficient, bool) {
	for _, c := range r.Coefficients {
		if c.Name == name {
			return c, true
		}
	}
	return Coefficient{}, false
}

// Summary renders the fit as a fixed-width table.
func (r *Result) Summary() string {
	var b strings.Builder
	terms := make([]string, 0, len(r.Coefficients)-1)
	for _, c := range r.Coefficients[1:] {
		terms = append(terms, c.Name)
	}
	fmt.Fprintf(&b, "%s ~ %s\n", r.Response, strings.Join(terms, " + "))
	fmt.Fprintf(&b, "%-14s %12s %10s %9s %9s\n", "", "coefficient", "std err", "t", "P>|t|")
	for _, c := range r.Coefficients {
		fmt.Fprintf(&b, "%-14s %12.4f %10.4f %9.3f %9.4f\n", c.Name, c.Value, c.StdErr, c.TStat, c.PValue)
	}
	fmt.Fprintf(&b, "n=%d  df=%d  R²=%.4f\n", r.N, r.DF, r.R2)
	return b.String()
}

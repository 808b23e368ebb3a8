package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// RegressionSummary holds the result of a linear fit over a point set.
// When Computable is false (fewer than two points, or zero variance in x)
// the numeric fields are zeroed and RSquared is NaN; callers present the
// outcome as "not computable" rather than treating it as an error.
type RegressionSummary struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	RSquared    float64 `json:"r_squared"`
	Computable  bool    `json:"computable"`
	SampleCount int     `json:"sample_count"`
}

// Equation formats the fitted line as "y = <slope>x + <intercept>".
func (r RegressionSummary) Equation() string {
	if !r.Computable {
		return "y = n/a"
	}
	sign := "+"
	if r.Intercept < 0 {
		sign = "-"
	}
	return fmt.Sprintf("y = %.4fx %s %.4f", r.Slope, sign, math.Abs(r.Intercept))
}

// PredictY evaluates the fitted line at x. Returns NaN when the fit is
// not computable.
func (r RegressionSummary) PredictY(x float64) float64 {
	if !r.Computable {
		return math.NaN()
	}
	return r.Slope*x + r.Intercept
}

// MarshalJSON keeps the wire format free of NaN, which encoding/json
// rejects. A non-computable fit serializes with r_squared as null.
func (r RegressionSummary) MarshalJSON() ([]byte, error) {
	type alias struct {
		Slope       float64  `json:"slope"`
		Intercept   float64  `json:"intercept"`
		RSquared    *float64 `json:"r_squared"`
		Computable  bool     `json:"computable"`
		SampleCount int      `json:"sample_count"`
	}
	a := alias{
		Slope:       r.Slope,
		Intercept:   r.Intercept,
		Computable:  r.Computable,
		SampleCount: r.SampleCount,
	}
	if r.Computable && !math.IsNaN(r.RSquared) {
		rs := r.RSquared
		a.RSquared = &rs
	}
	return json.Marshal(a)
}

// CategoryCount tallies the points assigned to a single category.
type CategoryCount struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
}

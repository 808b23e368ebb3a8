package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegressionSummary_Equation(t *testing.T) {
	tests := []struct {
		name    string
		summary RegressionSummary
		want    string
	}{
		{
			name:    "positive intercept",
			summary: RegressionSummary{Slope: 2, Intercept: 0.5, RSquared: 1, Computable: true, SampleCount: 3},
			want:    "y = 2.0000x + 0.5000",
		},
		{
			name:    "negative intercept folds sign",
			summary: RegressionSummary{Slope: -1.5, Intercept: -3, RSquared: 0.9, Computable: true, SampleCount: 5},
			want:    "y = -1.5000x - 3.0000",
		},
		{
			name:    "not computable",
			summary: RegressionSummary{RSquared: math.NaN(), SampleCount: 1},
			want:    "y = n/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.Equation())
		})
	}
}

func TestRegressionSummary_PredictY(t *testing.T) {
	fit := RegressionSummary{Slope: 2, Intercept: 1, RSquared: 1, Computable: true, SampleCount: 3}
	assert.InDelta(t, 7.0, fit.PredictY(3), 1e-12)

	flagged := RegressionSummary{RSquared: math.NaN(), SampleCount: 0}
	assert.True(t, math.IsNaN(flagged.PredictY(3)))
}

func TestRegressionSummary_MarshalJSON(t *testing.T) {
	flagged := RegressionSummary{RSquared: math.NaN(), SampleCount: 1}
	data, err := json.Marshal(flagged)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slope":0,"intercept":0,"r_squared":null,"computable":false,"sample_count":1}`, string(data))

	fit := RegressionSummary{Slope: 2, Intercept: 0, RSquared: 1, Computable: true, SampleCount: 3}
	data, err = json.Marshal(fit)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slope":2,"intercept":0,"r_squared":1,"computable":true,"sample_count":3}`, string(data))
}

func TestScatterPoint_HasCategory(t *testing.T) {
	assert.False(t, ScatterPoint{Label: "A", X: 1, Y: 2}.HasCategory())
	assert.True(t, ScatterPoint{Label: "A", X: 1, Y: 2, Category: "alpha"}.HasCategory())
}

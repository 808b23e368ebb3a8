package analysis

import (
	"context"
	"log/slog"
	"math"

	"autoscatter/pkg/contracts/domain"
)

// LeastSquares fits an ordinary least-squares line minimizing squared
// vertical residuals.
type LeastSquares struct {
	logger *slog.Logger
}

// NewLeastSquares creates the OLS analyzer.
func NewLeastSquares(logger *slog.Logger) *LeastSquares {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeastSquares{logger: logger}
}

// Analyze computes the OLS fit over all points. Fewer than two points or
// zero variance in x yields a summary flagged not computable — never a
// division by zero, never an error.
func (a *LeastSquares) Analyze(ctx context.Context, points []domain.ScatterPoint) (domain.RegressionSummary, error) {
	n := len(points)
	if n < 2 {
		a.logger.WarnContext(ctx, "not enough points for regression",
			slog.Int("sample_count", n))
		return notComputable(n), nil
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy, syy float64
	for _, p := range points {
		dx := p.X - meanX
		dy := p.Y - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	if sxx == 0 {
		a.logger.WarnContext(ctx, "zero variance in x, slope undefined",
			slog.Int("sample_count", n))
		return notComputable(n), nil
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	// All residuals are zero when y has no variance; the flat fit is
	// perfect and R² is defined as 1.
	rSquared := 1.0
	if syy > 0 {
		var ssRes float64
		for _, p := range points {
			residual := p.Y - (slope*p.X + intercept)
			ssRes += residual * residual
		}
		rSquared = 1 - ssRes/syy
		rSquared = math.Max(0, math.Min(1, rSquared))
	}

	summary := domain.RegressionSummary{
		Slope:       slope,
		Intercept:   intercept,
		RSquared:    rSquared,
		Computable:  true,
		SampleCount: n,
	}

	a.logger.InfoContext(ctx, "regression computed",
		slog.String("equation", summary.Equation()),
		slog.Float64("r_squared", rSquared),
		slog.Int("sample_count", n))

	return summary, nil
}

func notComputable(sampleCount int) domain.RegressionSummary {
	return domain.RegressionSummary{
		RSquared:    math.NaN(),
		Computable:  false,
		SampleCount: sampleCount,
	}
}

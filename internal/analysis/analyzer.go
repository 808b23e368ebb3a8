// Package analysis computes regression summaries over scatter point sets.
//
// Analyzer is the strategy contract: a point sequence in, a summary out.
// LeastSquares is the ordinary least-squares strategy; alternatives
// (robust regression, non-linear fits) implement the same interface and
// are selected at composition time.
package analysis

import (
	"context"
	"sort"

	"autoscatter/pkg/contracts/domain"
)

// UncategorizedBucket is the category name used for points without an
// assignment when tallying per-category counts.
const UncategorizedBucket = "(uncategorized)"

// Analyzer computes a regression summary from a point set. Category is a
// display dimension only; strategies fit all points regardless of it.
type Analyzer interface {
	Analyze(ctx context.Context, points []domain.ScatterPoint) (domain.RegressionSummary, error)
}

// CountCategories tallies points per category, sorted by category name
// for deterministic output. Points without a category are bucketed under
// UncategorizedBucket.
func CountCategories(points []domain.ScatterPoint) []domain.CategoryCount {
	if len(points) == 0 {
		return nil
	}

	tally := make(map[string]int)
	for _, p := range points {
		name := p.Category
		if name == "" {
			name = UncategorizedBucket
		}
		tally[name]++
	}

	counts := make([]domain.CategoryCount, 0, len(tally))
	for name, n := range tally {
		counts = append(counts, domain.CategoryCount{Category: name, Points: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Category < counts[j].Category
	})
	return counts
}

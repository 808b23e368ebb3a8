package render

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoscatter/pkg/contracts/domain"
)

func TestScatterRenderer_Render(t *testing.T) {
	renderer := NewScatterRenderer(slog.Default())
	path := filepath.Join(t.TempDir(), "Height_Weight.png")

	points := []domain.ScatterPoint{
		{Label: "A", X: 1, Y: 2, Category: "north"},
		{Label: "B", X: 2, Y: 4, Category: "south"},
		{Label: "C", X: 3, Y: 6},
	}
	summary := domain.RegressionSummary{Slope: 2, Intercept: 0, RSquared: 1, Computable: true, SampleCount: 3}

	err := renderer.Render(points, summary, Options{Title: "Scatter", XLabel: "Height", YLabel: "Weight"}, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestScatterRenderer_Render_NotComputableSkipsFitLine(t *testing.T) {
	renderer := NewScatterRenderer(nil)
	path := filepath.Join(t.TempDir(), "single.png")

	points := []domain.ScatterPoint{{Label: "A", X: 1, Y: 2}}
	summary := domain.RegressionSummary{RSquared: math.NaN(), SampleCount: 1}

	require.NoError(t, renderer.Render(points, summary, Options{}, path))
	assert.FileExists(t, path)
}

func TestGroupByCategory(t *testing.T) {
	points := []domain.ScatterPoint{
		{Label: "A", Category: "north"},
		{Label: "B", Category: "south"},
		{Label: "C", Category: "north"},
		{Label: "D"},
	}

	groups, order := groupByCategory(points)
	assert.Equal(t, []string{"north", "south", ""}, order)
	assert.Len(t, groups["north"], 2)
	assert.Len(t, groups["south"], 1)
	assert.Len(t, groups[""], 1)
}

package dataset

import (
	"math"
	"strconv"
	"strings"

	"autoscatter/pkg/contracts/domain"
)

// CleanseOptions names the columns the cleanser reads. XColumn and
// YColumn are required; LabelColumn may be absent from the source, in
// which case the positional row index becomes the label.
type CleanseOptions struct {
	XColumn     string
	YColumn     string
	LabelColumn string
}

// Cleanse coerces raw rows into scatter points. A row is dropped when
// either numeric column is missing, empty, or not parseable as a finite
// number. Cleansing never fails; the drop count is returned for the
// caller to log.
func Cleanse(table *Table, opts CleanseOptions) ([]domain.ScatterPoint, int) {
	if table == nil || len(table.Rows) == 0 {
		return nil, 0
	}

	hasLabel := opts.LabelColumn != "" && table.HasColumn(opts.LabelColumn)

	points := make([]domain.ScatterPoint, 0, len(table.Rows))
	dropped := 0
	for i, row := range table.Rows {
		x, ok := parseFinite(row, opts.XColumn)
		if !ok {
			dropped++
			continue
		}
		y, ok := parseFinite(row, opts.YColumn)
		if !ok {
			dropped++
			continue
		}

		label := ""
		if hasLabel {
			label, _ = row.Get(opts.LabelColumn)
		}
		if label == "" {
			label = strconv.Itoa(i)
		}

		points = append(points, domain.ScatterPoint{Label: label, X: x, Y: y})
	}
	return points, dropped
}

// parseFinite reads a cell as a finite float64. Thousands separators are
// stripped before parsing, the way the raw exports carry them.
func parseFinite(row RawRow, column string) (float64, bool) {
	raw, ok := row.Get(column)
	if !ok || raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

package dataset

import (
	apperrors "autoscatter/internal/errors"
	"autoscatter/pkg/contracts/domain"
)

// CategoryIndex maps point labels to category assignments, built from one
// selected category column of a category table.
type CategoryIndex struct {
	assignments map[string]string
	records     []domain.CategoryRecord
}

// Records returns the category records in source order, one per label.
func (idx *CategoryIndex) Records() []domain.CategoryRecord {
	if idx == nil {
		return nil
	}
	return idx.records
}

// Len returns the number of labels with an assignment.
func (idx *CategoryIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.assignments)
}

// Lookup returns the category assigned to a label, if any.
func (idx *CategoryIndex) Lookup(label string) (string, bool) {
	if idx == nil {
		return "", false
	}
	v, ok := idx.assignments[label]
	return v, ok
}

// BuildCategoryIndex selects one category column from a category table.
// The selected column being absent is an analysis error: it indicates a
// configuration mistake, not bad data, and must not be silently ignored.
// Rows with an empty label or category cell are skipped; a label seen
// more than once keeps its first assignment in source order.
func BuildCategoryIndex(table *Table, labelColumn, categoryColumn string) (*CategoryIndex, error) {
	const op = "dataset.BuildCategoryIndex"

	if table == nil {
		return nil, nil
	}
	if !table.HasColumn(categoryColumn) {
		return nil, apperrors.Analysisf(op,
			"category column %q not found in category source (columns: %v)",
			categoryColumn, table.Headers)
	}
	if !table.HasColumn(labelColumn) {
		return nil, apperrors.Analysisf(op,
			"label column %q not found in category source (columns: %v)",
			labelColumn, table.Headers)
	}

	idx := &CategoryIndex{assignments: make(map[string]string, table.Len())}
	for _, row := range table.Rows {
		label, _ := row.Get(labelColumn)
		category, _ := row.Get(categoryColumn)
		if label == "" || category == "" {
			continue
		}
		if _, seen := idx.assignments[label]; seen {
			continue
		}
		idx.assignments[label] = category
		idx.records = append(idx.records, domain.CategoryRecord{Label: label, Category: category})
	}
	return idx, nil
}

// Join left-joins category assignments onto the point set by label.
// Every input point is preserved; points without a matching record keep
// an empty category. A nil index is a no-op.
func Join(points []domain.ScatterPoint, idx *CategoryIndex) []domain.ScatterPoint {
	if idx == nil || idx.Len() == 0 {
		return points
	}

	joined := make([]domain.ScatterPoint, len(points))
	for i, p := range points {
		if category, ok := idx.Lookup(p.Label); ok {
			p.Category = category
		}
		joined[i] = p
	}
	return joined
}

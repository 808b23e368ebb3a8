package domain

// ScatterPoint represents a single labeled observation on the X/Y plane.
// Points only exist past the cleansing stage, so X and Y are always finite.
type ScatterPoint struct {
	Label    string  `json:"label" validate:"required"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Category string  `json:"category,omitempty"`
}

// HasCategory reports whether a category has been assigned to the point.
func (p ScatterPoint) HasCategory() bool {
	return p.Category != ""
}

// CategoryRecord maps a point label to a category assignment. One record
// exists per (label, selected category column) pair.
type CategoryRecord struct {
	Label    string `json:"label" validate:"required"`
	Category string `json:"category"`
}

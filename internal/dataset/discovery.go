package dataset

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "autoscatter/internal/errors"
)

// ForPath picks the source adapter matching the file extension. Excel
// workbooks go through XLSXSource, everything else is treated as
// delimited text.
func ForPath(path string, encodings []string, logger *slog.Logger) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return NewXLSXSource(logger)
	default:
		return NewCSVSource(encodings, logger)
	}
}

// FindCategoryFile resolves a configured category location to a concrete
// file. A file path is returned as-is; for a directory the first CSV in
// lexical order is selected. Returns a data-load error when the location
// does not exist or a directory holds no CSV files.
func FindCategoryFile(location string, logger *slog.Logger) (string, error) {
	const op = "dataset.FindCategoryFile"
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(location)
	if err != nil {
		return "", &apperrors.Error{
			Kind:    apperrors.KindDataLoad,
			Op:      op,
			Message: "stat " + location,
			Err:     err,
		}
	}
	if !info.IsDir() {
		return location, nil
	}

	entries, err := os.ReadDir(location)
	if err != nil {
		return "", &apperrors.Error{
			Kind:    apperrors.KindDataLoad,
			Op:      op,
			Message: "read directory " + location,
			Err:     err,
		}
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return "", apperrors.DataLoadf(op, "no CSV files in %s", location)
	}

	sort.Strings(candidates)
	selected := filepath.Join(location, candidates[0])
	if len(candidates) > 1 {
		logger.Warn("multiple category files found, using first",
			slog.Int("candidates", len(candidates)),
			slog.String("selected", selected))
	}
	return selected, nil
}

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	apperrors "autoscatter/internal/errors"
)

// CSVSource reads delimited text files with an encoding-fallback policy:
// the configured encodings are tried in priority order and the first one
// that decodes the whole file wins.
type CSVSource struct {
	encodings []string
	comma     rune
	logger    *slog.Logger
}

// CSVOption configures a CSVSource.
type CSVOption func(*CSVSource)

// WithDelimiter sets the field delimiter. Defaults to ','.
func WithDelimiter(comma rune) CSVOption {
	return func(s *CSVSource) {
		if comma != 0 {
			s.comma = comma
		}
	}
}

// NewCSVSource creates a CSV source trying the given encodings in order.
func NewCSVSource(encodings []string, logger *slog.Logger, opts ...CSVOption) *CSVSource {
	if logger == nil {
		logger = slog.Default()
	}
	s := &CSVSource{
		encodings: encodings,
		comma:     ',',
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read loads the file at path into a Table. The first row is the header
// row. Fails with a data-load error when the file is absent, unreadable,
// no configured encoding decodes it, or it has no header row.
func (s *CSVSource) Read(ctx context.Context, path string) (*Table, error) {
	const op = "dataset.CSVSource.Read"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperrors.Error{
			Kind:    apperrors.KindDataLoad,
			Op:      op,
			Message: fmt.Sprintf("read %s", path),
			Err:     err,
		}
	}

	text, encodingUsed, err := decodeWithFallback(op, data, s.encodings)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "decoded source file",
		slog.String("path", path),
		slog.String("encoding", encodingUsed))

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = s.comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &apperrors.Error{
			Kind:    apperrors.KindDataLoad,
			Op:      op,
			Message: fmt.Sprintf("parse %s", path),
			Err:     err,
		}
	}
	if len(records) == 0 {
		return nil, apperrors.DataLoadf(op, "%s has no header row", path)
	}

	table := newTable(records[0], records[1:])
	s.logger.InfoContext(ctx, "loaded tabular source",
		slog.String("path", path),
		slog.String("encoding", encodingUsed),
		slog.Int("columns", len(table.Headers)),
		slog.Int("rows", table.Len()))

	return table, nil
}

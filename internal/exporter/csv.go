// Package exporter writes analysis results to files: enriched point sets
// and regression summaries as CSV, and sanitized filenames for exported
// charts.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"autoscatter/pkg/contracts/domain"
)

// CSVWriter exports pipeline output as CSV files under a base directory.
type CSVWriter struct {
	outputDir string
	logger    *slog.Logger
}

// NewCSVWriter creates a CSV writer rooted at outputDir.
func NewCSVWriter(outputDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{outputDir: outputDir, logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add UTF-8 BOM so Excel recognizes the encoding
}

// WriteCSV writes a CSV file with the given options, creating the
// output directory as needed.
func (w *CSVWriter) WriteCSV(name string, options WriteOptions) (string, error) {
	path := filepath.Join(w.outputDir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return "", fmt.Errorf("write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}

	w.logger.Info("wrote CSV export",
		slog.String("path", path),
		slog.Int("records", len(options.Records)))
	return path, nil
}

// WritePoints exports the enriched point set.
func (w *CSVWriter) WritePoints(name string, points []domain.ScatterPoint) (string, error) {
	records := make([][]string, 0, len(points))
	for _, p := range points {
		records = append(records, []string{
			p.Label,
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			p.Category,
		})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers:   []string{"label", "x", "y", "category"},
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteSummary exports the regression summary as a single-row CSV. A
// non-computable fit writes "n/a" for the statistics.
func (w *CSVWriter) WriteSummary(name string, summary domain.RegressionSummary, droppedRows int) (string, error) {
	slope, intercept, rSquared := "n/a", "n/a", "n/a"
	if summary.Computable {
		slope = strconv.FormatFloat(summary.Slope, 'g', -1, 64)
		intercept = strconv.FormatFloat(summary.Intercept, 'g', -1, 64)
		rSquared = strconv.FormatFloat(summary.RSquared, 'g', -1, 64)
	}
	return w.WriteCSV(name, WriteOptions{
		Headers: []string{"slope", "intercept", "r_squared", "sample_count", "dropped_rows"},
		Records: [][]string{{
			slope,
			intercept,
			rSquared,
			strconv.Itoa(summary.SampleCount),
			strconv.Itoa(droppedRows),
		}},
		BOMPrefix: true,
	})
}

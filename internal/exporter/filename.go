package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// unsafe characters stripped from filename parts.
const unsafeChars = `\/:*?"<>|`

// sanitize removes characters unsafe for the host filesystem and falls
// back to "unnamed" when nothing survives.
func sanitize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if !strings.ContainsRune(unsafeChars, r) {
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return "unnamed"
	}
	return cleaned
}

// ChartFilename derives the exported chart filename from the axis labels
// and the selected category name: "X_Y.png" or "X_Y_Category.png",
// each part sanitized.
func ChartFilename(xLabel, yLabel, category string) string {
	parts := []string{sanitize(xLabel), sanitize(yLabel)}
	if category != "" {
		parts = append(parts, sanitize(category))
	}
	return strings.Join(parts, "_") + ".png"
}

// UniqueFilename returns filename, or a "_N" suffixed variant when the
// file already exists in dir.
func UniqueFilename(dir, filename string) (string, error) {
	if _, err := os.Stat(filepath.Join(dir, filename)); os.IsNotExist(err) {
		return filename, nil
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	for i := 1; i <= 9999; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("too many existing files named like %s", filename)
}

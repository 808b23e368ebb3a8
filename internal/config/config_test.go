package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "autoscatter/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"utf-8", "cp932", "shift_jis"}, cfg.Data.Encodings)
	assert.Equal(t, "x", cfg.Data.XColumn)
	assert.Equal(t, "y", cfg.Data.YColumn)
	assert.Equal(t, "label", cfg.Data.LabelColumn)
	assert.Equal(t, ',', cfg.Data.DelimiterRune())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
paths:
  input_dir: /srv/scatter/in
  output_dir: /srv/scatter/out
data:
  encodings:
    - utf-8
  x_column: height
  y_column: weight
  category_column: region
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/scatter/in", cfg.Paths.InputDir)
	assert.Equal(t, []string{"utf-8"}, cfg.Data.Encodings)
	assert.Equal(t, "height", cfg.Data.XColumn)
	assert.Equal(t, "weight", cfg.Data.YColumn)
	assert.Equal(t, "region", cfg.Data.CategoryColumn)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Fields the file leaves unset keep their defaults.
	assert.Equal(t, "label", cfg.Data.LabelColumn)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SCATTER_DATA_X_COLUMN", "age")
	t.Setenv("SCATTER_DATA_ENCODINGS", "utf-8,latin-1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "age", cfg.Data.XColumn)
	assert.Equal(t, []string{"utf-8", "latin-1"}, cfg.Data.Encodings)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Data.XColumn)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unsupported encoding",
			content: `
data:
  encodings:
    - klingon
`,
		},
		{
			name: "bad log level",
			content: `
logging:
  level: chatty
`,
		},
		{
			name: "port out of range",
			content: `
server:
  port: 70000
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindConfig))
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [not a map"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConfig))
}

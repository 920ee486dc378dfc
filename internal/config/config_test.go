package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "turfujn"
password = "secret"
dbname = "turfujn"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)

	// Дефолты для незаданных параметров
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)

	assert.Equal(t,
		"host=localhost port=5432 user=turfujn password=secret dbname=turfujn sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing http port",
			content: `
[database]
host = "localhost"
port = 5432
user = "turfujn"
dbname = "turfujn"
`,
		},
		{
			name: "missing database host",
			content: `
[server]
http_port = 8080

[database]
port = 5432
user = "turfujn"
dbname = "turfujn"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

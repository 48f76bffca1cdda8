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

const minimal = `
[database]
host = "localhost"
user = "portal"
dbname = "portal"
`

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvDBPassword, "")
	t.Setenv(EnvDBHost, "")

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 14, cfg.Portal.LoanDays)
	assert.Equal(t, 256, cfg.Portal.QRSize)
	assert.Equal(t, "host=localhost port=5432 user=portal password= dbname=portal sslmode=disable", cfg.Database.DSN())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, minimal+`
[server]
http_port = 9090

[portal]
timezone = "UTC"
loan_days = 7

[metrics]
enabled = true
path = "/internal/metrics"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 7, cfg.Portal.LoanDays)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)

	loc, err := cfg.Portal.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDBPassword, "secret")
	t.Setenv(EnvDBHost, "db.internal")

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown log level", minimal + "\n[logs]\nlevel = \"verbose\"\n"},
		{"unknown timezone", minimal + "\n[portal]\ntimezone = \"Mars/Olympus\"\n"},
		{"port out of range", minimal + "\n[server]\nhttp_port = 70000\n"},
		{"missing dbname", "[database]\nhost = \"localhost\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDBHost, "")
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

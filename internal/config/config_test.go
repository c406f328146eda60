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

const minimalConfig = `
[database]
host = "localhost"
user = "booking"
dbname = "booking"

[logs]
file = "booking.log"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "sln-booking-service", cfg.Metrics.ServiceName)
	assert.Equal(t, 5, cfg.Accounts.Timeout)
	assert.Equal(t, "lenient", cfg.Booking.DurationPolicy)
	assert.Empty(t, cfg.Booking.BlockedWeekday)
}

func TestLoad_FullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "booking"
password = "secret"
dbname = "booking"
sslmode = "require"

[logs]
file = "/var/log/booking.log"
level = "debug"

[metrics]
enabled = true

[booking]
duration_policy = "strict"
blocked_weekday = "sunday"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "strict", cfg.Booking.DurationPolicy)
	assert.Equal(t, "sunday", cfg.Booking.BlockedWeekday)
	assert.True(t, cfg.Metrics.Enabled)

	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"отсутствует database.host",
			`
[database]
user = "booking"
dbname = "booking"

[logs]
file = "booking.log"
`,
		},
		{
			"отсутствует logs.file",
			`
[database]
host = "localhost"
user = "booking"
dbname = "booking"
`,
		},
		{
			"неизвестная политика длительности",
			minimalConfig + `
[booking]
duration_policy = "exact"
`,
		},
		{
			"некорректный заблокированный день",
			minimalConfig + `
[booking]
blocked_weekday = "someday"
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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  driver: mysql
  host: 127.0.0.1
  user: root
  password: secret
  dbname: complexity
analyzer:
  max_n: 100000
  max_steps: 50
  measure_timeout: 30s
artifacts:
  dir: /tmp/charts
log:
  level: debug
  format: json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
	assert.Equal(t, 100000, cfg.Analyzer.MaxN)
	assert.Equal(t, 50, cfg.Analyzer.MaxSteps)
	assert.Equal(t, 30*time.Second, cfg.Analyzer.MeasureTimeout)
	assert.Equal(t, "/tmp/charts", cfg.Artifacts.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/complexity.db", cfg.Database.Path)
	assert.Equal(t, "outputs", cfg.Artifacts.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Zero(t, cfg.Analyzer.MeasureTimeout)
	// 配置文件没写上限时不限制规模
	assert.Zero(t, cfg.Analyzer.MaxN)
	assert.Zero(t, cfg.Analyzer.MaxSteps)
}

func TestDefault_Bounded(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxN, cfg.Analyzer.MaxN)
	assert.Equal(t, DefaultMaxSteps, cfg.Analyzer.MaxSteps)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "outputs", cfg.Artifacts.Dir)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"driver":       "database:\n  driver: postgres\n",
		"mysql host":   "database:\n  driver: mysql\n",
		"negative n":   "analyzer:\n  max_n: -1\n",
		"timeout":      "analyzer:\n  measure_timeout: -5s\n",
		"log level":    "log:\n  level: verbose\n",
		"log format":   "log:\n  format: xml\n",
		"port":         "server:\n  port: 70000\n",
		"bad yaml":     "server: [\n",
		"bad duration": "analyzer:\n  measure_timeout: soon\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

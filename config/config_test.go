package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
planner:
  start_hour: 7
  end_hour: 19
weather:
  conditions:
    "2026-08-25": Rain
metrics:
  prom_addr: ":9090"
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Planner.StartHour)
	assert.Equal(t, 19, cfg.Planner.EndHour)
	// Unset scoring knobs still get their defaults.
	assert.Equal(t, 9, cfg.Planner.PeakStartHour)
	assert.Equal(t, 50.0, cfg.Planner.MaxEnergy)
	assert.Equal(t, "Rain", cfg.Weather.Conditions["2026-08-25"])
	assert.Equal(t, ":9090", cfg.Metrics.PromAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"planner":{"start_hour":9,"end_hour":17}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Planner.StartHour)
	assert.Equal(t, 17, cfg.Planner.EndHour)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", `
planner:
  start_hour: 8
  end_hour: 18
`)
	t.Setenv("TT_PLANNER__START_HOUR", "6")
	t.Setenv("TT_LOGGING__LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Planner.StartHour)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidWindow(t *testing.T) {
	path := writeFile(t, "config.yaml", `
planner:
  start_hour: 18
  end_hour: 8
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsIncompleteInflux(t *testing.T) {
	path := writeFile(t, "config.yaml", `
metrics:
  influx_url: http://localhost:8086
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := writeFile(t, "config.yaml", `
logging:
  level: chatty
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8, cfg.Planner.StartHour)
	assert.Equal(t, 18, cfg.Planner.EndHour)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Len(t, cfg.Weather.Conditions, 3)
	assert.False(t, cfg.Notify.Enabled)
	require.NoError(t, cfg.Planner.Validate())
}

func TestLoadTasksFile(t *testing.T) {
	path := writeFile(t, "tasks.yaml", `
- name: Sprint Review
  duration_minutes: 60
  difficulty: HIGH
  category: work
  fixed_start: "09:00"
- name: Trail Run
  duration_minutes: 45
  difficulty: MEDIUM
  category: fitness
  outdoor: true
`)
	entries, err := LoadTasks(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	spec := entries[0].Spec()
	assert.Equal(t, "Sprint Review", spec.Name)
	assert.Equal(t, 60, spec.DurationMinutes)
	assert.Equal(t, "09:00", spec.FixedStart)
	assert.True(t, entries[1].Outdoor)
}

func TestLoadTasksMissingFile(t *testing.T) {
	_, err := LoadTasks(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

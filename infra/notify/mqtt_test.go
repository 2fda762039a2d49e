package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	assert.Equal(t, "timetable/schedule", cfg.Topic)
	assert.True(t, strings.HasPrefix(cfg.ClientID, "timetable-"))
	assert.Equal(t, 5, cfg.TimeoutSeconds)
}

func TestConfigSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{Topic: "home/schedule", ClientID: "kiosk", TimeoutSeconds: 2}
	cfg.SetDefaults()
	assert.Equal(t, "home/schedule", cfg.Topic)
	assert.Equal(t, "kiosk", cfg.ClientID)
	assert.Equal(t, 2, cfg.TimeoutSeconds)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{}.Validate())
	require.NoError(t, Config{Enabled: true, Broker: "tcp://localhost:1883"}.Validate())
	assert.Error(t, Config{Enabled: true}.Validate())
}

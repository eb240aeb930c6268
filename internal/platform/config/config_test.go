package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 30, cfg.GraceWindowDays)
	assert.Equal(t, 90, cfg.RetentionWarningDays)
	assert.False(t, cfg.PublishDuringGrace)
	assert.False(t, cfg.IssueCertificatesDuringGrace)
}

func TestLoadRejectsNegativeWindows(t *testing.T) {
	t.Setenv("ACEAUDIT_GRACE_WINDOW_DAYS", "-1")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadKafkaBrokerList(t *testing.T) {
	t.Setenv("ACEAUDIT_KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresCredentials(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PoolSettings(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("DB_MIN_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int32(40), cfg.Database.MaxConns)
	assert.Equal(t, int32(8), cfg.Database.MinConns)
}

func TestLoadKiosk_NoCredentialsNeeded(t *testing.T) {
	// The kiosk only talks HTTP; database and JWT settings must not be
	// required to start it.
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("RECOGNITION_API_URL", "http://api.example.com")
	t.Setenv("RECOGNITION_PERIOD", "3s")
	t.Setenv("RECOGNITION_THRESHOLD", "0.4")

	cfg, err := LoadKiosk()
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Period)
	assert.Equal(t, 0.4, cfg.Threshold)
	assert.False(t, cfg.Nearest)
}

func TestLoadKiosk_RejectsBadPeriod(t *testing.T) {
	t.Setenv("RECOGNITION_PERIOD", "soon")

	_, err := LoadKiosk()
	assert.Error(t, err)
}

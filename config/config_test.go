package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSMTPPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("default", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 587, cfg.SMTPPort)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "2525")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 2525, cfg.SMTPPort)
	})

	t.Run("rejects non-numeric", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "smtp")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SMTP_PORT")
	})
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)
}

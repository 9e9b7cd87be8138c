package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "42")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "123:abc", cfg.TelegramToken)
		assert.Equal(t, int64(42), cfg.AdminID)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "https://www.1secmail.com/api/v1/", cfg.APIBaseURL)
		assert.Equal(t, "1secmail.com", cfg.DefaultDomain)
		assert.Equal(t, 5*time.Second, cfg.NotifyDelay)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("NOTIFY_DELAY", "12s")
		t.Setenv("DEFAULT_DOMAIN", "corp.test")
		t.Setenv("PORT", "9090")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 12*time.Second, cfg.NotifyDelay)
		assert.Equal(t, "corp.test", cfg.DefaultDomain)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("missing token fails", func(t *testing.T) {
		setRequired(t) // registers env restore
		os.Unsetenv("TELEGRAM_BOT_TOKEN")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive notify delay fails", func(t *testing.T) {
		setRequired(t)
		t.Setenv("NOTIFY_DELAY", "0s")

		_, err := Load()
		assert.Error(t, err)
	})
}

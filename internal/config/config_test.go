package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "laundry_test")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "3000")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("OTP_TTL", "2m")
		t.Setenv("DELIVERY_CHARGE", "80")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "laundry_test", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "3000", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 2*time.Minute, cfg.OTPTTL)
		assert.Equal(t, 80, cfg.DeliveryCharge)
		assert.True(t, cfg.IsDev())
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("APP_PORT", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("OTP_TTL", "")
		t.Setenv("DELIVERY_CHARGE", "")

		cfg := LoadConfig()

		assert.Equal(t, "3000", cfg.AppPort)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
		assert.Equal(t, 60, cfg.DeliveryCharge)
	})
}

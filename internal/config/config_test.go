package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"DATA_FILE", "LEDGER_DIR", "ADMIN_USERNAME", "ADMIN_PASSWORD", "PASSWORD_HASHING", "APP_PORT", "DB_HOST", "DB_PORT"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	assert.Equal(t, "users.json", cfg.DataFile)
	assert.Equal(t, ".", cfg.LedgerDir)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "password", cfg.AdminPassword)
	assert.Equal(t, "plain", cfg.PasswordHashing)
	assert.Equal(t, "8080", cfg.AppPort)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATA_FILE", "/tmp/u.json")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IS_PROD", "true")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "ledger")
	cfg := LoadConfig()
	assert.Equal(t, "/tmp/u.json", cfg.DataFile)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
	assert.Equal(t, "u:p@tcp(db:3307)/ledger?parseTime=true", cfg.DSN())
}

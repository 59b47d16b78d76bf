package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/revlo")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "allow", cfg.OverdraftPolicy)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 10*time.Minute, cfg.DebtCacheTTL)
	assert.Equal(t, "@daily", cfg.ProjectRepairCron)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("OVERDRAFT_POLICY", "block")
	t.Setenv("DEBT_CACHE_TTL", "30s")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "block", cfg.OverdraftPolicy)
	assert.Equal(t, 30*time.Second, cfg.DebtCacheTTL)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadFrom_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"STORAGE_DRIVER": "postgres", "PGSQL_URL": ""}},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{"memory in production", map[string]string{"STORAGE_DRIVER": "memory", "IS_PRODUCTION": "true"}},
		{"unknown overdraft policy", map[string]string{"STORAGE_DRIVER": "memory", "OVERDRAFT_POLICY": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := loadFrom(viper.New())
			assert.Error(t, err)
		})
	}
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_TYPE", "RESOLVER_MISS_DELAY", "RESOLVER_THRESHOLD", "SESSION_TTL"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, 500*time.Millisecond, cfg.ResolverMissDelay)
	assert.InDelta(t, 0.4, cfg.ResolverThreshold, 1e-9)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/wedding")
	t.Setenv("RESOLVER_MISS_DELAY", "750ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "postgres://localhost/wedding", cfg.DatabaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.ResolverMissDelay)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{ResolverThreshold: 0.4, SessionTTL: time.Hour},
			wantErr: false,
		},
		{
			name:    "zero threshold",
			cfg:     Config{ResolverThreshold: 0, SessionTTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "threshold above one",
			cfg:     Config{ResolverThreshold: 1.5, SessionTTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "negative delay",
			cfg:     Config{ResolverThreshold: 0.4, ResolverMissDelay: -time.Second, SessionTTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "zero session ttl",
			cfg:     Config{ResolverThreshold: 0.4},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultsDevSecrets проверяет, что вне production Load подставляет
// дефолтные секреты JWT до валидации.
func TestLoad_DefaultsDevSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev-access-secret", cfg.JWT.AccessSecret)
	require.Equal(t, "dev-refresh-secret", cfg.JWT.RefreshSecret)
}

// TestValidate_DoesNotMutateConfig проверяет, что Validate только проверяет
// конфигурацию и не изменяет её.
func TestValidate_DoesNotMutateConfig(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "8080"
	cfg.Database.Host = "localhost"
	cfg.Database.User = "postgres"
	cfg.Database.DBName = "gym_planner"
	cfg.RateLimit.RPS = 20
	cfg.RateLimit.Burst = 40

	before := *cfg
	require.NoError(t, cfg.Validate())
	require.Equal(t, before, *cfg)
	require.Empty(t, cfg.JWT.AccessSecret)
	require.Empty(t, cfg.JWT.RefreshSecret)
}

// TestValidate_ProductionRequiresJWTSecrets проверяет, что в production
// пустые секреты JWT отклоняются.
func TestValidate_ProductionRequiresJWTSecrets(t *testing.T) {
	cfg := &Config{AppEnv: "production"}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "8080"
	cfg.Database.Host = "localhost"
	cfg.Database.User = "postgres"
	cfg.Database.DBName = "gym_planner"
	cfg.RateLimit.RPS = 20
	cfg.RateLimit.Burst = 40

	require.Error(t, cfg.Validate())

	cfg.JWT.AccessSecret = "prod-access-secret"
	cfg.JWT.RefreshSecret = "prod-refresh-secret"
	require.NoError(t, cfg.Validate())
}

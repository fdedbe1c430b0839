package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.NotNil(t, cfg.Seed)
	assert.NotNil(t, cfg.Migration)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:       &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour},
		Pagination: &PaginationConfig{DefaultLimit: 25, MaxLimit: 50},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 25, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
}

func TestApplyDefaults_DefaultLimitNeverExceedsMax(t *testing.T) {
	cfg := &Config{Pagination: &PaginationConfig{DefaultLimit: 500, MaxLimit: 100}}

	applyDefaults(cfg)

	assert.Equal(t, 100, cfg.Pagination.DefaultLimit)
}

func TestApplyDefaults_MaxLimitNeverExceedsHundred(t *testing.T) {
	cfg := &Config{Pagination: &PaginationConfig{DefaultLimit: 150, MaxLimit: 500}}

	applyDefaults(cfg)

	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, 100, cfg.Pagination.DefaultLimit)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
env:
  serviceName: from-yaml
auth:
  tokenSecret: yaml-secret
  tokenTTL: 5m
pagination:
  maxLimit: 100
`)
	t.Setenv("AUTH_TOKENSECRET", "env-secret")
	t.Setenv("PAGINATION_MAXLIMIT", "40")

	cfg, err := LoadWithEnv[Config]("config", relativeTo(t, dir))
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "env-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, 40, cfg.Pagination.MaxLimit)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", relativeTo(t, t.TempDir()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "ai-agent-app", cfg.AppName)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.AppDebug)
	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, "gpt-4", cfg.AgentModel)
	assert.Equal(t, 0.7, cfg.AgentTemperature)
	assert.Equal(t, 10, cfg.AgentMaxIterations)
	assert.Equal(t, 300, cfg.AgentTimeoutSecs)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AGENT_MODEL", "claude-3")
	t.Setenv("AGENT_TEMPERATURE", "1.2")
	t.Setenv("AGENT_MAX_ITERATIONS", "25")

	cfg := Load()

	assert.Equal(t, "staging", cfg.AppEnv)
	assert.False(t, cfg.AppDebug)
	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, "claude-3", cfg.AgentModel)
	assert.Equal(t, 1.2, cfg.AgentTemperature)
	assert.Equal(t, 25, cfg.AgentMaxIterations)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")
	t.Setenv("AGENT_TEMPERATURE", "warm")

	cfg := Load()

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, 0.7, cfg.AgentTemperature)
}

func TestValidateProductionSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for default SECRET_KEY")
	}

	t.Setenv("SECRET_KEY", "real-secret")
	cfg = Load()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for default JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "real-jwt-secret")
	cfg = Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateSkippedOutsideProduction(t *testing.T) {
	cfg := Load()
	assert.NoError(t, cfg.Validate())
}

func TestParseOrigins(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"*", []string{"*"}},
		{"", []string{"*"}},
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"http://a.example, http://b.example", []string{"http://a.example", "http://b.example"}},
		{" , ", []string{"*"}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseOrigins(tc.raw), "raw=%q", tc.raw)
	}
}

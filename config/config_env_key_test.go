package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"sessionTTL":        "720h",
			"sessionCookieName": "session_id",
		},
		"webServer": map[string]any{
			"origin": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_SESSIONTTL", want: "auth.sessionTTL"},
		{envKey: "AUTH_SESSIONCOOKIENAME", want: "auth.sessionCookieName"},
		{envKey: "WEBSERVER_ORIGIN", want: "webServer.origin"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsEmptySections(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 3000

	cfg.applyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 15*time.Minute, cfg.Auth.ActivationTTL)
	assert.Equal(t, "session_id", cfg.Auth.SessionCookieName)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "http://localhost:3000", cfg.WebServer.Origin)
	assert.Equal(t, defaultMailFrom, cfg.Mail.From)
	assert.NotNil(t, cfg.Migration)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{SessionTTL: time.Hour, BcryptCost: 4},
		WebServer: &WebServerConfig{Origin: "https://meubonsai.app/"},
	}

	cfg.applyDefaults()

	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "https://meubonsai.app", cfg.WebServer.Origin)
}

package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"path":        "users.db",
			"busyTimeout": "5s",
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
			"argon2": map[string]any{
				"saltLength": 16,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_PATH", want: "database.path"},
		{envKey: "DATABASE_BUSYTIMEOUT", want: "database.busyTimeout"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_ARGON2_SALTLENGTH", want: "auth.argon2.saltLength"},
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

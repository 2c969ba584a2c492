package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl":    "http://localhost:8080",
			"deviceType": "web",
		},
		"push": map[string]any{
			"subscriptionId": "",
		},
		"identity": map[string]any{
			"tokenPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_DEVICETYPE", want: "api.deviceType"},
		{envKey: "PUSH_SUBSCRIPTIONID", want: "push.subscriptionId"},
		{envKey: "IDENTITY_TOKENPATH", want: "identity.tokenPath"},
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

package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"engine": map[string]any{
			"regionCeiling": 20,
		},
		"firebase": map[string]any{
			"projectId": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ENGINE_REGIONCEILING", want: "engine.regionCeiling"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyEngineDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyEngineDefaults()

	if cfg.Engine.RegionCeiling != 20 {
		t.Fatalf("RegionCeiling = %d, want 20", cfg.Engine.RegionCeiling)
	}
	if cfg.Engine.EventQueueSize != 256 {
		t.Fatalf("EventQueueSize = %d, want 256", cfg.Engine.EventQueueSize)
	}
	if cfg.Engine.ReconcileInterval != 5*time.Minute {
		t.Fatalf("ReconcileInterval = %s, want 5m", cfg.Engine.ReconcileInterval)
	}

	// Explicit values survive.
	cfg = &Config{Engine: &EngineConfig{RegionCeiling: 5, DeliveryHistoryLimit: 10}}
	cfg.applyEngineDefaults()

	if cfg.Engine.RegionCeiling != 5 {
		t.Fatalf("RegionCeiling = %d, want 5", cfg.Engine.RegionCeiling)
	}
	if cfg.Engine.DeliveryHistoryLimit != 10 {
		t.Fatalf("DeliveryHistoryLimit = %d, want 10", cfg.Engine.DeliveryHistoryLimit)
	}
}

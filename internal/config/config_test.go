package config

import (
	"testing"

	"synker/internal/auth"
	"synker/internal/streak"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SYNKER_SEED_DEMO", "")
	t.Setenv("SYNKER_AWARD_POLICY", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeedDemo {
		t.Fatalf("SeedDemo default should be false")
	}
	if cfg.AwardPolicy != streak.AwardOnExactDay {
		t.Fatalf("AwardPolicy default = %v", cfg.AwardPolicy)
	}
	if cfg.BcryptCost != auth.DefaultCost {
		t.Fatalf("BcryptCost default = %d", cfg.BcryptCost)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SYNKER_SEED_DEMO", "true")
	t.Setenv("SYNKER_AWARD_POLICY", "reaching")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.SeedDemo || cfg.AwardPolicy != streak.AwardOnReaching || cfg.BcryptCost != 4 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SYNKER_AWARD_POLICY", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad policy")
	}

	t.Setenv("SYNKER_AWARD_POLICY", "")
	t.Setenv("BCRYPT_COST", "lots")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad cost")
	}
}

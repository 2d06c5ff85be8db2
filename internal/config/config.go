package config

import (
	"fmt"
	"os"
	"strconv"

	"synker/internal/auth"
	"synker/internal/streak"
)

type Config struct {
	SeedDemo    bool
	AwardPolicy streak.AwardPolicy
	BcryptCost  int
}

// Load reads configuration from the environment, with defaults for anything
// unset. Callers load a .env file first if they want one.
func Load() (Config, error) {
	policy, err := streak.ParseAwardPolicy(os.Getenv("SYNKER_AWARD_POLICY"))
	if err != nil {
		return Config{}, err
	}

	cost := auth.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err = strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("BCRYPT_COST: %w", err)
		}
	}

	return Config{
		SeedDemo:    os.Getenv("SYNKER_SEED_DEMO") == "true",
		AwardPolicy: policy,
		BcryptCost:  cost,
	}, nil
}

package game

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds the recognized game options.
type Config struct {
	Players        int  // Number of participants (>= 2)
	CardsPerHand   int  // Cards dealt to each hand (3 in the default rules)
	KnockThreshold int  // Hand points required to force a knock
	Stakes         bool // Enables the fiche/pot betting variant
	StartingFiches int  // Balance each player starts with (stakes only)
	DealerAnte     int  // Fiches the dealer puts into the pot (stakes only)
}

// DefaultConfig returns the default rule set.
func DefaultConfig() Config {
	return Config{
		Players:        5,
		CardsPerHand:   3,
		KnockThreshold: 150,
		Stakes:         false,
		StartingFiches: 100,
		DealerAnte:     3,
	}
}

// FromEnv returns the defaults overridden by BESTIA_* environment variables.
// A .env file in the working directory is honored via godotenv.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.Players = envInt("BESTIA_PLAYERS", cfg.Players)
	cfg.CardsPerHand = envInt("BESTIA_CARDS_PER_HAND", cfg.CardsPerHand)
	cfg.KnockThreshold = envInt("BESTIA_KNOCK_THRESHOLD", cfg.KnockThreshold)
	cfg.Stakes = envBool("BESTIA_STAKES", cfg.Stakes)
	cfg.StartingFiches = envInt("BESTIA_FICHES", cfg.StartingFiches)
	cfg.DealerAnte = envInt("BESTIA_ANTE", cfg.DealerAnte)
	return cfg
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Players < 2 {
		return fmt.Errorf("need at least 2 players, got %d", c.Players)
	}
	if c.CardsPerHand < 1 {
		return fmt.Errorf("need at least 1 card per hand, got %d", c.CardsPerHand)
	}
	// One card is reserved for the trump indicator.
	if c.Players*c.CardsPerHand+1 > 40 {
		return fmt.Errorf("%d players with %d cards each do not fit a 40-card deck", c.Players, c.CardsPerHand)
	}
	if c.KnockThreshold < 0 {
		return fmt.Errorf("knock threshold must not be negative, got %d", c.KnockThreshold)
	}
	if c.Stakes && c.DealerAnte < 0 {
		return fmt.Errorf("dealer ante must not be negative, got %d", c.DealerAnte)
	}
	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

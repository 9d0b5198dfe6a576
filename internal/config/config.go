// Package config provides Viper-based configuration loading for the dice
// game. Every key has a default: a missing file key never fails a load,
// only an invalid value does.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/farkle/internal/game/scoring"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds the rule parameters consumed by the game core.
type GameConfig struct {
	// DiceCount is the number of dice in the set.
	DiceCount int `mapstructure:"dice_count"`
	// MaxScore is the banked total required to win.
	MaxScore int `mapstructure:"max_score"`
	// AllowJoinBetweenTurns permits adding players between completed turns.
	AllowJoinBetweenTurns bool `mapstructure:"allow_join_between_turns"`
	// ScoringRules maps combination names (three_1..three_6, straight,
	// three_pairs, single_1, single_5) to point values.
	ScoringRules map[string]int `mapstructure:"scoring_rules"`
	// Multipliers maps of-a-kind tiers (four_of_kind, five_of_kind,
	// six_of_kind) to score multipliers.
	Multipliers map[string]int `mapstructure:"multipliers"`
	// RulesDir optionally points at a directory of YAML rule presets.
	RulesDir string `mapstructure:"rules_dir"`
	// RulesPreset names the preset from RulesDir to apply over
	// ScoringRules. Empty means use ScoringRules as-is.
	RulesPreset string `mapstructure:"rules_preset"`
}

// multiplierTiers maps config multiplier keys to of-a-kind counts.
var multiplierTiers = map[string]int{
	"four_of_kind": 4,
	"five_of_kind": 5,
	"six_of_kind":  6,
}

// Rules builds the scoring rule set from the configured maps, falling back
// to the standard KCD values for any missing key.
//
// Postcondition: the result has every face and tier populated.
func (g GameConfig) Rules() scoring.Rules {
	rules := scoring.DefaultRules()
	for key, value := range g.ScoringRules {
		switch key {
		case "straight":
			rules.Straight = value
		case "three_pairs":
			rules.ThreePairs = value
		case "single_1":
			rules.SingleOne = value
		case "single_5":
			rules.SingleFive = value
		default:
			var face int
			if _, err := fmt.Sscanf(key, "three_%d", &face); err == nil && face >= 1 && face <= 6 {
				rules.Triples[face] = value
			}
		}
	}
	for key, factor := range g.Multipliers {
		if tier, ok := multiplierTiers[key]; ok {
			rules.Multipliers[tier] = factor
		}
	}
	return rules
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.DiceCount < 1 {
		errs = append(errs, fmt.Sprintf("game.dice_count must be >= 1, got %d", g.DiceCount))
	}
	if g.MaxScore < 1 {
		errs = append(errs, fmt.Sprintf("game.max_score must be >= 1, got %d", g.MaxScore))
	}
	for key, value := range g.ScoringRules {
		if value < 0 {
			errs = append(errs, fmt.Sprintf("game.scoring_rules.%s must be >= 0, got %d", key, value))
		}
	}
	for key, factor := range g.Multipliers {
		if factor < 1 {
			errs = append(errs, fmt.Sprintf("game.multipliers.%s must be >= 1, got %d", key, factor))
		}
	}
	if g.RulesPreset != "" && g.RulesDir == "" {
		errs = append(errs, "game.rules_preset requires game.rules_dir")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the
// file entirely and yields defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with FARKLE_ prefix
	v.SetEnvPrefix("FARKLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.dice_count", 6)
	v.SetDefault("game.max_score", 5000)
	v.SetDefault("game.allow_join_between_turns", false)
	v.SetDefault("game.scoring_rules", map[string]int{
		"three_1":     1000,
		"three_2":     200,
		"three_3":     300,
		"three_4":     400,
		"three_5":     500,
		"three_6":     600,
		"straight":    1500,
		"three_pairs": 1000,
		"single_1":    100,
		"single_5":    50,
	})
	v.SetDefault("game.multipliers", map[string]int{
		"four_of_kind": 2,
		"five_of_kind": 3,
		"six_of_kind":  4,
	})
}

// Package config loads and validates the reward setup used by the tools in
// cmd/. The reward coefficients are the only real configuration surface: they
// are read once, validated, and handed to the reward constructors.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mbt-gym-go/logs"
)

// Reward variant kinds accepted in the config file.
const (
	KindPnL                        = "pnl"
	KindCJCriterion                = "cj_criterion"
	KindTerminalExponentialUtility = "terminal_exponential_utility"
	KindInventoryAdjustedPnL       = "inventory_adjusted_pnl"
)

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Reward  RewardConfig  `yaml:"reward"`
	Log     logs.Config   `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RewardConfig selects a reward variant and carries its coefficients.
type RewardConfig struct {
	Kind              string          `yaml:"kind"`
	CJ                CJParams        `yaml:"cj"`
	Utility           UtilityParams   `yaml:"utility"`
	InventoryAdjusted InventoryParams `yaml:"inventoryAdjusted"`
}

type CJParams struct {
	Phi             float64 `yaml:"phi"`
	TerminalPenalty float64 `yaml:"terminalPenalty"`
}

type UtilityParams struct {
	RiskAversion float64 `yaml:"riskAversion"`
}

type InventoryParams struct {
	PerStepInventoryAversion  float64 `yaml:"perStepInventoryAversion"`
	TerminalInventoryAversion float64 `yaml:"terminalInventoryAversion"`
	InventoryExponent         float64 `yaml:"inventoryExponent"`
	StepSize                  float64 `yaml:"stepSize"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // e.g. ":9100"; empty disables the server
}

// Load reads YAML config from path and applies basic validation.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Default returns a config with the standard coefficients for every variant,
// so a file only has to name the kind it wants and override what differs.
func Default() AppConfig {
	return AppConfig{
		Reward: RewardConfig{
			Kind: KindPnL,
			CJ:   CJParams{Phi: 0.01, TerminalPenalty: 0.01},
			Utility: UtilityParams{
				RiskAversion: 0.1,
			},
			InventoryAdjusted: InventoryParams{
				PerStepInventoryAversion:  0.01,
				TerminalInventoryAversion: 0.0,
				InventoryExponent:         2.0,
				StepSize:                  1.0 / 200,
			},
		},
		Log: logs.DefaultConfig(),
	}
}

// Validate ensures required fields are present. Coefficient ranges are
// checked again by the reward constructors; this catches config mistakes
// early with file-level context.
func Validate(cfg AppConfig) error {
	switch cfg.Reward.Kind {
	case KindPnL, KindCJCriterion, KindTerminalExponentialUtility, KindInventoryAdjustedPnL:
	case "":
		return errors.New("reward.kind is required")
	default:
		return fmt.Errorf("unknown reward.kind %q", cfg.Reward.Kind)
	}
	if cfg.Reward.CJ.Phi < 0 {
		return errors.New("reward.cj.phi must be >= 0")
	}
	if cfg.Reward.CJ.TerminalPenalty < 0 {
		return errors.New("reward.cj.terminalPenalty must be >= 0")
	}
	if cfg.Reward.Utility.RiskAversion < 0 {
		return errors.New("reward.utility.riskAversion must be >= 0")
	}
	if cfg.Reward.InventoryAdjusted.PerStepInventoryAversion < 0 {
		return errors.New("reward.inventoryAdjusted.perStepInventoryAversion must be >= 0")
	}
	if cfg.Reward.InventoryAdjusted.TerminalInventoryAversion < 0 {
		return errors.New("reward.inventoryAdjusted.terminalInventoryAversion must be >= 0")
	}
	if cfg.Reward.InventoryAdjusted.InventoryExponent <= 0 {
		return errors.New("reward.inventoryAdjusted.inventoryExponent must be > 0")
	}
	return nil
}

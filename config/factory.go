package config

import (
	"fmt"

	"mbt-gym-go/reward"
)

// Build constructs the reward function named by cfg. The variant set is
// closed; adding a kind means adding a case here.
func Build(cfg RewardConfig) (reward.RewardFunction, error) {
	switch cfg.Kind {
	case KindPnL:
		return reward.NewPnL(), nil
	case KindCJCriterion:
		return reward.NewCJCriterion(reward.CJConfig{
			Phi:             cfg.CJ.Phi,
			TerminalPenalty: cfg.CJ.TerminalPenalty,
		})
	case KindTerminalExponentialUtility:
		return reward.NewTerminalExponentialUtility(cfg.Utility.RiskAversion)
	case KindInventoryAdjustedPnL:
		return reward.NewInventoryAdjustedPnL(reward.InventoryAdjustedConfig{
			PerStepInventoryAversion:  cfg.InventoryAdjusted.PerStepInventoryAversion,
			TerminalInventoryAversion: cfg.InventoryAdjusted.TerminalInventoryAversion,
			InventoryExponent:         cfg.InventoryAdjusted.InventoryExponent,
			StepSize:                  cfg.InventoryAdjusted.StepSize,
		})
	default:
		return nil, fmt.Errorf("unknown reward kind %q", cfg.Kind)
	}
}

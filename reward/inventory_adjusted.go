package reward

import (
	"fmt"
	"math"
)

// InventoryAdjustedConfig 配置逐步库存惩罚。
type InventoryAdjustedConfig struct {
	// PerStepInventoryAversion is charged on every non-terminal step,
	// scaled by StepSize to normalize against episode length.
	PerStepInventoryAversion float64
	// TerminalInventoryAversion replaces the per-step coefficient on the
	// terminal step.
	TerminalInventoryAversion float64
	// InventoryExponent shapes the penalty; 2.0 gives a quadratic penalty.
	InventoryExponent float64
	// StepSize is the environment step length as a fraction of the episode.
	StepSize float64
}

// DefaultInventoryAdjustedConfig returns the standard coefficients.
func DefaultInventoryAdjustedConfig() InventoryAdjustedConfig {
	return InventoryAdjustedConfig{
		PerStepInventoryAversion:  0.01,
		TerminalInventoryAversion: 0.0,
		InventoryExponent:         2.0,
		StepSize:                  1.0 / 200,
	}
}

// InventoryAdjustedPnL is PnL minus a penalty on the magnitude of the
// position held after the step. The penalty coefficient switches between a
// small per-step regime and a distinct terminal regime.
type InventoryAdjustedPnL struct {
	perStepAversion  float64
	terminalAversion float64
	exponent         float64
	stepSize         float64
	pnl              PnL
}

// NewInventoryAdjustedPnL validates cfg and builds the reward.
func NewInventoryAdjustedPnL(cfg InventoryAdjustedConfig) (*InventoryAdjustedPnL, error) {
	if cfg.PerStepInventoryAversion < 0 {
		return nil, fmt.Errorf("reward: per-step inventory aversion must be >= 0, got %v", cfg.PerStepInventoryAversion)
	}
	if cfg.TerminalInventoryAversion < 0 {
		return nil, fmt.Errorf("reward: terminal inventory aversion must be >= 0, got %v", cfg.TerminalInventoryAversion)
	}
	if cfg.InventoryExponent <= 0 {
		return nil, fmt.Errorf("reward: inventory exponent must be > 0, got %v", cfg.InventoryExponent)
	}
	return &InventoryAdjustedPnL{
		perStepAversion:  cfg.PerStepInventoryAversion,
		terminalAversion: cfg.TerminalInventoryAversion,
		exponent:         cfg.InventoryExponent,
		stepSize:         cfg.StepSize,
		pnl:              NewPnL(),
	}, nil
}

// Calculate subtracts the inventory penalty from the step PnL. The terminal
// flag selects which aversion coefficient applies; both regimes share the
// same formula otherwise.
func (r *InventoryAdjustedPnL) Calculate(current Observation, action Action, next Observation, isTerminal bool) float64 {
	aversion := r.stepSize * r.perStepAversion
	if isTerminal {
		aversion = r.terminalAversion
	}
	pnl := r.pnl.Calculate(current, action, next, isTerminal)
	return pnl - aversion*math.Pow(math.Abs(next[IdxInventory]), r.exponent)
}

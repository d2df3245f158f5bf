package reward

import "fmt"

// CJConfig 配置 Cartea-Jaimungal 风格的奖励。
type CJConfig struct {
	// Phi scales the running inventory-change penalty by step duration.
	Phi float64
	// TerminalPenalty is charged once, on the terminal step only.
	TerminalPenalty float64
}

// DefaultCJConfig returns the standard coefficients.
func DefaultCJConfig() CJConfig {
	return CJConfig{Phi: 0.01, TerminalPenalty: 0.01}
}

// CJCriterion is PnL minus a running inventory-velocity penalty, with an
// extra one-time surcharge at episode end.
type CJCriterion struct {
	phi             float64
	terminalPenalty float64
	pnl             PnL
}

// NewCJCriterion validates cfg and builds the reward. Negative coefficients
// are rejected, never clamped.
func NewCJCriterion(cfg CJConfig) (*CJCriterion, error) {
	if cfg.Phi < 0 {
		return nil, fmt.Errorf("reward: phi must be >= 0, got %v", cfg.Phi)
	}
	if cfg.TerminalPenalty < 0 {
		return nil, fmt.Errorf("reward: terminal penalty must be >= 0, got %v", cfg.TerminalPenalty)
	}
	return &CJCriterion{
		phi:             cfg.Phi,
		terminalPenalty: cfg.TerminalPenalty,
		pnl:             NewPnL(),
	}, nil
}

// Calculate penalizes inventory swings in proportion to elapsed step time.
func (c *CJCriterion) Calculate(current Observation, action Action, next Observation, isTerminal bool) float64 {
	pnl := c.pnl.Calculate(current, action, next, isTerminal)
	dt := next[IdxTime] - current[IdxTime]
	dInv := next[IdxInventory] - current[IdxInventory]
	r := pnl - dt*c.phi*dInv*dInv
	if isTerminal {
		r -= c.terminalPenalty * dInv * dInv
	}
	return r
}

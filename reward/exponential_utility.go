package reward

import (
	"fmt"
	"math"
)

// TerminalExponentialUtility is a sparse reward: zero on every intermediate
// step, negative exponential utility of terminal wealth on the last one.
// Higher risk aversion punishes variance in terminal wealth more severely.
type TerminalExponentialUtility struct {
	riskAversion float64
}

// DefaultRiskAversion is the standard risk-aversion coefficient.
const DefaultRiskAversion = 0.1

// NewTerminalExponentialUtility builds the reward; riskAversion must be >= 0.
func NewTerminalExponentialUtility(riskAversion float64) (*TerminalExponentialUtility, error) {
	if riskAversion < 0 {
		return nil, fmt.Errorf("reward: risk aversion must be >= 0, got %v", riskAversion)
	}
	return &TerminalExponentialUtility{riskAversion: riskAversion}, nil
}

// Calculate returns -exp(-riskAversion * wealth(next)) on the terminal step,
// zero otherwise.
func (u *TerminalExponentialUtility) Calculate(_ Observation, _ Action, next Observation, isTerminal bool) float64 {
	if !isTerminal {
		return 0
	}
	return -math.Exp(-u.riskAversion * markToMarket(next))
}

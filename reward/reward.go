// Package reward implements the reward functions used to train a
// market-making RL agent. Every variant maps one environment transition to a
// scalar; instances are immutable after construction and safe for concurrent
// use.
package reward

import (
	"errors"
	"fmt"
	"math"
)

// Observation 固定布局的观测向量: [price, cash, inventory, time]。
type Observation []float64

// Observation field indices.
const (
	IdxPrice     = 0
	IdxCash      = 1
	IdxInventory = 2
	IdxTime      = 3

	// ObservationLen is the number of fields every valid observation carries.
	ObservationLen = 4
)

// ErrBadObservation indicates a malformed observation vector.
var ErrBadObservation = errors.New("reward: bad observation")

// Validate checks shape and finiteness. Calculate implementations do not call
// this; the caller contract guarantees well-formed vectors. Boundary code
// (e.g. trajectory decoding) should.
func (o Observation) Validate() error {
	if len(o) < ObservationLen {
		return fmt.Errorf("%w: want %d fields, got %d", ErrBadObservation, ObservationLen, len(o))
	}
	for i, v := range o[:ObservationLen] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: field %d is not finite", ErrBadObservation, i)
		}
	}
	return nil
}

// Price returns the mid price field.
func (o Observation) Price() float64 { return o[IdxPrice] }

// Cash returns the cash field.
func (o Observation) Cash() float64 { return o[IdxCash] }

// Inventory returns the signed position size field.
func (o Observation) Inventory() float64 { return o[IdxInventory] }

// Time returns the elapsed episode time field.
func (o Observation) Time() float64 { return o[IdxTime] }

// markToMarket 现金加上按 mid 价计价的仓位。
func markToMarket(o Observation) float64 {
	return o[IdxCash] + o[IdxPrice]*o[IdxInventory]
}

// Action is whatever the agent emitted for the step. None of the current
// variants read it; it is carried for interface completeness.
type Action = any

// Transition is one environment step as recorded by a rollout.
type Transition struct {
	Current  Observation `json:"obs"`
	Action   Action      `json:"action"`
	Next     Observation `json:"next_obs"`
	Terminal bool        `json:"terminal"`
}

// RewardFunction computes the training signal for one transition.
//
// Calculate must be pure: no side effects, output depends only on the
// arguments and configuration fixed at construction. Behavior on observation
// vectors shorter than ObservationLen is undefined.
type RewardFunction interface {
	Calculate(current Observation, action Action, next Observation, isTerminal bool) float64
}

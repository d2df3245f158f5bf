package reward

import (
	"math"
	"testing"
)

func TestPnLNoChangeNoReward(t *testing.T) {
	pnl := NewPnL()
	obs := Observation{100.0, 50.0, 2.0, 0.5}
	if got := pnl.Calculate(obs, nil, obs, false); got != 0 {
		t.Fatalf("expected zero reward for identical observations, got %v", got)
	}
}

func TestPnLAntisymmetry(t *testing.T) {
	pnl := NewPnL()
	cases := []struct {
		name string
		a, b Observation
	}{
		{"price move", Observation{100, 0, 1, 0}, Observation{105, 0, 1, 1}},
		{"cash move", Observation{100, 10, 0, 0}, Observation{100, -3, 0, 1}},
		{"short position", Observation{100, 200, -2, 0}, Observation{98, 150, -1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forward := pnl.Calculate(tc.a, nil, tc.b, false)
			backward := pnl.Calculate(tc.b, nil, tc.a, false)
			if forward != -backward {
				t.Fatalf("expected antisymmetry, got %v and %v", forward, backward)
			}
		})
	}
}

func TestPnLMarkToMarket(t *testing.T) {
	pnl := NewPnL()
	current := Observation{100.0, 0.0, 0, 0.0}
	next := Observation{101.0, 0.0, 1, 1.0}
	// (0 + 101*1) - (0 + 100*0) = 101
	if got := pnl.Calculate(current, nil, next, false); got != 101.0 {
		t.Fatalf("expected 101.0, got %v", got)
	}
}

func TestPnLIgnoresTerminalFlag(t *testing.T) {
	pnl := NewPnL()
	current := Observation{100, 5, 1, 0}
	next := Observation{102, 5, 1, 1}
	if pnl.Calculate(current, nil, next, false) != pnl.Calculate(current, nil, next, true) {
		t.Fatalf("terminal flag must not change PnL")
	}
}

func TestObservationValidate(t *testing.T) {
	if err := (Observation{100, 0, 1, 0}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Observation{100, 0, 1}).Validate(); err == nil {
		t.Fatalf("expected error for short observation")
	}
	if err := (Observation{100, math.NaN(), 1, 0}).Validate(); err == nil {
		t.Fatalf("expected error for NaN field")
	}
	if err := (Observation{math.Inf(1), 0, 1, 0}).Validate(); err == nil {
		t.Fatalf("expected error for infinite field")
	}
}

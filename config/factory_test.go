package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbt-gym-go/reward"
)

func TestBuildAllKinds(t *testing.T) {
	current := reward.Observation{100.0, 0.0, 0, 0.0}
	next := reward.Observation{101.0, 0.0, 1, 1.0}

	for _, kind := range []string{KindPnL, KindCJCriterion, KindTerminalExponentialUtility, KindInventoryAdjustedPnL} {
		cfg := Default().Reward
		cfg.Kind = kind
		rf, err := Build(cfg)
		require.NoError(t, err, kind)
		require.NotNil(t, rf, kind)
		// Smoke: finite output on a well-formed transition.
		got := rf.Calculate(current, nil, next, false)
		assert.False(t, got != got, "NaN reward from %s", kind)
	}
}

func TestBuildMatchesDirectConstruction(t *testing.T) {
	cfg := Default().Reward
	cfg.Kind = KindCJCriterion
	cfg.CJ = CJParams{Phi: 0.01, TerminalPenalty: 0.01}
	rf, err := Build(cfg)
	require.NoError(t, err)

	current := reward.Observation{100.0, 0.0, 0, 0.0}
	next := reward.Observation{101.0, 0.0, 1, 1.0}
	assert.InDelta(t, 100.99, rf.Calculate(current, nil, next, false), 1e-12)
}

func TestBuildRejectsBadCoefficients(t *testing.T) {
	cfg := Default().Reward
	cfg.Kind = KindInventoryAdjustedPnL
	cfg.InventoryAdjusted.InventoryExponent = -1
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build(RewardConfig{Kind: "bogus"})
	assert.Error(t, err)
}

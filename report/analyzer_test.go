package report

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbt-gym-go/reward"
)

func TestAnalyzerSummary(t *testing.T) {
	a := NewAnalyzer()
	for _, r := range []float64{1, 2, 3, -1} {
		a.OnStep(r, false)
	}
	a.OnStep(5, true)

	s, err := a.Summary()
	require.NoError(t, err)
	assert.Equal(t, 5, s.Steps)
	assert.InDelta(t, 10.0, s.Total, 1e-12)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.InDelta(t, -1.0, s.Min, 1e-12)
	assert.InDelta(t, 5.0, s.Max, 1e-12)
	assert.InDelta(t, 5.0, s.TerminalReward, 1e-12)
	assert.True(t, s.StdDev > 0)
}

func TestAnalyzerEmpty(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.Summary()
	assert.Error(t, err)
}

func TestAnalyzerReset(t *testing.T) {
	a := NewAnalyzer()
	a.OnStep(1, true)
	a.Reset()
	_, err := a.Summary()
	assert.Error(t, err)
}

func TestReadTransitions(t *testing.T) {
	input := `
{"obs":[100,0,0,0],"action":1,"next_obs":[101,0,1,1],"terminal":false}

{"obs":[101,0,1,1],"action":0,"next_obs":[102,0,1,2],"terminal":true}
`
	trs, err := ReadTransitions(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, trs, 2)
	assert.False(t, trs[0].Terminal)
	assert.True(t, trs[1].Terminal)
	assert.Equal(t, 101.0, trs[0].Next[reward.IdxPrice])
}

func TestReadTransitionsRejectsBadShape(t *testing.T) {
	_, err := ReadTransitions(strings.NewReader(`{"obs":[100,0,0],"next_obs":[101,0,1,1]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, reward.ErrBadObservation)
}

func TestReadTransitionsRejectsBadJSON(t *testing.T) {
	_, err := ReadTransitions(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	trs := []reward.Transition{
		{Current: reward.Observation{100, 0, 0, 0}, Next: reward.Observation{101, 0, 1, 1}},
		{Current: reward.Observation{101, 0, 1, 1}, Next: reward.Observation{102, 0, 1, 2}, Terminal: true},
	}
	rewards := Replay(reward.NewPnL(), trs)
	require.Len(t, rewards, 2)
	assert.InDelta(t, 101.0, rewards[0], 1e-12)
	assert.InDelta(t, 1.0, rewards[1], 1e-12)

	total := rewards[0] + rewards[1]
	assert.False(t, math.IsNaN(total))
}

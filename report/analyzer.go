// Package report accumulates per-step rewards and summarizes episodes.
package report

import (
	"errors"
	"sync"

	"github.com/montanaflynn/stats"
)

// Stats contains statistics computed by the analyzer
type Stats struct {
	Steps          int
	Total          float64
	Mean           float64
	StdDev         float64
	Min            float64
	Max            float64
	TerminalReward float64
}

// Analyzer collects step rewards for one episode at a time.
type Analyzer struct {
	mu       sync.Mutex
	rewards  []float64
	terminal float64
	sawEnd   bool
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// OnStep records one step reward; isTerminal marks the episode's last step.
func (a *Analyzer) OnStep(r float64, isTerminal bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rewards = append(a.rewards, r)
	if isTerminal {
		a.terminal = r
		a.sawEnd = true
	}
}

// Reset clears accumulated state for the next episode.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rewards = a.rewards[:0]
	a.terminal = 0
	a.sawEnd = false
}

// Summary computes episode statistics over the recorded rewards.
func (a *Analyzer) Summary() (Stats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.rewards) == 0 {
		return Stats{}, errors.New("report: no rewards recorded")
	}
	data := stats.Float64Data(a.rewards)
	total, err := data.Sum()
	if err != nil {
		return Stats{}, err
	}
	mean, err := data.Mean()
	if err != nil {
		return Stats{}, err
	}
	sd, err := data.StandardDeviation()
	if err != nil {
		return Stats{}, err
	}
	min, err := data.Min()
	if err != nil {
		return Stats{}, err
	}
	max, err := data.Max()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Steps:          len(a.rewards),
		Total:          total,
		Mean:           mean,
		StdDev:         sd,
		Min:            min,
		Max:            max,
		TerminalReward: a.terminal,
	}, nil
}

package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mbt-gym-go/reward"
)

// ReadTransitions decodes a JSONL trajectory, one transition per line. Blank
// lines are skipped. Observation shape is validated here so malformed records
// fail at the boundary instead of inside reward code.
func ReadTransitions(r io.Reader) ([]reward.Transition, error) {
	var out []reward.Transition
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var tr reward.Transition
		if err := json.Unmarshal([]byte(text), &tr); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := tr.Current.Validate(); err != nil {
			return nil, fmt.Errorf("line %d obs: %w", line, err)
		}
		if err := tr.Next.Validate(); err != nil {
			return nil, fmt.Errorf("line %d next_obs: %w", line, err)
		}
		out = append(out, tr)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Replay scores a recorded trajectory with rf, returning one reward per
// transition in order.
func Replay(rf reward.RewardFunction, transitions []reward.Transition) []float64 {
	rewards := make([]float64, 0, len(transitions))
	for _, tr := range transitions {
		rewards = append(rewards, rf.Calculate(tr.Current, tr.Action, tr.Next, tr.Terminal))
	}
	return rewards
}

package reward

// PnL rewards the change in mark-to-market portfolio value over the step.
// It is the baseline building block the other variants reuse.
type PnL struct{}

// NewPnL creates the mark-to-market PnL reward. It has no configuration.
func NewPnL() PnL { return PnL{} }

// Calculate returns market value of next minus market value of current.
// The terminal flag is accepted but unused.
func (PnL) Calculate(current Observation, _ Action, next Observation, _ bool) float64 {
	return markToMarket(next) - markToMarket(current)
}

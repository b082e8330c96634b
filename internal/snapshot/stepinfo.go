package snapshot

// StepInfo carries the optional per-step scalars supplied alongside a
// snapshot: the agent's action, the reward for the step, the episode
// number, and the cumulative episode reward. A nil field means "not
// provided this call".
type StepInfo struct {
	Action      *int
	Reward      *float64
	Episode     *int
	TotalReward *float64
}

// Int returns a pointer to v, for building StepInfo literals.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for building StepInfo literals.
func Float(v float64) *float64 { return &v }

package viz

import "fmt"

// Formatting helpers kept separate from drawing so they can be tested
// without a window.

// Percent formats a normalized value as a percentage with one decimal.
// The value is not clamped; 1.2 formats as "120.0%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// SignedReward formats a reward with an explicit sign and one decimal.
func SignedReward(r float64) string {
	return fmt.Sprintf("%+.1f", r)
}

// StepProgress formats the current step against the configured episode
// length, e.g. "15/200".
func StepProgress(step, episodeLength int) string {
	return fmt.Sprintf("%d/%d", step, episodeLength)
}

// DifficultyCaption formats the difficulty line shown in the lesson panel.
func DifficultyCaption(d float64) string {
	return fmt.Sprintf("Difficulty: %s (%.2f)", DifficultyLabel(d), d)
}

package snapshot

// AACSymbols are the six fixed phrase buttons of the communication panel,
// in display order.
var AACSymbols = [NumAACButtons]string{
	"I want", "Help", "Yes",
	"No", "More", "Stop",
}

// DefaultActionNames returns the adaptation agent's assumed action space.
// The environment gives no guarantee this table is exhaustive, so callers
// may override it through configuration; lookups outside the table fall
// back to the waiting placeholder.
func DefaultActionNames() []string {
	return []string{
		"Keep current layout",
		"Optimize AAC buttons",
		"Increase difficulty",
		"Decrease difficulty",
		"Provide hint",
		"Predict next word",
		"Adjust button sizes",
	}
}

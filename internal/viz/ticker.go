package viz

// actionDisplay keeps the most recent agent action visible for a fixed
// number of render calls after the call that set it. A call that carries
// an action rearms the window without consuming it; calls without an
// action consume one frame each.
type actionDisplay struct {
	last      int
	remaining int
}

// Observe records the action for this render call, if any, and reports
// which action index is currently visible. The boolean is false once the
// window has elapsed.
func (d *actionDisplay) Observe(action *int, window int) (int, bool) {
	if action != nil {
		d.last = *action
		d.remaining = window
		return d.last, true
	}
	if d.remaining > 0 {
		d.remaining--
		return d.last, true
	}
	return 0, false
}

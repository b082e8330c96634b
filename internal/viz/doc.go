// Package viz renders the adaptive e-learning dashboard onto a raylib
// window: a lesson panel, the six-button AAC communication grid, student
// performance metric bars, and the adaptation agent's most recent action.
//
// The visualizer is caller-driven. The host loop calls [Visualizer.Render]
// once per environment step with a fresh [snapshot.Snapshot]; the call
// draws the frame, blocks to the configured frame rate, and reports
// whether the user asked to quit (ESC, Q, or window close).
//
// Tier thresholds, difficulty buckets, and numeric formatting live in
// small pure helpers so they can be tested without opening a window.
package viz

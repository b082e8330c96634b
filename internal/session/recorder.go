package session

import (
	"github.com/nkubana0/brainiac/internal/snapshot"
)

// Recorder accumulates frames during a run. It is a sidecar owned by the
// host loop, not by the visualizer.
type Recorder struct {
	frames []Frame
}

func NewRecorder() *Recorder {
	return &Recorder{frames: make([]Frame, 0, 256)}
}

// Observe captures one rendered step.
func (r *Recorder) Observe(s snapshot.Snapshot, info snapshot.StepInfo) {
	r.frames = append(r.frames, Capture(s, info))
}

func (r *Recorder) Frames() []Frame { return r.frames }

func (r *Recorder) Len() int { return len(r.frames) }

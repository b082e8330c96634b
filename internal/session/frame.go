package session

import (
	"github.com/nkubana0/brainiac/internal/snapshot"
)

// Frame is one recorded dashboard step: the snapshot values after default
// substitution plus the per-step scalars. Action is -1 when the step
// carried no agent action.
type Frame struct {
	Step         int
	Difficulty   float64
	Accuracy     float64
	Engagement   float64
	Efficiency   float64
	Hints        int
	TimeOnLesson int
	Usage        []float64
	Action       int
	Reward       float64
	Episode      int
	TotalReward  float64
}

// Capture flattens a snapshot and its step context into a Frame.
func Capture(s snapshot.Snapshot, info snapshot.StepInfo) Frame {
	f := Frame{
		Step:         s.Step(),
		Difficulty:   s.Difficulty(),
		Accuracy:     s.Accuracy(),
		Engagement:   s.Engagement(),
		Efficiency:   s.Efficiency(),
		Hints:        s.Hints(),
		TimeOnLesson: s.TimeOnLesson(),
		Usage:        s.ButtonUsage(),
		Action:       -1,
	}
	if info.Action != nil {
		f.Action = *info.Action
	}
	if info.Reward != nil {
		f.Reward = *info.Reward
	}
	if info.Episode != nil {
		f.Episode = *info.Episode
	}
	if info.TotalReward != nil {
		f.TotalReward = *info.TotalReward
	}
	return f
}

// Snapshot rebuilds the environment snapshot for replay.
func (f Frame) Snapshot() snapshot.Snapshot {
	usage := make([]float64, len(f.Usage))
	copy(usage, f.Usage)
	return snapshot.Snapshot{
		snapshot.KeyLessonDifficulty:    f.Difficulty,
		snapshot.KeyStudentAccuracy:     f.Accuracy,
		snapshot.KeyEngagementLevel:     f.Engagement,
		snapshot.KeyInterfaceEfficiency: f.Efficiency,
		snapshot.KeyHintsRequested:      f.Hints,
		snapshot.KeyTimeOnLesson:        f.TimeOnLesson,
		snapshot.KeyAACButtonUsage:      usage,
		snapshot.KeyStep:                f.Step,
	}
}

// Info rebuilds the per-step scalars for replay.
func (f Frame) Info() snapshot.StepInfo {
	info := snapshot.StepInfo{
		Reward:      snapshot.Float(f.Reward),
		TotalReward: snapshot.Float(f.TotalReward),
	}
	if f.Action >= 0 {
		info.Action = snapshot.Int(f.Action)
	}
	if f.Episode > 0 {
		info.Episode = snapshot.Int(f.Episode)
	}
	return info
}

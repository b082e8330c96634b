// Package env provides a scripted stand-in for the external tutoring
// environment, used by the demo and live commands. It produces seeded,
// plausible snapshot streams; it is not a learning environment.
package env

import (
	"math/rand"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

const numActions = 7

// Scripted generates a synthetic stream of environment snapshots: metric
// random walks, drifting AAC button usage, periodic agent actions, and
// uniform(-5, 10) rewards.
type Scripted struct {
	rng           *rand.Rand
	episodeLength int

	step         int
	episode      int
	difficulty   float64
	accuracy     float64
	engagement   float64
	efficiency   float64
	hints        int
	timeOnLesson int
	usage        []float64
	totalReward  float64
}

// NewScripted creates a generator with the given seed and episode length.
func NewScripted(seed int64, episodeLength int) *Scripted {
	if episodeLength <= 0 {
		episodeLength = 200
	}
	usage := make([]float64, snapshot.NumAACButtons)
	for i := range usage {
		usage[i] = 1.0 / snapshot.NumAACButtons
	}
	return &Scripted{
		rng:           rand.New(rand.NewSource(seed)),
		episodeLength: episodeLength,
		episode:       1,
		difficulty:    0.5,
		accuracy:      0.7,
		engagement:    0.8,
		efficiency:    0.6,
		usage:         usage,
	}
}

// Step advances the script by one environment step and returns the
// snapshot and per-step scalars for it. An action is emitted every third
// step; the other calls leave StepInfo.Action nil so the dashboard's
// action countdown is exercised.
func (e *Scripted) Step() (snapshot.Snapshot, snapshot.StepInfo) {
	e.step++
	e.timeOnLesson++
	if e.step > e.episodeLength {
		e.step = 1
		e.episode++
		e.totalReward = 0
		e.hints = 0
		e.timeOnLesson = 1
	}

	e.difficulty = walk(e.rng, e.difficulty, 0.04, 0.05, 0.95)
	e.accuracy = walk(e.rng, e.accuracy, 0.05, 0, 1)
	e.engagement = walk(e.rng, e.engagement, 0.06, 0, 1)
	e.efficiency = walk(e.rng, e.efficiency, 0.03, 0, 1)
	if e.rng.Float64() < 0.15 {
		e.hints++
	}
	e.driftUsage()

	reward := -5 + e.rng.Float64()*15
	e.totalReward += reward

	info := snapshot.StepInfo{
		Reward:      snapshot.Float(reward),
		Episode:     snapshot.Int(e.episode),
		TotalReward: snapshot.Float(e.totalReward),
	}
	if e.step%3 == 1 {
		info.Action = snapshot.Int(e.rng.Intn(numActions))
	}

	usage := make([]float64, len(e.usage))
	copy(usage, e.usage)

	return snapshot.Snapshot{
		snapshot.KeyLessonDifficulty:    e.difficulty,
		snapshot.KeyStudentAccuracy:     e.accuracy,
		snapshot.KeyEngagementLevel:     e.engagement,
		snapshot.KeyInterfaceEfficiency: e.efficiency,
		snapshot.KeyHintsRequested:      e.hints,
		snapshot.KeyTimeOnLesson:        e.timeOnLesson,
		snapshot.KeyAACButtonUsage:      usage,
		snapshot.KeyStep:                e.step,
	}, info
}

func (e *Scripted) driftUsage() {
	sum := 0.0
	for i := range e.usage {
		e.usage[i] += (e.rng.Float64() - 0.5) * 0.04
		if e.usage[i] < 0.01 {
			e.usage[i] = 0.01
		}
		sum += e.usage[i]
	}
	for i := range e.usage {
		e.usage[i] /= sum
	}
}

func walk(rng *rand.Rand, v, step, lo, hi float64) float64 {
	v += (rng.Float64() - 0.5) * 2 * step
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

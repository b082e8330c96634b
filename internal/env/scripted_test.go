package env

import (
	"math"
	"testing"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

func TestScripted_Deterministic(t *testing.T) {
	a := NewScripted(42, 200)
	b := NewScripted(42, 200)

	for i := 0; i < 20; i++ {
		sa, ia := a.Step()
		sb, ib := b.Step()
		if sa.Difficulty() != sb.Difficulty() || sa.Engagement() != sb.Engagement() {
			t.Fatalf("step %d: same seed produced different snapshots", i)
		}
		if *ia.Reward != *ib.Reward {
			t.Fatalf("step %d: same seed produced different rewards", i)
		}
	}
}

func TestScripted_RangesAndUsage(t *testing.T) {
	e := NewScripted(7, 200)

	for i := 0; i < 100; i++ {
		s, _ := e.Step()

		for _, key := range []string{
			snapshot.KeyLessonDifficulty,
			snapshot.KeyStudentAccuracy,
			snapshot.KeyEngagementLevel,
			snapshot.KeyInterfaceEfficiency,
		} {
			v := s.Float(key, -1)
			if v < 0 || v > 1 {
				t.Fatalf("step %d: %s = %v out of [0,1]", i, key, v)
			}
		}

		usage := s.ButtonUsage()
		sum := 0.0
		for _, u := range usage {
			if u < 0 {
				t.Fatalf("step %d: negative usage %v", i, u)
			}
			sum += u
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("step %d: usage sums to %v, want 1", i, sum)
		}
	}
}

func TestScripted_EpisodeRollover(t *testing.T) {
	e := NewScripted(1, 10)

	var lastEpisode int
	for i := 0; i < 25; i++ {
		s, info := e.Step()
		if s.Step() < 1 || s.Step() > 10 {
			t.Fatalf("step %d out of range 1..10", s.Step())
		}
		lastEpisode = *info.Episode
	}
	// 25 steps over length-10 episodes lands in episode 3.
	if lastEpisode != 3 {
		t.Errorf("episode = %d, want 3", lastEpisode)
	}
}

func TestScripted_ActionCadence(t *testing.T) {
	e := NewScripted(3, 200)

	for i := 0; i < 12; i++ {
		_, info := e.Step()
		wantAction := i%3 == 0 // steps 1, 4, 7, ...
		if (info.Action != nil) != wantAction {
			t.Fatalf("step %d: action presence = %v, want %v", i+1, info.Action != nil, wantAction)
		}
		if info.Action != nil && (*info.Action < 0 || *info.Action >= 7) {
			t.Fatalf("step %d: action %d outside table", i+1, *info.Action)
		}
	}
}

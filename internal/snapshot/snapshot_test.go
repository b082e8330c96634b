package snapshot

import (
	"math"
	"testing"
)

func TestDefaults(t *testing.T) {
	s := Snapshot{}

	if got := s.Difficulty(); got != DefaultDifficulty {
		t.Errorf("Difficulty() = %v, want %v", got, DefaultDifficulty)
	}
	if got := s.Accuracy(); got != DefaultAccuracy {
		t.Errorf("Accuracy() = %v, want %v", got, DefaultAccuracy)
	}
	if got := s.Engagement(); got != DefaultEngagement {
		t.Errorf("Engagement() = %v, want %v", got, DefaultEngagement)
	}
	if got := s.Efficiency(); got != DefaultEfficiency {
		t.Errorf("Efficiency() = %v, want %v", got, DefaultEfficiency)
	}
	if got := s.Hints(); got != 0 {
		t.Errorf("Hints() = %d, want 0", got)
	}
	if got := s.TimeOnLesson(); got != 0 {
		t.Errorf("TimeOnLesson() = %d, want 0", got)
	}
	if got := s.Step(); got != 0 {
		t.Errorf("Step() = %d, want 0", got)
	}
}

func TestDefaultButtonUsage(t *testing.T) {
	usage := Snapshot{}.ButtonUsage()
	if len(usage) != NumAACButtons {
		t.Fatalf("len = %d, want %d", len(usage), NumAACButtons)
	}
	for i, u := range usage {
		if math.Abs(u-1.0/NumAACButtons) > 1e-12 {
			t.Errorf("usage[%d] = %v, want uniform 1/6", i, u)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		s    Snapshot
		want float64
	}{
		{"float64", Snapshot{"k": 0.25}, 0.25},
		{"float32", Snapshot{"k": float32(0.5)}, 0.5},
		{"int", Snapshot{"k": 3}, 3.0},
		{"int64", Snapshot{"k": int64(4)}, 4.0},
		{"absent", Snapshot{}, 9.9},
		{"wrong type", Snapshot{"k": "oops"}, 9.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Float("k", 9.9); got != tt.want {
				t.Errorf("Float() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		s    Snapshot
		want int
	}{
		{"int", Snapshot{"k": 7}, 7},
		{"float64", Snapshot{"k": 7.9}, 7},
		{"absent", Snapshot{}, -1},
		{"wrong type", Snapshot{"k": []int{1}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Int("k", -1); got != tt.want {
				t.Errorf("Int() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestButtonUsage(t *testing.T) {
	s := Snapshot{KeyAACButtonUsage: []float64{0.25, 0.15, 0.2, 0.1, 0.2, 0.1}}
	usage := s.ButtonUsage()
	if usage[0] != 0.25 || usage[5] != 0.1 {
		t.Errorf("unexpected usage: %v", usage)
	}
}

func TestButtonUsage_ShortSequence(t *testing.T) {
	s := Snapshot{KeyAACButtonUsage: []float64{0.5, 0.5}}
	usage := s.ButtonUsage()
	if len(usage) != NumAACButtons {
		t.Fatalf("len = %d, want %d", len(usage), NumAACButtons)
	}
	if usage[0] != 0.5 || usage[2] != 0 {
		t.Errorf("short sequence not padded: %v", usage)
	}
}

func TestButtonUsage_AnySlice(t *testing.T) {
	s := Snapshot{KeyAACButtonUsage: []any{0.3, 0.1, "bad", 0.2, 0.2, 0.2}}
	usage := s.ButtonUsage()
	if usage[0] != 0.3 {
		t.Errorf("usage[0] = %v, want 0.3", usage[0])
	}
	if usage[2] != 0 {
		t.Errorf("non-numeric entry should read as 0, got %v", usage[2])
	}
}

func TestDefaultActionNames(t *testing.T) {
	names := DefaultActionNames()
	if len(names) != 7 {
		t.Fatalf("len = %d, want 7", len(names))
	}

	// Callers may mutate their copy without touching the table.
	names[0] = "mutated"
	if DefaultActionNames()[0] == "mutated" {
		t.Error("DefaultActionNames should return a fresh copy")
	}
}

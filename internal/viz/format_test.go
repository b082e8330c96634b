package viz

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.7, "70.0%"},
		{0.166, "16.6%"},
		{0.0, "0.0%"},
		{1.2, "120.0%"}, // not clamped
		{-0.1, "-10.0%"},
	}
	for _, tt := range tests {
		if got := Percent(tt.value); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSignedReward(t *testing.T) {
	tests := []struct {
		reward float64
		want   string
	}{
		{3.52, "+3.5"},
		{-2.0, "-2.0"},
		{0.0, "+0.0"},
	}
	for _, tt := range tests {
		if got := SignedReward(tt.reward); got != tt.want {
			t.Errorf("SignedReward(%v) = %q, want %q", tt.reward, got, tt.want)
		}
	}
}

func TestStepProgress(t *testing.T) {
	if got := StepProgress(15, 200); got != "15/200" {
		t.Errorf("StepProgress(15, 200) = %q, want %q", got, "15/200")
	}
	if got := StepProgress(20, 200); got != "20/200" {
		t.Errorf("StepProgress(20, 200) = %q, want %q", got, "20/200")
	}
	if got := StepProgress(7, 50); got != "7/50" {
		t.Errorf("StepProgress(7, 50) = %q, want %q", got, "7/50")
	}
}

func TestDifficultyCaption(t *testing.T) {
	if got := DifficultyCaption(0.5); got != "Difficulty: Medium (0.50)" {
		t.Errorf("DifficultyCaption(0.5) = %q", got)
	}
	if got := DifficultyCaption(0.85); got != "Difficulty: Hard (0.85)" {
		t.Errorf("DifficultyCaption(0.85) = %q", got)
	}
}

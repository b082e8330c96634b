package viz

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// High-contrast palette, chosen for legibility by young users with limited
// motor control.
var (
	ColBackground    = rl.NewColor(30, 30, 40, 255)
	ColPanel         = rl.NewColor(50, 50, 60, 255)
	ColButton        = rl.NewColor(70, 130, 180, 255)
	ColButtonHover   = rl.NewColor(100, 160, 210, 255)
	ColButtonActive  = rl.NewColor(50, 200, 100, 255)
	ColText          = rl.NewColor(255, 255, 255, 255)
	ColTextSecondary = rl.NewColor(200, 200, 200, 255)
	ColAccent        = rl.NewColor(255, 165, 0, 255)
	ColSuccess       = rl.NewColor(76, 175, 80, 255)
	ColWarning       = rl.NewColor(255, 193, 7, 255)
	ColError         = rl.NewColor(244, 67, 54, 255)
	ColBarTrack      = rl.NewColor(60, 60, 70, 255)
)

// UsageTier classifies an AAC button by how often the student presses it.
type UsageTier int

const (
	TierBase UsageTier = iota
	TierHover
	TierActive
)

// ButtonUsageTier maps a usage frequency to its display tier. Each button
// is classified independently of the other five.
func ButtonUsageTier(usage float64) UsageTier {
	switch {
	case usage > 0.25:
		return TierActive
	case usage > 0.15:
		return TierHover
	default:
		return TierBase
	}
}

func (t UsageTier) Color() rl.Color {
	switch t {
	case TierActive:
		return ColButtonActive
	case TierHover:
		return ColButtonHover
	default:
		return ColButton
	}
}

// EngagementTier classifies the engagement metric for bar coloring.
type EngagementTier int

const (
	EngagementLow EngagementTier = iota
	EngagementMedium
	EngagementHigh
)

// EngagementTierOf buckets engagement with exclusive boundaries on the
// high side: 0.70 is medium, 0.71 is high.
func EngagementTierOf(e float64) EngagementTier {
	switch {
	case e > 0.7:
		return EngagementHigh
	case e > 0.4:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

func (t EngagementTier) Color() rl.Color {
	switch t {
	case EngagementHigh:
		return ColSuccess
	case EngagementMedium:
		return ColWarning
	default:
		return ColError
	}
}

// DifficultyLabel buckets lesson difficulty into Easy, Medium, or Hard.
// The Medium bucket is inclusive at 0.7 so that the label and the comfort
// band agree at the upper boundary.
func DifficultyLabel(d float64) string {
	switch {
	case d < 0.4:
		return "Easy"
	case d <= 0.7:
		return "Medium"
	default:
		return "Hard"
	}
}

// InComfortBand reports whether difficulty lies in the designed [0.4, 0.7]
// band. Settings outside it are flagged with the warning tone.
func InComfortBand(d float64) bool {
	return d >= 0.4 && d <= 0.7
}

// DifficultyColor returns the success tone inside the comfort band and the
// warning tone outside it.
func DifficultyColor(d float64) rl.Color {
	if InComfortBand(d) {
		return ColSuccess
	}
	return ColWarning
}

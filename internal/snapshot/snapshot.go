package snapshot

// Recognized snapshot keys. The environment supplies a fresh mapping on
// every render call; any key may be absent.
const (
	KeyLessonDifficulty    = "lesson_difficulty"
	KeyStudentAccuracy     = "student_accuracy"
	KeyEngagementLevel     = "engagement_level"
	KeyHintsRequested      = "hints_requested"
	KeyTimeOnLesson        = "time_on_lesson"
	KeyInterfaceEfficiency = "interface_efficiency"
	KeyAACButtonUsage      = "aac_button_usage"
	KeyStep                = "step"
)

// NumAACButtons is the size of the AAC symbol panel.
const NumAACButtons = 6

// Defaults substituted when a recognized key is absent.
const (
	DefaultDifficulty = 0.5
	DefaultAccuracy   = 0.7
	DefaultEngagement = 0.8
	DefaultEfficiency = 0.5
)

// Snapshot is the per-step state mapping supplied by the external
// environment/agent loop. Values are read with default substitution and no
// further validation; out-of-range numerics are passed through as given.
type Snapshot map[string]any

// Float returns the value under key as a float64, or def if the key is
// absent or not numeric.
func (s Snapshot) Float(key string, def float64) float64 {
	v, ok := s[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// Int returns the value under key as an int, or def if the key is absent
// or not numeric.
func (s Snapshot) Int(key string, def int) int {
	v, ok := s[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return def
}

func (s Snapshot) Difficulty() float64 { return s.Float(KeyLessonDifficulty, DefaultDifficulty) }
func (s Snapshot) Accuracy() float64   { return s.Float(KeyStudentAccuracy, DefaultAccuracy) }
func (s Snapshot) Engagement() float64 { return s.Float(KeyEngagementLevel, DefaultEngagement) }
func (s Snapshot) Efficiency() float64 { return s.Float(KeyInterfaceEfficiency, DefaultEfficiency) }
func (s Snapshot) Hints() int          { return s.Int(KeyHintsRequested, 0) }
func (s Snapshot) TimeOnLesson() int   { return s.Int(KeyTimeOnLesson, 0) }
func (s Snapshot) Step() int           { return s.Int(KeyStep, 0) }

// ButtonUsage returns the per-button AAC usage frequencies. Absent or
// malformed values yield a uniform 1/6 split; a sequence of the wrong
// length is padded or truncated to six entries.
func (s Snapshot) ButtonUsage() []float64 {
	usage := make([]float64, NumAACButtons)
	raw, ok := s[KeyAACButtonUsage]
	if !ok {
		for i := range usage {
			usage[i] = 1.0 / NumAACButtons
		}
		return usage
	}
	var values []float64
	switch seq := raw.(type) {
	case []float64:
		values = seq
	case []any:
		values = make([]float64, 0, len(seq))
		for _, v := range seq {
			if f, ok := v.(float64); ok {
				values = append(values, f)
			} else {
				values = append(values, 0)
			}
		}
	default:
		for i := range usage {
			usage[i] = 1.0 / NumAACButtons
		}
		return usage
	}
	copy(usage, values)
	return usage
}

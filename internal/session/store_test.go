package session

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

func sampleFrames() []Frame {
	return []Frame{
		{
			Step: 15, Difficulty: 0.5, Accuracy: 0.7, Engagement: 0.8,
			Efficiency: 0.6, Hints: 2, TimeOnLesson: 15,
			Usage:  []float64{0.25, 0.15, 0.20, 0.10, 0.20, 0.10},
			Action: 0, Reward: 3.5, Episode: 1, TotalReward: 3.5,
		},
		{
			Step: 20, Difficulty: 0.6, Accuracy: 0.75, Engagement: 0.85,
			Efficiency: 0.7, Hints: 2, TimeOnLesson: 20,
			Usage:  []float64{0.30, 0.15, 0.15, 0.10, 0.20, 0.10},
			Action: -1, Reward: -1.2, Episode: 1, TotalReward: 2.3,
		},
	}
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	id, err := st.Save(Meta{Seed: 42, FPS: 4, EpisodeLength: 200}, sampleFrames())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	meta, err := st.Load(id)
	require.NoError(t, err)
	assert.Equal(t, id, meta.ID)
	assert.Equal(t, int64(42), meta.Seed)
	assert.Equal(t, 2, meta.Steps)
	assert.InDelta(t, 0.725, meta.AvgAccuracy, 1e-9)
	assert.InDelta(t, 0.825, meta.AvgEngagement, 1e-9)
	assert.InDelta(t, 2.3, meta.TotalReward, 1e-9)

	frames, err := st.LoadFrames(id)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, 15, frames[0].Step)
	assert.Equal(t, 0, frames[0].Action)
	assert.Equal(t, -1, frames[1].Action)
	assert.InDelta(t, 0.30, frames[1].Usage[0], 1e-9)
	assert.InDelta(t, -1.2, frames[1].Reward, 1e-9)
}

func TestStore_List(t *testing.T) {
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	sessions, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)

	_, err = st.Save(Meta{FPS: 4}, sampleFrames())
	require.NoError(t, err)
	_, err = st.Save(Meta{FPS: 8}, sampleFrames())
	require.NoError(t, err)

	sessions, err = st.List()
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestStore_LoadMissing(t *testing.T) {
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Load("nope")
	assert.Error(t, err)
	_, err = st.LoadFrames("nope")
	assert.Error(t, err)
}

func TestFrame_CaptureRoundtrip(t *testing.T) {
	snap := snapshot.Snapshot{
		snapshot.KeyLessonDifficulty: 0.6,
		snapshot.KeyStep:             20,
		snapshot.KeyAACButtonUsage:   []float64{0.3, 0.15, 0.15, 0.1, 0.2, 0.1},
	}
	info := snapshot.StepInfo{
		Action:      snapshot.Int(4),
		Reward:      snapshot.Float(2.5),
		Episode:     snapshot.Int(1),
		TotalReward: snapshot.Float(10.0),
	}

	f := Capture(snap, info)
	assert.Equal(t, 4, f.Action)
	assert.Equal(t, 20, f.Step)
	// Defaults are baked in at capture time.
	assert.InDelta(t, snapshot.DefaultAccuracy, f.Accuracy, 1e-9)

	back := f.Snapshot()
	assert.InDelta(t, 0.6, back.Difficulty(), 1e-9)
	assert.Equal(t, 20, back.Step())

	backInfo := f.Info()
	require.NotNil(t, backInfo.Action)
	assert.Equal(t, 4, *backInfo.Action)
	require.NotNil(t, backInfo.Reward)
	assert.InDelta(t, 2.5, *backInfo.Reward, 1e-9)
}

func TestFrame_NoAction(t *testing.T) {
	f := Capture(snapshot.Snapshot{}, snapshot.StepInfo{})
	assert.Equal(t, -1, f.Action)
	assert.Nil(t, f.Info().Action)
	assert.Nil(t, f.Info().Episode)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, 0, r.Len())

	r.Observe(snapshot.Snapshot{snapshot.KeyStep: 1}, snapshot.StepInfo{})
	r.Observe(snapshot.Snapshot{snapshot.KeyStep: 2}, snapshot.StepInfo{})

	require.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.Frames()[0].Step)
	assert.Equal(t, 2, r.Frames()[1].Step)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	err := ExportJSON(&buf, Meta{ID: "abc", Steps: 2}, sampleFrames())
	require.NoError(t, err)

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "abc", data.Meta.ID)
	assert.Len(t, data.Frames, 2)
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, sampleFrames())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 frames
	assert.True(t, strings.HasPrefix(lines[0], "step,difficulty,accuracy"))
	assert.True(t, strings.HasPrefix(lines[1], "15,"))
	assert.True(t, strings.HasPrefix(lines[2], "20,"))
}

// Package session records and replays dashboard traces. Each session is a
// directory with metadata.json and frames.csv, plus a row in a sqlite
// index used for listing.
package session

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

// Meta describes a recorded session.
type Meta struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Seed          int64     `json:"seed"`
	FPS           int       `json:"fps"`
	EpisodeLength int       `json:"episode_length"`
	Steps         int       `json:"steps"`
	AvgAccuracy   float64   `json:"avg_accuracy"`
	AvgEngagement float64   `json:"avg_engagement"`
	TotalReward   float64   `json:"total_reward"`
}

type Store struct {
	baseDir string
	db      *sql.DB
}

const createSessions = `CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	seed INTEGER,
	fps INTEGER,
	episode_length INTEGER,
	steps INTEGER,
	avg_accuracy REAL,
	avg_engagement REAL,
	total_reward REAL
)`

// Open prepares the data directory and the session index.
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(baseDir, "index.db"))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createSessions); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session index: %w", err)
	}
	return &Store{baseDir: baseDir, db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes a session directory and indexes it. A missing ID, timestamp,
// or step count is filled in; the metric summary is computed from frames.
func (s *Store) Save(meta Meta, frames []Frame) (string, error) {
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}
	meta.Steps = len(frames)
	meta.AvgAccuracy, meta.AvgEngagement, meta.TotalReward = summarize(frames)

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return "", err
	}
	if err := metaFile.Close(); err != nil {
		return "", err
	}

	if err := writeFrames(filepath.Join(dir, "frames.csv"), frames); err != nil {
		return "", err
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO sessions
		 (id, created_at, seed, fps, episode_length, steps, avg_accuracy, avg_engagement, total_reward)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.ID, meta.CreatedAt.Format(time.RFC3339), meta.Seed, meta.FPS,
		meta.EpisodeLength, meta.Steps, meta.AvgAccuracy, meta.AvgEngagement, meta.TotalReward,
	)
	if err != nil {
		return "", fmt.Errorf("index session %s: %w", meta.ID, err)
	}

	return meta.ID, nil
}

// List returns all indexed sessions, newest first.
func (s *Store) List() ([]Meta, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, seed, fps, episode_length, steps, avg_accuracy, avg_engagement, total_reward
		 FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var m Meta
		var created string
		if err := rows.Scan(&m.ID, &created, &m.Seed, &m.FPS, &m.EpisodeLength,
			&m.Steps, &m.AvgAccuracy, &m.AvgEngagement, &m.TotalReward); err != nil {
			return nil, err
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, created)
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Load reads a session's metadata file.
func (s *Store) Load(id string) (Meta, error) {
	var meta Meta
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, err
	}
	return meta, nil
}

// LoadFrames reads a session's frame trace.
func (s *Store) LoadFrames(id string) ([]Frame, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("session %s: empty frame file", id)
	}

	frames := make([]Frame, 0, len(records)-1)
	for _, rec := range records[1:] {
		frame, err := parseFrame(rec)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", id, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func frameHeader() []string {
	header := []string{
		"step", "difficulty", "accuracy", "engagement", "efficiency",
		"hints", "time_on_lesson",
	}
	for i := 0; i < snapshot.NumAACButtons; i++ {
		header = append(header, fmt.Sprintf("usage_%d", i))
	}
	return append(header, "action", "reward", "episode", "total_reward")
}

func writeFrames(path string, frames []Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ExportCSV(f, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseFrame(rec []string) (Frame, error) {
	var f Frame
	want := 11 + snapshot.NumAACButtons
	if len(rec) != want {
		return f, fmt.Errorf("frame row has %d fields, want %d", len(rec), want)
	}
	var err error
	next := func() string { s := rec[0]; rec = rec[1:]; return s }
	readInt := func(dst *int) {
		if err == nil {
			*dst, err = strconv.Atoi(next())
		}
	}
	readFloat := func(dst *float64) {
		if err == nil {
			*dst, err = strconv.ParseFloat(next(), 64)
		}
	}

	readInt(&f.Step)
	readFloat(&f.Difficulty)
	readFloat(&f.Accuracy)
	readFloat(&f.Engagement)
	readFloat(&f.Efficiency)
	readInt(&f.Hints)
	readInt(&f.TimeOnLesson)
	f.Usage = make([]float64, snapshot.NumAACButtons)
	for i := range f.Usage {
		readFloat(&f.Usage[i])
	}
	readInt(&f.Action)
	readFloat(&f.Reward)
	readInt(&f.Episode)
	readFloat(&f.TotalReward)
	return f, err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func summarize(frames []Frame) (avgAccuracy, avgEngagement, totalReward float64) {
	if len(frames) == 0 {
		return 0, 0, 0
	}
	for _, f := range frames {
		avgAccuracy += f.Accuracy
		avgEngagement += f.Engagement
	}
	n := float64(len(frames))
	return avgAccuracy / n, avgEngagement / n, frames[len(frames)-1].TotalReward
}

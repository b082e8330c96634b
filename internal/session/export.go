package session

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

// ExportData is the JSON export shape for a full session.
type ExportData struct {
	Meta   Meta    `json:"meta"`
	Frames []Frame `json:"frames"`
}

// ExportJSON writes a session with all frames as indented JSON.
func ExportJSON(w io.Writer, meta Meta, frames []Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Meta: meta, Frames: frames})
}

// ExportCSV writes the frame trace as CSV with a header row.
func ExportCSV(w io.Writer, frames []Frame) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(frameHeader()); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{
			strconv.Itoa(f.Step),
			formatFloat(f.Difficulty),
			formatFloat(f.Accuracy),
			formatFloat(f.Engagement),
			formatFloat(f.Efficiency),
			strconv.Itoa(f.Hints),
			strconv.Itoa(f.TimeOnLesson),
		}
		for i := 0; i < snapshot.NumAACButtons; i++ {
			u := 0.0
			if i < len(f.Usage) {
				u = f.Usage[i]
			}
			row = append(row, formatFloat(u))
		}
		row = append(row,
			strconv.Itoa(f.Action),
			formatFloat(f.Reward),
			strconv.Itoa(f.Episode),
			formatFloat(f.TotalReward),
		)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

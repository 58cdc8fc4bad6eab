package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/goalchaser/internal/model"
)

// GoalsKey is the storage key the goal list is kept under.
const GoalsKey = "Items"

// CodecVersion is the envelope version written by EncodeGoals.
// Version 1 is the bare JSON array written by the iOS app.
const CodecVersion = 2

// referenceDate is the epoch numeric lastTappedDate values are counted from.
var referenceDate = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

type envelope struct {
	Version int          `json:"version"`
	Goals   []goalRecord `json:"goals"`
}

type goalRecord struct {
	ID             string          `json:"id"`
	Title          *string         `json:"title"`
	Days           *int            `json:"days"`
	Color          *string         `json:"color,omitempty"`
	IsDone         bool            `json:"isDone"`
	LastTappedDate json.RawMessage `json:"lastTappedDate,omitempty"`
}

// EncodeGoals serializes goals into the versioned envelope.
func EncodeGoals(goals []model.Goal) ([]byte, error) {
	env := envelope{
		Version: CodecVersion,
		Goals:   make([]goalRecord, 0, len(goals)),
	}
	for _, g := range goals {
		title := g.Title
		days := g.Days
		color := string(g.Color)
		rec := goalRecord{
			ID:     g.ID,
			Title:  &title,
			Days:   &days,
			Color:  &color,
			IsDone: g.Completed(),
		}
		if g.LastTapped != nil {
			ts, err := json.Marshal(g.LastTapped.UTC().Format(time.RFC3339Nano))
			if err != nil {
				return nil, fmt.Errorf("encoding lastTappedDate: %w", err)
			}
			rec.LastTappedDate = ts
		}
		env.Goals = append(env.Goals, rec)
	}
	return json.Marshal(env)
}

// DecodeGoals parses a goal list blob. Both the versioned envelope and the
// legacy bare array are accepted. Fields added in later versions default
// when absent: color to model.DefaultColor, lastTappedDate to never tapped.
func DecodeGoals(data []byte) ([]model.Goal, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty goal blob")
	}

	var records []goalRecord
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decoding legacy goal list: %w", err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decoding goal envelope: %w", err)
		}
		if env.Version < 1 || env.Version > CodecVersion {
			return nil, fmt.Errorf("unsupported goal blob version %d", env.Version)
		}
		records = env.Goals
	}

	goals := make([]model.Goal, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		g, err := rec.toGoal()
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i, err)
		}
		if g.ID == "" || seen[g.ID] {
			g.ID = uuid.NewString()
		}
		seen[g.ID] = true
		goals = append(goals, g)
	}
	return goals, nil
}

func (r goalRecord) toGoal() (model.Goal, error) {
	if r.Title == nil {
		return model.Goal{}, errors.New("missing title")
	}
	if r.Days == nil {
		return model.Goal{}, errors.New("missing days")
	}

	g := model.Goal{
		ID:    r.ID,
		Title: *r.Title,
		Days:  *r.Days,
		Color: model.DefaultColor,
	}
	if g.Days < 0 {
		g.Days = 0
	}
	if r.Color != nil {
		g.Color = model.ParseColor(*r.Color)
	}

	last, err := decodeTimestamp(r.LastTappedDate)
	if err != nil {
		return model.Goal{}, fmt.Errorf("lastTappedDate: %w", err)
	}
	g.LastTapped = last
	return g, nil
}

// decodeTimestamp accepts an RFC 3339 string or a number of seconds since
// referenceDate. Absent and null values mean never tapped.
func decodeTimestamp(raw json.RawMessage) (*time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	secs, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("not a timestamp: %s", raw)
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return nil, fmt.Errorf("not a timestamp: %s", raw)
	}
	whole, frac := math.Modf(secs)
	t := referenceDate.Add(time.Duration(whole) * time.Second).
		Add(time.Duration(math.Round(frac*1e6)) * time.Microsecond)
	return &t, nil
}

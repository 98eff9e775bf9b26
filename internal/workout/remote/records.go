package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/workout/draft"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Date is a calendar date, encoded as 2006-01-02. The zero value encodes as null.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("parse date [%s]: %w", s, err)
	}
	d.Time = t
	return nil
}

// DateTime is a naive local timestamp, encoded as 2006-01-02T15:04:05.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	if t.IsZero() {
		return DateTime{}
	}
	return DateTime{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	if dt.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + dt.Format(DateTimeLayout) + `"`), nil
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*dt = DateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*dt = DateTime{}
		return nil
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("parse date time [%s]: %w", s, err)
	}
	dt.Time = t
	return nil
}

type SessionRecord struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Notes     string   `json:"notes"`
	Date      Date     `json:"date"`
	StartTime DateTime `json:"start_time"`
	EndTime   DateTime `json:"end_time"`
}

type SetRecord struct {
	ID               int64   `json:"id"`
	WorkoutSessionID int64   `json:"workout_session_id"`
	MuscleGroupID    int64   `json:"muscle_group_id"`
	VariationID      int64   `json:"variation_id"`
	Weight           float64 `json:"weight"`
	Reps             int     `json:"reps"`
	PerformedOn      Date    `json:"performed_on"`
}

type CardioLogRecord struct {
	ID               int64 `json:"id"`
	WorkoutSessionID int64 `json:"workout_session_id"`
	CardioExerciseID int64 `json:"cardio_exercise_id"`
	DurationMinutes  int   `json:"duration_minutes"`
	PerformedOn      Date  `json:"performed_on"`
}

// SessionRequest is the body of session create and update calls.
type SessionRequest struct {
	Title     string   `json:"title"`
	Notes     string   `json:"notes"`
	Date      Date     `json:"date"`
	StartTime DateTime `json:"start_time"`
	EndTime   DateTime `json:"end_time"`
}

type CreateSetRequest struct {
	WorkoutSessionID int64   `json:"workout_session_id"`
	MuscleGroupID    int64   `json:"muscle_group_id"`
	VariationID      int64   `json:"variation_id"`
	Weight           float64 `json:"weight"`
	Reps             int     `json:"reps"`
	PerformedOn      Date    `json:"performed_on"`
}

type UpdateSetRequest struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
}

type CreateCardioRequest struct {
	WorkoutSessionID int64 `json:"workout_session_id"`
	CardioExerciseID int64 `json:"cardio_exercise_id"`
	Duration         int   `json:"duration"`
	PerformedOn      Date  `json:"performed_on"`
}

type UpdateCardioRequest struct {
	Duration *int `json:"duration"`
}

// MutationResponse is what the workout store answers to every create, update
// and delete. A 2xx response with Success false is still a failure.
type MutationResponse struct {
	ID      *int64 `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SessionDetails struct {
	Session    SessionRecord     `json:"session"`
	Sets       []SetRecord       `json:"sets"`
	CardioLogs []CardioLogRecord `json:"cardio_logs"`
}

type MuscleGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Variation struct {
	ID            int64  `json:"id"`
	MuscleGroupID int64  `json:"muscle_group_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

type CardioExercise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateMuscleGroupRequest struct {
	Name string `json:"name"`
}

type CreateVariationRequest struct {
	MuscleGroupID int64  `json:"muscle_group_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

type CreateCardioExerciseRequest struct {
	Name string `json:"name"`
}

func NewSessionRequest(meta draft.Metadata) SessionRequest {
	return SessionRequest{
		Title:     meta.Title,
		Notes:     meta.Notes,
		Date:      NewDate(meta.Date),
		StartTime: NewDateTime(meta.StartTime),
		EndTime:   NewDateTime(meta.EndTime),
	}
}

func (s SessionRecord) Metadata() draft.Metadata {
	return draft.Metadata{
		Title:     s.Title,
		Notes:     s.Notes,
		Date:      s.Date.Time,
		StartTime: s.StartTime.Time,
		EndTime:   s.EndTime.Time,
	}
}

// Entry converts the set record. A set without a performed date falls back to
// the given session date.
func (s SetRecord) Entry(sessionDate time.Time) draft.Entry {
	performed := s.PerformedOn.Time
	if performed.IsZero() {
		performed = sessionDate
	}
	return draft.Entry{
		ID:            draft.Persisted(draft.KindStrength, s.ID),
		Kind:          draft.KindStrength,
		PerformedDate: performed,
		Strength: &draft.Strength{
			MuscleGroupID: s.MuscleGroupID,
			VariationID:   s.VariationID,
			Weight:        s.Weight,
			Reps:          s.Reps,
		},
	}
}

func (c CardioLogRecord) Entry(sessionDate time.Time) draft.Entry {
	performed := c.PerformedOn.Time
	if performed.IsZero() {
		performed = sessionDate
	}
	return draft.Entry{
		ID:            draft.Persisted(draft.KindCardio, c.ID),
		Kind:          draft.KindCardio,
		PerformedDate: performed,
		Cardio: &draft.Cardio{
			ActivityID:      c.CardioExerciseID,
			DurationMinutes: c.DurationMinutes,
		},
	}
}

// Draft builds an edit draft of the fetched session: sets first, then cardio
// logs, each in the order the store returned them.
func (d SessionDetails) Draft() (*draft.Draft, error) {
	entries := make([]draft.Entry, 0, len(d.Sets)+len(d.CardioLogs))
	for _, s := range d.Sets {
		entries = append(entries, s.Entry(d.Session.Date.Time))
	}
	for _, c := range d.CardioLogs {
		entries = append(entries, c.Entry(d.Session.Date.Time))
	}
	return draft.FromSession(d.Session.ID, d.Session.Metadata(), entries)
}

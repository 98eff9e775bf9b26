package draft

import (
	"fmt"
	"time"
)

// Metadata is the session level part of a draft.
type Metadata struct {
	Title     string
	Notes     string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}

func (m Metadata) validate() error {
	if !m.StartTime.IsZero() && !m.EndTime.IsZero() && !m.StartTime.Before(m.EndTime) {
		return &ValidationError{Field: "startTime", Reason: "start time must be before end time"}
	}
	return nil
}

// Draft is the unsaved, local representation of a workout session: its
// metadata, its ordered entries and the persisted entries removed since load.
type Draft struct {
	// SessionID is the remote id of the edited session, 0 for a new workout.
	SessionID int64
	Entries   *Store
	Deletions *DeletionTracker

	meta         Metadata
	metaModified bool
}

// New creates an empty draft for a brand-new workout.
func New(meta Metadata) (*Draft, error) {
	if err := meta.validate(); err != nil {
		return nil, err
	}
	deletions := NewDeletionTracker()
	return &Draft{
		Entries:   NewStore(deletions),
		Deletions: deletions,
		meta:      meta,
	}, nil
}

// FromSession creates a draft for editing an existing remote session.
func FromSession(sessionID int64, meta Metadata, entries []Entry) (*Draft, error) {
	if sessionID <= 0 {
		return nil, &ValidationError{Field: "sessionId", Reason: fmt.Sprintf("invalid session id [%d]", sessionID)}
	}

	d, err := New(meta)
	if err != nil {
		return nil, err
	}
	d.SessionID = sessionID
	for _, e := range entries {
		if err := d.Entries.Load(e); err != nil {
			return nil, fmt.Errorf("load entry [%s]: %w", e.ID, err)
		}
	}
	return d, nil
}

func (d *Draft) IsNew() bool {
	return d.SessionID == 0
}

func (d *Draft) Metadata() Metadata {
	return d.meta
}

// SetMetadata replaces the session metadata. Invalid metadata leaves the draft
// unchanged.
func (d *Draft) SetMetadata(meta Metadata) error {
	if err := meta.validate(); err != nil {
		return err
	}
	d.meta = meta
	d.metaModified = true
	return nil
}

// Modified reports whether the draft was mutated since it was created or
// loaded.
func (d *Draft) Modified() bool {
	return d.metaModified || d.Entries.mutations > 0
}

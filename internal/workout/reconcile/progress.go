package reconcile

import (
	"sort"

	"github.com/2beens/fittrack/internal/workout/draft"
)

// Progress remembers what failed commits of one draft already achieved
// remotely. A failed commit leaves the draft itself untouched, so a later
// commit has to be told which rows exist by now.
// The zero value is an empty progress.
type Progress struct {
	// SessionID of a new workout whose session was already created.
	SessionID int64
	// Created maps provisional identities to the persisted rows created for them.
	Created map[draft.Identity]draft.Identity
	// Deleted holds persisted identities already removed remotely.
	Deleted map[draft.Identity]struct{}
}

func (p *Progress) IsEmpty() bool {
	return p.SessionID == 0 && len(p.Created) == 0 && len(p.Deleted) == 0
}

// Record merges the successful operations of a failed commit.
func (p *Progress) Record(err *PartialCommitError) {
	if err == nil {
		return
	}
	if p.Created == nil {
		p.Created = make(map[draft.Identity]draft.Identity)
	}
	if p.Deleted == nil {
		p.Deleted = make(map[draft.Identity]struct{})
	}

	if err.SessionID > 0 {
		p.SessionID = err.SessionID
	}
	for _, op := range err.Succeeded {
		switch {
		case op.Target == TargetSession:
		case op.Kind == OpCreate:
			if remoteID, ok := err.Created[op.ID]; ok {
				p.Created[op.ID] = draft.Persisted(op.Entry.Kind, remoteID)
			}
		case op.Kind == OpDelete:
			p.Deleted[op.ID] = struct{}{}
		}
	}
}

// Resume rewrites a plan built from the draft so that it does not repeat
// what progress already achieved: an already created session is updated, rows
// already created for provisional entries are updated, or deleted when the
// entry was removed since, and deletions that went through are skipped.
func (p Plan) Resume(progress Progress) Plan {
	if progress.IsEmpty() {
		return p
	}

	resumed := Plan{
		Session:  p.Session,
		ToCreate: make([]draft.Entry, 0, len(p.ToCreate)),
		ToUpdate: make([]draft.Entry, 0, len(p.ToUpdate)),
		ToDelete: make([]draft.Identity, 0, len(p.ToDelete)),
		Previous: make(map[draft.Identity]int64),
	}
	if p.Session.Kind == OpCreate && progress.SessionID > 0 {
		resumed.Session = Operation{
			Kind:      OpUpdate,
			Target:    TargetSession,
			SessionID: progress.SessionID,
			Metadata:  p.Session.Metadata,
		}
	}

	inDraft := make(map[draft.Identity]struct{}, len(p.ToCreate))
	for _, e := range p.ToCreate {
		inDraft[e.ID] = struct{}{}
		persisted, ok := progress.Created[e.ID]
		if !ok {
			resumed.ToCreate = append(resumed.ToCreate, e)
			continue
		}
		resumed.Previous[e.ID] = persisted.RemoteID()
		update := e
		update.ID = persisted
		resumed.ToUpdate = append(resumed.ToUpdate, update)
	}
	resumed.ToUpdate = append(resumed.ToUpdate, p.ToUpdate...)

	for _, id := range p.ToDelete {
		if _, done := progress.Deleted[id]; !done {
			resumed.ToDelete = append(resumed.ToDelete, id)
		}
	}
	orphans := make([]draft.Identity, 0)
	for provisional, persisted := range progress.Created {
		if _, kept := inDraft[provisional]; kept {
			continue
		}
		if _, done := progress.Deleted[persisted]; !done {
			orphans = append(orphans, persisted)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].String() < orphans[j].String() })
	resumed.ToDelete = append(resumed.ToDelete, orphans...)

	return resumed
}

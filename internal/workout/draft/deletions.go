package draft

// DeletionTracker records persisted entries removed from a draft, so they can
// be deleted remotely on commit.
type DeletionTracker struct {
	ids   []Identity
	index map[Identity]struct{}
}

func NewDeletionTracker() *DeletionTracker {
	return &DeletionTracker{
		index: make(map[Identity]struct{}),
	}
}

// RecordDeletion adds a persisted identity to the deletion set. Recording the
// same identity twice has no additional effect. Provisional identities never
// existed remotely and are ignored; false is returned for them.
func (t *DeletionTracker) RecordDeletion(id Identity) bool {
	if !id.IsPersisted() {
		return false
	}
	if _, ok := t.index[id]; ok {
		return true
	}
	t.index[id] = struct{}{}
	t.ids = append(t.ids, id)
	return true
}

// Snapshot returns the deletion set in the order deletions were recorded.
func (t *DeletionTracker) Snapshot() []Identity {
	snapshot := make([]Identity, len(t.ids))
	copy(snapshot, t.ids)
	return snapshot
}

func (t *DeletionTracker) Contains(id Identity) bool {
	_, ok := t.index[id]
	return ok
}

func (t *DeletionTracker) Len() int {
	return len(t.ids)
}

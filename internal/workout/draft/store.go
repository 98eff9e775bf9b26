package draft

import (
	"fmt"
	"time"
)

// Store is the ordered, in-memory collection of a draft's log entries.
// It is not safe for concurrent use; one edit session owns it at a time.
type Store struct {
	entries   []Entry
	tokens    Tokens
	deletions *DeletionTracker
	mutations int
}

// NewStore creates an empty store which hands removed persisted identities to
// the given tracker.
func NewStore(deletions *DeletionTracker) *Store {
	if deletions == nil {
		deletions = NewDeletionTracker()
	}
	return &Store{
		deletions: deletions,
	}
}

// Add validates the input and appends it as a new entry with a fresh
// provisional identity.
func (s *Store) Add(in EntryInput) (Entry, error) {
	entry, err := in.toEntry(s.tokens.Next())
	if err != nil {
		return Entry{}, err
	}

	s.entries = append(s.entries, entry)
	s.mutations++
	return entry.clone(), nil
}

// Load appends an entry that already exists in the remote store. It is used to
// populate a draft, so it does not count as a mutation.
func (s *Store) Load(entry Entry) error {
	if !entry.ID.IsPersisted() {
		return &ValidationError{Field: "id", Reason: fmt.Sprintf("cannot load non-persisted identity [%s]", entry.ID)}
	}
	if entry.ID.Kind() != entry.Kind {
		return &ValidationError{Field: "id", Reason: fmt.Sprintf("identity [%s] does not match entry kind [%s]", entry.ID, entry.Kind)}
	}
	if s.indexOf(entry.ID) >= 0 {
		return &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate identity [%s]", entry.ID)}
	}
	if err := entry.validate(); err != nil {
		return err
	}

	s.entries = append(s.entries, entry.clone())
	return nil
}

// Update applies the patch to the entry with the given identity, in place.
func (s *Store) Update(id Identity, patch Patch) (Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, &NotFoundError{ID: id}
	}

	patched, err := patch.applyTo(s.entries[i])
	if err != nil {
		return Entry{}, err
	}

	s.entries[i] = patched
	s.mutations++
	return patched.clone(), nil
}

// Remove drops the entry from the draft. Persisted entries are recorded for
// remote deletion.
func (s *Store) Remove(id Identity) (Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, &NotFoundError{ID: id}
	}

	removed := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if removed.ID.IsPersisted() {
		s.deletions.RecordDeletion(removed.ID)
	}
	s.mutations++
	return removed, nil
}

func (s *Store) Get(id Identity) (Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, &NotFoundError{ID: id}
	}
	return s.entries[i].clone(), nil
}

// Entries returns a copy of all entries, in draft order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e.clone())
	}
	return entries
}

func (s *Store) Len() int {
	return len(s.entries)
}

// EntriesForDate returns the entries performed on the same calendar day as date.
func (s *Store) EntriesForDate(date time.Time) []Entry {
	entries := make([]Entry, 0)
	for _, e := range s.entries {
		if SameDay(e.PerformedDate, date) {
			entries = append(entries, e.clone())
		}
	}
	return entries
}

// Grouped returns all the entries grouped for display.
func (s *Store) Grouped() []Group {
	return groupEntries(s.entries)
}

// GroupedForDate groups only the entries performed on the given day.
func (s *Store) GroupedForDate(date time.Time) []Group {
	return groupEntries(s.EntriesForDate(date))
}

func (s *Store) indexOf(id Identity) int {
	if id.IsZero() {
		return -1
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

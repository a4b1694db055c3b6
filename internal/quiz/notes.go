package quiz

import (
	"strings"

	"quizdrill/internal/storage"
)

// NotesStore holds free-text notes keyed by question id, independent of
// any session's lifecycle.
type NotesStore struct {
	st *storage.Store
}

// NewNotesStore creates a NotesStore over the given storage.
func NewNotesStore(st *storage.Store) *NotesStore {
	return &NotesStore{st: st}
}

// Get returns the note for qid, "" when none exists.
func (ns *NotesStore) Get(qid string) string {
	return ns.All()[qid]
}

// Set stores a trimmed note for qid and persists immediately.
func (ns *NotesStore) Set(qid, text string) error {
	notes := ns.All()
	notes[qid] = strings.TrimSpace(text)
	return ns.st.Put(storage.KeyNotes, notes)
}

// All returns every stored note, empty on a cold store.
func (ns *NotesStore) All() map[string]string {
	notes := map[string]string{}
	ns.st.Get(storage.KeyNotes, &notes)
	return notes
}

package quiz

import (
	"errors"
	"fmt"

	"quizdrill/internal/storage"
)

// SessionStore synchronizes the active session into the two persisted
// slots: the "last session" snapshot and the append/upsert-by-id history
// log. The two writes are sequential and independently durable; a partial
// failure surfaces as an error but never blocks the session.
type SessionStore struct {
	st *storage.Store
}

// NewSessionStore creates a SessionStore over the given storage.
func NewSessionStore(st *storage.Store) *SessionStore {
	return &SessionStore{st: st}
}

// SaveLast overwrites the last-session slot with a full snapshot.
func (ss *SessionStore) SaveLast(s *Session) error {
	if err := ss.st.Put(storage.KeyLastSession, s); err != nil {
		return fmt.Errorf("save last session: %w", err)
	}
	return nil
}

// LoadLast returns the persisted last session, or nil on a cold or
// corrupt store.
func (ss *SessionStore) LoadLast() *Session {
	var s *Session
	ss.st.Get(storage.KeyLastSession, &s)
	return s
}

// LoadHistory returns the full session log, empty on a cold store.
func (ss *SessionStore) LoadHistory() []Session {
	history := []Session{}
	ss.st.Get(storage.KeyAllSessions, &history)
	return history
}

// UpsertHistory replaces the log entry matching the session's id, or
// appends when the id is new.
func (ss *SessionStore) UpsertHistory(s *Session) error {
	history := ss.LoadHistory()
	found := false
	for i := range history {
		if history[i].ID == s.ID {
			history[i] = *s
			found = true
			break
		}
	}
	if !found {
		history = append(history, *s)
	}
	if err := ss.st.Put(storage.KeyAllSessions, history); err != nil {
		return fmt.Errorf("upsert session log: %w", err)
	}
	return nil
}

// Sync flushes the session into both slots. Errors from the two writes
// are joined so the caller can detect a partial failure.
func (ss *SessionStore) Sync(s *Session) error {
	return errors.Join(ss.SaveLast(s), ss.UpsertHistory(s))
}

// Package quiz implements the practice-session engine: pool selection,
// the active session aggregate, timing, answer judging, and the durable
// session log.
package quiz

import (
	"strconv"
	"strings"
	"time"
)

// PoolMode selects which slice of the bank feeds a new session.
type PoolMode string

const (
	PoolAll    PoolMode = "all"
	PoolWrong  PoolMode = "wrong"
	PoolUnseen PoolMode = "unseen"
)

// StudyMode is the feedback contract for a session. Timed defers
// correctness until submission; review judges each answer immediately and
// locks the question.
type StudyMode string

const (
	StudyTimed  StudyMode = "timed"
	StudyReview StudyMode = "review"
)

// Mode records the three options a session was started with.
type Mode struct {
	PoolMode  PoolMode  `json:"poolMode"`
	StudyMode StudyMode `json:"studyMode"`
	Category  string    `json:"category"`
}

// SessionItem is the recorded interaction with one question. At most one
// item exists per qid within a session. IsCorrect stays nil until judged.
type SessionItem struct {
	QID        string     `json:"qid"`
	AnsweredAt *time.Time `json:"answeredAt"`
	Chosen     *string    `json:"chosen"`
	IsCorrect  *bool      `json:"isCorrect"`
	Seconds    int        `json:"seconds"`
	Marked     bool       `json:"marked"`
}

// Answered reports whether the item carries a recorded answer.
func (it *SessionItem) Answered() bool {
	return it != nil && it.AnsweredAt != nil
}

// Session is one practice run: the mode it was started with plus the
// ordered per-question results. Mutated in place for its lifetime, never
// deleted, only superseded or explicitly reset.
type Session struct {
	ID        string         `json:"id"`
	StartedAt string         `json:"startedAt"`
	Mode      Mode           `json:"mode"`
	Items     []*SessionItem `json:"items"`
}

// NewSession creates an empty session. The id is the creation instant in
// milliseconds; startedAt is the instant with filename-hostile characters
// replaced, so exports can embed it directly.
func NewSession(mode Mode, now time.Time) *Session {
	return &Session{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		StartedAt: sanitizeStamp(now),
		Mode:      mode,
		Items:     []*SessionItem{},
	}
}

var stampReplacer = strings.NewReplacer(":", "-", ".", "-")

func sanitizeStamp(t time.Time) string {
	return stampReplacer.Replace(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}

// Item returns the item for qid, or nil. Lookup is by string id.
func (s *Session) Item(qid string) *SessionItem {
	for _, it := range s.Items {
		if it.QID == qid {
			return it
		}
	}
	return nil
}

// findOrCreate returns the unique item for qid, appending a fresh one
// when none exists yet.
func (s *Session) findOrCreate(qid string) *SessionItem {
	if it := s.Item(qid); it != nil {
		return it
	}
	it := &SessionItem{QID: qid}
	s.Items = append(s.Items, it)
	return it
}

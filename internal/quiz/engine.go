package quiz

import (
	"errors"
	"strings"
	"time"

	"quizdrill/internal/bank"
	"quizdrill/internal/storage"
)

var (
	// ErrEmptyBank means no session can start until a bank is imported.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrNoLastSession means there is nothing to resume.
	ErrNoLastSession = errors.New("no previous session to resume")
)

// StartOptions are the user's setup choices for a new session.
type StartOptions struct {
	PoolMode  PoolMode
	StudyMode StudyMode
	Category  string
	Count     int
}

// Engine owns all mutable session state: the loaded bank, the active
// session, its playlist and cursor, the submitted flag, and the timer.
// Screens hold a reference and drive it through methods; every mutation
// is flushed through the session store before the method returns.
type Engine struct {
	bank     bank.Bank
	catMap   bank.CategoryMap
	sessions *SessionStore
	notes    *NotesStore
	timer    *Timer

	session   *Session
	playlist  []string
	idx       int
	submitted bool
	fellBack  bool

	// enteredAt is the elapsed-seconds reading when the current question
	// was entered; per-question cost is measured against it.
	enteredAt int

	now func() time.Time
}

// NewEngine loads the bank and category map from storage and returns an
// engine with no active session.
func NewEngine(st *storage.Store) *Engine {
	return &Engine{
		bank:     bank.LoadBank(st),
		catMap:   bank.LoadCategoryMap(st),
		sessions: NewSessionStore(st),
		notes:    NewNotesStore(st),
		timer:    NewTimer(time.Now),
		now:      time.Now,
	}
}

// Bank returns the loaded question bank.
func (e *Engine) Bank() bank.Bank { return e.bank }

// CategoryMap returns the id→category override map.
func (e *Engine) CategoryMap() bank.CategoryMap { return e.catMap }

// Categories returns the sorted effective categories of the bank.
func (e *Engine) Categories() []string { return e.bank.Categories(e.catMap) }

// Notes returns the per-question notes store.
func (e *Engine) Notes() *NotesStore { return e.notes }

// Timer returns the session timer.
func (e *Engine) Timer() *Timer { return e.timer }

// Sessions returns the session store, for read-only history listings.
func (e *Engine) Sessions() *SessionStore { return e.sessions }

// Session returns the active session, nil when none.
func (e *Engine) Session() *Session { return e.session }

// Submitted reports whether the active session has been finalized.
func (e *Engine) Submitted() bool { return e.submitted }

// FellBack reports whether the last Start discarded its filters because
// they matched nothing.
func (e *Engine) FellBack() bool { return e.fellBack }

// Playlist returns the session's fixed question order.
func (e *Engine) Playlist() []string { return e.playlist }

// Index returns the current playlist position.
func (e *Engine) Index() int { return e.idx }

// Progress returns the 1-based position and playlist length.
func (e *Engine) Progress() (cur, total int) {
	if len(e.playlist) == 0 {
		return 0, 0
	}
	return e.idx + 1, len(e.playlist)
}

// Start creates a new session from the given options and makes it active.
// A non-empty bank always yields a non-empty playlist.
func (e *Engine) Start(opts StartOptions) error {
	if len(e.bank) == 0 {
		return ErrEmptyBank
	}

	history := e.sessions.LoadHistory()
	playlist, fellBack := SelectPlaylist(e.bank, e.catMap, history, SelectOptions{
		PoolMode: opts.PoolMode,
		Category: opts.Category,
		Count:    opts.Count,
	})

	e.session = NewSession(Mode{
		PoolMode:  opts.PoolMode,
		StudyMode: opts.StudyMode,
		Category:  opts.Category,
	}, e.now())
	e.playlist = playlist
	e.idx = 0
	e.submitted = false
	e.fellBack = fellBack

	e.timer.Reset()
	if opts.StudyMode == StudyTimed {
		e.timer.Start()
	}
	e.markEntered()

	return e.sessions.SaveLast(e.session)
}

// Resume adopts the persisted last session. The playlist is rebuilt from
// the stored item order, or the full bank's id order when the session has
// no items yet. Elapsed time restarts from zero; only answers and
// progress survive a resume.
func (e *Engine) Resume() error {
	last := e.sessions.LoadLast()
	if last == nil {
		return ErrNoLastSession
	}

	e.session = last
	e.playlist = make([]string, 0, len(last.Items))
	for _, it := range last.Items {
		e.playlist = append(e.playlist, it.QID)
	}
	if len(e.playlist) == 0 {
		e.playlist = e.bank.IDs()
	}
	e.idx = 0
	e.submitted = false
	e.fellBack = false

	e.timer.Reset()
	if last.Mode.StudyMode == StudyTimed {
		e.timer.Start()
	}
	e.markEntered()
	return nil
}

// Current returns the current playlist qid and its bank question. The
// question is nil for an empty playlist or a stale id no longer in the
// bank; callers render a placeholder rather than failing.
func (e *Engine) Current() (string, *bank.Question) {
	if len(e.playlist) == 0 || e.idx < 0 || e.idx >= len(e.playlist) {
		return "", nil
	}
	qid := e.playlist[e.idx]
	return qid, e.bank.Get(qid)
}

// CanPrev reports whether a previous question exists.
func (e *Engine) CanPrev() bool { return e.idx > 0 }

// CanNext reports whether a following question exists.
func (e *Engine) CanNext() bool { return e.idx < len(e.playlist)-1 }

// Prev moves back one question. No-op at the first question.
func (e *Engine) Prev() {
	if !e.CanPrev() {
		return
	}
	e.idx--
	e.markEntered()
}

// Next moves forward one question. No-op at the last question.
func (e *Engine) Next() {
	if !e.CanNext() {
		return
	}
	e.idx++
	e.markEntered()
}

// Goto jumps to a playlist position. Out-of-range positions are ignored.
func (e *Engine) Goto(i int) {
	if i < 0 || i >= len(e.playlist) {
		return
	}
	e.idx = i
	e.markEntered()
}

// markEntered records the elapsed reading at question entry.
func (e *Engine) markEntered() {
	e.enteredAt = e.timer.Seconds()
}

// ChooseAnswer records the given option letter for the current question.
// No-op after submission, on a missing question, and on a locked review
// question. Judging is immediate only in review mode; timed sessions keep
// isCorrect nil until Finish.
func (e *Engine) ChooseAnswer(letter string) error {
	qid, q := e.Current()
	if q == nil || e.session == nil {
		return nil
	}
	if e.submitted {
		return nil
	}

	it := e.session.Item(qid)
	if e.session.Mode.StudyMode == StudyReview && it.Answered() {
		return nil // first answer is final in review mode
	}

	chosen := normalizeLetter(letter)
	spent := e.timer.Seconds() - e.enteredAt
	if spent < 0 {
		spent = 0
	}

	judgeNow := e.submitted || e.session.Mode.StudyMode == StudyReview
	var isCorrect *bool
	if judgeNow {
		v := chosen == q.CorrectLetter()
		isCorrect = &v
	}

	it = e.session.findOrCreate(qid)
	answeredAt := e.now()
	it.AnsweredAt = &answeredAt
	it.Chosen = &chosen
	it.IsCorrect = isCorrect
	it.Seconds = spent

	return e.sessions.Sync(e.session)
}

// ToggleMark flips the marked flag on the current question's item,
// creating the item if the question was never answered. Persists
// immediately; works before and after submission.
func (e *Engine) ToggleMark() error {
	qid, _ := e.Current()
	if qid == "" || e.session == nil {
		return nil
	}
	it := e.session.findOrCreate(qid)
	it.Marked = !it.Marked
	return e.sessions.Sync(e.session)
}

// Finish finalizes the session: stops the timer, judges every answered
// item against the bank, and persists. Idempotent; afterwards the session
// is read-only except for navigation and marking.
func (e *Engine) Finish() error {
	if e.session == nil || e.submitted {
		return nil
	}

	e.submitted = true
	e.timer.Stop()

	for _, it := range e.session.Items {
		if it.Chosen == nil {
			continue
		}
		q := e.bank.Get(it.QID)
		if q == nil {
			continue
		}
		v := normalizeLetter(*it.Chosen) == q.CorrectLetter()
		it.IsCorrect = &v
	}

	return e.sessions.Sync(e.session)
}

// Revealed reports whether correctness highlighting may be shown:
// after submission, or at any time in review mode.
func (e *Engine) Revealed() bool {
	if e.session == nil {
		return false
	}
	return e.submitted || e.session.Mode.StudyMode == StudyReview
}

// Locked reports whether the current question's options are disabled:
// the session is submitted, or review mode has already recorded an answer.
func (e *Engine) Locked() bool {
	if e.session == nil {
		return true
	}
	qid, _ := e.Current()
	answered := e.session.Item(qid).Answered()
	return (e.submitted || e.session.Mode.StudyMode == StudyReview) && answered
}

// ItemFor returns the session item for qid, nil when untouched.
func (e *Engine) ItemFor(qid string) *SessionItem {
	if e.session == nil {
		return nil
	}
	return e.session.Item(qid)
}

// Tally counts answered, correct, and wrong items across the playlist.
func (e *Engine) Tally() (done, correct, wrong int) {
	if e.session == nil {
		return 0, 0, 0
	}
	for _, qid := range e.playlist {
		it := e.session.Item(qid)
		if !it.Answered() {
			continue
		}
		done++
		if it.IsCorrect == nil {
			continue
		}
		if *it.IsCorrect {
			correct++
		} else {
			wrong++
		}
	}
	return done, correct, wrong
}

func normalizeLetter(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

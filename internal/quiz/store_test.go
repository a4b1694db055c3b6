package quiz

import (
	"testing"
	"time"

	"quizdrill/internal/storage"
)

func openQuizStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestLoadLastColdStore(t *testing.T) {
	ss := NewSessionStore(openQuizStore(t))
	if got := ss.LoadLast(); got != nil {
		t.Errorf("LoadLast on cold store = %+v, want nil", got)
	}
	if got := ss.LoadHistory(); len(got) != 0 {
		t.Errorf("LoadHistory on cold store has %d entries, want 0", len(got))
	}
}

func TestSaveLastRoundTrip(t *testing.T) {
	ss := NewSessionStore(openQuizStore(t))

	s := NewSession(Mode{PoolMode: PoolAll, StudyMode: StudyTimed}, time.Now())
	it := s.findOrCreate("7")
	chosen := "C"
	it.Chosen = &chosen
	it.Seconds = 14

	if err := ss.SaveLast(s); err != nil {
		t.Fatalf("SaveLast: %v", err)
	}

	got := ss.LoadLast()
	if got == nil {
		t.Fatal("LoadLast returned nil")
	}
	if got.ID != s.ID || got.Mode.StudyMode != StudyTimed {
		t.Errorf("loaded session = %+v, want id %s timed", got, s.ID)
	}
	if len(got.Items) != 1 || *got.Items[0].Chosen != "C" || got.Items[0].Seconds != 14 {
		t.Errorf("loaded items = %+v, want one item chosen C / 14s", got.Items)
	}
}

func TestUpsertHistoryAppendsThenReplaces(t *testing.T) {
	ss := NewSessionStore(openQuizStore(t))

	a := NewSession(Mode{PoolMode: PoolAll, StudyMode: StudyTimed}, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	b := NewSession(Mode{PoolMode: PoolWrong, StudyMode: StudyReview}, time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))

	if err := ss.UpsertHistory(a); err != nil {
		t.Fatalf("UpsertHistory a: %v", err)
	}
	if err := ss.UpsertHistory(b); err != nil {
		t.Fatalf("UpsertHistory b: %v", err)
	}
	if got := ss.LoadHistory(); len(got) != 2 {
		t.Fatalf("history length = %d, want 2", len(got))
	}

	// Re-upserting an existing id replaces in place, never duplicates.
	a.findOrCreate("3").Marked = true
	if err := ss.UpsertHistory(a); err != nil {
		t.Fatalf("UpsertHistory a again: %v", err)
	}

	history := ss.LoadHistory()
	if len(history) != 2 {
		t.Fatalf("history length after re-upsert = %d, want 2", len(history))
	}
	if history[0].ID != a.ID {
		t.Errorf("history[0].ID = %s, want %s (order preserved)", history[0].ID, a.ID)
	}
	if len(history[0].Items) != 1 || !history[0].Items[0].Marked {
		t.Errorf("history[0] was not replaced: items = %+v", history[0].Items)
	}
}

func TestSyncWritesBothSlots(t *testing.T) {
	st := openQuizStore(t)
	ss := NewSessionStore(st)

	s := NewSession(Mode{PoolMode: PoolUnseen, StudyMode: StudyTimed}, time.Now())
	if err := ss.Sync(s); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if last := ss.LoadLast(); last == nil || last.ID != s.ID {
		t.Error("Sync did not write the last-session slot")
	}
	history := ss.LoadHistory()
	if len(history) != 1 || history[0].ID != s.ID {
		t.Error("Sync did not upsert into the session log")
	}
}

func TestNotesStore(t *testing.T) {
	ns := NewNotesStore(openQuizStore(t))

	if got := ns.Get("7"); got != "" {
		t.Errorf("Get on cold store = %q, want empty", got)
	}

	if err := ns.Set("7", "  remember the contrapositive  "); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := ns.Get("7"); got != "remember the contrapositive" {
		t.Errorf("Get = %q, want trimmed note", got)
	}

	if err := ns.Set("12", "skip"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	all := ns.All()
	if len(all) != 2 || all["12"] != "skip" {
		t.Errorf("All() = %+v, want two notes", all)
	}
}

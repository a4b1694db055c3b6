package quiz

import (
	"testing"
	"time"

	"quizdrill/internal/bank"
)

func testBank() bank.Bank {
	return bank.Bank{
		{ID: "1", Stem: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "A", Category: "logic"},
		{ID: "2", Stem: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "B", Category: "logic"},
		{ID: "3", Stem: "q3", Options: []string{"a", "b", "c", "d"}, Answer: "C", Category: "reading"},
		{ID: "4", Stem: "q4", Options: []string{"a", "b", "c", "d"}, Answer: "D", Category: "reading"},
		{ID: "5", Stem: "q5", Options: []string{"a", "b", "c", "d"}, Answer: "A", Category: "reading"},
	}
}

// historyWith builds a one-session log with the given per-qid results.
func historyWith(results map[string]*bool) []Session {
	s := NewSession(Mode{PoolMode: PoolAll, StudyMode: StudyTimed}, time.Now())
	for qid, correct := range results {
		it := s.findOrCreate(qid)
		now := time.Now()
		it.AnsweredAt = &now
		it.IsCorrect = correct
	}
	return []Session{*s}
}

func boolPtr(v bool) *bool { return &v }

func TestDeriveSets(t *testing.T) {
	history := historyWith(map[string]*bool{
		"1": boolPtr(true),
		"2": boolPtr(false),
		"3": nil, // answered, never judged
	})

	seen, wrong := DeriveSets(history)

	for _, qid := range []string{"1", "2", "3"} {
		if !seen[qid] {
			t.Errorf("expected %s in seen set", qid)
		}
	}
	if seen["4"] {
		t.Error("did not expect 4 in seen set")
	}
	if !wrong["2"] {
		t.Error("expected 2 in wrong set")
	}
	if wrong["1"] || wrong["3"] {
		t.Error("correct and unjudged items must not be in wrong set")
	}
}

func TestSelectPlaylist_AllMode(t *testing.T) {
	ids, fellBack := SelectPlaylist(testBank(), bank.CategoryMap{}, nil, SelectOptions{
		PoolMode: PoolAll,
		Count:    3,
	})
	if len(ids) != 3 {
		t.Errorf("playlist length = %d, want 3", len(ids))
	}
	if fellBack {
		t.Error("unfiltered selection must not report fallback")
	}
}

func TestSelectPlaylist_CountDefaultsAndClamps(t *testing.T) {
	// Count <= 0 falls back to the default, then truncates to pool size.
	ids, _ := SelectPlaylist(testBank(), bank.CategoryMap{}, nil, SelectOptions{PoolMode: PoolAll, Count: 0})
	if len(ids) != 5 {
		t.Errorf("playlist length = %d, want 5 (default count clamped to bank size)", len(ids))
	}

	ids, _ = SelectPlaylist(testBank(), bank.CategoryMap{}, nil, SelectOptions{PoolMode: PoolAll, Count: -7})
	if len(ids) != 5 {
		t.Errorf("playlist length = %d, want 5", len(ids))
	}
}

func TestSelectPlaylist_CategoryFilter(t *testing.T) {
	ids, fellBack := SelectPlaylist(testBank(), bank.CategoryMap{}, nil, SelectOptions{
		PoolMode: PoolAll,
		Category: "logic",
		Count:    20,
	})
	if fellBack {
		t.Error("unexpected fallback")
	}
	if len(ids) != 2 {
		t.Fatalf("playlist length = %d, want 2", len(ids))
	}
	for _, id := range ids {
		if id != "1" && id != "2" {
			t.Errorf("unexpected qid %s for category logic", id)
		}
	}
}

func TestSelectPlaylist_CategoryOverrideMap(t *testing.T) {
	// Question 5's native category is "reading"; the override moves it.
	cm := bank.CategoryMap{"5": "logic"}
	ids, _ := SelectPlaylist(testBank(), cm, nil, SelectOptions{
		PoolMode: PoolAll,
		Category: "logic",
		Count:    20,
	})
	if len(ids) != 3 {
		t.Errorf("playlist length = %d, want 3 (override map applies)", len(ids))
	}
}

func TestSelectPlaylist_WrongMode(t *testing.T) {
	history := historyWith(map[string]*bool{
		"1": boolPtr(false),
		"2": boolPtr(true),
	})
	ids, fellBack := SelectPlaylist(testBank(), bank.CategoryMap{}, history, SelectOptions{
		PoolMode: PoolWrong,
		Count:    20,
	})
	if fellBack {
		t.Error("unexpected fallback")
	}
	if len(ids) != 1 || ids[0] != "1" {
		t.Errorf("playlist = %v, want [1]", ids)
	}
}

func TestSelectPlaylist_UnseenMode(t *testing.T) {
	history := historyWith(map[string]*bool{
		"1": boolPtr(true),
		"2": boolPtr(false),
	})
	ids, _ := SelectPlaylist(testBank(), bank.CategoryMap{}, history, SelectOptions{
		PoolMode: PoolUnseen,
		Count:    20,
	})
	if len(ids) != 3 {
		t.Fatalf("playlist length = %d, want 3", len(ids))
	}
	for _, id := range ids {
		if id == "1" || id == "2" {
			t.Errorf("seen qid %s must be excluded in unseen mode", id)
		}
	}
}

func TestSelectPlaylist_FallbackLaw(t *testing.T) {
	// Every mode must yield a non-empty playlist on a non-empty bank,
	// even when the filters match nothing.
	cases := []SelectOptions{
		{PoolMode: PoolWrong, Count: 20},                     // empty history
		{PoolMode: PoolAll, Category: "missing", Count: 20},  // unknown category
		{PoolMode: PoolUnseen, Category: "logic", Count: 20}, // combined, see below
	}

	// Mark every logic question as seen so the combined case empties out.
	history := historyWith(map[string]*bool{
		"1": boolPtr(true),
		"2": boolPtr(true),
	})

	for _, opts := range cases {
		ids, fellBack := SelectPlaylist(testBank(), bank.CategoryMap{}, history, opts)
		if len(ids) == 0 {
			t.Errorf("opts %+v: playlist is empty, fallback law violated", opts)
		}
		if !fellBack {
			t.Errorf("opts %+v: expected fallback to be reported", opts)
		}
	}
}

func TestSelectPlaylist_EmptyBank(t *testing.T) {
	ids, fellBack := SelectPlaylist(bank.Bank{}, bank.CategoryMap{}, nil, SelectOptions{PoolMode: PoolAll})
	if len(ids) != 0 || fellBack {
		t.Errorf("empty bank: got %v fellBack=%v, want empty and false", ids, fellBack)
	}
}

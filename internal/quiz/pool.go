package quiz

import (
	"math/rand/v2"

	"quizdrill/internal/bank"
)

// DefaultCount is the playlist size used when the requested count is
// missing or non-positive.
const DefaultCount = 20

// SelectOptions filters the bank into a candidate pool for a new session.
type SelectOptions struct {
	PoolMode PoolMode
	Category string // effective category filter, "" = all
	Count    int    // playlist cap, <=0 = DefaultCount
}

// DeriveSets scans the session log and returns the qids ever answered
// (seen) and the qids any session recorded as incorrect (wrong).
func DeriveSets(history []Session) (seen, wrong map[string]bool) {
	seen = make(map[string]bool)
	wrong = make(map[string]bool)
	for i := range history {
		for _, it := range history[i].Items {
			seen[it.QID] = true
			if it.IsCorrect != nil && !*it.IsCorrect {
				wrong[it.QID] = true
			}
		}
	}
	return seen, wrong
}

// SelectPlaylist builds a shuffled, size-bounded playlist of question ids.
// When the filters leave nothing, it falls back to the whole bank rather
// than returning an empty playlist; fellBack reports that this happened.
func SelectPlaylist(b bank.Bank, cm bank.CategoryMap, history []Session, opts SelectOptions) (ids []string, fellBack bool) {
	if len(b) == 0 {
		return nil, false
	}

	count := opts.Count
	if count <= 0 {
		count = DefaultCount
	}

	seen, wrong := DeriveSets(history)

	pool := make([]string, 0, len(b))
	for i := range b {
		q := &b[i]
		if opts.Category != "" && bank.EffectiveCategory(q, cm) != opts.Category {
			continue
		}
		switch opts.PoolMode {
		case PoolWrong:
			if !wrong[q.ID] {
				continue
			}
		case PoolUnseen:
			if seen[q.ID] {
				continue
			}
		}
		pool = append(pool, q.ID)
	}

	// The user must never be left with zero candidates while the bank has
	// questions; drop all filters instead.
	if len(pool) == 0 {
		pool = b.IDs()
		fellBack = true
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count], fellBack
}

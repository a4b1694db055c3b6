// Package bank holds the imported question collection and the
// normalization boundary that turns loosely-shaped import records into
// validated Question values. The engine never sees raw import records.
package bank

import (
	"sort"
	"strings"

	"quizdrill/internal/storage"
)

// Question is one normalized multiple-choice question. Immutable once
// loaded; identity is ID. Options[i] corresponds to letter 'A'+i.
type Question struct {
	ID          string   `json:"id"`
	Stem        string   `json:"stem"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Category    string   `json:"category"`
}

// CorrectLetter returns the question's answer letter, trimmed and uppercased.
func (q *Question) CorrectLetter() string {
	return strings.ToUpper(strings.TrimSpace(q.Answer))
}

// IndexToLetter maps an option index to its letter ("A" for 0). Returns ""
// for indexes outside A-Z.
func IndexToLetter(i int) string {
	if i < 0 || i >= 26 {
		return ""
	}
	return string(rune('A' + i))
}

// CategoryMap overrides Question.Category by question id.
type CategoryMap map[string]string

// Bank is the full imported question collection, in import order.
type Bank []Question

// Get returns the question with the given id, or nil if absent.
// IDs are compared as strings to tolerate numeric source ids.
func (b Bank) Get(id string) *Question {
	for i := range b {
		if b[i].ID == id {
			return &b[i]
		}
	}
	return nil
}

// IDs returns every question id in bank order.
func (b Bank) IDs() []string {
	ids := make([]string, len(b))
	for i := range b {
		ids[i] = b[i].ID
	}
	return ids
}

// EffectiveCategory resolves a question's category, preferring the
// override map.
func EffectiveCategory(q *Question, cm CategoryMap) string {
	if c, ok := cm[q.ID]; ok && c != "" {
		return c
	}
	return q.Category
}

// Categories returns the sorted set of non-empty effective categories.
func (b Bank) Categories(cm CategoryMap) []string {
	set := make(map[string]bool)
	for i := range b {
		if c := EffectiveCategory(&b[i], cm); c != "" {
			set[c] = true
		}
	}
	cats := make([]string, 0, len(set))
	for c := range set {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// LoadBank reads the bank document, returning an empty bank when the
// store is cold or the stored value is corrupt.
func LoadBank(st *storage.Store) Bank {
	b := Bank{}
	st.Get(storage.KeyBank, &b)
	return b
}

// SaveBank persists the bank document.
func SaveBank(st *storage.Store, b Bank) error {
	return st.Put(storage.KeyBank, b)
}

// LoadCategoryMap reads the category override document, empty on failure.
func LoadCategoryMap(st *storage.Store) CategoryMap {
	cm := CategoryMap{}
	st.Get(storage.KeyCategoryMap, &cm)
	return cm
}

// SaveCategoryMap persists the category override document.
func SaveCategoryMap(st *storage.Store, cm CategoryMap) error {
	return st.Put(storage.KeyCategoryMap, cm)
}

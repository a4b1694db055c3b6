package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDocumentsTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='documents'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "documents", name)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := map[string]string{"7": "logic", "12": "reading"}
	require.NoError(t, s.Put(KeyCategoryMap, in))

	out := map[string]string{}
	ok := s.Get(KeyCategoryMap, &out)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestGetMissingKeyLeavesFallback(t *testing.T) {
	s := openTestStore(t)

	out := []string{"fallback"}
	ok := s.Get(KeyBank, &out)
	assert.False(t, ok)
	assert.Equal(t, []string{"fallback"}, out, "fallback value must survive a missing read")
}

func TestGetCorruptValueLeavesFallback(t *testing.T) {
	s := openTestStore(t)

	_, err := s.DB().Exec(
		"INSERT INTO documents (key, value) VALUES (?, ?)", KeyNotes, "{not json",
	)
	require.NoError(t, err)

	out := map[string]string{"1": "kept"}
	ok := s.Get(KeyNotes, &out)
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"1": "kept"}, out)
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyTheme, "light"))
	require.NoError(t, s.Put(KeyTheme, "dark"))

	var theme string
	ok := s.Get(KeyTheme, &theme)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Delete(KeyLastSession))
}

func TestResetClearsAllKeys(t *testing.T) {
	s := openTestStore(t)

	for _, key := range AllKeys {
		require.NoError(t, s.Put(key, "x"))
	}
	require.NoError(t, s.Reset())

	for _, key := range AllKeys {
		var v string
		assert.False(t, s.Get(key, &v), "key %s should be gone", key)
	}
}

func TestRawPassThrough(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyTheme, "dark"))
	raw, ok := s.Raw(KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, `"dark"`, raw)

	_, ok = s.Raw(KeyBank)
	assert.False(t, ok)
}

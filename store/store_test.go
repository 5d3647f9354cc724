package store_test

import (
	"testing"

	"github.com/katalvlaran/antcover/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := openMem(t)

	_, err := s.Get("AC_01")
	require.ErrorIs(t, err, store.ErrNotFound)

	ok, err := s.Put(store.Record{Instance: "AC_01", Solution: []int{4, 2, 9}, NumSamples: 10})
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err := s.Get("AC_01")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 9}, rec.Solution)
	assert.Equal(t, 3, rec.Cost)
	assert.Equal(t, 10, rec.NumSamples)
	assert.False(t, rec.UpdatedAt.IsZero())
}

// TestStore_KeepsBest only replaces a record with a strictly cheaper one.
func TestStore_KeepsBest(t *testing.T) {
	s := openMem(t)

	_, err := s.Put(store.Record{Instance: "x", Solution: []int{1, 2, 3}})
	require.NoError(t, err)

	ok, err := s.Put(store.Record{Instance: "x", Solution: []int{4, 5, 6}})
	require.NoError(t, err)
	assert.False(t, ok, "equal cost")

	ok, err = s.Put(store.Record{Instance: "x", Solution: []int{7, 8}})
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err := s.Get("x")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, rec.Solution)
}

func TestStore_List(t *testing.T) {
	s := openMem(t)
	for _, name := range []string{"b", "a"} {
		_, err := s.Put(store.Record{Instance: name, Solution: []int{0}})
		require.NoError(t, err)
	}

	recs, err := s.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].Instance)
	assert.Equal(t, "b", recs[1].Instance)
}

func TestStore_Persistent(t *testing.T) {
	dir := t.TempDir()
	s, err := store.Open(store.Config{Path: dir})
	require.NoError(t, err)
	_, err = s.Put(store.Record{Instance: "p", Solution: []int{3}})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(store.Config{Path: dir})
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.Get("p")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, rec.Solution)
}

func TestStore_Errors(t *testing.T) {
	_, err := store.Open(store.Config{})
	require.Error(t, err)

	_, err = openMem(t).Put(store.Record{Solution: []int{1}})
	require.Error(t, err)
}

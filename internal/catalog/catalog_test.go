// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openStore(t)

	first := Run{
		Source:      "frere.abc",
		Title:       "Frère Jacques",
		NoteCount:   32,
		MappedCount: 30,
		SVGPath:     "frere.svg",
		PDFPath:     "frere.pdf",
		CreatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	second := Run{
		Source:      "ode.abc",
		Title:       "Ode to Joy",
		NoteCount:   62,
		MappedCount: 62,
		SVGPath:     "ode.svg",
		CreatedAt:   time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	}

	id1, err := store.Record(first)
	require.NoError(t, err)
	assert.Greater(t, id1, int64(0))

	_, err = store.Record(second)
	require.NoError(t, err)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "Ode to Joy", runs[0].Title)
	assert.Equal(t, "Frère Jacques", runs[1].Title)
	assert.Equal(t, 30, runs[1].MappedCount)
	assert.Equal(t, "frere.pdf", runs[1].PDFPath)
	assert.Empty(t, runs[0].PDFPath)
}

func TestRecentLimit(t *testing.T) {
	store := openStore(t)
	for i := 0; i < 5; i++ {
		_, err := store.Record(Run{Source: "s.abc", Title: "T", SVGPath: "s.svg"})
		require.NoError(t, err)
	}

	runs, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecentEmpty(t *testing.T) {
	store := openStore(t)
	runs, err := store.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRecordFillsCreatedAt(t *testing.T) {
	store := openStore(t)
	_, err := store.Record(Run{Source: "s.abc", Title: "T", SVGPath: "s.svg"})
	require.NoError(t, err)

	runs, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	tests := []struct {
		name      string
		reference []string
		tineCount int
		wantSize  int
		errMsg    string
	}{
		{
			name:      "truncates reference to tine count",
			reference: DefaultReferenceTable(),
			tineCount: 7,
			wantSize:  7,
		},
		{
			name:      "tine count beyond reference keeps whole table",
			reference: DefaultReferenceTable(),
			tineCount: 99,
			wantSize:  24,
		},
		{
			name:      "standard 17-tine instrument",
			reference: DefaultReferenceTable(),
			tineCount: 17,
			wantSize:  17,
		},
		{
			name:      "empty reference is legal",
			reference: nil,
			tineCount: 17,
			wantSize:  0,
		},
		{
			name:      "zero tine count rejected",
			reference: DefaultReferenceTable(),
			tineCount: 0,
			errMsg:    "must be positive",
		},
		{
			name:      "duplicate pitch rejected",
			reference: []string{"c2", "c2"},
			tineCount: 2,
			errMsg:    "duplicate pitch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProfile(tt.reference, tt.tineCount)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, p.Size())

			// Indices are contiguous from 1 and ascend with pitch.
			for i, pitch := range tt.reference[:tt.wantSize] {
				idx, ok := p.Lookup(pitch)
				require.True(t, ok, "pitch %s should be in profile", pitch)
				assert.Equal(t, i+1, idx)
			}
			if tt.wantSize < len(tt.reference) {
				_, ok := p.Lookup(tt.reference[tt.wantSize])
				assert.False(t, ok, "truncated pitch should not be in profile")
			}
		})
	}
}

func TestSevenTineProfileCoversFirstOctave(t *testing.T) {
	p, err := NewProfile(DefaultReferenceTable(), 7)
	require.NoError(t, err)

	idx, ok := p.Lookup("b2")
	require.True(t, ok)
	assert.Equal(t, 7, idx)

	_, ok = p.Lookup("c3")
	assert.False(t, ok, "c3 is tine 8 and must be outside a 7-tine profile")
}

func TestLoadReferenceTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pentatonic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tines:\n  - c3\n  - d3\n  - e3\n  - g3\n  - a3\n"), 0o644))

	ref, err := LoadReferenceTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "d3", "e3", "g3", "a3"}, ref)
}

func TestLoadReferenceTableErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReferenceTable(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("tines: []\n"), 0o644))
	_, err = LoadReferenceTable(empty)
	assert.ErrorContains(t, err, "no tines")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tines: {not: a list}\n"), 0o644))
	_, err = LoadReferenceTable(bad)
	assert.Error(t, err)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tine maps pitched note events onto the numbered tines of a
// kalimba, applying the instrument size and the octave-fallback policy.
package tine

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// defaultReference lists the pitch names a full-size instrument covers,
// ascending, naturals only. Truncating it to the first 17 entries yields the
// standard 17-tine layout (c2..e4).
var defaultReference = []string{
	"c2", "d2", "e2", "f2", "g2", "a2", "b2",
	"c3", "d3", "e3", "f3", "g3", "a3", "b3",
	"c4", "d4", "e4", "f4", "g4", "a4", "b4",
	"c5", "d5", "e5",
}

// DefaultReferenceTable returns a copy of the built-in 24-entry pitch table.
func DefaultReferenceTable() []string {
	ref := make([]string, len(defaultReference))
	copy(ref, defaultReference)
	return ref
}

// Profile is an immutable description of one instrument: which pitch names
// it can play and on which tine. Built once per run.
type Profile struct {
	tines map[string]int
	size  int
}

// NewProfile builds a profile from a reference table truncated to tineCount
// entries. Tine indices are contiguous, 1-based, and ascend with pitch.
// A tineCount that truncates the table to zero entries is legal; every note
// is then unmappable.
func NewProfile(reference []string, tineCount int) (Profile, error) {
	if tineCount <= 0 {
		return Profile{}, fmt.Errorf("tine count must be positive, got %d", tineCount)
	}
	if tineCount > len(reference) {
		tineCount = len(reference)
	}
	tines := make(map[string]int, tineCount)
	for i, pitch := range reference[:tineCount] {
		if _, dup := tines[pitch]; dup {
			return Profile{}, fmt.Errorf("duplicate pitch %q in reference table", pitch)
		}
		tines[pitch] = i + 1
	}
	return Profile{tines: tines, size: tineCount}, nil
}

// Size returns the number of tines in the profile.
func (p Profile) Size() int {
	return p.size
}

// Lookup returns the tine index for a canonical pitch name.
func (p Profile) Lookup(pitch string) (int, bool) {
	idx, ok := p.tines[pitch]
	return idx, ok
}

// referenceFile is the on-disk shape of a custom reference table.
type referenceFile struct {
	Tines []string `yaml:"tines"`
}

// LoadReferenceTable reads a custom pitch table from a YAML file holding a
// "tines" list, ascending with pitch.
func LoadReferenceTable(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference table: %w", err)
	}
	var rf referenceFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing reference table: %w", err)
	}
	if len(rf.Tines) == 0 {
		return nil, fmt.Errorf("reference table %s lists no tines", path)
	}
	return rf.Tines, nil
}

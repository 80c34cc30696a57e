// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tine

import (
	"fmt"
	"io"

	"github.com/kalimbatab/kalimbatab/pkg/types"
)

// Policy selects what happens to a note outside the instrument's range.
type Policy string

const (
	// PolicyIgnore drops out-of-range notes.
	PolicyIgnore Policy = "ignore"

	// PolicyShiftDown retries the lookup exactly one octave lower, then
	// drops the note if it is still out of range. Never shifts twice.
	PolicyShiftDown Policy = "shift_down"
)

// ParsePolicy validates a policy name from config or flags.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyIgnore, PolicyShiftDown:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown octave policy %q (want %q or %q)", s, PolicyIgnore, PolicyShiftDown)
}

// Map converts note events to mapped notes in input order. Unmappable
// events are dropped without a placeholder; duplicates map to duplicates.
// Shift and drop decisions are reported to w for operator visibility only.
func Map(events []types.NoteEvent, p Profile, policy Policy, w io.Writer) []types.MappedNote {
	mapped := make([]types.MappedNote, 0, len(events))
	for _, e := range events {
		pitch, ok := e.PitchName()
		if !ok {
			fmt.Fprintf(w, "warning: skipping malformed note %+v\n", e)
			continue
		}
		idx, found := p.Lookup(pitch)
		if !found && policy == PolicyShiftDown {
			shifted, _ := e.ShiftedDown().PitchName()
			if idx, found = p.Lookup(shifted); found {
				fmt.Fprintf(w, "shifted: %s -> %s\n", pitch, shifted)
			}
		}
		if !found {
			fmt.Fprintf(w, "dropped: %s (out of range)\n", pitch)
			continue
		}
		mapped = append(mapped, types.MappedNote{
			Tine:      idx,
			Direction: types.DirectionForTine(idx),
		})
	}
	return mapped
}

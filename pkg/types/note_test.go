// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestPitchName(t *testing.T) {
	tests := []struct {
		name  string
		event NoteEvent
		want  string
		ok    bool
	}{
		{"natural", NoteEvent{Letter: 'C', Octave: 4}, "c4", true},
		{"sharp", NoteEvent{Letter: 'F', Accidental: AccidentalSharp, Octave: 3}, "f#3", true},
		{"flat", NoteEvent{Letter: 'B', Accidental: AccidentalFlat, Octave: 2}, "bb2", true},
		{"lowercase letter accepted", NoteEvent{Letter: 'g', Octave: 5}, "g5", true},
		{"negative octave spelled literally", NoteEvent{Letter: 'A', Octave: -1}, "a-1", true},
		{"letter outside A-G", NoteEvent{Letter: 'H', Octave: 4}, "", false},
		{"zero letter", NoteEvent{Octave: 4}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.PitchName()
			if ok != tt.ok || got != tt.want {
				t.Errorf("PitchName() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestShiftedDown(t *testing.T) {
	e := NoteEvent{Letter: 'C', Octave: 3}
	shifted := e.ShiftedDown()
	if shifted.Octave != 2 {
		t.Errorf("shifted octave = %d, want 2", shifted.Octave)
	}
	if e.Octave != 3 {
		t.Error("ShiftedDown must not mutate the receiver")
	}
}

func TestDirectionForTine(t *testing.T) {
	if DirectionForTine(1) != DirectionDown {
		t.Error("tine 1 should strike down")
	}
	if DirectionForTine(2) != DirectionUp {
		t.Error("tine 2 should strike up")
	}
}

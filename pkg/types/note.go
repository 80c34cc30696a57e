// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// Accidental is the chromatic alteration of a note, spelled the way the
// tine table spells it. There is no enharmonic equivalence: "c#4" and "db4"
// are distinct keys and only an exact table entry matches.
type Accidental string

const (
	AccidentalNone  Accidental = ""
	AccidentalSharp Accidental = "#"
	AccidentalFlat  Accidental = "b"
	// AccidentalNatural spells the same as the bare letter, so an explicit
	// natural matches the plain table entry.
	AccidentalNatural Accidental = ""
)

// NoteEvent is a single pitched event produced by the score loader.
// Immutable once built; consumed exactly once by the tine mapper.
type NoteEvent struct {
	// Letter is the pitch letter, 'A' through 'G'.
	Letter byte `json:"letter" yaml:"letter"`

	// Accidental is the spelled alteration, if any.
	Accidental Accidental `json:"accidental,omitempty" yaml:"accidental,omitempty"`

	// Octave is the scientific pitch octave (middle C is octave 4).
	Octave int `json:"octave" yaml:"octave"`
}

// PitchName returns the canonical lookup key for the event, e.g. "c4" or
// "f#3": lowercase letter, accidental symbol, octave digits. ok is false
// when the letter is outside A-G; such events are unmappable.
func (e NoteEvent) PitchName() (string, bool) {
	l := e.Letter
	if l >= 'A' && l <= 'G' {
		l += 'a' - 'A'
	}
	if l < 'a' || l > 'g' {
		return "", false
	}
	return string(l) + string(e.Accidental) + strconv.Itoa(e.Octave), true
}

// ShiftedDown returns a copy of the event one octave lower.
func (e NoteEvent) ShiftedDown() NoteEvent {
	e.Octave--
	return e
}

// Direction is the strike direction rendered next to a tine number.
type Direction string

const (
	DirectionDown Direction = "down"
	DirectionUp   Direction = "up"
)

// DirectionForTine returns the direction for a tine index: down for odd
// indices, up for even. The alternation is a fixed visual convention with
// no musical meaning; it only varies the glyph for readability.
func DirectionForTine(tine int) Direction {
	if tine%2 == 0 {
		return DirectionUp
	}
	return DirectionDown
}

// MappedNote is the tine mapper output consumed by the renderer.
type MappedNote struct {
	// Tine is the 1-based tine index on the target instrument.
	Tine int `json:"tine" yaml:"tine"`

	// Direction is derived from the tine parity, see DirectionForTine.
	Direction Direction `json:"direction" yaml:"direction"`
}

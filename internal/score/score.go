// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score loads ABC notation files and flattens them into an ordered
// sequence of pitched note events.
package score

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/egonelbre/lilypond/abc2ly/abc"

	"github.com/kalimbatab/kalimbatab/pkg/types"
)

// ErrNoTunes reports an ABC file that parsed but contains no tunes.
var ErrNoTunes = errors.New("no tunes in file")

// Score is the loader output: the tune title and its note events in
// source order. Rests, bar lines, and decorations carry no pitch and are
// not represented.
type Score struct {
	Title  string
	Events []types.NoteEvent
}

// Load parses the ABC file at path and extracts the first tune. Voice and
// tune multiplicity beyond the first is out of scope. Parser warnings are
// printed to w; a file that cannot be parsed at all returns an error.
func Load(path string, w io.Writer) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}

	book, warnings := abc.Parse(string(data))
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warning.Message)
	}
	if len(book.Tunes) == 0 {
		return nil, fmt.Errorf("parsing %s: %w", path, ErrNoTunes)
	}

	tune := book.Tunes[0]
	s := &Score{Title: tune.Title}
	for _, stave := range tune.Body.Staves {
		for _, sym := range stave.Symbols {
			if sym.Kind != abc.KindNote {
				continue
			}
			for _, n := range sym.Notes {
				s.Events = append(s.Events, toEvent(n))
			}
		}
	}
	return s, nil
}

// toEvent converts a parsed ABC note into a NoteEvent. The parser counts
// octaves relative to the octave below middle C, so scientific pitch is
// Octave + 4.
func toEvent(n abc.Note) types.NoteEvent {
	e := types.NoteEvent{Octave: n.Octave + 4}
	if len(n.Pitch) > 0 {
		e.Letter = upper(n.Pitch[0])
	}
	for _, acc := range n.Accidentals {
		switch acc {
		case abc.AccidentalSharp:
			e.Accidental = types.AccidentalSharp
		case abc.AccidentalFlat:
			e.Accidental = types.AccidentalFlat
		case abc.AccidentalNatural:
			e.Accidental = types.AccidentalNatural
		}
	}
	return e
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tab lays mapped notes out on a fixed A4 page and renders the
// result as an SVG tablature.
package tab

import (
	"strconv"

	"github.com/kalimbatab/kalimbatab/pkg/types"
)

// Page geometry in points (A4). The grid starts under the title and wraps
// every GlyphsPerRow glyphs.
const (
	PageWidth    = 595
	PageHeight   = 842
	MarginX      = 20
	TitleY       = 30
	TitleSize    = 24
	FirstRowY    = 50
	ColSpacing   = 30
	RowSpacing   = 40
	GlyphsPerRow = 16
	GlyphSize    = 20
)

// DefaultTitle is used when the tune carries no title of its own.
const DefaultTitle = "Kalimba Tablature"

// Glyph is one positioned tablature entry: the tine number plus its strike
// direction, e.g. "3▼".
type Glyph struct {
	Tine      int
	Direction types.Direction
	Label     string
	X, Y      int
}

// Sheet is the laid-out tablature page.
type Sheet struct {
	Title  string
	Width  int
	Height int
	Glyphs []Glyph
}

// directionMark returns the text mark for a strike direction.
func directionMark(d types.Direction) string {
	if d == types.DirectionUp {
		return "▲"
	}
	return "▼"
}

// Layout places mapped notes on the page in input order, one glyph per
// note. No glyph is dropped or reordered.
func Layout(notes []types.MappedNote, title string) Sheet {
	if title == "" {
		title = DefaultTitle
	}
	s := Sheet{
		Title:  title,
		Width:  PageWidth,
		Height: PageHeight,
		Glyphs: make([]Glyph, 0, len(notes)),
	}
	x, y := MarginX, FirstRowY
	for i, n := range notes {
		s.Glyphs = append(s.Glyphs, Glyph{
			Tine:      n.Tine,
			Direction: n.Direction,
			Label:     strconv.Itoa(n.Tine) + directionMark(n.Direction),
			X:         x,
			Y:         y,
		})
		x += ColSpacing
		if (i+1)%GlyphsPerRow == 0 {
			x = MarginX
			y += RowSpacing
		}
	}
	return s
}

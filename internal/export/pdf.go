// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export converts a laid-out tablature sheet into a paginated PDF
// document. The SVG artifact is the source of truth; a failure here never
// rolls it back.
package export

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/kalimbatab/kalimbatab/internal/tab"
	"github.com/kalimbatab/kalimbatab/pkg/types"
)

// Triangle geometry for the strike direction mark, in points.
const (
	markWidth  = 8
	markHeight = 7
	markGap    = 2
)

// WritePDF renders the sheet to a PDF file at path using the same page
// geometry as the SVG. The built-in PDF fonts have no glyph for the
// direction arrows, so directions are drawn as filled triangles instead.
func WritePDF(s tab.Sheet, path string) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", tab.TitleSize)
	pdf.Text(tab.MarginX, tab.TitleY, s.Title)

	pdf.SetFont("Helvetica", "", tab.GlyphSize)
	pdf.SetFillColor(0, 0, 0)
	for _, g := range s.Glyphs {
		num := strconv.Itoa(g.Tine)
		pdf.Text(float64(g.X), float64(g.Y), num)
		drawMark(pdf, float64(g.X)+pdf.GetStringWidth(num)+markGap, float64(g.Y), g.Direction)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// drawMark draws the direction triangle with its left edge at x and its
// base aligned to the text baseline at y.
func drawMark(pdf *gofpdf.Fpdf, x, y float64, d types.Direction) {
	var pts []gofpdf.PointType
	if d == types.DirectionUp {
		pts = []gofpdf.PointType{
			{X: x, Y: y},
			{X: x + markWidth, Y: y},
			{X: x + markWidth/2, Y: y - markHeight},
		}
	} else {
		pts = []gofpdf.PointType{
			{X: x, Y: y - markHeight},
			{X: x + markWidth, Y: y - markHeight},
			{X: x + markWidth/2, Y: y},
		}
	}
	pdf.Polygon(pts, "F")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tab

import (
	"bufio"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
)

const fontFamily = "font-family:sans-serif"

// WriteSVG serializes the sheet as an SVG document to w.
func WriteSVG(s Sheet, w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(s.Width, s.Height)
	canvas.Text(MarginX, TitleY, s.Title, fmt.Sprintf("font-size:%dpx;%s", TitleSize, fontFamily))
	for _, g := range s.Glyphs {
		canvas.Text(g.X, g.Y, g.Label, fmt.Sprintf("font-size:%dpx;%s", GlyphSize, fontFamily))
	}
	canvas.End()
}

// SaveSVG writes the sheet to an SVG file at path.
func SaveSVG(s Sheet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	WriteSVG(s, bw)
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

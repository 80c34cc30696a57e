// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tab

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSVG(t *testing.T) {
	s := Layout(mapped(1, 2, 17), "Frère Jacques")

	var buf bytes.Buffer
	WriteSVG(s, &buf)
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an SVG document:\n%s", out)
	}
	for _, want := range []string{"Frère Jacques", "1▼", "2▲", "17▼"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Glyph order in the document matches input order.
	if strings.Index(out, "1▼") > strings.Index(out, "17▼") {
		t.Error("glyphs serialized out of order")
	}
}

func TestSaveSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tab.svg")
	if err := SaveSVG(Layout(mapped(1), ""), path); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), DefaultTitle) {
		t.Error("saved SVG missing default title")
	}
}

func TestSaveSVGUnwritablePath(t *testing.T) {
	err := SaveSVG(Layout(mapped(1), ""), filepath.Join(t.TempDir(), "no", "such", "dir", "tab.svg"))
	if err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}

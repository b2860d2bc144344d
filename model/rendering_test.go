package model

import (
	"bytes"
	"testing"
)

func TestRenderGlyphMapping(t *testing.T) {
	g := NewGrid(5, 4)
	g.Set(1, 2, true)
	g.Set(2, 3, true)

	s := NewScreenBuffer(5, 4)
	s.Render(g)

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			want := DeadGlyph
			if g.Get(y, x) {
				want = AliveGlyph
			}
			if got := s.At(y, x); got != want {
				t.Errorf("screen (%d,%d) = %d, want %d", y, x, got, want)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreenBuffer(4, 3)
	s.Fill('*')
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.At(y, x) != '*' {
				t.Fatalf("screen (%d,%d) = %d after fill, want '*'", y, x, s.At(y, x))
			}
		}
	}
}

func TestWriteTo(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, true)

	s := NewScreenBuffer(3, 3)
	s.Render(g)

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	want := "   \n X \n   \n"
	if buf.String() != want {
		t.Errorf("WriteTo output %q, want %q", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo reported %d bytes, want %d", n, len(want))
	}
}

func TestRenderDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("rendering a 4x4 grid into a 3x3 screen did not panic")
		}
	}()
	NewScreenBuffer(3, 3).Render(NewGrid(4, 4))
}

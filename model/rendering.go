package model

import (
	"fmt"
	"io"
)

// Character codes written into the screen buffer, matching the classic
// text-mode display: 88 ('X') for a live cell, 32 (space) for a dead one.
const (
	AliveGlyph byte = 88
	DeadGlyph  byte = 32
)

/*
ScreenBuffer is an owned character buffer a renderer fills from a Grid.
It stands in for the text-mode display memory: one byte per cell, row-major.
*/
type ScreenBuffer struct {
	width  int
	height int
	chars  []byte
}

// NewScreenBuffer creates a buffer sized for a width x height grid, filled
// with DeadGlyph.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: invalid screen dimensions %dx%d", width, height))
	}
	s := &ScreenBuffer{
		width:  width,
		height: height,
		chars:  make([]byte, width*height),
	}
	s.Fill(DeadGlyph)
	return s
}

// Fill writes c to every position in the buffer.
func (s *ScreenBuffer) Fill(c byte) {
	for i := range s.chars {
		s.chars[i] = c
	}
}

// Render overwrites the whole buffer with the grid's current state.
func (s *ScreenBuffer) Render(g *Grid) {
	if g.Width() != s.width || g.Height() != s.height {
		panic(fmt.Sprintf("model: cannot render %dx%d grid into %dx%d screen",
			g.Width(), g.Height(), s.width, s.height))
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := DeadGlyph
			if g.Get(y, x) {
				c = AliveGlyph
			}
			s.chars[y*s.width+x] = c
		}
	}
}

// At returns the character at (y, x).
func (s *ScreenBuffer) At(y, x int) byte {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		panic(fmt.Sprintf("model: screen position (%d,%d) out of range for %dx%d buffer",
			y, x, s.width, s.height))
	}
	return s.chars[y*s.width+x]
}

// WriteTo writes the buffer to w, one row per line.
func (s *ScreenBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for y := 0; y < s.height; y++ {
		n, err := w.Write(s.chars[y*s.width : (y+1)*s.width])
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = w.Write([]byte{'\n'})
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

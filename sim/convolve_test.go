package sim

import (
	"fmt"
	"testing"
)

func TestFFTCountsMatchDirect(t *testing.T) {
	sizes := []struct{ width, height int }{
		{40, 25},
		{8, 8},
		{5, 9},
		{3, 3},
	}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.width, size.height), func(t *testing.T) {
			g := randomGrid(size.width, size.height, 17)

			direct := NewCountField(size.width, size.height)
			DirectCounter{Workers: 1}.CountField(g, direct)

			fft := NewCountField(size.width, size.height)
			NewFFTCounter().CountField(g, fft)

			for y := 1; y < size.height-1; y++ {
				for x := 1; x < size.width-1; x++ {
					if direct.At(y, x) != fft.At(y, x) {
						t.Fatalf("count at (%d,%d): fft=%d direct=%d", y, x, fft.At(y, x), direct.At(y, x))
					}
				}
			}
		})
	}
}

func TestFFTEngineMatchesDirectEngine(t *testing.T) {
	direct := randomGrid(40, 25, 23)
	fft := direct.Clone()

	NewEngine(DirectCounter{Workers: 1}).Run(direct, 10)
	NewEngine(NewFFTCounter()).Run(fft, 10)

	if !direct.Equal(fft) {
		t.Error("FFT backend diverged from direct counting after 10 generations")
	}
}

func TestFFTCounterHandlesResize(t *testing.T) {
	counter := NewFFTCounter()
	engine := NewEngine(counter)

	small := randomGrid(8, 8, 31)
	engine.Step(small)

	large := randomGrid(16, 12, 31)
	want := nextRef(large)
	engine.Step(large)
	if !large.Equal(want) {
		t.Error("FFT counter produced a wrong generation after a grid-size change")
	}
}

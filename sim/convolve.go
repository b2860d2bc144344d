package sim

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/mhertz/textlife/model"
)

/*
FFTCounter computes the whole neighbour-count field in one pass by
convolving the cell field with a 3x3 ones kernel in the frequency domain:
real FFT across each row, complex FFT down each column, pointwise multiply
with the pre-transformed kernel, then the inverse transforms.

The convolution wraps around the grid edges, but wrapped contributions only
land on border positions, which are never read back: every neighbour of an
interior cell is in-grid. Plans and buffers are rebuilt when the grid
dimensions change.
*/
type FFTCounter struct {
	width  int
	height int
	halfW  int // width/2 + 1 coefficients per row (real-input symmetry)

	rowFFT *fourier.FFT
	colFFT *fourier.CmplxFFT

	kernelFreq []complex128 // height rows x halfW cols
	freqBuf    []complex128 // height rows x halfW cols
	colBuf     []complex128 // length height
	rowBuf     []float64    // length width
	normInv    float64      // 1/(width*height), inverse transforms are unnormalized
}

func NewFFTCounter() *FFTCounter {
	return &FFTCounter{}
}

func (c *FFTCounter) init(width, height int) {
	c.width = width
	c.height = height
	c.halfW = width/2 + 1
	c.rowFFT = fourier.NewFFT(width)
	c.colFFT = fourier.NewCmplxFFT(height)
	c.normInv = 1.0 / float64(width*height)

	c.kernelFreq = make([]complex128, height*c.halfW)
	c.freqBuf = make([]complex128, height*c.halfW)
	c.colBuf = make([]complex128, height)
	c.rowBuf = make([]float64, width)

	// 3x3 ones kernel (centre zero) placed with wraparound, then
	// transformed once.
	kernelReal := make([]float64, width*height)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			fy := (dy + height) % height
			fx := (dx + width) % width
			kernelReal[fy*width+fx] = 1
		}
	}
	for y := 0; y < height; y++ {
		c.rowFFT.Coefficients(c.kernelFreq[y*c.halfW:(y+1)*c.halfW], kernelReal[y*width:(y+1)*width])
	}
	c.transformColumns(c.kernelFreq, false)
}

// transformColumns runs the complex FFT down each stored column, forward or
// inverse.
func (c *FFTCounter) transformColumns(buf []complex128, inverse bool) {
	for x := 0; x < c.halfW; x++ {
		for y := 0; y < c.height; y++ {
			c.colBuf[y] = buf[y*c.halfW+x]
		}
		if inverse {
			c.colFFT.Sequence(c.colBuf, c.colBuf)
		} else {
			c.colFFT.Coefficients(c.colBuf, c.colBuf)
		}
		for y := 0; y < c.height; y++ {
			buf[y*c.halfW+x] = c.colBuf[y]
		}
	}
}

func (c *FFTCounter) CountField(g *model.Grid, f *CountField) {
	width, height := g.Width(), g.Height()
	if width < 3 || height < 3 {
		return
	}
	if c.width != width || c.height != height {
		c.init(width, height)
	}

	// Forward 2D FFT of the cell field.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.Get(y, x) {
				c.rowBuf[x] = 1
			} else {
				c.rowBuf[x] = 0
			}
		}
		c.rowFFT.Coefficients(c.freqBuf[y*c.halfW:(y+1)*c.halfW], c.rowBuf)
	}
	c.transformColumns(c.freqBuf, false)

	// Pointwise multiply with the kernel in the frequency domain.
	for i := range c.freqBuf {
		c.freqBuf[i] *= c.kernelFreq[i]
	}

	// Inverse 2D FFT; round interior values to integer counts.
	c.transformColumns(c.freqBuf, true)
	for y := 1; y < height-1; y++ {
		c.rowFFT.Sequence(c.rowBuf, c.freqBuf[y*c.halfW:(y+1)*c.halfW])
		for x := 1; x < width-1; x++ {
			f.set(y, x, uint8(math.Round(c.rowBuf[x]*c.normInv)))
		}
	}
}

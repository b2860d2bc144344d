package sim

import "sync"

/*
CountField holds one live-neighbour count (0..8) per cell. It decouples the
two phases of a generation step: counts are computed entirely from the
previous generation before any cell is rewritten.

Counts are stored row-major like the grid; only interior positions are ever
filled or read.
*/
type CountField struct {
	width  int
	height int
	counts []uint8
}

// NewCountField creates a zeroed count field for a width x height grid.
func NewCountField(width, height int) *CountField {
	return &CountField{
		width:  width,
		height: height,
		counts: make([]uint8, width*height),
	}
}

// Reset resizes the field if needed and zeroes every count.
func (f *CountField) Reset(width, height int) {
	f.width = width
	f.height = height
	if len(f.counts) != width*height {
		f.counts = make([]uint8, width*height)
		return
	}
	for i := range f.counts {
		f.counts[i] = 0
	}
}

// At returns the stored count for (y, x).
func (f *CountField) At(y, x int) int {
	return int(f.counts[y*f.width+x])
}

func (f *CountField) set(y, x int, n uint8) {
	f.counts[y*f.width+x] = n
}

// FieldPool recycles count fields between steps and engines.
type FieldPool struct {
	pool sync.Pool
}

func NewFieldPool() *FieldPool {
	return &FieldPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &CountField{}
			},
		},
	}
}

// Get retrieves a count field from the pool, reset to the given dimensions.
func (p *FieldPool) Get(width, height int) *CountField {
	f := p.pool.Get().(*CountField)
	f.Reset(width, height)
	return f
}

// Put returns a count field to the pool.
func (p *FieldPool) Put(f *CountField) {
	if f == nil {
		return
	}
	p.pool.Put(f)
}

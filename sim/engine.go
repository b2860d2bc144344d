package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mhertz/textlife/model"
	"github.com/mhertz/textlife/rules"
)

// Counter fills a count field with live-neighbour counts for every interior
// cell of a grid. Implementations only read the grid.
type Counter interface {
	CountField(g *model.Grid, f *CountField)
}

/*
CountNeighbours returns how many of the eight cells surrounding (y, x) are
alive. (y, x) must be an interior coordinate (1 <= y <= height-2,
1 <= x <= width-2), which keeps every neighbour offset in bounds.
*/
func CountNeighbours(g *model.Grid, y, x int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			if g.Get(y+dy, x+dx) {
				count++
			}
		}
	}
	return count
}

/*
DirectCounter counts neighbours by scanning the 3x3 neighbourhood of each
interior cell. With Workers > 1 the interior rows are split into bands
counted concurrently; the grid is read-only during the count phase.

Workers <= 0 means one band per CPU.
*/
type DirectCounter struct {
	Workers int
}

func (c DirectCounter) CountField(g *model.Grid, f *CountField) {
	rows := g.Height() - 2
	if rows <= 0 {
		return
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > rows {
		workers = rows
	}
	if workers == 1 {
		countRows(g, f, 1, g.Height()-1)
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (rows + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		var (
			startRow = 1 + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.Height()-1)
		)
		if startRow >= g.Height()-1 {
			break
		}
		eg.Go(func() error {
			countRows(g, f, startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait()
}

// countRows fills counts for interior rows [startRow, endRow).
func countRows(g *model.Grid, f *CountField, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 1; x < g.Width()-1; x++ {
			f.set(y, x, uint8(CountNeighbours(g, y, x)))
		}
	}
}

/*
Engine advances a grid one full generation at a time: a count phase fills
the scratch field from the current state, then an apply phase rewrites each
interior cell from its stored count. Border cells are never written; they
act as a fixed dead boundary for the counts.

An Engine owns its scratch field and must not be shared across goroutines.
*/
type Engine struct {
	counter Counter
	pool    *FieldPool
	counts  *CountField
}

// NewEngine creates an engine using the given counting backend. A nil
// counter selects a serial DirectCounter.
func NewEngine(counter Counter) *Engine {
	if counter == nil {
		counter = DirectCounter{Workers: 1}
	}
	return &Engine{
		counter: counter,
		pool:    NewFieldPool(),
	}
}

// Step advances the grid by exactly one generation.
func (e *Engine) Step(g *model.Grid) {
	w, h := g.Width(), g.Height()
	if e.counts == nil || e.counts.width != w || e.counts.height != h {
		e.pool.Put(e.counts)
		e.counts = e.pool.Get(w, h)
	}
	e.counter.CountField(g, e.counts)
	applyField(g, e.counts)
}

// applyField rewrites every interior cell from its stored neighbour count.
func applyField(g *model.Grid, f *CountField) {
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			g.Set(y, x, rules.NextState(g.Get(y, x), f.At(y, x)))
		}
	}
}

// Run executes exactly iterations generation steps, mutating g in place.
// Zero iterations leaves the grid untouched. There is no early exit: a grid
// that has reached a steady state is stepped just the same.
func (e *Engine) Run(g *model.Grid, iterations uint) {
	for i := uint(0); i < iterations; i++ {
		e.Step(g)
	}
}

// RunContext behaves like Run but checks ctx between generations, so a
// long run can be cancelled at a generation boundary. The grid is always
// left holding a whole number of generations.
func (e *Engine) RunContext(ctx context.Context, g *model.Grid, iterations uint) error {
	for i := uint(0); i < iterations; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.Step(g)
	}
	return nil
}

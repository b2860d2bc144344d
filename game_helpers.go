package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/mhertz/textlife/model"
	"github.com/mhertz/textlife/sim"
	"github.com/mhertz/textlife/utils"
)

// printUsage prints the parameter help text
func printUsage() {
	fmt.Println("Conways Game Of Life")
	fmt.Println()
	fmt.Println("Enter the following values")
	fmt.Println()
	fmt.Printf("  limit [0..%d] for random generation\n", model.RandMax)
	fmt.Println("    0: filled completely")
	fmt.Println("    23000: pretty good value")
	fmt.Printf("    %d: very little cells\n", model.RandMax)
	fmt.Println()
	fmt.Println("  iterations [0..65535]")
	fmt.Println("    number of iterations calculated")
	fmt.Println()
}

// promptValues reads the random-fill limit and the iteration count from r.
func promptValues(r io.Reader) (limit int, iterations uint, err error) {
	fmt.Print("limit: ")
	if _, err = fmt.Fscan(r, &limit); err != nil {
		return 0, 0, errors.Wrap(err, "[promptValues] failed to read limit")
	}
	if limit < 0 || limit > model.RandMax {
		return 0, 0, errors.Errorf("[promptValues] limit must be in [0..%d], got %d", model.RandMax, limit)
	}

	fmt.Print("iterations: ")
	if _, err = fmt.Fscan(r, &iterations); err != nil {
		return 0, 0, errors.Wrap(err, "[promptValues] failed to read iterations")
	}

	return limit, iterations, nil
}

// newEngine builds the engine with the counting backend the config selects
func newEngine(config utils.Config) *sim.Engine {
	switch {
	case config.UseFFT:
		return sim.NewEngine(sim.NewFFTCounter())
	case config.UseParallel:
		return sim.NewEngine(sim.DirectCounter{Workers: config.Workers})
	default:
		return sim.NewEngine(nil)
	}
}

// runSimulation steps the grid through the requested generations, feeding
// per-generation timings into stats.
func runSimulation(engine *sim.Engine, grid *model.Grid, iterations uint, stats *utils.Stats) {
	for i := uint(0); i < iterations; i++ {
		start := time.Now()
		engine.Step(grid)
		stats.Update(int(i)+1, grid.Population(), time.Since(start))
	}
}

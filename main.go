package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mhertz/textlife/model"
	"github.com/mhertz/textlife/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	printUsage()

	if config.Interactive {
		limit, iterations, err := promptValues(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.Limit = limit
		config.Iterations = iterations
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := model.NewGrid(config.Width, config.Height)
	grid.RandomizeInterior(config.Limit, rand.New(rand.NewSource(seed)))

	engine := newEngine(config)
	stats := utils.NewStats()
	runSimulation(engine, grid, config.Iterations, stats)

	screen := model.NewScreenBuffer(config.Width, config.Height)
	screen.Render(grid)
	if _, err := screen.WriteTo(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("\n%d generations in %.1fms (%.1f gen/sec, avg population %.1f)\n",
		stats.TotalGenerations,
		float64(time.Since(stats.StartTime).Microseconds())/1000,
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

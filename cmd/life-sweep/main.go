package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"life-canvas/internal/sims/life"
	"life-canvas/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 2000, "generations to simulate per scenario")
	runs := flag.Int("runs", 16, "seeds to try per seed count")
	firstSeed := flag.Int64("first-seed", 1, "first random seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of simulations in flight")
	top := flag.Int("top", 5, "longest-lived scenarios to list")

	cfg := life.DefaultConfig()
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height in cells")
	flag.Var(&cfg.Neighbors, "neighbors", "neighbor lookup: table or scan")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *runs <= 0 {
		log.Fatalf("config: runs must be positive, got %d", *runs)
	}

	total := cfg.Width * cfg.Height
	seedCounts := []int{total / 20, total / 10, total / 5, total / 3}

	var scenarios []sweep.Scenario
	for _, n := range seedCounts {
		for i := 0; i < *runs; i++ {
			scenarios = append(scenarios, sweep.Scenario{Seed: *firstSeed + int64(i), Seeds: n})
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n",
		len(scenarios), cfg.Width, cfg.Height, *workers, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, cfg, scenarios, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nBy seed count:\n")
	for _, n := range seedCounts {
		var settled, gens, finalPop int
		for _, res := range results {
			if res.Scenario.Seeds != n {
				continue
			}
			if res.Settled() {
				settled++
				gens += res.SettledAt
			}
			finalPop += res.FinalPopulation
		}
		avgSettle := 0.0
		if settled > 0 {
			avgSettle = float64(gens) / float64(settled)
		}
		fmt.Printf("seeds=%6d settled=%d/%d avgSettle=%.1f avgFinalPop=%.1f\n",
			n, settled, *runs, avgSettle, float64(finalPop)/float64(*runs))
	}

	sort.Slice(results, func(i, j int) bool {
		return lifetime(results[i], *steps) > lifetime(results[j], *steps)
	})
	fmt.Printf("\nTop %d longest-lived (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		state := "unsettled"
		if res.Settled() {
			state = fmt.Sprintf("settled@%d period=%d", res.SettledAt, res.Period)
		}
		fmt.Printf("%2d) %s %s pop %d->%d peak=%d\n",
			i+1, res.Scenario, state, res.InitialPop, res.FinalPopulation, res.PeakPopulation)
	}
}

func lifetime(res sweep.Result, steps int) int {
	if res.Settled() {
		return res.SettledAt
	}
	return steps
}

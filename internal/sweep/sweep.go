// Package sweep runs many independently seeded Life simulations and reports
// how each one settles.
package sweep

import (
	"context"
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-canvas/internal/sims/life"
)

// Scenario is one seeded starting board.
type Scenario struct {
	Seed  int64
	Seeds int
}

func (s Scenario) String() string {
	return fmt.Sprintf("seed=%d seeds=%d", s.Seed, s.Seeds)
}

// Result summarizes a finished run.
type Result struct {
	Scenario Scenario

	// SettledAt is the first generation of the final still life or period-2
	// cycle, or -1 if the board never settled.
	SettledAt int
	Period    int

	Generations     int
	InitialPop      int
	FinalPopulation int
	PeakPopulation  int
}

// Settled reports whether the run reached a still life or a 2-cycle.
func (r Result) Settled() bool { return r.SettledAt >= 0 }

// Observe steps sim up to steps times, stopping early once the board repeats
// itself with period 1 or 2.
func Observe(ctx context.Context, sim *life.Life, steps int) Result {
	res := Result{
		SettledAt:      -1,
		InitialPop:     sim.Population(),
		PeakPopulation: sim.Population(),
	}
	prev1 := md5.Sum(sim.Cells())
	var prev2 [md5.Size]byte
	havePrev2 := false

	for i := 0; i < steps; i++ {
		if ctx.Err() != nil {
			break
		}
		sim.Step()
		if pop := sim.Population(); pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		cur := md5.Sum(sim.Cells())
		if cur == prev1 {
			res.SettledAt, res.Period = sim.Generation()-1, 1
			break
		}
		if havePrev2 && cur == prev2 {
			res.SettledAt, res.Period = sim.Generation()-2, 2
			break
		}
		prev2, prev1, havePrev2 = prev1, cur, true
	}
	res.Generations = sim.Generation()
	res.FinalPopulation = sim.Population()
	return res
}

// Run simulates every scenario on a copy of base with at most workers
// simulations in flight. Results keep the order of scenarios.
func Run(ctx context.Context, base life.Config, scenarios []Scenario, steps, workers int) ([]Result, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	for _, sc := range scenarios {
		cfg := base
		cfg.Seeds = sc.Seeds
		if err := cfg.Validate(); err != nil {
			return nil, errors.Wrapf(err, "scenario %s", sc)
		}
	}
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			cfg := base
			cfg.Seeds = sc.Seeds
			sim := life.NewWithConfig(cfg)
			sim.Reset(sc.Seed)
			res := Observe(ctx, sim, steps)
			res.Scenario = sc
			results[i] = res
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

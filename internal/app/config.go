package app

import (
	"flag"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"life-canvas/internal/sims/life"
)

// Config represents the startup parameters for the application.
type Config struct {
	Life life.Config

	// TPS is the host frame rate; generations run at Life.Rate.
	TPS      int
	Scale    int
	HUD      bool
	Terminal bool
}

// envKeys maps environment variables onto life.Config keys.
var envKeys = map[string]string{
	"LIFE_WIDTH":     "w",
	"LIFE_HEIGHT":    "h",
	"LIFE_SEEDS":     "seeds",
	"LIFE_RATE":      "rate",
	"LIFE_SEED":      "seed",
	"LIFE_NEIGHBORS": "neighbors",
}

// NewConfig returns a Config populated with sensible defaults. A zero
// Life.Seed is replaced by ResolveSeed.
func NewConfig() *Config {
	cfg := life.DefaultConfig()
	cfg.Seed = 0
	return &Config{Life: cfg, TPS: 60, Scale: 3}
}

// LoadEnv applies LIFE_* variables found through lookup.
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	kv := map[string]string{}
	for env, key := range envKeys {
		if v, ok := lookup(env); ok {
			kv[key] = v
		}
	}
	merged, err := c.Life.Merge(kv)
	if err != nil {
		return errors.Wrap(err, "[LoadEnv]")
	}
	c.Life = merged

	for env, dst := range map[string]*int{"LIFE_TPS": &c.TPS, "LIFE_SCALE": &c.Scale} {
		v, ok := lookup(env)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "[LoadEnv] invalid value for %s", env)
		}
		*dst = parsed
	}
	if v, ok := lookup("LIFE_HUD"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "[LoadEnv] invalid value for %s", "LIFE_HUD")
		}
		c.HUD = parsed
	}
	return c.Validate()
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "grid width in cells")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "grid height in cells")
	fs.IntVar(&c.Life.Seeds, "seeds", c.Life.Seeds, "number of random cells set live at start")
	fs.IntVar(&c.Life.Rate, "rate", c.Life.Rate, "generations per second")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "random seed (0 picks one from the clock)")
	fs.Var(&c.Life.Neighbors, "neighbors", "neighbor lookup: table or scan")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "initial window scale")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.BoolVar(&c.Terminal, "terminal", c.Terminal, "draw in the terminal instead of a window")
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := c.Life.Validate(); err != nil {
		return err
	}
	if c.TPS <= 0 {
		return errors.Errorf("[Config] tps must be positive, got %d", c.TPS)
	}
	if c.Scale <= 0 {
		return errors.Errorf("[Config] scale must be positive, got %d", c.Scale)
	}
	return nil
}

// ResolveSeed replaces a zero seed with one derived from now.
func (c *Config) ResolveSeed(now time.Time) {
	if c.Life.Seed == 0 {
		c.Life.Seed = now.UnixNano()
	}
}

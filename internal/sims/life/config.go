package life

import (
	"strconv"

	"github.com/pkg/errors"

	"life-canvas/internal/core"
)

// Strategy selects how live neighbors are counted.
type Strategy string

const (
	// StrategyTable precomputes neighbor indices once per grid.
	StrategyTable Strategy = "table"
	// StrategyScan bounds-checks the eight offsets on every lookup.
	StrategyScan Strategy = "scan"
)

// String implements flag.Value.
func (s *Strategy) String() string { return string(*s) }

// Set implements flag.Value.
func (s *Strategy) Set(v string) error {
	parsed, err := ParseStrategy(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStrategy validates a strategy name.
func ParseStrategy(v string) (Strategy, error) {
	switch Strategy(v) {
	case StrategyTable, StrategyScan:
		return Strategy(v), nil
	}
	return "", errors.Errorf("unknown neighbor strategy %q (want %q or %q)", v, StrategyTable, StrategyScan)
}

// Config controls the grid and run cadence.
type Config struct {
	Width  int
	Height int
	// Seeds is the number of random cells set live on Reset.
	Seeds int
	// Rate is the number of generations per second.
	Rate int
	Seed int64

	Neighbors Strategy
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     320,
		Height:    180,
		Seeds:     5500,
		Rate:      10,
		Seed:      1,
		Neighbors: StrategyTable,
	}
}

// FromMap populates a Config from a string map on top of the defaults.
func FromMap(kv map[string]string) (Config, error) {
	return DefaultConfig().Merge(kv)
}

// Merge overrides fields from flag-style key/value pairs. Unknown keys are
// ignored; malformed values are errors.
func (c Config) Merge(kv map[string]string) (Config, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{"w", &c.Width},
		{"h", &c.Height},
		{"seeds", &c.Seeds},
		{"rate", &c.Rate},
	}
	for _, f := range ints {
		v, ok := kv[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "[Config] invalid value for %q", f.key)
		}
		*f.dst = parsed
	}
	if v, ok := kv["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(err, "[Config] invalid value for %q", "seed")
		}
		c.Seed = parsed
	}
	if v, ok := kv["neighbors"]; ok {
		s, err := ParseStrategy(v)
		if err != nil {
			return c, errors.Wrap(err, "[Config]")
		}
		c.Neighbors = s
	}
	return c, c.Validate()
}

// effective returns the values NewWithConfig actually runs with.
func (c Config) effective() Config {
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	c.Seeds = max(c.Seeds, 0)
	if c.Rate <= 0 {
		c.Rate = core.DefaultTPS
	}
	if _, err := ParseStrategy(string(c.Neighbors)); err != nil {
		c.Neighbors = StrategyTable
	}
	return c
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return errors.Errorf("[Config] width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return errors.Errorf("[Config] height must be positive, got %d", c.Height)
	case c.Seeds < 0:
		return errors.Errorf("[Config] seeds must not be negative, got %d", c.Seeds)
	case c.Rate <= 0:
		return errors.Errorf("[Config] rate must be positive, got %d", c.Rate)
	}
	if _, err := ParseStrategy(string(c.Neighbors)); err != nil {
		return errors.Wrap(err, "[Config]")
	}
	return nil
}

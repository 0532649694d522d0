package life

import (
	"flag"
	"strings"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"w":         "64",
		"h":         "48",
		"seeds":     "100",
		"rate":      "15",
		"seed":      "-7",
		"neighbors": "scan",
		"unknown":   "ignored",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{Width: 64, Height: 48, Seeds: 100, Rate: 15, Seed: -7, Neighbors: StrategyScan}
	if cfg != want {
		t.Fatalf("FromMap = %+v, expected %+v", cfg, want)
	}
}

func TestFromMapNilUsesDefaults(t *testing.T) {
	cfg, err := FromMap(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, expected defaults", cfg)
	}
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	cases := map[string]struct {
		kv      map[string]string
		wantMsg string
	}{
		"non-numeric width":  {map[string]string{"w": "wide"}, `"w"`},
		"non-numeric height": {map[string]string{"h": "1.5"}, `"h"`},
		"non-numeric seeds":  {map[string]string{"seeds": "many"}, `"seeds"`},
		"non-numeric seed":   {map[string]string{"seed": "x"}, `"seed"`},
		"zero width":         {map[string]string{"w": "0"}, "width must be positive"},
		"negative height":    {map[string]string{"h": "-2"}, "height must be positive"},
		"negative seeds":     {map[string]string{"seeds": "-1"}, "seeds must not be negative"},
		"zero rate":          {map[string]string{"rate": "0"}, "rate must be positive"},
		"unknown strategy":   {map[string]string{"neighbors": "torus"}, "unknown neighbor strategy"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromMap(tc.kv)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestStrategyFlag(t *testing.T) {
	s := StrategyTable
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&s, "neighbors", "")
	if err := fs.Parse([]string{"-neighbors", "scan"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StrategyScan {
		t.Fatalf("strategy %q, expected scan", s)
	}
	fs.SetOutput(&strings.Builder{})
	if err := fs.Parse([]string{"-neighbors", "bogus"}); err == nil {
		t.Fatal("expected bogus strategy to be rejected")
	}
}

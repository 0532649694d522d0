package render

import (
	"image/color"
	"math"
	"slices"
	"testing"

	"life-canvas/internal/core"
	"life-canvas/internal/sims/life"
)

func TestApplyMatchesFill(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seeds = 30, 20, 200
	sim := life.NewWithConfig(cfg)
	sim.Reset(11)

	diff := NewPixels(30, 20, color.White, color.Black)
	full := NewPixels(30, 20, color.White, color.Black)
	if !diff.Fill(sim.Cells()) {
		t.Fatal("Fill rejected a matching grid")
	}
	for i := 0; i < 15; i++ {
		changed := sim.Step()
		diff.Apply(sim.Cells(), changed)
		full.Fill(sim.Cells())
		if !slices.Equal(diff.Bytes(), full.Bytes()) {
			t.Fatalf("generation %d: diff rendering differs from full rendering", sim.Generation())
		}
	}
}

func TestFillColors(t *testing.T) {
	px := NewPixels(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)
	px.Fill([]uint8{core.Live, core.Dead})
	want := []byte{10, 20, 30, 255, 0, 0, 0, 255}
	if !slices.Equal(px.Bytes(), want) {
		t.Fatalf("buffer %v, expected %v", px.Bytes(), want)
	}
	if px.Fill([]uint8{core.Live}) {
		t.Fatal("Fill must reject mismatched cell slices")
	}
}

func TestFitInto(t *testing.T) {
	cases := []struct {
		name           string
		outerW, outerH int
		w, h           int
		want           Fit
	}{
		{"exact", 640, 360, 320, 180, Fit{Scale: 2}},
		{"letterbox", 640, 480, 320, 180, Fit{Scale: 2, OffsetY: 60}},
		{"pillarbox", 1000, 360, 320, 180, Fit{Scale: 2, OffsetX: 180}},
		{"shrink", 160, 180, 320, 180, Fit{Scale: 0.5, OffsetY: 45}},
		{"empty viewport", 0, 0, 320, 180, Fit{Scale: 1}},
	}
	for _, tc := range cases {
		got := FitInto(tc.outerW, tc.outerH, tc.w, tc.h)
		if !approx(got.Scale, tc.want.Scale) || !approx(got.OffsetX, tc.want.OffsetX) || !approx(got.OffsetY, tc.want.OffsetY) {
			t.Fatalf("%s: FitInto = %+v, expected %+v", tc.name, got, tc.want)
		}
	}
}

func TestFitPreservesAspectAndCenters(t *testing.T) {
	for _, outer := range [][2]int{{800, 600}, {1920, 1080}, {333, 999}, {1, 1}} {
		f := FitInto(outer[0], outer[1], 320, 180)
		drawnW, drawnH := 320*f.Scale, 180*f.Scale
		if drawnW > float64(outer[0])+1e-9 || drawnH > float64(outer[1])+1e-9 {
			t.Fatalf("%v: grid overflows viewport (%fx%f)", outer, drawnW, drawnH)
		}
		if !approx(drawnW, float64(outer[0])) && !approx(drawnH, float64(outer[1])) {
			t.Fatalf("%v: grid touches neither viewport edge", outer)
		}
		if !approx(f.OffsetX*2+drawnW, float64(outer[0])) || !approx(f.OffsetY*2+drawnH, float64(outer[1])) {
			t.Fatalf("%v: grid is not centered: %+v", outer, f)
		}
	}
}

func TestFitToGrid(t *testing.T) {
	f := FitInto(640, 480, 320, 180)
	if x, y := f.ToGrid(0.5, 60.5); x != 0 || y != 0 {
		t.Fatalf("ToGrid(top-left) = (%d,%d)", x, y)
	}
	if x, y := f.ToGrid(639.5, 419.5); x != 319 || y != 179 {
		t.Fatalf("ToGrid(bottom-right) = (%d,%d)", x, y)
	}
	if _, y := f.ToGrid(10, 10); y >= 0 {
		t.Fatalf("letterbox row mapped inside the grid: %d", y)
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

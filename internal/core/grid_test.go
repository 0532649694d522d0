package core

import (
	"slices"
	"testing"
)

func TestByteGridIndexRoundTrip(t *testing.T) {
	g := NewByteGrid(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			idx := g.Index(x, y)
			if gx, gy := g.Coords(idx); gx != x || gy != y {
				t.Fatalf("Coords(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

func TestByteGridOutOfBounds(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(-1, 0, Live)
	g.Set(3, 0, Live)
	g.Set(0, 3, Live)
	if slices.Contains(g.Cells(), Live) {
		t.Fatal("off-grid writes must be ignored")
	}
	g.Set(2, 2, Live)
	if g.At(2, 2) != Live {
		t.Fatal("expected (2,2) live")
	}
	if g.At(3, 2) != Dead || g.At(-1, -1) != Dead {
		t.Fatal("off-grid reads must be dead")
	}
	g.Clear()
	if g.At(2, 2) != Dead {
		t.Fatal("Clear must kill every cell")
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if s := g.Size(); s.W != 1 || s.H != 1 || g.Len() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", s.W, s.H)
	}
}

func TestParameterSnapshotLines(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{{Key: "w", Label: "Width", Type: ParamTypeInt, Value: "320"}}},
		{Params: []Parameter{{Key: "gen", Label: "Generation", Type: ParamTypeInt, Value: "4"}}},
	}}
	want := []string{"Grid", "  Width: 320", "  Generation: 4"}
	if got := snap.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, expected %q", got, want)
	}
	if p, ok := snap.Lookup("gen"); !ok || p.Value != "4" {
		t.Fatalf("Lookup(gen) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected parameter found")
	}
}

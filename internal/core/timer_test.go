package core

import (
	"testing"
	"time"
)

func TestFixedStepWaitsForThreshold(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("expected 100ms step, got %v", fs.Step())
	}
	frame := 16 * time.Millisecond
	for i := 0; i < 6; i++ {
		if fs.Advance(frame) {
			t.Fatalf("ticked after %v", time.Duration(i+1)*frame)
		}
	}
	if !fs.Advance(frame) {
		t.Fatal("expected a tick once 112ms accumulated")
	}
	if fs.Advance(0) {
		t.Fatal("remainder below one step must not tick again")
	}
}

func TestFixedStepExactThresholdDoesNotTick(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Advance(100 * time.Millisecond) {
		t.Fatal("threshold must be exceeded, not merely reached")
	}
	if !fs.Advance(time.Millisecond) {
		t.Fatal("expected tick after exceeding the threshold")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.Advance(5 * time.Second) {
		t.Fatal("expected a tick after a long stall")
	}
	if fs.Advance(0) {
		t.Fatal("a stall must not be replayed as a burst of ticks")
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got step %v", fs.Step())
	}
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(100, 0)
	if dt := c.Delta(t0); dt != 0 {
		t.Fatalf("first delta = %v, expected 0", dt)
	}
	if dt := c.Delta(t0.Add(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Fatalf("delta = %v, expected 16ms", dt)
	}
	if dt := c.Delta(t0); dt != 0 {
		t.Fatalf("backwards clock gave %v, expected 0", dt)
	}
}

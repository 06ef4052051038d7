package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstTickIsImmediate(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("second immediate call should wait for the next tick")
	}
}

func TestFixedStepWaitReachesNextTick(t *testing.T) {
	fs := NewFixedStep(200)
	fs.ShouldStep()
	start := time.Now()
	fs.Wait()
	if !fs.ShouldStep() {
		t.Fatal("tick should be due after Wait")
	}
	if elapsed := time.Since(start); elapsed < 4*time.Millisecond {
		t.Fatalf("Wait returned after %s, expected about 5ms", elapsed)
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.interval != time.Second/60 {
		t.Fatalf("interval = %s, want 1/60s", fs.interval)
	}
}

func TestFixedStepCarriesOwedTime(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock = clock.Add(250 * time.Millisecond)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 2 {
		t.Fatalf("250ms at 10 tps should owe 2 ticks, got %d", steps)
	}
}

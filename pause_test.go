package ggdraw

import (
	"errors"
	"testing"
	"time"
)

func TestPause(t *testing.T) {
	var slept []time.Duration
	c := newTestCanvas(t, WithSleeper(func(d time.Duration) { slept = append(slept, d) }))

	if err := c.Pause(20); err != nil {
		t.Fatal(err)
	}
	if err := c.Pause(0); err != nil {
		t.Fatal(err)
	}
	if err := c.Pause(-5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Pause(-5) error = %v, want ErrInvalidArgument", err)
	}
	want := []time.Duration{20 * time.Millisecond, 0}
	if len(slept) != len(want) || slept[0] != want[0] || slept[1] != want[1] {
		t.Errorf("slept %v, want %v", slept, want)
	}
}

func TestPause_DefaultSleeps(t *testing.T) {
	c := newTestCanvas(t)
	start := time.Now()
	if err := c.Pause(15); err != nil {
		t.Fatal(err)
	}
	if d := time.Since(start); d < 15*time.Millisecond {
		t.Errorf("Pause(15) returned after %v", d)
	}
}

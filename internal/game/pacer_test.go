package game

import (
	"testing"
	"time"
)

func countDue(p *Pacer, poll, span time.Duration) int {
	n := 0
	for at := poll; at <= span; at += poll {
		if p.Due(t0.Add(at)) {
			n++
		}
	}
	return n
}

func TestPacer_Cadence(t *testing.T) {
	tests := []struct {
		name     string
		poll     time.Duration
		min, max int
	}{
		{"1ms poll", time.Millisecond, 50, 50},
		{"5ms poll", 5 * time.Millisecond, 50, 50},
		{"60Hz frames", time.Second / 60, 49, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countDue(NewPacer(t0), tt.poll, time.Second)
			if got < tt.min || got > tt.max {
				t.Fatalf("ticks in 1s = %d, want %d..%d", got, tt.min, tt.max)
			}
		})
	}
}

func TestPacer_NoBurstAfterStall(t *testing.T) {
	p := NewPacer(t0)
	if p.Due(t0.Add(10 * time.Millisecond)) {
		t.Fatal("tick before the first interval")
	}
	if !p.Due(t0.Add(200 * time.Millisecond)) {
		t.Fatal("no tick after a stall")
	}
	if p.Due(t0.Add(201 * time.Millisecond)) {
		t.Fatal("stall caught up with a burst")
	}
	if !p.Due(t0.Add(220 * time.Millisecond)) {
		t.Fatal("schedule not resumed one interval after the stall")
	}
}

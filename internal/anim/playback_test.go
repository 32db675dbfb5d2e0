package anim

import (
	"testing"
	"time"
)

func TestPlaybackNext(t *testing.T) {
	tests := []struct {
		name     string
		p        Playback
		f        int
		wantNext int
		wantDone bool
	}{
		{"unbounded", Playback{}, 41, 42, false},
		{"middle", Playback{Frames: 10}, 3, 4, false},
		{"last stops", Playback{Frames: 10}, 9, 9, true},
		{"last loops", Playback{Frames: 10, Loop: true}, 9, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, done := tt.p.Next(tt.f)
			if next != tt.wantNext || done != tt.wantDone {
				t.Errorf("Next(%d) = %d, %v; want %d, %v", tt.f, next, done, tt.wantNext, tt.wantDone)
			}
		})
	}
}

func TestAccumulator(t *testing.T) {
	a := Accumulator{Interval: 50 * time.Millisecond}
	if n := a.Add(20 * time.Millisecond); n != 0 {
		t.Errorf("expected 0 ticks, got %d", n)
	}
	if n := a.Add(40 * time.Millisecond); n != 1 {
		t.Errorf("expected 1 tick, got %d", n)
	}
	if n := a.Add(100 * time.Millisecond); n != 2 {
		t.Errorf("expected 2 ticks, got %d", n)
	}
	a.Reset()
	if n := a.Add(45 * time.Millisecond); n != 0 {
		t.Errorf("expected partial interval dropped, got %d", n)
	}
}

func TestAccumulatorNoInterval(t *testing.T) {
	var a Accumulator
	if n := a.Add(0); n != 1 {
		t.Errorf("expected one tick per call, got %d", n)
	}
}

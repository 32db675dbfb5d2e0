package anim

import (
	"sync/atomic"
	"testing"
)

func TestParallelForVisitsEachIndexOnce(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1001} {
		hits := make([]int32, n)
		ParallelFor(n, 8, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestParallelForSmallRunsInline(t *testing.T) {
	calls := 0
	ParallelFor(3, 10, func(start, end int) {
		calls++
		if start != 0 || end != 3 {
			t.Errorf("expected [0, 3), got [%d, %d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected one call, got %d", calls)
	}
}

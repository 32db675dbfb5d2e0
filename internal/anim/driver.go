// Package anim paces frames for the renderers.
package anim

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Driver calls a frame callback once per frame.
//
// Frames <= 0 runs until the context is canceled. Interval == 0 runs the
// frames back to back.
type Driver struct {
	Frames   int
	Interval time.Duration
	Start    int
}

// FrameFunc renders frame f.
type FrameFunc func(f int) error

// Run blocks until all frames have been produced, the callback fails, or
// ctx is done.
func (d Driver) Run(ctx context.Context, fn FrameFunc) error {
	var limiter *rate.Limiter
	if d.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(d.Interval), 1)
	}

	for i := 0; d.Frames <= 0 || i < d.Frames; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		f := d.Start + i
		if err := fn(f); err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}
	}
	return nil
}

package export

import (
	"context"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/solarsim/internal/anim"
	"github.com/san-kum/solarsim/internal/orbit"
	"github.com/san-kum/solarsim/internal/scene"
)

const quantizeBatch = 32

// GIFOptions describe a headless render.
type GIFOptions struct {
	Frames     int
	Start      int
	Interval   time.Duration // playback delay between frames
	Background image.Image
	Style      Style
	Logger     *slog.Logger
}

// Delay converts a frame interval to GIF hundredths of a second.
func Delay(interval time.Duration) int {
	d := int(interval / (10 * time.Millisecond))
	if d < 1 {
		return 1
	}
	return d
}

// GIF renders opts.Frames frames of u into an animated GIF on w.
func GIF(ctx context.Context, w io.Writer, u *orbit.Updater, sctx scene.Context, opts GIFOptions) error {
	if opts.Frames <= 0 {
		return &orbit.ConfigError{Field: "frames", Value: float64(opts.Frames), Wrapped: orbit.ErrInvalidParams}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	s := scene.New(u, sctx)
	r := NewRaster(s, opts.Background, opts.Style)
	out := &gif.GIF{LoopCount: 0}
	delay := Delay(opts.Interval)

	// Drawing shares the scene, so it stays on the driver's goroutine.
	// Dithering is per image and runs in parallel over a batch.
	pending := make([]*image.RGBA, 0, quantizeBatch)
	flush := func() {
		batch := make([]*image.Paletted, len(pending))
		anim.ParallelFor(len(batch), 1, func(start, end int) {
			for i := start; i < end; i++ {
				batch[i] = Quantize(pending[i], palette.Plan9)
			}
		})
		for _, img := range batch {
			out.Image = append(out.Image, img)
			out.Delay = append(out.Delay, delay)
		}
		pending = pending[:0]
		log.Debug("rendered", "frames", len(out.Image), "of", opts.Frames)
	}

	drv := anim.Driver{Frames: opts.Frames, Start: opts.Start}
	err := drv.Run(ctx, func(f int) error {
		s.Apply(u.Frame(f))
		pending = append(pending, r.Draw(s))
		if len(pending) == quantizeBatch {
			flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		flush()
	}
	log.Info("encoding gif", "frames", len(out.Image), "delay", delay)
	return gif.EncodeAll(w, out)
}

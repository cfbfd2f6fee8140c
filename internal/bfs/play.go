package bfs

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Interval returns the time between frames at speed frames per second.
func Interval(speed float64) (time.Duration, error) {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return 0, errors.Wrapf(geom.ErrInvalidSpeed, "speed %v", speed)
	}

	d := time.Duration(float64(time.Second) / speed)
	if d < 1 {
		d = 1
	}
	return d, nil
}

// Schedule returns when each frame should be shown, relative to the first:
// frame k is shown at k/speed seconds.
func Schedule(frames []Frame, speed float64) ([]time.Duration, error) {
	if _, err := Interval(speed); err != nil {
		return nil, err
	}

	out := make([]time.Duration, len(frames))
	for k := range frames {
		out[k] = time.Duration(float64(k) / speed * float64(time.Second))
	}
	return out, nil
}

// Play hands frames to fn one at a time, speed frames per second. The first
// frame is handed over immediately.
// Blocks until every frame is played, ctx is done or fn returns an error.
func Play(ctx context.Context, frames []Frame, speed float64, fn func(Frame) error) error {
	interval, err := Interval(speed)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for k, f := range frames {
		if k > 0 {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(f); err != nil {
			return errors.Wrapf(err, "frame %d", k)
		}
	}
	return nil
}

package sitegraph

import (
	"image"

	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/graph"
)

const (
	// DefaultMaxCount is used if Config.MaxCount is not set.
	// Bisectors are O(N^2) so this is about as far as is sensible to draw.
	DefaultMaxCount = 2000
)

// Config holds settings for a Sitegraph.
type Config struct {
	// Area is the drawing surface. Points are generated in
	// [Min.X, Max.X) x [Min.Y, Max.Y) & bisectors are clipped to it. Required.
	Area image.Rectangle

	// Count is the number of points (sites) to generate.
	Count int

	// MaxCount is the sanity bound on Count; anything above it is refused
	// with ErrInvalidCount before any generation happens.
	// 0 or less means DefaultMaxCount.
	MaxCount int

	// Seed for rng (random number chosen if not set).
	// Each Regenerate is a fresh draw from the seeded sequence, so the
	// seed pins the whole series of layouts, not one layout.
	Seed int64

	// MinDistance, if > 0, rejects candidate points closer than this to
	// an existing point. Large values with large counts can fail with
	// ErrCannotPlace.
	MinDistance float64

	// Margin, if > 0, keeps generated points at least this far from the
	// edge of Area.
	Margin float64

	// Attempts is how many candidates are tried per point before giving up
	// with ErrCannotPlace, when MinDistance or Margin are set.
	// 0 or less means the generator default.
	Attempts int

	// Rule decides which sites are adjacent in the proximity graph
	// (used for traversal). See graph.Rule.
	Rule graph.Rule

	// K is the neighbour count for graph.RuleKNearest.
	// 0 means graph.DefaultK.
	K int

	// Tree uses a k-d tree for nearest site queries rather than a linear scan.
	// Only worth it for large counts with a small raster step.
	Tree bool
}

// DefaultConfig returns a reasonable default Config, roughly what the demo
// page uses.
func DefaultConfig() *Config {
	return &Config{
		Area:     image.Rect(0, 0, 1600, 900),
		Count:    30,
		MaxCount: DefaultMaxCount,
		Rule:     graph.RuleBisector,
		K:        graph.DefaultK,
	}
}

// maxCount returns the effective sanity bound.
func (c *Config) maxCount() int {
	if c.MaxCount <= 0 {
		return DefaultMaxCount
	}
	return c.MaxCount
}

// checkCount returns ErrInvalidCount if n cannot be generated.
func (c *Config) checkCount(n int) error {
	if n < 0 || n > c.maxCount() {
		return errors.Wrapf(ErrInvalidCount, "count %d not in [0, %d]", n, c.maxCount())
	}
	return nil
}

// graphOptions for building our proximity graph.
func (c *Config) graphOptions() []graph.Option {
	opts := []graph.Option{graph.WithRule(c.Rule)}
	if c.K != 0 {
		opts = append(opts, graph.WithK(c.K))
	}
	return opts
}

// Validate returns an error if the config cannot be used.
func (c *Config) Validate() error {
	if c.Area.Empty() {
		return errors.Wrapf(ErrInvalidConfig, "empty area %v", c.Area)
	}
	if c.MinDistance < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative min distance %v", c.MinDistance)
	}
	if c.Margin < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative margin %v", c.Margin)
	}
	if c.Margin > 0 && (2*c.Margin >= float64(c.Area.Dx()) || 2*c.Margin >= float64(c.Area.Dy())) {
		return errors.Wrapf(ErrInvalidConfig, "margin %v leaves no room in %v", c.Margin, c.Area)
	}
	if c.K < 0 {
		return errors.Wrapf(ErrOptionViolation, "k must be > 0, got %d", c.K)
	}
	if _, err := graph.ParseRule(c.Rule.String()); err != nil {
		return err
	}
	return c.checkCount(c.Count)
}

package points

import (
	"math"
	"math/rand"
	"time"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

// defaultAttempts is how many candidates we'll try per point before giving
// up, when filters are set. Without filters the first candidate always wins.
const defaultAttempts = 1000

// Generator makes managing random point sets easier.
// Every call to Generate is a fresh draw; the only state carried between
// calls is the random source itself.
type Generator struct {
	bounds   r2.Rect
	rng      *rand.Rand
	attempts int
	sfilt    []SiteFilter
	cfilt    []CandidateFilter
}

// NewGenerator returns a new point generator over bounds, seeded from the clock.
func NewGenerator(bounds r2.Rect) *Generator {
	return &Generator{
		bounds:   bounds,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		attempts: defaultAttempts,
	}
}

// SetSeed sets our internal RNG seed, pinning the sequence of generated points.
func (g *Generator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetAttempts sets how many candidates are tried per point when filtering.
func (g *Generator) SetAttempts(n int) {
	if n > 0 {
		g.attempts = n
	}
}

// SetCandidateFilters sets filters that accept / reject a proposed point without
// reference to other points.
func (g *Generator) SetCandidateFilters(f ...CandidateFilter) {
	g.cfilt = f
}

// SetSiteFilters sets filters that compare proposed points to all accepted points.
func (g *Generator) SetSiteFilters(f ...SiteFilter) {
	g.sfilt = f
}

// Bounds returns the generation domain.
func (g *Generator) Bounds() r2.Rect {
	return g.bounds
}

// Generate returns exactly n points drawn uniformly from the generation domain.
// n == 0 is fine & yields an empty set.
func (g *Generator) Generate(n int) ([]r2.Point, error) {
	if n < 0 {
		return nil, errors.Wrapf(geom.ErrInvalidCount, "cannot generate %d points", n)
	}

	pts := make([]r2.Point, 0, n)
	filtered := len(g.cfilt) > 0 || len(g.sfilt) > 0

	for len(pts) < n {
		if !filtered {
			pts = append(pts, g.candidate())
			continue
		}

		placed := false
		for i := 0; i < g.attempts; i++ {
			c := g.candidate()
			if g.accepted(c, pts) {
				pts = append(pts, c)
				placed = true
				break
			}
		}
		if !placed {
			return nil, errors.Wrapf(geom.ErrCannotPlace, "placed %d of %d points", len(pts), n)
		}
	}

	return pts, nil
}

// candidate makes a random point within bounds, [Lo, Hi) on both axes.
func (g *Generator) candidate() r2.Point {
	return r2.Point{
		X: uniform(g.rng, g.bounds.X),
		Y: uniform(g.rng, g.bounds.Y),
	}
}

// uniform draws from [iv.Lo, iv.Hi). Rounding can land exactly on Hi for
// large offsets so we nudge it back inside.
func uniform(rng *rand.Rand, iv r1.Interval) float64 {
	v := iv.Lo + rng.Float64()*iv.Length()
	if v >= iv.Hi && iv.Hi > iv.Lo {
		v = math.Nextafter(iv.Hi, iv.Lo)
	}
	return v
}

// accepted returns if the proposed point is acceptable to our filters.
// We run CandidateFilter(s) first so we can hopefully reject candidates early.
func (g *Generator) accepted(c r2.Point, placed []r2.Point) bool {
	for _, fn := range g.cfilt {
		if !fn(c) {
			return false
		}
	}

	for _, s := range placed {
		for _, fn := range g.sfilt {
			if !fn(c, s) {
				return false
			}
		}
	}

	return true
}

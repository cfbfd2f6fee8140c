package points

import (
	"github.com/golang/geo/r2"

	"github.com/voidshard/sitegraph/internal/geom"
)

// CandidateFilter accepts or rejects a candidate point based purely on
// the point itself.
// These filters are run before SiteFilter(s) which naturally require
// us to iterate each placed point.
type CandidateFilter func(c r2.Point) bool

// SiteFilter is a filter for a candidate point that is run against every
// point placed so far.
// Ie. we must 'accept' the candidate when compared with every existing point.
type SiteFilter func(c, placed r2.Point) bool

// MinDistance ensures that a candidate is at least `dist` away from every
// other point.
func MinDistance(dist float64) SiteFilter {
	sq := dist * dist
	return func(c, placed r2.Point) bool {
		return geom.SquaredDist(c, placed) >= sq
	}
}

// Margin rejects candidates closer than `m` to the edge of bounds.
func Margin(bounds r2.Rect, m float64) CandidateFilter {
	return func(c r2.Point) bool {
		return c.X >= bounds.X.Lo+m && c.X < bounds.X.Hi-m && c.Y >= bounds.Y.Lo+m && c.Y < bounds.Y.Hi-m
	}
}

// Package voronoi labels the plane by nearest site.
//
// Colorize & Rasterize give the implicit diagram (every sample tagged with
// its nearest site), Cells gives explicit polygons for when a caller wants
// to fill regions rather than samples.
package voronoi

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
	"github.com/voidshard/sitegraph/internal/index"
)

// Colorize returns the index of the nearest site for every sample, in order.
// Ties go to the lowest site index.
func Colorize(idx index.Index, samples []r2.Point) ([]int, error) {
	if idx.Len() == 0 {
		return nil, errors.Wrap(geom.ErrNoPoints, "colorize")
	}

	out := make([]int, len(samples))
	for i, s := range samples {
		n, err := idx.Nearest(s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

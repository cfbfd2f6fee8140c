package voronoi

import (
	"image"

	"github.com/boljen/go-bitmap"
	"github.com/golang/geo/r2"

	"github.com/voidshard/sitegraph/internal/encoding"
	"github.com/voidshard/sitegraph/internal/index"
)

// Raster is a Grid where every sample has been labelled with its nearest site.
type Raster struct {
	*Grid

	// Labels in row-major order
	Labels []int

	// samples whose right or lower neighbour has a different label
	boundary bitmap.Bitmap

	// samples holding a site
	sites bitmap.Bitmap
}

// Rasterize labels every sample of a (bounds, step) grid with the nearest
// site from idx & marks where labels change.
func Rasterize(idx index.Index, pts []r2.Point, bounds r2.Rect, step float64) (*Raster, error) {
	g, err := NewGrid(bounds, step)
	if err != nil {
		return nil, err
	}

	labels, err := Colorize(idx, g.Samples())
	if err != nil {
		return nil, err
	}

	r := &Raster{
		Grid:     g,
		Labels:   labels,
		boundary: bitmap.New(g.Len()),
		sites:    bitmap.New(g.Len()),
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			here := r.Label(col, row)
			if col+1 < g.Cols && r.Label(col+1, row) != here {
				r.boundary.Set(g.offset(col, row), true)
			} else if row+1 < g.Rows && r.Label(col, row+1) != here {
				r.boundary.Set(g.offset(col, row), true)
			}
		}
	}

	for _, p := range pts {
		col, row, ok := g.Cell(p)
		if ok {
			r.sites.Set(g.offset(col, row), true)
		}
	}

	return r, nil
}

// Label of sample (col, row), -1 if out of range.
func (r *Raster) Label(col, row int) int {
	if !r.inside(col, row) {
		return -1
	}
	return r.Labels[r.offset(col, row)]
}

// Boundary returns if sample (col, row) sits on a cell boundary.
func (r *Raster) Boundary(col, row int) bool {
	if !r.inside(col, row) {
		return false
	}
	return r.boundary.Get(r.offset(col, row))
}

// HasSite returns if a site falls within grid square (col, row).
func (r *Raster) HasSite(col, row int) bool {
	if !r.inside(col, row) {
		return false
	}
	return r.sites.Get(r.offset(col, row))
}

// Boundaries counts boundary samples.
func (r *Raster) Boundaries() int {
	count := 0
	for i := 0; i < r.Len(); i++ {
		if r.boundary.Get(i) {
			count++
		}
	}
	return count
}

// Image packs the raster into an RGBA64, one pixel per sample.
// See encoding.Pixel for the layout.
func (r *Raster) Image() *image.RGBA64 {
	im := image.NewRGBA64(image.Rect(0, 0, r.Cols, r.Rows))
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			im.SetRGBA64(col, row, encoding.Pack(encoding.Pixel{
				Label:    r.Label(col, row),
				Boundary: r.Boundary(col, row),
				Site:     r.HasSite(col, row),
			}))
		}
	}
	return im
}

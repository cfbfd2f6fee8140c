package sitegraph

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
)

// SaveSVG renders the scene (after its last traversal frame) as an SVG at fpath.
func SaveSVG(fpath string, sc *Scene, st *Style) error {
	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	err = WriteSVG(f, sc, st)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteSVG writes the scene as an SVG document to w.
func WriteSVG(w io.Writer, sc *Scene, st *Style) error {
	if st == nil {
		st = DefaultStyle()
	}

	ox, oy := float64(sc.Area.Min.X), float64(sc.Area.Min.Y)
	px := func(x float64) int { return int(math.Round(x - ox)) }
	py := func(y float64) int { return int(math.Round(y - oy)) }

	canvas := svg.New(w)
	canvas.Start(sc.Area.Dx(), sc.Area.Dy())
	canvas.Rect(0, 0, sc.Area.Dx(), sc.Area.Dy(), "fill:"+toHex(st.Background))

	if r := sc.Raster; r != nil {
		fill := func(col, row int) string {
			if r.OnBoundary(col, row) {
				return toHex(st.Boundary)
			}
			return toHex(st.fill(r.Label(col, row)))
		}

		// one rect per horizontal run of equally coloured samples
		size := int(math.Ceil(r.Step))
		for row := 0; row < r.Rows; row++ {
			start := 0
			for col := 1; col <= r.Cols; col++ {
				if col < r.Cols && fill(col, row) == fill(start, row) {
					continue
				}
				canvas.Rect(
					int(float64(start)*r.Step), int(float64(row)*r.Step),
					int(float64(col-start)*r.Step), size,
					"fill:"+fill(start, row),
				)
				start = col
			}
		}
	}

	for _, c := range sc.Cells {
		if len(c.Vertices) < 3 {
			continue
		}
		xs := make([]int, len(c.Vertices))
		ys := make([]int, len(c.Vertices))
		for i, v := range c.Vertices {
			xs[i], ys[i] = px(v.X), py(v.Y)
		}
		canvas.Polygon(xs, ys, "fill:"+toHex(st.fill(c.Site)))
	}

	stroke := func(c color.Color) string {
		return fmt.Sprintf("stroke:%s;stroke-width:%v", toHex(c), st.LineWidth)
	}

	for _, tri := range sc.Triangles {
		xs := make([]int, 3)
		ys := make([]int, 3)
		for n, id := range tri {
			xs[n], ys[n] = px(sc.Sites[id].X), py(sc.Sites[id].Y)
		}
		canvas.Polygon(xs, ys, "fill:none;"+stroke(st.Links))
	}
	for _, l := range sc.Links {
		a, b := sc.Sites[l[0]], sc.Sites[l[1]]
		canvas.Line(px(a.X), py(a.Y), px(b.X), py(b.Y), stroke(st.Links))
	}
	for _, s := range sc.Segments {
		canvas.Line(px(s.A.X), py(s.A.Y), px(s.B.X), py(s.B.Y), stroke(st.Lines))
	}
	for _, m := range sc.Marks {
		canvas.Circle(px(m.At.X), py(m.At.Y), int(st.MarkRadius), "fill:"+toHex(st.Marks))
	}

	for _, f := range sc.Frames {
		if f.Parent < 0 {
			continue
		}
		a, b := sc.Sites[f.Parent], sc.Sites[f.Vertex]
		canvas.Line(px(a.X), py(a.Y), px(b.X), py(b.Y), stroke(st.Visited))
	}

	for _, s := range sc.Sites {
		canvas.Circle(px(s.X), py(s.Y), int(st.SiteRadius), "fill:none;"+stroke(st.Sites))
	}
	for _, f := range sc.Frames {
		v := sc.Sites[f.Vertex]
		canvas.Circle(px(v.X), py(v.Y), int(st.SiteRadius), "fill:"+toHex(st.Visited))
	}
	if len(sc.Frames) > 0 {
		for _, id := range sc.Frames[len(sc.Frames)-1].Frontier {
			s := sc.Sites[id]
			canvas.Circle(px(s.X), py(s.Y), int(st.SiteRadius), "fill:"+toHex(st.Frontier))
		}
	}
	for _, id := range sc.Highlight {
		s := sc.Sites[id]
		canvas.Circle(px(s.X), py(s.Y), int(st.SiteRadius), "fill:"+toHex(st.Highlight))
	}
	if sc.Cursor != nil {
		canvas.Circle(px(sc.Cursor.X), py(sc.Cursor.Y), int(st.MarkRadius), "fill:"+toHex(st.Highlight))
	}

	canvas.End()
	return nil
}

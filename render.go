package sitegraph

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Style defines how the parts of a Scene are coloured & sized.
type Style struct {
	Background color.Color
	Palette    []color.Color // cell / raster fills, by site ID modulo length
	Sites      color.Color
	SiteRadius float64
	Highlight  color.Color
	Lines      color.Color
	LineWidth  float64
	Marks      color.Color
	MarkRadius float64
	Boundary   color.Color
	Links      color.Color
	Visited    color.Color
	Frontier   color.Color
}

// DefaultStyle returns a reasonable default Style.
func DefaultStyle() *Style {
	return &Style{
		Background: colornames.Whitesmoke,
		Palette: []color.Color{
			parseHex("#55efc4"),
			parseHex("#81ecec"),
			parseHex("#74b9ff"),
			parseHex("#dfe6e9"),
			parseHex("#ffeaa7"),
			parseHex("#fab1a0"),
			parseHex("#ff7675"),
			parseHex("#fd79a8"),
			parseHex("#636e72"),
		},
		Sites:      parseHex("#fab1a0"),
		SiteRadius: 6,
		Highlight:  colornames.Crimson,
		Lines:      colornames.Dimgray,
		LineWidth:  2,
		Marks:      colornames.Black,
		MarkRadius: 3,
		Boundary:   colornames.Black,
		Links:      colornames.Lightgray,
		Visited:    colornames.Royalblue,
		Frontier:   colornames.Gold,
	}
}

// fill returns the palette colour for a site.
func (st *Style) fill(site int) color.Color {
	if site < 0 || len(st.Palette) == 0 {
		return st.Background
	}
	return st.Palette[site%len(st.Palette)]
}

// Render draws the scene. Traversal scenes are drawn as they stand after
// the last frame.
func Render(sc *Scene, st *Style) image.Image {
	return RenderFrame(sc, st, len(sc.Frames)-1)
}

// RenderFrame draws the scene with traversal frames [0, k] played.
// k < 0 draws no traversal state at all.
func RenderFrame(sc *Scene, st *Style, k int) image.Image {
	return paint(sc, st, k).Image()
}

// Save writes the scene to fpath in the format named by its extension:
// .png, .svg, .gif (animated for traversals) or .json.
func Save(fpath string, sc *Scene, st *Style) error {
	ext := strings.ToLower(filepath.Ext(fpath))
	switch ext {
	case ".png":
		return SavePNG(fpath, sc, st)
	case ".svg":
		return SaveSVG(fpath, sc, st)
	case ".gif":
		return SaveGIF(fpath, sc, st)
	case ".json":
		return sc.SaveJSON(fpath)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", ext)
}

// SavePNG renders the scene to a PNG at fpath.
func SavePNG(fpath string, sc *Scene, st *Style) error {
	return paint(sc, st, len(sc.Frames)-1).SavePNG(fpath)
}

// paint draws everything in the scene onto a new context, back to front.
func paint(sc *Scene, st *Style, upto int) *gg.Context {
	if st == nil {
		st = DefaultStyle()
	}

	var dc *gg.Context
	if sc.Raster != nil {
		dc = gg.NewContextForRGBA(rasterImage(sc, st))
	} else {
		dc = gg.NewContext(sc.Area.Dx(), sc.Area.Dy())
		dc.SetColor(st.Background)
		dc.Clear()
	}
	dc.Translate(-float64(sc.Area.Min.X), -float64(sc.Area.Min.Y))
	dc.SetLineWidth(st.LineWidth)

	for _, c := range sc.Cells {
		if len(c.Vertices) < 3 {
			continue
		}
		for _, v := range c.Vertices {
			dc.LineTo(v.X, v.Y)
		}
		dc.ClosePath()
		dc.SetColor(st.fill(c.Site))
		dc.Fill()
	}

	dc.SetColor(st.Links)
	for _, tri := range sc.Triangles {
		for n := 0; n < 3; n++ {
			a, b := sc.Sites[tri[n]], sc.Sites[tri[(n+1)%3]]
			dc.DrawLine(a.X, a.Y, b.X, b.Y)
			dc.Stroke()
		}
	}
	for _, l := range sc.Links {
		a, b := sc.Sites[l[0]], sc.Sites[l[1]]
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}

	dc.SetColor(st.Lines)
	for _, s := range sc.Segments {
		dc.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
		dc.Stroke()
	}

	dc.SetColor(st.Marks)
	for _, m := range sc.Marks {
		dc.DrawCircle(m.At.X, m.At.Y, st.MarkRadius)
		dc.Fill()
	}

	for _, s := range sc.Sites {
		dc.SetColor(st.Sites)
		dc.DrawCircle(s.X, s.Y, st.SiteRadius)
		dc.Stroke()
	}

	if upto >= len(sc.Frames) {
		upto = len(sc.Frames) - 1
	}
	for k := 0; k <= upto; k++ {
		f := sc.Frames[k]
		v := sc.Sites[f.Vertex]
		if f.Parent >= 0 {
			p := sc.Sites[f.Parent]
			dc.SetColor(st.Visited)
			dc.DrawLine(p.X, p.Y, v.X, v.Y)
			dc.Stroke()
		}
		dc.SetColor(st.Visited)
		dc.DrawCircle(v.X, v.Y, st.SiteRadius)
		dc.Fill()
	}
	if upto >= 0 {
		dc.SetColor(st.Frontier)
		for _, id := range sc.Frames[upto].Frontier {
			dc.DrawCircle(sc.Sites[id].X, sc.Sites[id].Y, st.SiteRadius)
			dc.Fill()
		}
	}

	dc.SetColor(st.Highlight)
	for _, id := range sc.Highlight {
		dc.DrawCircle(sc.Sites[id].X, sc.Sites[id].Y, st.SiteRadius)
		dc.Fill()
	}
	if sc.Cursor != nil {
		dc.DrawCircle(sc.Cursor.X, sc.Cursor.Y, st.MarkRadius)
		dc.Fill()
	}

	return dc
}

// rasterImage paints every pixel with the colour of its raster sample.
func rasterImage(sc *Scene, st *Style) *image.RGBA {
	w, h := sc.Area.Dx(), sc.Area.Dy()
	im := image.NewRGBA(image.Rect(0, 0, w, h))

	r := sc.Raster
	for y := 0; y < h; y++ {
		row := int((float64(y) + 0.5) / r.Step)
		for x := 0; x < w; x++ {
			col := int((float64(x) + 0.5) / r.Step)

			if col >= r.Cols || row >= r.Rows {
				im.Set(x, y, st.Background)
			} else if r.OnBoundary(col, row) {
				im.Set(x, y, st.Boundary)
			} else {
				im.Set(x, y, st.fill(r.Label(col, row)))
			}
		}
	}

	return im
}

// parseHex turns "#rrggbb" into a colour. Anything unparsable is black.
func parseHex(s string) color.Color {
	var r, g, b uint8
	n, err := fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &r, &g, &b)
	if err != nil || n != 3 {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// toHex turns a colour into "#rrggbb".
func toHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

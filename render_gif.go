package sitegraph

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/voidshard/sitegraph/internal/bfs"
	"github.com/voidshard/sitegraph/internal/line"
)

// SaveGIF renders the scene as an animated GIF at fpath, one image per
// traversal frame paced by the scene's Speed.
func SaveGIF(fpath string, sc *Scene, st *Style) error {
	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	err = WriteGIF(f, sc, st)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteGIF writes the scene as an animated GIF to w. Scenes without frames
// come out as a single still image.
//
// The static part of the scene is drawn once; each frame then only plots the
// traversal tree & markers on top, straight onto the paletted image.
func WriteGIF(w io.Writer, sc *Scene, st *Style) error {
	if st == nil {
		st = DefaultStyle()
	}

	pal := gifPalette(st)
	base := image.NewPaletted(image.Rect(0, 0, sc.Area.Dx(), sc.Area.Dy()), pal)
	draw.Draw(base, base.Bounds(), RenderFrame(sc, st, -1), image.Point{}, draw.Src)

	if len(sc.Frames) == 0 {
		return gif.EncodeAll(w, &gif.GIF{Image: []*image.Paletted{base}, Delay: []int{0}})
	}

	interval, err := bfs.Interval(sc.Speed)
	if err != nil {
		return err
	}
	delay := int(interval / (10 * time.Millisecond)) // gif delay is in 100ths of a second
	if delay < 1 {
		delay = 1
	}

	toPx := func(s Site) image.Point {
		return image.Pt(int(s.X)-sc.Area.Min.X, int(s.Y)-sc.Area.Min.Y)
	}

	anim := &gif.GIF{}
	tree := image.NewPaletted(base.Bounds(), pal)
	copy(tree.Pix, base.Pix)

	for _, f := range sc.Frames {
		v := toPx(sc.Sites[f.Vertex])
		if f.Parent >= 0 {
			line.Draw(tree, toPx(sc.Sites[f.Parent]), v, st.Visited)
		}
		square(tree, v, int(st.SiteRadius), st.Visited)

		frame := image.NewPaletted(base.Bounds(), pal)
		copy(frame.Pix, tree.Pix)
		for _, id := range f.Frontier {
			square(frame, toPx(sc.Sites[id]), int(st.SiteRadius), st.Frontier)
		}

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	return gif.EncodeAll(w, anim)
}

// square fills a (2r+1) wide square about p.
func square(p line.Plotter, at image.Point, r int, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		line.Draw(p, image.Pt(at.X-r, at.Y+dy), image.Pt(at.X+r, at.Y+dy), c)
	}
}

// gifPalette holds every colour of the style; anti-aliased edges snap to
// whichever is nearest.
func gifPalette(st *Style) color.Palette {
	pal := color.Palette{
		st.Background, st.Sites, st.Highlight, st.Lines, st.Marks,
		st.Boundary, st.Links, st.Visited, st.Frontier,
	}
	for _, c := range st.Palette {
		if len(pal) >= 256 {
			break
		}
		pal = append(pal, c)
	}
	return pal
}

package line

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder keeps every point plotted, in order.
type recorder []image.Point

func (r *recorder) Set(x, y int, c color.Color) {
	*r = append(*r, image.Pt(x, y))
}

func plotted(a, b image.Point) []image.Point {
	r := recorder{}
	Draw(&r, a, b, color.Black)
	return r
}

func TestDrawOrder(t *testing.T) {
	cases := []struct {
		name   string
		a, b   image.Point
		expect []image.Point
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3), []image.Point{{3, 3}}},
		{"horizontal", image.Pt(0, 1), image.Pt(3, 1), []image.Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical up", image.Pt(2, 2), image.Pt(2, 0), []image.Point{{2, 2}, {2, 1}, {2, 0}}},
		{"diagonal", image.Pt(0, 0), image.Pt(2, 2), []image.Point{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", image.Pt(0, 0), image.Pt(4, 2), []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, plotted(tc.a, tc.b))
		})
	}
}

func TestLineIsConnected(t *testing.T) {
	for _, end := range []image.Point{{17, -5}, {-9, 30}, {-20, -3}, {4, 25}} {
		pts := plotted(image.Pt(0, 0), end)
		assert.Equal(t, image.Pt(0, 0), pts[0])
		assert.Equal(t, end, pts[len(pts)-1])

		for i := 1; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			assert.LessOrEqual(t, abs(d.X), 1)
			assert.LessOrEqual(t, abs(d.Y), 1)
		}
	}
}

func TestDrawOnImage(t *testing.T) {
	im := image.NewPaletted(image.Rect(0, 0, 5, 5), color.Palette{color.White, color.Black})
	Draw(im, image.Pt(0, 4), image.Pt(4, 0), color.Black)

	for i := 0; i < 5; i++ {
		assert.Equal(t, uint8(1), im.ColorIndexAt(i, 4-i))
	}
	assert.Equal(t, uint8(0), im.ColorIndexAt(0, 0))
}

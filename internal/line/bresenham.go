// Package line plots straight lines onto integer grids.
package line

import (
	"image"
	"image/color"
)

// Plotter is anything we can set pixels on. *image.Paletted, *image.RGBA & co
// all qualify.
type Plotter interface {
	Set(x, y int, c color.Color)
}

// Draw plots the line a-b (both ends included) onto p in colour c using
// integer Bresenham stepping.
func Draw(p Plotter, a, b image.Point, c color.Color) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)

	e := dx + dy
	x, y := a.X, a.Y
	for {
		p.Set(x, y, c)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

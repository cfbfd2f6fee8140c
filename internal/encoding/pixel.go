// Package encoding packs labelled raster samples into image pixels.
package encoding

import (
	"image"
	"image/color"

	"github.com/boljen/go-bitmap"
)

const (
	// bit numbers for the per-pixel flag bitmap
	BitBoundary = 0
	BitSite     = 1
)

// Pixel is the decoded form of one raster sample.
//
// Packed into an RGBA64 as
//
//	R [16 bits] -> label, most significant half
//	G [16 bits] -> label, least significant half
//	B [16 bits] -> unused
//	A [16 bits]
//	  16-9 [8 bits] -> 0xff, so the image stays opaque
//	   8-1 [8 bits] -> flag bitmap
//	      bit 0 -> boundary sample
//	      bit 1 -> sample holds the cell's site
//	      bit 2-7 -> unused
//
// Labels are stored +1 so the zero pixel decodes as "no label" (-1).
type Pixel struct {
	Label    int
	Boundary bool
	Site     bool
}

// opaque is the high byte of every packed alpha channel.
const opaque = 0xff00

// Pack encodes p into a single RGBA64 colour.
func Pack(p Pixel) color.RGBA64 {
	label := uint32(p.Label + 1)

	flags := bitmap.New(8)
	flags.Set(BitBoundary, p.Boundary)
	flags.Set(BitSite, p.Site)

	return color.RGBA64{
		R: uint16(label >> 16),
		G: uint16(label),
		A: opaque | uint16(flags[0]),
	}
}

// Unpack decodes a colour written by Pack.
func Unpack(c color.RGBA64) Pixel {
	flags := bitmap.Bitmap{byte(c.A)}

	return Pixel{
		Label:    int(uint32(c.R)<<16|uint32(c.G)) - 1,
		Boundary: flags.Get(BitBoundary),
		Site:     flags.Get(BitSite),
	}
}

// Decode unpacks every pixel of im in row-major order.
func Decode(im *image.RGBA64) []Pixel {
	b := im.Bounds()
	out := make([]Pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, Unpack(im.RGBA64At(x, y)))
		}
	}
	return out
}

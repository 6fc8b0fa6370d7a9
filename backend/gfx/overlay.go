/*
Package gfx renders diagnostic overlays for OCR results: the detection
boxes outlined (and optionally filled) on a transparent layer, which is
then composed over the source image. Text and ordinal labels are left to
richer graphics stacks; this is plumbing for eyeballing layout analysis.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"image"
	"image/color"
	"math"
	"sort"

	xdraw "golang.org/x/image/draw"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/ocr"
)

// BoxStyle controls how detection boxes are drawn. Colors are
// non-premultiplied RGBA.
type BoxStyle struct {
	Fill    color.NRGBA // interior fill; zero alpha skips filling
	Outline color.NRGBA // edge color
	Width   int         // edge thickness in pixels; even widths round up to the next odd size
}

// DefaultBoxStyle is a translucent green fill with a bright green outline.
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{
		Fill:    color.NRGBA{R: 0x00, G: 0x50, B: 0x00, A: 0x40},
		Outline: color.NRGBA{R: 0x11, G: 0xff, B: 0x22, A: 0xff},
		Width:   6,
	}
}

// BoxLayer renders the blocks' detection quads onto a fresh transparent
// layer of the given bounds.
func BoxLayer(blocks []*ocr.TextBlock, bounds image.Rectangle, style BoxStyle) *image.RGBA {
	layer := image.NewRGBA(bounds)
	for _, tb := range blocks {
		if style.Fill.A > 0 {
			fillQuad(layer, tb.Box, style.Fill)
		}
		outlineQuad(layer, tb.Box, style.Outline, style.Width)
	}
	return layer
}

// Compose stacks layers over a base image, alpha-blending top to bottom.
func Compose(base image.Image, layers ...image.Image) *image.RGBA {
	out := image.NewRGBA(base.Bounds())
	xdraw.Draw(out, out.Bounds(), base, base.Bounds().Min, xdraw.Src)
	for _, layer := range layers {
		xdraw.Draw(out, out.Bounds(), layer, layer.Bounds().Min, xdraw.Over)
	}
	return out
}

// outlineQuad plots the four edges with a square pen centered on the edge;
// its side is 2*(width/2)+1 pixels.
func outlineQuad(img *image.RGBA, q geom.Quad, c color.NRGBA, width int) {
	pen := image.NewUniform(c)
	for i := 0; i < 4; i++ {
		p0, p1 := q[i], q[(i+1)%4]
		// sample the segment at pixel steps, stamping the pen at each
		steps := int(geom.Dist(p0, p1)) + 1
		half := width / 2
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			x := int(math.Round(p0.X + t*(p1.X-p0.X)))
			y := int(math.Round(p0.Y + t*(p1.Y-p0.Y)))
			stamp := image.Rect(x-half, y-half, x+half+1, y+half+1)
			xdraw.Draw(img, stamp, pen, image.Point{}, xdraw.Over)
		}
	}
}

// fillQuad fills the quad with an even-odd scanline sweep.
func fillQuad(img *image.RGBA, q geom.Quad, c color.NRGBA) {
	fill := image.NewUniform(c)
	bounds := q.Bounds()
	y0 := int(math.Floor(bounds.Y0))
	y1 := int(math.Ceil(bounds.Y1))
	for y := y0; y <= y1; y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := 0; i < 4; i++ {
			a, b := q[i], q[(i+1)%4]
			if (a.Y <= fy) == (b.Y <= fy) {
				continue // edge does not cross this scanline
			}
			t := (fy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			span := image.Rect(int(math.Ceil(xs[i])), y, int(math.Ceil(xs[i+1])), y+1)
			xdraw.Draw(img, span, fill, image.Point{}, xdraw.Over)
		}
	}
}

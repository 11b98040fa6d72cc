// seehuhn.de/go/barsheet - barcode label sheets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Canvas paints solid-colour shapes onto an RGBA image.
// Coordinates are in pixels, with the origin at the top-left corner of the
// image bounds and y increasing downwards, unless a transformation is set.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Img *image.RGBA

	r   *Rasteriser
	ctm matrix.Matrix
}

// NewCanvas allocates a transparent w×h image and returns a canvas for it.
func NewCanvas(w, h int) *Canvas {
	return Wrap(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// Wrap returns a canvas which paints onto img.
func Wrap(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{
		Img: img,
		r:   NewRasteriser(clip),
		ctm: matrix.Identity,
	}
}

// SetTransform sets the matrix which maps drawing coordinates to pixels.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.ctm = m
}

// Clear sets every pixel of the image to col.
func (c *Canvas) Clear(col color.Color) {
	r, g, b, a := rgba8(col)
	pix := c.Img.Pix
	bounds := c.Img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := c.Img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pix[i+0] = r
			pix[i+1] = g
			pix[i+2] = b
			pix[i+3] = a
			i += 4
		}
	}
}

// Fill paints the interior of p, using the nonzero winding rule.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	c.FillRule(p, NonZero, col)
}

// FillRule paints the interior of p, using the given fill rule.
func (c *Canvas) FillRule(p *path.Data, rule FillRule, col color.Color) {
	sr, sg, sb, sa := rgba8(col)
	if sa == 0 {
		return
	}
	fr, fg, fb, fa := float32(sr), float32(sg), float32(sb), float32(sa)/255

	pix := c.Img.Pix
	c.r.CTM = c.ctm
	c.r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		i := c.Img.PixOffset(xMin, y)
		for _, cov := range coverage {
			keep := 1 - cov*fa
			pix[i+0] = blend(fr, pix[i+0], cov, keep)
			pix[i+1] = blend(fg, pix[i+1], cov, keep)
			pix[i+2] = blend(fb, pix[i+2], cov, keep)
			pix[i+3] = blend(fa*255, pix[i+3], cov, keep)
			i += 4
		}
	})
}

// Rect paints the axis-aligned rectangle with corners (x0, y0) and (x1, y1).
func (c *Canvas) Rect(x0, y0, x1, y1 float64, col color.Color) {
	c.Fill(Rectangle(x0, y0, x1, y1), col)
}

// Rectangle returns a closed rectangular path.
func Rectangle(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// blend composites a premultiplied source channel over a destination
// channel.
func blend(src float32, dst uint8, cov, keep float32) uint8 {
	v := src*cov + float32(dst)*keep
	return uint8(max(0, min(255, v+0.5)))
}

// rgba8 returns the premultiplied 8-bit channels of col.
func rgba8(col color.Color) (r, g, b, a uint8) {
	c := color.RGBAModel.Convert(col).(color.RGBA)
	return c.R, c.G, c.B, c.A
}

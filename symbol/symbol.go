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

// Package symbol renders the barcode of a single entry.
//
// The symbol encoding is delegated to an [Encoder]; this package only
// paints the module pattern onto a fresh surface.
package symbol

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/raster"
	"seehuhn.de/go/barsheet/text"
)

// Options control the appearance of a rendered barcode.
// Lengths are in pixels.
type Options struct {
	Format       string     // symbology, see [NewEncoder]
	LineColor    color.RGBA // colour of the bars
	Background   color.RGBA
	ModuleWidth  float64 // width of the narrowest bar
	Height       float64 // height of the bars
	Margin       float64 // quiet zone on all four sides
	DisplayValue bool    // print the encoded text below the bars
	FontSize     float64 // size of the text, if DisplayValue is set
	TextMargin   float64 // gap between bars and text

	// Fonts are consulted for characters of the value text which Go
	// Bold does not cover.
	Fonts [][]byte
}

// DefaultOptions returns the options used for chassis barcodes.
func DefaultOptions() Options {
	return Options{
		Format:      FormatCode128,
		LineColor:   color.RGBA{A: 255},
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ModuleWidth: 2,
		Height:      80,
		Margin:      5,
		FontSize:    20,
		TextMargin:  2,
	}
}

// Renderer paints barcodes for entries.  It implements [barsheet.Renderer].
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	enc  Encoder
	opts Options
	face *text.Face
}

// NewRenderer returns a renderer which uses enc to encode the chassis
// identifiers.
func NewRenderer(enc Encoder, opts Options) (*Renderer, error) {
	if enc == nil {
		return nil, barsheet.ErrEncoderMissing
	}
	if opts.ModuleWidth <= 0 || opts.Height <= 0 || opts.Margin < 0 {
		return nil, fmt.Errorf("invalid barcode geometry %gx%g, margin %g",
			opts.ModuleWidth, opts.Height, opts.Margin)
	}
	r := &Renderer{enc: enc, opts: opts}
	if opts.DisplayValue {
		face, err := text.Bold(opts.FontSize, opts.Fonts...)
		if err != nil {
			return nil, err
		}
		r.face = face
	}
	return r, nil
}

// Options returns the options of the renderer.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render encodes the chassis identifier of e and paints it onto a new
// surface.
func (r *Renderer) Render(e barsheet.Entry) (barsheet.Symbol, error) {
	mods, err := r.enc.Encode(e.Chassis)
	if err != nil {
		return barsheet.Symbol{}, err
	}
	img, err := r.Paint(mods, e.Chassis)
	if err != nil {
		return barsheet.Symbol{}, err
	}
	return barsheet.Symbol{Surface: img, Modules: mods}, nil
}

// Size returns the surface size for a symbol of n modules.
func (r *Renderer) Size(n int) (w, h int) {
	o := r.opts
	fw := float64(n)*o.ModuleWidth + 2*o.Margin
	fh := o.Height + 2*o.Margin
	if o.DisplayValue {
		fh += o.TextMargin + o.FontSize
	}
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}

// Paint draws the module pattern mods onto a new surface.  If the
// DisplayValue option is set, content is printed below the bars.
func (r *Renderer) Paint(mods []bool, content string) (*image.RGBA, error) {
	o := r.opts
	w, h := r.Size(len(mods))
	c := raster.NewCanvas(w, h)
	c.Clear(o.Background)

	for _, run := range Bars(mods) {
		x0 := o.Margin + float64(run[0])*o.ModuleWidth
		x1 := o.Margin + float64(run[1])*o.ModuleWidth
		c.Rect(x0, o.Margin, x1, o.Margin+o.Height, o.LineColor)
	}

	if r.face != nil {
		ascent, _, err := r.face.Metrics()
		if err != nil {
			return nil, err
		}
		baseline := o.Margin + o.Height + o.TextMargin + ascent
		outline, err := r.face.Outline(content, float64(w)/2, baseline, text.Center)
		if err != nil {
			return nil, err
		}
		c.Fill(outline, o.LineColor)
	}
	return c.Img, nil
}

// Bars returns the runs of adjacent dark modules as half-open index
// intervals [start, end).
func Bars(mods []bool) [][2]int {
	var runs [][2]int
	for i := 0; i < len(mods); {
		if !mods[i] {
			i++
			continue
		}
		start := i
		for i < len(mods) && mods[i] {
			i++
		}
		runs = append(runs, [2]int{start, i})
	}
	return runs
}

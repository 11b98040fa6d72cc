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

package output

import (
	"fmt"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/page"
	"seehuhn.de/go/barsheet/symbol"
	"seehuhn.de/go/barsheet/text"
)

// A4 paper size in PDF points.
const (
	a4Width  = 595.276
	a4Height = 841.890
)

// WritePDF writes the page for s as a single-page A4 PDF file.
// Bars are drawn as filled rectangles and text as glyph outlines, so that
// the file prints sharply at any resolution.  The page uses the same
// layout as the raster image, with one pixel of the layout mapped to
// a4Width/l.Width points.  Bars, and the value text if
// opts.DisplayValue is set, are drawn in opts.LineColor.
//
// If an error occurs, no file is left behind.
func WritePDF(fname string, s *barsheet.Session, l page.Layout, opts symbol.Options) error {
	if !s.Ready() {
		return barsheet.ErrNotGenerated
	}
	face, err := text.Bold(l.FontSize, l.Fonts...)
	if err != nil {
		return err
	}
	var value *text.Face
	if opts.DisplayValue {
		value, err = text.Bold(opts.FontSize, opts.Fonts...)
		if err != nil {
			return err
		}
	}

	paper := &pdf.Rectangle{URx: a4Width, URy: a4Height}
	return createPage(fname, paper, func(pg *document.Page) error {
		// PDF origin is bottom-left and the layout's origin is top-left.
		scale := a4Width / float64(l.Width)
		pg.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, a4Height})
		return drawPDF(pg, s, l, opts, face, value)
	})
}

// createPage creates fname as a single-page PDF file and calls draw to
// fill in the page.  If draw or writing the file fails, fname is removed.
func createPage(fname string, paper *pdf.Rectangle, draw func(*document.Page) error) error {
	pg, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	err = draw(pg)
	if closeErr := pg.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname) // best effort, err is reported instead
		return err
	}
	return nil
}

// pdfPage is the subset of the PDF content stream writer used by drawPDF.
type pdfPage interface {
	pathWriter
	SetFillColor(c color.Color)
	Rectangle(x, y, w, h float64)
	Fill()
}

// drawPDF draws the entries of s in layout coordinates.  value is nil
// unless opts.DisplayValue is set.
func drawPDF(pg pdfPage, s *barsheet.Session, l page.Layout, opts symbol.Options, face, value *text.Face) error {
	lineColor := rgb(opts.LineColor.R, opts.LineColor.G, opts.LineColor.B)
	textColor := rgb(l.TextColor.R, l.TextColor.G, l.TextColor.B)

	var valueAscent float64
	if value != nil {
		a, _, err := value.Metrics()
		if err != nil {
			return err
		}
		valueAscent = a
	}

	slots := l.Slots(len(s.Entries))
	for i, e := range s.Entries {
		res := &s.Results[i]
		if !res.OK() || len(res.Modules) == 0 {
			continue
		}
		slot := slots[i]

		// the raster surface includes the quiet zone; reproduce its
		// proportions inside the slot rectangle
		bounds := res.Surface.Bounds()
		sx := slot.W / float64(bounds.Dx())
		sy := slot.H / float64(bounds.Dy())

		pg.SetFillColor(lineColor)
		for _, run := range symbol.Bars(res.Modules) {
			x := slot.X + (opts.Margin+float64(run[0])*opts.ModuleWidth)*sx
			w := float64(run[1]-run[0]) * opts.ModuleWidth * sx
			pg.Rectangle(x, slot.Y+opts.Margin*sy, w, opts.Height*sy)
		}
		pg.Fill()

		if value != nil {
			baseline := opts.Margin + opts.Height + opts.TextMargin + valueAscent
			outline, err := value.Outline(e.Chassis, float64(bounds.Dx())/2, baseline, text.Center)
			if err != nil {
				return fmt.Errorf("slot %d: %w", e.Slot, err)
			}
			place(outline, slot.X, slot.Y, sx, sy)
			if drawPath(pg, outline) {
				pg.Fill()
			}
		}

		pg.SetFillColor(textColor)
		for _, line := range []struct {
			s string
			y float64
		}{
			{e.Chassis, slot.ChassisBaseline},
			{e.Engine, slot.EngineBaseline},
		} {
			outline, err := face.Outline(line.s, slot.CenterX, line.y, text.Center)
			if err != nil {
				return fmt.Errorf("slot %d: %w", e.Slot, err)
			}
			if drawPath(pg, outline) {
				pg.Fill()
			}
		}
	}
	return nil
}

func rgb(r, g, b uint8) color.DeviceRGB {
	return color.DeviceRGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// place maps p from surface pixels into the slot rectangle with origin
// (x0, y0) and scale factors sx, sy.
func place(p *path.Data, x0, y0, sx, sy float64) {
	for i, c := range p.Coords {
		p.Coords[i] = vec.Vec2{X: x0 + c.X*sx, Y: y0 + c.Y*sy}
	}
}

// pathWriter is the subset of the PDF content stream writer used by
// drawPath.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath appends p to the current PDF path.  Quadratic segments are
// converted to cubic ones.  The return value reports whether anything was
// drawn.
func drawPath(w pathWriter, p *path.Data) bool {
	drawn := false
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			w.MoveTo(cur.X, cur.Y)
			k++
		case path.CmdLineTo:
			cur = p.Coords[k]
			w.LineTo(cur.X, cur.Y)
			k++
			drawn = true
		case path.CmdQuadTo:
			c, e := p.Coords[k], p.Coords[k+1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3.0))
			c2 := e.Add(c.Sub(e).Mul(2.0 / 3.0))
			w.CurveTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			cur = e
			k += 2
			drawn = true
		case path.CmdCubeTo:
			c1, c2, e := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			w.CurveTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			cur = e
			k += 3
			drawn = true
		case path.CmdClose:
			w.ClosePath()
			cur = start
		}
	}
	return drawn
}

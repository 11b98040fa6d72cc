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

// Package page composes the rendered barcodes of a session into a single
// printable page.
package page

import (
	"image"
	"image/color"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/raster"
	"seehuhn.de/go/barsheet/text"
)

// Compositor draws sessions onto page-sized images.
//
// A Compositor is not safe for concurrent use.
type Compositor struct {
	layout Layout
	log    zerolog.Logger

	face  *text.Face // page labels
	small *text.Face // preview labels and error indicators
}

// NewCompositor returns a compositor for the given layout.
func NewCompositor(l Layout, log zerolog.Logger) (*Compositor, error) {
	face, err := text.Bold(l.FontSize, l.Fonts...)
	if err != nil {
		return nil, err
	}
	small, err := text.Bold(previewFontSize, l.Fonts...)
	if err != nil {
		return nil, err
	}
	return &Compositor{
		layout: l,
		log:    log,
		face:   face,
		small:  small,
	}, nil
}

// Layout returns the page layout used by the compositor.
func (c *Compositor) Layout() Layout {
	return c.layout
}

// Compose draws all rendered barcodes of s onto a new page, each followed
// by its chassis and engine identifiers.
//
// Slots are assigned in entry order.  Entries without a rendered barcode
// keep their slot but are left blank.
// If s holds no entries, [barsheet.ErrNotGenerated] is returned.
func (c *Compositor) Compose(s *barsheet.Session) (*image.RGBA, error) {
	if !s.Ready() {
		return nil, barsheet.ErrNotGenerated
	}

	l := c.layout
	canvas := raster.NewCanvas(l.Width, l.Height)
	canvas.Clear(l.Background)

	slots := l.Slots(len(s.Entries))
	for i, e := range s.Entries {
		surface, ok := s.Surface(e.Slot)
		if !ok {
			c.log.Warn().
				Stringer("session", s.ID).
				Int("slot", e.Slot).
				Msg("no barcode surface, slot left blank")
			continue
		}

		slot := slots[i]
		draw.NearestNeighbor.Scale(canvas.Img, slot.Rect(), surface, surface.Bounds(), draw.Over, nil)

		if err := c.line(canvas, c.face, e.Chassis, slot.CenterX, slot.ChassisBaseline, l.TextColor); err != nil {
			return nil, err
		}
		if err := c.line(canvas, c.face, e.Engine, slot.CenterX, slot.EngineBaseline, l.TextColor); err != nil {
			return nil, err
		}
	}

	c.log.Debug().
		Stringer("session", s.ID).
		Int("entries", len(s.Entries)).
		Int("rendered", s.Rendered()).
		Msg("page composed")
	return canvas.Img, nil
}

// Preview draws the on-screen state of s: every entry in turn, either as
// its barcode at natural size with the two label lines below, or as the
// inline error indicator.  The result has the page width and is as tall
// as needed.
func (c *Compositor) Preview(s *barsheet.Session) (*image.RGBA, error) {
	if !s.Ready() {
		return nil, barsheet.ErrNotGenerated
	}

	width := c.layout.Width
	height := previewPadding
	for i := range s.Results {
		height += c.itemHeight(&s.Results[i]) + previewGap
	}
	height += previewPadding - previewGap

	canvas := raster.NewCanvas(width, int(math.Ceil(height)))
	canvas.Clear(c.layout.Background)

	centerX := float64(width) / 2
	y := previewPadding
	for i := range s.Results {
		res := &s.Results[i]
		if res.OK() {
			b := res.Surface.Bounds()
			x := int(math.Round(centerX - float64(b.Dx())/2))
			dst := image.Rect(x, int(math.Round(y)), x+b.Dx(), int(math.Round(y))+b.Dy())
			draw.Draw(canvas.Img, dst, res.Surface, b.Min, draw.Src)

			base := y + float64(b.Dy()) + previewLineHeight
			for _, line := range res.Label() {
				if err := c.line(canvas, c.small, line, centerX, base, previewTextColor); err != nil {
					return nil, err
				}
				base += previewLineHeight + previewLineGap
			}
		} else {
			base := y + previewLineHeight
			if err := c.line(canvas, c.small, res.Indicator(), centerX, base, previewErrorColor); err != nil {
				return nil, err
			}
		}
		y += c.itemHeight(res) + previewGap
	}
	return canvas.Img, nil
}

func (c *Compositor) itemHeight(res *barsheet.Result) float64 {
	if !res.OK() {
		return previewLineHeight + previewDescent
	}
	return float64(res.Surface.Bounds().Dy()) + 2*previewLineHeight + previewLineGap + previewDescent
}

// line draws one centred line of bold text with its baseline at y.
func (c *Compositor) line(canvas *raster.Canvas, face *text.Face, s string, x, y float64, col color.Color) error {
	outline, err := face.Outline(s, x, y, text.Center)
	if err != nil {
		return err
	}
	canvas.Fill(outline, col)
	return nil
}

// Preview geometry, in pixels.
const (
	previewPadding    = 30.0
	previewGap        = 30.0
	previewFontSize   = 22.4 // 1.4rem
	previewLineHeight = 26.0
	previewLineGap    = 3.0
	previewDescent    = 6.0
)

var (
	previewTextColor  = color.RGBA{A: 255}
	previewErrorColor = color.RGBA{R: 255, A: 255}
)

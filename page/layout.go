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

package page

import (
	"image"
	"image/color"
	"math"
)

// Layout describes the geometry of the composed page.  Lengths are in
// pixels.
type Layout struct {
	Width  int // page width
	Height int // page height

	Top     float64 // offset of the first slot
	Reserve float64 // height not available to slots

	BarcodeScale  float64 // barcode width as a fraction of the page width
	BarcodeHeight float64

	// Baselines of the two text lines, relative to the bottom edge of the
	// barcode.
	ChassisOffset float64
	EngineOffset  float64

	FontSize   float64
	TextColor  color.RGBA
	Background color.RGBA

	// Fonts are consulted, in order, for characters which Go Bold does
	// not cover.
	Fonts [][]byte
}

// DefaultLayout returns the layout of an A4 page at 150 DPI.
func DefaultLayout() Layout {
	return Layout{
		Width:         1240,
		Height:        1754,
		Top:           50,
		Reserve:       100,
		BarcodeScale:  0.85,
		BarcodeHeight: 320,
		ChassisOffset: 20,
		EngineOffset:  55,
		FontSize:      42,
		TextColor:     color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
		Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Slot is the position of one entry on the page.
type Slot struct {
	X, Y, W, H float64 // barcode rectangle

	CenterX         float64
	ChassisBaseline float64
	EngineBaseline  float64
}

// Rect returns the barcode rectangle, rounded to whole pixels.
func (s Slot) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(s.X)), int(math.Round(s.Y)),
		int(math.Round(s.X+s.W)), int(math.Round(s.Y+s.H)),
	)
}

// SlotHeight returns the vertical distance between the slots of a page
// with n entries.
func (l Layout) SlotHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return (float64(l.Height) - l.Reserve) / float64(n)
}

// Slots returns the positions of n entries, from top to bottom.
func (l Layout) Slots(n int) []Slot {
	pageW := float64(l.Width)
	w := pageW * l.BarcodeScale
	step := l.SlotHeight(n)

	res := make([]Slot, n)
	for i := range res {
		y := l.Top + float64(i)*step
		bottom := y + l.BarcodeHeight
		res[i] = Slot{
			X:               (pageW - w) / 2,
			Y:               y,
			W:               w,
			H:               l.BarcodeHeight,
			CenterX:         pageW / 2,
			ChassisBaseline: bottom + l.ChassisOffset,
			EngineBaseline:  bottom + l.EngineOffset,
		}
	}
	return res
}

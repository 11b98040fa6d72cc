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

// Package testcases holds shared fixtures for the barsheet tests: form
// submissions with their expected outcome, and fill shapes with known
// areas.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/barsheet"
)

// Scenario is one submission of the entry form.
type Scenario struct {
	Name   string            // lowercase a-z and _ only
	Fields barsheet.FieldMap // raw form values

	// Want lists the collected entries.  An empty list means that the
	// submission must be rejected for lack of a complete pair.
	Want []barsheet.Entry

	// Failed lists the slots whose identifiers cannot be encoded as
	// CODE128.
	Failed []int
}

// Shape is a path with a known filled area.
type Shape struct {
	Name   string     // lowercase a-z and _ only
	Path   *path.Data // the geometry to fill, in device space
	Width  int        // canvas width in pixels
	Height int        // canvas height in pixels
	Rule   FillRule
	Area   float64 // exact area of the filled region
	Tol    float64 // permitted deviation of the total coverage
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var fillCases = []Shape{
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Area:   34 * 34,
		Tol:    1e-3,
	},
	{
		Name:   "rectangle_subpixel",
		Path:   rectangle(20.25, 20.5, 24.75, 24.25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Area:   4.5 * 3.75,
		Tol:    1e-3,
	},
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Area:   0.5 * 44 * 40,
		Tol:    1e-2,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Area:   0.5 * 44 * 40,
		Tol:    1e-2,
	},
	{
		Name:   "rectangle_clipped",
		Path:   rectangle(-10, -10, 20, 20),
		Width:  16,
		Height: 16,
		Rule:   NonZero,
		Area:   16 * 16,
		Tol:    1e-3,
	},
}

var subpathCases = []Shape{
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Area:   2*30*30 - 16*16,
		Tol:    1e-2,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Area:   2*30*30 - 2*16*16,
		Tol:    1e-2,
	},
	{
		Name:   "frame_evenodd",
		Path:   frame(8, 8, 56, 56, 8),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Area:   48*48 - 32*32,
		Tol:    1e-2,
	},
	{
		Name:   "unclosed",
		Path:   (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(8, 0)).LineTo(pt(8, 8)).LineTo(pt(0, 8)),
		Width:  16,
		Height: 16,
		Rule:   NonZero,
		Area:   64,
		Tol:    1e-3,
	},
}

var curveCases = []Shape{
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Area:   math.Pi * 25 * 25,
		Tol:    30, // inscribed polygon of 24 segments
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Area:   math.Pi * (25*25 - 12*12),
		Tol:    30,
	},
	{
		Name:   "quadratic_hump",
		Path:   (&path.Data{}).MoveTo(pt(0, 40)).QuadTo(pt(20, 0), pt(40, 40)).Close(),
		Width:  48,
		Height: 48,
		Rule:   NonZero,
		Area:   2.0 / 3.0 * 40 * 20, // parabolic segment
		Tol:    8,
	},
}

// Runs of dark modules as painted by the barcode renderer: module width 2,
// margin 5, bar height 80.
var barCases = []Shape{
	{
		Name:   "single_bar",
		Path:   bars(5, 5, 2, 80, [2]int{0, 2}),
		Width:  32,
		Height: 96,
		Rule:   NonZero,
		Area:   4 * 80,
		Tol:    1e-3,
	},
	{
		Name:   "adjacent_runs",
		Path:   bars(5, 5, 2, 80, [2]int{0, 2}, [2]int{3, 4}, [2]int{5, 9}),
		Width:  32,
		Height: 96,
		Rule:   NonZero,
		Area:   (2 + 1 + 4) * 2 * 80,
		Tol:    1e-3,
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// overlappingRectangles builds two overlapping rectangles with the same
// orientation.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	p := rectangle(x1a, y1a, x2a, y2a)
	return p.
		MoveTo(pt(x1b, y1b)).
		LineTo(pt(x2b, y1b)).
		LineTo(pt(x2b, y2b)).
		LineTo(pt(x1b, y2b)).
		Close()
}

// frame builds a square with a square hole of the same orientation.
func frame(x1, y1, x2, y2, w float64) *path.Data {
	p := rectangle(x1, y1, x2, y2)
	return p.
		MoveTo(pt(x1+w, y1+w)).
		LineTo(pt(x2-w, y1+w)).
		LineTo(pt(x2-w, y2-w)).
		LineTo(pt(x1+w, y2-w)).
		Close()
}

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498

// circle builds a circle from four cubic segments.
func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r)
}

func ring(cx, cy, outer, inner float64) *path.Data {
	return addCircle(addCircle(&path.Data{}, cx, cy, outer), cx, cy, inner)
}

func addCircle(p *path.Data, cx, cy, r float64) *path.Data {
	k := kappa * r
	return p.
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// bars builds one rectangle per run of dark modules.
func bars(x0, y0, moduleWidth, height float64, runs ...[2]int) *path.Data {
	p := &path.Data{}
	for _, run := range runs {
		xa := x0 + float64(run[0])*moduleWidth
		xb := x0 + float64(run[1])*moduleWidth
		p = p.
			MoveTo(pt(xa, y0)).
			LineTo(pt(xb, y0)).
			LineTo(pt(xb, y0+height)).
			LineTo(pt(xa, y0+height)).
			Close()
	}
	return p
}

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

// Package barsheet turns chassis/engine identifier pairs into barcode label
// sheets.
//
// Up to [Slots] identifier pairs are read from form fields by [Collect].
// [Generate] renders the chassis identifier of every complete pair as a
// linear barcode and returns the outcome as a [Session].  The session is
// then handed to the page compositor (package page) and to the output
// dispatcher (package output), which produce a printable A4 image.
package barsheet

import (
	"image"
	"strconv"
)

// Slots is the number of chassis/engine field pairs on the input form.
const Slots = 3

// Entry is one complete chassis/engine identifier pair.
type Entry struct {
	Chassis string // trimmed, non-empty
	Engine  string // trimmed, non-empty
	Slot    int    // form slot, 1..Slots
}

// Symbol is a rendered barcode.
type Symbol struct {
	// Surface holds the painted barcode, including its margin.
	Surface *image.RGBA

	// Modules is the module pattern produced by the encoder.
	// True entries are dark bars.
	Modules []bool
}

// Renderer paints the barcode for a single entry.
//
// A Renderer reports encoder failures through the returned error.
// Implementations must not retain the returned surface.
type Renderer interface {
	Render(e Entry) (Symbol, error)
}

// ChassisField returns the form field name of the chassis identifier in
// the given slot.
func ChassisField(slot int) string {
	return "chassisNo" + strconv.Itoa(slot)
}

// EngineField returns the form field name of the engine identifier in the
// given slot.
func EngineField(slot int) string {
	return "engineNo" + strconv.Itoa(slot)
}

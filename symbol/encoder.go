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

package symbol

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/code93"
)

// Encoder turns text into the module pattern of a linear barcode.
// In the returned slice, true marks a dark module.
type Encoder interface {
	Encode(content string) ([]bool, error)
}

// Supported symbologies.
const (
	FormatCode128 = "CODE128"
	FormatCode39  = "CODE39"
	FormatCode93  = "CODE93"
)

// NewEncoder returns the encoder for the named symbology.
// Format names are case-insensitive.
func NewEncoder(format string) (Encoder, error) {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case FormatCode128, "":
		return Code128{}, nil
	case FormatCode39:
		return Code39{FullASCII: true}, nil
	case FormatCode93:
		return Code93{FullASCII: true}, nil
	default:
		return nil, fmt.Errorf("unsupported barcode format %q", format)
	}
}

// Code128 encodes text as a Code 128 symbol, switching between the code
// sets as needed.  Only ASCII text of 1 to 80 characters can be encoded.
type Code128 struct{}

// Encode implements the [Encoder] interface.
func (Code128) Encode(content string) ([]bool, error) {
	bc, err := code128.Encode(content)
	if err != nil {
		return nil, err
	}
	return modules(bc), nil
}

// Code39 encodes text as a Code 39 symbol.
type Code39 struct {
	Checksum  bool
	FullASCII bool
}

// Encode implements the [Encoder] interface.
func (c Code39) Encode(content string) ([]bool, error) {
	bc, err := code39.Encode(content, c.Checksum, c.FullASCII)
	if err != nil {
		return nil, err
	}
	return modules(bc), nil
}

// Code93 encodes text as a Code 93 symbol.
type Code93 struct {
	Checksum  bool
	FullASCII bool
}

// Encode implements the [Encoder] interface.
func (c Code93) Encode(content string) ([]bool, error) {
	bc, err := code93.Encode(content, c.Checksum, c.FullASCII)
	if err != nil {
		return nil, err
	}
	return modules(bc), nil
}

// modules samples the one-pixel-per-module image of a linear barcode.
func modules(bc barcode.Barcode) []bool {
	b := bc.Bounds()
	res := make([]bool, b.Dx())
	for i := range res {
		g := color.GrayModel.Convert(bc.At(b.Min.X+i, b.Min.Y)).(color.Gray)
		res[i] = g.Y < 128
	}
	return res
}

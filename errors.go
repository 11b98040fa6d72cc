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

package barsheet

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoderMissing is returned by [Generate] when no barcode encoder
	// is available.
	ErrEncoderMissing = errors.New("barcode encoder not available")

	// ErrNoCompletePair is returned by [Generate] when no slot holds both a
	// chassis and an engine identifier.
	ErrNoCompletePair = errors.New("at least one complete chassis/engine pair required")

	// ErrNotGenerated is returned by output operations which are invoked
	// before any barcodes have been generated.
	ErrNotGenerated = errors.New("no barcodes generated")

	// ErrNoSurface is recorded for an entry whose [Renderer] returned
	// neither a surface nor an error.
	ErrNoSurface = errors.New("renderer returned no surface")
)

// EncodingError records the failure to render the barcode of one entry.
type EncodingError struct {
	Entry Entry
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("slot %d: cannot encode %q: %v", e.Entry.Slot, e.Entry.Chassis, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// BatchError is returned by [Generate] when rendering fails outside the
// boundary of a single entry.
type BatchError struct {
	Cause any
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("barcode generation failed: %v", e.Cause)
}

func (e *BatchError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

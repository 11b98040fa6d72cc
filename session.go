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
	"image"

	"github.com/google/uuid"
)

// Result is the outcome of rendering one entry.
// Exactly one of Surface and Err is set.
type Result struct {
	Entry Entry
	Symbol
	Err error
}

// OK reports whether the barcode was rendered.
func (r *Result) OK() bool {
	return r.Err == nil && r.Surface != nil
}

// Label returns the text lines shown beneath a rendered barcode: the
// chassis identifier followed by the engine identifier.
// For failed entries, Label returns nil.
func (r *Result) Label() []string {
	if !r.OK() {
		return nil
	}
	return []string{r.Entry.Chassis, r.Entry.Engine}
}

// Indicator returns the inline error text which replaces a failed entry.
// For successful entries, Indicator returns "".
func (r *Result) Indicator() string {
	if r.OK() {
		return ""
	}
	return indicatorPrefix + causeMessage(r.Err)
}

// Session holds the state between a generate action and the following
// export or print actions.  A new generate action produces a new session;
// sessions are never merged.
type Session struct {
	ID      uuid.UUID
	Entries []Entry  // collected entries, ordered by slot
	Results []Result // one per entry, same order
}

// Generate collects the entries from the form and renders a barcode for
// each of them.
//
// If r is nil, [ErrEncoderMissing] is returned.  If no slot holds a
// complete pair, [ErrNoCompletePair] is returned.  In both cases no
// session is created.  Encoder failures for individual entries do not
// abort the batch; they are recorded in the corresponding [Result].
func Generate(f Fields, r Renderer) (*Session, error) {
	if r == nil {
		return nil, ErrEncoderMissing
	}
	entries := Collect(f)
	if len(entries) == 0 {
		return nil, ErrNoCompletePair
	}
	return Render(entries, r)
}

// Render renders the given entries into a new session.
// A panic during rendering is returned as a [*BatchError].
func Render(entries []Entry, r Renderer) (s *Session, err error) {
	if len(entries) == 0 {
		return nil, ErrNoCompletePair
	}
	if len(entries) > Slots {
		entries = entries[:Slots]
	}

	defer func() {
		if cause := recover(); cause != nil {
			s = nil
			err = &BatchError{Cause: cause}
		}
	}()

	s = &Session{
		ID:      uuid.New(),
		Entries: entries,
		Results: make([]Result, len(entries)),
	}
	for i, e := range entries {
		res := &s.Results[i]
		res.Entry = e

		sym, err := r.Render(e)
		if err == nil && sym.Surface == nil {
			err = ErrNoSurface
		}
		if err != nil {
			res.Err = &EncodingError{Entry: e, Err: err}
			continue
		}
		res.Symbol = sym
	}
	return s, nil
}

// Surface returns the rendered barcode for the given form slot.
// The second return value is false if the slot has no entry or if
// rendering failed.
func (s *Session) Surface(slot int) (*image.RGBA, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Results {
		res := &s.Results[i]
		if res.Entry.Slot == slot && res.OK() {
			return res.Surface, true
		}
	}
	return nil, false
}

// Rendered returns the number of successfully rendered barcodes.
func (s *Session) Rendered() int {
	if s == nil {
		return 0
	}
	n := 0
	for i := range s.Results {
		if s.Results[i].OK() {
			n++
		}
	}
	return n
}

// Failures returns the encoding errors of the session, in slot order.
func (s *Session) Failures() []*EncodingError {
	if s == nil {
		return nil
	}
	var res []*EncodingError
	for i := range s.Results {
		var encErr *EncodingError
		if errors.As(s.Results[i].Err, &encErr) {
			res = append(res, encErr)
		}
	}
	return res
}

// Ready reports whether the session can be exported or printed.
func (s *Session) Ready() bool {
	return s != nil && len(s.Entries) > 0
}

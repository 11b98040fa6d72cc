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

import "strings"

// Fields gives read access to the state of the input form.
// Both [net/url.Values] and [FieldMap] implement this interface.
type Fields interface {
	Get(key string) string
}

// FieldMap is a [Fields] implementation backed by a map.
type FieldMap map[string]string

// Get returns the value of the named field, or "" if the field is absent.
func (m FieldMap) Get(key string) string {
	return m[key]
}

// Collect reads the chassis/engine pairs from the form fields.
//
// Both values of a pair are trimmed.  A pair is only included if both
// values are non-empty.  The result is ordered by slot and may be empty.
func Collect(f Fields) []Entry {
	var entries []Entry
	for slot := 1; slot <= Slots; slot++ {
		chassis := strings.TrimSpace(f.Get(ChassisField(slot)))
		engine := strings.TrimSpace(f.Get(EngineField(slot)))
		if chassis == "" || engine == "" {
			continue
		}
		entries = append(entries, Entry{
			Chassis: chassis,
			Engine:  engine,
			Slot:    slot,
		})
	}
	return entries
}

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
	"strings"

	"seehuhn.de/go/barsheet"
)

var collectCases = []Scenario{
	{
		Name: "single",
		Fields: barsheet.FieldMap{
			"chassisNo1": "ABC123",
			"engineNo1":  "ENG456",
		},
		Want: []barsheet.Entry{
			{Chassis: "ABC123", Engine: "ENG456", Slot: 1},
		},
	},
	{
		Name: "all_three",
		Fields: barsheet.FieldMap{
			"chassisNo1": "LSVAU2180N2183001",
			"engineNo1":  "CSS041923",
			"chassisNo2": "LSVAU2180N2183002",
			"engineNo2":  "CSS041924",
			"chassisNo3": "LSVAU2180N2183003",
			"engineNo3":  "CSS041925",
		},
		Want: []barsheet.Entry{
			{Chassis: "LSVAU2180N2183001", Engine: "CSS041923", Slot: 1},
			{Chassis: "LSVAU2180N2183002", Engine: "CSS041924", Slot: 2},
			{Chassis: "LSVAU2180N2183003", Engine: "CSS041925", Slot: 3},
		},
	},
	{
		Name: "gap",
		Fields: barsheet.FieldMap{
			"chassisNo1": "A1",
			"engineNo1":  "E1",
			"chassisNo2": "A2",
			"chassisNo3": "A3",
			"engineNo3":  "E3",
		},
		Want: []barsheet.Entry{
			{Chassis: "A1", Engine: "E1", Slot: 1},
			{Chassis: "A3", Engine: "E3", Slot: 3},
		},
	},
	{
		Name: "last_slot_only",
		Fields: barsheet.FieldMap{
			"engineNo1":  "E1",
			"chassisNo3": "A3",
			"engineNo3":  "E3",
		},
		Want: []barsheet.Entry{
			{Chassis: "A3", Engine: "E3", Slot: 3},
		},
	},
	{
		Name: "whitespace",
		Fields: barsheet.FieldMap{
			"chassisNo1": "  ABC123\t",
			"engineNo1":  " ENG456 ",
			"chassisNo2": "XYZ",
			"engineNo2":  "   ",
		},
		Want: []barsheet.Entry{
			{Chassis: "ABC123", Engine: "ENG456", Slot: 1},
		},
	},
	{
		Name:   "empty",
		Fields: barsheet.FieldMap{},
	},
	{
		Name: "only_halves",
		Fields: barsheet.FieldMap{
			"chassisNo1": "A1",
			"engineNo2":  "E2",
			"chassisNo3": " ",
			"engineNo3":  "E3",
		},
	},
	{
		Name: "unrelated_fields",
		Fields: barsheet.FieldMap{
			"chassisNo4": "A4",
			"engineNo4":  "E4",
			"chassisNo":  "A",
		},
	},
}

var encodeCases = []Scenario{
	{
		Name: "non_ascii_middle",
		Fields: barsheet.FieldMap{
			"chassisNo1": "ABC1",
			"engineNo1":  "E1",
			"chassisNo2": "底盘123",
			"engineNo2":  "E2",
			"chassisNo3": "ABC3",
			"engineNo3":  "E3",
		},
		Want: []barsheet.Entry{
			{Chassis: "ABC1", Engine: "E1", Slot: 1},
			{Chassis: "底盘123", Engine: "E2", Slot: 2},
			{Chassis: "ABC3", Engine: "E3", Slot: 3},
		},
		Failed: []int{2},
	},
	{
		Name: "too_long",
		Fields: barsheet.FieldMap{
			"chassisNo1": strings.Repeat("7", 81),
			"engineNo1":  "E1",
		},
		Want: []barsheet.Entry{
			{Chassis: strings.Repeat("7", 81), Engine: "E1", Slot: 1},
		},
		Failed: []int{1},
	},
	{
		Name: "engine_not_encoded",
		Fields: barsheet.FieldMap{
			"chassisNo1": "ABC1",
			"engineNo1":  "发动机",
		},
		Want: []barsheet.Entry{
			{Chassis: "ABC1", Engine: "发动机", Slot: 1},
		},
	},
	{
		Name: "punctuation",
		Fields: barsheet.FieldMap{
			"chassisNo1": "ab-12/x.y z",
			"engineNo1":  "#1",
		},
		Want: []barsheet.Entry{
			{Chassis: "ab-12/x.y z", Engine: "#1", Slot: 1},
		},
	},
}

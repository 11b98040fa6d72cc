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

package barsheet_test

import (
	"errors"
	"fmt"
	"image"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/symbol"
	"seehuhn.de/go/barsheet/testcases"
)

func TestCollect(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.Forms)) {
		for _, sc := range testcases.Forms[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				got := barsheet.Collect(sc.Fields)
				assert.Equal(t, sc.Want, got)

				prev := 0
				for _, e := range got {
					assert.Greater(t, e.Slot, prev)
					assert.LessOrEqual(t, e.Slot, barsheet.Slots)
					assert.NotEmpty(t, e.Chassis)
					assert.NotEmpty(t, e.Engine)
					assert.Equal(t, strings.TrimSpace(e.Chassis), e.Chassis)
					assert.Equal(t, strings.TrimSpace(e.Engine), e.Engine)
					prev = e.Slot
				}
			})
		}
	}
}

func TestGenerate(t *testing.T) {
	r, err := symbol.NewRenderer(symbol.Code128{}, symbol.DefaultOptions())
	require.NoError(t, err)

	for _, category := range slices.Sorted(maps.Keys(testcases.Forms)) {
		for _, sc := range testcases.Forms[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				s, err := barsheet.Generate(sc.Fields, r)
				if len(sc.Want) == 0 {
					require.ErrorIs(t, err, barsheet.ErrNoCompletePair)
					assert.Nil(t, s)
					assert.False(t, s.Ready())
					return
				}
				require.NoError(t, err)
				require.True(t, s.Ready())
				assert.Equal(t, sc.Want, s.Entries)
				require.Len(t, s.Results, len(s.Entries))

				var failed []int
				for _, f := range s.Failures() {
					failed = append(failed, f.Entry.Slot)
				}
				assert.Equal(t, sc.Failed, failed)
				assert.Equal(t, len(sc.Want)-len(sc.Failed), s.Rendered())

				for i := range s.Results {
					res := &s.Results[i]
					assert.Equal(t, s.Entries[i], res.Entry)
					_, ok := s.Surface(res.Entry.Slot)
					assert.Equal(t, res.OK(), ok)
				}
			})
		}
	}
}

func TestGenerateNoEncoder(t *testing.T) {
	s, err := barsheet.Generate(barsheet.FieldMap{"chassisNo1": "A", "engineNo1": "E"}, nil)
	require.ErrorIs(t, err, barsheet.ErrEncoderMissing)
	assert.Nil(t, s)
	assert.Equal(t, "条形码库未加载，请刷新页面重试！", barsheet.UserMessage(err))
}

// fakeRenderer paints a 1x1 surface, and fails for chassis identifiers
// listed in fail.  A nil error in fail gives an empty symbol.
type fakeRenderer struct {
	fail  map[string]error
	panic any
	calls int
}

func (f *fakeRenderer) Render(e barsheet.Entry) (barsheet.Symbol, error) {
	f.calls++
	if f.panic != nil {
		panic(f.panic)
	}
	if err, ok := f.fail[e.Chassis]; ok {
		return barsheet.Symbol{}, err
	}
	return barsheet.Symbol{
		Surface: image.NewRGBA(image.Rect(0, 0, 1, 1)),
		Modules: []bool{true},
	}, nil
}

func TestRenderContinuesAfterFailure(t *testing.T) {
	errBad := errors.New("bad input")
	r := &fakeRenderer{fail: map[string]error{"A2": errBad}}
	entries := []barsheet.Entry{
		{Chassis: "A1", Engine: "E1", Slot: 1},
		{Chassis: "A2", Engine: "E2", Slot: 2},
		{Chassis: "A3", Engine: "E3", Slot: 3},
	}

	s, err := barsheet.Render(entries, r)
	require.NoError(t, err)
	assert.Equal(t, 3, r.calls)
	assert.Equal(t, 2, s.Rendered())

	res := s.Results[1]
	assert.False(t, res.OK())
	require.ErrorIs(t, res.Err, errBad)
	var encErr *barsheet.EncodingError
	require.ErrorAs(t, res.Err, &encErr)
	assert.Equal(t, 2, encErr.Entry.Slot)

	assert.Nil(t, res.Label())
	assert.Equal(t, "错误: bad input", res.Indicator())
	assert.Equal(t, "生成条形码时出错: bad input", barsheet.UserMessage(res.Err))

	assert.Equal(t, []string{"A1", "E1"}, s.Results[0].Label())
	assert.Empty(t, s.Results[0].Indicator())
}

func TestRenderNoSurface(t *testing.T) {
	r := &fakeRenderer{fail: map[string]error{"A1": nil}}
	s, err := barsheet.Render([]barsheet.Entry{
		{Chassis: "A1", Engine: "E1", Slot: 1},
		{Chassis: "A2", Engine: "E2", Slot: 2},
	}, r)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Rendered())

	res := s.Results[0]
	assert.False(t, res.OK())
	assert.Nil(t, res.Surface)
	require.ErrorIs(t, res.Err, barsheet.ErrNoSurface)
	var encErr *barsheet.EncodingError
	require.ErrorAs(t, res.Err, &encErr)
	assert.Equal(t, 1, encErr.Entry.Slot)
	assert.Equal(t, []*barsheet.EncodingError{encErr}, s.Failures())

	_, ok := s.Surface(1)
	assert.False(t, ok)
	assert.True(t, s.Results[1].OK())
}

func TestRenderPanic(t *testing.T) {
	r := &fakeRenderer{panic: "out of memory"}
	s, err := barsheet.Render([]barsheet.Entry{{Chassis: "A", Engine: "E", Slot: 1}}, r)
	assert.Nil(t, s)

	var batchErr *barsheet.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, "out of memory", batchErr.Cause)
	assert.Equal(t, "生成条形码时出错，请检查输入。", barsheet.UserMessage(err))

	cause := errors.New("boom")
	r = &fakeRenderer{panic: cause}
	_, err = barsheet.Render([]barsheet.Entry{{Chassis: "A", Engine: "E", Slot: 1}}, r)
	require.ErrorIs(t, err, cause)
}

func TestRenderLimits(t *testing.T) {
	_, err := barsheet.Render(nil, &fakeRenderer{})
	require.ErrorIs(t, err, barsheet.ErrNoCompletePair)

	var entries []barsheet.Entry
	for i := range 5 {
		entries = append(entries, barsheet.Entry{
			Chassis: fmt.Sprintf("A%d", i+1),
			Engine:  fmt.Sprintf("E%d", i+1),
			Slot:    i + 1,
		})
	}
	r := &fakeRenderer{}
	s, err := barsheet.Render(entries, r)
	require.NoError(t, err)
	assert.Len(t, s.Entries, barsheet.Slots)
	assert.Equal(t, barsheet.Slots, r.calls)
}

func TestSessionIDs(t *testing.T) {
	f := barsheet.FieldMap{"chassisNo1": "A", "engineNo1": "E"}
	a, err := barsheet.Generate(f, &fakeRenderer{})
	require.NoError(t, err)
	b, err := barsheet.Generate(f, &fakeRenderer{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNilSession(t *testing.T) {
	var s *barsheet.Session
	assert.False(t, s.Ready())
	assert.Zero(t, s.Rendered())
	assert.Nil(t, s.Failures())
	_, ok := s.Surface(1)
	assert.False(t, ok)
}

func TestUserMessage(t *testing.T) {
	for _, test := range []struct {
		err  error
		want string
	}{
		{nil, ""},
		{barsheet.ErrEncoderMissing, "条形码库未加载，请刷新页面重试！"},
		{barsheet.ErrNoCompletePair, "请至少输入一组完整的Chassis No和Engine No！"},
		{fmt.Errorf("download: %w", barsheet.ErrNotGenerated), "请先生成条形码！"},
		{&barsheet.BatchError{Cause: 42}, "生成条形码时出错，请检查输入。"},
		{errors.New("disk full"), "disk full"},
	} {
		assert.Equal(t, test.want, barsheet.UserMessage(test.err))
	}
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "chassisNo1", barsheet.ChassisField(1))
	assert.Equal(t, "engineNo3", barsheet.EngineField(3))
}

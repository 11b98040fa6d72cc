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

package text

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"seehuhn.de/go/geom/path"
)

func TestWidth(t *testing.T) {
	f, err := Bold(42)
	if err != nil {
		t.Fatal(err)
	}

	w1, err := f.Width("A")
	if err != nil {
		t.Fatal(err)
	}
	if w1 <= 0 {
		t.Fatalf("width of %q is %g", "A", w1)
	}

	w0, err := f.Width("")
	if err != nil {
		t.Fatal(err)
	}
	if w0 != 0 {
		t.Errorf("width of empty string is %g", w0)
	}

	w2, err := f.Width("AB")
	if err != nil {
		t.Fatal(err)
	}
	if w2 <= w1 {
		t.Errorf("width of %q is %g, width of %q is %g", "AB", w2, "A", w1)
	}
}

func TestWidthScales(t *testing.T) {
	small, err := Bold(21)
	if err != nil {
		t.Fatal(err)
	}
	large, err := Bold(42)
	if err != nil {
		t.Fatal(err)
	}
	ws, _ := small.Width("ENG456")
	wl, _ := large.Width("ENG456")
	if math.Abs(wl-2*ws) > 1 {
		t.Errorf("width at 42px is %g, at 21px is %g", wl, ws)
	}
}

func TestMetrics(t *testing.T) {
	f, err := Bold(42)
	if err != nil {
		t.Fatal(err)
	}
	ascent, descent, err := f.Metrics()
	if err != nil {
		t.Fatal(err)
	}
	if ascent <= 0 || descent <= 0 || ascent+descent > 2*42 {
		t.Errorf("ascent %g, descent %g", ascent, descent)
	}
}

func TestOutlineAlign(t *testing.T) {
	f, err := Bold(42)
	if err != nil {
		t.Fatal(err)
	}
	const s = "LSVAU2180N2183001"
	w, err := f.Width(s)
	if err != nil {
		t.Fatal(err)
	}

	for _, test := range []struct {
		align  Align
		x      float64
		center float64
	}{
		{Left, 100, 100 + w/2},
		{Center, 620, 620},
		{Right, 1000, 1000 - w/2},
	} {
		p, err := f.Outline(s, test.x, 300, test.align)
		if err != nil {
			t.Fatal(err)
		}
		xMin, xMax, yMin, yMax := bounds(p)

		// glyph ink sits inside the advance box, up to side bearings
		mid := (xMin + xMax) / 2
		if math.Abs(mid-test.center) > 5 {
			t.Errorf("align %d: ink centred at %g, expected %g", test.align, mid, test.center)
		}
		if yMax > 300+1 || yMin < 300-42 {
			t.Errorf("align %d: y range [%g, %g] outside line box", test.align, yMin, yMax)
		}
	}
}

func TestOutlineMissingGlyph(t *testing.T) {
	f, err := Bold(20)
	if err != nil {
		t.Fatal(err)
	}
	// Go fonts have no CJK glyphs; these render as .notdef
	p, err := f.Outline("底盘", 0, 20, Left)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Cmds) == 0 {
		t.Error("no outline for missing glyphs")
	}
}

func TestFallback(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "cmapTest.ttf"))
	if err != nil {
		t.Fatal(err)
	}
	bold, err := Bold(42)
	if err != nil {
		t.Fatal(err)
	}
	extra, err := NewFace(data, 42)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Bold(42, data)
	if err != nil {
		t.Fatal(err)
	}

	outline := func(f *Face, s string) *path.Data {
		t.Helper()
		p, err := f.Outline(s, 10, 50, Left)
		if err != nil {
			t.Fatal(err)
		}
		return p
	}

	// U+4E2D is missing from Go Bold and is taken from the fallback
	got := outline(f, "中")
	if !reflect.DeepEqual(got, outline(extra, "中")) {
		t.Error("U+4E2D not drawn with the fallback font")
	}
	if reflect.DeepEqual(got, outline(bold, "中")) {
		t.Error("U+4E2D drawn as .notdef")
	}

	// characters covered by Go Bold ignore the fallback
	if !reflect.DeepEqual(outline(f, "A"), outline(bold, "A")) {
		t.Error("A not drawn with Go Bold")
	}

	// characters missing everywhere use the .notdef glyph of Go Bold
	if !reflect.DeepEqual(outline(f, "错"), outline(bold, "错")) {
		t.Error("missing glyph not drawn as Go Bold .notdef")
	}

	wA, _ := bold.Width("A")
	wCJK, _ := extra.Width("中")
	w, err := f.Width("A中")
	if err != nil {
		t.Fatal(err)
	}
	if w != wA+wCJK {
		t.Errorf("width of mixed line is %g, expected %g", w, wA+wCJK)
	}
}

// TestFallbackCJK draws the error indicator with a real CJK font.  The
// font is taken from $BARSHEET_FONT or from a few common install
// locations.
func TestFallbackCJK(t *testing.T) {
	candidates := []string{
		os.Getenv("BARSHEET_FONT"),
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Bold.ttc",
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/noto-cjk/NotoSansCJK-Bold.ttc",
		"/usr/share/fonts/google-noto-cjk/NotoSansCJK-Bold.ttc",
		"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
		"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
		"/System/Library/Fonts/PingFang.ttc",
	}
	var data []byte
	for _, fname := range candidates {
		if fname == "" {
			continue
		}
		if d, err := os.ReadFile(fname); err == nil {
			data = d
			break
		}
	}
	if data == nil {
		t.Skip("no CJK font found, set BARSHEET_FONT")
	}

	bold, err := Bold(22.4)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Bold(22.4, data)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "错误" {
		fnt, gid, err := f.glyph(r)
		if err != nil {
			t.Fatal(err)
		}
		if gid == 0 || fnt == f.font {
			t.Errorf("%q: glyph %d from the primary font", r, gid)
		}
	}
	got, err := f.Outline("错误", 0, 30, Left)
	if err != nil {
		t.Fatal(err)
	}
	notdef, err := bold.Outline("错误", 0, 30, Left)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Cmds) == 0 || reflect.DeepEqual(got, notdef) {
		t.Error("CJK text drawn as .notdef")
	}
}

func TestNewFaceErrors(t *testing.T) {
	if _, err := NewFace([]byte("not a font"), 12); err == nil {
		t.Error("garbage data accepted")
	}
	if _, err := Bold(0); err == nil {
		t.Error("zero size accepted")
	}
	if _, err := Bold(12, []byte("not a font")); err == nil {
		t.Error("garbage fallback accepted")
	}
}

func bounds(p *path.Data) (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, c := range p.Coords {
		xMin = min(xMin, c.X)
		xMax = max(xMax, c.X)
		yMin = min(yMin, c.Y)
		yMax = max(yMax, c.Y)
	}
	return
}

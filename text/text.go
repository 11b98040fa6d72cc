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

// Package text converts strings into glyph outlines.
//
// Outlines are returned as [path.Data] in pixel coordinates with y
// increasing downwards, so that they can be filled by a raster canvas or
// written into a PDF content stream.
package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Align selects the horizontal reference point of a text line.
type Align int

const (
	Left Align = iota
	Center
	Right
)

// Face is a font at a fixed pixel size, together with an optional list
// of fallback fonts.  Each character is drawn with the first font which
// has a glyph for it.  Characters missing from all fonts are drawn using
// the .notdef glyph of the primary font.
//
// A Face is not safe for concurrent use.
type Face struct {
	font      *sfnt.Font
	fallbacks []*sfnt.Font
	size      float64
	ppem      fixed.Int26_6
	buf       sfnt.Buffer
}

// NewFace parses a TrueType or OpenType font and returns a face of the
// given size in pixels.
func NewFace(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", size)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Face{
		font: f,
		size: size,
		ppem: fixed.Int26_6(size*64 + 0.5),
	}, nil
}

// Bold returns the Go Bold face at the given size in pixels.  The fonts
// in fallbacks are consulted, in order, for characters which Go Bold
// does not cover.
func Bold(size float64, fallbacks ...[]byte) (*Face, error) {
	f, err := NewFace(gobold.TTF, size)
	if err != nil {
		return nil, err
	}
	for _, data := range fallbacks {
		if err := f.AddFallback(data); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// AddFallback appends a font to the fallback list of f.  The data may be
// a single font or a font collection; for collections the first font is
// used.
func (f *Face) AddFallback(data []byte) error {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return fmt.Errorf("parsing fallback font: %w", err)
	}
	if c.NumFonts() == 0 {
		return errors.New("parsing fallback font: empty collection")
	}
	fb, err := c.Font(0)
	if err != nil {
		return fmt.Errorf("parsing fallback font: %w", err)
	}
	f.fallbacks = append(f.fallbacks, fb)
	return nil
}

// Size returns the font size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the ascent and descent of the face, in pixels.
// Both values are positive.
func (f *Face) Metrics() (ascent, descent float64, err error) {
	m, err := f.font.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return 0, 0, err
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent), nil
}

// Width returns the advance width of s in pixels, including kerning.
func (f *Face) Width(s string) (float64, error) {
	w, err := f.walk(s, nil)
	return fromFixed(w), err
}

// Outline returns the outlines of the glyphs of s.  The origin (x, y) is
// on the baseline; align chooses whether it marks the left end, the
// centre, or the right end of the line.
func (f *Face) Outline(s string, x, y float64, align Align) (*path.Data, error) {
	switch align {
	case Center, Right:
		w, err := f.Width(s)
		if err != nil {
			return nil, err
		}
		if align == Center {
			x -= w / 2
		} else {
			x -= w
		}
	}

	p := &path.Data{}
	_, err := f.walk(s, func(fnt *sfnt.Font, gid sfnt.GlyphIndex, pen fixed.Int26_6) error {
		segs, err := fnt.LoadGlyph(&f.buf, gid, f.ppem, nil)
		if err != nil {
			return err
		}
		ox := x + fromFixed(pen)
		pt := func(q fixed.Point26_6) vec.Vec2 {
			return vec.Vec2{X: ox + fromFixed(q.X), Y: y + fromFixed(q.Y)}
		}
		open := false
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p = p.Close()
				}
				p = p.MoveTo(pt(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				p = p.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				p = p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				p = p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
			}
		}
		if open {
			p = p.Close()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// walk calls fn for every glyph of s, together with the font the glyph
// is taken from and the pen position where the glyph starts.  The final
// pen position is returned.  fn may be nil.
//
// Kerning is only applied between adjacent glyphs of the same font.
func (f *Face) walk(s string, fn func(fnt *sfnt.Font, gid sfnt.GlyphIndex, pen fixed.Int26_6) error) (fixed.Int26_6, error) {
	var pen fixed.Int26_6
	var prevFont *sfnt.Font
	var prev sfnt.GlyphIndex
	for _, r := range s {
		fnt, gid, err := f.glyph(r)
		if err != nil {
			return 0, err
		}
		if fnt == prevFont {
			k, err := fnt.Kern(&f.buf, prev, gid, f.ppem, font.HintingNone)
			if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
				return 0, err
			}
			pen += k
		}
		if fn != nil {
			if err := fn(fnt, gid, pen); err != nil {
				return 0, err
			}
		}
		adv, err := fnt.GlyphAdvance(&f.buf, gid, f.ppem, font.HintingNone)
		if err != nil {
			return 0, err
		}
		pen += adv
		prevFont, prev = fnt, gid
	}
	return pen, nil
}

// glyph finds the font which draws r.  Glyph index 0 is .notdef.
func (f *Face) glyph(r rune) (*sfnt.Font, sfnt.GlyphIndex, error) {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, 0, fmt.Errorf("glyph for %q: %w", r, err)
	}
	if gid != 0 {
		return f.font, gid, nil
	}
	for _, fb := range f.fallbacks {
		fgid, err := fb.GlyphIndex(&f.buf, r)
		if err != nil {
			return nil, 0, fmt.Errorf("glyph for %q: %w", r, err)
		}
		if fgid != 0 {
			return fb, fgid, nil
		}
	}
	return f.font, 0, nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

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

// Package output delivers composed pages: as PNG or PDF files, or to the
// host's print system.
package output

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/page"
)

// Filename returns the download name of a page with n entries.
func Filename(n int) string {
	return fmt.Sprintf("hsa_barcodes_%d.png", n)
}

// PDFFilename returns the name of the PDF version of a page with n entries.
func PDFFilename(n int) string {
	return fmt.Sprintf("hsa_barcodes_%d.pdf", n)
}

// Exporter writes composed pages as PNG images.
type Exporter struct {
	comp *page.Compositor
	log  zerolog.Logger
}

// NewExporter returns an exporter which uses comp to compose pages.
func NewExporter(comp *page.Compositor, log zerolog.Logger) *Exporter {
	return &Exporter{comp: comp, log: log}
}

// Export composes the page for s and writes it to w in PNG format.
// The returned name is the file name under which the image should be
// saved.
//
// If s holds no entries, [barsheet.ErrNotGenerated] is returned and
// nothing is written.
func (e *Exporter) Export(s *barsheet.Session, w io.Writer) (string, error) {
	if !s.Ready() {
		return "", barsheet.ErrNotGenerated
	}
	img, err := e.comp.Compose(s)
	if err != nil {
		return "", err
	}
	if err := png.Encode(w, img); err != nil {
		return "", fmt.Errorf("encoding page: %w", err)
	}

	name := Filename(len(s.Entries))
	e.log.Info().
		Stringer("session", s.ID).
		Str("name", name).
		Int("entries", len(s.Entries)).
		Msg("page exported")
	return name, nil
}

// ExportFile writes the page for s into the directory dir and returns the
// path of the new file.
func (e *Exporter) ExportFile(s *barsheet.Session, dir string) (string, error) {
	if !s.Ready() {
		return "", barsheet.ErrNotGenerated
	}
	fname := filepath.Join(dir, Filename(len(s.Entries)))

	f, err := os.Create(fname)
	if err != nil {
		return "", err
	}
	buf := bufio.NewWriter(f)
	_, err = e.Export(s, buf)
	if err == nil {
		err = buf.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname) // best effort, err is reported instead
		return "", fmt.Errorf("%s: %w", fname, err)
	}
	return fname, nil
}

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

// Package server provides the browser form for generating barcode sheets.
//
// The server keeps a single current session.  All actions are serialised,
// so that a generate action always replaces the complete session.
package server

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/output"
	"seehuhn.de/go/barsheet/page"
	"seehuhn.de/go/barsheet/symbol"
)

// Config collects the collaborators of a [Server].
type Config struct {
	// Renderer paints the barcodes.  If Renderer is nil, the server
	// reports the missing encoder and refuses to generate.
	Renderer barsheet.Renderer

	Compositor    *page.Compositor
	Printer       output.Printer
	SymbolOptions symbol.Options
	Log           zerolog.Logger
}

// Server serves the barcode form.
type Server struct {
	renderer barsheet.Renderer
	comp     *page.Compositor
	exporter *output.Exporter
	printer  output.Printer
	symOpts  symbol.Options
	log      zerolog.Logger

	mu       sync.Mutex
	session  *barsheet.Session
	fields   barsheet.FieldMap
	startErr error // reported once, on the first page view
}

// New returns a server for the given configuration.
func New(cfg Config) *Server {
	printer := cfg.Printer
	if printer == nil {
		printer = output.NoPrinter{}
	}
	s := &Server{
		renderer: cfg.Renderer,
		comp:     cfg.Compositor,
		exporter: output.NewExporter(cfg.Compositor, cfg.Log),
		printer:  printer,
		symOpts:  cfg.SymbolOptions,
		log:      cfg.Log,
		fields:   barsheet.FieldMap{},
	}
	if cfg.Renderer == nil {
		s.startErr = barsheet.ErrEncoderMissing
		s.log.Error().Err(s.startErr).Msg("barcode generation disabled")
	}
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Get("/barcode/{slot}.png", s.handleBarcode)
	r.Get("/download", s.handleDownload)
	r.Get("/download.pdf", s.handleDownloadPDF)
	r.Post("/print", s.handlePrint)
	return r
}

// Session returns the current session, or nil before the first
// successful generate action.
func (s *Server) Session() *barsheet.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var alerts []string
	if s.startErr != nil {
		alerts = append(alerts, barsheet.UserMessage(s.startErr))
		s.startErr = nil
	}
	s.render(w, http.StatusOK, alerts)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fields := barsheet.FieldMap{}
	for slot := 1; slot <= barsheet.Slots; slot++ {
		for _, key := range []string{barsheet.ChassisField(slot), barsheet.EngineField(slot)} {
			fields[key] = r.PostForm.Get(key)
		}
	}
	s.fields = fields

	log := s.log.With().Str("request", chimiddleware.GetReqID(r.Context())).Logger()

	session, err := barsheet.Generate(r.PostForm, s.renderer)
	if err != nil {
		log.Warn().Err(err).Msg("generate failed")
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, barsheet.ErrNoCompletePair):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, barsheet.ErrEncoderMissing):
			status = http.StatusServiceUnavailable
		}
		s.render(w, status, []string{barsheet.UserMessage(err)})
		return
	}
	s.session = session

	var alerts []string
	for _, failure := range session.Failures() {
		log.Warn().Err(failure).Int("slot", failure.Entry.Slot).Msg("barcode not rendered")
		alerts = append(alerts, barsheet.UserMessage(failure))
	}
	log.Info().
		Stringer("session", session.ID).
		Int("entries", len(session.Entries)).
		Int("rendered", session.Rendered()).
		Msg("barcodes generated")
	s.render(w, http.StatusOK, alerts)
}

func (s *Server) handleBarcode(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	surface, ok := s.session.Surface(slot)
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, surface); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := &bytes.Buffer{}
	name, err := s.exporter.Export(s.session, buf)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Write(buf.Bytes())
}

func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Ready() {
		s.fail(w, barsheet.ErrNotGenerated)
		return
	}

	tmp, err := os.CreateTemp("", "barsheet-*.pdf")
	if err != nil {
		s.fail(w, err)
		return
	}
	fname := tmp.Name()
	tmp.Close()
	defer os.Remove(fname)

	err = output.WritePDF(fname, s.session, s.comp.Layout(), s.symOpts)
	if err != nil {
		s.fail(w, err)
		return
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		s.fail(w, err)
		return
	}

	name := output.PDFFilename(len(s.session.Entries))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Write(data)
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	img, err := s.comp.Preview(s.session)
	if err == nil {
		err = s.printer.Print(r.Context(), img)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("print failed")
		status := http.StatusInternalServerError
		if errors.Is(err, barsheet.ErrNotGenerated) {
			status = http.StatusConflict
		}
		s.render(w, status, []string{barsheet.UserMessage(err)})
		return
	}
	s.render(w, http.StatusOK, []string{msgPrinted})
}

// fail reports an error of a download action.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, barsheet.ErrNotGenerated) {
		status = http.StatusConflict
	} else {
		s.log.Error().Err(err).Msg("download failed")
	}
	http.Error(w, barsheet.UserMessage(err), status)
}

const msgPrinted = "已发送到打印机。"

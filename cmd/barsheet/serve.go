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

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/barsheet/output"
	"seehuhn.de/go/barsheet/page"
	"seehuhn.de/go/barsheet/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the barcode form over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, opts, err := newRenderer()
		if err != nil {
			return err
		}
		layout, err := cfg.Layout()
		if err != nil {
			return err
		}
		comp, err := page.NewCompositor(layout, log)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Renderer:   r,
			Compositor: comp,
			Printer: &output.CommandPrinter{
				Command: cfg.Print.Command,
				Args:    cfg.Print.Args,
				Log:     log,
			},
			SymbolOptions: opts,
			Log:           log,
		})

		addr := serveAddr
		if addr == "" {
			addr = cfg.Listen
		}
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			log.Info().Str("addr", addr).Msg("listening")
			errc <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = httpServer.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

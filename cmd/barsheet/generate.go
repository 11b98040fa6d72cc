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
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/output"
	"seehuhn.de/go/barsheet/page"
)

var (
	genValues [2 * barsheet.Slots]string
	genOut    string
	genPDF    bool
	genPrint  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a barcode page from the command line",
	RunE: func(cmd *cobra.Command, args []string) error {
		genFields := barsheet.FieldMap{}
		for slot := 1; slot <= barsheet.Slots; slot++ {
			genFields[barsheet.ChassisField(slot)] = genValues[2*slot-2]
			genFields[barsheet.EngineField(slot)] = genValues[2*slot-1]
		}

		r, opts, err := newRenderer()
		if err != nil {
			return err
		}
		session, err := barsheet.Generate(genFields, r)
		if err != nil {
			return errors.New(barsheet.UserMessage(err))
		}
		for _, failure := range session.Failures() {
			log.Warn().Err(failure).Msg(barsheet.UserMessage(failure))
		}

		layout, err := cfg.Layout()
		if err != nil {
			return err
		}
		comp, err := page.NewCompositor(layout, log)
		if err != nil {
			return err
		}

		dir := genOut
		if dir == "" {
			dir = cfg.OutputDir
		}
		fname, err := output.NewExporter(comp, log).ExportFile(session, dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), fname)

		if genPDF {
			pdfName := filepath.Join(dir, output.PDFFilename(len(session.Entries)))
			if err := output.WritePDF(pdfName, session, layout, opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pdfName)
		}

		if genPrint {
			img, err := comp.Preview(session)
			if err != nil {
				return err
			}
			p := &output.CommandPrinter{
				Command: cfg.Print.Command,
				Args:    cfg.Print.Args,
				Log:     log,
			}
			if err := p.Print(cmd.Context(), img); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	flags := generateCmd.Flags()
	for slot := 1; slot <= barsheet.Slots; slot++ {
		n := strconv.Itoa(slot)
		flags.StringVar(&genValues[2*slot-2], "chassis"+n, "", "chassis number for slot "+n)
		flags.StringVar(&genValues[2*slot-1], "engine"+n, "", "engine number for slot "+n)
	}
	flags.StringVarP(&genOut, "out", "o", "", "output directory (default from config)")
	flags.BoolVar(&genPDF, "pdf", false, "also write a vector PDF version")
	flags.BoolVar(&genPrint, "print", false, "send the page to the printer")
}

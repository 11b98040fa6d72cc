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

// Barsheet prints chassis and engine numbers as CODE128 barcodes on an
// A4 page.
//
// Usage:
//
//	barsheet generate --chassis1 ABC123 --engine1 ENG456 [--pdf] [--print]
//	barsheet serve [--addr localhost:8080]
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seehuhn.de/go/barsheet"
	"seehuhn.de/go/barsheet/config"
	"seehuhn.de/go/barsheet/symbol"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "barsheet",
	Short: "Barcode label sheets for chassis and engine numbers",
	Long: `Barsheet renders up to three chassis/engine number pairs as CODE128
barcodes, lays them out on an A4 page at 150 DPI and saves or prints
the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load() // .env is optional

		if cfgFile == "" {
			cfgFile = os.Getenv("BARSHEET_CONFIG")
		}
		if cfgFile != "" {
			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		} else {
			cfg = config.Default()
		}
		if font := os.Getenv("BARSHEET_FONT"); font != "" {
			cfg.Font = font
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		l, err := newLogger(level, cfg.Log.Format)
		if err != nil {
			return err
		}
		log = l
		log.Debug().Str("config", cfgFile).Str("font", cfg.Font).Msg("configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default $BARSHEET_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", level)
	}

	var logger zerolog.Logger
	switch format {
	case "json":
		logger = zerolog.New(os.Stderr)
	case "console", "":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}
	return logger.Level(lvl).With().Timestamp().Logger(), nil
}

// newRenderer returns the barcode renderer described by the configuration.
// The result is nil if no encoder is available, so that callers can
// report [barsheet.ErrEncoderMissing] through the normal error path.
func newRenderer() (barsheet.Renderer, symbol.Options, error) {
	opts, err := cfg.SymbolOptions()
	if err != nil {
		return nil, opts, err
	}
	enc, err := symbol.NewEncoder(opts.Format)
	if err != nil {
		log.Error().Err(err).Str("format", opts.Format).Msg("no barcode encoder")
		return nil, opts, nil
	}
	r, err := symbol.NewRenderer(enc, opts)
	if err != nil {
		return nil, opts, err
	}
	return r, opts, nil
}

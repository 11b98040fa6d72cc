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

package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Printer hands an image to the host's print system.
type Printer interface {
	Print(ctx context.Context, img image.Image) error
}

// CommandPrinter prints by running an external command, "lp" by default.
// The image is written to a temporary PNG file whose name is appended to
// the argument list.
type CommandPrinter struct {
	Command string
	Args    []string
	Log     zerolog.Logger
}

// Print implements the [Printer] interface.
func (p *CommandPrinter) Print(ctx context.Context, img image.Image) error {
	command := p.Command
	if command == "" {
		command = "lp"
	}

	f, err := os.CreateTemp("", "barsheet-*.png")
	if err != nil {
		return err
	}
	fname := f.Name()
	defer os.Remove(fname)

	err = png.Encode(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing print file: %w", err)
	}

	args := append(append([]string(nil), p.Args...), fname)
	cmd := exec.CommandContext(ctx, command, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	p.Log.Info().Str("command", command).Strs("args", args).Msg("printing")
	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(out.Bytes())
		if len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", command, err, msg)
		}
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}

// ErrNoPrinter is returned by [NoPrinter].
var ErrNoPrinter = errors.New("printing is not configured")

// NoPrinter is a [Printer] which always fails.
type NoPrinter struct{}

// Print implements the [Printer] interface.
func (NoPrinter) Print(context.Context, image.Image) error {
	return ErrNoPrinter
}

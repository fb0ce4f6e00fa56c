// seehuhn.de/go/conformal - visualise conformal maps on coordinate grids
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

// Package conformal draws coordinate grids through complex functions.
//
// A [Frame] collects everything needed to draw one picture: the grid lines
// of the window chosen in a [view.State], mapped through the selected
// function and placed on the screen, together with the two coordinate axes.
// Frames can be rendered to grayscale coverage buffers, RGBA images, PNG
// files and PDF files.
package conformal

//go:generate go run ./scenes/export

import (
	"log/slog"

	"seehuhn.de/go/conformal/internal/logging"
)

// SetLogger installs l as the logger for all packages of the module.
// By default nothing is logged. Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

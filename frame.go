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

package conformal

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/conformal/grid"
	"seehuhn.de/go/conformal/internal/logging"
	"seehuhn.de/go/conformal/view"
)

// MaxSize is the largest supported image width or height, in pixels.
const MaxSize = 1 << 14

// ErrSize is returned for image sizes outside 1..MaxSize.
var ErrSize = errors.New("invalid image size")

// Line widths in pixels.
const (
	gridLineWidth = 2
	axisLineWidth = 1
)

// Frame is one picture of the mapped grid, in pixel coordinates.
// The origin is the top left corner of the image and y points down.
type Frame struct {
	Width, Height int

	// State is the view state the frame was built from.
	State view.State

	// Grid describes the sampling of the source window.
	Grid grid.Grid

	// Lines holds one subpath per grid line. Lines are broken where the
	// function has no finite value.
	Lines *path.Data

	// Axes holds the shafts of the two coordinate axis arrows and Heads
	// holds their closed triangular heads.
	Axes, Heads *path.Data

	// Vertices is the number of mapped points in Lines and Dropped is the
	// number of grid points without a finite image.
	Vertices, Dropped int

	// Legend enables a short description of the state in RGBA and PNG
	// output.
	Legend bool
}

// NewFrame maps the grid of st through the selected function and places
// the result on a width×height image.
func NewFrame(st view.State, width, height int) (*Frame, error) {
	if width < 1 || width > MaxSize || height < 1 || height > MaxSize {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrSize)
	}
	f, err := st.Mapping()
	if err != nil {
		return nil, err
	}

	fr := &Frame{
		Width:  width,
		Height: height,
		State:  st,
		Grid:   st.Grid(),
		Lines:  &path.Data{},
	}
	m := st.ScreenMatrix(width, height)

	penDown := false
	for p, last := range fr.Grid.All() {
		q := view.ToScreen(m, f(p.Complex()))
		if finite(q) {
			if penDown {
				fr.Lines = fr.Lines.LineTo(q)
			} else {
				fr.Lines = fr.Lines.MoveTo(q)
				penDown = true
			}
			fr.Vertices++
		} else {
			penDown = false
			fr.Dropped++
		}
		if last {
			penDown = false
		}
	}

	fr.Axes, fr.Heads = axes(&st, width, height)

	logging.Logger().Debug("frame",
		"width", width, "height", height,
		"lines", fr.Grid.NumLines(),
		"vertices", fr.Vertices, "dropped", fr.Dropped)
	return fr, nil
}

// axes returns the arrows along the real and imaginary axis, from -1 to 1
// and from -i to i. The arrows are not mapped through the function.
func axes(st *view.State, width, height int) (shafts, heads *path.Data) {
	m := st.ScreenMatrix(width, height)
	k := st.PixelsPerUnit()
	headLength := 0.1 * k
	headWidth := 0.05 * k

	shafts = &path.Data{}
	heads = &path.Data{}
	for _, ends := range [2][2]complex64{{-1, 1}, {-1i, 1i}} {
		start := view.ToScreen(m, ends[0])
		tip := view.ToScreen(m, ends[1])
		d := tip.Sub(start)
		length := d.Length()
		if !(length > 0) || math.IsInf(length, 0) {
			continue
		}
		u := d.Mul(1 / length)
		n := vec.Vec2{X: -u.Y, Y: u.X}

		hl := min(headLength, length)
		base := tip.Sub(u.Mul(hl))
		shafts = shafts.MoveTo(start).LineTo(base)
		heads = heads.MoveTo(tip).
			LineTo(base.Add(n.Mul(headWidth))).
			LineTo(base.Sub(n.Mul(headWidth))).
			Close()
	}
	return shafts, heads
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

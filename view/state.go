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

// Package view holds the state of the visualisation: the window of the
// source plane which is covered by grid lines, the function applied to the
// grid, and the placement of the result on the screen.
//
// The state changes only through discrete input events ([KeyDown], [KeyUp],
// [Scroll]) and through the slider setters, which clamp every value to the
// range of its control.
package view

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/conformal/grid"
	"seehuhn.de/go/conformal/mapping"
)

// Ranges of the controls.
const (
	ScaleMin, ScaleMax           = 0, 10
	ResolutionMin, ResolutionMax = 0, 5
	BoundMin, BoundMax           = -15, 15
	ParameterMin, ParameterMax   = -3, 3
	SegmentMin, SegmentMax       = 1, 32
)

// State is the complete view state.
type State struct {
	// Scale is the natural logarithm of the number of pixels per unit.
	Scale float64 `json:"scale"`

	// Position is added to every mapped point before scaling.
	Position vec.Vec2 `json:"position"`

	// ApplyFunction selects whether the grid is drawn through Function
	// or as is.
	ApplyFunction bool `json:"apply_function"`

	// Function names the mapping, see [mapping.Names].
	Function string `json:"function"`

	// ParamRe and ParamIm form the complex parameter of the function.
	ParamRe float32 `json:"param_re"`
	ParamIm float32 `json:"param_im"`

	// Homotopy interpolates between the identity (0) and Function (1).
	Homotopy float32 `json:"homotopy"`

	// Resolution is the grid resolution slider, see [grid.Level].
	Resolution float32 `json:"resolution"`

	// SegmentResolution is the number of sample points per grid cell.
	SegmentResolution float32 `json:"segment_resolution"`

	XMin float32 `json:"x_min"`
	XMax float32 `json:"x_max"`
	YMin float32 `json:"y_min"`
	YMax float32 `json:"y_max"`

	held keySet
}

// Default returns the initial state of the visualisation.
func Default() State {
	return State{
		Scale:             5,
		ApplyFunction:     true,
		Function:          "mobius",
		ParamRe:           1,
		Homotopy:          1,
		Resolution:        2,
		SegmentResolution: 4,
		XMin:              0,
		XMax:              1,
		YMin:              0,
		YMax:              1,
	}
}

// Window returns the part of the source plane covered by grid lines.
func (s *State) Window() grid.Window {
	return grid.Window{XMin: s.XMin, XMax: s.XMax, YMin: s.YMin, YMax: s.YMax}
}

// Grid generates the grid lines for the current window and resolution.
func (s *State) Grid() grid.Grid {
	return grid.New(s.SegmentResolution, s.Resolution, s.Window())
}

// Parameter returns the complex parameter of the function.
func (s *State) Parameter() complex64 {
	return complex(s.ParamRe, s.ParamIm)
}

// Mapping returns the function through which the grid is drawn.
func (s *State) Mapping() (mapping.Func, error) {
	if !s.ApplyFunction {
		return mapping.Identity, nil
	}
	f, err := mapping.Lookup(s.Function, s.Parameter())
	if err != nil {
		return nil, err
	}
	return mapping.Homotopy(f, s.Homotopy), nil
}

// PixelsPerUnit returns the screen scale factor exp(Scale).
func (s *State) PixelsPerUnit() float64 {
	return math.Exp(s.Scale)
}

// ScreenMatrix returns the transformation from the target plane to the
// pixel coordinates of a width×height image. A point z is shifted by
// Position, scaled by exp(Scale), and placed relative to the image centre
// with the imaginary axis pointing up.
func (s *State) ScreenMatrix(width, height int) matrix.Matrix {
	k := s.PixelsPerUnit()
	cx := float64(width) / 2
	cy := float64(height) / 2
	return matrix.Matrix{
		k, 0,
		0, -k,
		cx + k*s.Position.X, cy - k*s.Position.Y,
	}
}

// ToScreen maps a point of the target plane to pixel coordinates using m.
func ToScreen(m matrix.Matrix, z complex64) vec.Vec2 {
	x, y := float64(real(z)), float64(imag(z))
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

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

package view

import "math"

func clamp[T float32 | float64](v, lo, hi T) T {
	if math.IsNaN(float64(v)) {
		return lo
	}
	return min(max(v, lo), hi)
}

// SetScale sets the logarithmic screen scale.
func (s *State) SetScale(v float64) {
	s.Scale = clamp(v, ScaleMin, ScaleMax)
}

// SetResolution sets the grid resolution slider.
func (s *State) SetResolution(v float32) {
	s.Resolution = clamp(v, ResolutionMin, ResolutionMax)
}

// SetSegmentResolution sets the number of sample points per grid cell.
func (s *State) SetSegmentResolution(v float32) {
	s.SegmentResolution = clamp(v, SegmentMin, SegmentMax)
}

// SetXMin sets the left edge of the window.
func (s *State) SetXMin(v float32) { s.XMin = clamp(v, BoundMin, BoundMax) }

// SetXMax sets the right edge of the window.
func (s *State) SetXMax(v float32) { s.XMax = clamp(v, BoundMin, BoundMax) }

// SetYMin sets the bottom edge of the window.
func (s *State) SetYMin(v float32) { s.YMin = clamp(v, BoundMin, BoundMax) }

// SetYMax sets the top edge of the window.
func (s *State) SetYMax(v float32) { s.YMax = clamp(v, BoundMin, BoundMax) }

// SetParameter sets the complex function parameter.
// Both parts are clamped separately.
func (s *State) SetParameter(re, im float32) {
	s.ParamRe = clamp(re, ParameterMin, ParameterMax)
	s.ParamIm = clamp(im, ParameterMin, ParameterMax)
}

// SetHomotopy sets the interpolation between identity and function.
func (s *State) SetHomotopy(t float32) {
	s.Homotopy = clamp(t, 0, 1)
}

// SetPosition sets the screen offset.
// Non-finite coordinates are replaced by zero.
func (s *State) SetPosition(x, y float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		y = 0
	}
	s.Position.X = x
	s.Position.Y = y
}

// Clamp brings every field into the range of its control.
// This is used after loading a state from a file.
func (s *State) Clamp() {
	s.SetScale(s.Scale)
	s.SetResolution(s.Resolution)
	s.SetSegmentResolution(s.SegmentResolution)
	s.SetXMin(s.XMin)
	s.SetXMax(s.XMax)
	s.SetYMin(s.YMin)
	s.SetYMax(s.YMax)
	s.SetParameter(s.ParamRe, s.ParamIm)
	s.SetHomotopy(s.Homotopy)
	s.SetPosition(s.Position.X, s.Position.Y)
}

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

package grid

import "math"

const (
	// MaxLevel is the largest resolution level honoured by [Level].
	// Higher slider values are clamped to it.
	MaxLevel = 7

	// DefaultSegmentResolution is the number of fine points per coarse
	// grid cell used when the caller does not supply a valid value.
	DefaultSegmentResolution = 8

	// MaxSegmentResolution bounds the number of fine points per coarse cell.
	MaxSegmentResolution = 1024

	// MaxAxisPoints bounds the number of samples along one axis.
	// An axis which would need more samples contributes nothing.
	MaxAxisPoints = 1 << 20

	// MaxPoints bounds the total number of points of a grid, see [New].
	MaxPoints = 1 << 21
)

// SnapMin rounds v up to the next multiple of 1/res.
func SnapMin(v, res float32) float32 {
	return float32(math.Ceil(float64(v*res))) / res
}

// SnapMax rounds v down to the previous multiple of 1/res.
func SnapMax(v, res float32) float32 {
	return float32(math.Floor(float64(v*res))) / res
}

// Level converts a resolution slider value r into a sampling density,
// 2^floor(r) samples per unit. The exponent is clamped to [0, MaxLevel];
// NaN counts as zero.
func Level(r float32) float32 {
	if !(r > 0) {
		r = 0
	}
	r = min(r, MaxLevel)
	return float32(int(1) << int(math.Floor(float64(r))))
}

// AxisCount returns the number of samples of density res between the
// snapped bounds lo and hi, both included:
//
//	round((hi-lo)*res) + 1
//
// Rounding is half away from zero. The result is 0 if hi < lo, if the
// computation is not finite, or if the count would exceed MaxAxisPoints.
func AxisCount(lo, hi, res float32) int {
	span := float64((hi - lo) * res)
	if !(span >= 0) {
		return 0 // inverted window or NaN
	}
	n := math.Round(span)
	if n >= MaxAxisPoints {
		return 0 // also catches +Inf
	}
	return int(n) + 1
}

// segmentResolution clamps a caller supplied number of fine points per
// coarse cell to [1, MaxSegmentResolution].
func segmentResolution(s float32) float32 {
	if math.IsNaN(float64(s)) {
		return DefaultSegmentResolution
	}
	return min(max(s, 1), MaxSegmentResolution)
}

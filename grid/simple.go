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

// Simple computes the grid lines of the window [xMin, xMax] × [yMin, yMax]
// eagerly, with every sample row and column forming one line.
//
// Unlike [New], Simple uses res directly as the number of samples per unit
// and aligns the window to integers, not to multiples of 1/res.
// For integer bounds and res = 2^k it returns the same lines as
// New(1, k, ...), in the same order.
// The result is nil if res is not positive or if the window contains no
// integer on one of the axes.
func Simple(res, xMin, xMax, yMin, yMax float32) [][]Point {
	if !(res > 0) {
		return nil
	}
	x0 := float32(math.Ceil(float64(xMin)))
	x1 := float32(math.Floor(float64(xMax)))
	y0 := float32(math.Ceil(float64(yMin)))
	y1 := float32(math.Floor(float64(yMax)))

	nx := simpleCount(x0, x1, res)
	ny := simpleCount(y0, y1, res)
	if nx == 0 || ny == 0 {
		return nil
	}

	xs := make([]float32, nx)
	for i := range xs {
		xs[i] = x0 + float32(i)/res
	}
	ys := make([]float32, ny)
	for i := range ys {
		ys[i] = y0 + float32(i)/res
	}

	lines := make([][]Point, 0, nx+ny)
	for _, y := range ys {
		line := make([]Point, 0, nx)
		for _, x := range xs {
			line = append(line, Point{X: x, Y: y})
		}
		lines = append(lines, line)
	}
	for _, x := range xs {
		line := make([]Point, 0, ny)
		for _, y := range ys {
			line = append(line, Point{X: x, Y: y})
		}
		lines = append(lines, line)
	}
	return lines
}

// simpleCount truncates instead of rounding.
func simpleCount(lo, hi, res float32) int {
	span := (hi - lo) * res
	if !(span >= 0) || span >= MaxAxisPoints {
		return 0
	}
	return int(span) + 1
}

// Flatten concatenates the lines and returns the points together with the
// length of every line, in the form produced by [Grid.Points] and
// [Grid.LineStructure].
func Flatten(lines [][]Point) ([]Point, []int) {
	var points []Point
	structure := make([]int, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		points = append(points, line...)
		structure = append(structure, len(line))
	}
	return points, structure
}

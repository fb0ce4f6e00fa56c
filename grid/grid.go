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

// Package grid generates the sample points of coordinate grid lines
// covering a rectangular window of the complex plane.
//
// Grid lines are aligned to multiples of a power of two, so that panning
// and zooming the window keeps the visible lines in place. Lines are placed
// at a coarse resolution, and every line is sampled at a finer resolution
// so that it still looks smooth after being mapped through a non-linear
// function.
//
// The points are never stored. A [Grid] describes the sampling and yields
// the points lazily, in a fixed order: first all horizontal lines (bottom to
// top, each from left to right), then all vertical lines (left to right,
// each from bottom to top). [Grid.LineStructure] gives the number of points
// in each line, in the same order.
package grid

import (
	"context"
	"iter"
	"log/slog"

	"seehuhn.de/go/conformal/internal/logging"
)

// Window is an axis-aligned rectangle in the plane.
type Window struct {
	XMin, XMax float32
	YMin, YMax float32
}

// Point is a sample point in source coordinates.
type Point struct {
	X, Y float32
}

// Complex returns p as the complex number X + iY.
func (p Point) Complex() complex64 {
	return complex(p.X, p.Y)
}

// Grid describes the grid lines of one window at one resolution.
// The zero value is an empty grid.
type Grid struct {
	// Window is the requested window, snapped inwards to the coarse
	// resolution.
	Window Window

	// Coarse is the number of grid lines per unit.
	Coarse float32

	// Fine is the number of sample points per unit along each line.
	Fine float32

	// CoarseX is the number of vertical lines and CoarseY is the number
	// of horizontal lines.
	CoarseX, CoarseY int

	// FineX is the number of points on each horizontal line and FineY
	// is the number of points on each vertical line.
	FineX, FineY int
}

// New returns the grid lines covering w.
//
// The resolution slider value r selects the line density Level(r).
// Each line is sampled with segRes points per grid cell; values below one
// are raised to one and NaN selects DefaultSegmentResolution.
//
// The window is snapped inwards to the line grid. If the snapped window is
// empty along either axis, or if an axis would need more than MaxAxisPoints
// samples, the result is the empty grid.
//
// If the grid would have more than MaxPoints points, the number of points
// per cell is halved until it fits. The lines themselves are kept; if even
// one point per cell is too many, the result is the empty grid.
func New(segRes, r float32, w Window) Grid {
	coarse := Level(r)
	seg := segmentResolution(segRes)

	g := Grid{
		Window: Window{
			XMin: SnapMin(w.XMin, coarse),
			XMax: SnapMax(w.XMax, coarse),
			YMin: SnapMin(w.YMin, coarse),
			YMax: SnapMax(w.YMax, coarse),
		},
		Coarse: coarse,
	}
	g.CoarseX = AxisCount(g.Window.XMin, g.Window.XMax, coarse)
	g.CoarseY = AxisCount(g.Window.YMin, g.Window.YMax, coarse)
	g.setFine(coarse * seg)
	for g.Len() > MaxPoints && seg > 1 {
		seg = max(seg/2, 1)
		g.setFine(coarse * seg)
	}

	if g.CoarseX == 0 || g.CoarseY == 0 || g.FineX == 0 || g.FineY == 0 || g.Len() > MaxPoints {
		log := logging.Logger()
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("empty grid",
				"window", w,
				"coarse", coarse,
				"fine", g.Fine,
				"coarseX", g.CoarseX,
				"coarseY", g.CoarseY,
				"fineX", g.FineX,
				"fineY", g.FineY)
		}
		g.CoarseX, g.CoarseY, g.FineX, g.FineY = 0, 0, 0, 0
	}
	return g
}

// setFine sets the sampling density along the lines and the resulting
// number of points per line.
func (g *Grid) setFine(fine float32) {
	g.Fine = fine
	g.FineX = AxisCount(g.Window.XMin, g.Window.XMax, fine)
	g.FineY = AxisCount(g.Window.YMin, g.Window.YMax, fine)
}

// NumLines returns the number of grid lines.
func (g Grid) NumLines() int {
	return g.CoarseY + g.CoarseX
}

// Len returns the total number of points on all lines.
func (g Grid) Len() int {
	return g.CoarseY*g.FineX + g.CoarseX*g.FineY
}

// IsHorizontal reports whether line i is a horizontal line.
func (g Grid) IsHorizontal(i int) bool {
	return i < g.CoarseY
}

// LineLen returns the number of points on line i.
func (g Grid) LineLen(i int) int {
	switch {
	case i < 0 || i >= g.NumLines():
		return 0
	case i < g.CoarseY:
		return g.FineX
	default:
		return g.FineY
	}
}

// LineStructure returns the number of points of every line: CoarseY
// entries equal to FineX, followed by CoarseX entries equal to FineY.
// The entries sum to g.Len().
func (g Grid) LineStructure() []int {
	res := make([]int, 0, g.NumLines())
	for range g.CoarseY {
		res = append(res, g.FineX)
	}
	for range g.CoarseX {
		res = append(res, g.FineY)
	}
	return res
}

// point returns point k of line i.
func (g Grid) point(i, k int) Point {
	if i < g.CoarseY {
		return Point{
			X: g.Window.XMin + float32(k)/g.Fine,
			Y: g.Window.YMin + float32(i)/g.Coarse,
		}
	}
	i -= g.CoarseY
	return Point{
		X: g.Window.XMin + float32(i)/g.Coarse,
		Y: g.Window.YMin + float32(k)/g.Fine,
	}
}

// Line returns the points of line i.
func (g Grid) Line(i int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := g.LineLen(i)
		for k := range n {
			if !yield(g.point(i, k)) {
				return
			}
		}
	}
}

// Lines iterates over the grid lines. Each step yields the line index
// and the points of that line.
func (g Grid) Lines() iter.Seq2[int, iter.Seq[Point]] {
	return func(yield func(int, iter.Seq[Point]) bool) {
		for i := range g.NumLines() {
			if !yield(i, g.Line(i)) {
				return
			}
		}
	}
}

// Points iterates over the points of all lines.
func (g Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for p := range g.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// All iterates over the points of all lines. The second value is true for
// the last point of each line, so that the sequence carries the line
// structure along with the points.
func (g Grid) All() iter.Seq2[Point, bool] {
	return func(yield func(Point, bool) bool) {
		for i := range g.NumLines() {
			n := g.LineLen(i)
			for k := range n {
				if !yield(g.point(i, k), k == n-1) {
					return
				}
			}
		}
	}
}

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

// Package raster converts polylines into anti-aliased pixel coverage.
//
// Stroke outlines are assembled from one quadrilateral per line segment
// plus polygons for joins and caps. All polygons are given the same
// orientation and are then filled together, so that overlaps merge instead
// of cancelling. Coverage is accumulated by golang.org/x/image/vector.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroker converts paths to pixel coverage values, the fraction of each
// pixel covered by the stroked or filled path, from 0 to 1.
// Create one instance and reuse it for many paths; internal buffers are
// kept between calls.
//
// A Stroker is not safe for concurrent use.
type Stroker struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve and arc approximation in device pixels.
	Flatness float64

	// Width sets stroke thickness in user-space units.
	Width float64

	// Cap sets the style for the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join sets the style for corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps the miter length, relative to the line width.
	MiterLimit float64

	vr   *vector.Rasterizer
	mask *image.Alpha
	row  []float32

	// polygons in user space, all contiguous
	poly        []vec.Vec2
	polyOffsets []int

	// flattened subpaths in user space
	pts        []vec.Vec2
	subOffsets []int
	subClosed  []bool

	// device space scratch buffers
	dev, clipped []vec.Vec2

	// bounding box of the polygons in device space
	bboxEmpty                  bool
	bxMin, bxMax, byMin, byMax float64
}

// NewStroker returns a Stroker for the given clip rectangle, with an
// identity CTM and PDF default values for the other parameters.
func NewStroker(clip rect.Rect) *Stroker {
	s := &Stroker{
		CTM:        matrix.Identity,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
	s.Reset(clip)
	return s
}

// Reset changes the clip rectangle, keeping all other settings.
func (s *Stroker) Reset(clip rect.Rect) {
	s.Clip = clip
	w, h := s.clipSize()
	if s.vr == nil {
		s.vr = vector.NewRasterizer(w, h)
	} else {
		s.vr.Reset(w, h)
	}
	s.vr.DrawOp = draw.Src
	if s.mask == nil || s.mask.Rect.Dx() != w || s.mask.Rect.Dy() != h {
		s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
}

func (s *Stroker) clipSize() (int, int) {
	w := int(math.Round(s.Clip.URx - s.Clip.LLx))
	h := int(math.Round(s.Clip.URy - s.Clip.LLy))
	return max(w, 0), max(h, 0)
}

// Stroke renders p as a stroked outline using Width, Cap, Join and
// MiterLimit. The emit callback receives coverage row by row; its slice
// argument is valid only during the call.
//
// Points with non-finite coordinates break the subpath they belong to.
func (s *Stroker) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	s.flatten(p)
	s.poly = s.poly[:0]
	s.polyOffsets = s.polyOffsets[:0]

	d := s.Width / 2
	if !(d > 0) {
		return
	}
	for i := range s.subOffsets {
		pts, closed := s.subpath(i)
		s.strokeSubpath(pts, closed, d)
	}
	s.render(true, emit)
}

// Fill fills p using the nonzero winding rule.
func (s *Stroker) Fill(p path.Path, emit func(y, xMin int, coverage []float32)) {
	s.flatten(p)
	s.poly = s.poly[:0]
	s.polyOffsets = s.polyOffsets[:0]
	for i := range s.subOffsets {
		pts, _ := s.subpath(i)
		if len(pts) < 3 {
			continue
		}
		s.polyOffsets = append(s.polyOffsets, len(s.poly))
		s.poly = append(s.poly, pts...)
	}
	s.render(false, emit)
}

// toDevice applies the CTM.
func (s *Stroker) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*p.X + s.CTM[2]*p.Y + s.CTM[4],
		Y: s.CTM[1]*p.X + s.CTM[3]*p.Y + s.CTM[5],
	}
}

// render fills the collected polygons and emits the coverage.
// If normalise is set, every polygon is given positive orientation first.
func (s *Stroker) render(normalise bool, emit func(y, xMin int, coverage []float32)) {
	if len(s.polyOffsets) == 0 {
		return
	}
	w, h := s.clipSize()
	if w == 0 || h == 0 {
		return
	}
	s.vr.Reset(w, h)
	s.vr.DrawOp = draw.Src
	s.bboxEmpty = true

	for i := range s.polyOffsets {
		poly := s.polygon(i)
		if normalise && signedArea(poly) < 0 {
			reverse(poly)
		}
		s.addPolygon(poly)
	}
	if s.bboxEmpty {
		return
	}

	xMin := max(int(math.Floor(s.bxMin)), 0)
	xMax := min(int(math.Floor(s.bxMax))+1, w)
	yMin := max(int(math.Floor(s.byMin)), 0)
	yMax := min(int(math.Floor(s.byMax))+1, h)
	if xMin >= xMax || yMin >= yMax {
		return
	}

	clear(s.mask.Pix)
	s.vr.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})

	ox := int(s.Clip.LLx)
	oy := int(s.Clip.LLy)
	if cap(s.row) < xMax-xMin {
		s.row = make([]float32, xMax-xMin)
	}
	row := s.row[:xMax-xMin]
	for y := yMin; y < yMax; y++ {
		pix := s.mask.Pix[y*s.mask.Stride+xMin : y*s.mask.Stride+xMax]
		for i, a := range pix {
			row[i] = float32(a) / 255
		}
		trimmed, offset := trimZeros(row)
		if len(trimmed) > 0 {
			emit(y+oy, xMin+offset+ox, trimmed)
		}
	}
}

// addPolygon transforms a user-space polygon to device space, clips it to
// the output area and adds it to the vector rasterizer.
// Polygons with non-finite vertices are dropped.
func (s *Stroker) addPolygon(poly []vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	ox, oy := s.Clip.LLx, s.Clip.LLy
	s.dev = s.dev[:0]
	for _, p := range poly {
		q := s.toDevice(p)
		if !finite(q) {
			return
		}
		s.dev = append(s.dev, vec.Vec2{X: q.X - ox, Y: q.Y - oy})
	}
	w, h := s.clipSize()
	s.clipped = clipPolygon(s.clipped[:0], s.dev, -1, -1, float64(w+1), float64(h+1))
	if len(s.clipped) < 3 {
		return
	}

	for i, q := range s.clipped {
		if i == 0 {
			s.vr.MoveTo(float32(q.X), float32(q.Y))
		} else {
			s.vr.LineTo(float32(q.X), float32(q.Y))
		}
		if s.bboxEmpty {
			s.bxMin, s.bxMax, s.byMin, s.byMax = q.X, q.X, q.Y, q.Y
			s.bboxEmpty = false
		} else {
			s.bxMin = min(s.bxMin, q.X)
			s.bxMax = max(s.bxMax, q.X)
			s.byMin = min(s.byMin, q.Y)
			s.byMax = max(s.byMax, q.Y)
		}
	}
	s.vr.ClosePath()
}

// polygon returns polygon i as a slice into s.poly.
func (s *Stroker) polygon(i int) []vec.Vec2 {
	start := s.polyOffsets[i]
	end := len(s.poly)
	if i+1 < len(s.polyOffsets) {
		end = s.polyOffsets[i+1]
	}
	return s.poly[start:end]
}

// signedArea returns twice the signed area of the polygon (shoelace formula).
func signedArea(poly []vec.Vec2) float64 {
	var a float64
	n := len(poly)
	for i := range n {
		p, q := poly[i], poly[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

func reverse(poly []vec.Vec2) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// Default values for stroker parameters.
const (
	// defaultFlatness is the default approximation tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6
)

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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// flatten walks the path, replaces curves by line segments and splits
// subpaths at non-finite points. Results are stored in s.pts, s.subOffsets
// and s.subClosed.
func (s *Stroker) flatten(p path.Path) {
	s.pts = s.pts[:0]
	s.subOffsets = s.subOffsets[:0]
	s.subClosed = s.subClosed[:0]

	var current, start vec.Vec2
	inSubpath := false
	reopen := false // a closed subpath continues from its start point

	begin := func(pt vec.Vec2) {
		s.subOffsets = append(s.subOffsets, len(s.pts))
		s.subClosed = append(s.subClosed, false)
		s.pts = append(s.pts, pt)
		start = pt
		inSubpath = true
	}
	lineTo := func(pt vec.Vec2) {
		if !finite(pt) {
			inSubpath = false
			reopen = false
			return
		}
		if !inSubpath && reopen {
			begin(current)
			reopen = false
		}
		if inSubpath {
			s.pts = append(s.pts, pt)
		} else {
			begin(pt)
		}
		current = pt
	}
	emitLine := func(_, to vec.Vec2) { lineTo(to) }

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			inSubpath = false
			reopen = false
			current = pts[0]
			if finite(current) {
				begin(current)
			}
		case path.CmdLineTo:
			lineTo(pts[0])
		case path.CmdQuadTo:
			if inSubpath && finite(pts[0]) {
				s.flattenQuadratic(current, pts[0], pts[1], emitLine)
			} else {
				lineTo(pts[1])
			}
		case path.CmdCubeTo:
			if inSubpath && finite(pts[0]) && finite(pts[1]) {
				s.flattenCubic(current, pts[0], pts[1], pts[2], emitLine)
			} else {
				lineTo(pts[2])
			}
		case path.CmdClose:
			if inSubpath {
				s.subClosed[len(s.subClosed)-1] = true
				current = start
				inSubpath = false
				reopen = true
			}
		}
	}
}

// subpath returns the points of flattened subpath i.
func (s *Stroker) subpath(i int) ([]vec.Vec2, bool) {
	start := s.subOffsets[i]
	end := len(s.pts)
	if i+1 < len(s.subOffsets) {
		end = s.subOffsets[i+1]
	}
	return s.pts[start:end], s.subClosed[i]
}

// transformLinear applies only the 2×2 linear part of the CTM.
func (s *Stroker) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*v.X + s.CTM[2]*v.Y,
		Y: s.CTM[1]*v.X + s.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (s *Stroker) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := s.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if errDev := e.Length(); errDev > s.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / s.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments,
// with the segment count from Wang's formula.
func (s *Stroker) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := s.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := s.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * s.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// segment is a line segment with precomputed unit tangent and normal.
type segment struct {
	A, B vec.Vec2
	T, N vec.Vec2
}

// strokeSubpath adds the outline polygons of one flattened subpath.
// d is half the line width.
func (s *Stroker) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	segs := make([]segment, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		if seg, ok := newSegment(pts[i-1], pts[i]); ok {
			segs = append(segs, seg)
		}
	}
	if closed && len(pts) > 1 {
		if seg, ok := newSegment(pts[len(pts)-1], pts[0]); ok {
			segs = append(segs, seg)
		}
	}

	if len(segs) == 0 {
		// no orientation: only round caps produce a mark
		if len(pts) > 0 && s.Cap == graphics.LineCapRound {
			s.beginPolygon()
			s.addArc(pts[0], d, vec.Vec2{X: 1}, 2*math.Pi)
		}
		return
	}

	for _, seg := range segs {
		s.beginPolygon()
		s.poly = append(s.poly,
			seg.A.Add(seg.N.Mul(d)),
			seg.B.Add(seg.N.Mul(d)),
			seg.B.Sub(seg.N.Mul(d)),
			seg.A.Sub(seg.N.Mul(d)))
	}
	for i := 1; i < len(segs); i++ {
		s.addJoin(&segs[i-1], &segs[i], d)
	}
	if closed {
		s.addJoin(&segs[len(segs)-1], &segs[0], d)
	} else {
		first, last := &segs[0], &segs[len(segs)-1]
		s.addCap(first.A, first.T.Mul(-1), d)
		s.addCap(last.B, last.T, d)
	}
}

func newSegment(a, b vec.Vec2) (segment, bool) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return segment{}, false
	}
	t := delta.Mul(1 / length)
	return segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// beginPolygon starts a new polygon in s.poly.
func (s *Stroker) beginPolygon() {
	s.polyOffsets = append(s.polyOffsets, len(s.poly))
}

// addJoin adds the join polygon at the corner between seg and next.
// The join fills the wedge on the outer side of the corner.
func (s *Stroker) addJoin(seg, next *segment, d float64) {
	P := seg.B
	sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
	cosTheta := seg.T.Dot(next.T)
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	if s.Join == graphics.LineJoinRound {
		s.beginPolygon()
		s.addArc(P, d, vec.Vec2{X: 1}, 2*math.Pi)
		return
	}

	// +N is the inner side for a turn with positive sine
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	n1 := seg.N.Mul(side * d)
	n2 := next.N.Mul(side * d)

	s.beginPolygon()
	s.poly = append(s.poly, P, P.Add(n1))
	if s.Join == graphics.LineJoinMiter && cosTheta > -1+1e-12 {
		// the miter length relative to the line width is 1/cos(turn/2)
		ratio := 1 / math.Sqrt((1+cosTheta)/2)
		if ratio <= s.MiterLimit {
			tip := P.Add(n1.Add(n2).Mul(1 / (1 + cosTheta)))
			s.poly = append(s.poly, tip)
		}
	}
	s.poly = append(s.poly, P.Add(n2))
}

// addCap adds a cap polygon at P. T is the outward tangent direction.
func (s *Stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch s.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		s.beginPolygon()
		s.poly = append(s.poly,
			P.Add(N.Mul(d)), ext.Add(N.Mul(d)),
			ext.Sub(N.Mul(d)), P.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		s.beginPolygon()
		s.poly = append(s.poly, P)
		s.addArc(P, d, N, -math.Pi)
	}
}

// addArc appends the points of a circular arc around center to s.poly.
// startDir is the unit vector from the centre to the arc start;
// sweep is the sweep angle in radians (positive is counter-clockwise).
func (s *Stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		s.transformLinear(vec.Vec2{X: radius}).Length(),
		s.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 4
	if devRadius > s.Flatness {
		// a chord over angle θ deviates from the circle by r(1-cos(θ/2))
		step := 2 * math.Acos(1-s.Flatness/devRadius)
		if step > 0 {
			n = max(n, int(math.Ceil(math.Abs(sweep)/step)))
		}
	}
	n = min(n, maxArcSegments)

	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		s.poly = append(s.poly, center.Add(dir.Mul(radius)))
	}
}

// maxArcSegments bounds the number of chords used for one arc.
const maxArcSegments = 256

// clipPolygon clips poly against the rectangle [x0, x1] × [y0, y1] using
// the Sutherland-Hodgman algorithm. The result is appended to dst.
func clipPolygon(dst, poly []vec.Vec2, x0, y0, x1, y1 float64) []vec.Vec2 {
	inside := func(p vec.Vec2) bool {
		return p.X >= x0 && p.X <= x1 && p.Y >= y0 && p.Y <= y1
	}
	all := true
	for _, p := range poly {
		if !inside(p) {
			all = false
			break
		}
	}
	if all {
		return append(dst, poly...)
	}

	type edge struct {
		in    func(vec.Vec2) bool
		cross func(a, b vec.Vec2) vec.Vec2
	}
	atX := func(x float64) func(a, b vec.Vec2) vec.Vec2 {
		return func(a, b vec.Vec2) vec.Vec2 {
			t := (x - a.X) / (b.X - a.X)
			return vec.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
		}
	}
	atY := func(y float64) func(a, b vec.Vec2) vec.Vec2 {
		return func(a, b vec.Vec2) vec.Vec2 {
			t := (y - a.Y) / (b.Y - a.Y)
			return vec.Vec2{X: a.X + t*(b.X-a.X), Y: y}
		}
	}
	edges := [4]edge{
		{func(p vec.Vec2) bool { return p.X >= x0 }, atX(x0)},
		{func(p vec.Vec2) bool { return p.X <= x1 }, atX(x1)},
		{func(p vec.Vec2) bool { return p.Y >= y0 }, atY(y0)},
		{func(p vec.Vec2) bool { return p.Y <= y1 }, atY(y1)},
	}

	cur := poly
	var next []vec.Vec2
	for _, e := range edges {
		if len(cur) == 0 {
			break
		}
		next = next[:0:0]
		prev := cur[len(cur)-1]
		for _, p := range cur {
			switch {
			case e.in(p) && e.in(prev):
				next = append(next, p)
			case e.in(p):
				next = append(next, e.cross(prev, p), p)
			case e.in(prev):
				next = append(next, e.cross(prev, p))
			}
			prev = p
		}
		cur = next
	}
	return append(dst, cur...)
}

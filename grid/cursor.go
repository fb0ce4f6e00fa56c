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

// Cursor steps through the points of a grid one at a time.
// It holds two indices, the current line and the position within the line.
type Cursor struct {
	g    Grid
	line int
	k    int
}

// Cursor returns a cursor positioned before the first point of g.
func (g Grid) Cursor() *Cursor {
	return &Cursor{g: g}
}

// Next returns the next point. endOfLine is true if p is the last point of
// its line. Once all points have been returned, ok is false.
func (c *Cursor) Next() (p Point, endOfLine bool, ok bool) {
	for c.line < c.g.NumLines() {
		n := c.g.LineLen(c.line)
		if c.k < n {
			p = c.g.point(c.line, c.k)
			c.k++
			if c.k == n {
				c.line++
				c.k = 0
				endOfLine = true
			}
			return p, endOfLine, true
		}
		c.line++
		c.k = 0
	}
	return Point{}, false, false
}

// Line returns the index of the line the next point belongs to.
func (c *Cursor) Line() int {
	return c.line
}

// Reset moves the cursor back to the first point.
func (c *Cursor) Reset() {
	c.line = 0
	c.k = 0
}

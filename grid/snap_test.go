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

import (
	"math"
	"testing"
)

func TestSnap(t *testing.T) {
	cases := []struct {
		v, res   float32
		min, max float32
	}{
		{0.3, 1, 1, 0},
		{-0.3, 1, 0, -1},
		{2.3, 4, 2.5, 2.25},
		{2.375, 8, 2.375, 2.375},
		{-5, 2, -5, -5},
		{-4.9, 2, -4.5, -5},
		{7, 128, 7, 7},
	}
	for _, c := range cases {
		if got := SnapMin(c.v, c.res); got != c.min {
			t.Errorf("SnapMin(%g, %g) = %g, want %g", c.v, c.res, got, c.min)
		}
		if got := SnapMax(c.v, c.res); got != c.max {
			t.Errorf("SnapMax(%g, %g) = %g, want %g", c.v, c.res, got, c.max)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	values := []float32{-15, -7.3, -1.0001, -0.5, 0, 0.1, 1.0 / 3, 2.3, 2.4, 9.99, 15}
	for level := range MaxLevel + 1 {
		res := float32(int(1) << level)
		for _, v := range values {
			lo := SnapMin(v, res)
			if again := SnapMin(lo, res); again != lo {
				t.Errorf("SnapMin not idempotent at res=%g: %g -> %g -> %g", res, v, lo, again)
			}
			hi := SnapMax(v, res)
			if again := SnapMax(hi, res); again != hi {
				t.Errorf("SnapMax not idempotent at res=%g: %g -> %g -> %g", res, v, hi, again)
			}
			if lo < v || hi > v {
				t.Errorf("snapping %g at res=%g moved outwards: [%g, %g]", v, res, lo, hi)
			}
		}
	}
}

func TestLevel(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	cases := []struct {
		r    float32
		want float32
	}{
		{-3, 1},
		{0, 1},
		{0.99, 1},
		{1, 2},
		{2.7, 4},
		{5, 32},
		{7, 128},
		{7.5, 128},
		{100, 128},
		{nan, 1},
		{inf, 128},
	}
	for _, c := range cases {
		if got := Level(c.r); got != c.want {
			t.Errorf("Level(%g) = %g, want %g", c.r, got, c.want)
		}
	}
}

func TestAxisCount(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	cases := []struct {
		name        string
		lo, hi, res float32
		want        int
	}{
		{"unit", 0, 1, 1, 2},
		{"symmetric", -5, 5, 2, 21},
		{"single", 2.375, 2.375, 8, 1},
		{"inverted", 2.5, 2.25, 4, 0},
		{"round half up", 0, 0.75, 2, 3},
		{"round down", 0, 0.2, 2, 1},
		{"nan", nan, 1, 1, 0},
		{"inf", 0, inf, 1, 0},
		{"overflow", -1e6, 1e6, 1, 0},
		{"limit", 0, MaxAxisPoints - 1, 1, MaxAxisPoints},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AxisCount(c.lo, c.hi, c.res); got != c.want {
				t.Errorf("AxisCount(%g, %g, %g) = %d, want %d", c.lo, c.hi, c.res, got, c.want)
			}
		})
	}
}

func TestSegmentResolution(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{8, 8},
		{0, 1},
		{-4, 1},
		{2.5, 2.5},
		{1e9, MaxSegmentResolution},
		{float32(math.NaN()), DefaultSegmentResolution},
	}
	for _, c := range cases {
		if got := segmentResolution(c.in); got != c.want {
			t.Errorf("segmentResolution(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

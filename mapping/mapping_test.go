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

package mapping

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"
	"testing"
)

func near(a, b complex64) bool {
	return cmplx.Abs(complex128(a-b)) < 1e-5
}

func TestFunctions(t *testing.T) {
	cases := []struct {
		name string
		f    Func
		z    complex64
		want complex64
	}{
		{"identity", Identity, 2 - 3i, 2 - 3i},
		{"square", Square, 1 + 1i, 2i},
		{"square real", Square, -3, 9},
		{"cube", Cube, 1i, -1i},
		{"inverse", Inverse, 2i, -0.5i},
		{"exp", Exp, complex(0, math.Pi), -1},
		{"mobius origin", Mobius(1), 0, 1},
		{"mobius one", Mobius(1), 1, 0},
		{"mobius i", Mobius(1), 1i, -1i},
		{"mobius parameter", Mobius(2i), 0, 2i},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.f(c.z); !near(got, c.want) {
				t.Errorf("f(%v) = %v, want %v", c.z, got, c.want)
			}
		})
	}
}

func TestMobiusPole(t *testing.T) {
	z := Mobius(1)(-1)
	if IsFinite(z) {
		t.Errorf("Mobius(1)(-1) = %v, want a non-finite value", z)
	}
}

func TestHomotopy(t *testing.T) {
	z := complex64(1 + 2i)
	if got := Homotopy(Square, 0)(z); got != z {
		t.Errorf("t=0: got %v, want %v", got, z)
	}
	if got := Homotopy(Square, 1)(z); got != Square(z) {
		t.Errorf("t=1: got %v, want %v", got, Square(z))
	}
	want := (z + Square(z)) / 2
	if got := Homotopy(Square, 0.5)(z); !near(got, want) {
		t.Errorf("t=0.5: got %v, want %v", got, want)
	}
	if got := Homotopy(Square, -3)(z); got != z {
		t.Errorf("t<0 not clamped: got %v", got)
	}
	if got := Homotopy(Square, 7)(z); got != Square(z) {
		t.Errorf("t>1 not clamped: got %v", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name, 1)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if f == nil {
			t.Errorf("Lookup(%q) returned nil", name)
		}
	}

	f, err := Lookup("square", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := f(1i); !near(got, -2) {
		t.Errorf("square with parameter 2: f(i) = %v, want -2", got)
	}

	_, err = Lookup("zeta", 1)
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Lookup(zeta): err = %v, want ErrUnknown", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"identity", "mobius", "square"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() lacks %q", want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	cases := []struct {
		z    complex64
		want bool
	}{
		{0, true},
		{1 + 2i, true},
		{complex(inf, 0), false},
		{complex(0, -inf), false},
		{complex(nan, 1), false},
	}
	for _, c := range cases {
		if got := IsFinite(c.z); got != c.want {
			t.Errorf("IsFinite(%v) = %t, want %t", c.z, got, c.want)
		}
	}
}

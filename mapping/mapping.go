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

// Package mapping provides the complex functions through which the grid
// lines are drawn.
package mapping

import (
	"errors"
	"fmt"
	"maps"
	"math/cmplx"
	"slices"
)

// Func maps a point of the source plane to the target plane.
type Func func(z complex64) complex64

// Identity leaves every point in place.
func Identity(z complex64) complex64 {
	return z
}

// Square maps z to z².
func Square(z complex64) complex64 {
	return z * z
}

// Cube maps z to z³.
func Cube(z complex64) complex64 {
	return z * z * z
}

// Inverse maps z to 1/z.
func Inverse(z complex64) complex64 {
	return 1 / z
}

// Exp maps z to e^z.
func Exp(z complex64) complex64 {
	return complex64(cmplx.Exp(complex128(z)))
}

// Mobius returns the Möbius transformation z ↦ p·(1-z)/(1+z).
// It maps the unit disk onto the right half plane when p = 1,
// and has a pole at z = -1.
func Mobius(p complex64) Func {
	return func(z complex64) complex64 {
		return (1 - z) / (1 + z) * p
	}
}

// Scaled returns z ↦ p·f(z).
func Scaled(f Func, p complex64) Func {
	return func(z complex64) complex64 {
		return f(z) * p
	}
}

// Homotopy returns the linear interpolation z ↦ (1-t)·z + t·f(z)
// between the identity (t = 0) and f (t = 1).
// t is clamped to [0, 1].
func Homotopy(f Func, t float32) Func {
	t = min(max(t, 0), 1)
	switch {
	case t == 0:
		return Identity
	case t == 1:
		return f
	}
	s := complex(1-t, 0)
	u := complex(t, 0)
	return func(z complex64) complex64 {
		return s*z + u*f(z)
	}
}

// ErrUnknown is returned by [Lookup] for names which are not registered.
var ErrUnknown = errors.New("unknown function")

// registry maps function names to constructors.
// The constructors take the complex parameter of the view.
var registry = map[string]func(p complex64) Func{
	"identity": func(complex64) Func { return Identity },
	"square":   func(p complex64) Func { return Scaled(Square, p) },
	"cube":     func(p complex64) Func { return Scaled(Cube, p) },
	"inverse":  func(p complex64) Func { return Scaled(Inverse, p) },
	"exp":      func(p complex64) Func { return Scaled(Exp, p) },
	"mobius":   Mobius,
}

// Names returns the names accepted by [Lookup], in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the named function, with parameter p.
func Lookup(name string, p complex64) (Func, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("mapping %q: %w", name, ErrUnknown)
	}
	return mk(p), nil
}

// IsFinite reports whether both parts of z are finite.
func IsFinite(z complex64) bool {
	re, im := float64(real(z)), float64(imag(z))
	return !cmplx.IsNaN(complex(re, im)) && !cmplx.IsInf(complex(re, im))
}

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

// Package scenes provides named view states covering the main uses of the
// grid renderer: plain grids, the different functions, partial homotopies
// and degenerate windows.
package scenes

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/conformal/view"
)

// Scene is a view state together with an image size.
type Scene struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	State  view.State // the view to render
	Width  int        // image width in pixels
	Height int        // image height in pixels
}

// ErrNotFound is returned by [Lookup] for unknown scene names.
var ErrNotFound = errors.New("scene not found")

// Names returns the full names of all scenes, in the form
// "category_name", sorted.
func Names() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, sc := range All[category] {
			names = append(names, category+"_"+sc.Name)
		}
	}
	return names
}

// Lookup finds a scene by its full name, see [Names].
func Lookup(fullName string) (Scene, error) {
	for category, list := range All {
		name, ok := strings.CutPrefix(fullName, category+"_")
		if !ok {
			continue
		}
		for _, sc := range list {
			if sc.Name == name {
				return sc, nil
			}
		}
	}
	return Scene{}, fmt.Errorf("%q: %w", fullName, ErrNotFound)
}

// option modifies a view state.
type option func(*view.State)

// state returns the default view state, modified by opts.
func state(opts ...option) view.State {
	st := view.Default()
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

func fn(name string) option {
	return func(st *view.State) {
		st.ApplyFunction = true
		st.Function = name
	}
}

func noFunction(st *view.State) {
	st.ApplyFunction = false
}

func window(xMin, xMax, yMin, yMax float32) option {
	return func(st *view.State) {
		st.XMin, st.XMax = xMin, xMax
		st.YMin, st.YMax = yMin, yMax
	}
}

func resolution(r, seg float32) option {
	return func(st *view.State) {
		st.Resolution = r
		st.SegmentResolution = seg
	}
}

func scale(s float64) option {
	return func(st *view.State) {
		st.Scale = s
	}
}

func position(x, y float64) option {
	return func(st *view.State) {
		st.SetPosition(x, y)
	}
}

func param(re, im float32) option {
	return func(st *view.State) {
		st.ParamRe, st.ParamIm = re, im
	}
}

func homotopy(t float32) option {
	return func(st *view.State) {
		st.Homotopy = t
	}
}

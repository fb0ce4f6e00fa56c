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

package scenes

import (
	"errors"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/conformal/mapping"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestSceneNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range Names() {
		if !validName.MatchString(name) {
			t.Errorf("invalid scene name %q", name)
		}
		if seen[name] {
			t.Errorf("duplicate scene name %q", name)
		}
		seen[name] = true
	}
	if !slices.IsSorted(Names()) {
		t.Error("names are not sorted")
	}
}

func TestScenesValid(t *testing.T) {
	for _, name := range Names() {
		sc, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if sc.Width < 1 || sc.Height < 1 {
			t.Errorf("%s: size %dx%d", name, sc.Width, sc.Height)
		}
		if _, err := mapping.Lookup(sc.State.Function, 1); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestLookup(t *testing.T) {
	sc, err := Lookup("mobius_pole")
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "pole" || sc.State.XMin != -2 {
		t.Errorf("wrong scene %+v", sc)
	}

	for _, name := range []string{"", "mobius", "mobius_", "pole", "none_pole"} {
		if _, err := Lookup(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(%q): got %v", name, err)
		}
	}
}

func TestDegenerateScenesEmpty(t *testing.T) {
	want := map[string]int{
		"inverted":    0,
		"narrow":      0,
		// one vertical line with 9 points, crossed by two
		// horizontal lines of a single point each
		"single_line": 9 + 2,
	}
	for _, sc := range degenerateScenes {
		n, ok := want[sc.Name]
		if !ok {
			continue
		}
		if got := sc.State.Grid().Len(); got != n {
			t.Errorf("%s: %d points, want %d", sc.Name, got, n)
		}
	}
}

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

package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/conformal/view"
)

func TestList(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"-list"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"mobius", "square", "mobius_pole"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output is missing %q", want)
		}
	}
}

func TestDump(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{"-dump", "-f", "square", "-xmin", "-1", "-res", "99", "-apply=false",
		"-events", "press:space;down:ctrl;scroll:0,20;up:ctrl"}
	if err := run(args, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	var st view.State
	if err := json.Unmarshal(out.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if st.Function != "square" || st.XMin != -1 {
		t.Errorf("flags not applied: %+v", st)
	}
	if !st.ApplyFunction {
		t.Error("space did not toggle the function back on")
	}
	// -res is clamped to 5, then reduced by 20/20
	if st.Resolution != 4 {
		t.Errorf("resolution %g, want 4", st.Resolution)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "out.png")
	var out, errOut bytes.Buffer
	if err := run([]string{"-scene", "power_cube", "-size", "64x48", "-o", fname}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("image size %v", b)
	}
	if !strings.Contains(errOut.String(), "wrote image") {
		t.Errorf("missing log message, got %q", errOut.String())
	}
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "view.json")
	data := `{"function": "exp", "x_min": -40, "segment_resolution": 2}`
	if err := os.WriteFile(fname, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	if err := run([]string{"-config", fname, "-dump"}, &out, &errOut); err != nil {
		t.Fatal(err)
	}
	var st view.State
	if err := json.Unmarshal(out.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if st.Function != "exp" || st.XMin != view.BoundMin || st.SegmentResolution != 2 {
		t.Errorf("config not applied: %+v", st)
	}
	// fields missing from the file keep their defaults
	if st.Scale != view.Default().Scale {
		t.Errorf("scale %g", st.Scale)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{"-size", "10"},
		{"-size", "0x10"},
		{"-size", "axb"},
		{"-scene", "no_such_scene"},
		{"-scene", "mobius_pole", "-config", "x.json"},
		{"-config", filepath.Join(dir, "missing.json")},
		{"-events", "jump:a"},
		{"-f", "nothing", "-o", filepath.Join(dir, "x.png")},
		{"-f", "nothing", "-dump"},
		{"-f", "nothing", "-apply=false", "-dump"},
		{"-o", filepath.Join(dir, "x.gif")},
		{"extra"},
		{"-no-such-flag"},
	}
	for _, args := range cases {
		var out, errOut bytes.Buffer
		if err := run(args, &out, &errOut); err == nil {
			t.Errorf("%q: no error", args)
		}
	}
}

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

// Command conformal renders a coordinate grid mapped through a complex
// function to a PNG or PDF file.
//
// The view starts from the default state, a named scene (-scene) or a JSON
// file (-config). Flags for individual settings are applied next, then the
// input events given by -events. For example
//
//	conformal -f square -xmin -1 -xmax 1 -ymin -1 -ymax 1 -o square.pdf
//	conformal -events 'down:shift;scroll:0,10;up:shift' -o zoomed.png
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/conformal"
	"seehuhn.de/go/conformal/mapping"
	"seehuhn.de/go/conformal/scenes"
	"seehuhn.de/go/conformal/view"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "conformal:", err)
		}
		os.Exit(1)
	}
}

// settings holds the per-field flags. Only flags given on the command
// line are applied to the state.
type settings struct {
	scale, x, y            float64
	apply                  bool
	function               string
	re, im, homotopy       float64
	res, seg               float64
	xMin, xMax, yMin, yMax float64
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("conformal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	sceneName := fs.String("scene", "", "start from the named scene (see -list)")
	config := fs.String("config", "", "start from the view state in this JSON `file`")
	events := fs.String("events", "", "input events to apply, e.g. 'down:a;scroll:5,0;up:a'")
	out := fs.String("o", "conformal.png", "output `file`, .png or .pdf")
	size := fs.String("size", "", "image size as WxH (default 800x600, or the scene size)")
	legend := fs.Bool("legend", true, "describe the view state in PNG output")
	dump := fs.Bool("dump", false, "print the final view state as JSON instead of rendering")
	list := fs.Bool("list", false, "list the available functions and scenes")
	verbose := fs.Bool("v", false, "log debug messages to stderr")

	var s settings
	fs.Float64Var(&s.scale, "scale", 0, "natural logarithm of the pixels per unit")
	fs.Float64Var(&s.x, "x", 0, "horizontal offset of the picture")
	fs.Float64Var(&s.y, "y", 0, "vertical offset of the picture")
	fs.BoolVar(&s.apply, "apply", true, "draw the grid through the function")
	fs.StringVar(&s.function, "f", "", "function `name` (see -list)")
	fs.Float64Var(&s.re, "re", 0, "real part of the function parameter")
	fs.Float64Var(&s.im, "im", 0, "imaginary part of the function parameter")
	fs.Float64Var(&s.homotopy, "t", 0, "homotopy between identity (0) and the function (1)")
	fs.Float64Var(&s.res, "res", 0, "grid resolution, 2^floor(res) lines per unit")
	fs.Float64Var(&s.seg, "seg", 0, "sample points per grid cell")
	fs.Float64Var(&s.xMin, "xmin", 0, "left edge of the grid window")
	fs.Float64Var(&s.xMax, "xmax", 0, "right edge of the grid window")
	fs.Float64Var(&s.yMin, "ymin", 0, "bottom edge of the grid window")
	fs.Float64Var(&s.yMax, "ymax", 0, "top edge of the grid window")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	conformal.SetLogger(logger)
	defer conformal.SetLogger(nil)

	if *list {
		printList(stdout)
		return nil
	}

	st := view.Default()
	width, height := 800, 600
	switch {
	case *sceneName != "" && *config != "":
		return errors.New("-scene and -config cannot be combined")
	case *sceneName != "":
		sc, err := scenes.Lookup(*sceneName)
		if err != nil {
			return err
		}
		st = sc.State
		width, height = sc.Width, sc.Height
	case *config != "":
		var err error
		st, err = loadConfig(*config)
		if err != nil {
			return err
		}
	}
	if *size != "" {
		var err error
		width, height, err = parseSize(*size)
		if err != nil {
			return err
		}
	}

	fs.Visit(func(f *flag.Flag) { s.set(f.Name, &st) })

	if *events != "" {
		evs, err := view.ParseEvents(*events)
		if err != nil {
			return err
		}
		st.Apply(evs...)
		logger.Debug("events applied", "count", len(evs))
	}

	if _, err := mapping.Lookup(st.Function, st.Parameter()); err != nil {
		return err
	}

	if *dump {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	fr, err := conformal.NewFrame(st, width, height)
	if err != nil {
		return err
	}
	fr.Legend = *legend
	if err := fr.Save(*out); err != nil {
		return err
	}
	logger.Info("wrote image", "file", *out, "width", width, "height", height)
	return nil
}

// set copies the flag called name into st, using the slider setters so
// that values are clamped to the ranges of the controls.
func (s *settings) set(name string, st *view.State) {
	switch name {
	case "scale":
		st.SetScale(s.scale)
	case "x":
		st.SetPosition(s.x, st.Position.Y)
	case "y":
		st.SetPosition(st.Position.X, s.y)
	case "apply":
		st.ApplyFunction = s.apply
	case "f":
		st.Function = s.function
	case "re":
		st.SetParameter(float32(s.re), st.ParamIm)
	case "im":
		st.SetParameter(st.ParamRe, float32(s.im))
	case "t":
		st.SetHomotopy(float32(s.homotopy))
	case "res":
		st.SetResolution(float32(s.res))
	case "seg":
		st.SetSegmentResolution(float32(s.seg))
	case "xmin":
		st.SetXMin(float32(s.xMin))
	case "xmax":
		st.SetXMax(float32(s.xMax))
	case "ymin":
		st.SetYMin(float32(s.yMin))
	case "ymax":
		st.SetYMax(float32(s.yMax))
	}
}

func loadConfig(fname string) (view.State, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return view.State{}, err
	}
	st := view.Default()
	if err := json.Unmarshal(data, &st); err != nil {
		return view.State{}, fmt.Errorf("%s: %w", fname, err)
	}
	st.Clamp()
	return st, nil
}

func parseSize(s string) (int, int, error) {
	var w, h int
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		_, err1 := fmt.Sscan(ws, &w)
		_, err2 := fmt.Sscan(hs, &h)
		ok = err1 == nil && err2 == nil
	}
	if !ok || w < 1 || h < 1 || w > conformal.MaxSize || h > conformal.MaxSize {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return w, h, nil
}

func printList(w io.Writer) {
	fmt.Fprintln(w, "functions:")
	for _, name := range mapping.Names() {
		fmt.Fprintln(w, "  "+name)
	}
	fmt.Fprintln(w, "scenes:")
	for _, name := range scenes.Names() {
		fmt.Fprintln(w, "  "+name)
	}
}

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

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scene{
	"identity":   identityScenes,
	"power":      powerScenes,
	"mobius":     mobiusScenes,
	"homotopy":   homotopyScenes,
	"misc":       miscScenes,
	"degenerate": degenerateScenes,
}

var identityScenes = []Scene{
	{
		Name:   "unit_square",
		State:  state(noFunction, scale(5)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "fine_grid",
		State:  state(noFunction, window(-2, 2, -2, 2), resolution(4, 1), scale(4)),
		Width:  320,
		Height: 320,
	},
	{
		// the window is snapped inwards to quarter units
		Name:   "snapped",
		State:  state(noFunction, window(-1.1, 0.9, -0.3, 1.3), resolution(2, 4), scale(4.5)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "panned",
		State:  state(noFunction, position(-0.5, -0.5), scale(5)),
		Width:  256,
		Height: 192,
	},
}

var powerScenes = []Scene{
	{
		Name:   "square_quadrant",
		State:  state(fn("square"), window(0, 1.5, 0, 1.5), resolution(2, 8), scale(4)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "square_centred",
		State:  state(fn("square"), window(-1, 1, -1, 1), resolution(3, 8), scale(4.5)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "cube",
		State:  state(fn("cube"), window(-1, 1, -1, 1), resolution(2, 16), scale(4)),
		Width:  256,
		Height: 256,
	},
}

var mobiusScenes = []Scene{
	{
		Name:   "default",
		State:  state(),
		Width:  400,
		Height: 300,
	},
	{
		Name:   "disk",
		State:  state(fn("mobius"), window(-0.75, 0.75, -0.75, 0.75), resolution(3, 8), scale(3.5)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "rotated",
		State:  state(fn("mobius"), param(0, 1), resolution(2, 8), scale(4)),
		Width:  256,
		Height: 256,
	},
	{
		// the grid passes through the pole at z = -1
		Name:   "pole",
		State:  state(fn("mobius"), window(-2, 0, -1, 1), resolution(1, 16), scale(3)),
		Width:  256,
		Height: 256,
	},
}

var homotopyScenes = []Scene{
	{
		Name:   "square_quarter",
		State:  state(fn("square"), window(-1, 1, -1, 1), resolution(2, 8), homotopy(0.25), scale(4.5)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "square_half",
		State:  state(fn("square"), window(-1, 1, -1, 1), resolution(2, 8), homotopy(0.5), scale(4.5)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "mobius_half",
		State:  state(fn("mobius"), window(-0.5, 1, -1, 1), resolution(2, 8), homotopy(0.5), scale(4.5)),
		Width:  256,
		Height: 256,
	},
}

var miscScenes = []Scene{
	{
		Name:   "exp_strip",
		State:  state(fn("exp"), window(-1, 1, -3, 3), resolution(2, 8), scale(3.5)),
		Width:  256,
		Height: 256,
	},
	{
		Name:   "inverse",
		State:  state(fn("inverse"), window(0.5, 2, -1, 1), resolution(2, 8), scale(4.5)),
		Width:  256,
		Height: 256,
	},
}

var degenerateScenes = []Scene{
	{
		Name:   "inverted",
		State:  state(window(1, 0, 0, 1)),
		Width:  128,
		Height: 128,
	},
	{
		// no multiple of a whole unit lies inside the window
		Name:   "narrow",
		State:  state(noFunction, window(2.3, 2.4, 0, 1), resolution(0, 8)),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "single_line",
		State:  state(noFunction, window(0.9, 1.1, 0, 1), resolution(0, 8), scale(4)),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "huge_scale",
		State:  state(scale(10)),
		Width:  128,
		Height: 128,
	},
}

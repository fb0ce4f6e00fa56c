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
	"image"
	"image/color"
)

// Emitter receives coverage values row by row, see [Stroker.Stroke].
type Emitter func(y, xMin int, coverage []float32)

// PaintRGBA returns an emitter which blends the colour c over dst,
// weighted by coverage.
func PaintRGBA(dst *image.RGBA, c color.NRGBA) Emitter {
	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	alpha := float32(c.A) / 255
	return func(y, xMin int, coverage []float32) {
		if y < dst.Rect.Min.Y || y >= dst.Rect.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < dst.Rect.Min.X || x >= dst.Rect.Max.X {
				continue
			}
			a := cov * alpha
			if a <= 0 {
				continue
			}
			a = min(a, 1)
			pix := dst.Pix[dst.PixOffset(x, y):]
			pix[0] = blend(pix[0], r, a)
			pix[1] = blend(pix[1], g, a)
			pix[2] = blend(pix[2], b, a)
			pix[3] = blend(pix[3], 255, a)
		}
	}
}

// blend mixes the premultiplied component v with the straight component c.
func blend(v uint8, c, a float32) uint8 {
	return uint8(float32(v)*(1-a) + c*a + 0.5)
}

// MaxGray returns an emitter which writes coverage into an 8-bit grayscale
// buffer in row-major order, keeping the larger value where paths overlap.
func MaxGray(buf []byte, width, height, stride int) Emitter {
	return func(y, xMin int, coverage []float32) {
		if y < 0 || y >= height {
			return
		}
		row := buf[y*stride:]
		for i, cov := range coverage {
			x := xMin + i
			if x < 0 || x >= width {
				continue
			}
			v := uint8(min(max(cov, 0), 1)*255 + 0.5)
			row[x] = max(row[x], v)
		}
	}
}

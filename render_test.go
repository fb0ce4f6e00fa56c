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

package conformal

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderGray(t *testing.T) {
	fr, err := NewFrame(unitSquare(), 400, 400)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 400*400)
	fr.Render(buf, 400, 400, 400)

	at := func(x, y int) byte { return buf[y*400+x] }
	cases := []struct {
		x, y    int
		lo, hi  byte
		comment string
	}{
		{250, 100, 255, 255, "top edge of the square"},
		{300, 150, 255, 255, "right edge of the square"},
		{250, 150, 0, 0, "inside the square"},
		{150, 250, 0, 0, "empty quadrant"},
		{120, 200, 100, 160, "real axis, half a pixel wide"},
		{293, 202, 250, 255, "arrow head"},
		{0, 0, 0, 0, "corner"},
	}
	for _, c := range cases {
		if v := at(c.x, c.y); v < c.lo || v > c.hi {
			t.Errorf("%s: pixel (%d, %d) = %d, want [%d, %d]",
				c.comment, c.x, c.y, v, c.lo, c.hi)
		}
	}
}

func TestRenderStride(t *testing.T) {
	fr, err := NewFrame(unitSquare(), 400, 400)
	if err != nil {
		t.Fatal(err)
	}
	const stride = 512
	buf := make([]byte, stride*400)
	fr.Render(buf, 400, 400, stride)
	if v := buf[100*stride+250]; v != 255 {
		t.Errorf("pixel (250, 100) = %d", v)
	}
	for y := range 400 {
		for x := 400; x < stride; x++ {
			if buf[y*stride+x] != 0 {
				t.Fatalf("padding at (%d, %d) written", x, y)
			}
		}
	}
}

func TestRenderRGBA(t *testing.T) {
	fr, err := NewFrame(unitSquare(), 400, 400)
	if err != nil {
		t.Fatal(err)
	}
	img := fr.RenderRGBA()
	if got := img.RGBAAt(0, 399); got != (color.RGBA{5, 5, 5, 255}) {
		t.Errorf("background %v", got)
	}
	if got := img.RGBAAt(250, 100); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("line pixel %v", got)
	}

	legendPixels := func(img *image.RGBA) int {
		n := 0
		for y := range 60 {
			for x := range 150 {
				if img.RGBAAt(x, y) != (color.RGBA{5, 5, 5, 255}) {
					n++
				}
			}
		}
		return n
	}
	if n := legendPixels(img); n != 0 {
		t.Errorf("%d pixels drawn in the legend area without legend", n)
	}
	fr.Legend = true
	if n := legendPixels(fr.RenderRGBA()); n == 0 {
		t.Error("legend not drawn")
	}
}

func TestWritePNG(t *testing.T) {
	fr, err := NewFrame(unitSquare(), 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := fr.WritePNG(&out); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("decoded size %v", b)
	}
	r, g, b, _ := img.At(250, 50).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("line pixel %x %x %x", r, g, b)
	}
}

func TestSave(t *testing.T) {
	fr, err := NewFrame(unitSquare(), 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	pdfName := filepath.Join(dir, "frame.pdf")
	if err := fr.Save(pdfName); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(pdfName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("PDF file starts with %q", data[:min(len(data), 8)])
	}

	pngName := filepath.Join(dir, "frame.PNG")
	if err := fr.Save(pngName); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(pngName); err != nil {
		t.Error(err)
	}

	if err := fr.Save(filepath.Join(dir, "frame.svg")); !errors.Is(err, ErrFormat) {
		t.Errorf("svg output: got %v", err)
	}
}

func BenchmarkRenderRGBA(b *testing.B) {
	fr, err := NewFrame(unitSquare(), 800, 800)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		fr.RenderRGBA()
	}
}

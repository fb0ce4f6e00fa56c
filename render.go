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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/conformal/raster"
)

// background is the gray level behind the grid, from 0 to 1.
const background = 0.02

// ErrFormat is returned by [Frame.Save] for unsupported file name
// extensions.
var ErrFormat = errors.New("unsupported output format")

// Render draws the frame into a grayscale buffer in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
// The buffer must be pre-initialized, usually with zeros; where several
// parts of the picture overlap the larger coverage is kept.
func (f *Frame) Render(buf []byte, width, height, stride int) {
	f.paint(width, height, raster.MaxGray(buf, width, height, stride))
}

// paint strokes and fills all parts of the frame into emit, clipped to
// width×height pixels.
func (f *Frame) paint(width, height int, emit raster.Emitter) {
	s := raster.NewStroker(rect.Rect{URx: float64(width), URy: float64(height)})
	s.Cap = graphics.LineCapRound
	s.Join = graphics.LineJoinRound
	s.Width = gridLineWidth
	s.Stroke(f.Lines.Iter(), emit)

	s.Cap = graphics.LineCapButt
	s.Join = graphics.LineJoinMiter
	s.Width = axisLineWidth
	s.Stroke(f.Axes.Iter(), emit)
	s.Fill(f.Heads.Iter(), emit)
}

// RenderRGBA draws the frame in white on a dark background.
func (f *Frame) RenderRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	g := uint8(background*255 + 0.5)
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{g, g, g, 255}), image.Point{}, draw.Src)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	f.paint(f.Width, f.Height, raster.PaintRGBA(img, white))

	if f.Legend {
		f.drawLegend(img)
	}
	return img
}

// drawLegend writes a description of the view state into the top left
// corner of img.
func (f *Frame) drawLegend(img *image.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{160, 160, 160, 255}),
		Face: face,
	}
	lineHeight := face.Metrics().Height
	y := fixed.I(4) + face.Metrics().Ascent
	for _, line := range f.legend() {
		d.Dot = fixed.Point26_6{X: fixed.I(4), Y: y}
		d.DrawString(line)
		y += lineHeight
	}
}

func (f *Frame) legend() []string {
	st := &f.State
	fn := "identity"
	if st.ApplyFunction {
		fn = fmt.Sprintf("%s  p=%g%+gi  t=%g", st.Function, st.ParamRe, st.ParamIm, st.Homotopy)
	}
	return []string{
		"f: " + fn,
		fmt.Sprintf("window [%g, %g] x [%g, %g]", st.XMin, st.XMax, st.YMin, st.YMax),
		fmt.Sprintf("%g lines/unit, %g points/unit", f.Grid.Coarse, f.Grid.Fine),
		fmt.Sprintf("scale %.2f  %d lines  %d points", st.Scale, f.Grid.NumLines(), f.Grid.Len()),
	}
}

// WritePNG encodes the RGBA rendering of the frame as PNG.
func (f *Frame) WritePNG(w io.Writer) error {
	return png.Encode(w, f.RenderRGBA())
}

// WritePDF writes the frame as a single page PDF file, using one point
// per pixel. Lines are kept as vector graphics.
func (f *Frame) WritePDF(fname string) error {
	paper := &pdf.Rectangle{
		URx: float64(f.Width),
		URy: float64(f.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(background))
	page.Rectangle(0, 0, float64(f.Width), float64(f.Height))
	page.Fill()

	// frame coordinates have the origin at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(f.Height)})

	addPath := func(p *path.Data) {
		for cmd, pts := range p.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	page.SetStrokeColor(pdfcolor.DeviceGray(1))
	page.SetFillColor(pdfcolor.DeviceGray(1))

	if len(f.Lines.Cmds) > 0 {
		page.SetLineWidth(gridLineWidth)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		addPath(f.Lines)
		page.Stroke()
	}

	if len(f.Axes.Cmds) > 0 {
		page.SetLineWidth(axisLineWidth)
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineJoin(graphics.LineJoinMiter)
		addPath(f.Axes)
		page.Stroke()
		addPath(f.Heads)
		page.Fill()
	}

	return page.Close()
}

// Save writes the frame to a file. The format is chosen by the file name
// extension, ".png" or ".pdf".
func (f *Frame) Save(fname string) error {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".pdf":
		return f.WritePDF(fname)
	case ".png":
		out, err := os.Create(fname)
		if err != nil {
			return err
		}
		err = f.WritePNG(out)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		return err
	default:
		return fmt.Errorf("%q: %w", fname, ErrFormat)
	}
}

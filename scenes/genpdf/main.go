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

// Command genpdf renders every scene to PDF and PNG.
// If -gs is given, the PDF files are additionally rasterised with
// Ghostscript, for comparison with the built-in renderer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/conformal"
	"seehuhn.de/go/conformal/scenes"
)

func main() {
	outDir := flag.String("d", "testdata/scenes", "output directory")
	useGS := flag.Bool("gs", false, "also render the PDF files with Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, name := range scenes.Names() {
		if err := generate(name, *outDir, *useGS); err != nil {
			log.Fatal(fmt.Errorf("%s: %w", name, err))
		}
	}
}

func generate(name, dir string, useGS bool) error {
	sc, err := scenes.Lookup(name)
	if err != nil {
		return err
	}
	fr, err := conformal.NewFrame(sc.State, sc.Width, sc.Height)
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(dir, name+".pdf")
	if err := fr.Save(pdfPath); err != nil {
		return err
	}
	if err := fr.Save(filepath.Join(dir, name+".png")); err != nil {
		return err
	}

	if useGS {
		return renderGS(pdfPath, filepath.Join(dir, name+"_gs.png"))
	}
	return nil
}

func renderGS(pdfPath, pngPath string) error {
	// -r72 gives one pixel per PDF point, matching the frame size
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

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

// Command export writes the scene definitions to JSON.
// The resulting file can be loaded with the -config flag of the conformal
// command. Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"seehuhn.de/go/conformal/scenes"
	"seehuhn.de/go/conformal/view"
)

type jsonScene struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	State  view.State `json:"state"`
}

func main() {
	out := flag.String("o", "testdata/scenes.json", "output file")
	flag.Parse()

	if err := export(*out); err != nil {
		log.Fatal(err)
	}
}

func export(fname string) error {
	var data struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, name := range scenes.Names() {
		sc, err := scenes.Lookup(name)
		if err != nil {
			return err
		}
		data.Scenes = append(data.Scenes, jsonScene{
			Name:   name,
			Width:  sc.Width,
			Height: sc.Height,
			State:  sc.State,
		})
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return err
	}
	return f.Close()
}

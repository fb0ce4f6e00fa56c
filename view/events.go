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

package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/conformal/grid"
)

// Key identifies a keyboard key which has a meaning for the view.
type Key uint8

// Keys understood by the view.
const (
	KeyA Key = iota
	KeyD
	KeyW
	KeyS
	KeyLShift
	KeyLControl
	KeySpace
	KeyR
	numKeys
)

var keyNames = [numKeys]string{
	KeyA:        "a",
	KeyD:        "d",
	KeyW:        "w",
	KeyS:        "s",
	KeyLShift:   "shift",
	KeyLControl: "ctrl",
	KeySpace:    "space",
	KeyR:        "r",
}

func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey converts a key name, as returned by [Key.String], into a Key.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("key %q: %w", name, ErrBadEvent)
}

// keySet records which keys are held down.
type keySet uint16

func (ks keySet) has(k Key) bool { return ks&(1<<k) != 0 }
func (ks keySet) empty() bool    { return ks == 0 }

// Event is an input event which changes the view state.
type Event interface {
	apply(s *State)
}

// KeyDown records that a key was pressed and is held.
type KeyDown struct {
	Key Key
}

// KeyUp records that a key was released.
// Releasing Space toggles ApplyFunction, releasing R resets the function
// parameter to 1.
type KeyUp struct {
	Key Key
}

// Scroll is a mouse wheel or touchpad movement in pixels.
//
// What the movement changes depends on the keys held:
// A moves the left and D the right window edge horizontally,
// W moves the top and S the bottom edge vertically,
// Shift changes the scale, Control changes the resolution.
// Without any held key the picture is panned.
type Scroll struct {
	DX, DY float64
}

func (e KeyDown) apply(s *State) {
	if e.Key < numKeys {
		s.held |= 1 << e.Key
	}
}

func (e KeyUp) apply(s *State) {
	if e.Key < numKeys {
		s.held &^= 1 << e.Key
	}
	switch e.Key {
	case KeySpace:
		s.ApplyFunction = !s.ApplyFunction
	case KeyR:
		s.SetParameter(1, 0)
	}
}

func (e Scroll) apply(s *State) {
	if s.held.empty() {
		k := s.PixelsPerUnit()
		s.SetPosition(s.Position.X-e.DX/k*10, s.Position.Y-e.DY/k*10)
		return
	}

	// edges move by half a grid cell per pixel
	step := 2 * float64(grid.Level(s.Resolution))
	if s.held.has(KeyA) {
		s.SetXMin(s.XMin - float32(e.DX/step))
	}
	if s.held.has(KeyD) {
		s.SetXMax(s.XMax - float32(e.DX/step))
	}
	if s.held.has(KeyW) {
		s.SetYMax(s.YMax - float32(e.DY/step))
	}
	if s.held.has(KeyS) {
		s.SetYMin(s.YMin - float32(e.DY/step))
	}
	if s.held.has(KeyLShift) {
		s.SetScale(s.Scale - e.DY/10)
	}
	if s.held.has(KeyLControl) {
		s.SetResolution(s.Resolution - float32(e.DY/20))
	}
}

// Apply updates the state for the given events, in order.
func (s *State) Apply(events ...Event) {
	for _, e := range events {
		e.apply(s)
	}
}

// Held reports whether key k is currently held down.
func (s *State) Held(k Key) bool {
	return s.held.has(k)
}

// ErrBadEvent is returned for malformed event descriptions.
var ErrBadEvent = errors.New("malformed event")

// ParseEvents parses a semicolon separated list of events:
//
//	down:KEY      key pressed
//	up:KEY        key released
//	press:KEY     key pressed and released
//	scroll:DX,DY  wheel movement in pixels
//
// Key names are those returned by [Key.String].
func ParseEvents(script string) ([]Event, error) {
	var events []Event
	for i, item := range strings.Split(script, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kind, arg, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("event %d %q: %w", i+1, item, ErrBadEvent)
		}
		switch strings.ToLower(kind) {
		case "down", "up", "press":
			k, err := ParseKey(arg)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", i+1, err)
			}
			switch strings.ToLower(kind) {
			case "down":
				events = append(events, KeyDown{k})
			case "up":
				events = append(events, KeyUp{k})
			default:
				events = append(events, KeyDown{k}, KeyUp{k})
			}
		case "scroll":
			xs, ys, ok := strings.Cut(arg, ",")
			if !ok {
				return nil, fmt.Errorf("event %d %q: %w", i+1, item, ErrBadEvent)
			}
			dx, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w: %w", i+1, ErrBadEvent, err)
			}
			dy, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w: %w", i+1, ErrBadEvent, err)
			}
			events = append(events, Scroll{DX: dx, DY: dy})
		default:
			return nil, fmt.Errorf("event %d: unknown kind %q: %w", i+1, kind, ErrBadEvent)
		}
	}
	return events, nil
}

// seehuhn.de/go/clip - line clipping for 2D graphics
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

package clip

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outcode is a 4-bit region code describing which window boundaries a
// point lies beyond.  The bits are independent: a point in a corner region
// has two bits set.
type Outcode uint8

// Region code bits.  Inside means that no boundary is violated.
const (
	Inside Outcode = 0
	Left   Outcode = 1 << (iota - 1)
	Right
	Bottom
	Top
)

// Classify returns the region code of p relative to the window w.
// Points exactly on a boundary are inside with respect to that boundary.
func Classify(p vec.Vec2, w rect.Rect) Outcode {
	code := Inside
	if p.X < w.LLx {
		code |= Left
	} else if p.X > w.URx {
		code |= Right
	}
	if p.Y < w.LLy {
		code |= Bottom
	} else if p.Y > w.URy {
		code |= Top
	}
	return code
}

var outcodeNames = [...]struct {
	bit  Outcode
	name string
}{
	{Left, "left"},
	{Right, "right"},
	{Bottom, "bottom"},
	{Top, "top"},
}

// String returns the names of the set bits, joined by "|".
func (c Outcode) String() string {
	if c == Inside {
		return "inside"
	}
	var parts []string
	for _, n := range outcodeNames {
		if c&n.bit != 0 {
			parts = append(parts, n.name)
			c &^= n.bit
		}
	}
	if c != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint8(c)))
	}
	return strings.Join(parts, "|")
}

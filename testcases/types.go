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

package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clip"
)

// TestCase defines a set of segments clipped against one window.
type TestCase struct {
	Name     string         // lowercase a-z and _ only
	Window   rect.Rect      // the clip window
	Segments []clip.Segment // the input segments
	Want     []clip.Result  // expected result for each segment
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// seg is a helper to create a segment from its endpoint coordinates.
func seg(x1, y1, x2, y2 float64) clip.Segment {
	return clip.Segment{A: pt(x1, y1), B: pt(x2, y2)}
}

// visible is the expected result for a segment which clips to the given
// endpoints.
func visible(x1, y1, x2, y2 float64) clip.Result {
	return clip.Result{Segment: seg(x1, y1, x2, y2), Visible: true}
}

// rejected is the expected result for a segment outside the window.
var rejected = clip.Result{}

// square returns the window [-r, r] × [-r, r].
func square(r float64) rect.Rect {
	return rect.Rect{LLx: -r, LLy: -r, URx: r, URy: r}
}

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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polyline clips the open polyline through pts against w.  The visible
// parts are returned as separate runs of vertices.  A new run starts
// whenever the polyline re-enters the window.  Runs with fewer than two
// vertices are omitted.
func Polyline(pts []vec.Vec2, w rect.Rect) [][]vec.Vec2 {
	var runs [][]vec.Vec2
	var cur []vec.Vec2
	connected := false
	for i := 1; i < len(pts); i++ {
		s, ok := Line(Segment{A: pts[i-1], B: pts[i]}, w)
		if !ok {
			connected = false
			continue
		}
		if !connected || s.A != pts[i-1] {
			if len(cur) >= 2 {
				runs = append(runs, cur)
			}
			cur = []vec.Vec2{s.A}
		}
		cur = append(cur, s.B)
		connected = s.B == pts[i]
	}
	if len(cur) >= 2 {
		runs = append(runs, cur)
	}
	return runs
}

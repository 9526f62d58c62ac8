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

// Package clip implements Cohen-Sutherland clipping of line segments
// against an axis-aligned rectangular window.
//
// Windows are given as [rect.Rect] values, with LLx/LLy the minimum and
// URx/URy the maximum coordinates.  The window is closed: points on the
// boundary count as inside.
package clip

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a line segment from A to B.  A and B may coincide.
type Segment struct {
	A, B vec.Vec2
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// boundaryOrder is the order in which the boundaries violated by an
// endpoint are corrected.  Only one boundary is handled per iteration.
var boundaryOrder = [4]Outcode{Top, Bottom, Right, Left}

// maxCorrections bounds the number of endpoint corrections.  Exact
// arithmetic needs at most two per endpoint, four in total; the extra
// slack absorbs rounding near window corners.
const maxCorrections = 8

// Line clips s to the window w.  If some part of s lies inside w
// (boundary included), the visible part is returned together with true.
// The endpoints of the result keep the orientation of s.  If s misses the
// window entirely, Line returns false.
//
// The window must be valid, see [CheckWindow].
func Line(s Segment, w rect.Rect) (Segment, bool) {
	return clipLine(s, w, &boundaryOrder, maxCorrections)
}

// clipLine implements Line with a configurable boundary priority and
// correction limit.
func clipLine(s Segment, w rect.Rect, order *[4]Outcode, limit int) (Segment, bool) {
	p1, p2 := s.A, s.B
	code1 := Classify(p1, w)
	code2 := Classify(p2, w)

	for n := 0; ; n++ {
		if code1|code2 == Inside {
			return Segment{A: p1, B: p2}, true
		}
		if code1&code2 != Inside {
			return Segment{}, false
		}
		if n == limit {
			// Rounding kept moving an endpoint across a corner.
			// The segment grazes the window in at most one point.
			return Segment{}, false
		}

		moveFirst := code1 != Inside
		codeOut := code1
		if !moveFirst {
			codeOut = code2
		}

		var p vec.Vec2
		found := false
		for _, bit := range order {
			if codeOut&bit == 0 {
				continue
			}
			p, found = intersect(p1, p2, bit, w)
			break
		}
		if !found {
			// Either the line is parallel to the boundary, which the
			// trivial reject excludes, or the intersection could not
			// be represented.
			return Segment{}, false
		}

		if moveFirst {
			p1 = p
			code1 = Classify(p1, w)
		} else {
			p2 = p
			code2 = Classify(p2, w)
		}
	}
}

// intersect returns the point where the line through p1 and p2 meets the
// boundary line of w selected by bit.  The second result is false if the
// line is parallel to that boundary or if no finite intersection point
// can be computed.
func intersect(p1, p2 vec.Vec2, bit Outcode, w rect.Rect) (vec.Vec2, bool) {
	switch bit {
	case Top:
		x, ok := crossing(p1.Y, p1.X, p2.Y, p2.X, w.URy)
		return vec.Vec2{X: x, Y: w.URy}, ok
	case Bottom:
		x, ok := crossing(p1.Y, p1.X, p2.Y, p2.X, w.LLy)
		return vec.Vec2{X: x, Y: w.LLy}, ok
	case Right:
		y, ok := crossing(p1.X, p1.Y, p2.X, p2.Y, w.URx)
		return vec.Vec2{X: w.URx, Y: y}, ok
	case Left:
		y, ok := crossing(p1.X, p1.Y, p2.X, p2.Y, w.LLx)
		return vec.Vec2{X: w.LLx, Y: y}, ok
	}
	panic("unreachable")
}

// crossing returns v such that (bound, v) lies on the line through
// (u1, v1) and (u2, v2).  The second result is false if u1 == u2 or if the
// result is not finite.
func crossing(u1, v1, u2, v2, bound float64) (float64, bool) {
	if u1 == u2 {
		return 0, false
	}
	du := u2 - u1
	v := v1 + (v2-v1)*(bound-u1)/du
	if isFinite(du) && isFinite(v) {
		return v, true
	}

	// The differences overflowed.  Halving all terms keeps them finite,
	// and bound lies between u1 and u2, so 0 <= t <= 1.
	t := (bound/2 - u1/2) / (u2/2 - u1/2)
	v = (1-t)*v1 + t*v2
	return v, isFinite(v)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

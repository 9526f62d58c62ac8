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

package plot

import (
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// stroker expands line paths into filled outlines for a vector.Rasterizer.
// Curves are not supported; the figure only contains straight lines.
type stroker struct {
	CTM    matrix.Matrix // user space to device space
	Width  float64       // line width in device pixels
	Square bool          // extend each piece by half the width at both ends
	Dash   []float64     // on/off lengths in device pixels, nil for solid

	// dash state, carried across the segments of a subpath
	dashIdx   int
	remaining float64
}

// apply transforms p from user space to device space.
func (s *stroker) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*p.X + s.CTM[2]*p.Y + s.CTM[4],
		Y: s.CTM[1]*p.X + s.CTM[3]*p.Y + s.CTM[5],
	}
}

// Stroke adds the outline of every line in p to r.
func (s *stroker) Stroke(r *vector.Rasterizer, p *path.Data) {
	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = s.apply(p.Coords[coordIdx])
			subpath = current
			s.resetDash()
			coordIdx++
		case path.CmdLineTo:
			next := s.apply(p.Coords[coordIdx])
			s.addLine(r, current, next)
			current = next
			coordIdx++
		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		case path.CmdClose:
			if current != subpath {
				s.addLine(r, current, subpath)
			}
			current = subpath
		}
	}
}

func (s *stroker) resetDash() {
	s.dashIdx = 0
	if len(s.Dash) > 0 {
		s.remaining = s.Dash[0]
	}
}

// dashed reports whether the dash pattern splits lines at all.  Patterns
// with a negative entry or zero total length stroke solid lines.
func (s *stroker) dashed() bool {
	patternLen := 0.0
	for _, d := range s.Dash {
		if d < 0 || !isFinite(d) {
			return false
		}
		patternLen += d
	}
	return patternLen > 0
}

// addLine adds the line from a to b, split into dashes if needed.
// Both points are in device space.
func (s *stroker) addLine(r *vector.Rasterizer, a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	if !s.dashed() {
		s.addPiece(r, a, b)
		return
	}

	pos := 0.0
	for pos < length {
		step := min(s.remaining, length-pos)
		if s.dashIdx%2 == 0 && step > 0 {
			s.addPiece(r, a.Add(d.Mul(pos/length)), a.Add(d.Mul((pos+step)/length)))
		}
		pos += step
		s.remaining -= step
		if s.remaining <= 0 {
			s.dashIdx = (s.dashIdx + 1) % len(s.Dash)
			s.remaining = s.Dash[s.dashIdx]
		}
	}
}

// addPiece adds a single rectangle around the line from a to b.
func (s *stroker) addPiece(r *vector.Rasterizer, a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)
	hw := s.Width / 2
	if s.Square {
		a = a.Sub(t.Mul(hw))
		b = b.Add(t.Mul(hw))
	}

	corners := [4]vec.Vec2{
		a.Add(n.Mul(hw)),
		b.Add(n.Mul(hw)),
		b.Sub(n.Mul(hw)),
		a.Sub(n.Mul(hw)),
	}
	r.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		r.LineTo(float32(c.X), float32(c.Y))
	}
	r.ClosePath()
}

// dot adds a filled square of side Width centred at p (user space).
// Lines of length zero are drawn this way.
func (s *stroker) dot(r *vector.Rasterizer, p vec.Vec2) {
	c := s.apply(p)
	hw := math.Max(s.Width, 1) / 2
	r.MoveTo(float32(c.X-hw), float32(c.Y-hw))
	r.LineTo(float32(c.X+hw), float32(c.Y-hw))
	r.LineTo(float32(c.X+hw), float32(c.Y+hw))
	r.LineTo(float32(c.X-hw), float32(c.Y+hw))
	r.ClosePath()
}

// zeroLengthThreshold is the minimum length, in device pixels, of a line
// piece.  Shorter pieces are skipped.
const zeroLengthThreshold = 1e-10

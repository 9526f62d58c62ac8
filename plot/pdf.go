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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/clip"
)

// pdfSize is the page size of PDF output, in PDF points.
const pdfSize = 400

// WritePDF writes the figure as a single-page PDF file.  Text is omitted;
// the window is drawn in black, the clipped segments as thick black lines
// and the input segments in dashed grey on top.
func (f *Figure) WritePDF(fname string) error {
	paper := &pdf.Rectangle{URx: pdfSize, URy: pdfSize}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has y pointing up, so undo the flip of the device transform.
	m, _ := f.layout(pdfSize, pdfSize)
	pos := &stroker{CTM: matrix.Matrix{m[0], -m[1], m[2], -m[3], m[4], pdfSize - m[5]}}
	n := 0 // number of lines in the current path
	line := func(a, b vec.Vec2) {
		a, b = pos.apply(a), pos.apply(b)
		page.MoveTo(a.X, a.Y)
		page.LineTo(b.X, b.Y)
		n++
	}
	stroke := func() {
		if n > 0 {
			page.Stroke()
		}
		n = 0
	}

	vp := f.viewport()

	// Dashed lines come last, so that the dash pattern never needs to be
	// reset.
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	if step := f.gridStep(); step > 0 {
		page.SetStrokeColor(pdfcolor.DeviceGray(0.85))
		page.SetLineWidth(gridWidth)
		for _, x := range gridTicks(vp.LLx, vp.URx, step) {
			line(vec.Vec2{X: x, Y: vp.LLy}, vec.Vec2{X: x, Y: vp.URy})
		}
		for _, y := range gridTicks(vp.LLy, vp.URy, step) {
			line(vec.Vec2{X: vp.LLx, Y: y}, vec.Vec2{X: vp.URx, Y: y})
		}
		stroke()
	}

	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(windowWidth)
	for _, r := range []rect.Rect{vp, f.Window} {
		a := pos.apply(vec.Vec2{X: r.LLx, Y: r.LLy})
		b := pos.apply(vec.Vec2{X: r.URx, Y: r.URy})
		page.Rectangle(a.X, a.Y, b.X-a.X, b.Y-a.Y)
	}
	page.Stroke()

	page.SetLineWidth(clippedWidth)
	page.SetLineCap(graphics.LineCapRound)
	for _, res := range f.results() {
		if res.Visible {
			line(res.A, res.B)
		}
	}
	stroke()

	page.SetStrokeColor(pdfcolor.DeviceGray(0.5))
	page.SetLineWidth(originalWidth)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineDash(originalDash, 0)
	for _, s := range f.Segments {
		if c, ok := clip.Line(s, vp); ok {
			line(c.A, c.B)
		}
	}
	stroke()

	return page.Close()
}

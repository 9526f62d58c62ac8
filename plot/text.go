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
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// legendEntries lists the legend labels in drawing order.
var legendEntries = []struct {
	label string
	col   color.RGBA
	dash  []float64
}{
	{"Clipping Window", windowColor, nil},
	{"Original Line", originalColor, originalDash},
	{"Clipped Line", clippedColor, nil},
}

// drawLabels draws the title, the tick labels and the legend.
func (f *Figure) drawLabels(img *image.RGBA, ctm matrix.Matrix, area rect.Rect) {
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	if f.Title != "" {
		w := font.MeasureString(face, f.Title).Ceil()
		x := (img.Bounds().Dx() - w) / 2
		drawText(img, f.Title, x, (padTop-13)/2+ascent)
	}

	if step := f.gridStep(); step > 0 {
		vp := f.viewport()
		pos := &stroker{CTM: ctm}
		for _, x := range gridTicks(vp.LLx, vp.URx, step) {
			label := formatTick(x)
			p := pos.apply(vec.Vec2{X: x, Y: vp.LLy})
			w := font.MeasureString(face, label).Ceil()
			drawText(img, label, int(p.X)-w/2, int(area.URy)+4+ascent)
		}
		for _, y := range gridTicks(vp.LLy, vp.URy, step) {
			label := formatTick(y)
			p := pos.apply(vec.Vec2{X: vp.LLx, Y: y})
			w := font.MeasureString(face, label).Ceil()
			drawText(img, label, int(area.LLx)-w-4, int(p.Y)+ascent/2)
		}
	}

	drawLegend(img, area)
}

// drawLegend draws the legend box into the upper right corner of area.
func drawLegend(img *image.RGBA, area rect.Rect) {
	const (
		lineH   = 16
		sampleW = 24
		pad     = 6
	)
	face := basicfont.Face7x13

	textW := 0
	for _, e := range legendEntries {
		textW = max(textW, font.MeasureString(face, e.label).Ceil())
	}
	boxW := pad + sampleW + pad + textW + pad
	boxH := pad + lineH*len(legendEntries) + pad
	x0 := int(area.URx) - boxW - 8
	y0 := int(area.LLy) + 8
	box := image.Rect(x0, y0, x0+boxW, y0+boxH)

	draw.Draw(img, box, image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	size := img.Bounds().Size()
	r := vector.NewRasterizer(size.X, size.Y)
	border := &stroker{CTM: matrix.Identity, Width: 1, Square: true}
	border.Stroke(r, rectPath(rect.Rect{
		LLx: float64(box.Min.X), LLy: float64(box.Min.Y),
		URx: float64(box.Max.X), URy: float64(box.Max.Y),
	}))
	r.Draw(img, img.Bounds(), image.NewUniform(gridColor), image.Point{})

	ascent := face.Metrics().Ascent.Ceil()
	for i, e := range legendEntries {
		yMid := float64(y0 + pad + i*lineH + lineH/2)
		r.Reset(size.X, size.Y)
		s := &stroker{CTM: matrix.Identity, Width: 2, Dash: e.dash}
		s.resetDash()
		s.addLine(r, vec.Vec2{X: float64(x0 + pad), Y: yMid}, vec.Vec2{X: float64(x0 + pad + sampleW), Y: yMid})
		r.Draw(img, img.Bounds(), image.NewUniform(e.col), image.Point{})

		drawText(img, e.label, x0+pad+sampleW+pad, int(yMid)+ascent/2-1)
	}
}

// drawText draws s with its baseline starting at (x, y).
func drawText(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// formatTick formats a grid coordinate for display.
func formatTick(v float64) string {
	if v == 0 {
		v = 0 // avoid "-0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

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

// Package plot draws clip windows together with the original and the
// clipped line segments.
//
// The figure shows the window as a blue rectangle, the input segments as
// grey dashed lines and the clipped segments as red lines, on a square
// canvas with equal scaling for both axes.  Images are rendered with
// golang.org/x/image/vector; vector output is written as PDF.
package plot

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clip"
)

// Figure describes the content of a plot.
type Figure struct {
	// Window is the clip window.  It must be valid, see [clip.CheckWindow].
	Window rect.Rect

	// Segments are the line segments to clip against Window.
	Segments []clip.Segment

	// Margin is the space shown around the window, in user-space units.
	Margin float64

	// Grid is the spacing of the background grid in user-space units.
	// Zero disables the grid.  If Grid would give more than maxGridLines
	// lines across the viewport, a coarser round spacing is used instead.
	Grid float64

	// Title is drawn above the plot area.  It may be empty.
	Title string
}

// NewFigure returns a figure for the given window and segments, with the
// default margin, grid and title.
func NewFigure(window rect.Rect, segs []clip.Segment) *Figure {
	return &Figure{
		Window:   window,
		Segments: segs,
		Margin:   10,
		Grid:     5,
		Title:    "Cohen-Sutherland Clipping Algorithm",
	}
}

// Colours used for the different parts of the figure.
var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gridColor       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	frameColor      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	windowColor     = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	originalColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	clippedColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Line styles, in device pixels.
var (
	gridDash     = []float64{3, 3}
	originalDash = []float64{6, 4}
)

const (
	gridWidth     = 0.5
	frameWidth    = 1
	windowWidth   = 1.5
	originalWidth = 1.5
	clippedWidth  = 2.5
)

// Space reserved around the plot area, in device pixels.
const (
	padLeft   = 44
	padRight  = 16
	padTop    = 30
	padBottom = 28
)

// viewport returns the part of user space shown in the plot.
func (f *Figure) viewport() rect.Rect {
	m := max(f.Margin, 0)
	return rect.Rect{
		LLx: f.Window.LLx - m,
		LLy: f.Window.LLy - m,
		URx: f.Window.URx + m,
		URy: f.Window.URy + m,
	}
}

// layout maps the viewport into a canvas of the given size, keeping the
// aspect ratio.  The returned matrix transforms user space to device
// space (y pointing down); area is the plot area in device space.
func (f *Figure) layout(width, height float64) (ctm matrix.Matrix, area rect.Rect) {
	vp := f.viewport()
	vw := max(vp.URx-vp.LLx, 1e-9)
	vh := max(vp.URy-vp.LLy, 1e-9)

	availW := max(width-padLeft-padRight, 1)
	availH := max(height-padTop-padBottom, 1)
	scale := min(availW/vw, availH/vh)

	area.LLx = padLeft + (availW-scale*vw)/2
	area.LLy = padTop + (availH-scale*vh)/2
	area.URx = area.LLx + scale*vw
	area.URy = area.LLy + scale*vh

	ctm = matrix.Matrix{
		scale, 0,
		0, -scale,
		area.LLx - scale*vp.LLx, area.LLy + scale*vp.URy,
	}
	return ctm, area
}

// Image renders the figure into a new square RGBA image with the given
// side length in pixels.
func (f *Figure) Image(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	ctm, area := f.layout(float64(size), float64(size))
	vp := f.viewport()
	r := vector.NewRasterizer(size, size)

	paint := func(col color.RGBA, fill func(r *vector.Rasterizer)) {
		r.Reset(size, size)
		fill(r)
		r.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
	}

	if step := f.gridStep(); step > 0 {
		s := &stroker{CTM: ctm, Width: gridWidth, Dash: gridDash}
		paint(gridColor, func(r *vector.Rasterizer) { s.Stroke(r, gridPath(vp, step)) })
	}

	frame := &stroker{CTM: ctm, Width: frameWidth, Square: true}
	paint(frameColor, func(r *vector.Rasterizer) { frame.Stroke(r, rectPath(vp)) })

	win := &stroker{CTM: ctm, Width: windowWidth, Square: true}
	paint(windowColor, func(r *vector.Rasterizer) { win.Stroke(r, rectPath(f.Window)) })

	// The input segments may extend beyond the plot area.
	orig := &stroker{CTM: ctm, Width: originalWidth, Dash: originalDash}
	paint(originalColor, func(r *vector.Rasterizer) {
		for _, s := range f.Segments {
			if c, ok := clip.Line(s, vp); ok {
				orig.Stroke(r, segmentPath(c))
			}
		}
	})

	cl := &stroker{CTM: ctm, Width: clippedWidth}
	paint(clippedColor, func(r *vector.Rasterizer) {
		for _, res := range f.results() {
			if !res.Visible {
				continue
			}
			if res.A == res.B {
				cl.dot(r, res.A)
			} else {
				cl.Stroke(r, segmentPath(res.Segment))
			}
		}
	})

	f.drawLabels(img, ctm, area)
	return img
}

// results clips all segments of the figure.
func (f *Figure) results() []clip.Result {
	res := make([]clip.Result, 0, len(f.Segments))
	for _, r := range clip.All(slices.Values(f.Segments), f.Window) {
		res = append(res, r)
	}
	return res
}

// WritePNG renders the figure with the given side length and writes it to
// w in PNG format.
func (f *Figure) WritePNG(w io.Writer, size int) error {
	return png.Encode(w, f.Image(size))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// rectPath returns the outline of r as a closed path.
func rectPath(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// segmentPath returns s as an open path.
func segmentPath(s clip.Segment) *path.Data {
	return (&path.Data{}).MoveTo(s.A).LineTo(s.B)
}

// maxGridLines is the largest number of grid lines drawn along one axis.
const maxGridLines = 50

// gridStep returns the grid spacing to use for the figure, or 0 if no grid
// is drawn.
func (f *Figure) gridStep() float64 {
	if !(f.Grid > 0) || !isFinite(f.Grid) {
		return 0
	}
	vp := f.viewport()
	span := max(vp.URx-vp.LLx, vp.URy-vp.LLy)
	if !isFinite(span) {
		return 0
	}
	if span/f.Grid <= maxGridLines {
		return f.Grid
	}
	return niceStep(span, 10)
}

// niceStep returns a spacing of the form 1, 2 or 5 times a power of ten
// which divides span into at most about n intervals.
func niceStep(span float64, n int) float64 {
	raw := span / float64(n)
	if !(raw > 0) || !isFinite(raw) {
		return 0
	}
	base := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if m*base >= raw {
			return m * base
		}
	}
	return 10 * base
}

// gridTicks returns the multiples of step inside [lo, hi], at most
// maxGridLines+1 of them.
func gridTicks(lo, hi, step float64) []float64 {
	if !(step > 0) || !isFinite(step) || !isFinite(lo) || !isFinite(hi) {
		return nil
	}
	first := math.Ceil(lo / step)
	last := math.Floor(hi / step)
	if !(last >= first) {
		return nil
	}
	n := min(last-first+1, maxGridLines+1)

	ticks := make([]float64, 0, int(n))
	for i := range int(n) {
		ticks = append(ticks, (first+float64(i))*step)
	}
	return ticks
}

// gridPath returns the grid lines covering vp.
func gridPath(vp rect.Rect, step float64) *path.Data {
	p := &path.Data{}
	for _, x := range gridTicks(vp.LLx, vp.URx, step) {
		p = p.MoveTo(vec.Vec2{X: x, Y: vp.LLy}).LineTo(vec.Vec2{X: x, Y: vp.URy})
	}
	for _, y := range gridTicks(vp.LLy, vp.URy, step) {
		p = p.MoveTo(vec.Vec2{X: vp.LLx, Y: y}).LineTo(vec.Vec2{X: vp.URx, Y: y})
	}
	return p
}

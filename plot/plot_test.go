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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clip"
)

func demoFigure() *Figure {
	window := rect.Rect{LLx: -10, LLy: -10, URx: 10, URy: 10}
	segs := []clip.Segment{
		{A: vec.Vec2{X: -15, Y: -15}, B: vec.Vec2{X: 15, Y: 15}},
		{A: vec.Vec2{X: 0, Y: -20}, B: vec.Vec2{X: 0, Y: 20}},
		{A: vec.Vec2{X: -20, Y: 0}, B: vec.Vec2{X: 20, Y: 0}},
		{A: vec.Vec2{X: -30, Y: -30}, B: vec.Vec2{X: -10, Y: -10}},
	}
	return NewFigure(window, segs)
}

func TestLayout(t *testing.T) {
	f := demoFigure()
	ctm, area := f.layout(400, 400)
	s := &stroker{CTM: ctm}

	// the viewport corners map to the corners of the plot area, with
	// the y axis pointing down
	ll := s.apply(vec.Vec2{X: -20, Y: -20})
	ur := s.apply(vec.Vec2{X: 20, Y: 20})
	const eps = 1e-9
	if d := ll.Sub(vec.Vec2{X: area.LLx, Y: area.URy}).Length(); d > eps {
		t.Errorf("lower left maps to %v, area %v", ll, area)
	}
	if d := ur.Sub(vec.Vec2{X: area.URx, Y: area.LLy}).Length(); d > eps {
		t.Errorf("upper right maps to %v, area %v", ur, area)
	}

	// equal scaling on both axes
	if w, h := area.URx-area.LLx, area.URy-area.LLy; w-h > eps || h-w > eps {
		t.Errorf("plot area %gx%g is not square", w, h)
	}
}

func TestImageColours(t *testing.T) {
	f := demoFigure()
	const size = 400
	img := f.Image(size)
	ctm, _ := f.layout(size, size)
	s := &stroker{CTM: ctm}

	pixel := func(x, y float64) color.RGBA {
		p := s.apply(vec.Vec2{X: x, Y: y})
		return img.RGBAAt(int(p.X), int(p.Y))
	}

	// all clipped segments meet at the origin
	if c := pixel(0, 0); c.R < 240 || c.G > 20 || c.B > 20 {
		t.Errorf("origin: got %v, want red", c)
	}

	// top edge of the window, away from all segments and grid lines
	if c := pixel(2.5, 10); int(c.B)-int(c.R) < 100 {
		t.Errorf("window edge: got %v, want blue", c)
	}

	// empty space between the window and the frame
	if c := pixel(12.5, 2.5); c != backgroundColor {
		t.Errorf("background: got %v, want %v", c, backgroundColor)
	}

	// the title is drawn above the plot area
	found := false
	for y := range padTop {
		for x := range size {
			if img.RGBAAt(x, y).R < 128 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no title text found")
	}
}

func TestNoTitleNoGrid(t *testing.T) {
	f := demoFigure()
	f.Title = ""
	f.Grid = 0
	img := f.Image(200)
	for y := range padTop - 2 {
		for x := range 200 {
			if c := img.RGBAAt(x, y); c != backgroundColor {
				t.Fatalf("pixel (%d, %d) = %v, want background", x, y, c)
			}
		}
	}
}

func TestWritePNG(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := demoFigure().WritePNG(buf, 300); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Errorf("image size %v, want 300x300", b)
	}
}

func TestWritePDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "figure.pdf")
	if err := demoFigure().WritePDF(fname); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestDash(t *testing.T) {
	const w, h = 40, 10
	r := vector.NewRasterizer(w, h)
	s := &stroker{CTM: matrix.Identity, Width: 2, Dash: []float64{6, 4}}
	s.Stroke(r, (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 5.5}).
		LineTo(vec.Vec2{X: 40, Y: 5.5}))

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	for x := range w {
		on := x%10 < 6
		got := dst.AlphaAt(x, 5).A
		if on && got < 200 || !on && got > 50 {
			t.Errorf("x=%d: alpha %d, dash on = %t", x, got, on)
		}
	}
}

// TestDashDegenerate checks that patterns which cannot advance along the
// line are stroked solid.
func TestDashDegenerate(t *testing.T) {
	patterns := map[string][]float64{
		"zero":     {0, 0},
		"single":   {0},
		"negative": {-1, 2},
		"nan":      {math.NaN(), 1},
	}
	for name, dash := range patterns {
		t.Run(name, func(t *testing.T) {
			const w, h = 40, 10
			r := vector.NewRasterizer(w, h)
			s := &stroker{CTM: matrix.Identity, Width: 2, Dash: dash}
			s.Stroke(r, (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 5.5}).
				LineTo(vec.Vec2{X: 40, Y: 5.5}))

			dst := image.NewAlpha(image.Rect(0, 0, w, h))
			r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			for x := range w {
				if got := dst.AlphaAt(x, 5).A; got < 200 {
					t.Errorf("x=%d: alpha %d, want solid line", x, got)
				}
			}
		})
	}
}

func TestGridTicks(t *testing.T) {
	cases := []struct {
		name         string
		lo, hi, step float64
		want         []float64
	}{
		{"demo", -12, 7, 5, []float64{-10, -5, 0, 5}},
		{"exact", 0, 10, 5, []float64{0, 5, 10}},
		{"empty", 1, 4, 5, nil},
		{"zero_step", 0, 10, 0, nil},
		{"inf_step", 0, 10, math.Inf(1), nil},
		{"nan_bound", math.NaN(), 10, 1, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := gridTicks(c.lo, c.hi, c.step)
			if !slices.Equal(got, c.want) {
				t.Errorf("gridTicks(%g, %g, %g) = %v, want %v", c.lo, c.hi, c.step, got, c.want)
			}
		})
	}
}

// TestGridTicksBounded checks that the tick count stays bounded when step
// is tiny compared to the range or to the coordinates.
func TestGridTicksBounded(t *testing.T) {
	cases := []struct {
		name         string
		lo, hi, step float64
	}{
		{"dense", 0, 1e9, 5},
		{"large_offset", 1e17, 1.1e17, 5},
		{"beyond_float_precision", 1e17, 1e17 + 1000, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := gridTicks(c.lo, c.hi, c.step)
			if len(got) == 0 || len(got) > maxGridLines+1 {
				t.Errorf("gridTicks(%g, %g, %g): %d ticks", c.lo, c.hi, c.step, len(got))
			}
		})
	}
}

func TestGridStep(t *testing.T) {
	cases := []struct {
		name   string
		window rect.Rect
		grid   float64
	}{
		{"demo", rect.Rect{LLx: -10, LLy: -10, URx: 10, URy: 10}, 5},
		{"wide", rect.Rect{LLx: 0, LLy: 0, URx: 1e9, URy: 1e9}, 5},
		{"far_away", rect.Rect{LLx: 1e17, LLy: 0, URx: 1.1e17, URy: 1}, 5},
		{"tiny_grid", rect.Rect{LLx: -10, LLy: -10, URx: 10, URy: 10}, 1e-300},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewFigure(c.window, nil)
			f.Grid = c.grid
			step := f.gridStep()
			if !(step > 0) {
				t.Fatalf("gridStep() = %g, want positive", step)
			}
			vp := f.viewport()
			for _, n := range []int{
				len(gridTicks(vp.LLx, vp.URx, step)),
				len(gridTicks(vp.LLy, vp.URy, step)),
			} {
				if n > maxGridLines+1 {
					t.Errorf("gridStep() = %g gives %d lines", step, n)
				}
			}
		})
	}

	f := demoFigure()
	if step := f.gridStep(); step != 5 {
		t.Errorf("demo gridStep() = %g, want 5", step)
	}
	f.Grid = 0
	if step := f.gridStep(); step != 0 {
		t.Errorf("gridStep() with Grid 0 = %g, want 0", step)
	}
}

func TestNiceStep(t *testing.T) {
	cases := []struct {
		span float64
		want float64
	}{
		{40, 5},
		{100, 10},
		{1e9 + 20, 2e8},
		{0, 0},
	}
	for _, c := range cases {
		if got := niceStep(c.span, 10); got != c.want {
			t.Errorf("niceStep(%g) = %g, want %g", c.span, got, c.want)
		}
	}
}

// TestLargeWindow renders figures whose windows are far from the origin
// or much larger than the default grid spacing.
func TestLargeWindow(t *testing.T) {
	windows := []rect.Rect{
		{LLx: 0, LLy: 0, URx: 1e9, URy: 1e9},
		{LLx: 1e17, LLy: 0, URx: 1.1e17, URy: 1},
	}
	for _, w := range windows {
		f := NewFigure(w, []clip.Segment{{
			A: vec.Vec2{X: w.LLx - 1, Y: w.LLy - 1},
			B: vec.Vec2{X: w.URx + 1, Y: w.URy + 1},
		}})
		img := f.Image(100)
		if img.Bounds().Dx() != 100 {
			t.Errorf("image width %d, want 100", img.Bounds().Dx())
		}
		fname := filepath.Join(t.TempDir(), "large.pdf")
		if err := f.WritePDF(fname); err != nil {
			t.Error(err)
		}
	}
}

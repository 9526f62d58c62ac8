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

// Command clipdemo clips line segments against a rectangular window and
// draws the result.
//
// Usage:
//
//	clipdemo [flags] [-seg x1,y1,x2,y2 ...] [--] [x1,y1,x2,y2 ...]
//
// Segments are given with the repeatable -seg flag or as arguments.  An
// argument starting with a minus sign, such as -15,-15,15,15, is only
// read as a segment after "--".  Without segments, the four segments of
// the classic demonstration figure are used.  The clipped coordinates are
// printed to standard output; the figure is written as PNG or PDF,
// depending on the extension of the output file name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/plot"
)

var demoSegments = []string{
	"-15,-15,15,15",
	"0,-20,0,20",
	"-20,0,20,0",
	"-30,-30,-10,-10",
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("clipdemo failed", "err", err)
		os.Exit(1)
	}
}

type config struct {
	window  string
	out     string
	size    int
	margin  float64
	verbose bool
	args    []string
}

// segmentList collects the values of a repeated -seg flag.
type segmentList []string

func (l *segmentList) String() string {
	return strings.Join(*l, " ")
}

func (l *segmentList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// parseFlags parses the command line arguments (without the program
// name).  Usage messages and parse errors go to errOut.
func parseFlags(args []string, errOut io.Writer) (config, error) {
	fs := flag.NewFlagSet("clipdemo", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var cfg config
	var segs segmentList
	fs.StringVar(&cfg.window, "window", "-10,-10,10,10", "clip window as `xmin,ymin,xmax,ymax`")
	fs.StringVar(&cfg.out, "o", "cohen_sutherland_demo.png", "output `file` (.png or .pdf), empty for none")
	fs.IntVar(&cfg.size, "size", 600, "image size in `pixels`")
	fs.Float64Var(&cfg.margin, "margin", 10, "space shown around the window")
	fs.BoolVar(&cfg.verbose, "v", false, "log every clipping step")
	fs.Var(&segs, "seg", "segment as `x1,y1,x2,y2`; may be repeated")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg.args = append([]string(segs), fs.Args()...)
	return cfg, nil
}

func run(cfg config, stdout io.Writer, logger *slog.Logger) error {
	window, err := parseWindow(cfg.window)
	if err != nil {
		return err
	}

	args := cfg.args
	if len(args) == 0 {
		args = demoSegments
	}
	segs := make([]clip.Segment, len(args))
	for i, arg := range args {
		segs[i], err = parseSegment(arg)
		if err != nil {
			return err
		}
	}

	visible := 0
	for _, s := range segs {
		logger.Debug("clipping",
			"segment", formatSegment(s),
			"outcodeA", clip.Classify(s.A, window),
			"outcodeB", clip.Classify(s.B, window))
		c, ok := clip.Line(s, window)
		if !ok {
			fmt.Fprintf(stdout, "%s -> rejected\n", formatSegment(s))
			continue
		}
		visible++
		fmt.Fprintf(stdout, "%s -> %s\n", formatSegment(s), formatSegment(c))
	}
	logger.Info("clipped segments", "total", len(segs), "visible", visible)

	if cfg.out == "" {
		return nil
	}
	fig := plot.NewFigure(window, segs)
	fig.Margin = cfg.margin
	if err := writeFigure(fig, cfg.out, cfg.size); err != nil {
		return err
	}
	logger.Info("figure written", "file", cfg.out)
	return nil
}

func writeFigure(fig *plot.Figure, fname string, size int) (err error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".pdf":
		return fig.WritePDF(fname)
	case ".png":
		// handled below
	default:
		return fmt.Errorf("%s: unsupported output format", fname)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fig.WritePNG(f, size)
}

var (
	errNumberCount = errors.New("expected four comma-separated numbers")
	errNonFinite   = errors.New("coordinates must be finite")
)

// parseQuad parses four comma-separated numbers.
func parseQuad(s string) ([4]float64, error) {
	var res [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return res, fmt.Errorf("%q: %w", s, errNumberCount)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return res, fmt.Errorf("%q: %w", s, err)
		}
		res[i] = v
	}
	return res, nil
}

func parseWindow(s string) (rect.Rect, error) {
	q, err := parseQuad(s)
	if err != nil {
		return rect.Rect{}, fmt.Errorf("window: %w", err)
	}
	return clip.NewWindow(q[0], q[1], q[2], q[3])
}

func parseSegment(s string) (clip.Segment, error) {
	q, err := parseQuad(s)
	if err != nil {
		return clip.Segment{}, fmt.Errorf("segment: %w", err)
	}
	for _, v := range q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return clip.Segment{}, fmt.Errorf("segment: %q: %w", s, errNonFinite)
		}
	}
	return clip.Segment{
		A: vec.Vec2{X: q[0], Y: q[1]},
		B: vec.Vec2{X: q[2], Y: q[3]},
	}, nil
}

func formatSegment(s clip.Segment) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("(%s,%s)-(%s,%s)", f(s.A.X), f(s.A.Y), f(s.B.X), f(s.B.Y))
}

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
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
)

// Result is the outcome of clipping one segment.
// If Visible is false, the segment was rejected and Segment is zero.
type Result struct {
	Segment
	Visible bool
}

// All clips every segment from segs against w.  The returned iterator
// yields each input segment together with its result, in input order.
func All(segs iter.Seq[Segment], w rect.Rect) iter.Seq2[Segment, Result] {
	return func(yield func(Segment, Result) bool) {
		for s := range segs {
			c, ok := Line(s, w)
			if !yield(s, Result{Segment: c, Visible: ok}) {
				return
			}
		}
	}
}

// parallelChunk is the minimum number of segments handled by one goroutine.
const parallelChunk = 1024

// Parallel clips all segments against w using up to workers goroutines.
// If workers is not positive, GOMAXPROCS is used.  The i-th result
// belongs to segs[i].  If ctx is cancelled before all chunks are
// processed, the context error is returned.
func Parallel(ctx context.Context, segs []Segment, w rect.Rect, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	res := make([]Result, len(segs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(segs); start += parallelChunk {
		end := min(start+parallelChunk, len(segs))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				c, ok := Line(segs[i], w)
				res[i] = Result{Segment: c, Visible: ok}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

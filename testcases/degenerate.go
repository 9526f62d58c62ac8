package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clip"
)

var degenerateCases = []TestCase{
	{
		Name:   "points",
		Window: square(10),
		Segments: []clip.Segment{
			seg(3, 3, 3, 3),
			seg(10, 10, 10, 10),
			seg(11, 0, 11, 0),
			seg(-10, -10, -10, -10),
		},
		Want: []clip.Result{
			visible(3, 3, 3, 3),
			visible(10, 10, 10, 10),
			rejected,
			visible(-10, -10, -10, -10),
		},
	},
	{
		Name:   "zero_size_window",
		Window: rect.Rect{LLx: 5, LLy: 5, URx: 5, URy: 5},
		Segments: []clip.Segment{
			seg(0, 0, 10, 10),
			seg(0, 1, 10, 1),
			seg(5, 0, 5, 10),
		},
		Want: []clip.Result{
			visible(5, 5, 5, 5),
			rejected,
			visible(5, 5, 5, 5),
		},
	},
}

package testcases

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/clip"
)

var axisCases = []TestCase{
	{
		Name:   "vertical",
		Window: square(10),
		Segments: []clip.Segment{
			seg(0, -20, 0, 20),
			seg(5, -5, 5, 30),
			seg(-10, -20, -10, 20),
			seg(15, -20, 15, 20),
		},
		Want: []clip.Result{
			visible(0, -10, 0, 10),
			visible(5, -5, 5, 10),
			visible(-10, -10, -10, 10),
			rejected,
		},
	},
	{
		Name:   "horizontal",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-20, 0, 20, 0),
			seg(-30, 10, -5, 10),
			seg(-20, 12, 20, 12),
		},
		Want: []clip.Result{
			visible(-10, 0, 10, 0),
			visible(-10, 10, -5, 10),
			rejected,
		},
	},
	{
		Name:   "off_center",
		Window: rect.Rect{LLx: 0, LLy: 0, URx: 40, URy: 20},
		Segments: []clip.Segment{
			seg(-10, 10, 50, 10),
			seg(20, -5, 20, 25),
		},
		Want: []clip.Result{
			visible(0, 10, 40, 10),
			visible(20, 0, 20, 20),
		},
	},
}

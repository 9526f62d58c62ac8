package testcases

import "seehuhn.de/go/clip"

var insideCases = []TestCase{
	{
		Name:   "interior",
		Window: square(10),
		Segments: []clip.Segment{
			seg(1, 1, 5, 5),
			seg(-9, 3, 7, -2),
		},
		Want: []clip.Result{
			visible(1, 1, 5, 5),
			visible(-9, 3, 7, -2),
		},
	},
	{
		Name:   "on_boundary",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-10, -10, 10, -10),
			seg(10, -10, 10, 10),
		},
		Want: []clip.Result{
			visible(-10, -10, 10, -10),
			visible(10, -10, 10, 10),
		},
	},
	{
		Name:   "one_end_out",
		Window: square(10),
		Segments: []clip.Segment{
			seg(0, 0, 20, 5),
			seg(3, 4, 3, -40),
		},
		Want: []clip.Result{
			visible(0, 0, 10, 2.5),
			visible(3, 4, 3, -10),
		},
	},
}

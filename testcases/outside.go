package testcases

import "seehuhn.de/go/clip"

var outsideCases = []TestCase{
	{
		Name:   "left",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-20, -5, -11, 30),
			seg(-30, -30, -11, 40),
		},
		Want: []clip.Result{
			rejected,
			rejected,
		},
	},
	{
		Name:   "above",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-50, 11, 50, 20),
		},
		Want: []clip.Result{
			rejected,
		},
	},
	{
		Name:   "near_miss",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-20, 8, -8, 20),
		},
		Want: []clip.Result{
			rejected,
		},
	},
}

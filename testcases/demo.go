package testcases

import "seehuhn.de/go/clip"

// demoCases is the input of the classic demonstration figure.
var demoCases = []TestCase{
	{
		Name:   "original",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-15, -15, 15, 15),
			seg(0, -20, 0, 20),
			seg(-20, 0, 20, 0),
			seg(-30, -30, -10, -10),
		},
		Want: []clip.Result{
			visible(-10, -10, 10, 10),
			visible(0, -10, 0, 10),
			visible(-10, 0, 10, 0),
			visible(-10, -10, -10, -10), // touches the corner only
		},
	},
}

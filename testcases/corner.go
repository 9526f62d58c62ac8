package testcases

import "seehuhn.de/go/clip"

// cornerCases exercise segments which pass through or near a corner of
// the window.  A segment touching only a corner point is visible, as a
// segment of length zero.
var cornerCases = []TestCase{
	{
		Name:   "touch_corner",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-30, -30, -10, -10),
			seg(-20, 0, 0, -20),
			seg(-30, -30, -10.001, -10.001),
			seg(10, 30, 30, 10),
			seg(0, 20, 20, 0),
		},
		Want: []clip.Result{
			visible(-10, -10, -10, -10),
			visible(-10, -10, -10, -10),
			rejected,
			rejected,
			visible(10, 10, 10, 10),
		},
	},
	{
		Name:   "diagonal",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-15, -15, 15, 15),
			seg(-15, 15, 15, -15),
		},
		Want: []clip.Result{
			visible(-10, -10, 10, 10),
			visible(-10, 10, 10, -10),
		},
	},
	{
		Name:   "cut_corner",
		Window: square(10),
		Segments: []clip.Segment{
			seg(-20, 5, -5, 20),
			seg(-20, 0, 0, 20),
			seg(-15, 0, 0, 15),
		},
		Want: []clip.Result{
			rejected,
			visible(-10, 10, -10, 10),
			visible(-10, 5, -5, 10),
		},
	},
}

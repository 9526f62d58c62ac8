// Command export writes the clip test cases, together with the results
// computed by this package, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/clip"
	"seehuhn.de/go/clip/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Window   [4]float64    `json:"window"` // xmin, ymin, xmax, ymax
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	In      [4]float64  `json:"in"`
	Clipped *[4]float64 `json:"clipped"` // null if rejected
	Outcode [2]string   `json:"outcode"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	w := tc.Window
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Window: [4]float64{w.LLx, w.LLy, w.URx, w.URy},
	}
	for in, res := range clip.All(slices.Values(tc.Segments), w) {
		seg := jsonSegment{
			In: segmentToJSON(in),
			Outcode: [2]string{
				clip.Classify(in.A, w).String(),
				clip.Classify(in.B, w).String(),
			},
		}
		if res.Visible {
			c := segmentToJSON(res.Segment)
			seg.Clipped = &c
		}
		jtc.Segments = append(jtc.Segments, seg)
	}
	return jtc
}

func segmentToJSON(s clip.Segment) [4]float64 {
	return [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y}
}

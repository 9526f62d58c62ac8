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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// ErrInvalidWindow is returned (wrapped) by [CheckWindow] and [NewWindow]
// for windows which cannot be used for clipping.
var ErrInvalidWindow = errors.New("invalid clip window")

// NewWindow returns the window [xmin, xmax] × [ymin, ymax].
func NewWindow(xmin, ymin, xmax, ymax float64) (rect.Rect, error) {
	w := rect.Rect{LLx: xmin, LLy: ymin, URx: xmax, URy: ymax}
	if err := CheckWindow(w); err != nil {
		return rect.Rect{}, err
	}
	return w, nil
}

// CheckWindow verifies that all coordinates of w are finite and that the
// minimum does not exceed the maximum on either axis.  Windows of zero
// width or height are allowed.
func CheckWindow(w rect.Rect) error {
	for _, v := range [...]float64{w.LLx, w.LLy, w.URx, w.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate %g", ErrInvalidWindow, v)
		}
	}
	if w.LLx > w.URx {
		return fmt.Errorf("%w: xmin %g > xmax %g", ErrInvalidWindow, w.LLx, w.URx)
	}
	if w.LLy > w.URy {
		return fmt.Errorf("%w: ymin %g > ymax %g", ErrInvalidWindow, w.LLy, w.URy)
	}
	return nil
}

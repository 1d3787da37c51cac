// seehuhn.de/go/printpdf - create print-ready PDF documents
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package printpdf

import (
	"math"
	"testing"
)

func TestUnitConversion(t *testing.T) {
	for _, x := range []Mm{0, 1, 148, 210, 215.9, 297, 420} {
		got := PtToMm(x.Pt())
		if math.Abs(float64(got-x)) > 1e-6 {
			t.Errorf("PtToMm(%g.Pt()) = %g, want %g",
				float64(x), float64(got), float64(x))
		}
	}
}

func TestA4(t *testing.T) {
	w := A4.Width.Pt()
	if math.Abs(w-595.266) > 0.001 {
		t.Errorf("A4 width = %g pt, want 595.266 pt", w)
	}
	h := A4.Height.Pt()
	if math.Abs(h-841.8762) > 0.001 {
		t.Errorf("A4 height = %g pt, want 841.8762 pt", h)
	}
}

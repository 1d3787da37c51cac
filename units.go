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

// One millimetre in PDF default user space units.
const ptPerMm = 2.8346

// Mm is a length in millimetres.  All page geometry and drawing
// coordinates in this package are given in millimetres and converted to
// PDF default user space units (1/72 inch) on output.
type Mm float64

// Pt converts the length to PDF default user space units.
func (x Mm) Pt() float64 {
	return float64(x) * ptPerMm
}

// PtToMm converts a length in PDF default user space units to
// millimetres.
func PtToMm(x float64) Mm {
	return Mm(x / ptPerMm)
}

// Point is a position on a page, in millimetres.
type Point struct {
	X, Y Mm
}

// PageSize describes the dimensions of a page in millimetres.
type PageSize struct {
	Width, Height Mm
}

// Common page sizes.
var (
	A3     = PageSize{297, 420}
	A4     = PageSize{210, 297}
	A5     = PageSize{148, 210}
	Letter = PageSize{215.9, 279.4}
	Legal  = PageSize{215.9, 355.6}
)

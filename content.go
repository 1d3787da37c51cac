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
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/printpdf/internal/float"
)

// contentWriter accumulates the PDF content stream operators for one
// layer of a page.  Graphics state parameters are only written to the
// stream when a painting operation actually uses them, and only when
// they differ from the value already in force.
type contentWriter struct {
	Content bytes.Buffer

	// Err is the first error that occurred while writing operators.
	// Once Err is set, all writing methods are no-ops.
	Err error

	// pageHeight is the height of the owning page in PDF units, used
	// to convert top-left text positions to the PDF coordinate system.
	pageHeight float64

	nesting int

	fillColor     Color
	strokeColor   Color
	lineWidth     Mm
	hasLineWidth  bool
	pendingFill   Color
	pendingStroke Color
	pendingWidth  Mm
	hasPendingW   bool
}

func (w *contentWriter) coord(p Point) (string, string) {
	return float.Format(p.X.Pt(), 3), float.Format(p.Y.Pt(), 3)
}

// flushFill makes sure the current fill color is set in the content
// stream.
func (w *contentWriter) flushFill() {
	if w.Err != nil || w.pendingFill == nil || w.pendingFill == w.fillColor {
		return
	}
	w.Err = w.pendingFill.SetFill(&w.Content)
	if w.Err == nil {
		w.fillColor = w.pendingFill
	}
}

// flushStroke makes sure the current outline color and thickness are
// set in the content stream.
func (w *contentWriter) flushStroke() {
	if w.Err != nil {
		return
	}
	if w.pendingStroke != nil && w.pendingStroke != w.strokeColor {
		w.Err = w.pendingStroke.SetStroke(&w.Content)
		if w.Err != nil {
			return
		}
		w.strokeColor = w.pendingStroke
	}
	if w.hasPendingW && (!w.hasLineWidth || w.pendingWidth != w.lineWidth) {
		_, w.Err = fmt.Fprintln(&w.Content,
			float.Format(w.pendingWidth.Pt(), 3), "w")
		if w.Err != nil {
			return
		}
		w.lineWidth = w.pendingWidth
		w.hasLineWidth = true
	}
}

func (w *contentWriter) setFillColor(c Color) {
	w.pendingFill = c
}

func (w *contentWriter) setOutlineColor(c Color) {
	w.pendingStroke = c
}

func (w *contentWriter) setOutlineThickness(t Mm) {
	if w.Err != nil {
		return
	}
	if t < 0 {
		w.Err = &ArgumentError{
			Op:  "SetOutlineThickness",
			Err: fmt.Errorf("negative line width %g", float64(t)),
		}
		return
	}
	w.pendingWidth = t
	w.hasPendingW = true
}

// pushState emits the q operator.
func (w *contentWriter) pushState() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(&w.Content, "q")
	if w.Err == nil {
		w.nesting++
	}
}

// popState emits the Q operator.  Popping more states than were pushed
// within the same layer is an error.
func (w *contentWriter) popState() {
	if w.Err != nil {
		return
	}
	if w.nesting <= 0 {
		w.Err = &ArgumentError{Op: "PopState", Err: ErrUnbalancedState}
		return
	}
	_, w.Err = fmt.Fprintln(&w.Content, "Q")
	if w.Err != nil {
		return
	}
	w.nesting--

	// The graphics state reverts to the values saved by the matching
	// q, which we no longer track.
	w.fillColor = nil
	w.strokeColor = nil
	w.hasLineWidth = false
}

// drawShape appends the path construction and painting operators for
// one shape.
func (w *contentWriter) drawShape(s *Shape) {
	if w.Err != nil {
		return
	}

	start, segs, err := s.segments()
	if err != nil {
		w.Err = &ArgumentError{Op: "DrawShape", Err: err}
		return
	}

	if s.Filled {
		w.flushFill()
	}
	if s.Stroked {
		w.flushStroke()
	}
	if w.Err != nil {
		return
	}

	var op string
	switch {
	case s.Filled && s.Stroked && s.Closed:
		op = "b"
	case s.Filled && s.Stroked:
		op = "B"
	case s.Filled:
		op = "f"
	case s.Stroked && s.Closed:
		op = "s"
	case s.Stroked:
		op = "S"
	default:
		op = "n"
	}

	x, y := w.coord(start)
	_, w.Err = fmt.Fprintln(&w.Content, x, y, "m")
	for _, seg := range segs {
		if w.Err != nil {
			return
		}
		if seg.bezier {
			x1, y1 := w.coord(seg.c1)
			x2, y2 := w.coord(seg.c2)
			x3, y3 := w.coord(seg.to)
			_, w.Err = fmt.Fprintln(&w.Content, x1, y1, x2, y2, x3, y3, "c")
		} else {
			x, y := w.coord(seg.to)
			_, w.Err = fmt.Fprintln(&w.Content, x, y, "l")
		}
	}
	if w.Err != nil {
		return
	}

	// "b" and "s" close the path themselves.
	if s.Closed && (op == "f" || op == "B" || op == "n") {
		_, w.Err = fmt.Fprintln(&w.Content, "h")
		if w.Err != nil {
			return
		}
	}
	_, w.Err = fmt.Fprintln(&w.Content, op)
}

// useText appends a text object showing the given string in the given
// font.  pos gives the position of the top-left corner of the first
// line of text, and rotate a counter-clockwise rotation in degrees
// about that position.
func (w *contentWriter) useText(text string, size float64, pos Point, rotate float64, f *embeddedFont) {
	if w.Err != nil {
		return
	}
	if size <= 0 {
		w.Err = &ArgumentError{
			Op:  "UseText",
			Err: fmt.Errorf("font size %g is not positive", size),
		}
		return
	}

	codes := f.record(text)

	w.flushFill()
	if w.Err != nil {
		return
	}

	// pos is measured from the top of the page; convert to the PDF
	// coordinate system and drop from the text top to the baseline
	ascent := f.ascent() * size
	x := pos.X.Pt()
	y := w.pageHeight - pos.Y.Pt()

	_, w.Err = fmt.Fprintln(&w.Content, "BT")
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintf(&w.Content, "/%s %s Tf\n",
		f.resName, float.Format(size, 3))
	if w.Err != nil {
		return
	}
	if rotate == 0 {
		_, w.Err = fmt.Fprintln(&w.Content,
			float.Format(x, 3), float.Format(y-ascent, 3), "Td")
	} else {
		// rotate about pos, not about the shifted baseline point
		m := matrix.Translate(0, -ascent).
			Mul(matrix.RotateDeg(rotate)).
			Mul(matrix.Translate(x, y))
		_, w.Err = fmt.Fprintln(&w.Content,
			float.Format(m[0], 4), float.Format(m[1], 4),
			float.Format(m[2], 4), float.Format(m[3], 4),
			float.Format(m[4], 3), float.Format(m[5], 3), "Tm")
	}
	if w.Err != nil {
		return
	}
	w.Content.WriteString("<")
	for _, c := range codes {
		fmt.Fprintf(&w.Content, "%04x", c)
	}
	w.Content.WriteString("> Tj\n")
	_, w.Err = fmt.Fprintln(&w.Content, "ET")
}

// useImage appends the operators placing an image XObject.  pos gives
// the position of the lower-left corner of the image on the page, and
// rotate the counter-clockwise rotation in degrees about that corner.
func (w *contentWriter) useImage(img *embeddedImage, pos Point, width, height Mm, rotate float64) {
	if w.Err != nil {
		return
	}
	if width <= 0 || height <= 0 {
		w.Err = &ArgumentError{
			Op:  "UseImage",
			Err: fmt.Errorf("image size %g x %g is not positive",
				float64(width), float64(height)),
		}
		return
	}

	m := matrix.Matrix{width.Pt(), 0, 0, height.Pt(), 0, 0}
	if rotate != 0 {
		m = m.Mul(matrix.RotateDeg(rotate))
	}
	m = m.Mul(matrix.Translate(pos.X.Pt(), pos.Y.Pt()))

	_, w.Err = fmt.Fprintln(&w.Content, "q")
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(&w.Content,
		float.Format(m[0], 4), float.Format(m[1], 4),
		float.Format(m[2], 4), float.Format(m[3], 4),
		float.Format(m[4], 3), float.Format(m[5], 3), "cm")
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintf(&w.Content, "/%s Do\n", img.resName)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(&w.Content, "Q")
}

// close checks that all saved graphics states have been restored.
func (w *contentWriter) close() error {
	if w.Err != nil {
		return w.Err
	}
	if w.nesting != 0 {
		return &ArgumentError{Op: "Save", Err: ErrUnbalancedState}
	}
	return nil
}

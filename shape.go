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

// PathPoint is one entry in the point list of a [Shape].  Points with
// Handle set are control points of a cubic bezier segment.  Control
// points come in groups of exactly two, between the on-curve point
// starting the segment and the on-curve point ending it.
type PathPoint struct {
	P      Point
	Handle bool
}

// Shape is a path on a page, given as a sequence of on-curve points
// and bezier control points.  The first point must be an on-curve
// point.
type Shape struct {
	Points []PathPoint

	// Closed connects the last point back to the first one.
	Closed bool

	// Filled paints the interior of the shape with the current fill
	// color.
	Filled bool

	// Stroked draws the outline of the shape with the current outline
	// color and thickness.
	Stroked bool
}

// segment is one line or cubic bezier segment of a decoded shape.
type segment struct {
	c1, c2 Point // control points, valid if bezier is set
	to     Point
	bezier bool
}

// segments decodes the point list into path segments.  An on-curve
// point preceded by a number of control points other than zero or two
// makes the shape invalid.
func (s *Shape) segments() (Point, []segment, error) {
	if len(s.Points) == 0 || s.Points[0].Handle {
		return Point{}, nil, ErrMalformedPath
	}

	start := s.Points[0].P
	var segs []segment
	var handles []Point
	for _, pt := range s.Points[1:] {
		if pt.Handle {
			handles = append(handles, pt.P)
			continue
		}
		switch len(handles) {
		case 0:
			segs = append(segs, segment{to: pt.P})
		case 2:
			segs = append(segs, segment{
				c1:     handles[0],
				c2:     handles[1],
				to:     pt.P,
				bezier: true,
			})
		default:
			return Point{}, nil, ErrMalformedPath
		}
		handles = handles[:0]
	}
	if len(handles) > 0 {
		return Point{}, nil, ErrMalformedPath
	}
	return start, segs, nil
}

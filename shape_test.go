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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func anchor(x, y Mm) PathPoint {
	return PathPoint{P: Point{x, y}}
}

func handle(x, y Mm) PathPoint {
	return PathPoint{P: Point{x, y}, Handle: true}
}

func TestSegmentsLines(t *testing.T) {
	s := &Shape{
		Points: []PathPoint{
			anchor(0, 0), anchor(10, 0), anchor(10, 10), anchor(0, 10),
		},
	}
	start, segs, err := s.segments()
	if err != nil {
		t.Fatal(err)
	}
	if start != (Point{0, 0}) {
		t.Errorf("start = %v", start)
	}
	want := []segment{
		{to: Point{10, 0}},
		{to: Point{10, 10}},
		{to: Point{0, 10}},
	}
	if d := cmp.Diff(want, segs, cmp.AllowUnexported(segment{})); d != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", d)
	}
}

func TestSegmentsBezier(t *testing.T) {
	s := &Shape{
		Points: []PathPoint{
			anchor(0, 0),
			handle(0, 5), handle(5, 10),
			anchor(10, 10),
			anchor(20, 10),
		},
	}
	_, segs, err := s.segments()
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if !segs[0].bezier {
		t.Error("segment 0 is not a bezier")
	}
	if segs[0].c1 != (Point{0, 5}) || segs[0].c2 != (Point{5, 10}) {
		t.Errorf("control points %v, %v", segs[0].c1, segs[0].c2)
	}
	if segs[1].bezier {
		t.Error("segment 1 is a bezier")
	}
}

func TestSegmentsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		points []PathPoint
	}{
		{"empty", nil},
		{"leading handle", []PathPoint{handle(0, 0), anchor(1, 1)}},
		{"one handle", []PathPoint{anchor(0, 0), handle(1, 1), anchor(2, 2)}},
		{"three handles", []PathPoint{
			anchor(0, 0), handle(1, 1), handle(2, 2), handle(3, 3), anchor(4, 4),
		}},
		{"trailing handles", []PathPoint{
			anchor(0, 0), anchor(1, 1), handle(2, 2), handle(3, 3),
		}},
	}
	for _, test := range cases {
		s := &Shape{Points: test.points}
		_, _, err := s.segments()
		if !errors.Is(err, ErrMalformedPath) {
			t.Errorf("%s: got %v, want ErrMalformedPath", test.name, err)
		}
	}
}

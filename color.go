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
	"fmt"
	"io"

	"seehuhn.de/go/printpdf/internal/float"
)

// Color is a device color for filling or stroking.  Values returned by
// [Gray], [RGB] and [CMYK] are comparable, so that repeated use of the
// same color does not emit redundant content stream operators.
type Color interface {
	// SetFill writes the operator which selects the color for filling.
	SetFill(w io.Writer) error

	// SetStroke writes the operator which selects the color for
	// stroking.
	SetStroke(w io.Writer) error
}

// Gray returns a color in the DeviceGray color space.  The value must
// be in the range from 0 (black) to 1 (white).
func Gray(g float64) (Color, error) {
	if !isComponent(g) {
		return nil, &ArgumentError{
			Op:  "Gray",
			Err: fmt.Errorf("component %g outside [0, 1]", g),
		}
	}
	return grayColor(g), nil
}

type grayColor float64

func (c grayColor) SetFill(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(float64(c), 3), "g")
	return err
}

func (c grayColor) SetStroke(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(float64(c), 3), "G")
	return err
}

// RGB returns a color in the DeviceRGB color space.  Each component
// must be in the range [0, 1].
func RGB(r, g, b float64) (Color, error) {
	for _, x := range []float64{r, g, b} {
		if !isComponent(x) {
			return nil, &ArgumentError{
				Op:  "RGB",
				Err: fmt.Errorf("component %g outside [0, 1]", x),
			}
		}
	}
	return rgbColor{r, g, b}, nil
}

type rgbColor struct {
	R, G, B float64
}

func (c rgbColor) SetFill(w io.Writer) error {
	_, err := fmt.Fprintln(w,
		float.Format(c.R, 3), float.Format(c.G, 3), float.Format(c.B, 3),
		"rg")
	return err
}

func (c rgbColor) SetStroke(w io.Writer) error {
	_, err := fmt.Fprintln(w,
		float.Format(c.R, 3), float.Format(c.G, 3), float.Format(c.B, 3),
		"RG")
	return err
}

// CMYK returns a color in the DeviceCMYK color space.  Each component
// must be in the range [0, 1].
func CMYK(c, m, y, k float64) (Color, error) {
	for _, x := range []float64{c, m, y, k} {
		if !isComponent(x) {
			return nil, &ArgumentError{
				Op:  "CMYK",
				Err: fmt.Errorf("component %g outside [0, 1]", x),
			}
		}
	}
	return cmykColor{c, m, y, k}, nil
}

type cmykColor struct {
	C, M, Y, K float64
}

func (c cmykColor) SetFill(w io.Writer) error {
	_, err := fmt.Fprintln(w,
		float.Format(c.C, 3), float.Format(c.M, 3),
		float.Format(c.Y, 3), float.Format(c.K, 3),
		"k")
	return err
}

func (c cmykColor) SetStroke(w io.Writer) error {
	_, err := fmt.Fprintln(w,
		float.Format(c.C, 3), float.Format(c.M, 3),
		float.Format(c.Y, 3), float.Format(c.K, 3),
		"K")
	return err
}

// isComponent reports whether x is a valid color component.  NaN
// compares false in both comparisons.
func isComponent(x float64) bool {
	return x >= 0 && x <= 1
}

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
	"image"

	"seehuhn.de/go/pdf"
)

// AddImage registers an image with the document.  The image is stored
// in the PDF file as an 8-bit RGB image; if the image has an alpha
// channel, a soft mask is written alongside the image data.
func (d *Document) AddImage(src image.Image) (*ImageRef, error) {
	if src == nil {
		return nil, &ArgumentError{Op: "AddImage", Err: errNilReference}
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &ArgumentError{
			Op:  "AddImage",
			Err: fmt.Errorf("image has empty bounds %v", b),
		}
	}

	img := &embeddedImage{
		src:     src,
		resName: fmt.Sprintf("X%d", len(d.images)),
	}
	d.images = append(d.images, img)
	return &ImageRef{doc: d, idx: len(d.images) - 1}, nil
}

type embeddedImage struct {
	src     image.Image
	resName string
}

func (img *embeddedImage) hasAlpha() bool {
	b := img.src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.src.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}

// embed writes the image as an XObject stream, in a lossless
// representation similar to the PNG format.
func (img *embeddedImage) embed(w pdf.Putter, ref pdf.Reference, compress bool) error {
	b := img.src.Bounds()
	width := b.Dx()
	height := b.Dy()

	withMask := img.hasAlpha()

	var maskRef pdf.Reference
	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(width),
		"Height":           pdf.Integer(height),
		"ColorSpace":       pdf.Name("DeviceRGB"),
		"BitsPerComponent": pdf.Integer(8),
	}
	if withMask {
		maskRef = w.Alloc()
		dict["SMask"] = maskRef
	}

	var filters []pdf.Filter
	if compress {
		filters = []pdf.Filter{pdf.FilterFlate{
			"Columns":   pdf.Integer(width),
			"Colors":    pdf.Integer(3),
			"Predictor": pdf.Integer(15),
		}}
	}
	stream, err := w.OpenStream(ref, dict, filters...)
	if err != nil {
		return err
	}
	row := make([]byte, 3*width)
	var alpha []byte
	if withMask {
		alpha = make([]byte, 0, width*height)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.src.At(x, y).RGBA()
			i := 3 * (x - b.Min.X)
			row[i] = byte(r >> 8)
			row[i+1] = byte(g >> 8)
			row[i+2] = byte(bb >> 8)
			if withMask {
				alpha = append(alpha, byte(a>>8))
			}
		}
		_, err = stream.Write(row)
		if err != nil {
			return err
		}
	}
	err = stream.Close()
	if err != nil {
		return err
	}

	if !withMask {
		return nil
	}

	var maskFilters []pdf.Filter
	if compress {
		maskFilters = []pdf.Filter{pdf.FilterFlate{
			"Columns":   pdf.Integer(width),
			"Predictor": pdf.Integer(15),
		}}
	}
	stream, err = w.OpenStream(maskRef, pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(width),
		"Height":           pdf.Integer(height),
		"ColorSpace":       pdf.Name("DeviceGray"),
		"BitsPerComponent": pdf.Integer(8),
	}, maskFilters...)
	if err != nil {
		return err
	}
	_, err = stream.Write(alpha)
	if err != nil {
		return err
	}
	return stream.Close()
}

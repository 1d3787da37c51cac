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

// A FontRef refers to a font registered with a [Document] using
// [Document.AddFont].  The reference is only valid for the document it
// was obtained from.
type FontRef struct {
	doc *Document
	idx int
}

// An ImageRef refers to an image registered with a [Document] using
// [Document.AddImage].
type ImageRef struct {
	doc *Document
	idx int
}

// A ProfileRef refers to an ICC color profile registered with a
// [Document] using [Document.AddICCProfile].
type ProfileRef struct {
	doc *Document
	idx int
}

func (d *Document) font(op string, ref *FontRef) (*embeddedFont, error) {
	if ref == nil || ref.doc == nil {
		return nil, &ResourceError{Op: op, Err: errNilReference}
	}
	if ref.doc != d {
		return nil, &ResourceError{Op: op, Err: errWrongDocument}
	}
	return d.fonts[ref.idx], nil
}

func (d *Document) image(op string, ref *ImageRef) (*embeddedImage, error) {
	if ref == nil || ref.doc == nil {
		return nil, &ResourceError{Op: op, Err: errNilReference}
	}
	if ref.doc != d {
		return nil, &ResourceError{Op: op, Err: errWrongDocument}
	}
	return d.images[ref.idx], nil
}

func (d *Document) profile(op string, ref *ProfileRef) (*embeddedProfile, error) {
	if ref == nil || ref.doc == nil {
		return nil, &ResourceError{Op: op, Err: errNilReference}
	}
	if ref.doc != d {
		return nil, &ResourceError{Op: op, Err: errWrongDocument}
	}
	return d.profiles[ref.idx], nil
}

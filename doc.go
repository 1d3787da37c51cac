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

// Package printpdf generates print-ready PDF documents.
//
// A [Document] is built in two phases.  First, pages, layers and shared
// resources (fonts, images, ICC profiles) are registered with the
// document.  Registering a resource returns an opaque, typed reference
// which can then be used any number of times without duplicating the
// underlying data.  Second, content is drawn onto individual layers
// using these references.  Finally, [Document.Save] turns the finished
// object graph into a PDF file.
//
//	doc := printpdf.New("example", printpdf.A4)
//	_, layer := doc.AddPage("base")
//	red, err := printpdf.RGB(1, 0, 0)
//	if err != nil {
//		...
//	}
//	layer.SetFillColor(red)
//	err = layer.DrawShape(square)
//	...
//	err = doc.Save(out)
//
// Page coordinates are given in millimetres.  Shapes use the PDF
// convention with the origin in the lower left corner of the page;
// text positions are measured from the upper left corner.
//
// The low-level PDF file format (object syntax, cross-reference table,
// stream filters) is provided by seehuhn.de/go/pdf.  This package only
// constructs the document object graph and the content streams.
//
// A Document must not be used from more than one goroutine at a time.
package printpdf

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

// A Page is one page of a [Document].  Graphics are added to a page
// via its layers, see [Page.AddLayer].
type Page struct {
	doc    *Document
	size   PageSize
	layers []*Layer

	usedFonts  map[int]bool
	usedImages map[int]bool
}

// AddPage appends a new page of the document's default size, together
// with the page's first layer, so that drawing can begin immediately.
// More layers can be added using [Page.AddLayer].
func (d *Document) AddPage(layerName string) (*Page, *Layer) {
	return d.AddPageSize(d.pageSize, layerName)
}

// AddPageSize appends a new page of the given size to the document,
// together with the page's first layer.
func (d *Document) AddPageSize(size PageSize, layerName string) (*Page, *Layer) {
	p := &Page{
		doc:        d,
		size:       size,
		usedFonts:  make(map[int]bool),
		usedImages: make(map[int]bool),
	}
	d.pages = append(d.pages, p)
	return p, p.AddLayer(layerName, nil)
}

// Size returns the page size.
func (p *Page) Size() PageSize {
	return p.size
}

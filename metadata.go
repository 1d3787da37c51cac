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
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdf"
)

// pdfProperties is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfProperties struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
	Trapped    xmp.Text
}

// metadataPacket builds the XMP metadata for the document.
func (d *Document) metadataPacket() *xmp.Packet {
	dc := &xmp.DublinCore{}
	if d.title != "" {
		dc.Title.Set(language.MustParse("x-default"), d.title)
	}

	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(d.creationDate)
	basic.ModifyDate = xmp.NewDate(d.creationDate)

	pdfInfo := &pdfProperties{}
	pdfInfo.PDFVersion = xmp.NewText("1.7")
	pdfInfo.Producer = xmp.NewAgentName(producerName)
	if d.keywords != "" {
		pdfInfo.Keywords = xmp.NewText(d.keywords)
	}
	if d.trapped {
		pdfInfo.Trapped = xmp.NewText("True")
	} else {
		pdfInfo.Trapped = xmp.NewText("False")
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)
	return packet
}

// embedMetadata writes the XMP metadata stream.  The stream is never
// compressed, so that non-PDF tools can scan the file for the packet.
func (d *Document) embedMetadata(w pdf.Putter, ref pdf.Reference) error {
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = d.metadataPacket().Write(stm, nil)
	if err != nil {
		return err
	}
	return stm.Close()
}

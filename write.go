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
	"io"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pdf"
)

// Values for the PDF/X output intent of saved files, describing a
// sheet-fed offset printing condition characterized by the FOGRA39
// data set.
const (
	pdfxVersion      = "PDF/X-3:2002"
	outputCondition  = "Commercial and special offset print acccording to ISO 12647-2:2004 / Amd 1, paper type 1 or 2 (matte or gloss-coated offset paper, 115 g/m2), screen ruling 60/cm"
	outputIdentifier = "FOGRA39"
	outputInfo       = "Coated FOGRA39 (ISO 12647-2:2004)"
	outputRegistry   = "http://www.color.org"
)

// Save writes the complete PDF file to w.  The file is first
// assembled in memory; if any part of the document cannot be
// serialized, no bytes are written to w at all.
//
// Saving does not modify the document.  Saving the same document
// twice gives two byte-identical files.
func (d *Document) Save(w io.Writer) error {
	buf := &bytes.Buffer{}
	err := d.write(buf)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// SaveToFile writes the complete PDF file to the named file.
func (d *Document) SaveToFile(name string) error {
	buf := &bytes.Buffer{}
	err := d.write(buf)
	if err != nil {
		return err
	}
	err = os.WriteFile(name, buf.Bytes(), 0o644)
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

func (d *Document) write(out io.Writer) error {
	for _, p := range d.pages {
		for _, l := range p.layers {
			if err := l.writer.close(); err != nil {
				return err
			}
		}
	}

	data := pdf.NewData(pdf.V1_7)
	var filters []pdf.Filter
	if d.compress {
		filters = []pdf.Filter{pdf.FilterCompress{}}
	}

	metaRef := data.Alloc()
	err := d.embedMetadata(data, metaRef)
	if err != nil {
		return err
	}

	pagesRef := data.Alloc()

	fontRefs := make([]pdf.Reference, len(d.fonts))
	for i := range d.fonts {
		fontRefs[i] = data.Alloc()
	}
	imageRefs := make([]pdf.Reference, len(d.images))
	for i := range d.images {
		imageRefs[i] = data.Alloc()
	}
	profileRefs := make([]pdf.Reference, len(d.profiles))
	for i := range d.profiles {
		profileRefs[i] = data.Alloc()
	}

	var kids pdf.Array
	var allOCGs pdf.Array
	var offOCGs pdf.Array
	for _, p := range d.pages {
		var contents pdf.Array
		properties := pdf.Dict{}
		for i, l := range p.layers {
			ocgRef := data.Alloc()
			err := data.Put(ocgRef, pdf.Dict{
				"Type":   pdf.Name("OCG"),
				"Name":   pdf.TextString(l.name),
				"Intent": pdf.Name(l.intent),
			})
			if err != nil {
				return err
			}
			allOCGs = append(allOCGs, ocgRef)
			if l.hidden {
				offOCGs = append(offOCGs, ocgRef)
			}

			propName := fmt.Sprintf("M%d", i)
			properties[pdf.Name(propName)] = ocgRef

			streamRef := data.Alloc()
			stm, err := data.OpenStream(streamRef, nil, filters...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(stm, "/OC /%s BDC\n", propName)
			if err != nil {
				return err
			}
			_, err = stm.Write(l.writer.Content.Bytes())
			if err != nil {
				return err
			}
			_, err = io.WriteString(stm, "EMC\n")
			if err != nil {
				return err
			}
			err = stm.Close()
			if err != nil {
				return err
			}
			contents = append(contents, streamRef)
		}

		box := &pdf.Rectangle{
			URx: p.size.Width.Pt(),
			URy: p.size.Height.Pt(),
		}
		resources := pdf.Dict{}
		if len(p.usedFonts) > 0 {
			fontDict := pdf.Dict{}
			for _, idx := range slices.Sorted(maps.Keys(p.usedFonts)) {
				fontDict[pdf.Name(d.fonts[idx].resName)] = fontRefs[idx]
			}
			resources["Font"] = fontDict
		}
		if len(p.usedImages) > 0 {
			xObjDict := pdf.Dict{}
			for _, idx := range slices.Sorted(maps.Keys(p.usedImages)) {
				xObjDict[pdf.Name(d.images[idx].resName)] = imageRefs[idx]
			}
			resources["XObject"] = xObjDict
		}
		if len(properties) > 0 {
			resources["Properties"] = properties
		}

		pageDict := pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  box,
			"TrimBox":   box,
			"CropBox":   box,
			"Resources": resources,
		}
		if len(contents) > 0 {
			pageDict["Contents"] = contents
		}
		pageRef := data.Alloc()
		err := data.Put(pageRef, pageDict)
		if err != nil {
			return err
		}
		kids = append(kids, pageRef)
	}

	err = data.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	})
	if err != nil {
		return err
	}

	for i, f := range d.fonts {
		err := f.embed(data, fontRefs[i], filters)
		if err != nil {
			return &FontError{Err: err}
		}
	}
	for i, img := range d.images {
		err := img.embed(data, imageRefs[i], d.compress)
		if err != nil {
			return err
		}
	}
	for i, prof := range d.profiles {
		err := prof.embed(data, profileRefs[i], filters)
		if err != nil {
			return err
		}
	}

	intent := pdf.Dict{
		"Type":                      pdf.Name("OutputIntent"),
		"S":                         pdf.Name("GTS_PDFX"),
		"OutputCondition":           pdf.String(outputCondition),
		"OutputConditionIdentifier": pdf.String(outputIdentifier),
		"Info":                      pdf.String(outputInfo),
		"RegistryName":              pdf.String(outputRegistry),
	}
	if d.outputProfile != nil {
		intent["DestOutputProfile"] = profileRefs[d.outputProfile.idx]
	}

	catalog := data.GetMeta().Catalog
	catalog.Pages = pagesRef
	catalog.Metadata = metaRef
	catalog.PageLayout = "OneColumn"
	catalog.OutputIntents = pdf.Array{intent}
	if len(allOCGs) > 0 {
		ocDefaults := pdf.Dict{
			"Order":     allOCGs,
			"BaseState": pdf.Name("ON"),
		}
		if len(offOCGs) > 0 {
			ocDefaults["OFF"] = offOCGs
		}
		catalog.OCProperties = pdf.Dict{
			"OCGs": allOCGs,
			"D":    ocDefaults,
		}
	}

	info := &pdf.Info{
		Title:        pdf.TextString(d.title),
		Keywords:     pdf.TextString(d.keywords),
		Producer:     producerName,
		CreationDate: pdf.Date(d.creationDate),
		ModDate:      pdf.Date(d.creationDate),
		Custom: map[string]string{
			"GTS_PDFXVersion": pdfxVersion,
		},
	}
	info.Trapped.Set(d.trapped)

	meta := data.GetMeta()
	meta.Info = info
	meta.ID = [][]byte{d.fileID, d.fileID}

	err = data.Write(out)
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

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
	"slices"
	"unicode/utf16"

	"seehuhn.de/go/sfnt"
	sfntcmap "seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/subset"
)

// FontOptions control how a font is embedded into the PDF file.
type FontOptions struct {
	// NoSubset embeds the complete font program instead of the subset
	// of glyphs actually used.
	NoSubset bool
}

// AddFont registers a TrueType font with the document.  The data must
// be a complete font file with glyf outlines.  The font program is
// embedded into the PDF file when the document is saved; unless
// disabled in opt, only the glyphs actually used by the document are
// included.
//
// opt may be nil.
func (d *Document) AddFont(data []byte, opt *FontOptions) (*FontRef, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Err: err}
	}
	if !info.IsGlyf() {
		return nil, &FontError{
			Err: fmt.Errorf("font %q does not use glyf outlines",
				info.PostScriptName()),
		}
	}
	cmapTable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, &FontError{Err: err}
	}

	if opt == nil {
		opt = &FontOptions{}
	}
	f := &embeddedFont{
		info:     info,
		cmap:     cmapTable,
		resName:  fmt.Sprintf("F%d", len(d.fonts)),
		text:     make(map[glyph.ID][]rune),
		noSubset: opt.NoSubset,
	}
	d.fonts = append(d.fonts, f)
	return &FontRef{doc: d, idx: len(d.fonts) - 1}, nil
}

// DecodeText maps a sequence of 16-bit character codes, as found in
// text strings of the produced file, back to the text they were
// generated from.  Only codes used with this font via
// [Layer.UseText] can be decoded.
func (r *FontRef) DecodeText(codes []uint16) (string, error) {
	if r == nil {
		return "", &ResourceError{Op: "DecodeText", Err: errNilReference}
	}
	f, err := r.doc.font("DecodeText", r)
	if err != nil {
		return "", err
	}
	var text []rune
	for _, c := range codes {
		text = append(text, f.text[glyph.ID(c)]...)
	}
	return string(text), nil
}

// embeddedFont collects the glyphs used by the document, so that the
// font subset and the ToUnicode map can be constructed at save time.
type embeddedFont struct {
	info    *sfnt.Font
	cmap    sfntcmap.Subtable
	resName string

	// text maps each used glyph to the text it first represented.
	text map[glyph.ID][]rune

	noSubset bool
}

// record maps the runes of text to glyph IDs, remembering which glyphs
// are in use.  Character codes are the original glyph IDs.
func (f *embeddedFont) record(text string) []glyph.ID {
	var codes []glyph.ID
	for _, r := range text {
		gid := f.cmap.Lookup(r)
		if _, seen := f.text[gid]; !seen {
			f.text[gid] = []rune{r}
		}
		codes = append(codes, gid)
	}
	return codes
}

// ascent returns the font ascent in text space units, for font size 1.
func (f *embeddedFont) ascent() float64 {
	return float64(f.info.Ascent) / float64(f.info.UnitsPerEm)
}

// embed writes the font dictionaries and the font program to the PDF
// file.  The font is embedded as a composite CIDFontType2 font with
// Identity-H encoding, where the character codes are the glyph IDs of
// the original font.
func (f *embeddedFont) embed(w pdf.Putter, fontDictRef pdf.Reference, filters []pdf.Filter) error {
	origFont := f.info.Clone()
	origFont.CMapTable = nil
	origFont.Gdef = nil
	origFont.Gsub = nil
	origFont.Gpos = nil

	used := make([]glyph.ID, 0, len(f.text)+1)
	if _, ok := f.text[0]; !ok {
		used = append(used, 0)
	}
	for gid := range f.text {
		used = append(used, gid)
	}
	slices.Sort(used)

	var embFont *sfnt.Font
	var subsetTag string
	var cidToGID []glyph.ID
	if f.noSubset {
		embFont = origFont
	} else {
		subsetTag = subset.Tag(used, origFont.NumGlyphs())
		embFont = origFont.Subset(used)

		maxCID := used[len(used)-1]
		cidToGID = make([]glyph.ID, maxCID+1)
		for subsetGID, origGID := range used {
			cidToGID[origGID] = glyph.ID(subsetGID)
		}
	}

	fontName := origFont.PostScriptName()
	if subsetTag != "" {
		fontName = subsetTag + "+" + fontName
	}

	q := 1000 / float64(origFont.UnitsPerEm)

	// widths by character code, i.e. by original glyph ID
	var W pdf.Array
	for i := 0; i < len(used); {
		j := i + 1
		for j < len(used) && used[j] == used[j-1]+1 {
			j++
		}
		ww := make(pdf.Array, 0, j-i)
		for _, gid := range used[i:j] {
			ww = append(ww, pdf.Number(f.info.GlyphWidthPDF(gid)))
		}
		W = append(W, pdf.Integer(used[i]), ww)
		i = j
	}

	isIdentity := true
	for cid, gid := range cidToGID {
		if int(gid) != cid && gid != 0 {
			isIdentity = false
			break
		}
	}
	var CIDToGIDMap pdf.Object
	if f.noSubset || isIdentity {
		CIDToGIDMap = pdf.Name("Identity")
	} else {
		CIDToGIDMap = w.Alloc()
	}

	cidFontRef := w.Alloc()
	toUnicodeRef := w.Alloc()
	fontDescriptorRef := w.Alloc()
	fontFileRef := w.Alloc()

	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        pdf.Name(fontName),
		"Encoding":        pdf.Name("Identity-H"),
		"DescendantFonts": pdf.Array{cidFontRef},
		"ToUnicode":       toUnicodeRef,
	}

	cidFontDict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("CIDFontType2"),
		"BaseFont": pdf.Name(fontName),
		"CIDSystemInfo": pdf.Dict{
			"Registry":   pdf.String("Adobe"),
			"Ordering":   pdf.String("Identity"),
			"Supplement": pdf.Integer(0),
		},
		"FontDescriptor": fontDescriptorRef,
		"CIDToGIDMap":    CIDToGIDMap,
	}
	if W != nil {
		cidFontDict["W"] = W
	}

	bbox := embFont.BBox()
	fd := &font.Descriptor{
		FontName:     fontName,
		IsFixedPitch: origFont.IsFixedPitch(),
		IsSerif:      origFont.IsSerif,
		IsSymbolic:   true,
		IsScript:     origFont.IsScript,
		IsItalic:     origFont.IsItalic,
		FontBBox: &pdf.Rectangle{
			LLx: bbox.LLx.AsFloat(q),
			LLy: bbox.LLy.AsFloat(q),
			URx: bbox.URx.AsFloat(q),
			URy: bbox.URy.AsFloat(q),
		},
		ItalicAngle: origFont.ItalicAngle,
		Ascent:      origFont.Ascent.AsFloat(q),
		Descent:     origFont.Descent.AsFloat(q),
		CapHeight:   origFont.CapHeight.AsFloat(q),
	}
	fontDescriptor := fd.AsDict()
	fontDescriptor["FontFile2"] = fontFileRef

	compressedRefs := []pdf.Reference{fontDictRef, cidFontRef, fontDescriptorRef}
	compressedObjects := []pdf.Object{fontDict, cidFontDict, fontDescriptor}
	err := w.WriteCompressed(compressedRefs, compressedObjects...)
	if err != nil {
		return pdf.Wrap(err, "composite TrueType font dicts")
	}

	fontBody := &bytes.Buffer{}
	n, err := embFont.WriteTrueTypePDF(fontBody)
	if err != nil {
		return fmt.Errorf("font program %q: %w", fontName, err)
	}
	fontFileDict := pdf.Dict{
		"Subtype": pdf.Name("TrueType"),
		"Length1": pdf.Integer(n),
	}
	fontFileStream, err := w.OpenStream(fontFileRef, fontFileDict, filters...)
	if err != nil {
		return err
	}
	_, err = fontFileStream.Write(fontBody.Bytes())
	if err != nil {
		return err
	}
	err = fontFileStream.Close()
	if err != nil {
		return err
	}

	err = f.writeToUnicode(w, toUnicodeRef, used, filters)
	if err != nil {
		return err
	}

	if ref, ok := CIDToGIDMap.(pdf.Reference); ok {
		var cid2gidFilters []pdf.Filter
		if len(filters) > 0 {
			cid2gidFilters = []pdf.Filter{pdf.FilterCompress{
				"Predictor": pdf.Integer(12),
				"Columns":   pdf.Integer(2),
			}}
		}
		cid2gidStream, err := w.OpenStream(ref, nil, cid2gidFilters...)
		if err != nil {
			return err
		}
		cid2gid := make([]byte, 2*len(cidToGID))
		for cid, gid := range cidToGID {
			cid2gid[2*cid] = byte(gid >> 8)
			cid2gid[2*cid+1] = byte(gid)
		}
		_, err = cid2gidStream.Write(cid2gid)
		if err != nil {
			return err
		}
		err = cid2gidStream.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// writeToUnicode writes the ToUnicode CMap stream mapping character
// codes back to text.  The bfchar entries are written in blocks of at
// most 100, as required by the CMap specification.
func (f *embeddedFont) writeToUnicode(w pdf.Putter, ref pdf.Reference, used []glyph.ID, filters []pdf.Filter) error {
	buf := &bytes.Buffer{}
	buf.WriteString(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
`)

	var entries []glyph.ID
	for _, gid := range used {
		if _, ok := f.text[gid]; ok {
			entries = append(entries, gid)
		}
	}
	for i := 0; i < len(entries); i += 100 {
		j := min(i+100, len(entries))
		fmt.Fprintf(buf, "%d beginbfchar\n", j-i)
		for _, gid := range entries[i:j] {
			fmt.Fprintf(buf, "<%04x> <", gid)
			for _, u := range utf16.Encode(f.text[gid]) {
				fmt.Fprintf(buf, "%04x", u)
			}
			buf.WriteString(">\n")
		}
		buf.WriteString("endbfchar\n")
	}

	buf.WriteString(`endcmap
CMapName currentdict /CMap defineresource pop
end
end
`)

	stm, err := w.OpenStream(ref, nil, filters...)
	if err != nil {
		return err
	}
	_, err = stm.Write(buf.Bytes())
	if err != nil {
		return err
	}
	return stm.Close()
}

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
	"slices"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdf"
)

func TestAddFont(t *testing.T) {
	doc := New("test", A4)
	ref, err := doc.AddFont(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	f := doc.fonts[ref.idx]
	if f.resName != "F0" {
		t.Errorf("resource name %q, want F0", f.resName)
	}
	if f.ascent() <= 0 || f.ascent() > 2 {
		t.Errorf("implausible ascent %g", f.ascent())
	}
}

func TestAddFontCorrupt(t *testing.T) {
	doc := New("test", A4)
	_, err := doc.AddFont([]byte("this is not a font"), nil)
	if _, ok := err.(*FontError); !ok {
		t.Errorf("got %T (%v), want *FontError", err, err)
	}
}

func TestRecordText(t *testing.T) {
	doc := New("test", A4)
	ref, err := doc.AddFont(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	f := doc.fonts[ref.idx]

	codes := f.record("Hello")
	if len(codes) != 5 {
		t.Fatalf("got %d codes, want 5", len(codes))
	}
	if codes[0] == 0 || codes[1] == 0 {
		t.Error("mapped runes give the .notdef glyph")
	}
	if codes[0] == codes[1] {
		t.Error("H and e map to the same glyph")
	}
	if codes[2] != codes[3] {
		t.Error("the two l glyphs differ")
	}

	// distinct glyphs used: H, e, l, o
	if len(f.text) != 4 {
		t.Errorf("%d glyphs recorded, want 4", len(f.text))
	}
	gidH := codes[0]
	if got := f.text[gidH]; len(got) != 1 || got[0] != 'H' {
		t.Errorf("glyph %d maps back to %q, want H", gidH, string(got))
	}

	if codes := f.record(""); len(codes) != 0 {
		t.Error("recording the empty string returned codes")
	}
}

// sortedGlyphs returns the glyphs used in f in increasing order,
// including the .notdef glyph.
func sortedGlyphs(f *embeddedFont) []glyph.ID {
	used := make([]glyph.ID, 0, len(f.text)+1)
	if _, ok := f.text[0]; !ok {
		used = append(used, 0)
	}
	for gid := range f.text {
		used = append(used, gid)
	}
	slices.Sort(used)
	return used
}

func TestToUnicodeBlocks(t *testing.T) {
	doc := New("test", A4)
	ref, err := doc.AddFont(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	f := doc.fonts[ref.idx]

	for r := rune(0x21); len(f.text) < 150; r++ {
		f.record(string(r))
	}

	data := pdf.NewData(pdf.V1_7)
	stmRef := data.Alloc()
	err = f.writeToUnicode(data, stmRef, sortedGlyphs(f), nil)
	if err != nil {
		t.Fatal(err)
	}

	obj, err := data.Get(stmRef, true)
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("got %T, want *pdf.Stream", obj)
	}
	body := &bytes.Buffer{}
	_, err = body.ReadFrom(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	cmap := body.String()

	numEntries := len(f.text)
	wantBlocks := (numEntries + 99) / 100
	if got := strings.Count(cmap, "beginbfchar"); got != wantBlocks {
		t.Errorf("%d bfchar blocks for %d entries, want %d",
			got, numEntries, wantBlocks)
	}
	if !strings.Contains(cmap, "100 beginbfchar") {
		t.Error("first block does not hold 100 entries")
	}
	if !strings.Contains(cmap, "begincodespacerange") {
		t.Error("missing code space range")
	}
}

func TestEmbedFont(t *testing.T) {
	doc := New("test", A4)
	ref, err := doc.AddFont(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	f := doc.fonts[ref.idx]
	f.record("Hello, world!")

	data := pdf.NewData(pdf.V1_7)
	dictRef := data.Alloc()
	err = f.embed(data, dictRef, nil)
	if err != nil {
		t.Fatal(err)
	}

	obj, err := data.Get(dictRef, true)
	if err != nil {
		t.Fatal(err)
	}
	fontDict, ok := obj.(pdf.Dict)
	if !ok {
		t.Fatalf("got %T, want pdf.Dict", obj)
	}
	if fontDict["Subtype"] != pdf.Name("Type0") {
		t.Errorf("Subtype = %v", fontDict["Subtype"])
	}
	if fontDict["Encoding"] != pdf.Name("Identity-H") {
		t.Errorf("Encoding = %v", fontDict["Encoding"])
	}
	baseFont, _ := fontDict["BaseFont"].(pdf.Name)
	if len(baseFont) < 8 || baseFont[6] != '+' {
		t.Errorf("BaseFont %q has no subset tag", baseFont)
	}

	descendants, ok := fontDict["DescendantFonts"].(pdf.Array)
	if !ok || len(descendants) != 1 {
		t.Fatalf("DescendantFonts = %v", fontDict["DescendantFonts"])
	}
	obj, err = data.Get(descendants[0].(pdf.Reference), true)
	if err != nil {
		t.Fatal(err)
	}
	cidFontDict := obj.(pdf.Dict)
	if cidFontDict["Subtype"] != pdf.Name("CIDFontType2") {
		t.Errorf("descendant Subtype = %v", cidFontDict["Subtype"])
	}
	if cidFontDict["W"] == nil {
		t.Error("missing W array")
	}
}

func TestEmbedFontNoSubset(t *testing.T) {
	doc := New("test", A4)
	ref, err := doc.AddFont(goregular.TTF, &FontOptions{NoSubset: true})
	if err != nil {
		t.Fatal(err)
	}
	f := doc.fonts[ref.idx]
	f.record("Hello")

	data := pdf.NewData(pdf.V1_7)
	dictRef := data.Alloc()
	err = f.embed(data, dictRef, nil)
	if err != nil {
		t.Fatal(err)
	}

	obj, err := data.Get(dictRef, true)
	if err != nil {
		t.Fatal(err)
	}
	fontDict := obj.(pdf.Dict)
	baseFont, _ := fontDict["BaseFont"].(pdf.Name)
	if strings.Contains(string(baseFont), "+") {
		t.Errorf("BaseFont %q carries a subset tag", baseFont)
	}

	descendants := fontDict["DescendantFonts"].(pdf.Array)
	obj, err = data.Get(descendants[0].(pdf.Reference), true)
	if err != nil {
		t.Fatal(err)
	}
	cidFontDict := obj.(pdf.Dict)
	if cidFontDict["CIDToGIDMap"] != pdf.Name("Identity") {
		t.Errorf("CIDToGIDMap = %v, want Identity", cidFontDict["CIDToGIDMap"])
	}
}

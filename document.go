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
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// producerName identifies this library in the document information
// dictionary and in the XMP metadata.
const producerName = "seehuhn.de/go/printpdf"

// A Document is a PDF document under construction.  Resources like
// fonts, images and color profiles are registered with the document
// and can then be used on any page.  Once all content is in place,
// the PDF file is written using [Document.Save] or
// [Document.SaveToFile].
//
// A Document must only be used from a single goroutine.
type Document struct {
	title        string
	pageSize     PageSize
	keywords     string
	creationDate time.Time
	trapped      bool
	compress     bool

	fileID []byte

	pages    []*Page
	fonts    []*embeddedFont
	images   []*embeddedImage
	profiles []*embeddedProfile

	outputProfile *ProfileRef
}

// New creates a new, empty document with the given title.  size gives
// the page size used by [Document.AddPage]; pages with other sizes can
// be added using [Document.AddPageSize].
//
// The creation date and the PDF file identifier are fixed when the
// document is created, so that saving the same document twice gives
// two byte-identical PDF files.
func New(title string, size PageSize) *Document {
	d := &Document{
		title:        title,
		pageSize:     size,
		creationDate: time.Now().UTC().Truncate(time.Second),
		compress:     true,
	}
	d.initID()
	return d
}

// initID derives the file identifier from the document title and
// creation date.
func (d *Document) initID() {
	h := sha256.New()
	h.Write([]byte(d.title))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(d.creationDate.Unix()))
	h.Write(buf[:])
	sum := h.Sum(nil)
	d.fileID = sum[:16]
}

// SetCreationDate overrides the document creation date.  This also
// changes the PDF file identifier.
func (d *Document) SetCreationDate(t time.Time) {
	d.creationDate = t.UTC().Truncate(time.Second)
	d.initID()
}

// SetKeywords sets the keywords recorded in the document metadata.
func (d *Document) SetKeywords(keywords string) {
	d.keywords = keywords
}

// SetTrapped records whether the document contains trapping
// information.
func (d *Document) SetTrapped(trapped bool) {
	d.trapped = trapped
}

// SetCompression enables or disables compression of the streams in
// the PDF file.  Compression is enabled by default.  Disabling
// compression changes the bytes of the output file, but not the
// document contents.
func (d *Document) SetCompression(enabled bool) {
	d.compress = enabled
}

// SetOutputProfile attaches an ICC profile to the document's output
// intent.  The profile must have been registered with this document
// using [Document.AddICCProfile].
func (d *Document) SetOutputProfile(ref *ProfileRef) error {
	_, err := d.profile("SetOutputProfile", ref)
	if err != nil {
		return err
	}
	d.outputProfile = ref
	return nil
}

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

// LayerIntent describes the intended use of the graphics on a layer.
type LayerIntent string

// Possible values for LayerIntent.
const (
	IntentView   LayerIntent = "View"
	IntentDesign LayerIntent = "Design"
)

// LayerOptions control the appearance of a layer in a PDF viewer's
// layer panel.
type LayerOptions struct {
	// Hidden makes the layer initially invisible.
	Hidden bool

	// Intent describes the intended use of the layer.  The default is
	// [IntentView].
	Intent LayerIntent
}

// A Layer is one optional content group on a page.  All drawing
// operations go through a layer; viewers can show and hide each layer
// separately.
//
// The graphics on a layer are kept separate from the graphics on all
// other layers of the page.  Layers are painted in the order they
// were added to the page.
type Layer struct {
	name   string
	hidden bool
	intent LayerIntent

	page   *Page
	writer contentWriter
}

// AddLayer appends a new layer to the page.  opt may be nil.
func (p *Page) AddLayer(name string, opt *LayerOptions) *Layer {
	if opt == nil {
		opt = &LayerOptions{}
	}
	intent := opt.Intent
	if intent == "" {
		intent = IntentView
	}
	l := &Layer{
		name:   name,
		hidden: opt.Hidden,
		intent: intent,
		page:   p,
	}
	l.writer.pageHeight = p.size.Height.Pt()
	p.layers = append(p.layers, l)
	return l
}

// SetFillColor sets the color used for filling shapes and for text.
// The new color takes effect for the following drawing operations on
// this layer.
func (l *Layer) SetFillColor(c Color) {
	l.writer.setFillColor(c)
}

// SetOutlineColor sets the color used for stroking shape outlines.
func (l *Layer) SetOutlineColor(c Color) {
	l.writer.setOutlineColor(c)
}

// SetOutlineThickness sets the line width used for stroking shape
// outlines.
func (l *Layer) SetOutlineThickness(t Mm) error {
	l.writer.setOutlineThickness(t)
	return l.writer.Err
}

// PushState saves the current graphics state of the layer.  Each call
// must be balanced by a call to [Layer.PopState] before the document
// is saved.
func (l *Layer) PushState() {
	l.writer.pushState()
}

// PopState restores the graphics state saved by the matching call to
// [Layer.PushState].
func (l *Layer) PopState() error {
	l.writer.popState()
	return l.writer.Err
}

// DrawShape draws a shape onto the layer, using the layer's current
// fill color, outline color and outline thickness.
func (l *Layer) DrawShape(s *Shape) error {
	l.writer.drawShape(s)
	return l.writer.Err
}

// UseText shows text on the layer.  pos gives the position of the
// top-left corner of the text, measured from the top-left corner of
// the page.  size is the font size in points, and rotate a
// counter-clockwise rotation in degrees about pos.
func (l *Layer) UseText(text string, size float64, pos Point, rotate float64, ref *FontRef) error {
	f, err := l.page.doc.font("UseText", ref)
	if err != nil {
		return err
	}
	l.page.usedFonts[ref.idx] = true
	l.writer.useText(text, size, pos, rotate, f)
	return l.writer.Err
}

// UseImage places an image on the layer.  pos gives the position of
// the lower-left corner of the image, width and height its size on
// the page, and rotate a counter-clockwise rotation in degrees about
// the lower-left corner.
func (l *Layer) UseImage(ref *ImageRef, pos Point, width, height Mm, rotate float64) error {
	img, err := l.page.doc.image("UseImage", ref)
	if err != nil {
		return err
	}
	l.page.usedImages[ref.idx] = true
	l.writer.useImage(img, pos, width, height, rotate)
	return l.writer.Err
}

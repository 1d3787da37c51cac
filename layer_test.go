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
	"strings"
	"testing"
)

func TestLayerIsolation(t *testing.T) {
	doc := New("test", A4)
	page, l1 := doc.AddPage("one")
	l2 := page.AddLayer("two", nil)

	red, _ := RGB(1, 0, 0)
	blue, _ := RGB(0, 0, 1)

	l1.SetFillColor(red)
	if err := l1.DrawShape(testTriangle); err != nil {
		t.Fatal(err)
	}
	l2.SetFillColor(blue)
	if err := l2.DrawShape(testTriangle); err != nil {
		t.Fatal(err)
	}

	c1 := l1.writer.Content.String()
	c2 := l2.writer.Content.String()
	if !strings.Contains(c1, "1 0 0 rg") || strings.Contains(c1, "0 0 1 rg") {
		t.Errorf("layer one content %q", c1)
	}
	if !strings.Contains(c2, "0 0 1 rg") || strings.Contains(c2, "1 0 0 rg") {
		t.Errorf("layer two content %q", c2)
	}
}

func TestLayerOptions(t *testing.T) {
	doc := New("test", A4)
	page, l1 := doc.AddPage("visible")

	if l1.hidden || l1.intent != IntentView {
		t.Errorf("default layer options: hidden=%v intent=%q", l1.hidden, l1.intent)
	}

	l2 := page.AddLayer("hidden", &LayerOptions{Hidden: true, Intent: IntentDesign})
	if !l2.hidden || l2.intent != IntentDesign {
		t.Errorf("custom layer options: hidden=%v intent=%q", l2.hidden, l2.intent)
	}
}

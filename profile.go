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
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdf"
)

// AddICCProfile registers an ICC color profile with the document.
// The profile data is validated on registration.  A registered
// profile can be attached to the document's output intent using
// [Document.SetOutputProfile].
func (d *Document) AddICCProfile(data []byte) (*ProfileRef, error) {
	if len(data) == 0 {
		return nil, &ArgumentError{
			Op:  "AddICCProfile",
			Err: errors.New("missing profile data"),
		}
	}
	p, err := icc.Decode(data)
	if err != nil {
		return nil, &ArgumentError{Op: "AddICCProfile", Err: err}
	}
	n := p.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return nil, &ArgumentError{
			Op:  "AddICCProfile",
			Err: fmt.Errorf("invalid number of components %d", n),
		}
	}

	prof := &embeddedProfile{
		data: append([]byte(nil), data...),
		n:    n,
	}
	d.profiles = append(d.profiles, prof)
	return &ProfileRef{doc: d, idx: len(d.profiles) - 1}, nil
}

type embeddedProfile struct {
	data []byte
	n    int
}

// embed writes the profile data as a stream object.
func (prof *embeddedProfile) embed(w pdf.Putter, ref pdf.Reference, filters []pdf.Filter) error {
	dict := pdf.Dict{
		"N": pdf.Integer(prof.n),
	}
	stm, err := w.OpenStream(ref, dict, filters...)
	if err != nil {
		return err
	}
	_, err = stm.Write(prof.data)
	if err != nil {
		return err
	}
	return stm.Close()
}

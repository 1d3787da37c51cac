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

import "errors"

// ArgumentError indicates that invalid input was passed to a
// construction or drawing call.  The error is reported at the call
// site, before any state is modified.
type ArgumentError struct {
	Op  string // the failing operation, e.g. "RGB" or "DrawShape"
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ResourceError indicates use of a resource reference which is not
// valid for the document it was used with, or which refers to a
// resource of the wrong kind.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// FontError indicates that a font program could not be used, either
// because the data is corrupted or because the font format is not
// supported.  The error is reported when the font is registered.
type FontError struct {
	Err error
}

func (e *FontError) Error() string {
	return "font: " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}

// WriteError indicates that a document could not be saved.  When a
// WriteError occurs, no partial output has been handed to the final
// destination unless the destination itself failed mid-write.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "save: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

var (
	// ErrMalformedPath indicates a shape where the bezier control
	// points are not arranged in groups of two between on-curve points.
	ErrMalformedPath = errors.New("malformed bezier handle grouping")

	// ErrUnbalancedState indicates a layer where calls to
	// [Layer.PushState] and [Layer.PopState] do not match up.
	ErrUnbalancedState = errors.New("unbalanced graphics state save/restore")

	errWrongDocument = errors.New("reference belongs to a different document")
	errNilReference  = errors.New("unregistered resource reference")
)

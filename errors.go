// seehuhn.de/go/blit - compositing of glyph bitmaps
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package blit

import "errors"

// Status codes, as reported by [Status].
const (
	StatusOK            = 0
	StatusBadArgument   = -1 // bad argument, bad source or target depth
	StatusUnsupported   = -2 // the glyph's pixel mode cannot be a source
	StatusTableOverflow = -3 // the lookup-table cache is full
)

// Error is the type of all errors returned by this package.
type Error struct {
	Code   int
	Reason string
}

func (e *Error) Error() string {
	return "blit: " + e.Reason
}

var (
	// ErrBadArgument is returned for nil bitmaps and gray-level counts
	// below two.
	ErrBadArgument = &Error{Code: StatusBadArgument, Reason: "bad argument"}

	// ErrBadSourceDepth is returned when a monochrome glyph is drawn onto
	// a target whose pixel mode cannot receive it.
	ErrBadSourceDepth = &Error{Code: StatusBadArgument, Reason: "bad source depth"}

	// ErrBadTargetDepth is returned when a gray glyph is drawn onto a
	// target whose pixel mode cannot receive it.
	ErrBadTargetDepth = &Error{Code: StatusBadArgument, Reason: "bad target depth"}

	// ErrUnsupportedSource is returned for glyphs in a palette or RGB
	// pixel mode.
	ErrUnsupportedSource = &Error{Code: StatusUnsupported, Reason: "unsupported source pixel mode"}

	// ErrSaturationOverflow is returned when a new saturation table is
	// needed but the cache is full.
	ErrSaturationOverflow = &Error{Code: StatusTableOverflow, Reason: "too many saturation tables"}

	// ErrConversionOverflow is returned when a new conversion table is
	// needed but the cache is full.
	ErrConversionOverflow = &Error{Code: StatusTableOverflow, Reason: "too many conversion tables"}
)

// Status maps err to the numeric status code of the classic blitter
// interface: 0 for nil, a negative code otherwise.  Errors not created by
// this package map to StatusBadArgument.
func Status(err error) int {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return StatusBadArgument
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/pkg/errors"

var (
	// ErrMalformedDirectory is returned when the table directory would read past the end of the
	// font program.
	ErrMalformedDirectory = errors.New("malformed table directory")

	// ErrTruncatedBuffer is returned when a table read runs past the end of the font program.
	ErrTruncatedBuffer = errors.New("truncated buffer")

	// ErrUnresolvableReference marks a composite glyph component that refers to a glyph outside
	// the glyph table or not yet decoded. It is logged, never returned from Decode.
	ErrUnresolvableReference = errors.New("unresolvable composite glyph reference")

	// ErrUnsupportedEncoding marks a name string whose declared encoding could not be applied.
	// It is logged, never returned from Decode.
	ErrUnsupportedEncoding = errors.New("unsupported text encoding")
)

var (
	errTypeCheck      = errors.New("type check error")
	errRangeCheck     = errors.New("range check error")
	errInvalidContext = errors.New("invalid context")
)

// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text into QR code symbols of versions 1 and 2.

The caller chooses the version and error correction level; Encode
fails with ErrCapacity when the text does not fit, and FitVersion
reports the smallest version that would.  The result is a Code: a
square grid of dark and light modules with rendering helpers for
images, netpbm and terminals.
*/
package qr

import (
	"github.com/smallcode/qr/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // ~7% of codewords recoverable
	M              // ~15%
	Q              // ~25%
	H              // ~30%
)

// Errors returned by Encode and FitVersion.
var (
	ErrVersion  = coding.ErrVersion
	ErrLevel    = coding.ErrLevel
	ErrCapacity = coding.ErrCapacity
)

// A Code is a square module grid, the result of one encoding run.
// The module values are fixed; the remaining fields only affect
// rendering and may be set freely.
type Code struct {
	Bitmap []bool // row-major module colours, true is dark
	Size   int    // number of modules on a side
	Mask   int    // mask pattern selected during encoding

	Scale   int  // image pixels per module
	Border  int  // quiet zone width in modules
	Reverse bool // swap dark and light when rendering

	Steps []coding.Step // encoding trace, set by EncodeTrace only
}

// Black reports whether the module at column x, row y is dark.
// Modules outside the grid are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Size+x]
}

func newCode(m *coding.Matrix, mask int) *Code {
	c := &Code{
		Bitmap: make([]bool, m.Size*m.Size),
		Size:   m.Size,
		Mask:   mask,
		Scale:  4,
		Border: 4,
	}
	for r := 0; r < m.Size; r++ {
		for col := 0; col < m.Size; col++ {
			c.Bitmap[r*m.Size+col] = m.At(r, col).IsDark()
		}
	}
	return c
}

// PickMode returns the cheapest single mode that can encode text:
// numeric and alphanumeric for their subsets, Latin-1 byte mode for
// text limited to ISO 8859-1, plain byte mode otherwise.
func PickMode(text string) coding.Mode {
	for _, mode := range []coding.Mode{coding.Numeric, coding.Alphanumeric, coding.Latin1} {
		if (coding.Segment{Text: text, Mode: mode}).IsValid() {
			return mode
		}
	}
	return coding.Byte
}

// Encode returns an encoding of text at the given version (1 or 2)
// and error correction level, choosing the cheapest mode the text
// allows.
func Encode(text string, version int, level Level) (*Code, error) {
	return EncodeSegments(version, level,
		coding.Segment{Text: text, Mode: PickMode(text)})
}

// EncodeSegments encodes explicitly built segments at the given
// version and level.
func EncodeSegments(version int, level Level, segs ...coding.Segment) (*Code, error) {
	m, mask, err := coding.Encode(coding.Version(version), coding.Level(level), segs...)
	if err != nil {
		return nil, err
	}
	return newCode(m, mask), nil
}

// EncodeTrace is EncodeSegments with the step-by-step encoding trace
// collected into the returned Code.
func EncodeTrace(version int, level Level, segs ...coding.Segment) (*Code, error) {
	e, err := coding.NewEncoder(coding.Version(version), coding.Level(level))
	if err != nil {
		return nil, err
	}
	e.Trace(true)
	m, mask, err := e.Encode(segs...)
	if err != nil {
		return nil, err
	}
	c := newCode(m, mask)
	c.Steps = e.Steps()
	return c, nil
}

// FitVersion returns the smallest supported version whose data
// capacity at the given level fits text, or ErrCapacity if none does.
// It never encodes; pair it with Encode for callers that want
// automatic sizing.
func FitVersion(text string, level Level) (int, error) {
	return FitVersionSegments(level,
		coding.Segment{Text: text, Mode: PickMode(text)})
}

// FitVersionSegments is FitVersion for explicitly built segments.
func FitVersionSegments(level Level, segs ...coding.Segment) (int, error) {
	n := 0
	for _, seg := range segs {
		n += seg.EncodedLength()
	}
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		if n <= v.DataBits(coding.Level(level)) {
			return int(v), nil
		}
	}
	return 0, ErrCapacity
}

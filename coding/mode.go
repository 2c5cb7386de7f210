// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode, digits only
	Alphanumeric             // alphanumeric mode, uppercase subset
	Byte                     // byte mode, any data
	Latin1                   // byte mode, UTF-8 text encoded as ISO 8859-1
)

// A Mode is a QR segment encoding.
type Mode int

func (mode Mode) String() string {
	if mode.valid() {
		return stdmodes[mode].name
	}
	return strconv.Itoa(int(mode))
}

func (mode Mode) valid() bool {
	return mode >= 0 && int(mode) < len(stdmodes)
}

// A modeEncoder implements a QR segment encoding for versions 1-2.
type modeEncoder struct {
	name      string
	indicator byte                   // 4 bit mode indicator
	countLen  int                    // character count field width
	length    func(bytes, runes int) int // encoded data length in bits
	accepts   func(rune) bool
	encode    func(*Bits, string)
	transform func(string) (Segment, bool)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table, indexed by character & 0x3f.
// Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

var stdmodes = [...]modeEncoder{
	Numeric: {
		name:      "numeric",
		indicator: 1,
		countLen:  10,
		length:    func(b, r int) int { return (10*b + 2) / 3 },
		accepts:   func(r rune) bool { return uint32(r-'0') < 10 },
		encode:    encodeNum,
	},
	Alphanumeric: {
		name:      "alphanumeric",
		indicator: 2,
		countLen:  9,
		length:    func(b, r int) int { return (11*b + 1) / 2 },
		accepts: func(r rune) bool {
			return uint32(r-' ') < 64 && alphamask>>(uint32(r)-' ')&1 != 0
		},
		encode: encodeAlpha,
	},
	Byte: {
		name:      "byte",
		indicator: 4,
		countLen:  8,
		length:    func(b, r int) int { return b * 8 },
		encode:    encodeBytes,
	},
	Latin1: {
		name:      "latin-1",
		indicator: 4,
		countLen:  8,
		length:    func(b, r int) int { return r * 8 },
		accepts:   func(r rune) bool { return uint32(r) < 0x100 },
		transform: func(s string) (Segment, bool) {
			t, err := charmap.ISO8859_1.NewEncoder().String(s)
			return Segment{t, Byte}, err == nil
		},
	},
}

func encodeNum(b *Bits, s string) {
	for len(s) >= 3 {
		v := uint32(s[0])*100 + uint32(s[1])*10 + uint32(s[2]) - '0'*111
		b.Write(v, 10)
		s = s[3:]
	}
	switch len(s) {
	case 2:
		b.Write(uint32(s[0])*10+uint32(s[1])-'0'*11, 7)
	case 1:
		b.Write(uint32(s[0])-'0', 4)
	}
}

func encodeAlpha(b *Bits, s string) {
	for len(s) >= 2 {
		v := uint32(alpha[s[0]&0x3f])*45 + uint32(alpha[s[1]&0x3f])
		b.Write(v, 11)
		s = s[2:]
	}
	if len(s) == 1 {
		b.Write(uint32(alpha[s[0]&0x3f]), 6)
	}
}

func encodeBytes(b *Bits, s string) {
	for i := 0; i < len(s); i++ {
		b.Write(uint32(s[i]), 8)
	}
}

// A Segment describes a QR code segment: a string and the mode to
// encode it in.
type Segment struct {
	Text string
	Mode Mode
}

// SegmentError represents a Segment not encodable in its Mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	if e.Mode.valid() {
		return fmt.Sprintf("qr: non-%s string %#q", stdmodes[e.Mode].name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	if !seg.Mode.valid() {
		return false
	}
	if is := stdmodes[seg.Mode].accepts; is != nil {
		for _, r := range seg.Text {
			if !is(r) {
				return false
			}
		}
	}
	return true
}

// EncodedLength returns the encoded length of seg in bits, including
// the mode and character count header.  The segment is not validated.
func (seg Segment) EncodedLength() int {
	if !seg.Mode.valid() {
		return 0
	}
	m := &stdmodes[seg.Mode]
	return 4 + m.countLen + m.length(len(seg.Text), utf8.RuneCountInString(seg.Text))
}

// Encode writes seg to b: the mode indicator, the character count and
// the encoded text.
func (seg Segment) Encode(b *Bits) error {
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	m := &stdmodes[seg.Mode]
	if m.transform != nil {
		ts, ok := m.transform(seg.Text)
		if !ok {
			return SegmentError(seg)
		}
		seg = ts
		m = &stdmodes[seg.Mode]
	}
	b.Write(uint32(m.indicator), 4)
	b.Write(uint32(len(seg.Text)), m.countLen)
	m.encode(b, seg.Text)
	return nil
}

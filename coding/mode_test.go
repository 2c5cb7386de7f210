// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "numeric", Numeric.String())
	assert.Equal(t, "alphanumeric", Alphanumeric.String())
	assert.Equal(t, "byte", Byte.String())
	assert.Equal(t, "latin-1", Latin1.String())
	assert.Equal(t, "-1", Mode(-1).String())
}

func TestSegmentIsValid(t *testing.T) {
	for _, tc := range []struct {
		seg Segment
		ok  bool
	}{
		{Segment{"0123456789", Numeric}, true},
		{Segment{"123a", Numeric}, false},
		{Segment{"HELLO WORLD $%*+-./:", Alphanumeric}, true},
		{Segment{"hello", Alphanumeric}, false},
		{Segment{"HELLO,", Alphanumeric}, false},
		{Segment{"\x00\xffanything", Byte}, true},
		{Segment{"café", Latin1}, true},
		{Segment{"日本", Latin1}, false},
		{Segment{"abc", Mode(17)}, false},
	} {
		assert.Equal(t, tc.ok, tc.seg.IsValid(), "%+v", tc.seg)
	}
}

func TestSegmentError(t *testing.T) {
	b := NewBits(1)
	err := Segment{"123a", Numeric}.Encode(b)
	var serr SegmentError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "qr: non-numeric string `123a`", err.Error())
	assert.Equal(t, "qr: invalid mode 17",
		Segment{"abc", Mode(17)}.Encode(b).Error())
}

func TestEncodedLength(t *testing.T) {
	assert.Equal(t, 4+10+27, Segment{"01234567", Numeric}.EncodedLength())
	assert.Equal(t, 4+9+61, Segment{"HELLO WORLD", Alphanumeric}.EncodedLength())
	assert.Equal(t, 4+8+40, Segment{"HELLO", Byte}.EncodedLength())
	// Latin-1 counts runes, not UTF-8 bytes.
	assert.Equal(t, 4+8+32, Segment{"café", Latin1}.EncodedLength())
}

func TestEncodeNumeric(t *testing.T) {
	b := NewBits(1)
	require.NoError(t, Segment{"01234567", Numeric}.Encode(b))
	assert.Equal(t, 41, b.Bits())
	b.Write(0, 7)
	assert.Equal(t, []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80}, b.Bytes())
}

func TestEncodeAlphanumeric(t *testing.T) {
	// ISO/IEC 18004 section 8.4.3 example, carried through error
	// correction at version 1-M.
	b := NewBits(1)
	require.NoError(t, Segment{"HELLO WORLD", Alphanumeric}.Encode(b))
	require.NoError(t, b.AddCheckBytes(1, M))
	assert.Equal(t, []byte{
		0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d,
		0x43, 0x40, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
		0xc4, 0x23, 0x27, 0x77, 0xeb, 0xd7, 0xe7, 0xe2, 0x5d, 0x17,
	}, b.Bytes())
}

func TestEncodeLatin1(t *testing.T) {
	b := NewBits(1)
	require.NoError(t, Segment{"café", Latin1}.Encode(b))
	assert.Equal(t, 44, b.Bits())
	b.Write(0, 4)
	assert.Equal(t, []byte{0x40, 0x46, 0x36, 0x16, 0x6e, 0x90}, b.Bytes())
}

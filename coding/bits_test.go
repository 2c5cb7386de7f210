// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsWrite(t *testing.T) {
	b := NewBits(1)
	b.Write(0x5, 4)
	b.Write(0x0, 1)
	b.Write(0x7ff, 11)
	assert.Equal(t, 16, b.Bits())
	assert.Equal(t, []byte{0x57, 0xff}, b.Bytes())

	b.Reset()
	b.Write(0x0100, 16)
	b.Write(1, 1)
	assert.Equal(t, 17, b.Bits())
	assert.Panics(t, func() { b.Bytes() })
	b.Write(0, 7)
	assert.Equal(t, []byte{0x01, 0x00, 0x80}, b.Bytes())
}

// Codewords for "HELLO" in byte mode at version 1-L, terminator,
// padding and error correction included.
var helloCodewords = []byte{
	0x40, 0x54, 0x84, 0x54, 0xc4, 0xc4, 0xf0, 0xec, 0x11, 0xec,
	0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	0x4d, 0x2a, 0xd3, 0xbb, 0x9f, 0x20, 0x84,
}

func TestAddCheckBytes(t *testing.T) {
	b := NewBits(1)
	require.NoError(t, Segment{"HELLO", Byte}.Encode(b))
	require.NoError(t, b.AddCheckBytes(1, L))
	assert.Equal(t, helloCodewords, b.Bytes())
	assert.Equal(t, 26*8, b.Bits())
}

func TestAddCheckBytesCapacity(t *testing.T) {
	// 17 bytes fill version 1-L exactly, leaving room for the
	// 4 bit terminator.
	b := NewBits(1)
	require.NoError(t, Segment{strings.Repeat("a", 17), Byte}.Encode(b))
	assert.Equal(t, 148, b.Bits())
	require.NoError(t, b.AddCheckBytes(1, L))
	assert.Equal(t, 26, len(b.Bytes()))

	b.Reset()
	require.NoError(t, Segment{strings.Repeat("a", 18), Byte}.Encode(b))
	assert.ErrorIs(t, b.AddCheckBytes(1, L), ErrCapacity)

	b.Reset()
	assert.ErrorIs(t, b.AddCheckBytes(0, L), ErrVersion)
	assert.ErrorIs(t, b.AddCheckBytes(1, Level(9)), ErrLevel)
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa5})
	var got []byte
	for s.Remaining() > 0 {
		got = append(got, s.Next())
	}
	assert.Equal(t, []byte{1, 0, 1, 0, 0, 1, 0, 1}, got)
	assert.Equal(t, byte(0), s.Next())
	assert.Equal(t, 0, s.Remaining())
}

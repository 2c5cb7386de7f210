// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/smallcode/qr/gf256"

// Bits accumulates a bit string most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, vtab[v].bytes)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the accumulated bytes.  It panics if the bit count is
// not a multiple of 8.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - uint(nbit)
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - uint(rem)))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= uint(rem)
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad bytes alternate until the data capacity is reached.
var padBytes = [2]uint32{0xec, 0x11}

// AddCheckBytes adds the terminator, padding and error correction
// bytes to b for the given version and level.  It returns ErrCapacity
// if the written bits exceed the data capacity.
func (b *Bits) AddCheckBytes(v Version, l Level) error {
	if err := check(v, l); err != nil {
		return err
	}
	nd := v.DataBytes(l)
	if b.nbit > nd*8 {
		return ErrCapacity
	}

	// Terminator: up to 4 zero bits, fewer if the capacity does not
	// allow them, then zero bits to the codeword boundary.
	if t := min(4, nd*8-b.nbit); t > 0 {
		b.Write(0, t)
	}
	if rem := -b.nbit & 7; rem != 0 {
		b.Write(0, rem)
	}
	for i := 0; len(b.b) < nd; i++ {
		b.Write(padBytes[i&1], 8)
	}

	rs := gf256.NewRSEncoder(Field, v.CheckBytes(l))
	total := vtab[v].bytes
	for len(b.b) < total {
		b.b = append(b.b, 0)
	}
	rs.ECC(b.b[:nd], b.b[nd:total])
	b.nbit = total * 8
	return nil
}

// BitStream reads bits from an underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Remaining returns the number of unread bits.
func (s *BitStream) Remaining() int { return len(s.b)*8 - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

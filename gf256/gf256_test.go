// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var f = NewField(0x11d, 2)

func TestFieldTables(t *testing.T) {
	// First powers of α and the wrap at x⁸ = x⁴+x³+x²+1.
	want := []byte{1, 2, 4, 8, 16, 32, 64, 128, 0x1d, 0x3a}
	for i, v := range want {
		assert.Equal(t, v, f.Exp(i), "α^%d", i)
	}
	assert.Equal(t, byte(1), f.Exp(255), "α^255 wraps to 1")

	seen := make(map[byte]bool)
	for i := 0; i < 255; i++ {
		x := f.Exp(i)
		require.False(t, seen[x], "α^%d repeats", i)
		seen[x] = true
		assert.Equal(t, i, f.Log(x))
	}
}

func TestLogZeroPanics(t *testing.T) {
	assert.Panics(t, func() { f.Log(0) })
}

func TestMul(t *testing.T) {
	// Zero short-circuits without consulting the log table.
	assert.Equal(t, byte(0), f.Mul(0, 0x53))
	assert.Equal(t, byte(0), f.Mul(0x53, 0))

	for _, x := range []byte{1, 2, 3, 0x53, 0xca, 0xff} {
		assert.Equal(t, x, f.Mul(x, 1), "x*1")
		for _, y := range []byte{1, 7, 0x8e, 0xfe} {
			assert.Equal(t, f.Mul(y, x), f.Mul(x, y), "commutativity")
		}
	}

	// Known product in GF(0x11d).
	assert.Equal(t, f.Exp(f.Log(0x53)+f.Log(0xca)), f.Mul(0x53, 0xca))

	// Distributivity over a sample.
	a, b, c := byte(0x1d), byte(0x47), byte(0x9c)
	assert.Equal(t, f.Mul(a, b)^f.Mul(a, c), f.Mul(a, b^c))
}

func TestNewFieldRejectsBadPoly(t *testing.T) {
	assert.Panics(t, func() { NewField(0x11c, 2) }) // reducible (even)
	assert.Panics(t, func() { NewField(0xff, 2) })  // not degree 8
}

func TestECCKnownVector(t *testing.T) {
	// "HELLO WORLD", version 1-M, alphanumeric mode: the standard
	// worked example.
	data := []byte{
		0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d,
		0x43, 0x40, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	}
	want := []byte{0xc4, 0x23, 0x27, 0x77, 0xeb, 0xd7, 0xe7, 0xe2, 0x5d, 0x17}

	rs := NewRSEncoder(f, 10)
	check := make([]byte, 10)
	rs.ECC(data, check)
	assert.Equal(t, want, check)

	// Encoding is deterministic.
	again := make([]byte, 10)
	rs.ECC(data, again)
	assert.Equal(t, check, again)
}

func TestECCLengths(t *testing.T) {
	for _, c := range []int{1, 7, 10, 13, 16, 17, 22, 28} {
		rs := NewRSEncoder(f, c)
		for _, n := range []int{1, 9, 19, 34} {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i*31 + c)
			}
			check := make([]byte, c)
			rs.ECC(data, check)
			// The remainder of a nonzero dividend by the
			// generator is never all zero for these sizes.
			nz := false
			for _, v := range check {
				nz = nz || v != 0
			}
			assert.True(t, nz, "c=%d n=%d", c, n)
		}
	}
}

func TestECCEmpty(t *testing.T) {
	rs := NewRSEncoder(f, 0)
	assert.NotPanics(t, func() { rs.ECC(nil, nil) })

	rs = NewRSEncoder(f, 7)
	check := make([]byte, 7)
	rs.ECC(nil, check)
	assert.Equal(t, make([]byte, 7), check, "no data leaves zero remainder")
}

func TestECCWrongCheckLength(t *testing.T) {
	rs := NewRSEncoder(f, 7)
	assert.Panics(t, func() { rs.ECC([]byte{1}, make([]byte, 6)) })
}

// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256)
// and the Reed-Solomon check byte generation used by QR codes.
package gf256

import "strconv"

// A Field represents an instance of GF(256) defined by a generator
// polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  QR error correction uses poly 0x11d and α 2.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}

	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator: " + strconv.Itoa(α))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	for i := 0; i < 255; i++ {
		if f.log[f.exp[i]] != byte(i) {
			panic("gf256: bad log")
		}
	}
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// polyDiv divides the polynomial p by q and returns the remainder.
func polyDiv(p, q int) int {
	np := nbit(p)
	nq := nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<(np-1)) != 0 {
			p ^= q << (np - nq)
		}
	}
	return p
}

// mul returns the product x*y mod poly, a polynomial multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// reducible reports whether p is reducible.
func reducible(p int) bool {
	// Multiplying n-bit * m-bit produces an (n+m-1)-bit result,
	// so a reducible p has a factor of at most half its bit size.
	np := nbit(p)
	for q := 2; q < 1<<(np/2+1); q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// Exp returns αᵉ in the field.
func (f *Field) Exp(e int) byte {
	return f.exp[e%255]
}

// Log returns log base α of x in the field.  Log of 0 is undefined
// and panics; callers multiplying field elements must short-circuit
// zero operands instead.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log(0) undefined")
	}
	return int(f.log[x])
}

// Mul returns the product x*y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// An RSEncoder implements Reed-Solomon encoding over a field,
// generating a fixed number of check bytes.
type RSEncoder struct {
	f    *Field
	c    int
	lgen []byte // log of generator coefficients, leading 1 omitted
}

// NewRSEncoder returns an encoder generating c check bytes over the
// field f.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 0 {
		panic("gf256: invalid check byte count")
	}
	return &RSEncoder{f: f, c: c, lgen: gen(f, c)}
}

// gen returns the logs of the coefficients of the generator
// polynomial for c check bytes, the product of (x - αⁱ) for i in
// 0..c-1, in descending degree with the monic leading term omitted.
func gen(f *Field, c int) []byte {
	p := make([]byte, c+1)
	p[0] = 1
	for i := 0; i < c; i++ {
		// p *= (x - αⁱ): shift and add back αⁱ times the old p.
		αi := f.Exp(i)
		for j := c; j > 0; j-- {
			p[j] = f.Mul(p[j], αi) ^ p[j-1]
		}
		p[0] = f.Mul(p[0], αi)
	}
	lgen := make([]byte, c)
	for i := 0; i < c; i++ {
		if p[c-1-i] == 0 {
			panic("gf256: zero generator coefficient")
		}
		lgen[i] = byte(f.Log(p[c-1-i]))
	}
	return lgen
}

// ECC writes the error correcting code bytes for data into check.
// len(check) must equal the encoder's check byte count.
func (e *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != e.c {
		panic("gf256: invalid check byte length")
	}
	if e.c == 0 {
		return
	}

	// Polynomial division of data·x^c by the generator; the
	// remainder is the check bytes.  p holds the sliding window of
	// the dividend.
	p := make([]byte, e.c)
	f := e.f
	for _, v := range data {
		top := p[0] ^ v
		copy(p, p[1:])
		p[e.c-1] = 0
		if top == 0 {
			continue
		}
		lt := int(f.log[top])
		for i, lg := range e.lgen {
			p[i] ^= f.exp[lt+int(lg)]
		}
	}
	copy(check, p)
}

// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details for symbol
// versions 1 and 2: segment encoding, error correction, module
// placement and mask selection.
package coding

import (
	"errors"
	"strconv"

	"github.com/smallcode/qr/gf256"
)

var (
	ErrVersion  = errors.New("qr: invalid version")
	ErrLevel    = errors.New("qr: invalid level")
	ErrCapacity = errors.New("qr: data too long for version and level")

	// Layout errors indicate a mismatch between the capacity table
	// and the module grid.  They are programming errors, not user
	// input errors.
	ErrLayoutOverflow  = errors.New("qr: internal error: data bits exhausted before grid filled")
	ErrLayoutUnderflow = errors.New("qr: internal error: data bits left after grid filled")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.  A QR code with version v has
// 4v+17 modules on a side.  Only versions 1 and 2 are supported.
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 2
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

func (v Version) valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a QR code with
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

func (l Level) valid() bool { return L <= l && l <= H }

// A version describes the fixed geometry and capacity of a QR
// version.  Versions 1 and 2 use a single error correction block at
// every level, so no block structure is recorded.
type version struct {
	bytes     int      // total codewords
	remainder int      // leftover data modules, always light
	apos      int      // alignment pattern centre, 0 if none
	level     [4]level // capacity split per level
}

type level struct {
	data  int // data codewords
	check int // error correction codewords
}

// Capacity tables from ISO/IEC 18004 table 9 (via qrencode qrspec.c).
var vtab = [MaxVersion + 1]version{
	1: {26, 0, 0, [4]level{{19, 7}, {16, 10}, {13, 13}, {9, 17}}},
	2: {44, 7, 18, [4]level{{34, 10}, {28, 16}, {22, 22}, {16, 28}}},
}

// DataBytes returns the number of data codewords that can be stored
// in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int { return vtab[v].level[l].data }

// CheckBytes returns the number of error correction codewords for the
// given version and level.
func (v Version) CheckBytes(l Level) int { return vtab[v].level[l].check }

// TotalBytes returns the total codeword count for the version.
func (v Version) TotalBytes() int { return vtab[v].bytes }

// DataBits returns the number of data bits that can be stored in a QR
// code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// check validates a version and level pair.
func check(v Version, l Level) error {
	if !v.valid() {
		return ErrVersion
	}
	if !l.valid() {
		return ErrLevel
	}
	return nil
}

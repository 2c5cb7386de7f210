// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Step is one entry of the optional encoding trace: a short name
// and a human-readable detail line.  The trace is a diagnostic side
// channel; it never influences the encoded result.
type Step struct {
	Name   string
	Detail string
}

// An Encoder encodes a QR code at a fixed version and level.
type Encoder struct {
	version Version
	level   Level
	b       *Bits
	trace   bool
	steps   []Step
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if err := check(version, level); err != nil {
		return nil, err
	}
	return &Encoder{
		version: version,
		level:   level,
		b:       NewBits(version),
	}, nil
}

// Trace enables collection of encoding steps, retrievable with Steps.
func (e *Encoder) Trace(on bool) { e.trace = on }

// Steps returns the trace collected since the last Reset.
func (e *Encoder) Steps() []Step { return e.steps }

func (e *Encoder) Reset() {
	e.b.Reset()
	e.steps = e.steps[:0]
}

func (e *Encoder) stepf(name, format string, args ...any) {
	if e.trace {
		e.steps = append(e.steps, Step{name, fmt.Sprintf(format, args...)})
	}
}

// Write adds segments to e.
func (e *Encoder) Write(segs ...Segment) error {
	for _, seg := range segs {
		if err := seg.Encode(e.b); err != nil {
			return err
		}
		e.stepf("segment", "%s mode, %d bytes, %d bits total",
			seg.Mode, len(seg.Text), e.b.Bits())
	}
	return nil
}

// Code runs the rest of the pipeline on the written segments and
// returns the masked matrix and the chosen mask.
func (e *Encoder) Code() (*Matrix, int, error) {
	if e.b.Bits() > e.version.DataBits(e.level) {
		return nil, 0, ErrCapacity
	}
	e.stepf("bitstream", "%d data bits of %d available",
		e.b.Bits(), e.version.DataBits(e.level))

	if err := e.b.AddCheckBytes(e.version, e.level); err != nil {
		return nil, 0, err
	}
	nd := e.version.DataBytes(e.level)
	cw := e.b.Bytes()
	e.stepf("data codewords", "% X", cw[:nd])
	e.stepf("check codewords", "% X", cw[nd:])

	m, err := NewMatrix(e.version)
	if err != nil {
		return nil, 0, err
	}
	e.stepf("function patterns", "version %s, %d modules per side",
		e.version, m.Size)

	if err := m.Place(cw); err != nil {
		return nil, 0, err
	}
	e.stepf("placement", "%d codewords in zig-zag order", len(cw))

	best, mask, score := SelectMask(m, e.level)
	e.stepf("mask", "selected mask %d, penalty %d", mask, score)
	return best, mask, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(segs ...Segment) (*Matrix, int, error) {
	if err := e.Write(segs...); err != nil {
		return nil, 0, err
	}
	return e.Code()
}

// Encode encodes segments at the given version and level, returning
// the masked matrix and the chosen mask.
func Encode(version Version, level Level, segs ...Segment) (*Matrix, int, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, 0, err
	}
	return e.Encode(segs...)
}

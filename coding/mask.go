// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// The eight mask predicates.  A data module is inverted where its
// predicate holds.
var maskCond = [8]func(r, c int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return r*c%2+r*c%3 == 0 },
	func(r, c int) bool { return (r*c%2+r*c%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+r*c%3)%2 == 0 },
}

// applyMask inverts the data modules of m selected by the mask
// predicate.  Reserved modules are never touched.
func (m *Matrix) applyMask(mask int) {
	cond := maskCond[mask]
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			if !cond(r, c) {
				continue
			}
			switch m.At(r, c) {
			case Light:
				m.setData(r, c, true)
			case Dark:
				m.setData(r, c, false)
			}
		}
	}
}

// Penalty scoring per ISO/IEC 18004 section 8.8.2:
//
//   - runs of n >= 5 same-coloured modules in a row or column: n-2
//   - 2x2 blocks of one colour, overlapping: 3 each
//   - 1:1:3:1:1 finder-like pattern with four light modules on
//     either side, in a row or column: 40 each
//   - dark module proportion: 10 for every full 5% deviation from 50%
const (
	minRun  = 5
	runPen  = -2 // added to the run length
	boxPen  = 3
	findPen = 40
	balPen  = 10
)

// Finder-like sequences for the third rule, 11 modules, dark bits
// set.  One is the reverse of the other.
const (
	findA = 0x5d0 // 10111010000
	findB = 0x05d // 00001011101
)

// Penalty returns the penalty score of the matrix.  Lower is better.
func (m *Matrix) Penalty() int {
	siz := m.Size
	p := 0
	dark := 0

	// Rows: runs, finder-like patterns, dark count.
	for r := 0; r < siz; r++ {
		run, pat := 0, 0
		var last, cur bool
		for c := 0; c < siz; c++ {
			cur = m.At(r, c).IsDark()
			if cur {
				dark++
			}
			p += scanStep(&run, &pat, last, cur, c)
			last = cur
		}
		if run >= minRun {
			p += run + runPen
		}
	}

	// Columns: runs, finder-like patterns.
	for c := 0; c < siz; c++ {
		run, pat := 0, 0
		var last, cur bool
		for r := 0; r < siz; r++ {
			cur = m.At(r, c).IsDark()
			p += scanStep(&run, &pat, last, cur, r)
			last = cur
		}
		if run >= minRun {
			p += run + runPen
		}
	}

	// 2x2 blocks.
	for r := 0; r < siz-1; r++ {
		for c := 0; c < siz-1; c++ {
			v := m.At(r, c).IsDark()
			if v == m.At(r, c+1).IsDark() &&
				v == m.At(r+1, c).IsDark() &&
				v == m.At(r+1, c+1).IsDark() {
				p += boxPen
			}
		}
	}

	// Dark proportion, rounded towards 50%.
	total := siz * siz
	dev := dark*100/total - 50
	if dev < 0 {
		dev = -dev
	}
	p += dev / 5 * balPen
	return p
}

// scanStep advances one line scan by a module: it updates the maximal
// run length and the 11-module sliding window, and returns the
// penalty contribution at position i.
func scanStep(run, pat *int, last, cur bool, i int) int {
	p := 0
	if i > 0 && cur == last {
		*run++
	} else {
		if *run >= minRun {
			p += *run + runPen
		}
		*run = 1
	}
	*pat = *pat << 1 & 0x7ff
	if cur {
		*pat |= 1
	}
	if i >= 10 && (*pat == findA || *pat == findB) {
		p += findPen
	}
	return p
}

// SelectMask applies each of the eight masks to m, scores the
// results, and returns the masked matrix with the lowest penalty
// along with its mask number and score.  Ties keep the lowest mask
// number, so selection is deterministic.  The format information for
// the level and winning mask is written into the returned matrix; m
// itself is never modified.
func SelectMask(m *Matrix, l Level) (best *Matrix, mask, score int) {
	score = 1 << 30 // any real penalty is far smaller
	for id := 0; id < 8; id++ {
		cand := m.Clone()
		cand.applyMask(id)
		cand.setFormat(l, id)
		if p := cand.Penalty(); p < score {
			best, mask, score = cand, id, p
		}
	}
	return best, mask, score
}

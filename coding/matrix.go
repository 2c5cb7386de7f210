// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is the state of one cell of the symbol grid.  Function
// modules (finder, separator, timing, alignment, format and the dark
// module) are reserved when the grid is built and are never touched
// by data placement or masking.
type Module uint8

const (
	Unset     Module = iota // no value assigned yet
	Light                   // data or check bit, light
	Dark                    // data or check bit, dark
	FuncLight               // reserved function module, light
	FuncDark                // reserved function module, dark
)

// IsDark reports whether the module renders dark.
func (m Module) IsDark() bool { return m == Dark || m == FuncDark }

// Reserved reports whether the module belongs to a function pattern.
func (m Module) Reserved() bool { return m == FuncLight || m == FuncDark }

// A Matrix is a square grid of modules.
type Matrix struct {
	Version Version
	Size    int
	cells   []Module
}

// Finder and alignment patterns, one byte per row, leftmost module in
// the highest used bit.
var (
	finder = [7]byte{0x7f, 0x41, 0x5d, 0x5d, 0x5d, 0x41, 0x7f}
	align  = [5]byte{0x1f, 0x11, 0x15, 0x11, 0x1f}
)

// NewMatrix returns a matrix for the given version with all function
// patterns stamped and the format information areas reserved.
func NewMatrix(v Version) (*Matrix, error) {
	if !v.valid() {
		return nil, ErrVersion
	}
	siz := v.Size()
	m := &Matrix{Version: v, Size: siz, cells: make([]Module, siz*siz)}

	// Finder patterns in three corners, with their light separators.
	for _, p := range [3][2]int{{0, 0}, {0, siz - 7}, {siz - 7, 0}} {
		m.stampFinder(p[0], p[1])
	}
	for i := 0; i < 8; i++ {
		m.reserve(i, 7, false)
		m.reserve(7, i, false)
		m.reserve(i, siz-8, false)
		m.reserve(7, siz-1-i, false)
		m.reserve(siz-8, i, false)
		m.reserve(siz-1-i, 7, false)
	}

	// Timing patterns, dark on even coordinates.
	for i := 8; i < siz-8; i++ {
		m.reserve(6, i, i%2 == 0)
		m.reserve(i, 6, i%2 == 0)
	}

	// The dark module above the bottom-left finder.
	m.reserve(siz-8, 8, true)

	// Version 2 carries a single alignment pattern at (18, 18).
	if a := vtab[v].apos; a != 0 {
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				if m.At(a+dr, a+dc) == Unset {
					dark := align[dr+2]>>(2-dc)&1 != 0
					m.reserve(a+dr, a+dc, dark)
				}
			}
		}
	}

	// Reserve the format areas; values are written per mask.
	a, b := fmtPos(siz)
	for _, p := range append(a[:], b[:]...) {
		if m.At(p[0], p[1]) == Unset {
			m.reserve(p[0], p[1], false)
		}
	}
	return m, nil
}

// At returns the module at row r, column c.
func (m *Matrix) At(r, c int) Module { return m.cells[r*m.Size+c] }

// Clone returns a copy of m sharing no state.
func (m *Matrix) Clone() *Matrix {
	n := *m
	n.cells = make([]Module, len(m.cells))
	copy(n.cells, m.cells)
	return &n
}

func (m *Matrix) reserve(r, c int, dark bool) {
	v := FuncLight
	if dark {
		v = FuncDark
	}
	m.cells[r*m.Size+c] = v
}

func (m *Matrix) setData(r, c int, dark bool) {
	v := Light
	if dark {
		v = Dark
	}
	m.cells[r*m.Size+c] = v
}

func (m *Matrix) stampFinder(r0, c0 int) {
	for dr, row := range finder {
		for dc := 0; dc < 7; dc++ {
			m.reserve(r0+dr, c0+dc, row>>(6-dc)&1 != 0)
		}
	}
}

// fmtPos returns the module coordinates of the two copies of the
// format information, each ordered from the most significant bit.
// The first copy wraps around the top-left finder; the second runs
// under the top-right finder and beside the bottom-left one.
func fmtPos(siz int) (a, b [15][2]int) {
	n := 0
	for c := 0; c < 6; c++ {
		a[n] = [2]int{8, c}
		n++
	}
	a[n], a[n+1], a[n+2] = [2]int{8, 7}, [2]int{8, 8}, [2]int{7, 8}
	n += 3
	for r := 5; r >= 0; r-- {
		a[n] = [2]int{r, 8}
		n++
	}
	n = 0
	for i := 0; i < 7; i++ {
		b[n] = [2]int{siz - 1 - i, 8}
		n++
	}
	for i := 0; i < 8; i++ {
		b[n] = [2]int{8, siz - 1 - i}
		n++
	}
	return
}

// setFormat writes the format information for the level and mask into
// the reserved format areas.
func (m *Matrix) setFormat(l Level, mask int) {
	f := ftab[l][mask]
	a, b := fmtPos(m.Size)
	for i := 0; i < 15; i++ {
		dark := f>>(14-i)&1 != 0
		m.reserve(a[i][0], a[i][1], dark)
		m.reserve(b[i][0], b[i][1], dark)
	}
}

// Place fills the unset modules of m with the bits of the data and
// check codewords in zig-zag order: column pairs right to left,
// alternately bottom-up and top-down, skipping the vertical timing
// column.  The version's remainder cells are left light.  Any other
// mismatch between bit supply and grid space is a capacity table
// inconsistency and returns a layout error.
func (m *Matrix) Place(codewords []byte) error {
	s := NewBitStream(codewords)
	siz := m.Size
	unfilled := 0
	up := true
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 { // vertical timing column
			col--
		}
		for i := 0; i < siz; i++ {
			r := i
			if up {
				r = siz - 1 - i
			}
			for _, c := range [2]int{col, col - 1} {
				if m.At(r, c) != Unset {
					continue
				}
				if s.Remaining() > 0 {
					m.setData(r, c, s.Next() != 0)
				} else {
					m.setData(r, c, false)
					unfilled++
				}
			}
		}
		up = !up
	}
	rem := vtab[m.Version].remainder
	switch {
	case unfilled > rem:
		return ErrLayoutOverflow
	case s.Remaining() > 0 || unfilled < rem:
		return ErrLayoutUnderflow
	}
	return nil
}

// Copyright 2022 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"io"
)

// EncodePBM writes c to w as a raw (P4) netpbm bitmap, honouring
// Scale, Border and Reverse.
func (c *Code) EncodePBM(w io.Writer) error {
	scale, border := c.scale(), c.Border
	length := scale * (c.Size + 2*border)
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "P4\n%d %d\n", length, length)
	row := make([]byte, (length+7)/8)
	for y := -border; y < c.Size+border; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := -border; x < c.Size+border; x++ {
			if c.Black(x, y) == c.Reverse {
				continue
			}
			for i := 0; i < scale; i++ {
				bit := (x+border)*scale + i
				row[bit>>3] |= 0x80 >> (bit & 7)
			}
		}
		for i := 0; i < scale; i++ {
			b.Write(row)
		}
	}
	return b.Flush()
}

func (c *Code) scale() int {
	if c.Scale < 1 {
		return 1
	}
	return c.Scale
}

// Copyright 2022 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Text renderers draw one character cell (or half-block row) per
// module and ignore Scale.  EncodeUTF8 and EncodeASCII print light
// modules as ink, which reads correctly on the usual light-on-dark
// terminal; set Reverse for dark-on-light output.

// String renders the code as UTF-8 half blocks, two module rows per
// line.
func (c *Code) String() string {
	var b strings.Builder
	c.EncodeUTF8(&b)
	return b.String()
}

var halfBlock = [4]string{"█", "▀", "▄", " "}

// EncodeUTF8 writes c to w using Unicode half-block characters.
func (c *Code) EncodeUTF8(w io.Writer) error {
	b := bufio.NewWriter(w)
	border := c.Border
	for y := -border; y < c.Size+border; y += 2 {
		for x := -border; x < c.Size+border; x++ {
			n := 0
			if c.Black(x, y) != c.Reverse {
				n += 2
			}
			if c.Black(x, y+1) != c.Reverse {
				n++
			}
			b.WriteString(halfBlock[n])
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// EncodeASCII writes c to w using two characters per module.
func (c *Code) EncodeASCII(w io.Writer) error {
	b := bufio.NewWriter(w)
	border := c.Border
	for y := -border; y < c.Size+border; y++ {
		for x := -border; x < c.Size+border; x++ {
			if c.Black(x, y) == c.Reverse {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// EncodeTerminal writes c to w as full blocks, two characters per
// module, colouring dark and light modules with the given colours.
// A nil dark colour prints plain blocks; a nil light colour prints
// spaces.  Unlike the other text renderers the output is not
// inverted, as the colours name the actual module inks.
func (c *Code) EncodeTerminal(w io.Writer, dark, light *color.Color) error {
	b := bufio.NewWriter(w)
	darkCell, lightCell := "██", "  "
	if dark != nil {
		darkCell = dark.Sprint("██")
	}
	if light != nil {
		lightCell = light.Sprint("██")
	}
	border := c.Border
	for y := -border; y < c.Size+border; y++ {
		for x := -border; x < c.Size+border; x++ {
			if c.Black(x, y) != c.Reverse {
				b.WriteString(darkCell)
			} else {
				b.WriteString(lightCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

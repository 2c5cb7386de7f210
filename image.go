// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image returns an image displaying the code, Scale pixels per module
// with a Border-module quiet zone on each side.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// EncodePNG writes c to w in PNG format.
func (c *Code) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := c.scale() * (c.Size + 2*c.Border)
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}

func (c *codeImage) At(x, y int) color.Color {
	x = x/c.scale() - c.Border
	y = y/c.scale() - c.Border
	if c.Black(x, y) != c.Reverse {
		return blackColor
	}
	return whiteColor
}

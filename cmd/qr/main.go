// Copyright 2022 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr encodes its arguments, or standard input, as a QR code symbol of
// version 1 or 2 and writes the rendered result to a file or standard
// output.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/smallcode/qr"
	"github.com/smallcode/qr/coding"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale    int       // image pixels per module
	border   int       // quiet zone
	rev      bool      // reverse colours
	fn       string    // output filename
	lev      qr.Level  // QR correction level
	ver      int       // QR version, 0 for smallest that fits
	format   int       // output format
	fg, bg   colorName // terminal colours
	explain  bool      // print encoding steps
	byteOnly bool      // byte mode only
	upper    bool      // uppercase input
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator, versions 1-2\nUsage: ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 1.0.0
Copyright (c) 2011 The Go Authors`)
	os.Exit(0)
}

// colorName is a named terminal colour flag for the ansi output type.
type colorName struct {
	name string
	attr color.Attribute
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

func (c *colorName) String() string { return c.name }

func (c *colorName) Set(s string, _ getopt.Option) error {
	name := strings.ToLower(s)
	attr, ok := colorNames[strings.TrimPrefix(name, "bright")]
	if !ok {
		return fmt.Errorf("%q: bad colour name", s)
	}
	if strings.HasPrefix(name, "bright") {
		attr += color.FgHiBlack - color.FgBlack
	}
	*c = colorName{name, attr}
	return nil
}

// colour returns the colour for dark (foreground) or light
// (background) cells, or nil if the flag was not given.
func (c *colorName) colour(bg bool) *color.Color {
	if c.name == "" {
		return nil
	}
	attr := c.attr
	if bg {
		attr += color.BgBlack - color.FgBlack
	}
	return color.New(attr)
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi",
	"utf8", "utf8i", "ascii", "asciii", "ansi", "ansii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	(*qr.Code).EncodeUTF8,
	(*qr.Code).EncodeASCII,
	func(c *qr.Code, w io.Writer) error {
		return c.EncodeTerminal(w, g.fg.colour(false), g.bg.colour(true))
	},
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.fg, "foreground", 'F',
		"dark module colour for type ansi[i]; one of: "+
			"black, red, green, yellow, blue, magenta, cyan, "+
			"white, or any prefixed with bright", "name")
	getopt.FlagLong(&g.bg, "background", 'B', "light module colour; see -F",
		"name")
	getopt.Flag(&g.byteOnly, '8', "encode entire data in byte mode")
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.explain, 'x',
		"explain: print encoding steps to standard error")
	getopt.Flag(&g.border, 'm', "quiet zone modules [4]", "margin")
	fno := getopt.Flag(&g.fn, 'o',
		`output file, or "-" for standard output`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 2},
		"QR code version; default is the smallest that fits", "1|2")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4, &getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28},
		`image pixels per QR module ("pixel"); `+
			`ignored for text output types`, "scale")
	ff := getopt.Enum('t', formats, "", "output format, one of: "+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.ver = int(*ver)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if !getopt.IsSet('m') {
		g.border = 4
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	segs := []coding.Segment{{Text: s, Mode: qr.PickMode(s)}}
	if g.byteOnly {
		segs[0].Mode = coding.Byte
	}
	if g.ver == 0 {
		var err error
		if g.ver, err = qr.FitVersionSegments(g.lev, segs...); err != nil {
			log.Fatalln(err)
		}
	}
	c, err := qr.EncodeTrace(g.ver, g.lev, segs...)
	if err != nil {
		log.Fatalln(err)
	}
	if g.explain {
		for _, st := range c.Steps {
			fmt.Fprintf(os.Stderr, "%s: %s\n", st.Name, st.Detail)
		}
	}
	write(c)
}

func write(c *qr.Code) {
	var w = os.Stdout
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

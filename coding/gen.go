//go:build ignore

// Generates ftab.go, the format information table.  The 15-bit format
// word is the level and mask bits followed by their BCH(15,5)
// remainder, XORed with the fixed masking pattern, so no BCH
// arithmetic is needed at run time.
package main

import (
	"bufio"
	"fmt"
	"os"
)

func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// QR Code format bits, indexed by level and mask.
var ftab = [4][8]uint16{
`)
	for l := 0; l < 4; l++ {
		fmt.Fprintf(w, "\t%c: {", "LMQH"[l])
		for m := 0; m < 8; m++ {
			fb := uint16(l^1) << 13 // L=01, M=00, Q=11, H=10
			fb |= uint16(m) << 10   // mask
			fb = calcFormat(fb) ^ 0x5412
			fmt.Fprintf(w, "%#04x, ", fb)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}

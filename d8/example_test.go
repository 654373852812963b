package d8_test

import (
	"fmt"

	"github.com/katalvlaran/flowpath/d8"
)

// ExampleDecode prints the neighbour offset of every flow code.
func ExampleDecode() {
	for _, c := range d8.Codes() {
		off, _ := d8.Decode(c)
		fmt.Printf("%3d %-10s (%2d,%2d)\n", c, c, off.DRow, off.DCol)
	}
	// Output:
	//   1 east       ( 0, 1)
	//   2 south-east ( 1, 1)
	//   4 south      ( 1, 0)
	//   8 south-west ( 1,-1)
	//  16 west       ( 0,-1)
	//  32 north-west (-1,-1)
	//  64 north      (-1, 0)
	// 128 north-east (-1, 1)
}

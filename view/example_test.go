package view_test

import (
	"fmt"

	"github.com/dacapoday/itext/encoding"
	"github.com/dacapoday/itext/seq"
	"github.com/dacapoday/itext/view"
)

func Example() {
	v := view.New(encoding.UTF8{}, seq.Bytes("héllo\xFF!"), encoding.Stateless{})
	for r := range v.All() {
		fmt.Printf("%c", r)
	}
	fmt.Println()

	runes, err := v.Runes()
	fmt.Println(len(runes), err)

	// Output:
	// héllo!
	// 6 invalid code unit sequence: FF
}

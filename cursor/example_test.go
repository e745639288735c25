package cursor_test

import (
	"fmt"

	"github.com/dacapoday/itext/cursor"
	"github.com/dacapoday/itext/encoding"
	"github.com/dacapoday/itext/seq"
)

func Example() {
	s := seq.Bytes("héllo")
	for c := cursor.NewForward(encoding.UTF8{}, s, encoding.Stateless{}, 0); c.Valid(); c.Next() {
		fmt.Printf("%d %c\n", c.Pos(), c.Rune())
	}

	// Output:
	// 0 h
	// 1 é
	// 3 l
	// 4 l
	// 5 o
}

func ExampleOpen() {
	s := seq.Bytes("a€z")
	c := cursor.Open(encoding.UTF8{}, s, encoding.Stateless{}, 0)
	fmt.Println(c.Tier())

	if ra, ok := c.(*cursor.RandomAccess[encoding.Stateless, byte, int]); ok {
		ra.Next()
		ra.Next()
		ra.Advance(-1)
		fmt.Printf("%c at %d\n", ra.Rune(), ra.Pos())
	}

	// Output:
	// random-access
	// € at 1
}

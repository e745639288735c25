package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dacapoday/itext"
	"github.com/dacapoday/itext/cursor"
)

// key is a decoded keystroke of the browser.
type key int

const (
	keyNone key = iota
	keyQuit
	keyDown
	keyUp
	keyPageDown
	keyPageUp
	keyFirst
	keyLast
	keyJump
)

var keys = map[byte]key{
	'q': keyQuit, 3: keyQuit,
	'j': keyDown, 'k': keyUp,
	' ': keyPageDown, 'b': keyPageUp,
	'g': keyFirst, 'G': keyLast,
	'/': keyJump,
}

// readKey reads one keystroke. A lone Esc quits; the cursor and page keys
// arrive as CSI sequences.
func readKey(r *bufio.Reader) (key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return keyQuit, err
	}
	if b != 27 {
		return keys[b], nil
	}
	if r.Buffered() == 0 {
		return keyQuit, nil
	}
	if b, _ = r.ReadByte(); b != '[' {
		return keyNone, nil
	}
	b, _ = r.ReadByte()
	switch b {
	case 'A':
		return keyUp, nil
	case 'B':
		return keyDown, nil
	case 'H':
		return keyFirst, nil
	case 'F':
		return keyLast, nil
	case '5', '6':
		r.ReadByte() // trailing '~'
		if b == '5' {
			return keyPageUp, nil
		}
		return keyPageDown, nil
	}
	return keyNone, nil
}

func browse[S any, U itext.Unit, P comparable](src source[S, U, P], cfg config) error {
	fd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, saved)

	v := &viewer[S, U, P]{src: src, filename: cfg.filename}
	v.first()
	v.updateSize()
	v.load()

	fmt.Print("\033[?25l\033[2J")
	defer fmt.Print("\033[?25h\033[2J\033[H")

	in := bufio.NewReader(os.Stdin)
	for {
		if v.updateSize() {
			v.load()
		}
		v.render()

		k, err := readKey(in)
		if err != nil || k == keyQuit {
			return nil
		}
		v.status = ""
		switch k {
		case keyDown:
			v.down()
		case keyUp:
			v.up()
		case keyPageDown:
			v.pageDown()
		case keyPageUp:
			v.pageUp()
		case keyFirst:
			v.first()
			v.load()
		case keyLast:
			v.last()
			v.load()
		case keyJump:
			v.jump(in)
		}
	}
}

type viewer[S any, U itext.Unit, P comparable] struct {
	src      source[S, U, P]
	filename string
	top      cursor.Cursor[P] // first visible code point
	index    int              // code point index of top, forward tier only
	items    []string
	width    int
	height   int
	atStart  bool // no code point before top
	atEnd    bool // no code point after the last item
	status   string
}

// updateSize checks terminal size and returns true if changed.
func (v *viewer[S, U, P]) updateSize() bool {
	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		w, h = 80, 24
	}
	if w == v.width && h == v.height {
		return false
	}
	v.width, v.height = w, h
	return true
}

func (v *viewer[S, U, P]) lines() int {
	return v.height - 4 // title + separator + separator + status
}

func (v *viewer[S, U, P]) load() {
	v.items = v.items[:0]
	v.atEnd = false

	c := v.src.clone(v.top)
	for i := 0; i < v.lines() && c.Valid(); i++ {
		v.items = append(v.items, v.src.line(c))
		if !c.Next() {
			v.atEnd = true
		}
	}
	if !c.Valid() {
		v.atEnd = true
	}

	if _, ok := v.top.(backward); ok {
		v.atStart = !v.src.clone(v.top).(backward).Prev()
	} else {
		v.atStart = v.index == 0
	}
	if err := v.top.Err(); err != nil && v.status == "" {
		v.status = err.Error()
	}
}

func (v *viewer[S, U, P]) down() {
	if len(v.items) <= 1 {
		return
	}
	c := v.src.clone(v.top)
	if c.Next() {
		v.top = c
		v.index++
		v.load()
	}
}

func (v *viewer[S, U, P]) up() {
	if v.atStart {
		return
	}
	if _, ok := v.top.(backward); ok {
		c := v.src.clone(v.top)
		if c.(backward).Prev() {
			v.top = c
			v.load()
		}
		return
	}
	v.skip(v.index - 1)
	v.load()
}

func (v *viewer[S, U, P]) pageDown() {
	for i := 0; i < v.lines()-1; i++ {
		v.down()
	}
}

func (v *viewer[S, U, P]) pageUp() {
	for i := 0; i < v.lines()-1; i++ {
		v.up()
	}
}

func (v *viewer[S, U, P]) first() {
	v.top = v.src.view.Begin()
	v.index = 0
}

func (v *viewer[S, U, P]) last() {
	c := v.src.view.From(v.src.seq.End()).Begin()
	if _, ok := c.(backward); !ok {
		// walk to count, then back up to show a full screen
		total := 0
		for c := v.src.view.Begin(); c.Valid(); c.Next() {
			total++
		}
		v.skip(total - v.lines())
		return
	}
	for i := 0; i < v.lines(); i++ {
		prev := v.src.clone(c)
		if !prev.(backward).Prev() {
			break
		}
		c = prev
	}
	if !c.Valid() {
		v.first()
		return
	}
	v.top = c
}

// skip moves top to the n-th code point, decoding from the beginning so
// the decode state is correct.
func (v *viewer[S, U, P]) skip(n int) {
	v.first()
	for v.index < n {
		c := v.src.clone(v.top)
		if !c.Next() {
			return
		}
		v.top = c
		v.index++
	}
}

func (v *viewer[S, U, P]) jump(reader *bufio.Reader) {
	input := v.prompt(reader)
	if input == "" {
		return
	}
	off, err := strconv.ParseInt(input, 0, 64)
	if err != nil {
		v.status = "bad offset: " + input
		return
	}

	if _, ok := v.top.(backward); ok {
		c := v.src.view.From(v.src.seek(off)).Begin()
		if !c.Valid() {
			v.status = "nothing at offset " + input
			return
		}
		v.top = c
	} else {
		// state depends on everything before, decode from the beginning
		v.first()
		for v.top.Valid() && v.src.offset(v.top.Pos()) < off {
			c := v.src.clone(v.top)
			if !c.Next() {
				break
			}
			v.top = c
			v.index++
		}
	}
	v.load()
	v.status = fmt.Sprintf("jumped to: %d", v.src.offset(v.top.Pos()))
}

// prompt reads an offset on the bottom line. Esc or Ctrl+C cancels.
func (v *viewer[S, U, P]) prompt(in *bufio.Reader) string {
	fmt.Printf("\033[?25h\033[%d;1H\033[K/", v.height)
	defer fmt.Print("\033[?25l")

	var line []byte
	for {
		b, err := in.ReadByte()
		switch {
		case err != nil, b == '\r', b == '\n':
			return strings.TrimSpace(string(line))
		case b == 27, b == 3:
			return ""
		case b == 127, b == '\b':
			if n := len(line); n > 0 {
				line = line[:n-1]
				fmt.Print("\b \b")
			}
		case b >= ' ' && b < 127:
			line = append(line, b)
			fmt.Printf("%c", b)
		}
	}
}

// edge marks the ends of the file that are on screen.
func (v *viewer[S, U, P]) edge() string {
	switch {
	case v.atStart && v.atEnd:
		return "[all]"
	case v.atStart:
		return "[top]"
	case v.atEnd:
		return "[end]"
	}
	return ""
}

func (v *viewer[S, U, P]) render() {
	const eol = "\033[K\r\n"
	rule := strings.Repeat("─", v.width) + eol

	var b strings.Builder
	b.WriteString("\033[H")
	fmt.Fprintf(&b, "[ tview ] %s (%s, %s)%s", v.filename, v.src.name, v.top.Tier(), eol)
	b.WriteString(rule)
	for i := range v.lines() {
		line := "~"
		if i < len(v.items) {
			line = v.items[i]
		}
		b.WriteString(line + eol)
	}
	b.WriteString(rule)

	status := v.status
	if status == "" {
		status = "j/k:scroll space/b:page g/G:ends /:offset q:quit"
	}
	fmt.Fprintf(&b, " %s %s\033[K", status, v.edge())
	fmt.Print(b.String())
}

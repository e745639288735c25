package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dacapoday/itext"
	"github.com/dacapoday/itext/cursor"
	"github.com/dacapoday/itext/seq"
	"github.com/dacapoday/itext/view"
)

// source is a decoded file together with the unit offsets of its
// positions.
type source[S any, U itext.Unit, P comparable] struct {
	name   string
	view   view.View[S, U, P]
	seq    itext.Forward[U, P]
	offset func(P) int64
	seek   func(int64) P
}

func newUnitsSource[S any, U itext.Unit](name string, units seq.Units[U], v view.View[S, U, int]) source[S, U, int] {
	return source[S, U, int]{
		name: name,
		view: v,
		seq:  units,
		offset: func(p int) int64 {
			return int64(p)
		},
		seek: func(off int64) int {
			return units.Jump(0, int(min(off, int64(len(units)))))
		},
	}
}

func newBufferSource[S any](name string, segs seq.Segments, v view.View[S, byte, seq.Pos]) source[S, byte, seq.Pos] {
	return source[S, byte, seq.Pos]{
		name:   name,
		view:   v,
		seq:    segs,
		offset: segs.Offset,
		seek:   segs.Seek,
	}
}

// backward is implemented by cursors of the bidirectional tier and up.
type backward interface {
	Prev() bool
}

// spanned is implemented by cursors of the forward tier and up.
type spanned[P comparable] interface {
	Span() cursor.Span[P]
}

func exec[S any, U itext.Unit, P comparable](src source[S, U, P], cfg config) error {
	cfg.log.Debug("decoding", zap.Stringer("tier", src.view.Tier()))
	if cfg.list {
		return list(os.Stdout, src, cfg)
	}
	if cfg.reverse {
		return errors.New("-r needs -l")
	}
	return browse(src, cfg)
}

func list[S any, U itext.Unit, P comparable](w io.Writer, src source[S, U, P], cfg config) error {
	var c cursor.Cursor[P]
	var step func() bool
	if cfg.reverse {
		c = src.view.From(src.seq.End()).Begin()
		back, ok := c.(backward)
		if !ok {
			return fmt.Errorf("%w: %s cannot be listed in reverse", itext.ErrUnsupported, src.name)
		}
		step = back.Prev
		step()
	} else {
		c = src.view.Begin()
		step = c.Next
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(bw, "[ tview ] %s (%s, %s)\n", cfg.filename, src.name, c.Tier())
	}

	n := 0
	for ; c.Valid(); step() {
		if cfg.count > 0 && n >= cfg.count {
			break
		}
		src.report(c, cfg.log)
		bw.WriteString(src.line(c))
		bw.WriteByte('\n')
		n++
	}
	src.report(c, cfg.log)
	return nil
}

func (src source[S, U, P]) report(c cursor.Cursor[P], log *zap.Logger) {
	if err := c.Err(); err != nil {
		log.Debug("skipped malformed input",
			zap.Int64("offset", src.offset(c.Pos())),
			zap.Error(err),
		)
	}
}

// line formats the current code point as offset, units, code point and
// glyph.
func (src source[S, U, P]) line(c cursor.Cursor[P]) string {
	sp := cursor.Span[P]{First: c.Pos(), Last: c.Pos()}
	if s, ok := c.(spanned[P]); ok {
		sp = s.Span()
	}
	r := c.Rune()
	return fmt.Sprintf("%8d  %-17s U+%04X  %s", src.offset(sp.First), hexUnits(src.seq, sp), r, glyph(r))
}

func hexUnits[U itext.Unit, P comparable](s itext.Sequence[U, P], sp cursor.Span[P]) string {
	var u U
	width := binary.Size(u) * 2
	var b strings.Builder
	for p := sp.First; p != sp.Last; {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		u, p = s.Step(p)
		fmt.Fprintf(&b, "%0*X", width, uint64(u))
	}
	return b.String()
}

func glyph(r rune) string {
	if unicode.IsPrint(r) {
		return string(r)
	}
	return strconv.QuoteRune(r)
}

// clone copies c whatever its tier.
func (src source[S, U, P]) clone(c cursor.Cursor[P]) cursor.Cursor[P] {
	switch c := c.(type) {
	case *cursor.RandomAccess[S, U, P]:
		return c.Clone()
	case *cursor.Bidirectional[S, U, P]:
		return c.Clone()
	case *cursor.Forward[S, U, P]:
		return c.Clone()
	case *cursor.Input[S, U, P]:
		return c.Clone()
	}
	panic(fmt.Sprintf("tview: unknown cursor %T", c))
}

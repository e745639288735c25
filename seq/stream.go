// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dacapoday/itext"
)

// StreamWindow is how many units behind the read frontier a Stream can
// still replay. A decode step may back up at most this far.
const StreamWindow = 16

// StreamEnd is the end position of every Stream.
const StreamEnd int64 = -1

// Stream is a single-pass sequence over an io.Reader.
//
// Positions count units read from the start of the reader. Stepping at the
// read frontier consumes input; stepping at a position inside the replay
// window returns the unit again, so decode steps can unread. A read error
// ends the stream and is reported by Err.
type Stream[U itext.Unit] struct {
	r     *bufio.Reader
	order binary.ByteOrder
	size  int
	off   int64
	ring  [StreamWindow]U
	buf   [8]byte
	err   error
}

var _ itext.Sequence[byte, int64] = (*Stream[byte])(nil)

// NewStream reads units of type U from r, decoding multi-byte units with
// order. order may be nil for byte streams.
func NewStream[U itext.Unit](r io.Reader, order binary.ByteOrder) *Stream[U] {
	size := unitSize[U]()
	if size <= 0 || size > 8 || (size > 1 && order == nil) {
		panic(fmt.Errorf("seq.NewStream: %w unit size %d", ErrUnsupported, size))
	}
	return &Stream[U]{
		r:     bufio.NewReader(r),
		order: order,
		size:  size,
	}
}

// Pos returns the read frontier, or StreamEnd when no unit is left.
func (s *Stream[U]) Pos() int64 {
	if !s.more() {
		return StreamEnd
	}
	return s.off
}

// Err returns the read error that ended the stream, if any.
func (s *Stream[U]) Err() error {
	return s.err
}

func (s *Stream[U]) End() int64 {
	return StreamEnd
}

// Normalize returns StreamEnd for the read frontier once no unit is left
// there, and p otherwise. A position taken before the reader ran dry, such
// as 0 on an empty stream, is the end in disguise.
func (s *Stream[U]) Normalize(p int64) int64 {
	if p == s.off && !s.more() {
		return StreamEnd
	}
	return p
}

// Step returns the unit at p. It panics with ErrStaleStream when p is
// older than the replay window, and with ErrPastEnd when p is the frontier
// of an exhausted stream.
func (s *Stream[U]) Step(p int64) (u U, next int64) {
	switch {
	case p == s.off:
		u = s.read()
	case p < s.off && p >= s.off-StreamWindow && p >= 0:
		u = s.ring[p%StreamWindow]
	default:
		panic(fmt.Errorf("seq.Stream.Step: %w: %d (frontier %d)", ErrStaleStream, p, s.off))
	}
	next = p + 1
	if next == s.off && !s.more() {
		next = StreamEnd
	}
	return
}

func (s *Stream[U]) read() (u U) {
	b := s.buf[:s.size]
	if _, err := io.ReadFull(s.r, b); err != nil {
		panic(fmt.Errorf("seq.Stream.Step: %w: %d", ErrPastEnd, s.off))
	}
	u = decodeUnit[U](b, s.order)
	s.ring[s.off%StreamWindow] = u
	s.off++
	return
}

// more reports whether a whole unit is available at the frontier.
func (s *Stream[U]) more() bool {
	if s.err != nil {
		return false
	}
	b, err := s.r.Peek(s.size)
	if len(b) == s.size {
		return true
	}
	if err == io.EOF && len(b) > 0 {
		err = io.ErrUnexpectedEOF
	}
	if err != io.EOF {
		s.err = err
	}
	return false
}

// Read loads every unit from r into a slice.
// A trailing partial unit is dropped and reported as io.ErrUnexpectedEOF.
func Read[U itext.Unit](r io.Reader, order binary.ByteOrder) (Units[U], error) {
	size := unitSize[U]()
	if size <= 0 || size > 8 || (size > 1 && order == nil) {
		return nil, fmt.Errorf("seq.Read: %w unit size %d", ErrUnsupported, size)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	units := make(Units[U], len(data)/size)
	for i := range units {
		units[i] = decodeUnit[U](data[i*size:(i+1)*size], order)
	}
	if len(data)%size != 0 {
		return units, io.ErrUnexpectedEOF
	}
	return units, nil
}

func unitSize[U itext.Unit]() int {
	var u U
	return binary.Size(u)
}

func decodeUnit[U itext.Unit](b []byte, order binary.ByteOrder) U {
	switch len(b) {
	case 1:
		return U(b[0])
	case 2:
		return U(order.Uint16(b))
	case 4:
		return U(order.Uint32(b))
	default:
		return U(order.Uint64(b))
	}
}

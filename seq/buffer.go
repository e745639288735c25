// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"io"
	"sort"
	"sync"

	"github.com/dacapoday/itext"
)

// Buffer is an in-memory byte store made of fixed-size segments.
// It is safe for concurrent use by multiple goroutines.
//
// Buffer requires no initialization - just declare and use:
//
//	var b Buffer
//	b.ReadFrom(file)
//	segs := b.Segments()
type Buffer struct {
	rw       sync.RWMutex
	segments Segments
}

const segmentSize = 32 * 1024

// Reset discards all data. The Segments returned earlier stay readable.
func (buf *Buffer) Reset() {
	buf.rw.Lock()
	buf.segments = nil
	buf.rw.Unlock()
}

// Size returns the number of bytes stored.
func (buf *Buffer) Size() int64 {
	buf.rw.RLock()
	defer buf.rw.RUnlock()
	return buf.segments.size()
}

// ReadFrom appends data read from r until EOF.
// It implements io.ReaderFrom interface.
//
// ReadFrom returns the number of bytes read and any error encountered,
// except that io.EOF is not returned as an error.
func (buf *Buffer) ReadFrom(r io.Reader) (n int64, err error) {
	buf.rw.Lock()
	defer buf.rw.Unlock()
	size := buf.segments.size()
	for {
		seg := make([]byte, segmentSize)
		c, err := io.ReadFull(r, seg)
		if c > 0 {
			n += int64(c)
			buf.segments = append(buf.segments, segment{
				seg: seg[:c],
				off: size + n,
			})
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				err = nil
			}
			return n, err
		}
	}
}

// Write appends a copy of p as a new segment.
// It implements io.Writer interface.
func (buf *Buffer) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	seg := append([]byte(nil), p...)
	buf.rw.Lock()
	buf.segments = append(buf.segments, segment{
		seg: seg,
		off: buf.segments.size() + int64(len(seg)),
	})
	buf.rw.Unlock()
	return len(p), nil
}

// Segments returns an immutable snapshot of the stored bytes.
// Later writes to the Buffer are not visible through it.
func (buf *Buffer) Segments() Segments {
	buf.rw.RLock()
	defer buf.rw.RUnlock()
	return buf.segments[:len(buf.segments):len(buf.segments)]
}

// Segments is a bidirectional byte sequence spread over several slices.
// No segment is empty.
type Segments []segment

type segment = struct {
	seg []byte // data
	off int64  // cumulative offset (end position of this segment)
}

// Pos addresses a byte of Segments. The end position is {len(segments), 0}.
type Pos struct {
	Seg int
	Idx int
}

var _ itext.Bidirectional[byte, Pos] = Segments(nil)

func (s Segments) size() int64 {
	l := len(s)
	if l == 0 {
		return 0
	}
	return s[l-1].off
}

// Size returns the number of bytes in s.
func (s Segments) Size() int64 {
	return s.size()
}

func (s Segments) Begin() Pos { return Pos{} }
func (s Segments) End() Pos   { return Pos{Seg: len(s)} }

func (s Segments) Step(p Pos) (byte, Pos) {
	seg := s[p.Seg].seg
	b := seg[p.Idx]
	if p.Idx++; p.Idx == len(seg) {
		p.Seg++
		p.Idx = 0
	}
	return b, p
}

func (s Segments) StepBack(p Pos) (byte, Pos) {
	if p.Idx == 0 {
		p.Seg--
		p.Idx = len(s[p.Seg].seg)
	}
	p.Idx--
	return s[p.Seg].seg[p.Idx], p
}

// Offset converts p to a byte offset.
func (s Segments) Offset(p Pos) int64 {
	if p.Seg == 0 {
		return int64(p.Idx)
	}
	return s[p.Seg-1].off + int64(p.Idx)
}

// Seek converts a byte offset to a position, clamped to [Begin, End].
func (s Segments) Seek(off int64) Pos {
	if off <= 0 {
		return Pos{}
	}
	idx := sort.Search(len(s), func(i int) bool {
		return s[i].off > off
	})
	if idx == len(s) {
		return s.End()
	}
	if idx == 0 {
		return Pos{Idx: int(off)}
	}
	return Pos{Seg: idx, Idx: int(off - s[idx-1].off)}
}

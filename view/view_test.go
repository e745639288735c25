package view_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dacapoday/itext"
	"github.com/dacapoday/itext/encoding"
	"github.com/dacapoday/itext/seq"
	"github.com/dacapoday/itext/view"
)

func TestAll(t *testing.T) {
	v := view.New(encoding.UTF8{}, seq.Bytes("héllo"), encoding.Stateless{})
	require.Equal(t, itext.TierRandomAccess, v.Tier())

	var got []rune
	for r := range v.All() {
		got = append(got, r)
	}
	require.Equal(t, "héllo", string(got))

	got = got[:0]
	for r := range v.All() {
		if r == 'l' {
			break
		}
		got = append(got, r)
	}
	require.Equal(t, "hé", string(got))
}

func TestRunes(t *testing.T) {
	v := view.New(encoding.UTF8{}, seq.Bytes("a\xFFb\xC3"), encoding.Stateless{})
	runes, err := v.Runes()
	require.Equal(t, "ab", string(runes))
	require.ErrorIs(t, err, itext.ErrInvalid)
	require.ErrorIs(t, err, itext.ErrIncomplete)
	require.Equal(t, "ab", v.String())

	runes, err = view.New(encoding.UTF8{}, seq.Bytes("ok"), encoding.Stateless{}).Runes()
	require.NoError(t, err)
	require.Equal(t, "ok", string(runes))
}

func TestFrom(t *testing.T) {
	v := view.New(encoding.ASCII{}, seq.Bytes("abcd"), encoding.Stateless{})
	require.Equal(t, "cd", v.From(2).String())
	require.Equal(t, "abcd", v.String())

	c := v.From(1).Begin()
	require.Equal(t, 'b', c.Rune())
	require.Equal(t, 4, v.End().End())
}

func TestBackward(t *testing.T) {
	v := view.New(encoding.UTF8{}, seq.Bytes("aé€"), encoding.Stateless{})
	all, err := v.Backward()
	require.NoError(t, err)

	var got []rune
	for r := range all {
		got = append(got, r)
	}
	require.Equal(t, "€éa", string(got))

	var buf seq.Buffer
	buf.Write([]byte("x\xC3"))
	buf.Write([]byte("\xA9y"))
	b := view.New(encoding.UTF8{}, buf.Segments(), encoding.Stateless{})
	require.Equal(t, itext.TierBidirectional, b.Tier())
	require.Equal(t, "xéy", b.String())
	all, err = b.Backward()
	require.NoError(t, err)
	got = got[:0]
	for r := range all {
		got = append(got, r)
	}
	require.Equal(t, "yéx", string(got))
}

func TestBackwardUnsupported(t *testing.T) {
	_, err := view.New(encoding.ISO2022JP{}, seq.Bytes("abc"), encoding.ISO2022JPState{}).Backward()
	require.ErrorIs(t, err, itext.ErrUnsupported)

	_, err = view.New(encoding.UTF8{}, seq.ForwardOnly(seq.Bytes("abc")), encoding.Stateless{}).Backward()
	require.ErrorIs(t, err, itext.ErrUnsupported)
}

func TestStream(t *testing.T) {
	le := []byte{'a', 0, 0x3D, 0xD8, 0x00, 0xDE}
	s := seq.NewStream[uint16](bytes.NewReader(le), binary.LittleEndian)
	v := view.New(encoding.UTF16{}, s, encoding.Stateless{})
	require.Equal(t, itext.TierInput, v.Tier())
	require.Equal(t, "a😀", v.String())

	// the stream is consumed
	require.Equal(t, "", v.String())
}

func TestStreamResumes(t *testing.T) {
	s := seq.NewStream[byte](strings.NewReader("abc"), nil)
	c := view.New(encoding.UTF8{}, s, encoding.Stateless{}).Begin()
	require.Equal(t, 'a', c.Rune())

	// a new view picks up where the stream is
	require.Equal(t, "bc", view.New(encoding.UTF8{}, s, encoding.Stateless{}).String())
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	v := view.New(encoding.UTF8{}, seq.Bytes("a\xFFb\x80"), encoding.Stateless{},
		view.WithLogger(zap.New(core)))

	var got []rune
	for r := range v.All() {
		got = append(got, r)
	}
	require.Equal(t, "ab", string(got))

	entries := logs.FilterMessage("skipped malformed input").All()
	require.Len(t, entries, 2)
	require.Equal(t, "random-access", entries[0].ContextMap()["tier"])
	require.Contains(t, entries[0].ContextMap(), "pos")
	require.Contains(t, entries[1].ContextMap()["error"], "invalid")

	// a nil logger keeps the default
	v = view.New(encoding.UTF8{}, seq.Bytes("\xFF"), encoding.Stateless{}, view.WithLogger(nil))
	require.Equal(t, "", v.String())
}

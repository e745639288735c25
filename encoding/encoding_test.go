package encoding_test

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/dacapoday/itext"
	"github.com/dacapoday/itext/cursor"
	"github.com/dacapoday/itext/encoding"
	"github.com/dacapoday/itext/seq"
)

// forward decodes units front to back and collects every skipped error.
func forward[S any, U itext.Unit](dec itext.Decoder[S, U], state S, units []U) (string, []error) {
	var out []rune
	var errs []error
	c := cursor.NewForward(dec, seq.Units[U](units), state, 0)
	for ; c.Valid(); c.Next() {
		if err := c.Err(); err != nil {
			errs = append(errs, err)
		}
		out = append(out, c.Rune())
	}
	if err := c.Err(); err != nil {
		errs = append(errs, err)
	}
	return string(out), errs
}

// backward decodes units back to front, returning runes in reading order.
func backward[S any, U itext.Unit](dec itext.ReverseDecoder[S, U], state S, units []U) (string, []error) {
	var out []rune
	var errs []error
	s := seq.Units[U](units)
	c := cursor.NewBidirectional(dec, s, state, s.End())
	for c.Prev() {
		if err := c.Err(); err != nil {
			errs = append(errs, err)
		}
		out = append([]rune{c.Rune()}, out...)
	}
	if err := c.Err(); err != nil {
		errs = append(errs, err)
	}
	return string(out), errs
}

func TestUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errs  []error
	}{
		{"empty", "", "", nil},
		{"ascii", "hello", "hello", nil},
		{"mixed", "aé€😀", "aé€😀", nil},
		{"stray continuation", "a\x80b", "ab", []error{encoding.ErrInvalid}},
		{"invalid byte", "\xFFa", "a", []error{encoding.ErrInvalid}},
		{"truncated at end", "a\xE2\x82", "a", []error{encoding.ErrIncomplete}},
		{"truncated before ascii", "\xE2\x82a", "a", []error{encoding.ErrInvalid}},
		{"overlong", "\xC0\xAFz", "z", []error{encoding.ErrInvalid}},
		{"surrogate", "\xED\xA0\x80z", "z", []error{encoding.ErrInvalid}},
		{"above max", "\xF4\x90\x80\x80z", "z", []error{encoding.ErrInvalid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := forward(encoding.UTF8{}, encoding.Stateless{}, []byte(tt.input))
			require.Equal(t, tt.want, got)
			requireErrors(t, tt.errs, errs)
		})
	}
}

func TestUTF8MaximalSubpart(t *testing.T) {
	// E2 82 is a valid prefix of U+20AC and is skipped as one unit run
	c := cursor.NewForward(encoding.UTF8{}, seq.Bytes("\xE2\x82a"), encoding.Stateless{}, 0)
	require.Equal(t, 'a', c.Rune())
	require.Equal(t, cursor.Span[int]{First: 2, Last: 3}, c.Span())

	// F0 80 breaks at the second byte, which is skipped on its own
	s := seq.Bytes("\xF0\x80a")
	c = cursor.NewForward(encoding.UTF8{}, s, encoding.Stateless{}, 0)
	require.Equal(t, 'a', c.Rune())
	require.Equal(t, 2, c.Pos())
}

func TestUTF8Backward(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errs  int
	}{
		{"mixed", "aé€😀", "aé€😀", 0},
		{"stray continuation", "a\x80b", "ab", 1},
		{"continuation after rune", "é\x80", "é", 1},
		{"lone lead", "a\xC3", "a", 1},
		{"too many continuations", "\xF0\x9F\x98\x80\x80", "😀", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := backward(encoding.UTF8{}, encoding.Stateless{}, []byte(tt.input))
			require.Equal(t, tt.want, got)
			require.Len(t, errs, tt.errs)
			for _, err := range errs {
				require.ErrorIs(t, err, encoding.ErrInvalid)
			}
		})
	}
}

func TestASCII(t *testing.T) {
	got, errs := forward(encoding.ASCII{}, encoding.Stateless{}, []byte("a\x80b"))
	require.Equal(t, "ab", got)
	requireErrors(t, []error{encoding.ErrInvalid}, errs)

	got, errs = backward(encoding.ASCII{}, encoding.Stateless{}, []byte("a\xFFb"))
	require.Equal(t, "ab", got)
	requireErrors(t, []error{encoding.ErrInvalid}, errs)
}

func TestUTF16(t *testing.T) {
	const (
		high = 0xD83D
		low  = 0xDE00
	)
	tests := []struct {
		name  string
		input []uint16
		want  string
		errs  []error
	}{
		{"bmp and pair", utf16.Encode([]rune("a€😀")), "a€😀", nil},
		{"lone high", []uint16{high, 'a'}, "a", []error{encoding.ErrInvalid}},
		{"lone low", []uint16{low, 'b'}, "b", []error{encoding.ErrInvalid}},
		{"high at end", []uint16{'a', high}, "a", []error{encoding.ErrIncomplete}},
		{"reversed pair", []uint16{low, high, 'c'}, "c", []error{encoding.ErrInvalid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := forward(encoding.UTF16{}, encoding.Stateless{}, tt.input)
			require.Equal(t, tt.want, got)
			requireErrors(t, tt.errs, errs)
		})
	}
}

func TestUTF16Backward(t *testing.T) {
	got, errs := backward(encoding.UTF16{}, encoding.Stateless{}, utf16.Encode([]rune("a€😀")))
	require.Equal(t, "a€😀", got)
	require.Empty(t, errs)

	got, errs = backward(encoding.UTF16{}, encoding.Stateless{}, []uint16{'a', 0xD83D, 'b', 0xDE00})
	require.Equal(t, "ab", got)
	require.Len(t, errs, 2)
}

func TestUTF32(t *testing.T) {
	input := []uint32{'a', 0xD800, 0x110000, 0x1F600}
	got, errs := forward(encoding.UTF32{}, encoding.Stateless{}, input)
	require.Equal(t, "a😀", got)
	require.Len(t, errs, 1) // errors of one step collapse into the last
	require.ErrorIs(t, errs[0], encoding.ErrInvalid)

	got, _ = backward(encoding.UTF32{}, encoding.Stateless{}, input)
	require.Equal(t, "a😀", got)
}

func TestCharmap(t *testing.T) {
	tests := []struct {
		cm    *charmap.Charmap
		input []byte
		want  string
		errs  int
	}{
		{charmap.Windows1252, []byte{0x80, 'x', 0xE9}, "€xé", 0},
		{charmap.KOI8R, []byte{0xC1, 0xC2}, "аб", 0},
		{charmap.ISO8859_3, []byte{'a', 0xA5, 'b'}, "ab", 1},
	}
	for _, tt := range tests {
		t.Run(tt.cm.String(), func(t *testing.T) {
			dec := encoding.NewCharmap(tt.cm)
			got, errs := forward(dec, encoding.Stateless{}, tt.input)
			require.Equal(t, tt.want, got)
			require.Len(t, errs, tt.errs)

			got, _ = backward(dec, encoding.Stateless{}, tt.input)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestISO2022JP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errs  []error
	}{
		{"ascii", "plain", "plain", nil},
		{"jis x 0208", "a\x1b$B\x30\x21\x30\x22\x1b(Bb", "a亜唖b", nil},
		{"old jis", "\x1b$@\x30\x21", "亜", nil},
		{"roman", "\x1b(J\x5c\x7e", "¥‾", nil},
		{"katakana", "\x1b(I\x31\x1b(B!", "ｱ!", nil},
		{"controls pass through", "\x1b$B\n\x30\x21", "\n亜", nil},
		{"unknown escape", "\x1b(Zx", "(Zx", []error{encoding.ErrInvalid}},
		{"escape at end", "a\x1b(", "a", []error{encoding.ErrIncomplete}},
		{"lead at end", "\x1b$B\x30", "", []error{encoding.ErrIncomplete}},
		{"unmapped", "\x1b$B\x2F\x21\x1b(Ba", "a", []error{encoding.ErrInvalid}},
		{"eight bit", "\xA4a", "a", []error{encoding.ErrInvalid}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := forward(encoding.ISO2022JP{}, encoding.ISO2022JPState{}, []byte(tt.input))
			require.Equal(t, tt.want, got)
			requireErrors(t, tt.errs, errs)
		})
	}
}

func TestISO2022JPState(t *testing.T) {
	var state encoding.ISO2022JPState
	c := cursor.NewForward(encoding.ISO2022JP{}, seq.Bytes("\x1b(I\x31"), state, 0)
	require.Equal(t, 'ｱ', c.Rune())
	require.Equal(t, encoding.CharsetKatakana, c.State().Set)
	require.Equal(t, encoding.CharsetASCII, state.Set)

	// starting in a shifted state
	c = cursor.NewForward(encoding.ISO2022JP{}, seq.Bytes("\x30\x21"), encoding.ISO2022JPState{Set: encoding.CharsetJIS0208}, 0)
	require.Equal(t, '亜', c.Rune())
}

// units is a minimal itext.Reader over a byte slice.
type units struct {
	b   []byte
	pos int
}

func (u *units) ReadUnit() (byte, bool) {
	if u.pos == len(u.b) {
		return 0, false
	}
	u.pos++
	return u.b[u.pos-1], true
}

func (u *units) UnreadUnit() { u.pos-- }

func TestISO2022JPNoAllocs(t *testing.T) {
	in := &units{b: []byte{0x30, 0x21}}
	state := &encoding.ISO2022JPState{Set: encoding.CharsetJIS0208}
	var dec encoding.ISO2022JP
	allocs := testing.AllocsPerRun(100, func() {
		in.pos = 0
		if r, n, err := dec.Decode(state, in); r != '亜' || n != 2 || err != nil {
			t.Fatalf("got %q %d %v", r, n, err)
		}
	})
	require.Zero(t, allocs)
}

func requireErrors(t *testing.T, want, got []error) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.ErrorIs(t, got[i], want[i])
	}
}

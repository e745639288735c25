package itext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/itext"
	"github.com/dacapoday/itext/encoding"
	"github.com/dacapoday/itext/seq"
)

func TestClassify(t *testing.T) {
	s := seq.Bytes("abc")
	var buf seq.Buffer
	buf.Write([]byte("abc"))
	stream := seq.NewStream[byte](strings.NewReader("abc"), nil)

	tests := []struct {
		name string
		tier itext.Tier
		got  itext.Tier
	}{
		{"utf8 units", itext.TierRandomAccess, itext.Classify(encoding.UTF8{}, s)},
		{"utf8 segments", itext.TierBidirectional, itext.Classify(encoding.UTF8{}, buf.Segments())},
		{"utf8 bidirectional", itext.TierBidirectional, itext.Classify(encoding.UTF8{}, seq.BidirectionalOnly(s))},
		{"utf8 forward", itext.TierForward, itext.Classify(encoding.UTF8{}, seq.ForwardOnly(s))},
		{"utf8 single pass", itext.TierInput, itext.Classify(encoding.UTF8{}, seq.SinglePass(s))},
		{"utf8 stream", itext.TierInput, itext.Classify(encoding.UTF8{}, stream)},
		{"charmap units", itext.TierRandomAccess, itext.Classify(encoding.NewCharmap(nil), s)},
		{"iso-2022-jp units", itext.TierForward, itext.Classify(encoding.ISO2022JP{}, s)},
		{"iso-2022-jp stream", itext.TierInput, itext.Classify(encoding.ISO2022JP{}, stream)},
	}
	for _, tt := range tests {
		require.Equal(t, tt.tier, tt.got, tt.name)
	}
}

func TestTierString(t *testing.T) {
	require.Equal(t, "input", itext.TierInput.String())
	require.Equal(t, "forward", itext.TierForward.String())
	require.Equal(t, "bidirectional", itext.TierBidirectional.String())
	require.Equal(t, "random-access", itext.TierRandomAccess.String())
	require.Equal(t, "unknown", itext.Tier(9).String())
	require.Less(t, itext.TierInput, itext.TierRandomAccess)
}

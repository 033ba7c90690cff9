package rapidbase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodedLen(t *testing.T) {
	cases := []struct {
		variant Variant
		n       int
		want    int
	}{
		{HexLower, 0, 0},
		{HexUpper, 5, 10},
		{Base64, 1, 4},
		{Base64, 3, 4},
		{Base64, 4, 8},
		{Base64NoPad, 1, 2},
		{Base64NoPad, 2, 3},
		{Base64NoPad, 3, 4},
		{Base64URLNoPad, 11, 15},
		{Base32, 1, 8},
		{Base32, 6, 16},
		{Base32NoPad, 1, 2},
		{Base32NoPad, 2, 4},
		{Base32NoPad, 3, 5},
		{Base32HexNoPad, 4, 7},
		{Base32HexNoPad, 5, 8},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.variant.EncodedLen(tc.n), "%s(%d)", tc.variant, tc.n)
	}
}

func TestEncodedLenBounds(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			limit := v.MaxEncodeLen()
			require.Positive(t, v.EncodedLen(limit))

			require.PanicsWithValue(t, errInputTooLarge, func() { v.EncodedLen(limit + 1) })
			require.PanicsWithValue(t, errInputTooLarge, func() { v.EncodedLen(-1) })
		})
	}
}

func TestEncodePanicsOnShortDst(t *testing.T) {
	require.PanicsWithValue(t, errDstTooSmall, func() {
		Base64.Encode(make([]byte, 3), []byte("foo"))
	})
}

func TestEstimatedDecodedLen(t *testing.T) {
	for _, v := range allVariants {
		for n := 0; n < 64; n++ {
			m := v.EncodedLen(n)
			require.GreaterOrEqual(t, v.EstimatedDecodedLen(m), n, "%s(%d)", v, n)
		}
	}
}

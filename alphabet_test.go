package rapidbase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabetInverse(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			a := v.alphabet()
			cs := v.Charset()
			require.Equal(t, cs, a.charset)

			valid := 0
			for c := range a.decode {
				if a.decode[c] != invalid {
					valid++
				}
			}
			want := len(cs)
			if v.Family() == FamilyHex {
				want += 6 // the other case of a-f
			}
			require.Equal(t, want, valid)

			for i := 0; i < len(cs); i++ {
				require.Equal(t, byte(i), a.decode[cs[i]], "symbol %q", cs[i])
			}
			require.Equal(t, byte(invalid), a.decode[padChar])
			require.LessOrEqual(t, a.lanes.nd, maxRuns)
		})
	}
}

func TestHexPairs(t *testing.T) {
	for i := 0; i < 256; i++ {
		p := hexLower.pairs[i]
		require.Equal(t, hexLowerCharset[i>>4], byte(p), "byte %#x", i)
		require.Equal(t, hexLowerCharset[i&0xf], byte(p>>8), "byte %#x", i)
	}
}

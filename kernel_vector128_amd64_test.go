//go:build goexperiment.simd && amd64

package rapidbase

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVector128(t *testing.T) {
	t.Helper()
	if !BackendVector128.Available() {
		t.Skip("vector128 backend not available")
	}
}

func TestVector128Registered(t *testing.T) {
	requireVector128(t)
	k := backends[BackendVector128]
	require.Equal(t, BackendVector128, k.backend)
	for _, fn := range []any{k.hexEncode, k.hexDecode, k.hexCheck, k.base32Encode, k.base32Decode,
		k.base32Check, k.base64Encode, k.base64Decode, k.base64Check} {
		require.NotNil(t, fn)
	}
	if ActiveBackend() == BackendVector128 {
		require.Equal(t, "vector128", EncodeKernel())
		require.Equal(t, "vector128", DecodeKernel())
	}
}

// Every byte value, looked up sixteen at a time, must match the word lookup.
func TestVectorTableMatchesLaneTable(t *testing.T) {
	requireVector128(t)

	for a, r := range vecTables {
		var src [256]byte
		for i := range src {
			src[i] = byte(i)
		}
		for i := 0; i < len(src); i += vectorChunk {
			chunk := src[i : i+vectorChunk]
			want, wantOK := a.lanes.lookupChunk(chunk)
			got, ok := r.lookupChunk(chunk)
			require.Equal(t, wantOK, ok, "%s at %d", a.charset, i)
			if ok {
				require.Equal(t, want, got, "%s at %d", a.charset, i)
			}
			require.Equal(t, a.lanes.legalChunk(chunk), r.legalChunk(chunk), "%s at %d", a.charset, i)
		}

		// Each charset on its own is a valid chunk.
		cs := []byte(a.charset)
		for len(cs) < vectorChunk {
			cs = append(cs, cs...)
		}
		got, ok := r.lookupChunk(cs[:vectorChunk])
		require.True(t, ok, a.charset)
		want, _ := a.lanes.lookupChunk(cs[:vectorChunk])
		require.Equal(t, want, got, a.charset)

		// Translating every value back yields the charset.
		var idx [4]uint64
		var vals [vectorChunk]byte
		for i := range vals {
			vals[i] = byte(i % len(a.charset))
		}
		for i := range idx {
			idx[i] = binary.LittleEndian.Uint64(vals[8*i:])
		}
		dst := make([]byte, vectorChunk)
		r.translateChunk(dst, idx)
		for i, c := range dst {
			require.Equal(t, a.charset[vals[i]], c, "%s value %d", a.charset, vals[i])
		}
	}
}

// Input lengths around the chunk sizes exercise the vector loop together with
// the scalar tail.
func TestVector128ChunkBoundaries(t *testing.T) {
	requireVector128(t)
	r := newRand(t)

	for _, v := range allVariants {
		vec := v.WithBackend(BackendVector128)
		scalar := v.WithBackend(BackendScalar)
		for n := 0; n <= 3*base64EncodeChunk+1; n++ {
			raw := randomBytes(r, n)
			enc := vec.AppendEncode(nil, raw)
			require.Equal(t, scalar.AppendEncode(nil, raw), enc, "%s length %d", v, n)

			dec, err := vec.DecodeInPlace(enc)
			require.NoError(t, err, "%s length %d", v, n)
			require.Equal(t, raw, dec, "%s length %d", v, n)
		}
	}
}

package rapidbase

import "slices"

// The helpers below allocate; the engine itself only ever writes into
// buffers it is given.

// AppendEncode appends the encoding of src to dst.
func (v Variant) AppendEncode(dst, src []byte) []byte {
	n := v.EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	v.Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// AppendDecode appends the decoding of src to dst. On error dst is returned
// unchanged.
func (v Variant) AppendDecode(dst, src []byte) ([]byte, error) {
	m, err := v.DecodedLen(src)
	if err != nil {
		return dst, err
	}
	out := slices.Grow(dst, m)
	if _, err := v.Decode(out[len(out):len(out)+m], src); err != nil {
		return dst, err
	}
	return out[:len(out)+m], nil
}

// EncodeToString returns the encoding of src.
func (v Variant) EncodeToString(src []byte) string {
	return string(v.AppendEncode(nil, src))
}

// DecodeString returns the bytes represented by s.
func (v Variant) DecodeString(s string) ([]byte, error) {
	buf := []byte(s)
	return v.DecodeInPlace(buf)
}

package rapidbase

import "encoding/binary"

const (
	base64EncodeChunk = 24 // source bytes
	base64DecodeChunk = 32 // symbols
)

func base64EncodeSWAR(dst, src []byte, a *alphabet, padding bool) {
	n := len(src) / base64EncodeChunk * base64EncodeChunk
	t := &a.lanes
	for i, j := 0, 0; i < n; i, j = i+base64EncodeChunk, j+base64DecodeChunk {
		s := src[i : i+base64EncodeChunk]
		d := dst[j : j+base64DecodeChunk]
		binary.LittleEndian.PutUint64(d, t.translate(base64Indices(s)))
		binary.LittleEndian.PutUint64(d[8:], t.translate(base64Indices(s[6:])))
		binary.LittleEndian.PutUint64(d[16:], t.translate(base64Indices(s[12:])))
		binary.LittleEndian.PutUint64(d[24:], t.translate(base64Indices(s[18:])))
	}
	base64EncodeScalar(dst[n/3*4:], src[n:], a, padding)
}

func base64DecodeSWAR(dst, src []byte, a *alphabet, forgiving bool) error {
	n := len(src) / base64DecodeChunk * base64DecodeChunk
	t := &a.lanes
	for i, j := 0, 0; i < n; i, j = i+base64DecodeChunk, j+base64EncodeChunk {
		v, ok := t.lookupChunk(src[i : i+base64DecodeChunk])
		if !ok {
			return base64DecodeScalar(dst[j:], src[i:], a, forgiving)
		}
		d := dst[j : j+base64EncodeChunk]
		put48(d, pack6(v[0]))
		put48(d[6:], pack6(v[1]))
		put48(d[12:], pack6(v[2]))
		put48(d[18:], pack6(v[3]))
	}
	return base64DecodeScalar(dst[n/4*3:], src[n:], a, forgiving)
}

func base64CheckSWAR(src []byte, a *alphabet) error {
	n := len(src) / base64DecodeChunk * base64DecodeChunk
	t := &a.lanes
	for i := 0; i < n; i += base64DecodeChunk {
		if !t.legalChunk(src[i : i+base64DecodeChunk]) {
			return base64CheckScalar(src[i:], a)
		}
	}
	return base64CheckScalar(src[n:], a)
}

// base64Indices splits six bytes into eight 6-bit lanes.
func base64Indices(s []byte) uint64 {
	_ = s[5]
	g0 := uint64(s[0])<<16 | uint64(s[1])<<8 | uint64(s[2])
	g1 := uint64(s[3])<<16 | uint64(s[4])<<8 | uint64(s[5])
	return g0>>18 | (g0>>12&0x3f)<<8 | (g0>>6&0x3f)<<16 | (g0&0x3f)<<24 |
		(g1>>18)<<32 | (g1>>12&0x3f)<<40 | (g1>>6&0x3f)<<48 | (g1&0x3f)<<56
}

// pack6 merges eight 6-bit lanes into two 24-bit groups, one per 32-bit half.
func pack6(v uint64) uint64 {
	t := (v&0x00ff00ff00ff00ff)<<6 | v>>8&0x00ff00ff00ff00ff
	return (t&0x0000ffff0000ffff)<<12 | t>>16&0x0000ffff0000ffff
}

// put48 stores the two groups of pack6 as six big-endian bytes.
func put48(d []byte, g uint64) {
	_ = d[5]
	d[0] = byte(g >> 16)
	d[1] = byte(g >> 8)
	d[2] = byte(g)
	d[3] = byte(g >> 48)
	d[4] = byte(g >> 40)
	d[5] = byte(g >> 32)
}

package rapidbase

import "encoding/binary"

const (
	base32EncodeChunk = 20 // source bytes
	base32DecodeChunk = 32 // symbols
)

func base32EncodeSWAR(dst, src []byte, a *alphabet, padding bool) {
	n := len(src) / base32EncodeChunk * base32EncodeChunk
	t := &a.lanes
	for i, j := 0, 0; i < n; i, j = i+base32EncodeChunk, j+base32DecodeChunk {
		s := src[i : i+base32EncodeChunk]
		d := dst[j : j+base32DecodeChunk]
		binary.LittleEndian.PutUint64(d, t.translate(base32Indices(s)))
		binary.LittleEndian.PutUint64(d[8:], t.translate(base32Indices(s[5:])))
		binary.LittleEndian.PutUint64(d[16:], t.translate(base32Indices(s[10:])))
		binary.LittleEndian.PutUint64(d[24:], t.translate(base32Indices(s[15:])))
	}
	base32EncodeScalar(dst[n/5*8:], src[n:], a, padding)
}

func base32DecodeSWAR(dst, src []byte, a *alphabet) error {
	n := len(src) / base32DecodeChunk * base32DecodeChunk
	t := &a.lanes
	for i, j := 0, 0; i < n; i, j = i+base32DecodeChunk, j+base32EncodeChunk {
		v, ok := t.lookupChunk(src[i : i+base32DecodeChunk])
		if !ok {
			return base32DecodeScalar(dst[j:], src[i:], a)
		}
		d := dst[j : j+base32EncodeChunk]
		put40(d, pack5(v[0]))
		put40(d[5:], pack5(v[1]))
		put40(d[10:], pack5(v[2]))
		put40(d[15:], pack5(v[3]))
	}
	return base32DecodeScalar(dst[n/8*5:], src[n:], a)
}

func base32CheckSWAR(src []byte, a *alphabet) error {
	n := len(src) / base32DecodeChunk * base32DecodeChunk
	t := &a.lanes
	for i := 0; i < n; i += base32DecodeChunk {
		if !t.legalChunk(src[i : i+base32DecodeChunk]) {
			return base32CheckScalar(src[i:], a)
		}
	}
	return base32CheckScalar(src[n:], a)
}

// base32Indices splits five bytes into eight 5-bit lanes.
func base32Indices(s []byte) uint64 {
	_ = s[4]
	g := uint64(s[0])<<32 | uint64(s[1])<<24 | uint64(s[2])<<16 | uint64(s[3])<<8 | uint64(s[4])
	return g>>35 | (g>>30&0x1f)<<8 | (g>>25&0x1f)<<16 | (g>>20&0x1f)<<24 |
		(g>>15&0x1f)<<32 | (g>>10&0x1f)<<40 | (g>>5&0x1f)<<48 | (g&0x1f)<<56
}

// pack5 merges eight 5-bit lanes into one 40-bit group.
func pack5(v uint64) uint64 {
	t := (v&0x00ff00ff00ff00ff)<<5 | v>>8&0x00ff00ff00ff00ff
	t = (t&0x0000ffff0000ffff)<<10 | t>>16&0x0000ffff0000ffff
	return (t&0xffffffff)<<20 | t>>32
}

func put40(d []byte, g uint64) {
	_ = d[4]
	d[0] = byte(g >> 32)
	d[1] = byte(g >> 24)
	d[2] = byte(g >> 16)
	d[3] = byte(g >> 8)
	d[4] = byte(g)
}

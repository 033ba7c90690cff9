package rapidbase

import "encoding/binary"

const (
	hexEncodeChunk = 16 // source bytes
	hexDecodeChunk = 32 // symbols
)

func hexEncodeSWAR(dst, src []byte, a *hexAlphabet) {
	n := len(src) / hexEncodeChunk * hexEncodeChunk
	t := &a.lanes
	for i := 0; i < n; i += hexEncodeChunk {
		s := src[i : i+hexEncodeChunk]
		d := dst[2*i : 2*i+2*hexEncodeChunk]
		x0 := binary.LittleEndian.Uint64(s)
		x1 := binary.LittleEndian.Uint64(s[8:])
		hi0, lo0 := t.translate(x0>>4&lanesLowNibble), t.translate(x0&lanesLowNibble)
		hi1, lo1 := t.translate(x1>>4&lanesLowNibble), t.translate(x1&lanesLowNibble)
		binary.LittleEndian.PutUint64(d, interleave(uint32(hi0), uint32(lo0)))
		binary.LittleEndian.PutUint64(d[8:], interleave(uint32(hi0>>32), uint32(lo0>>32)))
		binary.LittleEndian.PutUint64(d[16:], interleave(uint32(hi1), uint32(lo1)))
		binary.LittleEndian.PutUint64(d[24:], interleave(uint32(hi1>>32), uint32(lo1>>32)))
	}
	hexEncodeScalar(dst[2*n:], src[n:], a)
}

func hexDecodeSWAR(dst, src []byte) error {
	n := len(src) / hexDecodeChunk * hexDecodeChunk
	t := &hexLower.lanes
	for i := 0; i < n; i += hexDecodeChunk {
		v, ok := t.lookupChunk(src[i : i+hexDecodeChunk])
		if !ok {
			return hexDecodeScalar(dst[i/2:], src[i:])
		}
		d := dst[i/2 : i/2+hexDecodeChunk/2]
		binary.LittleEndian.PutUint32(d, packNibbles(v[0]))
		binary.LittleEndian.PutUint32(d[4:], packNibbles(v[1]))
		binary.LittleEndian.PutUint32(d[8:], packNibbles(v[2]))
		binary.LittleEndian.PutUint32(d[12:], packNibbles(v[3]))
	}
	return hexDecodeScalar(dst[n/2:], src[n:])
}

func hexCheckSWAR(src []byte) error {
	n := len(src) / hexDecodeChunk * hexDecodeChunk
	t := &hexLower.lanes
	for i := 0; i < n; i += hexDecodeChunk {
		if !t.legalChunk(src[i : i+hexDecodeChunk]) {
			return hexCheckScalar(src[i:])
		}
	}
	return hexCheckScalar(src[n:])
}

// interleave places the bytes of a at even and the bytes of b at odd offsets.
func interleave(a, b uint32) uint64 {
	return spread(a) | spread(b)<<8
}

func spread(x uint32) uint64 {
	v := uint64(x)
	v = (v | v<<16) & 0x0000ffff0000ffff
	v = (v | v<<8) & 0x00ff00ff00ff00ff
	return v
}

// packNibbles joins each pair of 4-bit lanes into one byte, first lane high.
func packNibbles(v uint64) uint32 {
	b := (v&0x00ff00ff00ff00ff)<<4 | v>>8&0x00ff00ff00ff00ff
	b = (b | b>>8) & 0x0000ffff0000ffff
	b = (b | b>>16) & 0x00000000ffffffff
	return uint32(b)
}

package rapidbase

import "encoding/binary"

// hexEncodeScalar writes two symbols per source byte using the pair table.
// dst must hold 2*len(src) bytes.
func hexEncodeScalar(dst, src []byte, a *hexAlphabet) {
	dst = dst[:2*len(src)]
	for i, c := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], a.pairs[c])
	}
}

// hexDecodeScalar decodes an even number of symbols. Byte i is written only
// after symbols 2i and 2i+1 have been read.
func hexDecodeScalar(dst, src []byte) error {
	table := &hexLower.decode
	dst = dst[:len(src)/2]
	for i := range dst {
		hi, lo := table[src[2*i]], table[src[2*i+1]]
		if (hi|lo)&0xf0 != 0 {
			return ErrInvalidSymbol
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

func hexCheckScalar(src []byte) error {
	table := &hexLower.decode
	for _, c := range src {
		if table[c] == invalid {
			return ErrInvalidSymbol
		}
	}
	return nil
}

package rapidbase

// base64EncodeScalar encodes src three bytes at a time into four symbols.
// dst must hold encodedLength(len(src)).
func base64EncodeScalar(dst, src []byte, a *alphabet, padding bool) {
	cs := a.charset
	n := len(src) / 3 * 3
	di := 0
	for si := 0; si < n; si += 3 {
		g := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		_ = dst[di+3]
		dst[di+0] = cs[g>>18&0x3f]
		dst[di+1] = cs[g>>12&0x3f]
		dst[di+2] = cs[g>>6&0x3f]
		dst[di+3] = cs[g&0x3f]
		di += 4
	}

	switch len(src) - n {
	case 1:
		g := uint(src[n]) << 16
		dst[di+0] = cs[g>>18&0x3f]
		dst[di+1] = cs[g>>12&0x3f]
		if padding {
			dst[di+2] = padChar
			dst[di+3] = padChar
		}
	case 2:
		g := uint(src[n])<<16 | uint(src[n+1])<<8
		dst[di+0] = cs[g>>18&0x3f]
		dst[di+1] = cs[g>>12&0x3f]
		dst[di+2] = cs[g>>6&0x3f]
		if padding {
			dst[di+3] = padChar
		}
	}
}

// base64DecodeScalar decodes n unpadded symbols, n%4 != 1. Each group is read
// completely before its bytes are written, which keeps in-place decoding
// safe. Unless forgiving, the bits below the last whole byte must be zero.
func base64DecodeScalar(dst, src []byte, a *alphabet, forgiving bool) error {
	table := &a.decode
	n := len(src) / 4 * 4
	di := 0
	for si := 0; si < n; si += 4 {
		_ = src[si+3]
		y0, y1, y2, y3 := table[src[si]], table[src[si+1]], table[src[si+2]], table[src[si+3]]
		if y0|y1|y2|y3 == invalid {
			return firstInvalid(src[si:si+4], table)
		}
		g := uint(y0)<<18 | uint(y1)<<12 | uint(y2)<<6 | uint(y3)
		_ = dst[di+2]
		dst[di+0] = byte(g >> 16)
		dst[di+1] = byte(g >> 8)
		dst[di+2] = byte(g)
		di += 3
	}
	return decodeTail(dst[di:], src[n:], table, 6, forgiving)
}

// base64CheckScalar is base64DecodeScalar without the writes.
func base64CheckScalar(src []byte, a *alphabet) error {
	table := &a.decode
	n := len(src) / 4 * 4
	for si := 0; si < n; si += 4 {
		_ = src[si+3]
		if table[src[si]]|table[src[si+1]]|table[src[si+2]]|table[src[si+3]] == invalid {
			return firstInvalid(src[si:si+4], table)
		}
	}
	return decodeTail(nil, src[n:], table, 6, false)
}

// decodeTail handles the final partial group of a base32 or base64 input.
// Each symbol carries width bits; whatever does not fill a whole byte is
// padding and must be zero unless lenient. A nil dst only checks.
func decodeTail(dst, src []byte, table *[256]byte, width uint, lenient bool) error {
	if len(src) == 0 {
		return nil
	}
	var acc uint64
	for _, c := range src {
		y := table[c]
		if y == invalid {
			return symbolError(c)
		}
		acc = acc<<width | uint64(y)
	}
	bits := uint(len(src)) * width
	extra := bits % 8
	if !lenient && acc&(1<<extra-1) != 0 {
		return ErrInvalidPadding
	}
	if dst == nil {
		return nil
	}
	acc >>= extra
	m := int(bits / 8)
	for i := m - 1; i >= 0; i-- {
		dst[i] = byte(acc)
		acc >>= 8
	}
	return nil
}

// firstInvalid reports the error for the first symbol of src missing from table.
func firstInvalid(src []byte, table *[256]byte) error {
	for _, c := range src {
		if table[c] == invalid {
			return symbolError(c)
		}
	}
	return ErrInvalidSymbol
}

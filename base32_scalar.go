package rapidbase

// base32 symbols emitted for a trailing group of 0..4 source bytes.
var base32TailSymbols = [5]int{0, 2, 4, 5, 7}

// base32EncodeScalar encodes src five bytes at a time into eight symbols.
func base32EncodeScalar(dst, src []byte, a *alphabet, padding bool) {
	cs := a.charset
	n := len(src) / 5 * 5
	di := 0
	for si := 0; si < n; si += 5 {
		_ = src[si+4]
		g := uint64(src[si])<<32 | uint64(src[si+1])<<24 | uint64(src[si+2])<<16 | uint64(src[si+3])<<8 | uint64(src[si+4])
		base32Spell(dst[di:di+8], g, cs)
		di += 8
	}

	r := len(src) - n
	if r == 0 {
		return
	}
	var g uint64
	for i := 0; i < r; i++ {
		g |= uint64(src[n+i]) << (32 - 8*i)
	}
	var group [8]byte
	base32Spell(group[:], g, cs)
	k := base32TailSymbols[r]
	copy(dst[di:], group[:k])
	if padding {
		for i := k; i < 8; i++ {
			dst[di+i] = padChar
		}
	}
}

// base32Spell writes the eight symbols of a 40-bit group.
func base32Spell(dst []byte, g uint64, cs string) {
	_ = dst[7]
	dst[0] = cs[g>>35&0x1f]
	dst[1] = cs[g>>30&0x1f]
	dst[2] = cs[g>>25&0x1f]
	dst[3] = cs[g>>20&0x1f]
	dst[4] = cs[g>>15&0x1f]
	dst[5] = cs[g>>10&0x1f]
	dst[6] = cs[g>>5&0x1f]
	dst[7] = cs[g&0x1f]
}

// base32DecodeScalar decodes n unpadded symbols with n%8 in {0, 2, 4, 5, 7}.
// Each group is read before it is written so the same buffer may be used
// for src and dst.
func base32DecodeScalar(dst, src []byte, a *alphabet) error {
	table := &a.decode
	n := len(src) / 8 * 8
	di := 0
	for si := 0; si < n; si += 8 {
		g, ok := base32Group(src[si:si+8], table)
		if !ok {
			return firstInvalid(src[si:si+8], table)
		}
		_ = dst[di+4]
		dst[di+0] = byte(g >> 32)
		dst[di+1] = byte(g >> 24)
		dst[di+2] = byte(g >> 16)
		dst[di+3] = byte(g >> 8)
		dst[di+4] = byte(g)
		di += 5
	}
	return decodeTail(dst[di:], src[n:], table, 5, false)
}

func base32CheckScalar(src []byte, a *alphabet) error {
	table := &a.decode
	n := len(src) / 8 * 8
	for si := 0; si < n; si += 8 {
		if _, ok := base32Group(src[si:si+8], table); !ok {
			return firstInvalid(src[si:si+8], table)
		}
	}
	return decodeTail(nil, src[n:], table, 5, false)
}

func base32Group(src []byte, table *[256]byte) (g uint64, ok bool) {
	_ = src[7]
	var flag byte
	for _, c := range src[:8] {
		y := table[c]
		flag |= y
		g = g<<5 | uint64(y&0x1f)
	}
	return g, flag != invalid
}

package rapidbase

import "math"

// MaxEncodeLen returns the largest source length EncodedLen accepts.
func (v Variant) MaxEncodeLen() int {
	switch v.family {
	case FamilyHex:
		return math.MaxInt / 2
	case FamilyBase32, FamilyBase32Hex:
		return (math.MaxInt/8 - 1) * 5
	default:
		return (math.MaxInt/4 - 1) * 3
	}
}

// EncodedLen returns the length of the encoding of n source bytes.
// It panics if n is negative or greater than MaxEncodeLen.
func (v Variant) EncodedLen(n int) int {
	if n < 0 || n > v.MaxEncodeLen() {
		panic(errInputTooLarge)
	}
	return v.encodedLength(n)
}

func (v Variant) encodedLength(n int) int {
	switch v.family {
	case FamilyHex:
		return 2 * n
	case FamilyBase32, FamilyBase32Hex:
		if v.padding {
			return (n + 4) / 5 * 8
		}
		return n/5*8 + base32TailSymbols[n%5]
	default:
		if v.padding {
			return (n + 2) / 3 * 4
		}
		return n/3*4 + (n%3*8+5)/6
	}
}

// EstimatedDecodedLen returns an upper bound on the decoded length of n
// symbols, suitable for sizing a buffer before the input is inspected.
func (v Variant) EstimatedDecodedLen(n int) int {
	switch v.family {
	case FamilyHex:
		return n / 2
	case FamilyBase32, FamilyBase32Hex:
		return n/8*5 + (n%8*5+7)/8
	default:
		return n/4*3 + (n%4*6+7)/8
	}
}

// DecodedLen returns the exact number of bytes src decodes to, or an error
// if the length or padding of src can never be valid for v.
func (v Variant) DecodedLen(src []byte) (int, error) {
	_, m, err := v.decodedLength(src)
	return m, err
}

// decodedLength returns the number of symbols left once padding is removed
// and the number of bytes they decode to.
func (v Variant) decodedLength(src []byte) (n, m int, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}

	switch v.family {
	case FamilyHex:
		if len(src)%2 != 0 {
			return 0, 0, ErrInvalidLength
		}
		return len(src), len(src) / 2, nil

	case FamilyBase32, FamilyBase32Hex:
		n = len(src)
		if v.padding {
			if n%8 != 0 {
				return 0, 0, ErrInvalidLength
			}
			n -= countPadding(src, 6)
		}
		switch n % 8 {
		case 0, 2, 4, 5, 7:
			return n, n/8*5 + n%8*5/8, nil
		}
		if v.padding {
			return 0, 0, ErrInvalidPadding
		}
		return 0, 0, ErrInvalidLength

	default:
		n = len(src)
		if v.padding {
			if n%4 != 0 {
				return 0, 0, ErrInvalidLength
			}
			n -= countPadding(src, 2)
		}
		if n%4 == 1 {
			return 0, 0, ErrInvalidLength
		}
		return n, n/4*3 + n%4*6/8, nil
	}
}

// countPadding counts trailing padding symbols, up to limit.
func countPadding(src []byte, limit int) int {
	c := 0
	for c < limit && c < len(src) && src[len(src)-1-c] == padChar {
		c++
	}
	return c
}

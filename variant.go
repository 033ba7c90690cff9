package rapidbase

import (
	"errors"
	"strings"
)

// Variant selects a codec: its family, the case of hex output and whether
// base32/base64 output is padded. Variants are small values and safe for
// concurrent use.
type Variant struct {
	family  Family
	upper   bool
	padding bool
	backend Backend
}

// The predefined variants. The base32 and base64 ones follow RFC 4648;
// NoPad variants neither emit nor accept '=' padding.
var (
	HexLower       = Variant{family: FamilyHex} // lowercase output, either case accepted
	HexUpper       = Variant{family: FamilyHex, upper: true} // uppercase output, either case accepted
	Base32         = Variant{family: FamilyBase32, padding: true}
	Base32NoPad    = Variant{family: FamilyBase32}
	Base32Hex      = Variant{family: FamilyBase32Hex, padding: true}
	Base32HexNoPad = Variant{family: FamilyBase32Hex}
	Base64         = Variant{family: FamilyBase64, padding: true}
	Base64NoPad    = Variant{family: FamilyBase64}
	Base64URL      = Variant{family: FamilyBase64URL, padding: true} // URL and filename safe alphabet
	Base64URLNoPad = Variant{family: FamilyBase64URL}
)

var variantNames = map[string]Variant{
	"hex":             HexLower,
	"hex-upper":       HexUpper,
	"base32":          Base32,
	"base32-nopad":    Base32NoPad,
	"base32hex":       Base32Hex,
	"base32hex-nopad": Base32HexNoPad,
	"base64":          Base64,
	"base64-nopad":    Base64NoPad,
	"base64url":       Base64URL,
	"base64url-nopad": Base64URLNoPad,
}

var errUnknownVariant = errors.New("rapidbase: unknown variant")

// Variants returns the predefined variants.
func Variants() []Variant {
	return []Variant{
		HexLower, HexUpper,
		Base32, Base32NoPad, Base32Hex, Base32HexNoPad,
		Base64, Base64NoPad, Base64URL, Base64URLNoPad,
	}
}

// ParseVariant returns the variant with the given name, as printed by
// Variant.String.
func ParseVariant(name string) (Variant, error) {
	v, ok := variantNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, errUnknownVariant
	}
	return v, nil
}

func (v Variant) String() string {
	s := v.family.String()
	switch {
	case v.family == FamilyHex && v.upper:
		s += "-upper"
	case v.family != FamilyHex && !v.padding:
		s += "-nopad"
	}
	return s
}

// Family returns the alphabet family of v.
func (v Variant) Family() Family { return v.family }

// Padding reports whether v emits and requires '=' padding.
func (v Variant) Padding() bool { return v.padding }

// Backend returns the backend forced with WithBackend, or BackendAuto.
func (v Variant) Backend() Backend { return v.backend }

// WithBackend returns a copy of v that always runs on b. If b is not
// available on this machine the automatically selected backend is used.
func (v Variant) WithBackend(b Backend) Variant {
	if b >= numBackends {
		b = BackendAuto
	}
	v.backend = b
	return v
}

// Charset returns the symbols of v in value order.
func (v Variant) Charset() string {
	if v.family == FamilyHex {
		return v.hex().charset
	}
	return v.alphabet().charset
}

func (v Variant) hex() *hexAlphabet {
	if v.upper {
		return hexUpper
	}
	return hexLower
}

func (v Variant) alphabet() *alphabet {
	switch v.family {
	case FamilyBase32:
		return base32Std
	case FamilyBase32Hex:
		return base32Hex
	case FamilyBase64URL:
		return base64URL
	case FamilyHex:
		return &v.hex().alphabet
	}
	return base64Std
}

// Encode writes the encoding of src to dst and returns the written part of
// dst. It panics if dst is shorter than EncodedLen(len(src)).
func (v Variant) Encode(dst, src []byte) []byte {
	m := v.EncodedLen(len(src))
	if len(dst) < m {
		panic(errDstTooSmall)
	}
	dst = dst[:m]
	k := v.kernels()
	switch v.family {
	case FamilyHex:
		k.hexEncode(dst, src, v.hex())
	case FamilyBase32, FamilyBase32Hex:
		k.base32Encode(dst, src, v.alphabet(), v.padding)
	default:
		k.base64Encode(dst, src, v.alphabet(), v.padding)
	}
	return dst
}

// Decode decodes src into dst and returns the written part of dst. Length
// and padding errors are reported before dst is touched; after that it
// panics if dst is shorter than DecodedLen(src). On error the contents of
// dst are unspecified.
func (v Variant) Decode(dst, src []byte) ([]byte, error) {
	n, m, err := v.decodedLength(src)
	if err != nil {
		return nil, err
	}
	if len(dst) < m {
		panic(errDstTooSmall)
	}
	return v.decode(dst[:m], src[:n], false)
}

// DecodeInPlace decodes buf into its own prefix and returns that prefix.
func (v Variant) DecodeInPlace(buf []byte) ([]byte, error) {
	n, m, err := v.decodedLength(buf)
	if err != nil {
		return nil, err
	}
	return v.decode(buf[:m], buf[:n], false)
}

func (v Variant) decode(dst, src []byte, forgiving bool) ([]byte, error) {
	k := v.kernels()
	var err error
	switch v.family {
	case FamilyHex:
		err = k.hexDecode(dst, src)
	case FamilyBase32, FamilyBase32Hex:
		err = k.base32Decode(dst, src, v.alphabet())
	default:
		err = k.base64Decode(dst, src, v.alphabet(), forgiving)
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// Check reports whether src would decode successfully, returning the same
// error Decode would. src is never modified.
func (v Variant) Check(src []byte) error {
	n, _, err := v.decodedLength(src)
	if err != nil {
		return err
	}
	src = src[:n]
	k := v.kernels()
	switch v.family {
	case FamilyHex:
		return k.hexCheck(src)
	case FamilyBase32, FamilyBase32Hex:
		return k.base32Check(src, v.alphabet())
	default:
		return k.base64Check(src, v.alphabet())
	}
}

// Valid is Check reduced to a boolean.
func (v Variant) Valid(src []byte) bool {
	return v.Check(src) == nil
}

package rapidbase

import "encoding/binary"

// ForgivingDecodeInPlace decodes base64 the way the WHATWG Infra standard's
// forgiving-base64 decode does: ASCII whitespace is dropped, one or two
// trailing '=' are accepted when they complete a group, padding may be
// omitted and the bits below the last whole byte are discarded. The result
// is written to a prefix of buf.
//
// See https://infra.spec.whatwg.org/#forgiving-base64
func ForgivingDecodeInPlace(buf []byte) ([]byte, error) {
	data := normalizeForgiving(buf)
	n, m, err := Base64NoPad.decodedLength(data)
	if err != nil {
		return nil, err
	}
	return Base64NoPad.decode(data[:m], data[:n], true)
}

// ForgivingDecodeString is ForgivingDecodeInPlace on a copy of s.
func ForgivingDecodeString(s string) ([]byte, error) {
	return ForgivingDecodeInPlace([]byte(s))
}

func normalizeForgiving(buf []byte) []byte {
	buf = stripASCIIWhitespace(buf)
	if len(buf)%4 == 0 {
		buf = buf[:len(buf)-countPadding(buf, 2)]
	}
	return buf
}

// stripASCIIWhitespace compacts buf in place. Inputs without whitespace
// are skipped a word at a time and left untouched.
func stripASCIIWhitespace(buf []byte) []byte {
	i := 0
	for ; i+8 <= len(buf); i += 8 {
		if whitespace(binary.LittleEndian.Uint64(buf[i:])) != 0 {
			break
		}
	}
	for ; i < len(buf) && !isASCIIWhitespace(buf[i]); i++ {
	}

	w := i
	for ; i < len(buf); i++ {
		if c := buf[i]; !isASCIIWhitespace(c) {
			buf[w] = c
			w++
		}
	}
	return buf[:w]
}

func isASCIIWhitespace(c byte) bool {
	switch c {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

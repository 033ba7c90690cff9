package rapidbase

const (
	padChar = '='
	invalid = 0xff // decode table sentinel
)

const (
	hexLowerCharset       = "0123456789abcdef"
	hexUpperCharset       = "0123456789ABCDEF"
	base32Charset         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base32HexCharset      = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	base64Charset         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLCharset      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	maxRuns               = 5
	lanesLowNibble uint64 = 0x0f0f0f0f0f0f0f0f
)

// run is a contiguous stretch of the charset: symbols first..last carry the
// values index..index+(last-first).
type run struct {
	index byte
	first byte
	last  byte
}

// step adds delta to the encode offset of every index >= index.
type step struct {
	index byte
	delta byte
}

// laneTable holds the per-lane constants the word kernels use in place of
// the byte tables. Every alphabet here splits into at most five runs.
type laneTable struct {
	decode [maxRuns]run
	nd     int

	base  byte // offset of the first run
	steps [maxRuns]step
	ns    int
}

// alphabet maps symbol values to bytes and back.
type alphabet struct {
	charset string
	decode  [256]byte
	lanes   laneTable
}

// hexAlphabet additionally carries the two-symbol table used by the encoder,
// each entry holding the high nibble symbol in its low byte.
type hexAlphabet struct {
	alphabet
	pairs [256]uint16
}

var (
	hexLower  = newHexAlphabet(hexLowerCharset)
	hexUpper  = newHexAlphabet(hexUpperCharset)
	base32Std = newAlphabet(base32Charset)
	base32Hex = newAlphabet(base32HexCharset)
	base64Std = newAlphabet(base64Charset)
	base64URL = newAlphabet(base64URLCharset)
)

func newAlphabet(charset string, extra ...string) *alphabet {
	a := &alphabet{charset: charset}
	for i := range a.decode {
		a.decode[i] = invalid
	}
	for i := 0; i < len(charset); i++ {
		a.decode[charset[i]] = byte(i)
	}
	a.lanes.addDecodeRuns(charset)
	for _, cs := range extra {
		for i := 0; i < len(cs); i++ {
			a.decode[cs[i]] = byte(i)
		}
		a.lanes.addDecodeRuns(cs)
	}
	a.lanes.setEncodeRuns(charset)
	return a
}

// newHexAlphabet accepts both cases on decode whatever the encode case is.
func newHexAlphabet(charset string) *hexAlphabet {
	other := hexUpperCharset
	if charset == hexUpperCharset {
		other = hexLowerCharset
	}
	h := &hexAlphabet{alphabet: *newAlphabet(charset, other)}
	for i := range h.pairs {
		h.pairs[i] = uint16(charset[i>>4]) | uint16(charset[i&0xf])<<8
	}
	return h
}

func splitRuns(charset string) []run {
	var runs []run
	for i := 0; i < len(charset); i++ {
		c := charset[i]
		if n := len(runs); n > 0 && runs[n-1].last+1 == c {
			runs[n-1].last = c
			continue
		}
		runs = append(runs, run{index: byte(i), first: c, last: c})
	}
	return runs
}

func (t *laneTable) addDecodeRuns(charset string) {
next:
	for _, r := range splitRuns(charset) {
		for _, have := range t.decode[:t.nd] {
			if have == r {
				continue next
			}
		}
		t.decode[t.nd] = r
		t.nd++
	}
}

func (t *laneTable) setEncodeRuns(charset string) {
	runs := splitRuns(charset)
	t.base = runs[0].first - runs[0].index
	prev := t.base
	for _, r := range runs[1:] {
		off := r.first - r.index
		t.steps[t.ns] = step{index: r.index, delta: off - prev}
		t.ns++
		prev = off
	}
}

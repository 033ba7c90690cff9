package rapidbase

import "encoding/binary"

// Word-at-a-time helpers. The eight bytes of a uint64 are treated as lanes;
// a lane mask has the high bit of each selected lane set. None of the
// arithmetic below carries across lanes.

const (
	lanesLo7 uint64 = 0x7f7f7f7f7f7f7f7f
	lanesHi  uint64 = 0x8080808080808080
	lanesOne uint64 = 0x0101010101010101
)

func splat(b byte) uint64 {
	return lanesOne * uint64(b)
}

// geq selects lanes >= n. n must not exceed 0x80.
func geq(x uint64, n byte) uint64 {
	return ((x&lanesLo7)+splat(0x80-n) | x) & lanesHi
}

// between selects lanes in [lo, hi]. hi must be ASCII.
func between(x uint64, lo, hi byte) uint64 {
	return geq(x, lo) &^ geq(x, hi+1)
}

// widen expands a lane mask to whole 0xff lanes.
func widen(m uint64) uint64 {
	return (m >> 7) * 0xff
}

// addLanes adds x and y lane-wise modulo 256.
func addLanes(x, y uint64) uint64 {
	return ((x & lanesLo7) + (y & lanesLo7)) ^ ((x ^ y) & lanesHi)
}

// lookup maps eight symbols to their values. ok is false if any lane is
// outside the alphabet, in which case v is meaningless.
func (t *laneTable) lookup(x uint64) (v uint64, ok bool) {
	var valid, off uint64
	for _, r := range t.decode[:t.nd] {
		m := between(x, r.first, r.last)
		valid |= m
		off |= widen(m) & splat(r.index-r.first)
	}
	return addLanes(x, off), valid == lanesHi
}

// legal reports whether all eight lanes are alphabet symbols. It is the
// membership half of lookup, without the offsets.
func (t *laneTable) legal(x uint64) bool {
	var valid uint64
	for _, r := range t.decode[:t.nd] {
		valid |= between(x, r.first, r.last)
	}
	return valid == lanesHi
}

// translate maps eight symbol values to their symbols.
func (t *laneTable) translate(idx uint64) uint64 {
	off := splat(t.base)
	for _, s := range t.steps[:t.ns] {
		off = addLanes(off, widen(geq(idx, s.index))&splat(s.delta))
	}
	return addLanes(idx, off)
}

// legalChunk checks four consecutive words starting at src[0].
func (t *laneTable) legalChunk(src []byte) bool {
	_ = src[31]
	return t.legal(binary.LittleEndian.Uint64(src)) &&
		t.legal(binary.LittleEndian.Uint64(src[8:])) &&
		t.legal(binary.LittleEndian.Uint64(src[16:])) &&
		t.legal(binary.LittleEndian.Uint64(src[24:]))
}

// lookupChunk loads 32 symbols before anything is written, so callers may
// decode in place.
func (t *laneTable) lookupChunk(src []byte) (v [4]uint64, ok bool) {
	_ = src[31]
	var ok0, ok1, ok2, ok3 bool
	v[0], ok0 = t.lookup(binary.LittleEndian.Uint64(src))
	v[1], ok1 = t.lookup(binary.LittleEndian.Uint64(src[8:]))
	v[2], ok2 = t.lookup(binary.LittleEndian.Uint64(src[16:]))
	v[3], ok3 = t.lookup(binary.LittleEndian.Uint64(src[24:]))
	return v, ok0 && ok1 && ok2 && ok3
}

// whitespace selects TAB, LF, FF, CR and SPACE lanes.
func whitespace(x uint64) uint64 {
	return between(x, '\t', '\n') | between(x, '\f', '\r') | between(x, ' ', ' ')
}

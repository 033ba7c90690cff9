//go:build goexperiment.simd && amd64

package rapidbase

import (
	"encoding/binary"
	"simd/archsimd"
)

// The 128-bit backend does the symbol work sixteen lanes at a time: range
// classification and value offsets on decode and check, value to symbol
// offsets on encode. Splitting bytes into symbol indices and packing values
// back into bytes reuse the word helpers.

const vectorChunk = 32

// vectorTable is a laneTable broadcast into vector registers.
type vectorTable struct {
	lo, hi, off [maxRuns]archsimd.Uint8x16
	nd          int

	base              archsimd.Uint8x16
	stepAt, stepDelta [maxRuns]archsimd.Uint8x16
	ns                int
}

var vecTables map[*alphabet]*vectorTable

func init() {
	// archsimd 128-bit ops on AMD64 require AVX. Vectors are only built once
	// the instructions are known to exist.
	if !archsimd.X86.AVX() {
		return
	}

	vecTables = make(map[*alphabet]*vectorTable)
	for _, a := range []*alphabet{&hexLower.alphabet, &hexUpper.alphabet, base32Std, base32Hex, base64Std, base64URL} {
		vecTables[a] = newVectorTable(&a.lanes)
	}

	backends[BackendVector128] = &kernels{
		backend:      BackendVector128,
		hexEncode:    hexEncodeVector128,
		hexDecode:    hexDecodeVector128,
		hexCheck:     hexCheckVector128,
		base32Encode: base32EncodeVector128,
		base32Decode: base32DecodeVector128,
		base32Check:  base32CheckVector128,
		base64Encode: base64EncodeVector128,
		base64Decode: base64DecodeVector128,
		base64Check:  base64CheckVector128,
	}
}

func newVectorTable(t *laneTable) *vectorTable {
	r := &vectorTable{nd: t.nd, ns: t.ns, base: archsimd.BroadcastUint8x16(t.base)}
	for i, run := range t.decode[:t.nd] {
		r.lo[i] = archsimd.BroadcastUint8x16(run.first)
		r.hi[i] = archsimd.BroadcastUint8x16(run.last)
		r.off[i] = archsimd.BroadcastUint8x16(run.index - run.first)
	}
	for i, s := range t.steps[:t.ns] {
		r.stepAt[i] = archsimd.BroadcastUint8x16(s.index)
		r.stepDelta[i] = archsimd.BroadcastUint8x16(s.delta)
	}
	return r
}

// within selects lanes of v in [lo, hi], unsigned.
func within(v, lo, hi archsimd.Uint8x16) archsimd.Mask8x16 {
	return v.Max(lo).Equal(v).And(v.Min(hi).Equal(v))
}

// selectLanes keeps the lanes of x where m is set and zeroes the rest.
func selectLanes(x archsimd.Uint8x16, m archsimd.Mask8x16) archsimd.Uint8x16 {
	return m.ToInt8x16().AsUint8x16().And(x)
}

// legal reports whether every lane of v lies in one of the ranges.
func (r *vectorTable) legal(v archsimd.Uint8x16) bool {
	valid := within(v, r.lo[0], r.hi[0])
	for i := 1; i < r.nd; i++ {
		valid = valid.Or(within(v, r.lo[i], r.hi[i]))
	}
	return valid.ToBits() == 0xffff
}

// lookup maps sixteen symbols to their values. The runs are disjoint, so at
// most one offset survives per lane.
func (r *vectorTable) lookup(v archsimd.Uint8x16) (archsimd.Uint8x16, bool) {
	m := within(v, r.lo[0], r.hi[0])
	valid := m
	off := selectLanes(r.off[0], m)
	for i := 1; i < r.nd; i++ {
		m = within(v, r.lo[i], r.hi[i])
		valid = valid.Or(m)
		off = off.Or(selectLanes(r.off[i], m))
	}
	return v.Add(off), valid.ToBits() == 0xffff
}

// translate maps sixteen symbol values to their symbols.
func (r *vectorTable) translate(idx archsimd.Uint8x16) archsimd.Uint8x16 {
	off := r.base
	for i := 0; i < r.ns; i++ {
		off = off.Add(selectLanes(r.stepDelta[i], idx.Max(r.stepAt[i]).Equal(idx)))
	}
	return idx.Add(off)
}

func (r *vectorTable) legalChunk(src []byte) bool {
	return r.legal(archsimd.LoadUint8x16Slice(src)) &&
		r.legal(archsimd.LoadUint8x16Slice(src[16:]))
}

// lookupChunk loads 32 symbols before anything is written and returns their
// values as four words of eight lanes, in the layout laneTable.lookupChunk
// produces.
func (r *vectorTable) lookupChunk(src []byte) (w [4]uint64, ok bool) {
	_ = src[vectorChunk-1]
	v0, ok0 := r.lookup(archsimd.LoadUint8x16Slice(src))
	v1, ok1 := r.lookup(archsimd.LoadUint8x16Slice(src[16:]))
	if !ok0 || !ok1 {
		return w, false
	}
	var buf [vectorChunk]uint8
	v0.Store((*[16]uint8)(buf[:16]))
	v1.Store((*[16]uint8)(buf[16:]))
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	return w, true
}

// translateChunk turns 32 symbol values, given as four words, into symbols
// stored at dst.
func (r *vectorTable) translateChunk(dst []byte, idx [4]uint64) {
	_ = dst[vectorChunk-1]
	var buf [vectorChunk]uint8
	for i, x := range idx {
		binary.LittleEndian.PutUint64(buf[8*i:], x)
	}
	r.translate(archsimd.LoadUint8x16((*[16]uint8)(buf[:16]))).StoreSlice(dst)
	r.translate(archsimd.LoadUint8x16((*[16]uint8)(buf[16:]))).StoreSlice(dst[16:])
}

func hexEncodeVector128(dst, src []byte, a *hexAlphabet) {
	r := vecTables[&a.alphabet]
	n := len(src) / hexEncodeChunk * hexEncodeChunk
	for i := 0; i < n; i += hexEncodeChunk {
		x0 := binary.LittleEndian.Uint64(src[i:])
		x1 := binary.LittleEndian.Uint64(src[i+8:])
		hi := r.translateWords(x0>>4&lanesLowNibble, x1>>4&lanesLowNibble)
		lo := r.translateWords(x0&lanesLowNibble, x1&lanesLowNibble)
		d := dst[2*i : 2*i+2*hexEncodeChunk]
		binary.LittleEndian.PutUint64(d, interleave(uint32(hi[0]), uint32(lo[0])))
		binary.LittleEndian.PutUint64(d[8:], interleave(uint32(hi[0]>>32), uint32(lo[0]>>32)))
		binary.LittleEndian.PutUint64(d[16:], interleave(uint32(hi[1]), uint32(lo[1])))
		binary.LittleEndian.PutUint64(d[24:], interleave(uint32(hi[1]>>32), uint32(lo[1]>>32)))
	}
	hexEncodeScalar(dst[2*n:], src[n:], a)
}

// translateWords translates sixteen lanes held in two words.
func (r *vectorTable) translateWords(x0, x1 uint64) [2]uint64 {
	var buf [16]uint8
	binary.LittleEndian.PutUint64(buf[:], x0)
	binary.LittleEndian.PutUint64(buf[8:], x1)
	r.translate(archsimd.LoadUint8x16(&buf)).Store(&buf)
	return [2]uint64{binary.LittleEndian.Uint64(buf[:]), binary.LittleEndian.Uint64(buf[8:])}
}

func hexDecodeVector128(dst, src []byte) error {
	r := vecTables[&hexLower.alphabet]
	n := len(src) / hexDecodeChunk * hexDecodeChunk
	for i := 0; i < n; i += hexDecodeChunk {
		v, ok := r.lookupChunk(src[i : i+hexDecodeChunk])
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

func hexCheckVector128(src []byte) error {
	r := vecTables[&hexLower.alphabet]
	n := len(src) / vectorChunk * vectorChunk
	for i := 0; i < n; i += vectorChunk {
		if !r.legalChunk(src[i : i+vectorChunk]) {
			return hexCheckScalar(src[i:])
		}
	}
	return hexCheckScalar(src[n:])
}

func base32EncodeVector128(dst, src []byte, a *alphabet, padding bool) {
	r := vecTables[a]
	n := len(src) / base32EncodeChunk * base32EncodeChunk
	for i, j := 0, 0; i < n; i, j = i+base32EncodeChunk, j+base32DecodeChunk {
		s := src[i : i+base32EncodeChunk]
		r.translateChunk(dst[j:j+base32DecodeChunk], [4]uint64{
			base32Indices(s), base32Indices(s[5:]), base32Indices(s[10:]), base32Indices(s[15:]),
		})
	}
	base32EncodeScalar(dst[n/5*8:], src[n:], a, padding)
}

func base32DecodeVector128(dst, src []byte, a *alphabet) error {
	r := vecTables[a]
	n := len(src) / base32DecodeChunk * base32DecodeChunk
	for i, j := 0, 0; i < n; i, j = i+base32DecodeChunk, j+base32EncodeChunk {
		v, ok := r.lookupChunk(src[i : i+base32DecodeChunk])
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

func base32CheckVector128(src []byte, a *alphabet) error {
	r := vecTables[a]
	n := len(src) / vectorChunk * vectorChunk
	for i := 0; i < n; i += vectorChunk {
		if !r.legalChunk(src[i : i+vectorChunk]) {
			return base32CheckScalar(src[i:], a)
		}
	}
	return base32CheckScalar(src[n:], a)
}

func base64EncodeVector128(dst, src []byte, a *alphabet, padding bool) {
	r := vecTables[a]
	n := len(src) / base64EncodeChunk * base64EncodeChunk
	for i, j := 0, 0; i < n; i, j = i+base64EncodeChunk, j+base64DecodeChunk {
		s := src[i : i+base64EncodeChunk]
		r.translateChunk(dst[j:j+base64DecodeChunk], [4]uint64{
			base64Indices(s), base64Indices(s[6:]), base64Indices(s[12:]), base64Indices(s[18:]),
		})
	}
	base64EncodeScalar(dst[n/3*4:], src[n:], a, padding)
}

func base64DecodeVector128(dst, src []byte, a *alphabet, forgiving bool) error {
	r := vecTables[a]
	n := len(src) / base64DecodeChunk * base64DecodeChunk
	for i, j := 0, 0; i < n; i, j = i+base64DecodeChunk, j+base64EncodeChunk {
		v, ok := r.lookupChunk(src[i : i+base64DecodeChunk])
		if !ok {
			return base64DecodeScalar(dst[j:], src[i:], a, forgiving)
		}
		d := dst[j : j+base64EncodeChunk]
		put48(d, pack6(v[0]))
		put48(d[6:], pack6(v[1]))
		put48(d[12:], pack6(v[2]))
		put48(d[18:], pack6(v[3]))
	}
	return base64DecodeScalar(dst[n/4*3:], src[n:], a, forgiving)
}

func base64CheckVector128(src []byte, a *alphabet) error {
	r := vecTables[a]
	n := len(src) / vectorChunk * vectorChunk
	for i := 0; i < n; i += vectorChunk {
		if !r.legalChunk(src[i : i+vectorChunk]) {
			return base64CheckScalar(src[i:], a)
		}
	}
	return base64CheckScalar(src[n:], a)
}

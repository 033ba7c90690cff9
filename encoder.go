package rapidbase

import (
	"errors"
	"io"
	"sync"
)

// encodeBlock is the number of source bytes encoded per write to the
// underlying writer. It is a multiple of every group size.
const encodeBlock = 3 * 5 * 1024

// Encoder is an [io.WriteCloser] that encodes everything written to it.
type Encoder struct {
	w io.Writer
	v Variant

	pending  [5]byte // partial group carried between writes, sized for base32
	nPending int
	buf      []byte

	writeMu sync.Mutex
}

// NewEncoder returns a new [Encoder].
// Writes to the returned writer are encoded with v and written to w; padding
// is emitted by Close.
//
// It is the caller's responsibility to call Close on the [Encoder] when done.
func NewEncoder(w io.Writer, v Variant) *Encoder {
	e := &Encoder{v: v}
	e.Reset(w)
	return e
}

// Reset discards the [Encoder] e's state and makes it equivalent to the
// result of its original state from [NewEncoder], but writing to w instead.
// This permits reusing a [Encoder] rather than allocating a new one.
func (e *Encoder) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
	e.nPending = 0
}

var errWriterNil = errors.New("rapidbase: writer is nil")

func (e *Encoder) groupSize() int {
	switch e.v.family {
	case FamilyHex:
		return 1
	case FamilyBase32, FamilyBase32Hex:
		return 5
	}
	return 3
}

// Write encodes p and writes whole groups to the underlying [io.Writer].
// A trailing partial group is held back until the next Write or Close.
func (e *Encoder) Write(p []byte) (n int, err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}

	g := e.groupSize()
	n = len(p)

	// Complete a group left over from the previous Write.
	if e.nPending > 0 {
		c := copy(e.pending[e.nPending:g], p)
		e.nPending += c
		p = p[c:]
		if e.nPending < g {
			return n, nil
		}
		if err := e.flush(e.pending[:g]); err != nil {
			return 0, err
		}
		e.nPending = 0
	}

	for len(p) >= g {
		size := min(len(p)/g*g, encodeBlock)
		if err := e.flush(p[:size]); err != nil {
			return 0, err
		}
		p = p[size:]
	}

	e.nPending = copy(e.pending[:], p)
	return n, nil
}

func (e *Encoder) flush(src []byte) error {
	m := e.v.EncodedLen(len(src))
	if cap(e.buf) < m {
		e.buf = make([]byte, e.v.EncodedLen(encodeBlock))
	}
	_, err := e.w.Write(e.v.Encode(e.buf[:m], src))
	return err
}

// Close flushes any pending partial group, with padding if the variant pads.
// It is an error to call Write after calling Close.
func (e *Encoder) Close() error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	defer func() { e.w = nil }()

	if e.nPending > 0 {
		if err := e.flush(e.pending[:e.nPending]); err != nil {
			return err
		}
		e.nPending = 0
	}
	return nil
}

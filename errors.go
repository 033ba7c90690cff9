package rapidbase

import "errors"

// ErrorKind classifies why an input could not be decoded.
type ErrorKind uint8

const (
	InvalidLength  ErrorKind = iota + 1 // length incompatible with the variant's group/padding rules
	InvalidSymbol                       // byte outside the alphabet
	InvalidPadding                      // misplaced or miscounted padding, or non-zero padding bits
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidSymbol:
		return "invalid symbol"
	case InvalidPadding:
		return "invalid padding"
	}
	return "unknown"
}

// Error is returned by decode and check operations. Only the preallocated
// values below are ever returned, so errors can be compared with errors.Is
// and the error path does not allocate.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return "rapidbase: " + e.Kind.String()
}

var (
	// ErrInvalidLength is returned when the number of symbols cannot be a
	// complete encoding, such as an odd hex length or a base64 remainder of
	// one symbol.
	ErrInvalidLength = &Error{Kind: InvalidLength}

	// ErrInvalidSymbol is returned for a byte outside the variant's alphabet.
	ErrInvalidSymbol = &Error{Kind: InvalidSymbol}

	// ErrInvalidPadding is returned for padding that is misplaced, has the
	// wrong count, or follows a final symbol with non-zero trailing bits.
	ErrInvalidPadding = &Error{Kind: InvalidPadding}
)

// KindOf returns the ErrorKind carried by err, or 0 if err is not (and does
// not wrap) an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// symbolError classifies a byte that failed the alphabet lookup.
func symbolError(c byte) error {
	if c == padChar {
		return ErrInvalidPadding
	}
	return ErrInvalidSymbol
}

const (
	errDstTooSmall   = "rapidbase: destination buffer too small"
	errInputTooLarge = "rapidbase: input length exceeds maximum"
)

var errUnknownBackend = errors.New("rapidbase: unknown backend")

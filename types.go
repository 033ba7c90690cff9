package rapidbase

// Family is the codec family of a Variant.
type Family uint8

const (
	FamilyHex       Family = iota + 1
	FamilyBase32           // RFC 4648 §6, A-Z 2-7
	FamilyBase32Hex        // RFC 4648 §7, 0-9 A-V
	FamilyBase64           // RFC 4648 §4, + and /
	FamilyBase64URL        // RFC 4648 §5, - and _
)

func (f Family) String() string {
	switch f {
	case FamilyHex:
		return "hex"
	case FamilyBase32:
		return "base32"
	case FamilyBase32Hex:
		return "base32hex"
	case FamilyBase64:
		return "base64"
	case FamilyBase64URL:
		return "base64url"
	}
	return "unknown"
}

// Backend identifies an implementation of the codec kernels.
//
// Higher values are preferred when available. BackendAuto defers to the
// backend selected by the one-time CPU feature detection.
type Backend uint8

const (
	BackendAuto      Backend = 0 // default
	BackendScalar    Backend = 1 // group-at-a-time table lookups
	BackendSWAR      Backend = 2 // 8 lanes in a uint64
	BackendVector128 Backend = 3 // simd/archsimd 128-bit lanes

	numBackends = 4
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendScalar:
		return "scalar"
	case BackendSWAR:
		return "swar"
	case BackendVector128:
		return "vector128"
	}
	return "unknown"
}

package rapidbase

import (
	"math/bits"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// BackendEnv names the environment variable that overrides backend
// selection. It is read once, on first use.
const BackendEnv = "RAPIDBASE_BACKEND"

// kernels is the set of entry points a backend provides. Decode kernels get
// the symbols left after padding removal and a dst of exactly the decoded
// length; lengths have been validated before any kernel runs.
type kernels struct {
	backend Backend

	hexEncode func(dst, src []byte, a *hexAlphabet)
	hexDecode func(dst, src []byte) error
	hexCheck  func(src []byte) error

	base32Encode func(dst, src []byte, a *alphabet, padding bool)
	base32Decode func(dst, src []byte, a *alphabet) error
	base32Check  func(src []byte, a *alphabet) error

	base64Encode func(dst, src []byte, a *alphabet, padding bool)
	base64Decode func(dst, src []byte, a *alphabet, forgiving bool) error
	base64Check  func(src []byte, a *alphabet) error
}

var scalarKernels = kernels{
	backend:      BackendScalar,
	hexEncode:    hexEncodeScalar,
	hexDecode:    hexDecodeScalar,
	hexCheck:     hexCheckScalar,
	base32Encode: base32EncodeScalar,
	base32Decode: base32DecodeScalar,
	base32Check:  base32CheckScalar,
	base64Encode: base64EncodeScalar,
	base64Decode: base64DecodeScalar,
	base64Check:  base64CheckScalar,
}

var swarKernels = kernels{
	backend:      BackendSWAR,
	hexEncode:    hexEncodeSWAR,
	hexDecode:    hexDecodeSWAR,
	hexCheck:     hexCheckSWAR,
	base32Encode: base32EncodeSWAR,
	base32Decode: base32DecodeSWAR,
	base32Check:  base32CheckSWAR,
	base64Encode: base64EncodeSWAR,
	base64Decode: base64DecodeSWAR,
	base64Check:  base64CheckSWAR,
}

// backends holds every implementation compiled into this binary that the
// running CPU can execute. Architecture specific files add to it from init.
var backends = [numBackends]*kernels{
	BackendScalar: &scalarKernels,
	BackendSWAR:   &swarKernels,
}

var selected = sync.OnceValue(func() Backend {
	b := detect(os.Getenv(BackendEnv))
	Logger().Debug("rapidbase backend selected",
		zap.Stringer("backend", b),
		zap.String("override", os.Getenv(BackendEnv)),
		zap.Stringers("available", AvailableBackends()),
	)
	return b
})

// detect returns the named backend when it is available, otherwise the most
// capable one. Word kernels only pay off with 64-bit registers.
func detect(override string) Backend {
	if b, err := ParseBackend(override); err == nil && b != BackendAuto && b.Available() {
		return b
	}
	for b := Backend(numBackends - 1); b > BackendScalar; b-- {
		if b == BackendSWAR && bits.UintSize < 64 {
			continue
		}
		if b.Available() {
			return b
		}
	}
	return BackendScalar
}

// Available reports whether b can run on this machine.
func (b Backend) Available() bool {
	return b < numBackends && backends[b] != nil
}

// ParseBackend parses a backend name as printed by Backend.String.
// The empty string parses as BackendAuto.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return BackendAuto, nil
	case "scalar", "generic":
		return BackendScalar, nil
	case "swar":
		return BackendSWAR, nil
	case "vector128", "simd":
		return BackendVector128, nil
	}
	return BackendAuto, errUnknownBackend
}

// ActiveBackend returns the backend chosen for variants that do not force one.
func ActiveBackend() Backend {
	return selected()
}

// AvailableBackends lists the usable backends, least capable first.
func AvailableBackends() []Backend {
	var out []Backend
	for b := BackendScalar; b < numBackends; b++ {
		if b.Available() {
			out = append(out, b)
		}
	}
	return out
}

func (v Variant) kernels() *kernels {
	if v.backend != BackendAuto && v.backend.Available() {
		return backends[v.backend]
	}
	return backends[selected()]
}

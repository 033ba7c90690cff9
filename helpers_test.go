package rapidbase

import (
	"math/rand/v2"
	"testing"
)

var allVariants = Variants()

// forEachBackend runs fn once per backend usable on this machine, with v
// pinned to that backend.
func forEachBackend(t *testing.T, v Variant, fn func(t *testing.T, v Variant)) {
	t.Helper()
	for _, b := range AvailableBackends() {
		t.Run(b.String(), func(t *testing.T) {
			fn(t, v.WithBackend(b))
		})
	}
}

func randomBytes(r *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	return buf
}

func newRand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

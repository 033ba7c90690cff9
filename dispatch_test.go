package rapidbase

import (
	"math/bits"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"
)

func TestParseBackend(t *testing.T) {
	cases := map[string]Backend{
		"":          BackendAuto,
		"auto":      BackendAuto,
		"scalar":    BackendScalar,
		"generic":   BackendScalar,
		" SWAR ":    BackendSWAR,
		"vector128": BackendVector128,
		"simd":      BackendVector128,
	}
	for name, want := range cases {
		b, err := ParseBackend(name)
		require.NoError(t, err, name)
		require.Equal(t, want, b, name)
	}

	_, err := ParseBackend("avx1024")
	require.ErrorIs(t, err, errUnknownBackend)
}

func TestDetect(t *testing.T) {
	best := detect("")
	require.True(t, best.Available())
	if bits.UintSize == 64 {
		require.Equal(t, AvailableBackends()[len(AvailableBackends())-1], best)
	}

	require.Equal(t, BackendScalar, detect("scalar"))
	require.Equal(t, BackendSWAR, detect("swar"))

	// Unknown or unavailable overrides fall back to the best backend.
	require.Equal(t, best, detect("nonsense"))
	if !BackendVector128.Available() {
		require.Equal(t, best, detect("vector128"))
	}
}

func TestActiveBackend(t *testing.T) {
	b := ActiveBackend()
	require.True(t, b.Available())
	require.Equal(t, detect(os.Getenv(BackendEnv)), b)
	require.Equal(t, b.String(), EncodeKernel())
	require.Equal(t, b.String(), DecodeKernel())
	require.Equal(t, b.String(), CheckKernel())
}

func TestAvailableBackends(t *testing.T) {
	backends := AvailableBackends()
	require.GreaterOrEqual(t, len(backends), 2)
	require.Equal(t, BackendScalar, backends[0])
	require.Equal(t, BackendSWAR, backends[1])

	require.False(t, BackendAuto.Available())
	require.False(t, Backend(numBackends).Available())
}

func TestWithBackend(t *testing.T) {
	v := Base64.WithBackend(BackendScalar)
	require.Equal(t, BackendScalar, v.Backend())
	require.Same(t, &scalarKernels, v.kernels())

	require.Equal(t, BackendAuto, Base64.WithBackend(Backend(42)).Backend())
	require.Equal(t, "aGk=", v.EncodeToString([]byte("hi")))
}

func TestParseVariant(t *testing.T) {
	for _, v := range allVariants {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	v, err := ParseVariant(" Base64URL-NoPad ")
	require.NoError(t, err)
	require.Equal(t, Base64URLNoPad, v)

	_, err = ParseVariant("base58")
	require.ErrorIs(t, err, errUnknownVariant)
}

func TestVariantAccessors(t *testing.T) {
	for _, v := range allVariants {
		require.Equal(t, !strings.HasSuffix(v.String(), "-nopad") && v.Family() != FamilyHex, v.Padding(), v.String())
	}
	require.Equal(t, FamilyBase32Hex, Base32HexNoPad.Family())
	require.Equal(t, FamilyBase64URL, Base64URL.Family())

	for _, err := range []*Error{ErrInvalidLength, ErrInvalidSymbol, ErrInvalidPadding} {
		require.Equal(t, "rapidbase: "+err.Kind.String(), err.Error())
	}
}

func TestSetLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	l := zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))
	SetLogger(l)
	require.Same(t, l, Logger())

	SetLogger(nil)
	require.NotNil(t, Logger())
}

func TestSetLoggerConcurrent(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	loggers := []*zap.Logger{zap.NewNop(), zaptest.NewLogger(t)}
	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			for j := range 100 {
				if (i+j)%2 == 0 {
					SetLogger(loggers[j%2])
					continue
				}
				Logger().Debug("concurrent", zap.Int("worker", i))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Contains(t, loggers, Logger())
}

func TestCPUFeatures(t *testing.T) {
	// Only the shape is checked; the values depend on the machine.
	for name := range CPUFeatures() {
		require.NotEmpty(t, name)
	}
}

func TestVersion(t *testing.T) {
	require.Equal(t, "0.1.0", Version())
}

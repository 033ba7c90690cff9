package rapidbase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForgivingDecode(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\r\n\f", ""},
		{"unpadded", "aGVsbG8", "hello"},
		{"padded", "aGVsbG8=", "hello"},
		{"double padded", "YQ==", "a"},
		{"unpadded single", "YQ", "a"},
		{"whitespace", " aGVs\nbG8= ", "hello"},
		{"whitespace everywhere", "a G\tV\rs\nb\fG 8", "hello"},
		{"trailing bits discarded", "aGVsbG9", "hello"},
		{"trailing bits discarded padded", "YR==", "a"},
		{"long", strings.Repeat("Zm9vYmFy", 12) + "\n" + strings.Repeat("Zm9vYmFy", 12), strings.Repeat("foobar", 24)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := ForgivingDecodeString(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(out))
		})
	}
}

func TestForgivingDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"one symbol", "a", InvalidLength},
		{"five symbols", "aGVsb", InvalidLength},
		{"three pads", "a===", InvalidPadding},
		{"four pads", "====", InvalidPadding},
		{"pad not at end", "ab=c", InvalidPadding},
		{"pad inside input", "aGVsbG8=aa", InvalidPadding},
		{"one symbol over", "aGVsbG8=a", InvalidLength},
		{"odd pads", "===", InvalidPadding},
		{"url alphabet", "a-_b", InvalidSymbol},
		{"vertical tab", "aGVs\vbG8", InvalidSymbol},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ForgivingDecodeString(tc.input)
			require.Error(t, err)
			require.Equal(t, tc.kind, KindOf(err), "%v", err)
		})
	}
}

func TestForgivingDecodeInPlace(t *testing.T) {
	buf := []byte("  aGVs bG8g\r\nd29y bGQ=\n")
	out, err := ForgivingDecodeInPlace(buf)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(out))
	require.Same(t, &buf[0], &out[0])
}

func TestStripASCIIWhitespace(t *testing.T) {
	in := "abcdefgh ijklmnopqrstuvwx\ty\nz"
	require.Equal(t, "abcdefghijklmnopqrstuvwxyz", string(stripASCIIWhitespace([]byte(in))))

	clean := []byte("abcdefghijklmnopqrstuvwxyz0123456789")
	require.Equal(t, clean, stripASCIIWhitespace(clean))
}

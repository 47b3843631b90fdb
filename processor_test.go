package huff

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/icza/bitio"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func makeTestInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(1))

	random := make([]byte, 64*1024)
	rng.Read(random)

	skewed := make([]byte, 32*1024)
	for i := range skewed {
		skewed[i] = byte(rng.ExpFloat64() * 4)
	}

	all := make([]byte, 0, 2*NumLiterals)
	for i := 0; i < NumLiterals; i++ {
		all = append(all, byte(i), byte(NumLiterals-1-i))
	}

	return map[string][]byte{
		"empty":  {},
		"one":    {'A'},
		"AAAB":   []byte("AAAB"),
		"single": bytes.Repeat([]byte{'z'}, 1000),
		"zeros":  make([]byte, 100),
		"all":    all,
		"text":   []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)),
		"random": random,
		"skewed": skewed,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, input := range makeTestInputs() {
		input := input
		t.Run(name, func(t *testing.T) {
			compressed, err := CompressBytes(input)
			require.NoError(t, err)

			output, err := DecompressBytes(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(input, output), "round trip mismatch: %d bytes in, %d bytes out", len(input), len(output))

			again, err := CompressBytes(input)
			require.NoError(t, err)
			require.Equal(t, compressed, again)
		})
	}
}

func TestCompressBytes(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect []byte
	}

	testData := [...]testRow{
		{
			name:   "empty",
			input:  "",
			expect: []byte{0xfa, 0xce, 0x82, 0x01, 0xc0, 0x00},
		},
		{
			name:   "AAAB",
			input:  "AAAB",
			expect: []byte{0xfa, 0xce, 0x82, 0x01, 0x24, 0x2c, 0x02, 0x41, 0xe2},
		},
	}
	for _, row := range testData {
		row := row
		t.Run(row.name, func(t *testing.T) {
			actual, err := CompressBytes([]byte(row.input))
			require.NoError(t, err)
			require.Equal(t, row.expect, actual)
		})
	}
}

func TestDecompressBytes_Corrupt(t *testing.T) {
	for name, input := range makeTestInputs() {
		input := input
		t.Run(name, func(t *testing.T) {
			compressed, err := CompressBytes(input)
			require.NoError(t, err)

			badMagic := append([]byte(nil), compressed...)
			for i := 0; i < 4; i++ {
				badMagic[i] ^= 0xff
			}
			_, err = DecompressBytes(badMagic)
			require.ErrorIs(t, err, ErrFormat)

			// The final byte always holds the last bit of the EOF code,
			// or of the header when the body is empty.
			_, err = DecompressBytes(compressed[:len(compressed)-1])
			require.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestProcessor_Stats(t *testing.T) {
	var buf bytes.Buffer
	st, err := NewProcessor().CompressStream(&buf, strings.NewReader("AAAB"))
	require.NoError(t, err)
	require.Equal(t, Stats{InputBytes: 4, HeaderBits: 64, BodyBits: 7}, st)
	require.Equal(t, uint64(71), st.OutputBits())
	require.Equal(t, int64(9), st.OutputBytes())
	require.Equal(t, int64(buf.Len()), st.OutputBytes())
	require.InDelta(t, 2.25, st.Ratio(), 1e-9)

	st, err = NewProcessor().CompressStream(&buf, strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Stats{InputBytes: 0, HeaderBits: 42, BodyBits: 0}, st)
	require.Equal(t, 0.0, st.Ratio())
}

func TestProcessor_Decompress(t *testing.T) {
	compressed, err := CompressBytes([]byte("AAAB"))
	require.NoError(t, err)

	var out bytes.Buffer
	ow := bitio.NewWriter(&out)
	n, err := NewProcessor().Decompress(bitio.NewReader(bytes.NewReader(compressed)), ow)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.NoError(t, ow.Close())
	require.Equal(t, "AAAB", out.String())
}

func TestProcessor_RewindError(t *testing.T) {
	in := NewSeekableBitReader(failingSeeker{strings.NewReader("AAAB")})
	_, err := NewProcessor().Compress(in, &failingBitWriter{limit: 1000})

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "rewind input", ioErr.Op)
	require.ErrorIs(t, err, errTestIO)
}

func TestProcessor_DebugLogging(t *testing.T) {
	var logBuf bytes.Buffer
	backend := logging.AddModuleLevel(logging.NewLogBackend(&logBuf, "", 0))
	backend.SetLevel(logging.DEBUG, "")
	logger := logging.MustGetLogger("huff-test")
	logger.SetBackend(backend)
	logging.SetLevel(logging.DEBUG, "huff-test")

	p := NewProcessor(WithLogger(logger), WithDebugLevel(DebugHigh))

	var buf bytes.Buffer
	_, err := p.CompressStream(&buf, strings.NewReader("AAAB"))
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = p.DecompressStream(&out, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "AAAB", out.String())

	logged := logBuf.String()
	require.Contains(t, logged, "counted 4 bytes, 2 distinct")
	require.Contains(t, logged, "code table has 3 entries, code lengths 1 .. 2")
	require.Contains(t, logged, "Encode(EOF) = \"01\"")
	require.Contains(t, logged, "wrote 64 header bits, 7 body bits")
	require.Contains(t, logged, "read tree header with 3 leaves")
	require.Contains(t, logged, "decoded 4 bytes")

	logBuf.Reset()
	quiet := NewProcessor(WithLogger(logger))
	_, err = quiet.CompressStream(&bytes.Buffer{}, strings.NewReader("AAAB"))
	require.NoError(t, err)
	require.Empty(t, logBuf.String())
}

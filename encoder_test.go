package huff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {
	ft := makeTestFrequencies("AAAB")
	e := NewEncoder(NewCodeTable(BuildTree(&ft)))

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	cw := NewCountingBitWriter(bw)

	n, err := e.EncodeStream(cw, bitio.NewReader(strings.NewReader("AAAB")))
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, uint64(7), cw.BitsWritten())

	require.NoError(t, bw.Close())
	require.Equal(t, []byte{0xe2}, buf.Bytes())
}

func TestEncoder_Encode(t *testing.T) {
	ft := makeTestFrequencies("AAAB")
	e := NewEncoder(NewCodeTable(BuildTree(&ft)))

	cw := NewCountingBitWriter(bitio.NewWriter(&bytes.Buffer{}))
	require.NoError(t, e.Encode(cw, 'B'))
	require.Equal(t, uint64(2), cw.BitsWritten())

	require.Panics(t, func() { _ = e.Encode(cw, 'C') })
}

func TestEncoder_Empty(t *testing.T) {
	var ft FrequencyTable
	e := NewEncoder(NewCodeTable(BuildTree(&ft)))

	cw := NewCountingBitWriter(bitio.NewWriter(&bytes.Buffer{}))
	n, err := e.EncodeStream(cw, bitio.NewReader(bytes.NewReader(nil)))
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
	require.Equal(t, uint64(0), cw.BitsWritten())
}

func TestEncoder_LongCodes(t *testing.T) {
	ft := makeFibonacciFrequencies()
	root := BuildTree(&ft)
	e := NewEncoder(NewCodeTable(root))

	input := []byte{0, 88, 1, 0, 87}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	cw := NewCountingBitWriter(bw)
	n, err := e.EncodeStream(cw, bitio.NewReader(bytes.NewReader(input)))
	require.NoError(t, err)
	require.Equal(t, int64(len(input)), n)
	require.Equal(t, uint64(89+1+88+89+2+89), cw.BitsWritten())
	require.NoError(t, bw.Close())

	var out bytes.Buffer
	ow := bitio.NewWriter(&out)
	m, err := NewDecoder(root).DecodeStream(ow, bitio.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	require.Equal(t, n, m)
	require.NoError(t, ow.Close())
	require.Equal(t, input, out.Bytes())
}

func TestEncoder_Errors(t *testing.T) {
	ft := makeTestFrequencies("AAAB")
	e := NewEncoder(NewCodeTable(BuildTree(&ft)))

	_, err := e.EncodeStream(NewCountingBitWriter(&failingBitWriter{limit: 1000}), failingBitReader{})
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "read input", ioErr.Op)

	_, err = e.EncodeStream(&failingBitWriter{limit: 2}, bitio.NewReader(strings.NewReader("AAAB")))
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "write body", ioErr.Op)
	require.ErrorIs(t, err, errTestIO)
}

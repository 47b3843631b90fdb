package huff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), `""`},
		{MakeCode(1, 0), `"0"`},
		{MakeCode(1, 1), `"1"`},
		{MakeCode(3, 0x5), `"101"`},
		{MakeCode(4, 0x3), `"0011"`},
		{MakeCode(2, 0xff), `"11"`},
	}
	for _, row := range testData {
		actual := row.hc.String()
		if row.expect != actual {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	var expect strings.Builder
	for i := 0; i < 150; i++ {
		bit := uint(i%3) & 1
		hc = hc.Append(bit)
		expect.WriteByte('0' + byte(bit))
	}

	require.Equal(t, uint16(150), hc.Size)
	require.Equal(t, `"`+expect.String()+`"`, hc.String())
	for i := uint16(0); i < hc.Size; i++ {
		require.Equal(t, uint(i%3)&1, hc.Bit(i), "bit %d", i)
	}
}

func TestCode_Uint64(t *testing.T) {
	require.Equal(t, uint64(0), MakeCode(0, 0).Uint64())
	require.Equal(t, uint64(0x5), MakeCode(3, 0x5).Uint64())
	require.Equal(t, uint64(0xdeadbeefcafef00d), MakeCode(64, 0xdeadbeefcafef00d).Uint64())

	hc := Code{}.Append(1).Append(0).Append(1).Append(1)
	require.Equal(t, MakeCode(4, 0xb), hc)
}

func TestCode_MaxLength(t *testing.T) {
	var hc Code
	for i := 0; i < maxBitsPerCode; i++ {
		hc = hc.Append(1)
	}
	require.Equal(t, uint16(maxBitsPerCode), hc.Size)
	require.Panics(t, func() { hc.Append(0) })
}

func TestCode_writeTo(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		require.NoError(t, MakeCode(3, 0x5).writeTo(bw))
		require.NoError(t, bw.Close())
		require.Equal(t, []byte{0xa0}, buf.Bytes())
	})

	t.Run("empty", func(t *testing.T) {
		cw := NewCountingBitWriter(bitio.NewWriter(&bytes.Buffer{}))
		require.NoError(t, Code{}.writeTo(cw))
		require.Equal(t, uint64(0), cw.BitsWritten())
	})

	t.Run("spans words", func(t *testing.T) {
		var hc Code
		for i := 0; i < 64; i++ {
			hc = hc.Append(0)
		}
		for i := 0; i < 12; i++ {
			hc = hc.Append(1)
		}

		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		require.NoError(t, hc.writeTo(bw))
		require.NoError(t, bw.Close())

		expect := append(make([]byte, 8), 0xff, 0xf0)
		require.Equal(t, expect, buf.Bytes())
	})
}

package huff

import (
	"io"

	"github.com/icza/bitio"
)

// BitReader reads fixed-width groups of bits, first bit most significant.
// When the underlying byte source is exhausted, ReadBits returns io.EOF (or
// io.ErrUnexpectedEOF if the source ended partway through a group).
//
// *bitio.Reader implements BitReader.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter writes the n low bits of r, most significant first.
//
// *bitio.Writer implements BitWriter.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

// Rewinder resets a readable stream to its start.
type Rewinder interface {
	Rewind() error
}

// RewindableBitReader is a BitReader that can be read more than once.
// Compression needs one: the input is read once to count symbols and again to
// encode them.
type RewindableBitReader interface {
	BitReader
	Rewinder
}

var (
	_ BitReader           = (*bitio.Reader)(nil)
	_ BitWriter           = (*bitio.Writer)(nil)
	_ RewindableBitReader = (*SeekableBitReader)(nil)
	_ BitWriter           = (*CountingBitWriter)(nil)
)

// SeekableBitReader is a RewindableBitReader over an io.ReadSeeker.
type SeekableBitReader struct {
	src  io.ReadSeeker
	br   *bitio.Reader
	bits uint64
}

// NewSeekableBitReader returns a SeekableBitReader that reads from src.  src
// must be positioned at its start, since Rewind returns there.
func NewSeekableBitReader(src io.ReadSeeker) *SeekableBitReader {
	return &SeekableBitReader{src: src, br: bitio.NewReader(src)}
}

// ReadBits fulfills BitReader.
func (r *SeekableBitReader) ReadBits(n uint8) (uint64, error) {
	u, err := r.br.ReadBits(n)
	if err == nil {
		r.bits += uint64(n)
	}
	return u, err
}

// Rewind seeks the underlying source back to offset 0 and discards any bits
// buffered from the previous pass.
func (r *SeekableBitReader) Rewind() error {
	if _, err := r.src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.br = bitio.NewReader(r.src)
	r.bits = 0
	return nil
}

// BitsRead returns the number of bits read since construction or the last
// Rewind.
func (r *SeekableBitReader) BitsRead() uint64 {
	return r.bits
}

// CountingBitWriter passes bits through to another BitWriter, keeping count.
type CountingBitWriter struct {
	w    BitWriter
	bits uint64
}

// NewCountingBitWriter wraps w.
func NewCountingBitWriter(w BitWriter) *CountingBitWriter {
	return &CountingBitWriter{w: w}
}

// WriteBits fulfills BitWriter.
func (c *CountingBitWriter) WriteBits(r uint64, n uint8) error {
	err := c.w.WriteBits(r, n)
	if err == nil {
		c.bits += uint64(n)
	}
	return err
}

// BitsWritten returns the number of bits successfully written.
func (c *CountingBitWriter) BitsWritten() uint64 {
	return c.bits
}

package huff

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("huff")

// Debug levels for WithDebugLevel.  At DebugLow the Processor logs one line
// per stage; at DebugHigh it also dumps the frequency table, the tree, and
// the code table.  Nothing is logged unless the logger is enabled for DEBUG.
const (
	DebugNone = 0
	DebugLow  = 1
	DebugHigh = 4
)

// Processor compresses and decompresses byte streams.  The zero value is not
// usable; call NewProcessor.
type Processor struct {
	debugLevel int
	log        *logging.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithDebugLevel sets how much the Processor logs.
func WithDebugLevel(level int) Option {
	return func(p *Processor) {
		p.debugLevel = level
	}
}

// WithLogger replaces the package logger.
func WithLogger(logger *logging.Logger) Option {
	return func(p *Processor) {
		p.log = logger
	}
}

// NewProcessor returns a Processor configured by opts.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{log: log}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats reports the sizes involved in one compression.
type Stats struct {
	InputBytes int64
	HeaderBits uint64
	BodyBits   uint64
}

// OutputBits is the number of bits written, before padding to a whole byte.
func (s Stats) OutputBits() uint64 {
	return s.HeaderBits + s.BodyBits
}

// OutputBytes is the number of bytes written, after padding.
func (s Stats) OutputBytes() int64 {
	return int64((s.OutputBits() + 7) / 8)
}

// Ratio returns OutputBytes / InputBytes, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes()) / float64(s.InputBytes)
}

// Compress reads in twice (once to count symbols, then again after Rewind to
// encode them) and writes the tree header followed by the encoded body to
// out.  The final partial byte, if any, is left for out to pad.
func (p *Processor) Compress(in RewindableBitReader, out BitWriter) (Stats, error) {
	var st Stats

	ft, err := CountFrequencies(in)
	if err != nil {
		return st, err
	}
	st.InputBytes = int64(ft.Total())
	p.debugf(DebugLow, "counted %d bytes, %d distinct", st.InputBytes, ft.Distinct())
	p.dump(DebugHigh, &ft)

	root := BuildTree(&ft)
	p.dump(DebugHigh, root)

	table := NewCodeTable(root)
	p.debugf(DebugLow, "code table has %d entries, code lengths %d .. %d", table.Len(), table.MinSize(), table.MaxSize())
	p.dump(DebugHigh, table)

	cw := NewCountingBitWriter(out)
	if err := WriteHeader(cw, root); err != nil {
		return st, err
	}
	st.HeaderBits = cw.BitsWritten()

	if err := in.Rewind(); err != nil {
		return st, &IOError{Op: "rewind input", Err: errors.WithStack(err)}
	}

	if _, err := NewEncoder(table).EncodeStream(cw, in); err != nil {
		return st, err
	}
	st.BodyBits = cw.BitsWritten() - st.HeaderBits
	p.debugf(DebugLow, "wrote %d header bits, %d body bits", st.HeaderBits, st.BodyBits)
	return st, nil
}

// Decompress reads a tree header and then the encoded body from in, writing
// the decoded bytes to out.  It returns the number of bytes written.
//
// Bytes written before a failure are not a valid prefix of anything; callers
// must discard the output of a failed call.
func (p *Processor) Decompress(in BitReader, out BitWriter) (int64, error) {
	root, err := ReadHeader(in)
	if err != nil {
		return 0, err
	}
	p.debugf(DebugLow, "read tree header with %d leaves", len(root.Leaves()))
	p.dump(DebugHigh, root)

	n, err := NewDecoder(root).DecodeStream(out, in)
	if err != nil {
		return n, err
	}
	p.debugf(DebugLow, "decoded %d bytes", n)
	return n, nil
}

// CompressStream compresses src into dst.  src must be positioned at its
// start.
func (p *Processor) CompressStream(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	bw := bitio.NewWriter(dst)
	st, err := p.Compress(NewSeekableBitReader(src), bw)
	if err != nil {
		return st, err
	}
	if err := bw.Close(); err != nil {
		return st, writeError("flush", err)
	}
	return st, nil
}

// DecompressStream decompresses src into dst.
func (p *Processor) DecompressStream(dst io.Writer, src io.Reader) (int64, error) {
	bw := bitio.NewWriter(dst)
	n, err := p.Decompress(bitio.NewReader(src), bw)
	if err != nil {
		return n, err
	}
	if err := bw.Close(); err != nil {
		return n, writeError("flush", err)
	}
	return n, nil
}

type dumper interface {
	Dump(w io.Writer) (int64, error)
}

func (p *Processor) debugf(level int, format string, args ...interface{}) {
	if p.debugLevel >= level && p.log.IsEnabledFor(logging.DEBUG) {
		p.log.Debugf(format, args...)
	}
}

func (p *Processor) dump(level int, d dumper) {
	if p.debugLevel >= level && p.log.IsEnabledFor(logging.DEBUG) {
		var buf bytes.Buffer
		_, _ = d.Dump(&buf)
		p.log.Debug(buf.String())
	}
}

var defaultProcessor = NewProcessor()

// Compress compresses src into dst with a default Processor.
func Compress(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	return defaultProcessor.CompressStream(dst, src)
}

// Decompress decompresses src into dst with a default Processor.
func Decompress(dst io.Writer, src io.Reader) (int64, error) {
	return defaultProcessor.DecompressStream(dst, src)
}

// CompressBytes returns the compressed form of data.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes returns the original bytes of a stream produced by
// CompressBytes or Compress.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

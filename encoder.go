package huff

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder writes the body of a compressed stream: one code per input byte,
// followed by the code for EOF.
type Encoder struct {
	table *CodeTable
	eof   Code
}

// NewEncoder returns an Encoder for the given table.  The table must have an
// EOF entry, which every table built from BuildTree does.
func NewEncoder(table *CodeTable) *Encoder {
	eof, ok := table.Lookup(EOF)
	assert.Assertf(ok, "code table has no entry for EOF")
	return &Encoder{table: table, eof: eof}
}

// Encode writes the code for sym to w, most significant bit first.
func (e *Encoder) Encode(w BitWriter, sym Symbol) error {
	hc, ok := e.table.Lookup(sym)
	assert.Assertf(ok, "code table has no entry for symbol %d", int32(sym))
	return hc.writeTo(w)
}

// EncodeStream reads 8-bit groups from r until it reports end-of-stream,
// writing the code for each to w, and then writes the code for EOF.  It
// returns the number of bytes encoded.
//
// Every byte read must have an entry in the table, which holds as long as r
// yields the same bytes that were counted to build it.
//
func (e *Encoder) EncodeStream(w BitWriter, r BitReader) (int64, error) {
	var n int64
	for {
		u, err := r.ReadBits(BitsPerWord)
		if isEOF(err) {
			break
		}
		if err != nil {
			return n, &IOError{Op: "read input", Err: errors.WithStack(err)}
		}
		if err := e.Encode(w, Symbol(u)); err != nil {
			return n, writeError("body", err)
		}
		n++
	}

	// For the single-leaf tree of an empty input the EOF code is empty, so
	// nothing at all is written here.
	if err := e.eof.writeTo(w); err != nil {
		return n, writeError("body", err)
	}
	return n, nil
}

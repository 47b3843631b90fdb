package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// FrequencyTable holds the number of occurrences of each literal byte value.
// EOF is never counted here; BuildTree adds it.
type FrequencyTable [NumLiterals]uint64

// CountFrequencies reads 8-bit groups from r until it reports end-of-stream,
// counting each one.  The stream is left fully consumed.
func CountFrequencies(r BitReader) (FrequencyTable, error) {
	var ft FrequencyTable
	for {
		u, err := r.ReadBits(BitsPerWord)
		if isEOF(err) {
			return ft, nil
		}
		if err != nil {
			return ft, &IOError{Op: "count frequencies", Err: errors.WithStack(err)}
		}
		ft[u]++
	}
}

// Add counts one occurrence of b.
func (ft *FrequencyTable) Add(b byte) {
	ft[b]++
}

// Total returns the number of bytes counted.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum = saturatingAdd(sum, count)
	}
	return sum
}

// Distinct returns the number of byte values with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the non-zero counts to
// the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for b, count := range ft {
		if count != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", b, count)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

package baseline

import (
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrRoundTrip is returned by Measure when decompression does not reproduce
// the original payload.
var ErrRoundTrip = errors.New("round trip mismatch")

// Result describes one Codec's run over one payload.
type Result struct {
	// Codec is the Name of the Codec measured.
	Codec string

	// OriginalSize is the size of the payload before compression.
	OriginalSize int64

	// CompressedSize is the size of the payload after compression.
	CompressedSize int64

	// Checksum is the xxHash64 digest of the payload.  The decompressed
	// output is checked against it.
	Checksum uint64

	CompressTime   time.Duration
	DecompressTime time.Duration
}

// Ratio returns CompressedSize / OriginalSize, or 0 if the payload was empty.
func (r Result) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0.0
	}

	return float64(r.CompressedSize) / float64(r.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.  It is negative when
// the compressed form is larger than the original.
func (r Result) SpaceSavings() float64 {
	if r.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - r.Ratio()) * 100.0
}

// Measure compresses data with codec, decompresses the result, and verifies
// that the xxHash64 digest of the output matches that of data.
func Measure(codec Codec, data []byte) (Result, error) {
	res := Result{
		Codec:        codec.Name(),
		OriginalSize: int64(len(data)),
		Checksum:     xxhash.Sum64(data),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return res, fmt.Errorf("%s compression failed: %w", res.Codec, err)
	}
	res.CompressTime = time.Since(start)
	res.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return res, fmt.Errorf("%s decompression failed: %w", res.Codec, err)
	}
	res.DecompressTime = time.Since(start)

	if sum := xxhash.Sum64(restored); sum != res.Checksum || len(restored) != len(data) {
		return res, fmt.Errorf("%w: %s: got xxhash %016x over %d bytes, want %016x over %d bytes",
			ErrRoundTrip, res.Codec, sum, len(restored), res.Checksum, len(data))
	}

	return res, nil
}

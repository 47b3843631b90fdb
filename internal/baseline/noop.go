package baseline

// NoOpCodec passes data through unchanged.  It gives the "no compression"
// row of a comparison.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new no-op codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Name implements Codec.
func (c NoOpCodec) Name() string {
	return "none"
}

// Compress returns data itself, without copying.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, without copying.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

package baseline

// ZstdCodec wraps Zstandard compression.
//
// The pure-Go klauspost/compress implementation is used by default.  Building
// with cgo and the gozstd tag switches to the libzstd bindings.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Name implements Codec.
func (c ZstdCodec) Name() string {
	return "zstd"
}

package baseline

import "fmt"

// Codec compresses and decompresses whole payloads.
//
// Returned slices are newly allocated and owned by the caller, except where
// an implementation documents otherwise.
type Codec interface {
	// Name identifies the algorithm, e.g. "huffman" or "zstd".
	Name() string

	// Compress compresses data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress.
	Decompress(data []byte) ([]byte, error)
}

// All returns one of each built-in Codec, Huffman first.
func All() []Codec {
	return []Codec{
		NewHuffmanCodec(),
		NewNoOpCodec(),
		NewZstdCodec(),
		NewS2Codec(),
		NewLZ4Codec(),
	}
}

// Lookup returns the built-in Codec with the given name.
func Lookup(name string) (Codec, error) {
	for _, codec := range All() {
		if codec.Name() == name {
			return codec, nil
		}
	}

	return nil, fmt.Errorf("unsupported codec: %q", name)
}

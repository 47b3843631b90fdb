package baseline

import "github.com/chronos-tachyon/huff"

// HuffmanCodec adapts this module's two-pass Huffman compressor.
type HuffmanCodec struct{}

var _ Codec = (*HuffmanCodec)(nil)

// NewHuffmanCodec creates a new Huffman codec.
func NewHuffmanCodec() HuffmanCodec {
	return HuffmanCodec{}
}

// Name implements Codec.
func (c HuffmanCodec) Name() string {
	return "huffman"
}

// Compress compresses data into the tree-header format.
func (c HuffmanCodec) Compress(data []byte) ([]byte, error) {
	return huff.CompressBytes(data)
}

// Decompress decompresses a tree-header stream.
func (c HuffmanCodec) Decompress(data []byte) ([]byte, error) {
	return huff.DecompressBytes(data)
}

// Package huff implements lossless two-pass Huffman compression of byte
// streams.
//
// A compressed stream is bit-packed, most significant bit first:
//
//     32 bits   TreeMagic (0xface8201)
//     header    the Huffman tree in preorder: 0 for an internal node followed
//               by its left and right subtrees, or 1 for a leaf followed by
//               its 9-bit symbol
//     body      the code of each input byte, then the code of EOF
//
// The last byte is padded with zero bits.  Symbols 0..255 are literal bytes;
// symbol 256 (EOF) marks the end of the body, so no length is stored.  An
// empty input compresses to a header whose tree is a single EOF leaf and an
// empty body.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huff

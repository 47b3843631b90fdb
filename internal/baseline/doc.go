// Package baseline measures this module's Huffman compressor side by side
// with general-purpose compressors.
//
// Each algorithm is wrapped in a Codec.  Measure compresses a payload,
// decompresses it again, and checks the result against an xxHash64 digest
// of the original, reporting sizes and timings:
//
//	for _, codec := range baseline.All() {
//	    res, err := baseline.Measure(codec, data)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%-8s %6.2f%%\n", res.Codec, res.SpaceSavings())
//	}
package baseline

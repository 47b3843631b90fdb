package huff

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// saturatingAdd returns a+b, or math.MaxUint64 if the sum overflows.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}

// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package chilow

import "math/bits"

// rotr rotates the low width bits of x right by shift. Bits at or above
// width in the result are zero. shift must be in 0..width-1.
func rotr(x uint64, shift, width int) uint64 {
	mask := uint64(1)<<width - 1
	x &= mask
	return (x>>shift | x<<(width-shift)) & mask
}

// parity returns the XOR of all bits of x.
func parity(x uint64) uint64 {
	return uint64(bits.OnesCount64(x)) & 1
}

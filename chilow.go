// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package chilow implements the ChiLow tweakable low-latency block cipher
// in its two parameterizations: ChiLow-(32+tau), which decrypts a 32-bit
// ciphertext into a 32-bit plaintext plus a 32-bit authentication tag, and
// ChiLow-40, which decrypts a 40-bit ciphertext.
//
// The published primitive is decryption-only. A call is a bounded, pure
// computation over four lanes (data, optional tag, tweak, key) built from
// the chi/chichi nonlinear layers, sparse GF(2) linear layers and cross-lane
// XOR couplings. All entry points are safe for concurrent use.
package chilow

import "sync"

// NumRounds is the full round count of both ChiLow variants.
const NumRounds = 8

// Bit masks for the lane and ring widths used by the cipher.
const (
	mask15 = 0x7FFF
	mask17 = 0x1FFFF
	mask19 = 0x7FFFF
	mask21 = 0x1FFFFF
	mask31 = 0x7FFFFFFF
	mask32 = 0xFFFFFFFF
	mask33 = 0x1FFFFFFFF
	mask40 = 0xFFFFFFFFFF
	mask63 = 0x7FFFFFFFFFFFFFFF
)

// roundConstants32 are XORed into the high key word at the start of each
// non-final round of ChiLow-(32+tau).
var roundConstants32 = [NumRounds]uint64{
	0x0000001000000000, 0x0000002100000000, 0x0000004200000000, 0x0000008300000000,
	0x0000010400000000, 0x0000020500000000, 0x0000040600000000, 0x0000080700000000,
}

// roundConstants40 is the ChiLow-40 table: the same constants with the top
// bit set. Both tables are published as-is; neither is derived from the
// other.
var roundConstants40 = [NumRounds]uint64{
	0x8000001000000000, 0x8000002100000000, 0x8000004200000000, 0x8000008300000000,
	0x8000010400000000, 0x8000020500000000, 0x8000040600000000, 0x8000080700000000,
}

// uint128 is a 128-bit word kept as two 64-bit halves, value = hi<<64 | lo.
// The key lane is carried in this form throughout so that no 128-bit
// integer primitive is needed.
type uint128 struct {
	lo, hi uint64
}

var initOnce sync.Once

// Init builds the five linear-layer matrices. It is idempotent and safe for
// concurrent use. Every entry point calls it, so explicit initialization is
// optional; it is exposed for callers that want the one-time cost up front.
func Init() {
	initOnce.Do(buildMatrices)
}

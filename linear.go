// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package chilow

// linearParams are the (alpha, beta) triples generating one linear-layer
// matrix: row i has a bit at column (alpha[k]*i + beta[k]) mod width for
// k in 0..2. When two of the three columns collide the bits merge and the
// row weight drops below 3; the construction is kept as published, with
// no compensation.
type linearParams struct {
	alpha [3]int
	beta  [3]int
}

var (
	paramsState32 = linearParams{[3]int{11, 11, 11}, [3]int{5, 9, 12}}
	paramsPrf32   = linearParams{[3]int{11, 11, 11}, [3]int{1, 26, 30}}
	paramsState40 = linearParams{[3]int{17, 17, 17}, [3]int{1, 9, 30}}
	paramsTweak64 = linearParams{[3]int{3, 3, 3}, [3]int{1, 26, 50}}
	paramsKey128  = linearParams{[3]int{17, 17, 17}, [3]int{7, 11, 14}}
)

// The five matrices, one packed row per word. Built once by Init and
// read-only afterwards.
var (
	matState32 [32]uint32
	matPrf32   [32]uint32
	matState40 [40]uint64
	matTweak64 [64]uint64
	matKey128  [128]uint128
)

func buildMatrices() {
	generateMatrix32(&matState32, paramsState32)
	generateMatrix32(&matPrf32, paramsPrf32)
	generateMatrix64(matState40[:], paramsState40)
	generateMatrix64(matTweak64[:], paramsTweak64)
	generateMatrix128(&matKey128, paramsKey128)
}

func generateMatrix32(m *[32]uint32, p linearParams) {
	for row := range m {
		var bits uint32
		for k := 0; k < 3; k++ {
			bits |= 1 << ((p.alpha[k]*row + p.beta[k]) % 32)
		}
		m[row] = bits
	}
}

// generateMatrix64 fills a width-by-width matrix for width up to 64; the
// width is the row count.
func generateMatrix64(m []uint64, p linearParams) {
	width := len(m)
	for row := range m {
		var bits uint64
		for k := 0; k < 3; k++ {
			bits |= 1 << ((p.alpha[k]*row + p.beta[k]) % width)
		}
		m[row] = bits
	}
}

// generateMatrix128 stores each row as a two-word record: column c sets
// bit c of lo when c < 64, otherwise bit c-64 of hi.
func generateMatrix128(m *[128]uint128, p linearParams) {
	for row := range m {
		var bits uint128
		for k := 0; k < 3; k++ {
			col := (p.alpha[k]*row + p.beta[k]) % 128
			if col < 64 {
				bits.lo |= 1 << col
			} else {
				bits.hi |= 1 << (col - 64)
			}
		}
		m[row] = bits
	}
}

// applyLinear32 computes y = M*x over GF(2): bit i of y is the parity of
// row i AND x.
func applyLinear32(x uint32, m *[32]uint32) uint32 {
	var y uint32
	for i, row := range m {
		y |= uint32(parity(uint64(row&x))) << i
	}
	return y
}

// applyLinear64 is the matrix-vector product for the 40- and 64-bit
// matrices. Rows only carry bits below the matrix width, so input bits
// above it cannot contribute.
func applyLinear64(x uint64, m []uint64) uint64 {
	var y uint64
	for i, row := range m {
		y |= parity(row&x) << i
	}
	return y
}

// applyLinear128 takes the row parity as the XOR of the two per-word
// partial parities.
func applyLinear128(x uint128, m *[128]uint128) uint128 {
	var y uint128
	for i := 0; i < 64; i++ {
		y.lo |= (parity(m[i].lo&x.lo) ^ parity(m[i].hi&x.hi)) << i
	}
	for i := 64; i < 128; i++ {
		y.hi |= (parity(m[i].lo&x.lo) ^ parity(m[i].hi&x.hi)) << (i - 64)
	}
	return y
}

// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package chilow

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/luxfi/lattice/v6/utils/sampling"
	"github.com/stretchr/testify/require"
)

// testPRNG returns a keyed PRNG so randomized tests are reproducible.
func testPRNG(t testing.TB) io.Reader {
	t.Helper()
	prng, err := sampling.NewKeyedPRNG([]byte("chilow-test"))
	require.NoError(t, err, "create keyed PRNG")
	return prng
}

// nextUint64 draws one word from the test PRNG.
func nextUint64(t testing.TB, r io.Reader) uint64 {
	t.Helper()
	var buf [8]byte
	_, err := io.ReadFull(r, buf[:])
	require.NoError(t, err, "read PRNG")
	return binary.LittleEndian.Uint64(buf[:])
}

// The specification test-vector inputs (Tables 6 and 7).
const (
	tvCiphertext32 = 0x01234567
	tvCiphertext40 = 0x317C83E4A7
	tvTweak        = 0x0011223344556677
	tvKeyHi        = 0xFEDCBA9876543210
	tvKeyLo        = 0x7766554433221100
)

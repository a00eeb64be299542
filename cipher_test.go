// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package chilow

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecrypt32Vector(t *testing.T) {
	got := Decrypt32(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo)
	require.Equal(t, uint64(0x0FBC7E642E75D127), got, "ChiLow-(32+tau) specification vector (Table 6)")
}

func TestDecrypt40Vector(t *testing.T) {
	got := Decrypt40(tvCiphertext40, tvTweak, tvKeyHi, tvKeyLo)
	require.Equal(t, uint64(0x0090545706), got, "ChiLow-40 specification vector (Table 7)")
}

func TestReducedAtFullRoundsMatchesFull(t *testing.T) {
	prng := testPRNG(t)

	for i := 0; i < 50; i++ {
		c32 := uint32(nextUint64(t, prng))
		c40 := nextUint64(t, prng) & mask40
		tweak := nextUint64(t, prng)
		keyHi := nextUint64(t, prng)
		keyLo := nextUint64(t, prng)

		require.Equal(t, Decrypt32(c32, tweak, keyHi, keyLo),
			Decrypt32Reduced(c32, tweak, keyHi, keyLo, NumRounds), "32+tau reduced at R=8")
		require.Equal(t, Decrypt40(c40, tweak, keyHi, keyLo),
			Decrypt40Reduced(c40, tweak, keyHi, keyLo, NumRounds), "40-bit reduced at R=8")
	}
}

func TestRoundCountClamping(t *testing.T) {
	for _, rounds := range []int{-3, 0} {
		require.Equal(t, Decrypt32Reduced(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo, 1),
			Decrypt32Reduced(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo, rounds), "R=%d clamps to 1", rounds)
	}
	for _, rounds := range []int{9, 100} {
		require.Equal(t, Decrypt32(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo),
			Decrypt32Reduced(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo, rounds), "R=%d clamps to 8", rounds)
		require.Equal(t, Decrypt40(tvCiphertext40, tvTweak, tvKeyHi, tvKeyLo),
			Decrypt40Reduced(tvCiphertext40, tvTweak, tvKeyHi, tvKeyLo, rounds), "R=%d clamps to 8", rounds)
	}
}

func TestDecrypt40OutputWidth(t *testing.T) {
	prng := testPRNG(t)

	for i := 0; i < 100; i++ {
		// Ciphertext deliberately carries bits above 39; they must be
		// masked, and the output must stay within 40 bits.
		c := nextUint64(t, prng)
		got := Decrypt40(c, nextUint64(t, prng), nextUint64(t, prng), nextUint64(t, prng))
		require.Zero(t, got>>40, "bits 40..63 of the output must be zero")
	}
}

func TestDecrypt40MasksCiphertext(t *testing.T) {
	prng := testPRNG(t)

	for i := 0; i < 50; i++ {
		c := nextUint64(t, prng)
		tweak := nextUint64(t, prng)
		keyHi := nextUint64(t, prng)
		keyLo := nextUint64(t, prng)
		require.Equal(t, Decrypt40(c&mask40, tweak, keyHi, keyLo), Decrypt40(c, tweak, keyHi, keyLo),
			"ciphertext bits above 39 must be ignored")
	}
}

// The half-reduced rounds differ from the reduced rounds only in the final
// linear step on the tweak. The tweak lane never depends on the data
// lanes, so for a fixed tweak, key and round count the XOR difference of
// the two outputs is one constant across all ciphertexts.
func TestHalfReducedDiffersByTweakConstant(t *testing.T) {
	prng := testPRNG(t)

	for rounds := 1; rounds <= NumRounds; rounds++ {
		tweak := nextUint64(t, prng)
		keyHi := nextUint64(t, prng)
		keyLo := nextUint64(t, prng)

		c0 := uint32(nextUint64(t, prng))
		delta32 := Decrypt32Reduced(c0, tweak, keyHi, keyLo, rounds) ^
			Decrypt32HalfReduced(c0, tweak, keyHi, keyLo, rounds)

		d0 := nextUint64(t, prng) & mask40
		delta40 := Decrypt40Reduced(d0, tweak, keyHi, keyLo, rounds) ^
			Decrypt40HalfReduced(d0, tweak, keyHi, keyLo, rounds)

		for i := 0; i < 20; i++ {
			c := uint32(nextUint64(t, prng))
			require.Equal(t, delta32,
				Decrypt32Reduced(c, tweak, keyHi, keyLo, rounds)^
					Decrypt32HalfReduced(c, tweak, keyHi, keyLo, rounds),
				"32+tau delta at R=%d must not depend on the ciphertext", rounds)

			d := nextUint64(t, prng) & mask40
			require.Equal(t, delta40,
				Decrypt40Reduced(d, tweak, keyHi, keyLo, rounds)^
					Decrypt40HalfReduced(d, tweak, keyHi, keyLo, rounds),
				"40-bit delta at R=%d must not depend on the ciphertext", rounds)
		}
	}
}

func TestConcurrentDecrypt(t *testing.T) {
	// Entry points share only the once-initialized matrices; concurrent
	// first use must be safe.
	want := Decrypt32(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo)

	var wg sync.WaitGroup
	results := make([]uint64, 16)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			var r uint64
			for i := 0; i < 200; i++ {
				r = Decrypt32(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo)
			}
			results[g] = r
		}(g)
	}
	wg.Wait()

	for g, r := range results {
		require.Equal(t, want, r, "goroutine %d", g)
	}
}

var benchSink uint64

func BenchmarkDecrypt32(b *testing.B) {
	Init()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = Decrypt32(tvCiphertext32, tvTweak, tvKeyHi, tvKeyLo)
	}
}

func BenchmarkDecrypt40(b *testing.B) {
	Init()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = Decrypt40(tvCiphertext40, tvTweak, tvKeyHi, tvKeyLo)
	}
}

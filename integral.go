// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package chilow

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Variant selects one of the two ChiLow parameterizations.
type Variant int

const (
	// Variant32 is ChiLow-(32+tau): 32-bit data lane plus 32-bit tag.
	Variant32 Variant = iota
	// Variant40 is ChiLow-40: 40-bit data lane, no tag.
	Variant40
)

func (v Variant) String() string {
	switch v {
	case Variant32:
		return "ChiLow-(32+tau)"
	case Variant40:
		return "ChiLow-40"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ciphertextBits is the width of the active-bit window.
func (v Variant) ciphertextBits() int {
	if v == Variant40 {
		return 40
	}
	return 32
}

// outputBits is the width of the packed decryption output.
func (v Variant) outputBits() int {
	if v == Variant40 {
		return 40
	}
	return 64
}

// maxActive bounds an input set to 2^20 cipher evaluations per repetition.
const maxActive = 20

// Experiment describes one integral-distinguisher run. For each repetition
// the fixed parts (ciphertext, tweak, key) are drawn at random, the cipher
// is evaluated on every pattern of the active ciphertext bits, and the
// outputs are XOR-summed. A repetition succeeds when every bit listed in
// Balanced is zero in the sum.
type Experiment struct {
	Variant  Variant
	Rounds   int   // 1..NumRounds
	Active   []int // active ciphertext bit positions
	Balanced []int // output bit positions expected to be balanced

	// HalfReduced drives the half-reduced entry points, probing the state
	// before the final tweak linear layer.
	HalfReduced bool
}

// Result reports the outcome of an Experiment.
type Result struct {
	Sums      []uint64 // XOR sum per repetition
	Successes int      // repetitions with every watched bit balanced
}

func (e *Experiment) validate() error {
	if e.Rounds < 1 || e.Rounds > NumRounds {
		return fmt.Errorf("chilow: rounds %d outside 1..%d", e.Rounds, NumRounds)
	}
	if len(e.Active) == 0 {
		return fmt.Errorf("chilow: no active bit positions")
	}
	if len(e.Active) > maxActive {
		return fmt.Errorf("chilow: %d active bits exceeds the limit of %d", len(e.Active), maxActive)
	}
	if len(e.Balanced) == 0 {
		return fmt.Errorf("chilow: no balanced bit positions to watch")
	}
	for _, pos := range e.Active {
		if pos < 0 || pos >= e.Variant.ciphertextBits() {
			return fmt.Errorf("chilow: active bit %d outside the %d-bit ciphertext", pos, e.Variant.ciphertextBits())
		}
	}
	for _, pos := range e.Balanced {
		if pos < 0 || pos >= e.Variant.outputBits() {
			return fmt.Errorf("chilow: balanced bit %d outside the %d-bit output", pos, e.Variant.outputBits())
		}
	}
	return nil
}

func (e *Experiment) evalOne(c, tweak, keyHi, keyLo uint64) uint64 {
	switch {
	case e.Variant == Variant40 && e.HalfReduced:
		return Decrypt40HalfReduced(c, tweak, keyHi, keyLo, e.Rounds)
	case e.Variant == Variant40:
		return Decrypt40Reduced(c, tweak, keyHi, keyLo, e.Rounds)
	case e.HalfReduced:
		return Decrypt32HalfReduced(uint32(c), tweak, keyHi, keyLo, e.Rounds)
	default:
		return Decrypt32Reduced(uint32(c), tweak, keyHi, keyLo, e.Rounds)
	}
}

// Run executes the experiment over repetitions random choices of the fixed
// parts, drawn from prng.
func (e *Experiment) Run(repetitions int, prng io.Reader) (*Result, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	if repetitions < 1 {
		return nil, fmt.Errorf("chilow: repetitions must be at least 1")
	}

	ctMask := uint64(1)<<e.Variant.ciphertextBits() - 1

	res := &Result{Sums: make([]uint64, 0, repetitions)}
	for rep := 0; rep < repetitions; rep++ {
		base, err := randUint64(prng)
		if err != nil {
			return nil, err
		}
		tweak, err := randUint64(prng)
		if err != nil {
			return nil, err
		}
		keyHi, err := randUint64(prng)
		if err != nil {
			return nil, err
		}
		keyLo, err := randUint64(prng)
		if err != nil {
			return nil, err
		}

		base &= ctMask
		for _, pos := range e.Active {
			base &^= 1 << pos
		}

		var sum uint64
		for pattern := 0; pattern < 1<<len(e.Active); pattern++ {
			c := base
			for bit, pos := range e.Active {
				c |= uint64(pattern>>bit&1) << pos
			}
			sum ^= e.evalOne(c, tweak, keyHi, keyLo)
		}

		res.Sums = append(res.Sums, sum)
		if e.balanced(sum) {
			res.Successes++
		}
	}
	return res, nil
}

// balanced reports whether every watched bit of sum is zero.
func (e *Experiment) balanced(sum uint64) bool {
	for _, pos := range e.Balanced {
		if sum>>pos&1 != 0 {
			return false
		}
	}
	return true
}

func randUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("chilow: reading randomness: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

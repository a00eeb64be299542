// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package chilow

// variant bundles everything that differs between ChiLow-(32+tau) and
// ChiLow-40: the data-lane chichi split and ring masks, the data mask,
// the state matrix and the round-constant table. The tag lane exists only
// in the 32+tau variant.
type variant struct {
	split    int
	maskLo   uint64
	maskHi   uint64
	dataMask uint64
	rc       *[NumRounds]uint64
	state    func(uint64) uint64
	tag      bool
}

var variant32 = &variant{
	split:    16,
	maskLo:   mask15,
	maskHi:   mask17,
	dataMask: mask32,
	rc:       &roundConstants32,
	state:    func(x uint64) uint64 { return uint64(applyLinear32(uint32(x), &matState32)) },
	tag:      true,
}

var variant40 = &variant{
	split:    20,
	maskLo:   mask19,
	maskHi:   mask21,
	dataMask: mask40,
	rc:       &roundConstants40,
	state:    func(x uint64) uint64 { return applyLinear64(x, matState40[:]) },
	tag:      false,
}

func clampRounds(rounds int) int {
	if rounds < 1 {
		return 1
	}
	if rounds > NumRounds {
		return NumRounds
	}
	return rounds
}

// decrypt is the shared ChiLow decryption core: initial key whitening,
// rounds-1 iterations of the main round, then the final round. The key is
// a local copy; the caller's words are never touched. finalLinear selects
// between the standard final round and the half-reduced one, which XORs
// the raw tweak into the data lanes without the last Tweak64 application.
//
// Every branch below is on the variant configuration or the loop index,
// never on lane data.
func decrypt(v *variant, c, tweak, keyHi, keyLo uint64, rounds int, finalLinear bool) uint64 {
	Init()
	rounds = clampRounds(rounds)

	k := uint128{lo: keyLo, hi: keyHi}

	// Initial whitening. Ciphertext bits above the data width are
	// silently masked.
	p := (c ^ k.hi) & v.dataMask
	var tag uint64
	if v.tag {
		tag = (c ^ k.hi>>32) & mask32
	}
	t := tweak ^ k.lo

	for r := 0; r < rounds-1; r++ {
		k.hi ^= v.rc[r]

		// Nonlinear layer.
		p = chichi(p, v.maskLo, v.maskHi, v.split)
		if v.tag {
			tag = chichi(tag, mask15, mask17, 16)
		}
		t = chichi(t, mask31, mask33, 32)
		k = chichi128(k)

		// Linear layer.
		p = v.state(p)
		if v.tag {
			tag = uint64(applyLinear32(uint32(tag), &matPrf32))
		}
		t = applyLinear64(t, matTweak64[:])
		k = applyLinear128(k, &matKey128)

		// Interaction layer.
		p ^= t & v.dataMask
		if v.tag {
			tag ^= (t >> 32) & mask32
		}
		t ^= k.lo
	}

	// Final round: nonlinear on the data lanes and the tweak interaction
	// only; no key update.
	p = chichi(p, v.maskLo, v.maskHi, v.split)
	if v.tag {
		tag = chichi(tag, mask15, mask17, 16)
	}
	if finalLinear {
		t = applyLinear64(t, matTweak64[:])
	}
	p = (p ^ t) & v.dataMask
	if v.tag {
		tag = (tag ^ t>>32) & mask32
		return tag<<32 | p
	}
	return p
}

// Decrypt32 is the full 8-round ChiLow-(32+tau) decryption. The returned
// word packs the authentication tag in the high 32 bits and the plaintext
// in the low 32.
func Decrypt32(ciphertext uint32, tweak, keyHi, keyLo uint64) uint64 {
	return decrypt(variant32, uint64(ciphertext), tweak, keyHi, keyLo, NumRounds, true)
}

// Decrypt40 is the full 8-round ChiLow-40 decryption. The plaintext is
// returned in the low 40 bits; ciphertext bits above 39 are silently
// masked.
func Decrypt40(ciphertext, tweak, keyHi, keyLo uint64) uint64 {
	return decrypt(variant40, ciphertext, tweak, keyHi, keyLo, NumRounds, true)
}

// Decrypt32Reduced is Decrypt32 with an explicit round count. rounds is
// clamped to 1..NumRounds; at NumRounds it equals Decrypt32.
func Decrypt32Reduced(ciphertext uint32, tweak, keyHi, keyLo uint64, rounds int) uint64 {
	return decrypt(variant32, uint64(ciphertext), tweak, keyHi, keyLo, rounds, true)
}

// Decrypt40Reduced is Decrypt40 with an explicit round count, clamped to
// 1..NumRounds.
func Decrypt40Reduced(ciphertext, tweak, keyHi, keyLo uint64, rounds int) uint64 {
	return decrypt(variant40, ciphertext, tweak, keyHi, keyLo, rounds, true)
}

// Decrypt32HalfReduced is Decrypt32Reduced with the final round's linear
// step on the tweak skipped: the raw tweak is XORed into the data lanes.
// Integral cryptanalysis uses it to probe the primitive.
func Decrypt32HalfReduced(ciphertext uint32, tweak, keyHi, keyLo uint64, rounds int) uint64 {
	return decrypt(variant32, uint64(ciphertext), tweak, keyHi, keyLo, rounds, false)
}

// Decrypt40HalfReduced is the 40-bit analogue of Decrypt32HalfReduced.
func Decrypt40HalfReduced(ciphertext, tweak, keyHi, keyLo uint64, rounds int) uint64 {
	return decrypt(variant40, ciphertext, tweak, keyHi, keyLo, rounds, false)
}

package bignat

import (
	"math/big"
	"math/bits"
)

// Nat is an arbitrary-precision natural number. The zero value is 0.
//
// Limbs are stored least significant first and the last limb is never zero.
// Every constructor and method preserves that; nothing outside this package can
// reach the limb slice, so a Nat is safe to share between goroutines for reading.
type Nat struct {
	limbs []uint64
}

// NatFromUint64 creates a Nat holding a single word.
func NatFromUint64(v uint64) Nat {
	if v == 0 {
		return Nat{}
	}
	return Nat{limbs: []uint64{v}}
}

// NatFromLimbs takes ownership of v, a little-endian limb slice, and
// returns the Nat it represents. Trailing zero limbs are dropped by reslicing;
// v's backing array is reused rather than copied, so the caller must not
// modify v afterwards. Use NatFromLimbsCopy to keep v.
func NatFromLimbs(v []uint64) Nat {
	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Nat{}
	}
	return Nat{limbs: v[:n]}
}

// NatFromLimbsCopy is NatFromLimbs without the ownership transfer: v is
// neither modified nor retained.
func NatFromLimbsCopy(v []uint64) Nat {
	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Nat{}
	}
	limbs := make([]uint64, n)
	copy(limbs, v)
	return Nat{limbs: limbs}
}

// NatFromBigInt creates a Nat from a big.Int. Negative values can not be
// represented; they return 0 and set accurate to 'false'.
func NatFromBigInt(v *big.Int) (out Nat, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()
	lw := len(words)

	switch intSize {
	case 64:
		limbs := make([]uint64, lw)
		for i, w := range words {
			limbs[i] = uint64(w)
		}
		return NatFromLimbs(limbs), true

	case 32:
		limbs := make([]uint64, (lw+1)/2)
		for i, w := range words {
			limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		return NatFromLimbs(limbs), true

	default:
		panic("bignat: unsupported bit size")
	}
}

// IsCanonical reports whether n has no trailing zero limb. It can only
// return false for a Nat assembled by hand inside this package.
func (n Nat) IsCanonical() bool {
	return len(n.limbs) == 0 || n.limbs[len(n.limbs)-1] != 0
}

// Clone returns a Nat with its own copy of n's limbs.
func (n Nat) Clone() Nat {
	if len(n.limbs) == 0 {
		return Nat{}
	}
	limbs := make([]uint64, len(n.limbs))
	copy(limbs, n.limbs)
	return Nat{limbs: limbs}
}

func (n Nat) IsZero() bool { return len(n.limbs) == 0 }

// Len returns the number of limbs in n. Zero has no limbs.
func (n Nat) Len() int { return len(n.limbs) }

// Limb returns the limb at index i, counting from the least significant.
// It panics if i is out of range.
func (n Nat) Limb(i int) uint64 { return n.limbs[i] }

// Limbs returns a copy of n's limbs, least significant first. The result is
// nil for zero.
func (n Nat) Limbs() []uint64 {
	if len(n.limbs) == 0 {
		return nil
	}
	out := make([]uint64, len(n.limbs))
	copy(out, n.limbs)
	return out
}

// Equal reports whether n and o hold the same number. As both are canonical
// this is a limb-by-limb comparison.
func (n Nat) Equal(o Nat) bool {
	if len(n.limbs) != len(o.limbs) {
		return false
	}
	for i, l := range n.limbs {
		if o.limbs[i] != l {
			return false
		}
	}
	return true
}

// BitLen returns the length of the absolute value of n in bits. The bit
// length of 0 is 0.
func (n Nat) BitLen() int {
	ln := len(n.limbs)
	if ln == 0 {
		return 0
	}
	return (ln-1)*LimbBits + bits.Len64(n.limbs[ln-1])
}

// Bit returns the value of the i'th bit of n. Bits past the top limb are 0.
func (n Nat) Bit(i int) uint {
	if i < 0 {
		panic("bignat: negative bit index")
	}
	idx := i / LimbBits
	if idx >= len(n.limbs) {
		return 0
	}
	return uint(n.limbs[idx]>>uint(i%LimbBits)) & 1
}

// AsUint64 truncates n to its least significant limb. See IsUint64() if you
// want to check before you convert.
func (n Nat) AsUint64() uint64 {
	if len(n.limbs) == 0 {
		return 0
	}
	return n.limbs[0]
}

// IsUint64 reports whether n can be represented as a uint64.
func (n Nat) IsUint64() bool {
	return len(n.limbs) <= 1
}

// IntoBigInt sets b to n, reusing b's storage where it can.
func (n Nat) IntoBigInt(b *big.Int) {
	ln := len(n.limbs)

	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < ln {
			words = make([]big.Word, ln)
		}
		words = words[:ln]
		for i, l := range n.limbs {
			words[i] = big.Word(l)
		}
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < ln*2 {
			words = make([]big.Word, ln*2)
		}
		words = words[:ln*2]
		for i, l := range n.limbs {
			words[i*2] = big.Word(l & 0xFFFFFFFF)
			words[i*2+1] = big.Word(l >> 32)
		}
		b.SetBits(words)

	default:
		b.SetUint64(0)
		for i := ln - 1; i >= 0; i-- {
			var limb big.Int
			limb.SetUint64(n.limbs[i])
			b.Lsh(b, LimbBits)
			b.Add(b, &limb)
		}
	}
}

func (n Nat) AsBigInt() (b *big.Int) {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}

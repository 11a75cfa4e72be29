package bignat

type RandSource interface {
	Uint64() uint64
}

// RandNat generates a random Nat of at most limbs limbs from an external
// source. Every limb is drawn from source, so the top limbs may come out zero
// and the result is canonicalised like any other limb slice.
func RandNat(source RandSource, limbs int) Nat {
	if limbs <= 0 {
		return Nat{}
	}
	v := make([]uint64, limbs)
	for i := range v {
		v[i] = source.Uint64()
	}
	return NatFromLimbs(v)
}

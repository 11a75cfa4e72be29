/*
Package bignat provides an arbitrary-precision natural number (Nat) and a
generic optional value (Option) that can be deeply cloned when its payload
can.

Nat is a value type holding little-endian 64-bit limbs. A Nat never has a
trailing zero limb, so every natural number has exactly one representation and
zero is the empty limb slice:

	n := NatFromLimbs([]uint64{7, 3, 3, 1, 0, 0})
	fmt.Println(n.Limbs())
	// Output: [7 3 3 1]

Nats can be created from a variety of sources:

	NatFromUint64(v uint64) Nat
	NatFromLimbs(v []uint64) Nat
	NatFromLimbsCopy(v []uint64) Nat
	NatFromBigInt(v *big.Int) (out Nat, accurate bool)
	RandNat(source RandSource, limbs int) Nat

Arithmetic, parsing and formatting are not provided here; AsBigInt can be
used to hand a Nat to math/big.

Option[T] holds either nothing or a T. Any type with a Clone() T method
satisfies Cloner[T], and CloneOption clones an Option[T] by cloning its
payload:

	o := Some(NatFromUint64(42))
	c := CloneOption(o)

*/
package bignat

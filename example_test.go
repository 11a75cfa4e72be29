package bignat_test

import (
	"fmt"

	bignat "github.com/ivanagui2/go-bignat"
)

func ExampleNatFromLimbs() {
	n := bignat.NatFromLimbs([]uint64{7, 3, 3, 1, 0, 0})
	fmt.Println(n.Limbs(), n.IsCanonical())

	z := bignat.NatFromLimbs([]uint64{0, 0, 0})
	fmt.Println(z.Len(), z.IsZero())
	// Output:
	// [7 3 3 1] true
	// 0 true
}

func ExampleNat_AsBigInt() {
	n := bignat.NatFromLimbs([]uint64{0, 65536})
	fmt.Println(n.AsBigInt())
	// Output: 1208925819614629174706176
}

func ExampleCloneOption() {
	o := bignat.Some(bignat.NatFromUint64(42))
	c := bignat.CloneOption(o)
	fmt.Println(c.IsSome(), c.MustGet().Limbs())

	fmt.Println(bignat.CloneOption(bignat.None[bignat.Nat]()).IsNone())
	// Output:
	// true [42]
	// true
}

package bignat

import (
	"math/big"
)

// LimbBits is the width of a single limb.
const LimbBits = 64

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	zeroNat Nat

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)

	// wrapBigU64 is 1 << 64:
	wrapBigU64, _ = new(big.Int).SetString("18446744073709551616", 10)
)

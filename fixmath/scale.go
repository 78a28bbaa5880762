package fixmath

import (
	"math/big"

	"cosmossdk.io/math"
)

// TokenScalar returns the multiplicative factor that lifts an amount with the
// given number of decimals into the 18-decimal domain. decimals must not
// exceed 18; callers validate that at bind time.
func TokenScalar(decimals uint32) math.Int {
	return math.NewIntWithDecimal(1, 18-int(decimals))
}

// Upscale lifts a token-domain amount into the 18-decimal domain.
func Upscale(x, scalar math.Int) (math.Int, error) {
	c := new(big.Int).Mul(x.BigInt(), scalar.BigInt())
	if !fitsI256(c) {
		return math.Int{}, ErrMulOverflow
	}
	return math.NewIntFromBigInt(c), nil
}

// DownscaleFloor maps an 18-decimal value back to the token domain, rounding
// toward negative infinity. The result must fit the 128-bit token domain.
func DownscaleFloor(x, scalar math.Int) (math.Int, error) {
	c, err := divScaled(x.BigInt(), scalar.BigInt(), false)
	if err != nil {
		return math.Int{}, err
	}
	return checkI128(c)
}

// DownscaleCeil maps an 18-decimal value back to the token domain, rounding
// toward positive infinity. The result must fit the 128-bit token domain.
func DownscaleCeil(x, scalar math.Int) (math.Int, error) {
	c, err := divScaled(x.BigInt(), scalar.BigInt(), true)
	if err != nil {
		return math.Int{}, err
	}
	return checkI128(c)
}

func checkI128(c *big.Int) (math.Int, error) {
	v := math.NewIntFromBigInt(c)
	if v.GT(MaxI128) || v.LT(MinI128) {
		return math.Int{}, ErrMathApprox
	}
	return v, nil
}

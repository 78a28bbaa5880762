package fixmath

import (
	"math/big"

	"cosmossdk.io/math"
)

func maxI128Big() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 127)
	return max.Sub(max, big.NewInt(1))
}

// maxI256 is the widest magnitude representable in the intermediate domain.
var maxI256 = new(big.Int).Lsh(big.NewInt(1), 255)

func fitsI256(x *big.Int) bool {
	return x.CmpAbs(maxI256) < 0
}

// Add returns a+b, failing on overflow of the 256-bit intermediate domain.
func Add(a, b math.Int) (math.Int, error) {
	c := new(big.Int).Add(a.BigInt(), b.BigInt())
	if !fitsI256(c) {
		return math.Int{}, ErrAddOverflow
	}
	return math.NewIntFromBigInt(c), nil
}

// Sub returns a-b, failing when b exceeds a.
func Sub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, ErrSubUnderflow
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SubSign returns |a-b| and whether the difference is negative.
func SubSign(a, b math.Int) (math.Int, bool) {
	if a.GTE(b) {
		return a.Sub(b), false
	}
	return b.Sub(a), true
}

// mulScaled computes (a*b)/scale with the given rounding direction. Floor
// rounds toward negative infinity, matching big.Int.Div for a positive scale.
func mulScaled(a, b, scale *big.Int, ceil bool) (*big.Int, error) {
	prod := new(big.Int).Mul(a, b)
	if !fitsI256(prod) {
		return nil, ErrMulOverflow
	}
	return divScaled(prod, scale, ceil)
}

func divScaled(num, den *big.Int, ceil bool) (*big.Int, error) {
	if den.Sign() == 0 {
		return nil, ErrDivInternal
	}
	q, r := new(big.Int).DivMod(num, den, new(big.Int))
	if ceil && r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q, nil
}

// MulFloor returns floor(a*b/Bone).
func MulFloor(a, b math.Int) (math.Int, error) {
	c, err := mulScaled(a.BigInt(), b.BigInt(), Bone.BigInt(), false)
	if err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(c), nil
}

// MulCeil returns ceil(a*b/Bone).
func MulCeil(a, b math.Int) (math.Int, error) {
	c, err := mulScaled(a.BigInt(), b.BigInt(), Bone.BigInt(), true)
	if err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(c), nil
}

// DivFloor returns floor(a*Bone/b).
func DivFloor(a, b math.Int) (math.Int, error) {
	num := new(big.Int).Mul(a.BigInt(), Bone.BigInt())
	if !fitsI256(num) {
		return math.Int{}, ErrDivInternal
	}
	c, err := divScaled(num, b.BigInt(), false)
	if err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(c), nil
}

// DivCeil returns ceil(a*Bone/b).
func DivCeil(a, b math.Int) (math.Int, error) {
	num := new(big.Int).Mul(a.BigInt(), Bone.BigInt())
	if !fitsI256(num) {
		return math.Int{}, ErrDivInternal
	}
	c, err := divScaled(num, b.BigInt(), true)
	if err != nil {
		return math.Int{}, err
	}
	return math.NewIntFromBigInt(c), nil
}

// Package pricing holds the closed-form formulas of the constant-mean
// invariant
//
//	prod_i B_i^(W_i / sum_j W_j) = k
//
// All inputs are 18-decimal fixed-point math.Int values; callers upscale
// token amounts and weights at the boundary. Every formula rounds each
// fixed-point operation in the direction that favors the pool: amounts the
// pool receives round up, amounts it pays out round down, share mints round
// down, share burns round up.
package pricing

import (
	"cosmossdk.io/math"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
)

// SpotPrice returns the marginal price of the out token in units of the in
// token, including the fee markup:
//
//	(B_in/W_in) / (B_out/W_out) * 1/(1-fee)
//
// Balances stay in their native decimals so token-level precision is
// preserved; the balance scale cancels in the ratio. The result is
// Bone-scaled.
func SpotPrice(balanceIn, weightIn, balanceOut, weightOut, swapFee math.Int) (math.Int, error) {
	numer, err := fixmath.DivFloor(balanceIn, weightIn)
	if err != nil {
		return math.Int{}, err
	}
	denom, err := fixmath.DivFloor(balanceOut, weightOut)
	if err != nil {
		return math.Int{}, err
	}
	ratio, err := fixmath.DivFloor(numer, denom)
	if err != nil {
		return math.Int{}, err
	}
	feeComplement, err := fixmath.Sub(fixmath.Bone, swapFee)
	if err != nil {
		return math.Int{}, err
	}
	scale, err := fixmath.DivFloor(fixmath.Bone, feeComplement)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.MulFloor(ratio, scale)
}

// OutGivenIn returns the amount of the out token received for an exact
// amount in, rounded down:
//
//	A_out = B_out * (1 - (B_in / (B_in + A_in*(1-fee)))^(W_in/W_out))
func OutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn, swapFee math.Int) (math.Int, error) {
	weightRatio, err := fixmath.DivFloor(weightIn, weightOut)
	if err != nil {
		return math.Int{}, err
	}
	feeComplement, err := fixmath.Sub(fixmath.Bone, swapFee)
	if err != nil {
		return math.Int{}, err
	}
	adjustedIn, err := fixmath.MulFloor(amountIn, feeComplement)
	if err != nil {
		return math.Int{}, err
	}
	newBalanceIn, err := fixmath.Add(balanceIn, adjustedIn)
	if err != nil {
		return math.Int{}, err
	}
	y, err := fixmath.DivCeil(balanceIn, newBalanceIn)
	if err != nil {
		return math.Int{}, err
	}
	foo, err := fixmath.Pow(y, weightRatio, true)
	if err != nil {
		return math.Int{}, err
	}
	bar, err := fixmath.Sub(fixmath.Bone, foo)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.MulFloor(balanceOut, bar)
}

// InGivenOut returns the amount of the in token owed for an exact amount
// out, rounded up:
//
//	A_in = B_in * ((B_out/(B_out - A_out))^(W_out/W_in) - 1) / (1-fee)
func InGivenOut(balanceIn, weightIn, balanceOut, weightOut, amountOut, swapFee math.Int) (math.Int, error) {
	weightRatio, err := fixmath.DivCeil(weightOut, weightIn)
	if err != nil {
		return math.Int{}, err
	}
	diff, err := fixmath.Sub(balanceOut, amountOut)
	if err != nil {
		return math.Int{}, err
	}
	y, err := fixmath.DivCeil(balanceOut, diff)
	if err != nil {
		return math.Int{}, err
	}
	foo, err := fixmath.Pow(y, weightRatio, true)
	if err != nil {
		return math.Int{}, err
	}
	foo, err = fixmath.Sub(foo, fixmath.Bone)
	if err != nil {
		return math.Int{}, err
	}
	numer, err := fixmath.MulCeil(balanceIn, foo)
	if err != nil {
		return math.Int{}, err
	}
	feeComplement, err := fixmath.Sub(fixmath.Bone, swapFee)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.DivCeil(numer, feeComplement)
}

// LpOutGivenTokenIn returns the shares minted for a single-sided deposit of
// an exact token amount, rounded down. The fee applies only to the portion
// of the deposit that is notionally swapped into the other tokens:
// zaz = (1 - W_in/W) * fee.
func LpOutGivenTokenIn(balanceIn, weightIn, poolSupply, totalWeight, amountIn, swapFee math.Int) (math.Int, error) {
	normalizedWeight, err := fixmath.DivFloor(weightIn, totalWeight)
	if err != nil {
		return math.Int{}, err
	}
	weightComplement, err := fixmath.Sub(fixmath.Bone, normalizedWeight)
	if err != nil {
		return math.Int{}, err
	}
	zaz, err := fixmath.MulCeil(weightComplement, swapFee)
	if err != nil {
		return math.Int{}, err
	}
	feeComplement, err := fixmath.Sub(fixmath.Bone, zaz)
	if err != nil {
		return math.Int{}, err
	}
	amountInAfterFee, err := fixmath.MulFloor(amountIn, feeComplement)
	if err != nil {
		return math.Int{}, err
	}
	newBalanceIn, err := fixmath.Add(balanceIn, amountInAfterFee)
	if err != nil {
		return math.Int{}, err
	}
	tokenInRatio, err := fixmath.DivFloor(newBalanceIn, balanceIn)
	if err != nil {
		return math.Int{}, err
	}
	poolRatio, err := fixmath.Pow(tokenInRatio, normalizedWeight, false)
	if err != nil {
		return math.Int{}, err
	}
	newPoolSupply, err := fixmath.MulFloor(poolRatio, poolSupply)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.Sub(newPoolSupply, poolSupply)
}

// TokenInGivenLpOut returns the token deposit owed for an exact share amount
// minted, rounded up. Inverse of LpOutGivenTokenIn.
func TokenInGivenLpOut(balanceIn, weightIn, poolSupply, totalWeight, poolAmountOut, swapFee math.Int) (math.Int, error) {
	normalizedWeight, err := fixmath.DivFloor(weightIn, totalWeight)
	if err != nil {
		return math.Int{}, err
	}
	newPoolSupply, err := fixmath.Add(poolSupply, poolAmountOut)
	if err != nil {
		return math.Int{}, err
	}
	poolRatio, err := fixmath.DivCeil(newPoolSupply, poolSupply)
	if err != nil {
		return math.Int{}, err
	}
	boo, err := fixmath.DivCeil(fixmath.Bone, normalizedWeight)
	if err != nil {
		return math.Int{}, err
	}
	tokenInRatio, err := fixmath.Pow(poolRatio, boo, true)
	if err != nil {
		return math.Int{}, err
	}
	newBalanceIn, err := fixmath.MulCeil(tokenInRatio, balanceIn)
	if err != nil {
		return math.Int{}, err
	}
	amountInAfterFee, err := fixmath.Sub(newBalanceIn, balanceIn)
	if err != nil {
		return math.Int{}, err
	}
	weightComplement, err := fixmath.Sub(fixmath.Bone, normalizedWeight)
	if err != nil {
		return math.Int{}, err
	}
	zar, err := fixmath.MulCeil(weightComplement, swapFee)
	if err != nil {
		return math.Int{}, err
	}
	feeComplement, err := fixmath.Sub(fixmath.Bone, zar)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.DivCeil(amountInAfterFee, feeComplement)
}

// LpInGivenTokenOut returns the shares burned for a single-sided withdrawal
// of an exact token amount, rounded up.
func LpInGivenTokenOut(balanceOut, weightOut, poolSupply, totalWeight, amountOut, swapFee math.Int) (math.Int, error) {
	normalizedWeight, err := fixmath.DivFloor(weightOut, totalWeight)
	if err != nil {
		return math.Int{}, err
	}
	weightComplement, err := fixmath.Sub(fixmath.Bone, normalizedWeight)
	if err != nil {
		return math.Int{}, err
	}
	zar, err := fixmath.MulCeil(weightComplement, swapFee)
	if err != nil {
		return math.Int{}, err
	}
	feeComplement, err := fixmath.Sub(fixmath.Bone, zar)
	if err != nil {
		return math.Int{}, err
	}
	amountOutBeforeFee, err := fixmath.DivCeil(amountOut, feeComplement)
	if err != nil {
		return math.Int{}, err
	}
	newBalanceOut, err := fixmath.Sub(balanceOut, amountOutBeforeFee)
	if err != nil {
		return math.Int{}, err
	}
	tokenOutRatio, err := fixmath.DivFloor(newBalanceOut, balanceOut)
	if err != nil {
		return math.Int{}, err
	}
	poolRatio, err := fixmath.Pow(tokenOutRatio, normalizedWeight, false)
	if err != nil {
		return math.Int{}, err
	}
	newPoolSupply, err := fixmath.MulFloor(poolRatio, poolSupply)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.Sub(poolSupply, newPoolSupply)
}

// TokenOutGivenLpIn returns the token withdrawal paid for an exact share
// amount burned, rounded down. Inverse of LpInGivenTokenOut.
func TokenOutGivenLpIn(balanceOut, weightOut, poolSupply, totalWeight, poolAmountIn, swapFee math.Int) (math.Int, error) {
	normalizedWeight, err := fixmath.DivFloor(weightOut, totalWeight)
	if err != nil {
		return math.Int{}, err
	}
	newPoolSupply, err := fixmath.Sub(poolSupply, poolAmountIn)
	if err != nil {
		return math.Int{}, err
	}
	poolRatio, err := fixmath.DivFloor(newPoolSupply, poolSupply)
	if err != nil {
		return math.Int{}, err
	}
	exp, err := fixmath.DivFloor(fixmath.Bone, normalizedWeight)
	if err != nil {
		return math.Int{}, err
	}
	tokenOutRatio, err := fixmath.Pow(poolRatio, exp, true)
	if err != nil {
		return math.Int{}, err
	}
	newBalanceOut, err := fixmath.MulCeil(tokenOutRatio, balanceOut)
	if err != nil {
		return math.Int{}, err
	}
	amountOutBeforeFee, err := fixmath.Sub(balanceOut, newBalanceOut)
	if err != nil {
		return math.Int{}, err
	}
	weightComplement, err := fixmath.Sub(fixmath.Bone, normalizedWeight)
	if err != nil {
		return math.Int{}, err
	}
	zaz, err := fixmath.MulCeil(weightComplement, swapFee)
	if err != nil {
		return math.Int{}, err
	}
	feeComplement, err := fixmath.Sub(fixmath.Bone, zaz)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.MulFloor(amountOutBeforeFee, feeComplement)
}

// JoinRatio returns the share ratio of a proportional join, rounded up so
// the per-token deposits favor the pool.
func JoinRatio(poolSupply, poolAmountOut math.Int) (math.Int, error) {
	return fixmath.DivCeil(poolAmountOut, poolSupply)
}

// ExitRatio returns the share ratio of a proportional exit, rounded down so
// the per-token withdrawals favor the pool.
func ExitRatio(poolSupply, poolAmountIn math.Int) (math.Int, error) {
	return fixmath.DivFloor(poolAmountIn, poolSupply)
}

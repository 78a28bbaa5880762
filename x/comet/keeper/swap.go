package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	"github.com/CometDEX/comet-contracts-v1/x/comet/pricing"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// spotPrice computes the Bone-scaled spot price between two records,
// optionally fee-adjusted. Balances stay in native decimals; the scale
// cancels in the ratio.
func spotPrice(pool *types.Pool, inRec, outRec types.Record, withFee bool) (math.Int, error) {
	fee := math.ZeroInt()
	if withFee {
		fee = pool.SwapFeeBone()
	}
	return pricing.SpotPrice(inRec.Balance, inRec.Denorm, outRec.Balance, outRec.Denorm, fee)
}

// maxInAmount returns the largest 18-decimal input a single operation may
// add against the given pool-side balance.
func maxInAmount(balance18 math.Int) (math.Int, error) {
	return fixmath.MulFloor(balance18, types.MaxInRatio.Mul(fixmath.StroopScalar))
}

// maxOutAmount returns the largest 18-decimal output a single operation may
// remove against the given pool-side balance.
func maxOutAmount(balance18 math.Int) (math.Int, error) {
	return fixmath.MulFloor(balance18, types.MaxOutRatio.Mul(fixmath.StroopScalar))
}

// loadFinalizedPool gates the runtime operations: the pool must be
// finalized, and unless withdrawOnly the pool must not be frozen.
func (k Keeper) loadFinalizedPool(ctx context.Context, poolID uint64, withdrawOnly bool) (*types.Pool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !withdrawOnly && pool.Frozen {
		return nil, types.ErrFreezeOnlyWithdrawals.Wrapf("pool %d is frozen", poolID)
	}
	if !pool.Finalized {
		return nil, types.ErrNotFinalized.Wrapf("pool %d is not finalized", poolID)
	}
	return pool, nil
}

// SwapExactAmountIn trades an exact amount of tokenIn for a computed amount
// of tokenOut. Returns the output amount and the post-swap spot price in
// 7-decimal fixed point.
func (k Keeper) SwapExactAmountIn(
	ctx context.Context,
	poolID uint64,
	tokenIn string,
	tokenAmountIn math.Int,
	tokenOut string,
	minAmountOut math.Int,
	maxPrice math.Int,
	user sdk.AccAddress,
) (math.Int, math.Int, error) {
	if tokenAmountIn.IsNegative() || minAmountOut.IsNegative() || maxPrice.IsNegative() {
		return math.Int{}, math.Int{}, types.ErrNegative.Wrap("swap arguments cannot be negative")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, false)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !pool.PublicSwap {
		return math.Int{}, math.Int{}, types.ErrSwapNotPublic.Wrapf("pool %d has public swap disabled", poolID)
	}

	inRec, err := k.GetRecord(ctx, poolID, tokenIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	outRec, err := k.GetRecord(ctx, poolID, tokenOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	balanceIn18, err := inRec.BalanceBone()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	balanceOut18, err := outRec.BalanceBone()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountIn18, err := fixmath.Upscale(tokenAmountIn, inRec.Scalar)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	maxIn, err := maxInAmount(balanceIn18)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountIn18.GT(maxIn) {
		return math.Int{}, math.Int{}, types.ErrMaxInRatio.Wrapf("input %s exceeds half the pool-side balance", tokenAmountIn)
	}

	maxPrice18 := maxPrice.Mul(fixmath.StroopScalar)
	spotBefore, err := spotPrice(pool, inRec, outRec, true)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if spotBefore.GT(maxPrice18) {
		return math.Int{}, math.Int{}, types.ErrBadLimitPrice.Wrapf("spot price %s above limit %s", spotBefore, maxPrice18)
	}

	amountOut18, err := pricing.OutGivenIn(balanceIn18, inRec.DenormBone(), balanceOut18, outRec.DenormBone(), amountIn18, pool.SwapFeeBone())
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	tokenAmountOut, err := fixmath.DownscaleFloor(amountOut18, outRec.Scalar)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if tokenAmountOut.LT(minAmountOut) {
		return math.Int{}, math.Int{}, types.ErrLimitOut.Wrapf("output %s below minimum %s", tokenAmountOut, minAmountOut)
	}

	inRec.Balance = inRec.Balance.Add(tokenAmountIn)
	if outRec.Balance.LT(tokenAmountOut) {
		return math.Int{}, math.Int{}, fixmath.ErrSubUnderflow.Wrapf("output %s exceeds pool balance %s", tokenAmountOut, outRec.Balance)
	}
	outRec.Balance = outRec.Balance.Sub(tokenAmountOut)

	spotAfter, err := spotPrice(pool, inRec, outRec, true)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if spotAfter.LT(spotBefore) {
		return math.Int{}, math.Int{}, fixmath.ErrMathApprox.Wrap("post-swap spot price fell")
	}
	if spotAfter.GT(maxPrice18) {
		return math.Int{}, math.Int{}, types.ErrLimitPrice.Wrapf("post-swap spot price %s above limit %s", spotAfter, maxPrice18)
	}
	effectivePrice, err := fixmath.DivFloor(tokenAmountIn, tokenAmountOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if spotBefore.GT(effectivePrice) {
		return math.Int{}, math.Int{}, fixmath.ErrMathApprox.Wrap("effective price below pre-swap spot price")
	}

	if err := k.pullUnderlying(ctx, poolID, tokenIn, user, tokenAmountIn); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.pushUnderlying(ctx, poolID, tokenOut, user, tokenAmountOut); err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.SetRecord(ctx, poolID, tokenIn, inRec); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetRecord(ctx, poolID, tokenOut, outRec); err != nil {
		return math.Int{}, math.Int{}, err
	}

	spotAfter7, err := fixmath.DownscaleCeil(spotAfter, fixmath.StroopScalar)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.emitSwapEvent(ctx, poolID, user, tokenIn, tokenOut, tokenAmountIn, tokenAmountOut)
	k.metrics.Swaps.WithLabelValues(formatPoolID(poolID), tokenIn, tokenOut).Inc()

	return tokenAmountOut, spotAfter7, nil
}

// SwapExactAmountOut trades a computed amount of tokenIn for an exact amount
// of tokenOut. Returns the input amount and the post-swap spot price in
// 7-decimal fixed point.
func (k Keeper) SwapExactAmountOut(
	ctx context.Context,
	poolID uint64,
	tokenIn string,
	maxAmountIn math.Int,
	tokenOut string,
	tokenAmountOut math.Int,
	maxPrice math.Int,
	user sdk.AccAddress,
) (math.Int, math.Int, error) {
	if tokenAmountOut.IsNegative() || maxAmountIn.IsNegative() || maxPrice.IsNegative() {
		return math.Int{}, math.Int{}, types.ErrNegative.Wrap("swap arguments cannot be negative")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, false)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !pool.PublicSwap {
		return math.Int{}, math.Int{}, types.ErrSwapNotPublic.Wrapf("pool %d has public swap disabled", poolID)
	}

	inRec, err := k.GetRecord(ctx, poolID, tokenIn)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	outRec, err := k.GetRecord(ctx, poolID, tokenOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	balanceIn18, err := inRec.BalanceBone()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	balanceOut18, err := outRec.BalanceBone()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountOut18, err := fixmath.Upscale(tokenAmountOut, outRec.Scalar)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	maxOut, err := maxOutAmount(balanceOut18)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountOut18.GT(maxOut) {
		return math.Int{}, math.Int{}, types.ErrMaxOutRatio.Wrapf("output %s exceeds a third of the pool-side balance", tokenAmountOut)
	}

	maxPrice18 := maxPrice.Mul(fixmath.StroopScalar)
	spotBefore, err := spotPrice(pool, inRec, outRec, true)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if spotBefore.GT(maxPrice18) {
		return math.Int{}, math.Int{}, types.ErrBadLimitPrice.Wrapf("spot price %s above limit %s", spotBefore, maxPrice18)
	}

	amountIn18, err := pricing.InGivenOut(balanceIn18, inRec.DenormBone(), balanceOut18, outRec.DenormBone(), amountOut18, pool.SwapFeeBone())
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	tokenAmountIn, err := fixmath.DownscaleCeil(amountIn18, inRec.Scalar)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !tokenAmountIn.IsPositive() {
		return math.Int{}, math.Int{}, fixmath.ErrMathApprox.Wrap("computed input rounds to zero")
	}
	if tokenAmountIn.GT(maxAmountIn) {
		return math.Int{}, math.Int{}, types.ErrLimitIn.Wrapf("input %s above maximum %s", tokenAmountIn, maxAmountIn)
	}

	inRec.Balance = inRec.Balance.Add(tokenAmountIn)
	if outRec.Balance.LT(tokenAmountOut) {
		return math.Int{}, math.Int{}, fixmath.ErrSubUnderflow.Wrapf("output %s exceeds pool balance %s", tokenAmountOut, outRec.Balance)
	}
	outRec.Balance = outRec.Balance.Sub(tokenAmountOut)

	spotAfter, err := spotPrice(pool, inRec, outRec, true)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if spotAfter.LT(spotBefore) {
		return math.Int{}, math.Int{}, fixmath.ErrMathApprox.Wrap("post-swap spot price fell")
	}
	if spotAfter.GT(maxPrice18) {
		return math.Int{}, math.Int{}, types.ErrLimitPrice.Wrapf("post-swap spot price %s above limit %s", spotAfter, maxPrice18)
	}
	effectivePrice, err := fixmath.DivFloor(tokenAmountIn, tokenAmountOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if spotBefore.GT(effectivePrice) {
		return math.Int{}, math.Int{}, fixmath.ErrMathApprox.Wrap("effective price below pre-swap spot price")
	}

	if err := k.pullUnderlying(ctx, poolID, tokenIn, user, tokenAmountIn); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.pushUnderlying(ctx, poolID, tokenOut, user, tokenAmountOut); err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.SetRecord(ctx, poolID, tokenIn, inRec); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetRecord(ctx, poolID, tokenOut, outRec); err != nil {
		return math.Int{}, math.Int{}, err
	}

	spotAfter7, err := fixmath.DownscaleCeil(spotAfter, fixmath.StroopScalar)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.emitSwapEvent(ctx, poolID, user, tokenIn, tokenOut, tokenAmountIn, tokenAmountOut)
	k.metrics.Swaps.WithLabelValues(formatPoolID(poolID), tokenIn, tokenOut).Inc()

	return tokenAmountIn, spotAfter7, nil
}

func (k Keeper) emitSwapEvent(ctx context.Context, poolID uint64, user sdk.AccAddress, tokenIn, tokenOut string, amountIn, amountOut math.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyCaller, user.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyTokenAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmountOut, amountOut.String()),
		),
	)
}

package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	"github.com/CometDEX/comet-contracts-v1/x/comet/pricing"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// JoinPool deposits every pool token proportionally for an exact share
// amount out. Per-token deposits round up so the pool never undercollects.
func (k Keeper) JoinPool(ctx context.Context, poolID uint64, poolAmountOut math.Int, maxAmountsIn []math.Int, user sdk.AccAddress) ([]math.Int, error) {
	if !poolAmountOut.IsPositive() {
		return nil, types.ErrNegativeOrZero.Wrap("pool amount out must be positive")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, false)
	if err != nil {
		return nil, err
	}
	if len(maxAmountsIn) != len(pool.Tokens) {
		return nil, types.ErrInvalidVectorLen.Wrapf("expected %d max amounts, got %d", len(pool.Tokens), len(maxAmountsIn))
	}

	ratio, err := pricing.JoinRatio(pool.TotalSharesBone(), poolAmountOut.Mul(fixmath.StroopScalar))
	if err != nil {
		return nil, err
	}
	if ratio.IsZero() {
		return nil, fixmath.ErrMathApprox.Wrap("join ratio rounds to zero")
	}

	amountsIn := make([]math.Int, len(pool.Tokens))
	for i, denom := range pool.Tokens {
		rec, err := k.GetRecord(ctx, poolID, denom)
		if err != nil {
			return nil, err
		}
		balance18, err := rec.BalanceBone()
		if err != nil {
			return nil, err
		}
		amountIn18, err := fixmath.MulCeil(ratio, balance18)
		if err != nil {
			return nil, err
		}
		tokenAmountIn, err := fixmath.DownscaleCeil(amountIn18, rec.Scalar)
		if err != nil {
			return nil, err
		}
		if tokenAmountIn.IsZero() {
			return nil, fixmath.ErrMathApprox.Wrapf("deposit of %s rounds to zero", denom)
		}
		if !maxAmountsIn[i].IsPositive() {
			return nil, types.ErrNegative.Wrap("max amount in must be positive")
		}
		if tokenAmountIn.GT(maxAmountsIn[i]) {
			return nil, types.ErrLimitIn.Wrapf("deposit %s of %s above maximum %s", tokenAmountIn, denom, maxAmountsIn[i])
		}

		rec.Balance = rec.Balance.Add(tokenAmountIn)
		if err := k.SetRecord(ctx, poolID, denom, rec); err != nil {
			return nil, err
		}
		if err := k.pullUnderlying(ctx, poolID, denom, user, tokenAmountIn); err != nil {
			return nil, err
		}
		amountsIn[i] = tokenAmountIn

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeJoin,
				sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
				sdk.NewAttribute(types.AttributeKeyCaller, user.String()),
				sdk.NewAttribute(types.AttributeKeyTokenIn, denom),
				sdk.NewAttribute(types.AttributeKeyTokenAmountIn, tokenAmountIn.String()),
			),
		)
	}

	if err := k.mintShares(ctx, pool, user, poolAmountOut); err != nil {
		return nil, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	k.metrics.Joins.WithLabelValues(formatPoolID(poolID)).Inc()
	return amountsIn, nil
}

// ExitPool burns an exact share amount and withdraws every pool token
// proportionally. Per-token withdrawals round down so the pool never
// overpays. Exits stay available while the pool is frozen.
func (k Keeper) ExitPool(ctx context.Context, poolID uint64, poolAmountIn math.Int, minAmountsOut []math.Int, user sdk.AccAddress) ([]math.Int, error) {
	if poolAmountIn.IsNegative() {
		return nil, types.ErrNegative.Wrap("pool amount in cannot be negative")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, true)
	if err != nil {
		return nil, err
	}
	if len(minAmountsOut) != len(pool.Tokens) {
		return nil, types.ErrInvalidVectorLen.Wrapf("expected %d min amounts, got %d", len(pool.Tokens), len(minAmountsOut))
	}

	ratio, err := pricing.ExitRatio(pool.TotalSharesBone(), poolAmountIn.Mul(fixmath.StroopScalar))
	if err != nil {
		return nil, err
	}
	if ratio.IsZero() {
		return nil, fixmath.ErrMathApprox.Wrap("exit ratio rounds to zero")
	}

	if err := k.pullShares(ctx, poolID, user, poolAmountIn); err != nil {
		return nil, err
	}
	if err := k.burnShares(ctx, pool, poolAmountIn); err != nil {
		return nil, err
	}

	amountsOut := make([]math.Int, len(pool.Tokens))
	for i, denom := range pool.Tokens {
		rec, err := k.GetRecord(ctx, poolID, denom)
		if err != nil {
			return nil, err
		}
		balance18, err := rec.BalanceBone()
		if err != nil {
			return nil, err
		}
		amountOut18, err := fixmath.MulFloor(ratio, balance18)
		if err != nil {
			return nil, err
		}
		tokenAmountOut, err := fixmath.DownscaleFloor(amountOut18, rec.Scalar)
		if err != nil {
			return nil, err
		}
		if tokenAmountOut.IsZero() {
			return nil, fixmath.ErrMathApprox.Wrapf("withdrawal of %s rounds to zero", denom)
		}
		if minAmountsOut[i].IsNegative() {
			return nil, types.ErrNegative.Wrap("min amount out cannot be negative")
		}
		if tokenAmountOut.LT(minAmountsOut[i]) {
			return nil, types.ErrLimitOut.Wrapf("withdrawal %s of %s below minimum %s", tokenAmountOut, denom, minAmountsOut[i])
		}
		if tokenAmountOut.GT(rec.Balance) {
			return nil, fixmath.ErrSubUnderflow.Wrapf("withdrawal %s exceeds pool balance %s", tokenAmountOut, rec.Balance)
		}

		rec.Balance = rec.Balance.Sub(tokenAmountOut)
		if err := k.SetRecord(ctx, poolID, denom, rec); err != nil {
			return nil, err
		}
		if err := k.pushUnderlying(ctx, poolID, denom, user, tokenAmountOut); err != nil {
			return nil, err
		}
		amountsOut[i] = tokenAmountOut

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeExit,
				sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
				sdk.NewAttribute(types.AttributeKeyCaller, user.String()),
				sdk.NewAttribute(types.AttributeKeyTokenOut, denom),
				sdk.NewAttribute(types.AttributeKeyTokenAmountOut, tokenAmountOut.String()),
			),
		)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	k.metrics.Exits.WithLabelValues(formatPoolID(poolID)).Inc()
	return amountsOut, nil
}

// DepositGivenTokenIn is the single-sided deposit of an exact token amount
// for a computed share amount, rounded down.
func (k Keeper) DepositGivenTokenIn(ctx context.Context, poolID uint64, tokenIn string, tokenAmountIn, minPoolAmountOut math.Int, user sdk.AccAddress) (math.Int, error) {
	if tokenAmountIn.IsNegative() || minPoolAmountOut.IsNegative() {
		return math.Int{}, types.ErrNegative.Wrap("deposit arguments cannot be negative")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, false)
	if err != nil {
		return math.Int{}, err
	}
	rec, err := k.GetRecord(ctx, poolID, tokenIn)
	if err != nil {
		return math.Int{}, err
	}

	balance18, err := rec.BalanceBone()
	if err != nil {
		return math.Int{}, err
	}
	amountIn18, err := fixmath.Upscale(tokenAmountIn, rec.Scalar)
	if err != nil {
		return math.Int{}, err
	}
	maxIn, err := maxInAmount(balance18)
	if err != nil {
		return math.Int{}, err
	}
	if amountIn18.GT(maxIn) {
		return math.Int{}, types.ErrMaxInRatio.Wrapf("deposit %s exceeds half the pool-side balance", tokenAmountIn)
	}

	poolAmountOut18, err := pricing.LpOutGivenTokenIn(balance18, rec.DenormBone(), pool.TotalSharesBone(), pool.TotalWeightBone(), amountIn18, pool.SwapFeeBone())
	if err != nil {
		return math.Int{}, err
	}
	poolAmountOut, err := fixmath.DownscaleFloor(poolAmountOut18, fixmath.StroopScalar)
	if err != nil {
		return math.Int{}, err
	}
	if poolAmountOut.LT(minPoolAmountOut) {
		return math.Int{}, types.ErrLimitOut.Wrapf("share mint %s below minimum %s", poolAmountOut, minPoolAmountOut)
	}

	rec.Balance = rec.Balance.Add(tokenAmountIn)
	if err := k.SetRecord(ctx, poolID, tokenIn, rec); err != nil {
		return math.Int{}, err
	}
	if err := k.pullUnderlying(ctx, poolID, tokenIn, user, tokenAmountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.mintShares(ctx, pool, user, poolAmountOut); err != nil {
		return math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.emitDepositEvent(ctx, poolID, user, tokenIn, tokenAmountIn)
	return poolAmountOut, nil
}

// DepositGivenLpOut is the single-sided deposit for an exact share amount
// out; the token deposit is computed and rounded up.
func (k Keeper) DepositGivenLpOut(ctx context.Context, poolID uint64, tokenIn string, poolAmountOut, maxAmountIn math.Int, user sdk.AccAddress) (math.Int, error) {
	if poolAmountOut.IsNegative() || maxAmountIn.IsNegative() {
		return math.Int{}, types.ErrNegative.Wrap("deposit arguments cannot be negative")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, false)
	if err != nil {
		return math.Int{}, err
	}
	rec, err := k.GetRecord(ctx, poolID, tokenIn)
	if err != nil {
		return math.Int{}, err
	}

	balance18, err := rec.BalanceBone()
	if err != nil {
		return math.Int{}, err
	}
	amountIn18, err := pricing.TokenInGivenLpOut(balance18, rec.DenormBone(), pool.TotalSharesBone(), pool.TotalWeightBone(), poolAmountOut.Mul(fixmath.StroopScalar), pool.SwapFeeBone())
	if err != nil {
		return math.Int{}, err
	}
	tokenAmountIn, err := fixmath.DownscaleCeil(amountIn18, rec.Scalar)
	if err != nil {
		return math.Int{}, err
	}
	if tokenAmountIn.IsZero() {
		return math.Int{}, fixmath.ErrMathApprox.Wrap("computed deposit rounds to zero")
	}
	if tokenAmountIn.GT(maxAmountIn) {
		return math.Int{}, types.ErrLimitIn.Wrapf("deposit %s above maximum %s", tokenAmountIn, maxAmountIn)
	}
	maxIn, err := maxInAmount(balance18)
	if err != nil {
		return math.Int{}, err
	}
	if amountIn18.GT(maxIn) {
		return math.Int{}, types.ErrMaxInRatio.Wrapf("deposit %s exceeds half the pool-side balance", tokenAmountIn)
	}

	rec.Balance = rec.Balance.Add(tokenAmountIn)
	if err := k.SetRecord(ctx, poolID, tokenIn, rec); err != nil {
		return math.Int{}, err
	}
	if err := k.pullUnderlying(ctx, poolID, tokenIn, user, tokenAmountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.mintShares(ctx, pool, user, poolAmountOut); err != nil {
		return math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.emitDepositEvent(ctx, poolID, user, tokenIn, tokenAmountIn)
	return tokenAmountIn, nil
}

// WithdrawGivenLpIn is the single-sided withdrawal burning an exact share
// amount; the token withdrawal is computed and rounded down. Withdrawals
// stay available while the pool is frozen.
func (k Keeper) WithdrawGivenLpIn(ctx context.Context, poolID uint64, tokenOut string, poolAmountIn, minAmountOut math.Int, user sdk.AccAddress) (math.Int, error) {
	if poolAmountIn.IsNegative() || minAmountOut.IsNegative() {
		return math.Int{}, types.ErrNegative.Wrap("withdrawal arguments cannot be negative")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, true)
	if err != nil {
		return math.Int{}, err
	}
	rec, err := k.GetRecord(ctx, poolID, tokenOut)
	if err != nil {
		return math.Int{}, err
	}

	balance18, err := rec.BalanceBone()
	if err != nil {
		return math.Int{}, err
	}
	amountOut18, err := pricing.TokenOutGivenLpIn(balance18, rec.DenormBone(), pool.TotalSharesBone(), pool.TotalWeightBone(), poolAmountIn.Mul(fixmath.StroopScalar), pool.SwapFeeBone())
	if err != nil {
		return math.Int{}, err
	}
	tokenAmountOut, err := fixmath.DownscaleFloor(amountOut18, rec.Scalar)
	if err != nil {
		return math.Int{}, err
	}
	if tokenAmountOut.LT(minAmountOut) {
		return math.Int{}, types.ErrLimitOut.Wrapf("withdrawal %s below minimum %s", tokenAmountOut, minAmountOut)
	}
	maxOut, err := maxOutAmount(balance18)
	if err != nil {
		return math.Int{}, err
	}
	if amountOut18.GT(maxOut) {
		return math.Int{}, types.ErrMaxOutRatio.Wrapf("withdrawal %s exceeds a third of the pool-side balance", tokenAmountOut)
	}

	if tokenAmountOut.GT(rec.Balance) {
		return math.Int{}, fixmath.ErrSubUnderflow.Wrapf("withdrawal %s exceeds pool balance %s", tokenAmountOut, rec.Balance)
	}
	rec.Balance = rec.Balance.Sub(tokenAmountOut)
	if err := k.SetRecord(ctx, poolID, tokenOut, rec); err != nil {
		return math.Int{}, err
	}
	if err := k.pullShares(ctx, poolID, user, poolAmountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.burnShares(ctx, pool, poolAmountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.pushUnderlying(ctx, poolID, tokenOut, user, tokenAmountOut); err != nil {
		return math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.emitWithdrawEvent(ctx, poolID, user, tokenOut, tokenAmountOut, poolAmountIn)
	return tokenAmountOut, nil
}

// WithdrawGivenTokenOut is the single-sided withdrawal of an exact token
// amount; the share burn is computed and rounded up. Withdrawals stay
// available while the pool is frozen.
func (k Keeper) WithdrawGivenTokenOut(ctx context.Context, poolID uint64, tokenOut string, tokenAmountOut, maxPoolAmountIn math.Int, user sdk.AccAddress) (math.Int, error) {
	if tokenAmountOut.IsNegative() || maxPoolAmountIn.IsNegative() {
		return math.Int{}, types.ErrNegative.Wrap("withdrawal arguments cannot be negative")
	}

	pool, err := k.loadFinalizedPool(ctx, poolID, true)
	if err != nil {
		return math.Int{}, err
	}
	rec, err := k.GetRecord(ctx, poolID, tokenOut)
	if err != nil {
		return math.Int{}, err
	}

	balance18, err := rec.BalanceBone()
	if err != nil {
		return math.Int{}, err
	}
	amountOut18, err := fixmath.Upscale(tokenAmountOut, rec.Scalar)
	if err != nil {
		return math.Int{}, err
	}
	maxOut, err := maxOutAmount(balance18)
	if err != nil {
		return math.Int{}, err
	}
	if amountOut18.GT(maxOut) {
		return math.Int{}, types.ErrMaxOutRatio.Wrapf("withdrawal %s exceeds a third of the pool-side balance", tokenAmountOut)
	}

	poolAmountIn18, err := pricing.LpInGivenTokenOut(balance18, rec.DenormBone(), pool.TotalSharesBone(), pool.TotalWeightBone(), amountOut18, pool.SwapFeeBone())
	if err != nil {
		return math.Int{}, err
	}
	poolAmountIn, err := fixmath.DownscaleCeil(poolAmountIn18, fixmath.StroopScalar)
	if err != nil {
		return math.Int{}, err
	}
	if poolAmountIn.IsZero() {
		return math.Int{}, fixmath.ErrMathApprox.Wrap("computed share burn rounds to zero")
	}
	if poolAmountIn.GT(maxPoolAmountIn) {
		return math.Int{}, types.ErrLimitIn.Wrapf("share burn %s above maximum %s", poolAmountIn, maxPoolAmountIn)
	}

	if tokenAmountOut.GT(rec.Balance) {
		return math.Int{}, fixmath.ErrSubUnderflow.Wrapf("withdrawal %s exceeds pool balance %s", tokenAmountOut, rec.Balance)
	}
	rec.Balance = rec.Balance.Sub(tokenAmountOut)
	if err := k.SetRecord(ctx, poolID, tokenOut, rec); err != nil {
		return math.Int{}, err
	}
	if err := k.pullShares(ctx, poolID, user, poolAmountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.burnShares(ctx, pool, poolAmountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.pushUnderlying(ctx, poolID, tokenOut, user, tokenAmountOut); err != nil {
		return math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.emitWithdrawEvent(ctx, poolID, user, tokenOut, tokenAmountOut, poolAmountIn)
	return poolAmountIn, nil
}

func (k Keeper) emitDepositEvent(ctx context.Context, poolID uint64, user sdk.AccAddress, tokenIn string, amountIn math.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyCaller, user.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenAmountIn, amountIn.String()),
		),
	)
}

func (k Keeper) emitWithdrawEvent(ctx context.Context, poolID uint64, user sdk.AccAddress, tokenOut string, amountOut, poolAmountIn math.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyCaller, user.String()),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyTokenAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyPoolAmountIn, poolAmountIn.String()),
		),
	)
}

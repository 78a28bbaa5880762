package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// GetController returns the pool's controller address.
func (k Keeper) GetController(ctx context.Context, poolID uint64) (string, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return "", err
	}
	return pool.Controller, nil
}

// GetTokens returns the ordered token list of the pool.
func (k Keeper) GetTokens(ctx context.Context, poolID uint64) ([]string, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return pool.Tokens, nil
}

// GetNumTokens returns the number of bound tokens.
func (k Keeper) GetNumTokens(ctx context.Context, poolID uint64) (int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return 0, err
	}
	return len(pool.Tokens), nil
}

// IsBound reports whether a token is bound to the pool.
func (k Keeper) IsBound(ctx context.Context, poolID uint64, denom string) bool {
	_, err := k.GetRecord(ctx, poolID, denom)
	return err == nil
}

// IsFinalized reports whether the pool is finalized.
func (k Keeper) IsFinalized(ctx context.Context, poolID uint64) (bool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return false, err
	}
	return pool.Finalized, nil
}

// IsPublicSwap reports whether swapping is public.
func (k Keeper) IsPublicSwap(ctx context.Context, poolID uint64) (bool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return false, err
	}
	return pool.PublicSwap, nil
}

// IsFrozen reports whether the pool is frozen.
func (k Keeper) IsFrozen(ctx context.Context, poolID uint64) (bool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return false, err
	}
	return pool.Frozen, nil
}

// GetBalance returns the pool's recorded balance of a bound token.
func (k Keeper) GetBalance(ctx context.Context, poolID uint64, denom string) (math.Int, error) {
	rec, err := k.GetRecord(ctx, poolID, denom)
	if err != nil {
		return math.Int{}, err
	}
	return rec.Balance, nil
}

// GetDenormalizedWeight returns a bound token's denormalized weight.
func (k Keeper) GetDenormalizedWeight(ctx context.Context, poolID uint64, denom string) (math.Int, error) {
	rec, err := k.GetRecord(ctx, poolID, denom)
	if err != nil {
		return math.Int{}, err
	}
	return rec.Denorm, nil
}

// GetTotalDenormalizedWeight returns the sum of denormalized weights.
func (k Keeper) GetTotalDenormalizedWeight(ctx context.Context, poolID uint64) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	return pool.TotalWeight, nil
}

// GetNormalizedWeight returns a bound token's weight divided by the total
// weight, in 7-decimal fixed point.
func (k Keeper) GetNormalizedWeight(ctx context.Context, poolID uint64, denom string) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	rec, err := k.GetRecord(ctx, poolID, denom)
	if err != nil {
		return math.Int{}, err
	}
	normalized18, err := fixmath.DivFloor(rec.DenormBone(), pool.TotalWeightBone())
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.DownscaleFloor(normalized18, fixmath.StroopScalar)
}

// GetSwapFee returns the pool's swap fee in 7-decimal fixed point.
func (k Keeper) GetSwapFee(ctx context.Context, poolID uint64) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	return pool.SwapFee, nil
}

// GetSpotPrice returns the fee-adjusted spot price between two bound tokens
// in 7-decimal fixed point, rounded up.
func (k Keeper) GetSpotPrice(ctx context.Context, poolID uint64, tokenIn, tokenOut string) (math.Int, error) {
	return k.getSpotPrice(ctx, poolID, tokenIn, tokenOut, true)
}

// GetSpotPriceSansFee returns the raw spot price between two bound tokens in
// 7-decimal fixed point, rounded up.
func (k Keeper) GetSpotPriceSansFee(ctx context.Context, poolID uint64, tokenIn, tokenOut string) (math.Int, error) {
	return k.getSpotPrice(ctx, poolID, tokenIn, tokenOut, false)
}

func (k Keeper) getSpotPrice(ctx context.Context, poolID uint64, tokenIn, tokenOut string, withFee bool) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	inRec, err := k.GetRecord(ctx, poolID, tokenIn)
	if err != nil {
		return math.Int{}, err
	}
	outRec, err := k.GetRecord(ctx, poolID, tokenOut)
	if err != nil {
		return math.Int{}, err
	}
	price18, err := spotPrice(pool, inRec, outRec, withFee)
	if err != nil {
		return math.Int{}, err
	}
	return fixmath.DownscaleCeil(price18, fixmath.StroopScalar)
}

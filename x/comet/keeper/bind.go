package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// requireController loads the pool and checks the caller is its controller.
func (k Keeper) requireController(ctx context.Context, poolID uint64, caller sdk.AccAddress) (*types.Pool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if pool.Controller != caller.String() {
		return nil, types.ErrNotController.Wrapf("caller %s is not controller of pool %d", caller, poolID)
	}
	return pool, nil
}

// Bind adds a token to a pool in setup and funds it with the starting
// balance. The token's scalar is frozen here from its decimals.
func (k Keeper) Bind(ctx context.Context, poolID uint64, denom string, balance, denorm math.Int, admin sdk.AccAddress) error {
	if denorm.IsNegative() || balance.IsNegative() {
		return types.ErrNegative.Wrap("balance and denorm cannot be negative")
	}

	pool, err := k.requireController(ctx, poolID, admin)
	if err != nil {
		return err
	}
	if pool.Finalized {
		return types.ErrFinalized.Wrapf("pool %d is finalized", poolID)
	}
	if len(pool.Tokens) >= types.MaxBoundTokens {
		return types.ErrMaxTokens.Wrapf("pool %d already has %d tokens", poolID, len(pool.Tokens))
	}
	if k.HasRecord(ctx, poolID, denom) {
		return types.ErrIsBound.Wrapf("token %s is already bound to pool %d", denom, poolID)
	}

	decimals, err := k.tokenDecimals(ctx, denom)
	if err != nil {
		return err
	}

	rec := types.Record{
		Balance: math.ZeroInt(),
		Denorm:  math.ZeroInt(),
		Scalar:  fixmath.TokenScalar(decimals),
		Index:   uint32(len(pool.Tokens)),
		Bound:   true,
	}
	if err := k.SetRecord(ctx, poolID, denom, rec); err != nil {
		return err
	}

	pool.Tokens = append(pool.Tokens, denom)
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBind,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyBalance, balance.String()),
			sdk.NewAttribute(types.AttributeKeyDenorm, denorm.String()),
		),
	)

	return k.Rebind(ctx, poolID, denom, balance, denorm, admin)
}

// BundleBind applies a series of binds in input order; any failure aborts
// the whole transaction.
func (k Keeper) BundleBind(ctx context.Context, poolID uint64, denoms []string, balances, denorms []math.Int, admin sdk.AccAddress) error {
	if len(denoms) != len(balances) || len(denoms) != len(denorms) {
		return types.ErrInvalidVectorLen.Wrap("tokens, balances and denorms must have equal length")
	}
	for i, denom := range denoms {
		if err := k.Bind(ctx, poolID, denom, balances[i], denorms[i], admin); err != nil {
			return err
		}
	}
	return nil
}

// Rebind adjusts the balance and weight of a bound token while the pool is
// in setup, settling the underlying difference with the admin.
func (k Keeper) Rebind(ctx context.Context, poolID uint64, denom string, balance, denorm math.Int, admin sdk.AccAddress) error {
	if denorm.IsNegative() || balance.IsNegative() {
		return types.ErrNegative.Wrap("balance and denorm cannot be negative")
	}

	pool, err := k.requireController(ctx, poolID, admin)
	if err != nil {
		return err
	}
	if pool.Finalized {
		return types.ErrFinalized.Wrapf("pool %d is finalized", poolID)
	}
	if denorm.LT(types.MinWeight) {
		return types.ErrMinWeight.Wrapf("denorm %s below minimum %s", denorm, types.MinWeight)
	}
	if denorm.GT(types.MaxWeight) {
		return types.ErrMaxWeight.Wrapf("denorm %s above maximum %s", denorm, types.MaxWeight)
	}
	if balance.LT(types.MinBalance) {
		return types.ErrMinBalance.Wrapf("balance %s below minimum %s", balance, types.MinBalance)
	}

	rec, err := k.GetRecord(ctx, poolID, denom)
	if err != nil {
		return err
	}

	oldWeight := rec.Denorm
	switch {
	case denorm.GT(oldWeight):
		pool.TotalWeight = pool.TotalWeight.Add(denorm.Sub(oldWeight))
		if pool.TotalWeight.GT(types.MaxTotalWeight) {
			return types.ErrMaxTotalWeight.Wrapf("total weight %s above maximum %s", pool.TotalWeight, types.MaxTotalWeight)
		}
	case denorm.LT(oldWeight):
		pool.TotalWeight = pool.TotalWeight.Sub(oldWeight.Sub(denorm))
	}
	rec.Denorm = denorm

	oldBalance := rec.Balance
	rec.Balance = balance
	switch {
	case balance.GT(oldBalance):
		if err := k.pullUnderlying(ctx, poolID, denom, admin, balance.Sub(oldBalance)); err != nil {
			return err
		}
	case balance.LT(oldBalance):
		if err := k.pushUnderlying(ctx, poolID, denom, admin, oldBalance.Sub(balance)); err != nil {
			return err
		}
	}

	if err := k.SetRecord(ctx, poolID, denom, rec); err != nil {
		return err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRebind,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyBalance, balance.String()),
			sdk.NewAttribute(types.AttributeKeyDenorm, denorm.String()),
		),
	)
	return nil
}

// Unbind removes a token from a pool in setup, returning its balance to the
// user. The ordered token list uses swap-with-last removal so record indices
// stay dense.
func (k Keeper) Unbind(ctx context.Context, poolID uint64, denom string, user sdk.AccAddress) error {
	pool, err := k.requireController(ctx, poolID, user)
	if err != nil {
		return err
	}
	if pool.Finalized {
		return types.ErrFinalized.Wrapf("pool %d is finalized", poolID)
	}

	rec, err := k.GetRecord(ctx, poolID, denom)
	if err != nil {
		return err
	}

	pool.TotalWeight = pool.TotalWeight.Sub(rec.Denorm)

	index := int(rec.Index)
	last := len(pool.Tokens) - 1
	lastDenom := pool.Tokens[last]
	pool.Tokens[index] = lastDenom
	pool.Tokens = pool.Tokens[:last]

	if lastDenom != denom {
		lastRec, err := k.GetRecord(ctx, poolID, lastDenom)
		if err != nil {
			return err
		}
		lastRec.Index = uint32(index)
		if err := k.SetRecord(ctx, poolID, lastDenom, lastRec); err != nil {
			return err
		}
	}

	k.DeleteRecord(ctx, poolID, denom)

	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}
	if err := k.pushUnderlying(ctx, poolID, denom, user, rec.Balance); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnbind,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyBalance, rec.Balance.String()),
		),
	)
	return nil
}

// Finalize locks the token set and opens trading. The initial share supply
// goes to the controller.
func (k Keeper) Finalize(ctx context.Context, poolID uint64, controller sdk.AccAddress) error {
	pool, err := k.requireController(ctx, poolID, controller)
	if err != nil {
		return err
	}
	if pool.Finalized {
		return types.ErrFinalized.Wrapf("pool %d is already finalized", poolID)
	}
	if len(pool.Tokens) < types.MinBoundTokens {
		return types.ErrMinTokens.Wrapf("pool %d has %d tokens, need %d", poolID, len(pool.Tokens), types.MinBoundTokens)
	}

	pool.Finalized = true
	pool.PublicSwap = true
	if err := k.mintShares(ctx, pool, controller, types.InitPoolSupply); err != nil {
		return err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolFinalized,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyController, controller.String()),
		),
	)

	k.metrics.PoolsFinalized.Inc()
	return nil
}

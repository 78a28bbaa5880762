package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// SetSwapFee updates the swap fee; only permitted while the pool is in
// setup.
func (k Keeper) SetSwapFee(ctx context.Context, poolID uint64, fee math.Int, caller sdk.AccAddress) error {
	if fee.IsNegative() {
		return types.ErrNegative.Wrap("swap fee cannot be negative")
	}

	pool, err := k.requireController(ctx, poolID, caller)
	if err != nil {
		return err
	}
	if pool.Finalized {
		return types.ErrFinalized.Wrapf("pool %d is finalized", poolID)
	}
	if fee.LT(types.MinFee) {
		return types.ErrMinFee.Wrapf("swap fee %s below minimum %s", fee, types.MinFee)
	}
	if fee.GT(types.MaxFee) {
		return types.ErrMaxFee.Wrapf("swap fee %s above maximum %s", fee, types.MaxFee)
	}

	pool.SwapFee = fee
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetSwapFee,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeySwapFee, fee.String()),
		),
	)
	return nil
}

// SetController hands pool administration to a new controller.
func (k Keeper) SetController(ctx context.Context, poolID uint64, controller string, caller sdk.AccAddress) error {
	if _, err := sdk.AccAddressFromBech32(controller); err != nil {
		return types.ErrInvalidAddress.Wrapf("invalid controller address: %v", err)
	}

	pool, err := k.requireController(ctx, poolID, caller)
	if err != nil {
		return err
	}

	pool.Controller = controller
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetController,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyController, controller),
		),
	)
	return nil
}

// SetPublicSwap toggles public swapping; only permitted while the pool is in
// setup (finalize forces it on).
func (k Keeper) SetPublicSwap(ctx context.Context, poolID uint64, value bool, caller sdk.AccAddress) error {
	pool, err := k.requireController(ctx, poolID, caller)
	if err != nil {
		return err
	}
	if pool.Finalized {
		return types.ErrFinalized.Wrapf("pool %d is finalized", poolID)
	}

	pool.PublicSwap = value
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetPublicSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyValue, boolString(value)),
		),
	)
	return nil
}

// SetFreezeStatus freezes or unfreezes the pool. While frozen, swaps, joins
// and single-sided deposits are rejected; exits, withdrawals and gulp still
// execute.
func (k Keeper) SetFreezeStatus(ctx context.Context, poolID uint64, value bool, caller sdk.AccAddress) error {
	pool, err := k.requireController(ctx, poolID, caller)
	if err != nil {
		return err
	}

	pool.Frozen = value
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetFreezeStatus,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyValue, boolString(value)),
		),
	)
	return nil
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

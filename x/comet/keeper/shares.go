package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// The share ledger is the pool's own fungible token: 7-decimal shares with a
// transfer/allowance surface. Mint and burn are internal and driven only by
// pool operations, so the supply always equals the sum of balances.

// GetShareBalance returns an address' share balance in a pool.
func (k Keeper) GetShareBalance(ctx context.Context, poolID uint64, addr sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(types.ShareBalanceKey(poolID, addr))
	if bz == nil {
		return math.ZeroInt()
	}
	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return balance
}

// setShareBalance writes an address' share balance, deleting zero entries.
func (k Keeper) setShareBalance(ctx context.Context, poolID uint64, addr sdk.AccAddress, balance math.Int) error {
	store := k.getStore(ctx)
	if balance.IsZero() {
		store.Delete(types.ShareBalanceKey(poolID, addr))
		return nil
	}
	bz, err := balance.Marshal()
	if err != nil {
		return err
	}
	store.Set(types.ShareBalanceKey(poolID, addr), bz)
	return nil
}

// GetTotalShares returns the share supply of a pool.
func (k Keeper) GetTotalShares(ctx context.Context, poolID uint64) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	return pool.TotalShares, nil
}

// IterateShareBalances iterates over all share balances of a pool.
func (k Keeper) IterateShareBalances(ctx context.Context, poolID uint64, cb func(addr sdk.AccAddress, balance math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := types.ShareBalancePoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var balance math.Int
		if err := balance.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		addr := sdk.AccAddress(iterator.Key()[len(prefix):])
		if cb(addr, balance) {
			break
		}
	}
	return nil
}

// mintShares credits newly minted shares and grows the supply. The caller
// persists the pool.
func (k Keeper) mintShares(ctx context.Context, pool *types.Pool, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrNegative.Wrap("mint amount cannot be negative")
	}
	balance := k.GetShareBalance(ctx, pool.Id, to)
	if err := k.setShareBalance(ctx, pool.Id, to, balance.Add(amount)); err != nil {
		return err
	}
	pool.TotalShares = pool.TotalShares.Add(amount)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeShareMint,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(pool.Id)),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// burnShares burns shares held at the pool address and shrinks the supply.
// The caller persists the pool.
func (k Keeper) burnShares(ctx context.Context, pool *types.Pool, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrNegative.Wrap("burn amount cannot be negative")
	}
	poolAddr := types.PoolAddress(pool.Id)
	balance := k.GetShareBalance(ctx, pool.Id, poolAddr)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("pool holds %s shares, burning %s", balance, amount)
	}
	if err := k.setShareBalance(ctx, pool.Id, poolAddr, balance.Sub(amount)); err != nil {
		return err
	}
	pool.TotalShares = pool.TotalShares.Sub(amount)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeShareBurn,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(pool.Id)),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// pullShares moves shares from a user into the pool address ahead of a burn.
func (k Keeper) pullShares(ctx context.Context, poolID uint64, from sdk.AccAddress, amount math.Int) error {
	return k.moveShares(ctx, poolID, from, types.PoolAddress(poolID), amount)
}

// moveShares transfers shares between two holders without touching supply.
func (k Keeper) moveShares(ctx context.Context, poolID uint64, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrNegative.Wrap("transfer amount cannot be negative")
	}
	fromBalance := k.GetShareBalance(ctx, poolID, from)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s below transfer %s", fromBalance, amount)
	}
	if err := k.setShareBalance(ctx, poolID, from, fromBalance.Sub(amount)); err != nil {
		return err
	}
	toBalance := k.GetShareBalance(ctx, poolID, to)
	return k.setShareBalance(ctx, poolID, to, toBalance.Add(amount))
}

// TransferShares moves pool shares between addresses.
func (k Keeper) TransferShares(ctx context.Context, poolID uint64, from, to sdk.AccAddress, amount math.Int) error {
	if _, err := k.GetPool(ctx, poolID); err != nil {
		return err
	}
	if err := k.moveShares(ctx, poolID, from, to, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeShareTransfer,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// ApproveShares grants spender an allowance over the owner's shares until
// the expiration ledger. Granting a positive amount with an expiration below
// the current ledger fails.
func (k Keeper) ApproveShares(ctx context.Context, poolID uint64, owner, spender sdk.AccAddress, amount math.Int, expirationLedger int64) error {
	if amount.IsNegative() {
		return types.ErrNegative.Wrap("allowance cannot be negative")
	}
	if _, err := k.GetPool(ctx, poolID); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if amount.IsPositive() && expirationLedger < sdkCtx.BlockHeight() {
		return types.ErrInvalidExpirationLedger.Wrapf("expiration ledger %d below current ledger %d",
			expirationLedger, sdkCtx.BlockHeight())
	}

	store := k.getStore(ctx)
	key := types.AllowanceKey(poolID, owner, spender)
	if amount.IsZero() {
		store.Delete(key)
	} else {
		value := types.AllowanceValue{Amount: amount, ExpirationLedger: expirationLedger}
		bz, err := value.Marshal()
		if err != nil {
			return err
		}
		store.Set(key, bz)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeShareApprove,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyFrom, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyExpiration, formatLedger(expirationLedger)),
		),
	)
	return nil
}

// GetAllowance returns the live allowance and its expiration. Expired
// allowances read as zero.
func (k Keeper) GetAllowance(ctx context.Context, poolID uint64, owner, spender sdk.AccAddress) (math.Int, int64) {
	bz := k.getStore(ctx).Get(types.AllowanceKey(poolID, owner, spender))
	if bz == nil {
		return math.ZeroInt(), 0
	}
	var value types.AllowanceValue
	if err := value.Unmarshal(bz); err != nil {
		return math.ZeroInt(), 0
	}
	if value.ExpirationLedger < sdk.UnwrapSDKContext(ctx).BlockHeight() {
		return math.ZeroInt(), value.ExpirationLedger
	}
	return value.Amount, value.ExpirationLedger
}

// spendAllowance consumes part of a live allowance.
func (k Keeper) spendAllowance(ctx context.Context, poolID uint64, owner, spender sdk.AccAddress, amount math.Int) error {
	allowance, expiration := k.GetAllowance(ctx, poolID, owner, spender)
	if allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf("allowance %s below transfer %s", allowance, amount)
	}

	store := k.getStore(ctx)
	key := types.AllowanceKey(poolID, owner, spender)
	remaining := allowance.Sub(amount)
	if remaining.IsZero() {
		store.Delete(key)
		return nil
	}
	value := types.AllowanceValue{Amount: remaining, ExpirationLedger: expiration}
	bz, err := value.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

// TransferSharesFrom moves shares using a previously granted allowance.
func (k Keeper) TransferSharesFrom(ctx context.Context, poolID uint64, spender, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNegative() {
		return types.ErrNegative.Wrap("transfer amount cannot be negative")
	}
	if _, err := k.GetPool(ctx, poolID); err != nil {
		return err
	}
	if err := k.spendAllowance(ctx, poolID, from, spender, amount); err != nil {
		return err
	}
	if err := k.moveShares(ctx, poolID, from, to, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeShareTransfer,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)

	var poolID uint64 = 1
	if bz != nil {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(types.PoolCountKey, nextBz)

	return poolID
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.PoolCountKey, bz)
}

// PeekNextPoolID reads the counter without incrementing it.
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetPool retrieves a pool by ID
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := pool.Unmarshal(bz); err != nil {
		return nil, err
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := pool.Marshal()
	if err != nil {
		return err
	}
	store.Set(types.PoolKey(pool.Id), bz)
	return nil
}

// GetRecord retrieves the record of a bound token
func (k Keeper) GetRecord(ctx context.Context, poolID uint64, denom string) (types.Record, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.RecordKey(poolID, denom))
	if bz == nil {
		return types.Record{}, types.ErrNotBound.Wrapf("token %s is not bound to pool %d", denom, poolID)
	}

	var rec types.Record
	if err := rec.Unmarshal(bz); err != nil {
		return types.Record{}, err
	}
	if !rec.Bound {
		return types.Record{}, types.ErrNotBound.Wrapf("token %s is not bound to pool %d", denom, poolID)
	}
	return rec, nil
}

// SetRecord saves a token record
func (k Keeper) SetRecord(ctx context.Context, poolID uint64, denom string, rec types.Record) error {
	store := k.getStore(ctx)
	bz, err := rec.Marshal()
	if err != nil {
		return err
	}
	store.Set(types.RecordKey(poolID, denom), bz)
	return nil
}

// DeleteRecord removes a token record
func (k Keeper) DeleteRecord(ctx context.Context, poolID uint64, denom string) {
	k.getStore(ctx).Delete(types.RecordKey(poolID, denom))
}

// HasRecord reports whether a record exists regardless of its bound flag.
func (k Keeper) HasRecord(ctx context.Context, poolID uint64, denom string) bool {
	return k.getStore(ctx).Has(types.RecordKey(poolID, denom))
}

// IteratePools iterates over all pools
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := pool.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

// CreatePool opens a new pool in the setup state. The controller then binds
// tokens and finalizes. The swap fee starts at the minimum.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, controller string) (*types.Pool, error) {
	if _, err := sdk.AccAddressFromBech32(controller); err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid controller address: %v", err)
	}

	poolID := k.GetNextPoolID(ctx)
	pool := &types.Pool{
		Id:          poolID,
		Controller:  controller,
		Tokens:      []string{},
		SwapFee:     types.MinFee,
		TotalWeight: math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyCaller, creator.String()),
			sdk.NewAttribute(types.AttributeKeyController, controller),
		),
	)

	k.metrics.PoolsCreated.Inc()
	return pool, nil
}

// InitPool creates, funds and finalizes a pool in one shot. Weights are
// normalized 7-decimal values that must sum to exactly one; they scale into
// the denormalized weight domain internally.
func (k Keeper) InitPool(ctx context.Context, creator sdk.AccAddress, controller string, tokens []string, weights, balances []math.Int, swapFee math.Int) (*types.Pool, error) {
	if len(tokens) != len(weights) || len(tokens) != len(balances) {
		return nil, types.ErrInvalidVectorLen.Wrap("tokens, weights and balances must have equal length")
	}
	if len(tokens) < types.MinBoundTokens {
		return nil, types.ErrMinTokens.Wrapf("need at least %d tokens, got %d", types.MinBoundTokens, len(tokens))
	}
	if len(tokens) > types.MaxBoundTokens {
		return nil, types.ErrMaxTokens.Wrapf("at most %d tokens, got %d", types.MaxBoundTokens, len(tokens))
	}
	if swapFee.LT(types.MinFee) {
		return nil, types.ErrMinFee.Wrapf("swap fee %s below minimum %s", swapFee, types.MinFee)
	}
	if swapFee.GT(types.MaxFee) {
		return nil, types.ErrMaxFee.Wrapf("swap fee %s above maximum %s", swapFee, types.MaxFee)
	}

	seen := make(map[string]bool, len(tokens))
	weightSum := math.ZeroInt()
	for i, denom := range tokens {
		if seen[denom] {
			return nil, types.ErrIsBound.Wrapf("duplicate token %s", denom)
		}
		seen[denom] = true
		if weights[i].IsNegative() || balances[i].IsNegative() {
			return nil, types.ErrNegative.Wrap("weights and balances cannot be negative")
		}
		if balances[i].LT(types.MinBalance) {
			return nil, types.ErrMinBalance.Wrapf("balance %s of %s below minimum %s", balances[i], denom, types.MinBalance)
		}
		weightSum = weightSum.Add(weights[i])
	}
	if !weightSum.Equal(types.NormalizedTotal) {
		return nil, types.ErrTotalWeight.Wrapf("weights sum to %s, expected %s", weightSum, types.NormalizedTotal)
	}

	pool, err := k.CreatePool(ctx, creator, controller)
	if err != nil {
		return nil, err
	}
	pool.SwapFee = swapFee
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	controllerAddr := sdk.MustAccAddressFromBech32(controller)
	for i, denom := range tokens {
		denorm := weights[i].MulRaw(types.DenormPerNormalized)
		if err := k.Bind(ctx, pool.Id, denom, balances[i], denorm, controllerAddr); err != nil {
			return nil, err
		}
	}

	if err := k.Finalize(ctx, pool.Id, controllerAddr); err != nil {
		return nil, err
	}
	return k.GetPool(ctx, pool.Id)
}

// Gulp syncs a record to the pool's actual on-chain balance, crediting any
// externally transferred amount without minting shares.
func (k Keeper) Gulp(ctx context.Context, poolID uint64, denom string) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	rec, err := k.GetRecord(ctx, poolID, denom)
	if err != nil {
		return math.Int{}, err
	}

	chainBalance := k.bankKeeper.GetBalance(ctx, types.PoolAddress(pool.Id), denom)
	rec.Balance = chainBalance.Amount
	if err := k.SetRecord(ctx, poolID, denom, rec); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGulp,
			sdk.NewAttribute(types.AttributeKeyPoolID, formatPoolID(poolID)),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyBalance, rec.Balance.String()),
		),
	)
	return rec.Balance, nil
}

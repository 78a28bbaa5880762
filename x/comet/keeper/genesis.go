package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// InitGenesis initializes the module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	if genState.PoolCount > 0 {
		k.SetNextPoolID(ctx, genState.PoolCount)
	}
	for i := range genState.Pools {
		if err := k.SetPool(ctx, &genState.Pools[i]); err != nil {
			return err
		}
	}
	for _, rec := range genState.Records {
		if err := k.SetRecord(ctx, rec.PoolId, rec.Denom, rec.Record); err != nil {
			return err
		}
	}
	for _, bal := range genState.ShareBalances {
		addr := sdk.MustAccAddressFromBech32(bal.Address)
		if err := k.setShareBalance(ctx, bal.PoolId, addr, bal.Balance); err != nil {
			return err
		}
	}
	store := k.getStore(ctx)
	for _, allowance := range genState.Allowances {
		owner := sdk.MustAccAddressFromBech32(allowance.Owner)
		spender := sdk.MustAccAddressFromBech32(allowance.Spender)
		value := types.AllowanceValue{Amount: allowance.Amount, ExpirationLedger: allowance.ExpirationLedger}
		bz, err := value.Marshal()
		if err != nil {
			return err
		}
		store.Set(types.AllowanceKey(allowance.PoolId, owner, spender), bz)
	}
	return nil
}

// ExportGenesis exports the module state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesis()
	genState.PoolCount = k.PeekNextPoolID(ctx)

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	genState.Pools = pools

	for _, pool := range pools {
		for _, denom := range pool.Tokens {
			rec, err := k.GetRecord(ctx, pool.Id, denom)
			if err != nil {
				return nil, err
			}
			genState.Records = append(genState.Records, types.GenesisRecord{
				PoolId: pool.Id,
				Denom:  denom,
				Record: rec,
			})
		}

		err = k.IterateShareBalances(ctx, pool.Id, func(addr sdk.AccAddress, balance math.Int) bool {
			genState.ShareBalances = append(genState.ShareBalances, types.GenesisShareBalance{
				PoolId:  pool.Id,
				Address: addr.String(),
				Balance: balance,
			})
			return false
		})
		if err != nil {
			return nil, err
		}

		if err := k.iterateAllowances(ctx, pool.Id, func(owner, spender sdk.AccAddress, value types.AllowanceValue) bool {
			genState.Allowances = append(genState.Allowances, types.GenesisAllowance{
				PoolId:           pool.Id,
				Owner:            owner.String(),
				Spender:          spender.String(),
				Amount:           value.Amount,
				ExpirationLedger: value.ExpirationLedger,
			})
			return false
		}); err != nil {
			return nil, err
		}
	}

	return genState, nil
}

// iterateAllowances walks all allowance entries of a pool.
func (k Keeper) iterateAllowances(ctx context.Context, poolID uint64, cb func(owner, spender sdk.AccAddress, value types.AllowanceValue) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := append(types.AllowanceKeyPrefix, poolIDBytesOf(poolID)...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var value types.AllowanceValue
		if err := value.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		rest := iterator.Key()[len(prefix):]
		ownerLen := int(rest[0])
		owner := sdk.AccAddress(rest[1 : 1+ownerLen])
		spender := sdk.AccAddress(rest[1+ownerLen:])
		if cb(owner, spender, value) {
			break
		}
	}
	return nil
}

func poolIDBytesOf(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return bz
}

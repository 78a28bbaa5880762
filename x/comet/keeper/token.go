package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

func formatPoolID(poolID uint64) string {
	return fmt.Sprintf("%d", poolID)
}

func formatLedger(ledger int64) string {
	return fmt.Sprintf("%d", ledger)
}

// pullUnderlying moves exactly amount of denom from the user into the pool
// address. The transfer amount is always the computed amount, never a
// caller-supplied maximum.
func (k Keeper) pullUnderlying(ctx context.Context, poolID uint64, denom string, from sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	coin := sdk.NewCoin(denom, amount)
	return k.bankKeeper.SendCoins(ctx, from, types.PoolAddress(poolID), sdk.NewCoins(coin))
}

// pushUnderlying moves exactly amount of denom from the pool address to the
// user.
func (k Keeper) pushUnderlying(ctx context.Context, poolID uint64, denom string, to sdk.AccAddress, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	coin := sdk.NewCoin(denom, amount)
	return k.bankKeeper.SendCoins(ctx, types.PoolAddress(poolID), to, sdk.NewCoins(coin))
}

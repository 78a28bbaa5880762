package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// Keeper of the comet store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	authority  string
	metrics    *Metrics
}

// kvStoreProvider is an interface for types that can provide a KVStore.
// This allows getStore() to work with both sdk.Context and direct store
// providers.
type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new comet Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		authority:  authority,
		metrics:    NewMetrics(),
	}
}

// getStore returns the KVStore for the comet module.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetAuthority returns the module authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// BankKeeper returns the underlying bank keeper so tests can inspect
// balances.
func (k Keeper) BankKeeper() types.BankKeeper {
	return k.bankKeeper
}

// tokenDecimals resolves a denom's precision from bank metadata. Denoms
// without metadata default to 7 decimals; anything above 18 cannot be lifted
// into the fixed-point domain and is rejected.
func (k Keeper) tokenDecimals(ctx context.Context, denom string) (uint32, error) {
	meta, found := k.bankKeeper.GetDenomMetaData(ctx, denom)
	if !found {
		return types.DefaultTokenDecimals, nil
	}
	decimals := uint32(types.DefaultTokenDecimals)
	for _, unit := range meta.DenomUnits {
		if unit.Denom == meta.Display {
			decimals = unit.Exponent
		}
	}
	if decimals > types.MaxTokenDecimals {
		return 0, types.ErrTokenInvalid.Wrapf("denom %s has %d decimals", denom, decimals)
	}
	return decimals, nil
}

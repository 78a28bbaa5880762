package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/CometDEX/comet-contracts-v1/x/comet/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// MockBankKeeper is a simple in-memory bank for testing. Unlike the real
// bank keeper it lets tests mint balances and register denom metadata
// directly.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
	metadata map[string]banktypes.Metadata
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
		metadata: make(map[string]banktypes.Metadata),
	}
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	fromKey := fromAddr.String()
	have := m.balances[fromKey]
	if !amt.IsAllLTE(have) {
		return types.ErrInsufficientBalance.Wrapf("account %s holds %s, sending %s", fromKey, have, amt)
	}
	m.balances[fromKey] = have.Sub(amt...)
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	meta, ok := m.metadata[denom]
	return meta, ok
}

// MintToAccount credits a test account out of thin air.
func (m *MockBankKeeper) MintToAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
}

// SetDenomDecimals registers metadata declaring the denom's precision.
func (m *MockBankKeeper) SetDenomDecimals(denom string, decimals uint32) {
	m.metadata[denom] = banktypes.Metadata{
		Base:    denom,
		Display: denom + "_display",
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: denom + "_display", Exponent: decimals},
		},
	}
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// CometKeeper creates a test keeper for the comet module backed by an
// in-memory store and a mock bank keeper.
func CometKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	k := keeper.NewKeeper(storeKey, bank, authority)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())

	return k, ctx, bank
}

// TestAddr returns a deterministic test address.
func TestAddr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// FundedAddr returns a test address funded with the given coins.
func FundedAddr(bank *MockBankKeeper, name string, coins sdk.Coins) sdk.AccAddress {
	addr := TestAddr(name)
	bank.MintToAccount(addr, coins)
	return addr
}

// Stroop converts a whole token count into 7-decimal units.
func Stroop(n int64) math.Int {
	return math.NewInt(n).Mul(math.NewIntWithDecimal(1, 7))
}

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/CometDEX/comet-contracts-v1/testutil/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

const (
	denomA = "uusd"
	denomB = "uxlm"
	denomC = "ubtc"
)

func stroop(n int64) math.Int {
	return keepertest.Stroop(n)
}

func sdkCoins(denom string, amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, amount))
}

// fundedController returns an address holding plenty of every test denom.
func fundedController(bank *keepertest.MockBankKeeper, name string) sdk.AccAddress {
	return keepertest.FundedAddr(bank, name, sdk.NewCoins(
		sdk.NewCoin(denomA, stroop(1_000_000)),
		sdk.NewCoin(denomB, stroop(1_000_000)),
		sdk.NewCoin(denomC, stroop(1_000_000)),
	))
}

// setupFinalizedPool builds a two-token pool through the bind-then-finalize
// path: 100 units of denomA at weight 5 against 50 units of denomB at
// weight 10, 0.3% fee.
func setupFinalizedPool(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bank *keepertest.MockBankKeeper) (uint64, sdk.AccAddress) {
	t.Helper()
	controller := fundedController(bank, "controller")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)
	require.NoError(t, k.SetSwapFee(ctx, pool.Id, math.NewInt(30000), controller))
	require.NoError(t, k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(5), controller))
	require.NoError(t, k.Bind(ctx, pool.Id, denomB, stroop(50), stroop(10), controller))
	require.NoError(t, k.Finalize(ctx, pool.Id, controller))
	return pool.Id, controller
}

// setupBalancedPool builds a 50/50 pool via one-shot initialization: 1000
// units of each token, 0.3% fee.
func setupBalancedPool(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bank *keepertest.MockBankKeeper) (uint64, sdk.AccAddress) {
	t.Helper()
	controller := fundedController(bank, "controller")

	pool, err := k.InitPool(ctx, controller, controller.String(),
		[]string{denomA, denomB},
		[]math.Int{math.NewInt(5_000000), math.NewInt(5_000000)},
		[]math.Int{stroop(1000), stroop(1000)},
		math.NewInt(30000),
	)
	require.NoError(t, err)
	return pool.Id, controller
}

func TestKeeperFixture(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	require.NotNil(t, k)
	require.NotNil(t, bank)

	_, err := k.GetPool(ctx, 1)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

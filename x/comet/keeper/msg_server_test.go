package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/CometDEX/comet-contracts-v1/testutil/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// TestMsgServerPoolLifecycle drives a pool from one-shot initialization
// through a swap and a join/exit purely through the message server, the way
// transactions reach the module on a running chain.
func TestMsgServerPoolLifecycle(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	controller := fundedController(bank, "controller")

	initRes, err := srv.InitPool(ctx, types.NewMsgInitPool(
		controller.String(), controller.String(),
		[]string{denomA, denomB},
		[]math.Int{math.NewInt(5_000000), math.NewInt(5_000000)},
		[]math.Int{stroop(1000), stroop(1000)},
		math.NewInt(30000),
	))
	require.NoError(t, err)
	require.Equal(t, uint64(1), initRes.PoolId)

	pool, err := k.GetPool(ctx, initRes.PoolId)
	require.NoError(t, err)
	require.True(t, pool.Finalized)
	require.Equal(t, types.InitPoolSupply, pool.TotalShares)

	// swap through the msg server
	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomA, stroop(100)))
	swapRes, err := srv.SwapExactAmountIn(ctx, types.NewMsgSwapExactAmountIn(
		trader.String(), initRes.PoolId,
		denomA, stroop(10), denomB, math.ZeroInt(), stroop(100),
	))
	require.NoError(t, err)
	require.True(t, swapRes.TokenAmountOut.IsPositive())
	require.True(t, swapRes.SpotPriceAfter.IsPositive())
	require.Equal(t, swapRes.TokenAmountOut, bank.GetBalance(ctx, trader, denomB).Amount)

	// join and exit through the msg server
	user := keepertest.FundedAddr(bank, "user", sdkCoins(denomA, stroop(10000)).Add(
		sdkCoins(denomB, stroop(10000))...))
	joinRes, err := srv.JoinPool(ctx, types.NewMsgJoinPool(
		user.String(), initRes.PoolId, stroop(50),
		[]math.Int{stroop(10000), stroop(10000)},
	))
	require.NoError(t, err)
	require.Len(t, joinRes.TokenAmountsIn, 2)
	require.Equal(t, stroop(50), k.GetShareBalance(ctx, initRes.PoolId, user))

	exitRes, err := srv.ExitPool(ctx, types.NewMsgExitPool(
		user.String(), initRes.PoolId, stroop(50),
		[]math.Int{math.ZeroInt(), math.ZeroInt()},
	))
	require.NoError(t, err)
	require.Len(t, exitRes.TokenAmountsOut, 2)
	require.True(t, k.GetShareBalance(ctx, initRes.PoolId, user).IsZero())
}

// TestMsgServerShareSurface drives the share-token messages end to end.
func TestMsgServerShareSurface(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)
	poolID, controller := setupBalancedPool(t, k, ctx, bank)

	spender := keepertest.TestAddr("spender")
	recipient := keepertest.TestAddr("recipient")

	_, err := srv.ApproveShares(ctx, types.NewMsgApproveShares(
		controller.String(), poolID, spender.String(), stroop(20), 100))
	require.NoError(t, err)

	_, err = srv.TransferSharesFrom(ctx, types.NewMsgTransferSharesFrom(
		spender.String(), poolID, controller.String(), recipient.String(), stroop(15)))
	require.NoError(t, err)
	require.Equal(t, stroop(15), k.GetShareBalance(ctx, poolID, recipient))

	_, err = srv.TransferShares(ctx, types.NewMsgTransferShares(
		recipient.String(), poolID, spender.String(), stroop(5)))
	require.NoError(t, err)
	require.Equal(t, stroop(5), k.GetShareBalance(ctx, poolID, spender))
}

// TestMsgServerValidateBasic confirms the server rejects malformed messages
// before they touch the keeper.
func TestMsgServerValidateBasic(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)
	poolID, _ := setupBalancedPool(t, k, ctx, bank)

	_, err := srv.SwapExactAmountIn(ctx, &types.MsgSwapExactAmountIn{
		Creator:       "not-an-address",
		PoolId:        poolID,
		TokenIn:       denomA,
		TokenAmountIn: stroop(1),
		TokenOut:      denomB,
		MinAmountOut:  math.ZeroInt(),
		MaxPrice:      stroop(5),
	})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomA, stroop(100)))
	_, err = srv.SwapExactAmountIn(ctx, types.NewMsgSwapExactAmountIn(
		trader.String(), poolID, denomA, math.NewInt(-1), denomB, math.ZeroInt(), stroop(5),
	))
	require.ErrorIs(t, err, types.ErrNegative)
}

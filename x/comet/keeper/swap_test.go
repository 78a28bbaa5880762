package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	keepertest "github.com/CometDEX/comet-contracts-v1/testutil/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

func TestGetSpotPriceBalanced(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupBalancedPool(t, k, ctx, bank)

	// equal balances and weights trade at par
	sansFee, err := k.GetSpotPriceSansFee(ctx, poolID, denomA, denomB)
	require.NoError(t, err)
	require.Equal(t, fixmath.Stroop, sansFee)

	// with the 0.3% fee the price carries the 1/(1-fee) markup, rounded up
	withFee, err := k.GetSpotPrice(ctx, poolID, denomA, denomB)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10030091), withFee)
}

func TestGetSpotPriceReciprocal(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupFinalizedPool(t, k, ctx, bank)

	forward, err := k.GetSpotPriceSansFee(ctx, poolID, denomA, denomB)
	require.NoError(t, err)
	backward, err := k.GetSpotPriceSansFee(ctx, poolID, denomB, denomA)
	require.NoError(t, err)

	// the product is one within downscale rounding of both sides
	product := forward.Mul(backward)
	one := fixmath.Stroop.Mul(fixmath.Stroop)
	require.True(t, product.GTE(one))
	require.True(t, product.LTE(one.Add(forward).Add(backward).AddRaw(1)))
}

func TestSwapExactAmountIn(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupFinalizedPool(t, k, ctx, bank)

	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomA, stroop(100)))

	spotBefore, err := k.GetSpotPrice(ctx, poolID, denomA, denomB)
	require.NoError(t, err)

	amountOut, spotAfter, err := k.SwapExactAmountIn(ctx, poolID,
		denomA, stroop(1), denomB, math.NewInt(2_000000), stroop(5), trader)
	require.NoError(t, err)

	// 50*(1-(100/100.997)^0.5) of a token, rounded down
	require.InDelta(t, 2474264, float64(amountOut.Int64()), 1500)
	require.True(t, spotAfter.GT(spotBefore))

	// balances moved on both sides
	require.Equal(t, stroop(99), bank.GetBalance(ctx, trader, denomA).Amount)
	require.Equal(t, amountOut, bank.GetBalance(ctx, trader, denomB).Amount)

	poolBalanceA, err := k.GetBalance(ctx, poolID, denomA)
	require.NoError(t, err)
	require.Equal(t, stroop(101), poolBalanceA)
	poolBalanceB, err := k.GetBalance(ctx, poolID, denomB)
	require.NoError(t, err)
	require.Equal(t, stroop(50).Sub(amountOut), poolBalanceB)
}

func TestSwapExactAmountInLimits(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupFinalizedPool(t, k, ctx, bank)
	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomA, stroop(1000)))

	// more than half the pool-side balance
	_, _, err := k.SwapExactAmountIn(ctx, poolID,
		denomA, stroop(51), denomB, math.ZeroInt(), stroop(100), trader)
	require.ErrorIs(t, err, types.ErrMaxInRatio)

	// output below the requested minimum
	_, _, err = k.SwapExactAmountIn(ctx, poolID,
		denomA, stroop(1), denomB, math.NewInt(3_000000), stroop(5), trader)
	require.ErrorIs(t, err, types.ErrLimitOut)

	// limit price below the current spot price
	_, _, err = k.SwapExactAmountIn(ctx, poolID,
		denomA, stroop(1), denomB, math.ZeroInt(), math.NewInt(1_000000), trader)
	require.ErrorIs(t, err, types.ErrBadLimitPrice)
}

func TestSwapExactAmountOut(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupFinalizedPool(t, k, ctx, bank)
	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomA, stroop(100)))

	amountIn, spotAfter, err := k.SwapExactAmountOut(ctx, poolID,
		denomA, stroop(10), denomB, stroop(1), stroop(10), trader)
	require.NoError(t, err)

	// 100*((50/49)^2-1)/0.997 of a token, rounded up
	require.InDelta(t, 4.1357e7, float64(amountIn.Int64()), 3e4)
	require.True(t, spotAfter.IsPositive())

	require.Equal(t, stroop(1), bank.GetBalance(ctx, trader, denomB).Amount)
	require.Equal(t, stroop(100).Sub(amountIn), bank.GetBalance(ctx, trader, denomA).Amount)
}

func TestSwapExactAmountOutMaxOutRatio(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupFinalizedPool(t, k, ctx, bank)
	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomA, stroop(10000)))

	// more than a third of the pool-side balance
	_, _, err := k.SwapExactAmountOut(ctx, poolID,
		denomA, stroop(10000), denomB, stroop(17), stroop(100), trader)
	require.ErrorIs(t, err, types.ErrMaxOutRatio)
}

func TestSwapGating(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomA, stroop(100)))

	// swaps need a finalized pool
	controller := fundedController(bank, "controller")
	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)
	require.NoError(t, k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(5), controller))
	require.NoError(t, k.Bind(ctx, pool.Id, denomB, stroop(50), stroop(10), controller))

	_, _, err = k.SwapExactAmountIn(ctx, pool.Id,
		denomA, stroop(1), denomB, math.ZeroInt(), stroop(5), trader)
	require.ErrorIs(t, err, types.ErrNotFinalized)

	// frozen pools only allow withdrawals
	require.NoError(t, k.Finalize(ctx, pool.Id, controller))
	require.NoError(t, k.SetFreezeStatus(ctx, pool.Id, true, controller))

	_, _, err = k.SwapExactAmountIn(ctx, pool.Id,
		denomA, stroop(1), denomB, math.ZeroInt(), stroop(5), trader)
	require.ErrorIs(t, err, types.ErrFreezeOnlyWithdrawals)

	_, _, err = k.SwapExactAmountOut(ctx, pool.Id,
		denomA, stroop(10), denomB, stroop(1), stroop(5), trader)
	require.ErrorIs(t, err, types.ErrFreezeOnlyWithdrawals)

	// unfreezing restores trading
	require.NoError(t, k.SetFreezeStatus(ctx, pool.Id, false, controller))
	_, _, err = k.SwapExactAmountIn(ctx, pool.Id,
		denomA, stroop(1), denomB, math.ZeroInt(), stroop(5), trader)
	require.NoError(t, err)
}

func TestSwapUnboundToken(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupFinalizedPool(t, k, ctx, bank)
	trader := keepertest.FundedAddr(bank, "trader", sdkCoins(denomC, stroop(100)))

	_, _, err := k.SwapExactAmountIn(ctx, poolID,
		denomC, stroop(1), denomB, math.ZeroInt(), stroop(5), trader)
	require.ErrorIs(t, err, types.ErrNotBound)
}

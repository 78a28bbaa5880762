package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/CometDEX/comet-contracts-v1/testutil/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

func TestBindAndRebind(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)

	require.NoError(t, k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(5), controller))

	rec, err := k.GetRecord(ctx, pool.Id, denomA)
	require.NoError(t, err)
	require.Equal(t, stroop(100), rec.Balance)
	require.Equal(t, stroop(5), rec.Denorm)
	require.Equal(t, uint32(0), rec.Index)
	require.True(t, rec.Bound)

	// binding pulled the balance from the controller
	require.Equal(t, stroop(100), bank.GetBalance(ctx, types.PoolAddress(pool.Id), denomA).Amount)

	// rebinding down refunds the difference and adjusts the weight
	require.NoError(t, k.Rebind(ctx, pool.Id, denomA, stroop(60), stroop(7), controller))
	rec, err = k.GetRecord(ctx, pool.Id, denomA)
	require.NoError(t, err)
	require.Equal(t, stroop(60), rec.Balance)
	require.Equal(t, stroop(7), rec.Denorm)
	require.Equal(t, stroop(60), bank.GetBalance(ctx, types.PoolAddress(pool.Id), denomA).Amount)

	totalWeight, err := k.GetTotalDenormalizedWeight(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, stroop(7), totalWeight)
}

func TestBindValidation(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")
	stranger := keepertest.TestAddr("stranger")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)

	// only the controller binds
	err = k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(5), stranger)
	require.ErrorIs(t, err, types.ErrNotController)

	// weight and balance bounds
	err = k.Bind(ctx, pool.Id, denomA, stroop(100), math.NewInt(1), controller)
	require.ErrorIs(t, err, types.ErrMinWeight)
	err = k.Bind(ctx, pool.Id, denomB, stroop(100), stroop(51), controller)
	require.ErrorIs(t, err, types.ErrMaxWeight)
	err = k.Bind(ctx, pool.Id, denomC, math.NewInt(10), stroop(5), controller)
	require.ErrorIs(t, err, types.ErrMinBalance)

	// double bind
	require.NoError(t, k.Rebind(ctx, pool.Id, denomA, stroop(100), stroop(5), controller))
	err = k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(5), controller)
	require.ErrorIs(t, err, types.ErrIsBound)
}

func TestBindMaxTokens(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)

	denoms := []string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7"}
	for _, denom := range denoms {
		keepertest.FundedAddr(bank, "controller", sdkCoins(denom, stroop(1000)))
		require.NoError(t, k.Bind(ctx, pool.Id, denom, stroop(100), stroop(5), controller))
	}

	keepertest.FundedAddr(bank, "controller", sdkCoins("t8", stroop(1000)))
	err = k.Bind(ctx, pool.Id, "t8", stroop(100), stroop(5), controller)
	require.ErrorIs(t, err, types.ErrMaxTokens)
}

func TestRebindMaxTotalWeight(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)

	require.NoError(t, k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(50), controller))
	err = k.Bind(ctx, pool.Id, denomB, stroop(100), stroop(50), controller)
	require.ErrorIs(t, err, types.ErrMaxTotalWeight)
}

func TestUnbindSwapWithLast(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)
	require.NoError(t, k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(5), controller))
	require.NoError(t, k.Bind(ctx, pool.Id, denomB, stroop(100), stroop(5), controller))
	require.NoError(t, k.Bind(ctx, pool.Id, denomC, stroop(100), stroop(5), controller))

	balanceBefore := bank.GetBalance(ctx, controller, denomA).Amount

	// removing the first token moves the last into its slot
	require.NoError(t, k.Unbind(ctx, pool.Id, denomA, controller))

	tokens, err := k.GetTokens(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, []string{denomC, denomB}, tokens)

	rec, err := k.GetRecord(ctx, pool.Id, denomC)
	require.NoError(t, err)
	require.Equal(t, uint32(0), rec.Index)

	require.False(t, k.IsBound(ctx, pool.Id, denomA))

	// the balance came back to the controller
	balanceAfter := bank.GetBalance(ctx, controller, denomA).Amount
	require.Equal(t, stroop(100), balanceAfter.Sub(balanceBefore))

	totalWeight, err := k.GetTotalDenormalizedWeight(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, stroop(10), totalWeight)
}

func TestFinalize(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)
	require.NoError(t, k.Bind(ctx, pool.Id, denomA, stroop(100), stroop(5), controller))

	// one bound token is not enough
	err = k.Finalize(ctx, pool.Id, controller)
	require.ErrorIs(t, err, types.ErrMinTokens)

	require.NoError(t, k.Bind(ctx, pool.Id, denomB, stroop(100), stroop(5), controller))
	require.NoError(t, k.Finalize(ctx, pool.Id, controller))

	finalized, err := k.IsFinalized(ctx, pool.Id)
	require.NoError(t, err)
	require.True(t, finalized)
	publicSwap, err := k.IsPublicSwap(ctx, pool.Id)
	require.NoError(t, err)
	require.True(t, publicSwap)
	require.Equal(t, types.InitPoolSupply, k.GetShareBalance(ctx, pool.Id, controller))

	// finalized pools reject setup operations
	err = k.Finalize(ctx, pool.Id, controller)
	require.ErrorIs(t, err, types.ErrFinalized)
	err = k.Bind(ctx, pool.Id, denomC, stroop(100), stroop(5), controller)
	require.ErrorIs(t, err, types.ErrFinalized)
	err = k.Unbind(ctx, pool.Id, denomA, controller)
	require.ErrorIs(t, err, types.ErrFinalized)
	err = k.SetSwapFee(ctx, pool.Id, math.NewInt(40000), controller)
	require.ErrorIs(t, err, types.ErrFinalized)
}

func TestBundleBind(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)

	err = k.BundleBind(ctx, pool.Id,
		[]string{denomA, denomB},
		[]math.Int{stroop(100), stroop(200)},
		[]math.Int{stroop(5), stroop(10)},
		controller,
	)
	require.NoError(t, err)

	tokens, err := k.GetTokens(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, []string{denomA, denomB}, tokens)

	totalWeight, err := k.GetTotalDenormalizedWeight(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, stroop(15), totalWeight)

	// mismatched vectors abort before any bind
	err = k.BundleBind(ctx, pool.Id, []string{denomC}, nil, nil, controller)
	require.ErrorIs(t, err, types.ErrInvalidVectorLen)
}

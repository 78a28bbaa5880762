package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/CometDEX/comet-contracts-v1/testutil/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

func TestCreatePool(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	creator := fundedController(bank, "creator")

	pool, err := k.CreatePool(ctx, creator, creator.String())
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)
	require.False(t, pool.Finalized)
	require.False(t, pool.PublicSwap)
	require.Equal(t, types.MinFee, pool.SwapFee)
	require.Empty(t, pool.Tokens)

	second, err := k.CreatePool(ctx, creator, creator.String())
	require.NoError(t, err)
	require.Equal(t, uint64(2), second.Id)
}

func TestInitPool(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, controller := setupBalancedPool(t, k, ctx, bank)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.True(t, pool.Finalized)
	require.True(t, pool.PublicSwap)
	require.Equal(t, types.InitPoolSupply, pool.TotalShares)
	require.Len(t, pool.Tokens, 2)

	// normalized weights scale into the denorm domain
	denorm, err := k.GetDenormalizedWeight(ctx, poolID, denomA)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5_000000).MulRaw(types.DenormPerNormalized), denorm)

	// the controller paid the starting balances and holds the supply
	require.Equal(t, types.InitPoolSupply, k.GetShareBalance(ctx, poolID, controller))
	chainBalance := bank.GetBalance(ctx, types.PoolAddress(poolID), denomA)
	require.Equal(t, stroop(1000), chainBalance.Amount)
}

func TestInitPoolValidation(t *testing.T) {
	weights := func(ws ...int64) []math.Int {
		out := make([]math.Int, len(ws))
		for i, w := range ws {
			out[i] = math.NewInt(w)
		}
		return out
	}
	balances := func(n int) []math.Int {
		out := make([]math.Int, n)
		for i := range out {
			out[i] = stroop(1000)
		}
		return out
	}
	manyTokens := []string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8"}

	tests := []struct {
		name     string
		tokens   []string
		weights  []math.Int
		balances []math.Int
		swapFee  math.Int
		wantErr  error
	}{
		{
			name:     "weights off by one",
			tokens:   []string{denomA, denomB},
			weights:  weights(5_000000, 5_000001),
			balances: balances(2),
			swapFee:  math.NewInt(30000),
			wantErr:  types.ErrTotalWeight,
		},
		{
			name:     "one token",
			tokens:   []string{denomA},
			weights:  weights(10_000000),
			balances: balances(1),
			swapFee:  math.NewInt(30000),
			wantErr:  types.ErrMinTokens,
		},
		{
			name:     "nine tokens",
			tokens:   manyTokens,
			weights:  weights(1_111111, 1_111111, 1_111111, 1_111111, 1_111111, 1_111111, 1_111111, 1_111111, 1_111112),
			balances: balances(9),
			swapFee:  math.NewInt(30000),
			wantErr:  types.ErrMaxTokens,
		},
		{
			name:     "duplicate token",
			tokens:   []string{denomA, denomA},
			weights:  weights(5_000000, 5_000000),
			balances: balances(2),
			swapFee:  math.NewInt(30000),
			wantErr:  types.ErrIsBound,
		},
		{
			name:     "fee below minimum",
			tokens:   []string{denomA, denomB},
			weights:  weights(5_000000, 5_000000),
			balances: balances(2),
			swapFee:  math.NewInt(1),
			wantErr:  types.ErrMinFee,
		},
		{
			name:     "fee above maximum",
			tokens:   []string{denomA, denomB},
			weights:  weights(5_000000, 5_000000),
			balances: balances(2),
			swapFee:  math.NewInt(2_000000),
			wantErr:  types.ErrMaxFee,
		},
		{
			name:     "vector length mismatch",
			tokens:   []string{denomA, denomB},
			weights:  weights(5_000000),
			balances: balances(2),
			swapFee:  math.NewInt(30000),
			wantErr:  types.ErrInvalidVectorLen,
		},
		{
			name:     "balance below minimum",
			tokens:   []string{denomA, denomB},
			weights:  weights(5_000000, 5_000000),
			balances: []math.Int{math.NewInt(99), stroop(1000)},
			swapFee:  math.NewInt(30000),
			wantErr:  types.ErrMinBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ctx, bank := keepertest.CometKeeper(t)
			creator := fundedController(bank, "creator")
			for _, denom := range manyTokens {
				bank.MintToAccount(creator, sdk.NewCoins(sdk.NewCoin(denom, stroop(100_000))))
			}

			_, err := k.InitPool(ctx, creator, creator.String(), tt.tokens, tt.weights, tt.balances, tt.swapFee)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGulp(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupBalancedPool(t, k, ctx, bank)

	// a donation straight to the pool address is invisible until gulped
	donation := stroop(5)
	bank.MintToAccount(types.PoolAddress(poolID), sdk.NewCoins(sdk.NewCoin(denomA, donation)))

	before, err := k.GetBalance(ctx, poolID, denomA)
	require.NoError(t, err)
	require.Equal(t, stroop(1000), before)

	supplyBefore, err := k.GetTotalShares(ctx, poolID)
	require.NoError(t, err)

	synced, err := k.Gulp(ctx, poolID, denomA)
	require.NoError(t, err)
	require.Equal(t, stroop(1005), synced)

	after, err := k.GetBalance(ctx, poolID, denomA)
	require.NoError(t, err)
	require.Equal(t, stroop(1005), after)

	// gulp credits the pool without minting shares
	supplyAfter, err := k.GetTotalShares(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, supplyBefore, supplyAfter)
}

func TestGulpUnboundToken(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, _ := setupBalancedPool(t, k, ctx, bank)

	_, err := k.Gulp(ctx, poolID, denomC)
	require.ErrorIs(t, err, types.ErrNotBound)
}

func TestTokenDecimalsFromMetadata(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")

	// a six-decimal token gets scalar 10^12, captured at bind
	bank.SetDenomDecimals(denomC, 6)

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)
	require.NoError(t, k.Bind(ctx, pool.Id, denomC, stroop(100), stroop(5), controller))

	rec, err := k.GetRecord(ctx, pool.Id, denomC)
	require.NoError(t, err)
	require.Equal(t, math.NewIntWithDecimal(1, 12), rec.Scalar)
}

func TestBindRejectsTooManyDecimals(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	controller := fundedController(bank, "controller")
	bank.SetDenomDecimals(denomC, 19)

	pool, err := k.CreatePool(ctx, controller, controller.String())
	require.NoError(t, err)
	err = k.Bind(ctx, pool.Id, denomC, stroop(100), stroop(5), controller)
	require.ErrorIs(t, err, types.ErrTokenInvalid)
}

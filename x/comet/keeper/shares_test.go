package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/CometDEX/comet-contracts-v1/testutil/keeper"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

func TestTransferShares(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, controller := setupBalancedPool(t, k, ctx, bank)
	recipient := keepertest.TestAddr("recipient")

	require.NoError(t, k.TransferShares(ctx, poolID, controller, recipient, stroop(10)))

	require.Equal(t, stroop(10), k.GetShareBalance(ctx, poolID, recipient))
	require.Equal(t, types.InitPoolSupply.Sub(stroop(10)), k.GetShareBalance(ctx, poolID, controller))

	// supply is untouched by transfers
	supply, err := k.GetTotalShares(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, types.InitPoolSupply, supply)

	err = k.TransferShares(ctx, poolID, recipient, controller, stroop(11))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestApproveAndTransferFrom(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, controller := setupBalancedPool(t, k, ctx, bank)
	spender := keepertest.TestAddr("spender")
	recipient := keepertest.TestAddr("recipient")

	require.NoError(t, k.ApproveShares(ctx, poolID, controller, spender, stroop(20), 100))

	allowance, expiration := k.GetAllowance(ctx, poolID, controller, spender)
	require.Equal(t, stroop(20), allowance)
	require.Equal(t, int64(100), expiration)

	require.NoError(t, k.TransferSharesFrom(ctx, poolID, spender, controller, recipient, stroop(15)))
	require.Equal(t, stroop(15), k.GetShareBalance(ctx, poolID, recipient))

	// the spend drew the allowance down
	allowance, _ = k.GetAllowance(ctx, poolID, controller, spender)
	require.Equal(t, stroop(5), allowance)

	err := k.TransferSharesFrom(ctx, poolID, spender, controller, recipient, stroop(6))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)
}

func TestApproveExpiration(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, controller := setupBalancedPool(t, k, ctx, bank)
	spender := keepertest.TestAddr("spender")

	// granting a positive amount with a past expiration ledger fails
	err := k.ApproveShares(ctx, poolID, controller, spender, stroop(20), 0)
	require.ErrorIs(t, err, types.ErrInvalidExpirationLedger)

	// a live allowance reads as zero once its ledger passes
	require.NoError(t, k.ApproveShares(ctx, poolID, controller, spender, stroop(20), 50))

	later := ctx.WithBlockHeight(51)
	allowance, _ := k.GetAllowance(later, poolID, controller, spender)
	require.True(t, allowance.IsZero())

	err = k.TransferSharesFrom(later, poolID, spender, controller, keepertest.TestAddr("recipient"), stroop(1))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)

	// revoking with zero amount is always legal, past ledger or not
	require.NoError(t, k.ApproveShares(later, poolID, controller, spender, math.ZeroInt(), 0))
}

func TestShareSupplyMatchesBalances(t *testing.T) {
	k, ctx, bank := keepertest.CometKeeper(t)
	poolID, controller := setupBalancedPool(t, k, ctx, bank)
	user := keepertest.FundedAddr(bank, "user", sdkCoins(denomA, stroop(1000)))

	_, err := k.DepositGivenTokenIn(ctx, poolID, denomA, stroop(10), math.ZeroInt(), user)
	require.NoError(t, err)
	require.NoError(t, k.TransferShares(ctx, poolID, controller, keepertest.TestAddr("recipient"), stroop(3)))

	supply, err := k.GetTotalShares(ctx, poolID)
	require.NoError(t, err)

	sum := math.ZeroInt()
	err = k.IterateShareBalances(ctx, poolID, func(_ sdk.AccAddress, balance math.Int) bool {
		sum = sum.Add(balance)
		return false
	})
	require.NoError(t, err)
	require.Equal(t, supply, sum)
}

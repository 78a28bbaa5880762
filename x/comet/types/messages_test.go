package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

func testAddr(name string) string {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz).String()
}

func TestMsgInitPoolValidateBasic(t *testing.T) {
	valid := types.NewMsgInitPool(
		testAddr("creator"), testAddr("controller"),
		[]string{"uusd", "uxlm"},
		[]math.Int{math.NewInt(5_000000), math.NewInt(5_000000)},
		[]math.Int{math.NewInt(1_000000000), math.NewInt(1_000000000)},
		math.NewInt(30000),
	)
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.Creator = "not-an-address"
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAddress)

	bad = *valid
	bad.Weights = bad.Weights[:1]
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidVectorLen)

	bad = *valid
	bad.Balances = []math.Int{math.NewInt(-1), math.NewInt(1)}
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNegativeOrZero)

	bad = *valid
	bad.SwapFee = math.NewInt(-1)
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNegative)
}

func TestMsgSwapExactAmountInValidateBasic(t *testing.T) {
	valid := types.NewMsgSwapExactAmountIn(
		testAddr("creator"), 1, "uusd", math.NewInt(100), "uxlm",
		math.NewInt(1), math.NewInt(1_000000000),
	)
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.TokenAmountIn = math.NewInt(-1)
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNegative)

	bad = *valid
	bad.TokenOut = ""
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNotBound)

	bad = *valid
	bad.MaxPrice = math.Int{}
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNegative)
}

func TestMsgJoinPoolValidateBasic(t *testing.T) {
	valid := types.NewMsgJoinPool(testAddr("creator"), 1, math.NewInt(100),
		[]math.Int{math.NewInt(1), math.NewInt(2)})
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.PoolAmountOut = math.ZeroInt()
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNegativeOrZero)

	bad = *valid
	bad.MaxAmountsIn = []math.Int{math.ZeroInt()}
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNegativeOrZero)
}

func TestMsgApproveSharesValidateBasic(t *testing.T) {
	valid := types.NewMsgApproveShares(testAddr("owner"), 1, testAddr("spender"), math.NewInt(10), 100)
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.Amount = math.NewInt(-5)
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrNegative)

	bad = *valid
	bad.Spender = "nope"
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgRouteAndType(t *testing.T) {
	msg := types.NewMsgGulp(testAddr("creator"), 1, "uusd")
	require.Equal(t, types.RouterKey, msg.Route())
	require.Equal(t, types.TypeMsgGulp, msg.Type())
	require.Len(t, msg.GetSigners(), 1)
}

package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	InitPool(context.Context, *MsgInitPool) (*MsgInitPoolResponse, error)
	Bind(context.Context, *MsgBind) (*MsgBindResponse, error)
	Rebind(context.Context, *MsgRebind) (*MsgRebindResponse, error)
	Unbind(context.Context, *MsgUnbind) (*MsgUnbindResponse, error)
	Finalize(context.Context, *MsgFinalize) (*MsgFinalizeResponse, error)
	SetSwapFee(context.Context, *MsgSetSwapFee) (*MsgSetSwapFeeResponse, error)
	SetController(context.Context, *MsgSetController) (*MsgSetControllerResponse, error)
	SetPublicSwap(context.Context, *MsgSetPublicSwap) (*MsgSetPublicSwapResponse, error)
	SetFreezeStatus(context.Context, *MsgSetFreezeStatus) (*MsgSetFreezeStatusResponse, error)
	Gulp(context.Context, *MsgGulp) (*MsgGulpResponse, error)
	JoinPool(context.Context, *MsgJoinPool) (*MsgJoinPoolResponse, error)
	ExitPool(context.Context, *MsgExitPool) (*MsgExitPoolResponse, error)
	SwapExactAmountIn(context.Context, *MsgSwapExactAmountIn) (*MsgSwapExactAmountInResponse, error)
	SwapExactAmountOut(context.Context, *MsgSwapExactAmountOut) (*MsgSwapExactAmountOutResponse, error)
	DepositGivenTokenIn(context.Context, *MsgDepositGivenTokenIn) (*MsgDepositGivenTokenInResponse, error)
	DepositGivenLpOut(context.Context, *MsgDepositGivenLpOut) (*MsgDepositGivenLpOutResponse, error)
	WithdrawGivenLpIn(context.Context, *MsgWithdrawGivenLpIn) (*MsgWithdrawGivenLpInResponse, error)
	WithdrawGivenTokenOut(context.Context, *MsgWithdrawGivenTokenOut) (*MsgWithdrawGivenTokenOutResponse, error)
	TransferShares(context.Context, *MsgTransferShares) (*MsgTransferSharesResponse, error)
	TransferSharesFrom(context.Context, *MsgTransferSharesFrom) (*MsgTransferSharesFromResponse, error)
	ApproveShares(context.Context, *MsgApproveShares) (*MsgApproveSharesResponse, error)
}

// Response types

type MsgCreatePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

type MsgInitPoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

type MsgBindResponse struct{}

type MsgRebindResponse struct{}

type MsgUnbindResponse struct{}

type MsgFinalizeResponse struct{}

type MsgSetSwapFeeResponse struct{}

type MsgSetControllerResponse struct{}

type MsgSetPublicSwapResponse struct{}

type MsgSetFreezeStatusResponse struct{}

type MsgGulpResponse struct {
	Balance math.Int `json:"balance"`
}

type MsgJoinPoolResponse struct {
	TokenAmountsIn []math.Int `json:"token_amounts_in"`
}

type MsgExitPoolResponse struct {
	TokenAmountsOut []math.Int `json:"token_amounts_out"`
}

type MsgSwapExactAmountInResponse struct {
	TokenAmountOut math.Int `json:"token_amount_out"`
	SpotPriceAfter math.Int `json:"spot_price_after"`
}

type MsgSwapExactAmountOutResponse struct {
	TokenAmountIn  math.Int `json:"token_amount_in"`
	SpotPriceAfter math.Int `json:"spot_price_after"`
}

type MsgDepositGivenTokenInResponse struct {
	PoolAmountOut math.Int `json:"pool_amount_out"`
}

type MsgDepositGivenLpOutResponse struct {
	TokenAmountIn math.Int `json:"token_amount_in"`
}

type MsgWithdrawGivenLpInResponse struct {
	TokenAmountOut math.Int `json:"token_amount_out"`
}

type MsgWithdrawGivenTokenOutResponse struct {
	PoolAmountIn math.Int `json:"pool_amount_in"`
}

type MsgTransferSharesResponse struct{}

type MsgTransferSharesFromResponse struct{}

type MsgApproveSharesResponse struct{}

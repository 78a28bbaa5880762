package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface for
// the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	pool, err := m.Keeper.CreatePool(ctx, creator, msg.Controller)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

func (m msgServer) InitPool(ctx context.Context, msg *types.MsgInitPool) (*types.MsgInitPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	pool, err := m.Keeper.InitPool(ctx, creator, msg.Controller, msg.Tokens, msg.Weights, msg.Balances, msg.SwapFee)
	if err != nil {
		return nil, err
	}
	return &types.MsgInitPoolResponse{PoolId: pool.Id}, nil
}

func (m msgServer) Bind(ctx context.Context, msg *types.MsgBind) (*types.MsgBindResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.Bind(ctx, msg.PoolId, msg.Token, msg.Balance, msg.Denorm, creator); err != nil {
		return nil, err
	}
	return &types.MsgBindResponse{}, nil
}

func (m msgServer) Rebind(ctx context.Context, msg *types.MsgRebind) (*types.MsgRebindResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.Rebind(ctx, msg.PoolId, msg.Token, msg.Balance, msg.Denorm, creator); err != nil {
		return nil, err
	}
	return &types.MsgRebindResponse{}, nil
}

func (m msgServer) Unbind(ctx context.Context, msg *types.MsgUnbind) (*types.MsgUnbindResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.Unbind(ctx, msg.PoolId, msg.Token, creator); err != nil {
		return nil, err
	}
	return &types.MsgUnbindResponse{}, nil
}

func (m msgServer) Finalize(ctx context.Context, msg *types.MsgFinalize) (*types.MsgFinalizeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.Finalize(ctx, msg.PoolId, creator); err != nil {
		return nil, err
	}
	return &types.MsgFinalizeResponse{}, nil
}

func (m msgServer) SetSwapFee(ctx context.Context, msg *types.MsgSetSwapFee) (*types.MsgSetSwapFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.SetSwapFee(ctx, msg.PoolId, msg.SwapFee, creator); err != nil {
		return nil, err
	}
	return &types.MsgSetSwapFeeResponse{}, nil
}

func (m msgServer) SetController(ctx context.Context, msg *types.MsgSetController) (*types.MsgSetControllerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.SetController(ctx, msg.PoolId, msg.Controller, creator); err != nil {
		return nil, err
	}
	return &types.MsgSetControllerResponse{}, nil
}

func (m msgServer) SetPublicSwap(ctx context.Context, msg *types.MsgSetPublicSwap) (*types.MsgSetPublicSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.SetPublicSwap(ctx, msg.PoolId, msg.Value, creator); err != nil {
		return nil, err
	}
	return &types.MsgSetPublicSwapResponse{}, nil
}

func (m msgServer) SetFreezeStatus(ctx context.Context, msg *types.MsgSetFreezeStatus) (*types.MsgSetFreezeStatusResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	if err := m.Keeper.SetFreezeStatus(ctx, msg.PoolId, msg.Value, creator); err != nil {
		return nil, err
	}
	return &types.MsgSetFreezeStatusResponse{}, nil
}

func (m msgServer) Gulp(ctx context.Context, msg *types.MsgGulp) (*types.MsgGulpResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	balance, err := m.Keeper.Gulp(ctx, msg.PoolId, msg.Token)
	if err != nil {
		return nil, err
	}
	return &types.MsgGulpResponse{Balance: balance}, nil
}

func (m msgServer) JoinPool(ctx context.Context, msg *types.MsgJoinPool) (*types.MsgJoinPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	amountsIn, err := m.Keeper.JoinPool(ctx, msg.PoolId, msg.PoolAmountOut, msg.MaxAmountsIn, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgJoinPoolResponse{TokenAmountsIn: amountsIn}, nil
}

func (m msgServer) ExitPool(ctx context.Context, msg *types.MsgExitPool) (*types.MsgExitPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	amountsOut, err := m.Keeper.ExitPool(ctx, msg.PoolId, msg.PoolAmountIn, msg.MinAmountsOut, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgExitPoolResponse{TokenAmountsOut: amountsOut}, nil
}

func (m msgServer) SwapExactAmountIn(ctx context.Context, msg *types.MsgSwapExactAmountIn) (*types.MsgSwapExactAmountInResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	amountOut, spotAfter, err := m.Keeper.SwapExactAmountIn(ctx, msg.PoolId, msg.TokenIn, msg.TokenAmountIn, msg.TokenOut, msg.MinAmountOut, msg.MaxPrice, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapExactAmountInResponse{TokenAmountOut: amountOut, SpotPriceAfter: spotAfter}, nil
}

func (m msgServer) SwapExactAmountOut(ctx context.Context, msg *types.MsgSwapExactAmountOut) (*types.MsgSwapExactAmountOutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	amountIn, spotAfter, err := m.Keeper.SwapExactAmountOut(ctx, msg.PoolId, msg.TokenIn, msg.MaxAmountIn, msg.TokenOut, msg.TokenAmountOut, msg.MaxPrice, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapExactAmountOutResponse{TokenAmountIn: amountIn, SpotPriceAfter: spotAfter}, nil
}

func (m msgServer) DepositGivenTokenIn(ctx context.Context, msg *types.MsgDepositGivenTokenIn) (*types.MsgDepositGivenTokenInResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	poolAmountOut, err := m.Keeper.DepositGivenTokenIn(ctx, msg.PoolId, msg.TokenIn, msg.TokenAmountIn, msg.MinPoolAmountOut, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositGivenTokenInResponse{PoolAmountOut: poolAmountOut}, nil
}

func (m msgServer) DepositGivenLpOut(ctx context.Context, msg *types.MsgDepositGivenLpOut) (*types.MsgDepositGivenLpOutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	amountIn, err := m.Keeper.DepositGivenLpOut(ctx, msg.PoolId, msg.TokenIn, msg.PoolAmountOut, msg.MaxAmountIn, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositGivenLpOutResponse{TokenAmountIn: amountIn}, nil
}

func (m msgServer) WithdrawGivenLpIn(ctx context.Context, msg *types.MsgWithdrawGivenLpIn) (*types.MsgWithdrawGivenLpInResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	amountOut, err := m.Keeper.WithdrawGivenLpIn(ctx, msg.PoolId, msg.TokenOut, msg.PoolAmountIn, msg.MinAmountOut, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawGivenLpInResponse{TokenAmountOut: amountOut}, nil
}

func (m msgServer) WithdrawGivenTokenOut(ctx context.Context, msg *types.MsgWithdrawGivenTokenOut) (*types.MsgWithdrawGivenTokenOutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator := sdk.MustAccAddressFromBech32(msg.Creator)
	poolAmountIn, err := m.Keeper.WithdrawGivenTokenOut(ctx, msg.PoolId, msg.TokenOut, msg.TokenAmountOut, msg.MaxPoolAmountIn, creator)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawGivenTokenOutResponse{PoolAmountIn: poolAmountIn}, nil
}

func (m msgServer) TransferShares(ctx context.Context, msg *types.MsgTransferShares) (*types.MsgTransferSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	from := sdk.MustAccAddressFromBech32(msg.Creator)
	to := sdk.MustAccAddressFromBech32(msg.To)
	if err := m.Keeper.TransferShares(ctx, msg.PoolId, from, to, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferSharesResponse{}, nil
}

func (m msgServer) TransferSharesFrom(ctx context.Context, msg *types.MsgTransferSharesFrom) (*types.MsgTransferSharesFromResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	spender := sdk.MustAccAddressFromBech32(msg.Creator)
	from := sdk.MustAccAddressFromBech32(msg.From)
	to := sdk.MustAccAddressFromBech32(msg.To)
	if err := m.Keeper.TransferSharesFrom(ctx, msg.PoolId, spender, from, to, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferSharesFromResponse{}, nil
}

func (m msgServer) ApproveShares(ctx context.Context, msg *types.MsgApproveShares) (*types.MsgApproveSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner := sdk.MustAccAddressFromBech32(msg.Creator)
	spender := sdk.MustAccAddressFromBech32(msg.Spender)
	if err := m.Keeper.ApproveShares(ctx, msg.PoolId, owner, spender, msg.Amount, msg.ExpirationLedger); err != nil {
		return nil, err
	}
	return &types.MsgApproveSharesResponse{}, nil
}

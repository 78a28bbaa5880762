package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "comet/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgInitPool{}, "comet/MsgInitPool", nil)
	cdc.RegisterConcrete(&MsgBind{}, "comet/MsgBind", nil)
	cdc.RegisterConcrete(&MsgRebind{}, "comet/MsgRebind", nil)
	cdc.RegisterConcrete(&MsgUnbind{}, "comet/MsgUnbind", nil)
	cdc.RegisterConcrete(&MsgFinalize{}, "comet/MsgFinalize", nil)
	cdc.RegisterConcrete(&MsgSetSwapFee{}, "comet/MsgSetSwapFee", nil)
	cdc.RegisterConcrete(&MsgSetController{}, "comet/MsgSetController", nil)
	cdc.RegisterConcrete(&MsgSetPublicSwap{}, "comet/MsgSetPublicSwap", nil)
	cdc.RegisterConcrete(&MsgSetFreezeStatus{}, "comet/MsgSetFreezeStatus", nil)
	cdc.RegisterConcrete(&MsgGulp{}, "comet/MsgGulp", nil)
	cdc.RegisterConcrete(&MsgJoinPool{}, "comet/MsgJoinPool", nil)
	cdc.RegisterConcrete(&MsgExitPool{}, "comet/MsgExitPool", nil)
	cdc.RegisterConcrete(&MsgSwapExactAmountIn{}, "comet/MsgSwapExactAmountIn", nil)
	cdc.RegisterConcrete(&MsgSwapExactAmountOut{}, "comet/MsgSwapExactAmountOut", nil)
	cdc.RegisterConcrete(&MsgDepositGivenTokenIn{}, "comet/MsgDepositGivenTokenIn", nil)
	cdc.RegisterConcrete(&MsgDepositGivenLpOut{}, "comet/MsgDepositGivenLpOut", nil)
	cdc.RegisterConcrete(&MsgWithdrawGivenLpIn{}, "comet/MsgWithdrawGivenLpIn", nil)
	cdc.RegisterConcrete(&MsgWithdrawGivenTokenOut{}, "comet/MsgWithdrawGivenTokenOut", nil)
	cdc.RegisterConcrete(&MsgTransferShares{}, "comet/MsgTransferShares", nil)
	cdc.RegisterConcrete(&MsgTransferSharesFrom{}, "comet/MsgTransferSharesFrom", nil)
	cdc.RegisterConcrete(&MsgApproveShares{}, "comet/MsgApproveShares", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgInitPool{},
		&MsgBind{},
		&MsgRebind{},
		&MsgUnbind{},
		&MsgFinalize{},
		&MsgSetSwapFee{},
		&MsgSetController{},
		&MsgSetPublicSwap{},
		&MsgSetFreezeStatus{},
		&MsgGulp{},
		&MsgJoinPool{},
		&MsgExitPool{},
		&MsgSwapExactAmountIn{},
		&MsgSwapExactAmountOut{},
		&MsgDepositGivenTokenIn{},
		&MsgDepositGivenLpOut{},
		&MsgWithdrawGivenLpIn{},
		&MsgWithdrawGivenTokenOut{},
		&MsgTransferShares{},
		&MsgTransferSharesFrom{},
		&MsgApproveShares{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}

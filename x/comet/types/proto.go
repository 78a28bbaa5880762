package types

import "fmt"

// The module's messages are hand-written rather than protoc-generated; these
// stubs satisfy the proto.Message surface the sdk.Msg interface requires.

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreatePool) ProtoMessage()      {}

func (msg *MsgInitPool) Reset()         { *msg = MsgInitPool{} }
func (msg *MsgInitPool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgInitPool) ProtoMessage()      {}

func (msg *MsgBind) Reset()         { *msg = MsgBind{} }
func (msg *MsgBind) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgBind) ProtoMessage()      {}

func (msg *MsgRebind) Reset()         { *msg = MsgRebind{} }
func (msg *MsgRebind) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgRebind) ProtoMessage()      {}

func (msg *MsgUnbind) Reset()         { *msg = MsgUnbind{} }
func (msg *MsgUnbind) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgUnbind) ProtoMessage()      {}

func (msg *MsgFinalize) Reset()         { *msg = MsgFinalize{} }
func (msg *MsgFinalize) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgFinalize) ProtoMessage()      {}

func (msg *MsgSetSwapFee) Reset()         { *msg = MsgSetSwapFee{} }
func (msg *MsgSetSwapFee) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSetSwapFee) ProtoMessage()      {}

func (msg *MsgSetController) Reset()         { *msg = MsgSetController{} }
func (msg *MsgSetController) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSetController) ProtoMessage()      {}

func (msg *MsgSetPublicSwap) Reset()         { *msg = MsgSetPublicSwap{} }
func (msg *MsgSetPublicSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSetPublicSwap) ProtoMessage()      {}

func (msg *MsgSetFreezeStatus) Reset()         { *msg = MsgSetFreezeStatus{} }
func (msg *MsgSetFreezeStatus) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSetFreezeStatus) ProtoMessage()      {}

func (msg *MsgGulp) Reset()         { *msg = MsgGulp{} }
func (msg *MsgGulp) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgGulp) ProtoMessage()      {}

func (msg *MsgJoinPool) Reset()         { *msg = MsgJoinPool{} }
func (msg *MsgJoinPool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgJoinPool) ProtoMessage()      {}

func (msg *MsgExitPool) Reset()         { *msg = MsgExitPool{} }
func (msg *MsgExitPool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgExitPool) ProtoMessage()      {}

func (msg *MsgSwapExactAmountIn) Reset()         { *msg = MsgSwapExactAmountIn{} }
func (msg *MsgSwapExactAmountIn) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapExactAmountIn) ProtoMessage()      {}

func (msg *MsgSwapExactAmountOut) Reset()         { *msg = MsgSwapExactAmountOut{} }
func (msg *MsgSwapExactAmountOut) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapExactAmountOut) ProtoMessage()      {}

func (msg *MsgDepositGivenTokenIn) Reset()         { *msg = MsgDepositGivenTokenIn{} }
func (msg *MsgDepositGivenTokenIn) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgDepositGivenTokenIn) ProtoMessage()      {}

func (msg *MsgDepositGivenLpOut) Reset()         { *msg = MsgDepositGivenLpOut{} }
func (msg *MsgDepositGivenLpOut) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgDepositGivenLpOut) ProtoMessage()      {}

func (msg *MsgWithdrawGivenLpIn) Reset()         { *msg = MsgWithdrawGivenLpIn{} }
func (msg *MsgWithdrawGivenLpIn) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgWithdrawGivenLpIn) ProtoMessage()      {}

func (msg *MsgWithdrawGivenTokenOut) Reset()         { *msg = MsgWithdrawGivenTokenOut{} }
func (msg *MsgWithdrawGivenTokenOut) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgWithdrawGivenTokenOut) ProtoMessage()      {}

func (msg *MsgTransferShares) Reset()         { *msg = MsgTransferShares{} }
func (msg *MsgTransferShares) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgTransferShares) ProtoMessage()      {}

func (msg *MsgTransferSharesFrom) Reset()         { *msg = MsgTransferSharesFrom{} }
func (msg *MsgTransferSharesFrom) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgTransferSharesFrom) ProtoMessage()      {}

func (msg *MsgApproveShares) Reset()         { *msg = MsgApproveShares{} }
func (msg *MsgApproveShares) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgApproveShares) ProtoMessage()      {}

package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgCreatePool            = "create_pool"
	TypeMsgInitPool              = "init_pool"
	TypeMsgBind                  = "bind"
	TypeMsgRebind                = "rebind"
	TypeMsgUnbind                = "unbind"
	TypeMsgFinalize              = "finalize"
	TypeMsgSetSwapFee            = "set_swap_fee"
	TypeMsgSetController         = "set_controller"
	TypeMsgSetPublicSwap         = "set_public_swap"
	TypeMsgSetFreezeStatus       = "set_freeze_status"
	TypeMsgGulp                  = "gulp"
	TypeMsgJoinPool              = "join_pool"
	TypeMsgExitPool              = "exit_pool"
	TypeMsgSwapExactAmountIn     = "swap_exact_amount_in"
	TypeMsgSwapExactAmountOut    = "swap_exact_amount_out"
	TypeMsgDepositGivenTokenIn   = "dep_tokn_amt_in_get_lp_tokns_out"
	TypeMsgDepositGivenLpOut     = "dep_lp_tokn_amt_out_get_tokn_in"
	TypeMsgWithdrawGivenLpIn     = "wdr_tokn_amt_in_get_lp_tokns_out"
	TypeMsgWithdrawGivenTokenOut = "wdr_tokn_amt_out_get_lp_tokns_in"
	TypeMsgTransferShares        = "transfer_shares"
	TypeMsgTransferSharesFrom    = "transfer_shares_from"
	TypeMsgApproveShares         = "approve_shares"
)

func validateAddress(addr, field string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidAddress.Wrapf("invalid %s address: %v", field, err)
	}
	return nil
}

func validateNonNegative(amount math.Int, field string) error {
	if amount.IsNil() || amount.IsNegative() {
		return ErrNegative.Wrapf("%s cannot be negative", field)
	}
	return nil
}

func validatePositive(amount math.Int, field string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrNegativeOrZero.Wrapf("%s must be positive", field)
	}
	return nil
}

func signerOf(creator string) []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

// MsgCreatePool opens a pool in the setup state.
type MsgCreatePool struct {
	Creator    string `json:"creator"`
	Controller string `json:"controller"`
}

var _ sdk.Msg = &MsgCreatePool{}

func NewMsgCreatePool(creator, controller string) *MsgCreatePool {
	return &MsgCreatePool{Creator: creator, Controller: controller}
}

func (msg MsgCreatePool) Route() string { return RouterKey }
func (msg MsgCreatePool) Type() string  { return TypeMsgCreatePool }
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgCreatePool) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgCreatePool) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	return validateAddress(msg.Controller, "controller")
}

// MsgInitPool creates, funds and finalizes a pool in one shot. Weights are
// normalized 7-decimal values that must sum to exactly one.
type MsgInitPool struct {
	Creator    string     `json:"creator"`
	Controller string     `json:"controller"`
	Tokens     []string   `json:"tokens"`
	Weights    []math.Int `json:"weights"`
	Balances   []math.Int `json:"balances"`
	SwapFee    math.Int   `json:"swap_fee"`
}

var _ sdk.Msg = &MsgInitPool{}

func NewMsgInitPool(creator, controller string, tokens []string, weights, balances []math.Int, swapFee math.Int) *MsgInitPool {
	return &MsgInitPool{
		Creator:    creator,
		Controller: controller,
		Tokens:     tokens,
		Weights:    weights,
		Balances:   balances,
		SwapFee:    swapFee,
	}
}

func (msg MsgInitPool) Route() string { return RouterKey }
func (msg MsgInitPool) Type() string  { return TypeMsgInitPool }
func (msg MsgInitPool) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgInitPool) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgInitPool) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if err := validateAddress(msg.Controller, "controller"); err != nil {
		return err
	}
	if len(msg.Tokens) != len(msg.Weights) || len(msg.Tokens) != len(msg.Balances) {
		return ErrInvalidVectorLen.Wrap("tokens, weights and balances must have equal length")
	}
	for i := range msg.Tokens {
		if msg.Tokens[i] == "" {
			return ErrNotBound.Wrap("empty token denom")
		}
		if err := validatePositive(msg.Weights[i], "weight"); err != nil {
			return err
		}
		if err := validatePositive(msg.Balances[i], "balance"); err != nil {
			return err
		}
	}
	return validateNonNegative(msg.SwapFee, "swap fee")
}

// MsgBind adds a token to a pool in setup.
type MsgBind struct {
	Creator string   `json:"creator"`
	PoolId  uint64   `json:"pool_id"`
	Token   string   `json:"token"`
	Balance math.Int `json:"balance"`
	Denorm  math.Int `json:"denorm"`
}

var _ sdk.Msg = &MsgBind{}

func NewMsgBind(creator string, poolID uint64, token string, balance, denorm math.Int) *MsgBind {
	return &MsgBind{Creator: creator, PoolId: poolID, Token: token, Balance: balance, Denorm: denorm}
}

func (msg MsgBind) Route() string { return RouterKey }
func (msg MsgBind) Type() string  { return TypeMsgBind }
func (msg MsgBind) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgBind) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgBind) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.Token == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.Balance, "balance"); err != nil {
		return err
	}
	return validateNonNegative(msg.Denorm, "denorm")
}

// MsgRebind adjusts the balance and weight of a bound token in setup.
type MsgRebind struct {
	Creator string   `json:"creator"`
	PoolId  uint64   `json:"pool_id"`
	Token   string   `json:"token"`
	Balance math.Int `json:"balance"`
	Denorm  math.Int `json:"denorm"`
}

var _ sdk.Msg = &MsgRebind{}

func NewMsgRebind(creator string, poolID uint64, token string, balance, denorm math.Int) *MsgRebind {
	return &MsgRebind{Creator: creator, PoolId: poolID, Token: token, Balance: balance, Denorm: denorm}
}

func (msg MsgRebind) Route() string { return RouterKey }
func (msg MsgRebind) Type() string  { return TypeMsgRebind }
func (msg MsgRebind) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgRebind) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgRebind) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.Token == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.Balance, "balance"); err != nil {
		return err
	}
	return validateNonNegative(msg.Denorm, "denorm")
}

// MsgUnbind removes a token from a pool in setup.
type MsgUnbind struct {
	Creator string `json:"creator"`
	PoolId  uint64 `json:"pool_id"`
	Token   string `json:"token"`
}

var _ sdk.Msg = &MsgUnbind{}

func NewMsgUnbind(creator string, poolID uint64, token string) *MsgUnbind {
	return &MsgUnbind{Creator: creator, PoolId: poolID, Token: token}
}

func (msg MsgUnbind) Route() string { return RouterKey }
func (msg MsgUnbind) Type() string  { return TypeMsgUnbind }
func (msg MsgUnbind) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgUnbind) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgUnbind) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.Token == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	return nil
}

// MsgFinalize locks the token set and opens trading.
type MsgFinalize struct {
	Creator string `json:"creator"`
	PoolId  uint64 `json:"pool_id"`
}

var _ sdk.Msg = &MsgFinalize{}

func NewMsgFinalize(creator string, poolID uint64) *MsgFinalize {
	return &MsgFinalize{Creator: creator, PoolId: poolID}
}

func (msg MsgFinalize) Route() string { return RouterKey }
func (msg MsgFinalize) Type() string  { return TypeMsgFinalize }
func (msg MsgFinalize) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgFinalize) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgFinalize) ValidateBasic() error {
	return validateAddress(msg.Creator, "creator")
}

// MsgSetSwapFee updates the swap fee while the pool is in setup.
type MsgSetSwapFee struct {
	Creator string   `json:"creator"`
	PoolId  uint64   `json:"pool_id"`
	SwapFee math.Int `json:"swap_fee"`
}

var _ sdk.Msg = &MsgSetSwapFee{}

func NewMsgSetSwapFee(creator string, poolID uint64, swapFee math.Int) *MsgSetSwapFee {
	return &MsgSetSwapFee{Creator: creator, PoolId: poolID, SwapFee: swapFee}
}

func (msg MsgSetSwapFee) Route() string { return RouterKey }
func (msg MsgSetSwapFee) Type() string  { return TypeMsgSetSwapFee }
func (msg MsgSetSwapFee) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgSetSwapFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgSetSwapFee) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	return validateNonNegative(msg.SwapFee, "swap fee")
}

// MsgSetController hands pool administration to a new controller.
type MsgSetController struct {
	Creator    string `json:"creator"`
	PoolId     uint64 `json:"pool_id"`
	Controller string `json:"controller"`
}

var _ sdk.Msg = &MsgSetController{}

func NewMsgSetController(creator string, poolID uint64, controller string) *MsgSetController {
	return &MsgSetController{Creator: creator, PoolId: poolID, Controller: controller}
}

func (msg MsgSetController) Route() string { return RouterKey }
func (msg MsgSetController) Type() string  { return TypeMsgSetController }
func (msg MsgSetController) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgSetController) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgSetController) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	return validateAddress(msg.Controller, "controller")
}

// MsgSetPublicSwap toggles public swapping while the pool is in setup.
type MsgSetPublicSwap struct {
	Creator string `json:"creator"`
	PoolId  uint64 `json:"pool_id"`
	Value   bool   `json:"value"`
}

var _ sdk.Msg = &MsgSetPublicSwap{}

func NewMsgSetPublicSwap(creator string, poolID uint64, value bool) *MsgSetPublicSwap {
	return &MsgSetPublicSwap{Creator: creator, PoolId: poolID, Value: value}
}

func (msg MsgSetPublicSwap) Route() string { return RouterKey }
func (msg MsgSetPublicSwap) Type() string  { return TypeMsgSetPublicSwap }
func (msg MsgSetPublicSwap) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgSetPublicSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgSetPublicSwap) ValidateBasic() error {
	return validateAddress(msg.Creator, "creator")
}

// MsgSetFreezeStatus freezes or unfreezes the pool. While frozen, swaps,
// joins and single-sided deposits are rejected; exits, withdrawals and gulp
// still execute.
type MsgSetFreezeStatus struct {
	Creator string `json:"creator"`
	PoolId  uint64 `json:"pool_id"`
	Value   bool   `json:"value"`
}

var _ sdk.Msg = &MsgSetFreezeStatus{}

func NewMsgSetFreezeStatus(creator string, poolID uint64, value bool) *MsgSetFreezeStatus {
	return &MsgSetFreezeStatus{Creator: creator, PoolId: poolID, Value: value}
}

func (msg MsgSetFreezeStatus) Route() string { return RouterKey }
func (msg MsgSetFreezeStatus) Type() string  { return TypeMsgSetFreezeStatus }
func (msg MsgSetFreezeStatus) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgSetFreezeStatus) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgSetFreezeStatus) ValidateBasic() error {
	return validateAddress(msg.Creator, "creator")
}

// MsgGulp reconciles a record with the pool's actual on-chain balance.
type MsgGulp struct {
	Creator string `json:"creator"`
	PoolId  uint64 `json:"pool_id"`
	Token   string `json:"token"`
}

var _ sdk.Msg = &MsgGulp{}

func NewMsgGulp(creator string, poolID uint64, token string) *MsgGulp {
	return &MsgGulp{Creator: creator, PoolId: poolID, Token: token}
}

func (msg MsgGulp) Route() string { return RouterKey }
func (msg MsgGulp) Type() string  { return TypeMsgGulp }
func (msg MsgGulp) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgGulp) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgGulp) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.Token == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	return nil
}

// MsgJoinPool deposits all pool tokens proportionally for an exact share
// amount out.
type MsgJoinPool struct {
	Creator       string     `json:"creator"`
	PoolId        uint64     `json:"pool_id"`
	PoolAmountOut math.Int   `json:"pool_amount_out"`
	MaxAmountsIn  []math.Int `json:"max_amounts_in"`
}

var _ sdk.Msg = &MsgJoinPool{}

func NewMsgJoinPool(creator string, poolID uint64, poolAmountOut math.Int, maxAmountsIn []math.Int) *MsgJoinPool {
	return &MsgJoinPool{Creator: creator, PoolId: poolID, PoolAmountOut: poolAmountOut, MaxAmountsIn: maxAmountsIn}
}

func (msg MsgJoinPool) Route() string { return RouterKey }
func (msg MsgJoinPool) Type() string  { return TypeMsgJoinPool }
func (msg MsgJoinPool) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgJoinPool) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgJoinPool) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if err := validatePositive(msg.PoolAmountOut, "pool amount out"); err != nil {
		return err
	}
	for _, amt := range msg.MaxAmountsIn {
		if err := validatePositive(amt, "max amount in"); err != nil {
			return err
		}
	}
	return nil
}

// MsgExitPool withdraws all pool tokens proportionally for an exact share
// amount in.
type MsgExitPool struct {
	Creator       string     `json:"creator"`
	PoolId        uint64     `json:"pool_id"`
	PoolAmountIn  math.Int   `json:"pool_amount_in"`
	MinAmountsOut []math.Int `json:"min_amounts_out"`
}

var _ sdk.Msg = &MsgExitPool{}

func NewMsgExitPool(creator string, poolID uint64, poolAmountIn math.Int, minAmountsOut []math.Int) *MsgExitPool {
	return &MsgExitPool{Creator: creator, PoolId: poolID, PoolAmountIn: poolAmountIn, MinAmountsOut: minAmountsOut}
}

func (msg MsgExitPool) Route() string { return RouterKey }
func (msg MsgExitPool) Type() string  { return TypeMsgExitPool }
func (msg MsgExitPool) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgExitPool) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgExitPool) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if err := validateNonNegative(msg.PoolAmountIn, "pool amount in"); err != nil {
		return err
	}
	for _, amt := range msg.MinAmountsOut {
		if err := validateNonNegative(amt, "min amount out"); err != nil {
			return err
		}
	}
	return nil
}

// MsgSwapExactAmountIn trades an exact input amount for a computed output.
type MsgSwapExactAmountIn struct {
	Creator       string   `json:"creator"`
	PoolId        uint64   `json:"pool_id"`
	TokenIn       string   `json:"token_in"`
	TokenAmountIn math.Int `json:"token_amount_in"`
	TokenOut      string   `json:"token_out"`
	MinAmountOut  math.Int `json:"min_amount_out"`
	MaxPrice      math.Int `json:"max_price"`
}

var _ sdk.Msg = &MsgSwapExactAmountIn{}

func NewMsgSwapExactAmountIn(creator string, poolID uint64, tokenIn string, tokenAmountIn math.Int, tokenOut string, minAmountOut, maxPrice math.Int) *MsgSwapExactAmountIn {
	return &MsgSwapExactAmountIn{
		Creator:       creator,
		PoolId:        poolID,
		TokenIn:       tokenIn,
		TokenAmountIn: tokenAmountIn,
		TokenOut:      tokenOut,
		MinAmountOut:  minAmountOut,
		MaxPrice:      maxPrice,
	}
}

func (msg MsgSwapExactAmountIn) Route() string { return RouterKey }
func (msg MsgSwapExactAmountIn) Type() string  { return TypeMsgSwapExactAmountIn }
func (msg MsgSwapExactAmountIn) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgSwapExactAmountIn) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgSwapExactAmountIn) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.TokenIn == "" || msg.TokenOut == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.TokenAmountIn, "token amount in"); err != nil {
		return err
	}
	if err := validateNonNegative(msg.MinAmountOut, "min amount out"); err != nil {
		return err
	}
	return validateNonNegative(msg.MaxPrice, "max price")
}

// MsgSwapExactAmountOut trades a computed input for an exact output amount.
type MsgSwapExactAmountOut struct {
	Creator        string   `json:"creator"`
	PoolId         uint64   `json:"pool_id"`
	TokenIn        string   `json:"token_in"`
	MaxAmountIn    math.Int `json:"max_amount_in"`
	TokenOut       string   `json:"token_out"`
	TokenAmountOut math.Int `json:"token_amount_out"`
	MaxPrice       math.Int `json:"max_price"`
}

var _ sdk.Msg = &MsgSwapExactAmountOut{}

func NewMsgSwapExactAmountOut(creator string, poolID uint64, tokenIn string, maxAmountIn math.Int, tokenOut string, tokenAmountOut, maxPrice math.Int) *MsgSwapExactAmountOut {
	return &MsgSwapExactAmountOut{
		Creator:        creator,
		PoolId:         poolID,
		TokenIn:        tokenIn,
		MaxAmountIn:    maxAmountIn,
		TokenOut:       tokenOut,
		TokenAmountOut: tokenAmountOut,
		MaxPrice:       maxPrice,
	}
}

func (msg MsgSwapExactAmountOut) Route() string { return RouterKey }
func (msg MsgSwapExactAmountOut) Type() string  { return TypeMsgSwapExactAmountOut }
func (msg MsgSwapExactAmountOut) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgSwapExactAmountOut) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgSwapExactAmountOut) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.TokenIn == "" || msg.TokenOut == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.TokenAmountOut, "token amount out"); err != nil {
		return err
	}
	if err := validateNonNegative(msg.MaxAmountIn, "max amount in"); err != nil {
		return err
	}
	return validateNonNegative(msg.MaxPrice, "max price")
}

// MsgDepositGivenTokenIn is the single-sided deposit with an exact token
// amount in and a computed share amount out.
type MsgDepositGivenTokenIn struct {
	Creator          string   `json:"creator"`
	PoolId           uint64   `json:"pool_id"`
	TokenIn          string   `json:"token_in"`
	TokenAmountIn    math.Int `json:"token_amount_in"`
	MinPoolAmountOut math.Int `json:"min_pool_amount_out"`
}

var _ sdk.Msg = &MsgDepositGivenTokenIn{}

func NewMsgDepositGivenTokenIn(creator string, poolID uint64, tokenIn string, tokenAmountIn, minPoolAmountOut math.Int) *MsgDepositGivenTokenIn {
	return &MsgDepositGivenTokenIn{
		Creator:          creator,
		PoolId:           poolID,
		TokenIn:          tokenIn,
		TokenAmountIn:    tokenAmountIn,
		MinPoolAmountOut: minPoolAmountOut,
	}
}

func (msg MsgDepositGivenTokenIn) Route() string { return RouterKey }
func (msg MsgDepositGivenTokenIn) Type() string  { return TypeMsgDepositGivenTokenIn }
func (msg MsgDepositGivenTokenIn) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgDepositGivenTokenIn) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgDepositGivenTokenIn) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.TokenIn == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.TokenAmountIn, "token amount in"); err != nil {
		return err
	}
	return validateNonNegative(msg.MinPoolAmountOut, "min pool amount out")
}

// MsgDepositGivenLpOut is the single-sided deposit with an exact share amount
// out and a computed token amount in.
type MsgDepositGivenLpOut struct {
	Creator       string   `json:"creator"`
	PoolId        uint64   `json:"pool_id"`
	TokenIn       string   `json:"token_in"`
	PoolAmountOut math.Int `json:"pool_amount_out"`
	MaxAmountIn   math.Int `json:"max_amount_in"`
}

var _ sdk.Msg = &MsgDepositGivenLpOut{}

func NewMsgDepositGivenLpOut(creator string, poolID uint64, tokenIn string, poolAmountOut, maxAmountIn math.Int) *MsgDepositGivenLpOut {
	return &MsgDepositGivenLpOut{
		Creator:       creator,
		PoolId:        poolID,
		TokenIn:       tokenIn,
		PoolAmountOut: poolAmountOut,
		MaxAmountIn:   maxAmountIn,
	}
}

func (msg MsgDepositGivenLpOut) Route() string { return RouterKey }
func (msg MsgDepositGivenLpOut) Type() string  { return TypeMsgDepositGivenLpOut }
func (msg MsgDepositGivenLpOut) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgDepositGivenLpOut) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgDepositGivenLpOut) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.TokenIn == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.PoolAmountOut, "pool amount out"); err != nil {
		return err
	}
	return validateNonNegative(msg.MaxAmountIn, "max amount in")
}

// MsgWithdrawGivenLpIn is the single-sided withdrawal with an exact share
// amount burned and a computed token amount out.
type MsgWithdrawGivenLpIn struct {
	Creator      string   `json:"creator"`
	PoolId       uint64   `json:"pool_id"`
	TokenOut     string   `json:"token_out"`
	PoolAmountIn math.Int `json:"pool_amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

var _ sdk.Msg = &MsgWithdrawGivenLpIn{}

func NewMsgWithdrawGivenLpIn(creator string, poolID uint64, tokenOut string, poolAmountIn, minAmountOut math.Int) *MsgWithdrawGivenLpIn {
	return &MsgWithdrawGivenLpIn{
		Creator:      creator,
		PoolId:       poolID,
		TokenOut:     tokenOut,
		PoolAmountIn: poolAmountIn,
		MinAmountOut: minAmountOut,
	}
}

func (msg MsgWithdrawGivenLpIn) Route() string { return RouterKey }
func (msg MsgWithdrawGivenLpIn) Type() string  { return TypeMsgWithdrawGivenLpIn }
func (msg MsgWithdrawGivenLpIn) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgWithdrawGivenLpIn) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgWithdrawGivenLpIn) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.TokenOut == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.PoolAmountIn, "pool amount in"); err != nil {
		return err
	}
	return validateNonNegative(msg.MinAmountOut, "min amount out")
}

// MsgWithdrawGivenTokenOut is the single-sided withdrawal with an exact token
// amount out and a computed share amount burned.
type MsgWithdrawGivenTokenOut struct {
	Creator         string   `json:"creator"`
	PoolId          uint64   `json:"pool_id"`
	TokenOut        string   `json:"token_out"`
	TokenAmountOut  math.Int `json:"token_amount_out"`
	MaxPoolAmountIn math.Int `json:"max_pool_amount_in"`
}

var _ sdk.Msg = &MsgWithdrawGivenTokenOut{}

func NewMsgWithdrawGivenTokenOut(creator string, poolID uint64, tokenOut string, tokenAmountOut, maxPoolAmountIn math.Int) *MsgWithdrawGivenTokenOut {
	return &MsgWithdrawGivenTokenOut{
		Creator:         creator,
		PoolId:          poolID,
		TokenOut:        tokenOut,
		TokenAmountOut:  tokenAmountOut,
		MaxPoolAmountIn: maxPoolAmountIn,
	}
}

func (msg MsgWithdrawGivenTokenOut) Route() string { return RouterKey }
func (msg MsgWithdrawGivenTokenOut) Type() string  { return TypeMsgWithdrawGivenTokenOut }
func (msg MsgWithdrawGivenTokenOut) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgWithdrawGivenTokenOut) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgWithdrawGivenTokenOut) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if msg.TokenOut == "" {
		return ErrNotBound.Wrap("empty token denom")
	}
	if err := validateNonNegative(msg.TokenAmountOut, "token amount out"); err != nil {
		return err
	}
	return validateNonNegative(msg.MaxPoolAmountIn, "max pool amount in")
}

// MsgTransferShares moves pool shares between addresses.
type MsgTransferShares struct {
	Creator string   `json:"creator"`
	PoolId  uint64   `json:"pool_id"`
	To      string   `json:"to"`
	Amount  math.Int `json:"amount"`
}

var _ sdk.Msg = &MsgTransferShares{}

func NewMsgTransferShares(creator string, poolID uint64, to string, amount math.Int) *MsgTransferShares {
	return &MsgTransferShares{Creator: creator, PoolId: poolID, To: to, Amount: amount}
}

func (msg MsgTransferShares) Route() string { return RouterKey }
func (msg MsgTransferShares) Type() string  { return TypeMsgTransferShares }
func (msg MsgTransferShares) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgTransferShares) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgTransferShares) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "creator"); err != nil {
		return err
	}
	if err := validateAddress(msg.To, "recipient"); err != nil {
		return err
	}
	return validateNonNegative(msg.Amount, "amount")
}

// MsgTransferSharesFrom moves pool shares using a previously granted
// allowance; the creator is the spender.
type MsgTransferSharesFrom struct {
	Creator string   `json:"creator"`
	PoolId  uint64   `json:"pool_id"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Amount  math.Int `json:"amount"`
}

var _ sdk.Msg = &MsgTransferSharesFrom{}

func NewMsgTransferSharesFrom(creator string, poolID uint64, from, to string, amount math.Int) *MsgTransferSharesFrom {
	return &MsgTransferSharesFrom{Creator: creator, PoolId: poolID, From: from, To: to, Amount: amount}
}

func (msg MsgTransferSharesFrom) Route() string { return RouterKey }
func (msg MsgTransferSharesFrom) Type() string  { return TypeMsgTransferSharesFrom }
func (msg MsgTransferSharesFrom) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgTransferSharesFrom) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgTransferSharesFrom) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "spender"); err != nil {
		return err
	}
	if err := validateAddress(msg.From, "owner"); err != nil {
		return err
	}
	if err := validateAddress(msg.To, "recipient"); err != nil {
		return err
	}
	return validateNonNegative(msg.Amount, "amount")
}

// MsgApproveShares grants a spender an allowance over the creator's shares
// until the expiration ledger.
type MsgApproveShares struct {
	Creator          string   `json:"creator"`
	PoolId           uint64   `json:"pool_id"`
	Spender          string   `json:"spender"`
	Amount           math.Int `json:"amount"`
	ExpirationLedger int64    `json:"expiration_ledger"`
}

var _ sdk.Msg = &MsgApproveShares{}

func NewMsgApproveShares(creator string, poolID uint64, spender string, amount math.Int, expirationLedger int64) *MsgApproveShares {
	return &MsgApproveShares{
		Creator:          creator,
		PoolId:           poolID,
		Spender:          spender,
		Amount:           amount,
		ExpirationLedger: expirationLedger,
	}
}

func (msg MsgApproveShares) Route() string { return RouterKey }
func (msg MsgApproveShares) Type() string  { return TypeMsgApproveShares }
func (msg MsgApproveShares) GetSigners() []sdk.AccAddress {
	return signerOf(msg.Creator)
}
func (msg MsgApproveShares) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgApproveShares) ValidateBasic() error {
	if err := validateAddress(msg.Creator, "owner"); err != nil {
		return err
	}
	if err := validateAddress(msg.Spender, "spender"); err != nil {
		return err
	}
	return validateNonNegative(msg.Amount, "amount")
}

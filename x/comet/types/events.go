package types

// Event types for the comet module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Pool lifecycle events
	EventTypePoolCreated   = "comet_pool_created"
	EventTypePoolFinalized = "comet_pool_finalized"
	EventTypeBind          = "comet_bind"
	EventTypeRebind        = "comet_rebind"
	EventTypeUnbind        = "comet_unbind"
	EventTypeGulp          = "comet_gulp"

	// Trade and liquidity events
	EventTypeSwap     = "comet_swap"
	EventTypeJoin     = "comet_join"
	EventTypeExit     = "comet_exit"
	EventTypeDeposit  = "comet_deposit"
	EventTypeWithdraw = "comet_withdraw"

	// Share token events
	EventTypeShareTransfer = "comet_share_transfer"
	EventTypeShareApprove  = "comet_share_approve"
	EventTypeShareMint     = "comet_share_mint"
	EventTypeShareBurn     = "comet_share_burn"

	// Admin events
	EventTypeSetSwapFee      = "comet_set_swap_fee"
	EventTypeSetController   = "comet_set_controller"
	EventTypeSetPublicSwap   = "comet_set_public_swap"
	EventTypeSetFreezeStatus = "comet_set_freeze_status"
)

// Event attribute keys for the comet module
const (
	AttributeKeyPoolID         = "pool_id"
	AttributeKeyCaller         = "caller"
	AttributeKeyController     = "controller"
	AttributeKeyToken          = "token"
	AttributeKeyTokenIn        = "token_in"
	AttributeKeyTokenOut       = "token_out"
	AttributeKeyTokenAmountIn  = "token_amount_in"
	AttributeKeyTokenAmountOut = "token_amount_out"
	AttributeKeyPoolAmountIn   = "pool_amount_in"
	AttributeKeyPoolAmountOut  = "pool_amount_out"
	AttributeKeyBalance        = "balance"
	AttributeKeyDenorm         = "denorm"
	AttributeKeySwapFee        = "swap_fee"
	AttributeKeySpotPrice      = "spot_price"
	AttributeKeyFrom           = "from"
	AttributeKeyTo             = "to"
	AttributeKeySpender        = "spender"
	AttributeKeyAmount         = "amount"
	AttributeKeyExpiration     = "expiration_ledger"
	AttributeKeyValue          = "value"
)

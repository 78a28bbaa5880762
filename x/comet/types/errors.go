package types

import (
	"cosmossdk.io/errors"
)

// Comet module sentinel errors
var (
	// Authorization
	ErrNotController = errors.Register(ModuleName, 2, "caller is not the pool controller")

	// Lifecycle
	ErrAlreadyInitialized    = errors.Register(ModuleName, 3, "pool already initialized")
	ErrFinalized             = errors.Register(ModuleName, 4, "pool is finalized")
	ErrNotFinalized          = errors.Register(ModuleName, 5, "pool is not finalized")
	ErrSwapNotPublic         = errors.Register(ModuleName, 6, "public swap is disabled")
	ErrFreezeOnlyWithdrawals = errors.Register(ModuleName, 7, "pool is frozen, only withdrawals allowed")

	// Input validation
	ErrNegative                = errors.Register(ModuleName, 8, "amount cannot be negative")
	ErrNegativeOrZero          = errors.Register(ModuleName, 9, "amount must be positive")
	ErrInvalidVectorLen        = errors.Register(ModuleName, 10, "vector lengths do not match")
	ErrInvalidExpirationLedger = errors.Register(ModuleName, 11, "allowance expiration ledger is in the past")

	// Token membership
	ErrIsBound      = errors.Register(ModuleName, 12, "token is already bound")
	ErrNotBound     = errors.Register(ModuleName, 13, "token is not bound")
	ErrMinTokens    = errors.Register(ModuleName, 14, "too few bound tokens")
	ErrMaxTokens    = errors.Register(ModuleName, 15, "too many bound tokens")
	ErrTokenInvalid = errors.Register(ModuleName, 16, "token precision exceeds 18 decimals")

	// Parameter ranges
	ErrMinWeight      = errors.Register(ModuleName, 17, "weight below minimum")
	ErrMaxWeight      = errors.Register(ModuleName, 18, "weight above maximum")
	ErrMaxTotalWeight = errors.Register(ModuleName, 19, "total weight above maximum")
	ErrTotalWeight    = errors.Register(ModuleName, 20, "weights do not sum to the required total")
	ErrMinBalance     = errors.Register(ModuleName, 21, "balance below minimum")
	ErrMinFee         = errors.Register(ModuleName, 22, "swap fee below minimum")
	ErrMaxFee         = errors.Register(ModuleName, 23, "swap fee above maximum")

	// Operation bounds
	ErrMaxInRatio            = errors.Register(ModuleName, 24, "input exceeds max in ratio")
	ErrMaxOutRatio           = errors.Register(ModuleName, 25, "output exceeds max out ratio")
	ErrBadLimitPrice         = errors.Register(ModuleName, 26, "spot price already above limit price")
	ErrLimitPrice            = errors.Register(ModuleName, 27, "spot price exceeds limit price")
	ErrLimitIn               = errors.Register(ModuleName, 28, "input exceeds limit")
	ErrLimitOut              = errors.Register(ModuleName, 29, "output below limit")
	ErrInsufficientBalance   = errors.Register(ModuleName, 30, "insufficient share balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 31, "insufficient share allowance")

	// State
	ErrPoolNotFound   = errors.Register(ModuleName, 32, "pool not found")
	ErrInvalidGenesis = errors.Register(ModuleName, 33, "invalid genesis state")
	ErrInvalidAddress = errors.Register(ModuleName, 34, "invalid address")
)

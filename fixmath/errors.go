package fixmath

import "cosmossdk.io/errors"

const codespace = "fixmath"

// Arithmetic failures. Every one of these is fatal to the surrounding
// transaction; callers never recover from them.
var (
	ErrAddOverflow     = errors.Register(codespace, 2, "addition overflow")
	ErrSubUnderflow    = errors.Register(codespace, 3, "subtraction underflow")
	ErrMulOverflow     = errors.Register(codespace, 4, "multiplication overflow")
	ErrDivInternal     = errors.Register(codespace, 5, "division error")
	ErrMathApprox      = errors.Register(codespace, 6, "result out of range")
	ErrCPowBaseTooLow  = errors.Register(codespace, 7, "power base below minimum")
	ErrCPowBaseTooHigh = errors.Register(codespace, 8, "power base above maximum")
)

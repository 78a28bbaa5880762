package types

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
)

// Record holds the pool's bookkeeping for one bound token.
type Record struct {
	// Balance is the pool's internal accounting balance in the token's
	// native decimals.
	Balance math.Int `json:"balance"`
	// Denorm is the unnormalized weight, 7-decimal fixed point.
	Denorm math.Int `json:"denorm"`
	// Scalar lifts Balance into the 18-decimal domain, 10^(18-decimals).
	// Frozen at bind.
	Scalar math.Int `json:"scalar"`
	// Index is the position in the pool's ordered token list.
	Index uint32 `json:"index"`
	// Bound is true while the token is an active member of the pool.
	Bound bool `json:"bound"`
}

// Marshal encodes the record for storage.
func (r Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal decodes a record from storage.
func (r *Record) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, r)
}

// Pool is the per-pool singleton state.
type Pool struct {
	Id          uint64   `json:"id"`
	Controller  string   `json:"controller"`
	Tokens      []string `json:"tokens"`
	SwapFee     math.Int `json:"swap_fee"`
	TotalWeight math.Int `json:"total_weight"`
	TotalShares math.Int `json:"total_shares"`
	Finalized   bool     `json:"finalized"`
	PublicSwap  bool     `json:"public_swap"`
	Frozen      bool     `json:"frozen"`
}

// Marshal encodes the pool for storage.
func (p Pool) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes a pool from storage.
func (p *Pool) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}

// AllowanceValue is a share allowance with its expiration ledger. An
// allowance whose expiration ledger is below the current block height is
// treated as zero.
type AllowanceValue struct {
	Amount           math.Int `json:"amount"`
	ExpirationLedger int64    `json:"expiration_ledger"`
}

// Marshal encodes the allowance for storage.
func (a AllowanceValue) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

// Unmarshal decodes an allowance from storage.
func (a *AllowanceValue) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, a)
}

// SwapFeeBone returns the pool's swap fee lifted into the 18-decimal domain.
func (p Pool) SwapFeeBone() math.Int {
	return p.SwapFee.Mul(fixmath.StroopScalar)
}

// TotalWeightBone returns the pool's total weight lifted into the 18-decimal
// domain.
func (p Pool) TotalWeightBone() math.Int {
	return p.TotalWeight.Mul(fixmath.StroopScalar)
}

// TotalSharesBone returns the share supply lifted into the 18-decimal domain.
func (p Pool) TotalSharesBone() math.Int {
	return p.TotalShares.Mul(fixmath.StroopScalar)
}

// DenormBone returns the record's weight lifted into the 18-decimal domain.
func (r Record) DenormBone() math.Int {
	return r.Denorm.Mul(fixmath.StroopScalar)
}

// BalanceBone returns the record's balance lifted into the 18-decimal domain.
func (r Record) BalanceBone() (math.Int, error) {
	return fixmath.Upscale(r.Balance, r.Scalar)
}

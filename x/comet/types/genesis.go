package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisRecord pairs a token record with its pool and denom.
type GenesisRecord struct {
	PoolId uint64 `json:"pool_id"`
	Denom  string `json:"denom"`
	Record Record `json:"record"`
}

// GenesisShareBalance is one address' share balance in one pool.
type GenesisShareBalance struct {
	PoolId  uint64   `json:"pool_id"`
	Address string   `json:"address"`
	Balance math.Int `json:"balance"`
}

// GenesisAllowance is one share allowance entry.
type GenesisAllowance struct {
	PoolId           uint64   `json:"pool_id"`
	Owner            string   `json:"owner"`
	Spender          string   `json:"spender"`
	Amount           math.Int `json:"amount"`
	ExpirationLedger int64    `json:"expiration_ledger"`
}

// GenesisState defines the comet module's genesis state.
type GenesisState struct {
	PoolCount     uint64                `json:"pool_count"`
	Pools         []Pool                `json:"pools"`
	Records       []GenesisRecord       `json:"records"`
	ShareBalances []GenesisShareBalance `json:"share_balances"`
	Allowances    []GenesisAllowance    `json:"allowances"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation, re-checking the pool
// invariants that every operation maintains.
func (gs GenesisState) Validate() error {
	poolIDs := make(map[uint64]bool)
	for _, pool := range gs.Pools {
		if poolIDs[pool.Id] {
			return ErrInvalidGenesis.Wrapf("duplicate pool id %d", pool.Id)
		}
		poolIDs[pool.Id] = true
		if pool.Id >= gs.PoolCount {
			return ErrInvalidGenesis.Wrapf("pool id %d not below pool count %d", pool.Id, gs.PoolCount)
		}
		if _, err := sdk.AccAddressFromBech32(pool.Controller); err != nil {
			return ErrInvalidGenesis.Wrapf("pool %d: invalid controller: %v", pool.Id, err)
		}
		if pool.SwapFee.IsNil() || pool.SwapFee.LT(MinFee) || pool.SwapFee.GT(MaxFee) {
			return ErrInvalidGenesis.Wrapf("pool %d: swap fee out of range", pool.Id)
		}
		if pool.TotalWeight.IsNil() || pool.TotalWeight.GT(MaxTotalWeight) {
			return ErrInvalidGenesis.Wrapf("pool %d: total weight out of range", pool.Id)
		}
		if len(pool.Tokens) > MaxBoundTokens {
			return ErrInvalidGenesis.Wrapf("pool %d: too many tokens", pool.Id)
		}
		if pool.Finalized && len(pool.Tokens) < MinBoundTokens {
			return ErrInvalidGenesis.Wrapf("pool %d: finalized with too few tokens", pool.Id)
		}
		seen := make(map[string]bool)
		for _, denom := range pool.Tokens {
			if seen[denom] {
				return ErrInvalidGenesis.Wrapf("pool %d: duplicate token %s", pool.Id, denom)
			}
			seen[denom] = true
		}
	}

	totalWeights := make(map[uint64]math.Int)
	for _, rec := range gs.Records {
		if !poolIDs[rec.PoolId] {
			return ErrInvalidGenesis.Wrapf("record for unknown pool %d", rec.PoolId)
		}
		if !rec.Record.Bound {
			return ErrInvalidGenesis.Wrapf("pool %d: unbound record for %s", rec.PoolId, rec.Denom)
		}
		if rec.Record.Denorm.LT(MinWeight) || rec.Record.Denorm.GT(MaxWeight) {
			return ErrInvalidGenesis.Wrapf("pool %d: weight out of range for %s", rec.PoolId, rec.Denom)
		}
		if !rec.Record.Balance.IsPositive() {
			return ErrInvalidGenesis.Wrapf("pool %d: non-positive balance for %s", rec.PoolId, rec.Denom)
		}
		sum, ok := totalWeights[rec.PoolId]
		if !ok {
			sum = math.ZeroInt()
		}
		totalWeights[rec.PoolId] = sum.Add(rec.Record.Denorm)
	}

	shareTotals := make(map[uint64]math.Int)
	for _, bal := range gs.ShareBalances {
		if !poolIDs[bal.PoolId] {
			return ErrInvalidGenesis.Wrapf("share balance for unknown pool %d", bal.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(bal.Address); err != nil {
			return ErrInvalidGenesis.Wrapf("invalid share holder address: %v", err)
		}
		if bal.Balance.IsNil() || bal.Balance.IsNegative() {
			return ErrInvalidGenesis.Wrap("negative share balance")
		}
		sum, ok := shareTotals[bal.PoolId]
		if !ok {
			sum = math.ZeroInt()
		}
		shareTotals[bal.PoolId] = sum.Add(bal.Balance)
	}

	for _, pool := range gs.Pools {
		if sum, ok := totalWeights[pool.Id]; ok && !sum.Equal(pool.TotalWeight) {
			return ErrInvalidGenesis.Wrapf("pool %d: total weight %s does not match record sum %s",
				pool.Id, pool.TotalWeight, sum)
		}
		sum, ok := shareTotals[pool.Id]
		if !ok {
			sum = math.ZeroInt()
		}
		if !sum.Equal(pool.TotalShares) {
			return ErrInvalidGenesis.Wrapf("pool %d: total shares %s does not match balance sum %s",
				pool.Id, pool.TotalShares, sum)
		}
	}

	for _, allowance := range gs.Allowances {
		if !poolIDs[allowance.PoolId] {
			return ErrInvalidGenesis.Wrapf("allowance for unknown pool %d", allowance.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(allowance.Owner); err != nil {
			return ErrInvalidGenesis.Wrapf("invalid allowance owner: %v", err)
		}
		if _, err := sdk.AccAddressFromBech32(allowance.Spender); err != nil {
			return ErrInvalidGenesis.Wrapf("invalid allowance spender: %v", err)
		}
		if allowance.Amount.IsNil() || allowance.Amount.IsNegative() {
			return ErrInvalidGenesis.Wrap("negative allowance")
		}
	}

	return nil
}

package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// RegisterInvariants registers all comet invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "total-weight", TotalWeightInvariant(k))
	ir.RegisterRoute(types.ModuleName, "record-bounds", RecordBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-backing", PoolBackingInvariant(k))
}

// AllInvariants runs all invariants of the comet module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = TotalWeightInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = RecordBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return PoolBackingInvariant(k)(ctx)
	}
}

// ShareSupplyInvariant checks that each pool's share supply equals the sum
// of its share balances.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, _ := k.GetAllPools(ctx)
		for _, pool := range pools {
			sum := math.ZeroInt()
			_ = k.IterateShareBalances(ctx, pool.Id, func(_ sdk.AccAddress, balance math.Int) bool {
				sum = sum.Add(balance)
				return false
			})
			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: share supply %s != balance sum %s\n",
					pool.Id, pool.TotalShares, sum)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pools with inconsistent share supply\n%s", count, msg),
		), broken
	}
}

// TotalWeightInvariant checks that each pool's total weight equals the sum
// of its records' weights and does not exceed the cap.
func TotalWeightInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, _ := k.GetAllPools(ctx)
		for _, pool := range pools {
			sum := math.ZeroInt()
			for _, denom := range pool.Tokens {
				rec, err := k.GetRecord(ctx, pool.Id, denom)
				if err != nil {
					count++
					msg += fmt.Sprintf("pool %d: listed token %s has no record\n", pool.Id, denom)
					continue
				}
				sum = sum.Add(rec.Denorm)
			}
			if !sum.Equal(pool.TotalWeight) {
				count++
				msg += fmt.Sprintf("pool %d: total weight %s != record sum %s\n",
					pool.Id, pool.TotalWeight, sum)
			}
			if pool.TotalWeight.GT(types.MaxTotalWeight) {
				count++
				msg += fmt.Sprintf("pool %d: total weight %s above maximum\n", pool.Id, pool.TotalWeight)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "total-weight",
			fmt.Sprintf("found %d pools with inconsistent weights\n%s", count, msg),
		), broken
	}
}

// RecordBoundsInvariant checks per-token weight and balance bounds.
func RecordBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, _ := k.GetAllPools(ctx)
		for _, pool := range pools {
			for _, denom := range pool.Tokens {
				rec, err := k.GetRecord(ctx, pool.Id, denom)
				if err != nil {
					continue
				}
				if rec.Denorm.LT(types.MinWeight) || rec.Denorm.GT(types.MaxWeight) {
					count++
					msg += fmt.Sprintf("pool %d: token %s weight %s out of bounds\n", pool.Id, denom, rec.Denorm)
				}
				if pool.Finalized && !rec.Balance.IsPositive() {
					count++
					msg += fmt.Sprintf("pool %d: token %s has non-positive balance\n", pool.Id, denom)
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "record-bounds",
			fmt.Sprintf("found %d records out of bounds\n%s", count, msg),
		), broken
	}
}

// PoolBackingInvariant checks that each pool address holds at least the
// recorded balance of every bound token. Externally donated amounts may make
// the chain balance larger until a gulp.
func PoolBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, _ := k.GetAllPools(ctx)
		for _, pool := range pools {
			addr := types.PoolAddress(pool.Id)
			for _, denom := range pool.Tokens {
				rec, err := k.GetRecord(ctx, pool.Id, denom)
				if err != nil {
					continue
				}
				chainBalance := k.bankKeeper.GetBalance(ctx, addr, denom)
				if chainBalance.Amount.LT(rec.Balance) {
					count++
					msg += fmt.Sprintf("pool %d: chain balance %s of %s below recorded %s\n",
						pool.Id, chainBalance.Amount, denom, rec.Balance)
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-backing",
			fmt.Sprintf("found %d under-backed pool balances\n%s", count, msg),
		), broken
	}
}

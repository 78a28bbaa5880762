package types

import (
	"cosmossdk.io/math"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
)

// Pool parameters at the 7-decimal token-amount boundary. Weight, fee and
// ratio constants are lifted into the 18-decimal domain with StroopScalar
// before entering pool math.
var (
	// MinWeight and MaxWeight bound a single token's denormalized weight.
	MinWeight = fixmath.Stroop
	MaxWeight = fixmath.Stroop.MulRaw(50)

	// MaxTotalWeight bounds the sum of denormalized weights.
	MaxTotalWeight = fixmath.Stroop.MulRaw(50)

	// NormalizedTotal is the exact weight sum required by one-shot pool
	// initialization: normalized 7-decimal weights summing to one.
	NormalizedTotal = fixmath.Stroop

	// MinBalance is the smallest balance a token may be bound with.
	MinBalance = math.NewInt(100)

	// MinFee and MaxFee bound the swap fee (1e-6 to 0.1).
	MinFee = math.NewInt(10)
	MaxFee = math.NewInt(1_000000)

	// MaxInRatio caps a single operation's input at half the pool-side
	// balance; MaxOutRatio caps output at a third.
	MaxInRatio  = fixmath.Stroop.QuoRaw(2)
	MaxOutRatio = fixmath.Stroop.QuoRaw(3).AddRaw(1)

	// InitPoolSupply is the share supply minted on finalize.
	InitPoolSupply = fixmath.Stroop.MulRaw(100)

	// ExitFee is zero; the withdrawal formulas charge no exit fee and do not
	// read this value.
	ExitFee = math.ZeroInt()
)

const (
	// MinBoundTokens and MaxBoundTokens bound the token set of a pool.
	MinBoundTokens = 2
	MaxBoundTokens = 8

	// DefaultTokenDecimals applies when a denom carries no bank metadata.
	DefaultTokenDecimals = 7

	// MaxTokenDecimals is the largest supported token precision.
	MaxTokenDecimals = 18

	// DenormPerNormalized scales a normalized 7-decimal weight into the
	// denormalized weight domain on one-shot initialization.
	DenormPerNormalized = 50
)

// Package fixmath implements the fixed-point arithmetic kernel used by the
// comet pool. All values are signed integers scaled by BONE (10^18). The
// token-amount boundary uses 7 decimals (STROOP); StroopScalar lifts a
// 7-decimal quantity into the BONE domain.
package fixmath

import "cosmossdk.io/math"

var (
	// Bone is the fixed-point one inside pool math.
	Bone = math.NewIntWithDecimal(1, 18)

	// Stroop is the fixed-point one at the token-amount boundary.
	Stroop = math.NewIntWithDecimal(1, 7)

	// StroopScalar lifts a 7-decimal quantity to the 18-decimal domain.
	StroopScalar = math.NewIntWithDecimal(1, 11)

	// MinCPowBase and MaxCPowBase bound the base accepted by Pow.
	MinCPowBase = math.OneInt()
	MaxCPowBase = Bone.MulRaw(2).SubRaw(1)

	// CPowPrecision is the stop condition of the fractional power series,
	// 10^-6 of Bone.
	CPowPrecision = math.NewIntWithDecimal(1, 12)

	// MaxI128 and MinI128 bound values crossing the token-amount boundary.
	MaxI128 = math.NewIntFromBigInt(maxI128Big())
	MinI128 = MaxI128.Neg().SubRaw(1)
)

// powIterationCap bounds the series to keep worst-case compute predictable.
const powIterationCap = 50

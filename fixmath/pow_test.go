package fixmath_test

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
)

// boneF lifts a float into the 18-decimal domain with 12 significant
// fractional digits, enough for test inputs.
func boneF(x float64) sdkmath.Int {
	return sdkmath.NewInt(int64(x * 1e12)).Mul(sdkmath.NewIntWithDecimal(1, 6))
}

func toFloat(x sdkmath.Int) float64 {
	return sdkmath.LegacyNewDecFromInt(x).QuoInt(fixmath.Bone).MustFloat64()
}

func TestPowi(t *testing.T) {
	square, err := fixmath.Powi(bone(2), 2)
	require.NoError(t, err)
	require.Equal(t, bone(4), square)

	cube, err := fixmath.Powi(bone(3), 3)
	require.NoError(t, err)
	require.Equal(t, bone(27), cube)

	identity, err := fixmath.Powi(bone(7), 1)
	require.NoError(t, err)
	require.Equal(t, bone(7), identity)

	one, err := fixmath.Powi(bone(7), 0)
	require.NoError(t, err)
	require.Equal(t, fixmath.Bone, one)
}

func TestPowBaseRange(t *testing.T) {
	_, err := fixmath.Pow(sdkmath.ZeroInt(), fixmath.Bone, false)
	require.ErrorIs(t, err, fixmath.ErrCPowBaseTooLow)

	_, err = fixmath.Pow(fixmath.Bone.MulRaw(2), fixmath.Bone, false)
	require.ErrorIs(t, err, fixmath.ErrCPowBaseTooHigh)
}

func TestPowWholeExponent(t *testing.T) {
	result, err := fixmath.Pow(boneF(1.5), bone(2), false)
	require.NoError(t, err)
	require.InEpsilon(t, 2.25, toFloat(result), 1e-9)
}

// TestPowDirectedBounds checks the one-sided approximation contract: the
// rounded-down result never exceeds the exact power and the rounded-up
// result never falls short, within the series precision.
func TestPowDirectedBounds(t *testing.T) {
	cases := []struct {
		base float64
		exp  float64
	}{
		{0.5, 0.5},
		{0.5, 1.7},
		{0.9901274, 0.5},
		{0.75, 4.0},
		{1.1, 2.5},
		{1.5, 0.5},
		{1.9, 0.25},
		{1.0, 3.3},
	}

	// the series stops once a term drops below 1e-6 of one
	tolerance := 2e-6

	for _, tc := range cases {
		exact := math.Pow(tc.base, tc.exp)

		down, err := fixmath.Pow(boneF(tc.base), boneF(tc.exp), false)
		require.NoError(t, err)
		require.LessOrEqual(t, toFloat(down), exact+tolerance, "base %v exp %v", tc.base, tc.exp)
		require.InDelta(t, exact, toFloat(down), tolerance+1e-4*exact, "base %v exp %v", tc.base, tc.exp)

		up, err := fixmath.Pow(boneF(tc.base), boneF(tc.exp), true)
		require.NoError(t, err)
		require.GreaterOrEqual(t, toFloat(up), exact-tolerance, "base %v exp %v", tc.base, tc.exp)
		require.InDelta(t, exact, toFloat(up), tolerance+1e-4*exact, "base %v exp %v", tc.base, tc.exp)

		require.True(t, down.LTE(up))
	}
}

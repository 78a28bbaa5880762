package pricing_test

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	"github.com/CometDEX/comet-contracts-v1/x/comet/pricing"
)

// The float model mirrors the reference semantics the fixed-point formulas
// approximate; fixed-point results must land within series precision of it,
// biased toward the pool.

func bone(n int64) sdkmath.Int {
	return fixmath.Bone.MulRaw(n)
}

func boneF(x float64) sdkmath.Int {
	return sdkmath.NewInt(int64(x * 1e12)).Mul(sdkmath.NewIntWithDecimal(1, 6))
}

func toFloat(x sdkmath.Int) float64 {
	return sdkmath.LegacyNewDecFromInt(x).QuoInt(fixmath.Bone).MustFloat64()
}

func TestSpotPriceBalanced(t *testing.T) {
	// equal balances and weights trade at par
	price, err := pricing.SpotPrice(bone(10), bone(5), bone(10), bone(5), sdkmath.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, fixmath.Bone, price)

	// the fee scales the price by 1/(1-fee)
	fee := boneF(0.003)
	price, err = pricing.SpotPrice(bone(10), bone(5), bone(10), bone(5), fee)
	require.NoError(t, err)
	require.InEpsilon(t, 1/0.997, toFloat(price), 1e-9)
}

func TestSpotPriceReciprocal(t *testing.T) {
	balanceA, weightA := bone(130), bone(10)
	balanceB, weightB := bone(40), bone(40)

	forward, err := pricing.SpotPrice(balanceA, weightA, balanceB, weightB, sdkmath.ZeroInt())
	require.NoError(t, err)
	backward, err := pricing.SpotPrice(balanceB, weightB, balanceA, weightA, sdkmath.ZeroInt())
	require.NoError(t, err)

	require.InEpsilon(t, 1.0, toFloat(forward)*toFloat(backward), 1e-9)
}

func TestOutGivenIn(t *testing.T) {
	// in balance 100 at weight 5, out balance 50 at weight 10, 0.3% fee,
	// one token in
	out, err := pricing.OutGivenIn(bone(100), bone(5), bone(50), bone(10), bone(1), boneF(0.003))
	require.NoError(t, err)

	exact := 50 * (1 - math.Pow(100/(100+0.997), 5.0/10.0))
	require.InDelta(t, exact, toFloat(out), 1e-4)
	require.InDelta(t, 0.2474264, toFloat(out), 1e-4)
}

func TestInGivenOut(t *testing.T) {
	in, err := pricing.InGivenOut(bone(100), bone(5), bone(50), bone(10), bone(1), boneF(0.003))
	require.NoError(t, err)

	exact := 100 * (math.Pow(50.0/49.0, 10.0/5.0) - 1) / 0.997
	require.InDelta(t, exact, toFloat(in), 1e-3)
}

// TestSwapRoundTrip checks the pool never loses value to round-trip
// computation: swapping the computed input back in never yields more than
// the original amount.
func TestSwapRoundTrip(t *testing.T) {
	balanceIn, weightIn := bone(1000), bone(10)
	balanceOut, weightOut := bone(700), bone(25)
	fee := boneF(0.003)

	for _, amount := range []int64{1, 7, 50} {
		out, err := pricing.OutGivenIn(balanceIn, weightIn, balanceOut, weightOut, bone(amount), fee)
		require.NoError(t, err)

		// in needed to buy exactly `out` must cover the original input
		in, err := pricing.InGivenOut(balanceIn, weightIn, balanceOut, weightOut, out, fee)
		require.NoError(t, err)
		require.True(t, in.GTE(bone(amount).Sub(boneF(0.01))),
			"round trip paid %s for original %s", in, bone(amount))

		// and the surcharge stays within approximation precision
		require.InDelta(t, toFloat(bone(amount)), toFloat(in), 1e-3*float64(amount)+1e-3)
	}
}

func TestLpOutGivenTokenIn(t *testing.T) {
	supply := bone(100)
	totalWeight := bone(50)

	// single-sided deposit of 10 into balance 100 at 20% weight
	minted, err := pricing.LpOutGivenTokenIn(bone(100), bone(10), supply, totalWeight, bone(10), boneF(0.003))
	require.NoError(t, err)

	weightedFee := (1 - 0.2) * 0.003
	exact := 100 * (math.Pow(1+10*(1-weightedFee)/100.0, 0.2) - 1)
	require.InDelta(t, exact, toFloat(minted), 1e-3)
}

func TestDepositInverse(t *testing.T) {
	supply := bone(100)
	totalWeight := bone(50)
	balance := bone(100)
	weight := bone(10)
	fee := boneF(0.003)

	minted, err := pricing.LpOutGivenTokenIn(balance, weight, supply, totalWeight, bone(10), fee)
	require.NoError(t, err)

	// depositing for exactly `minted` shares must cost at least the
	// original 10 tokens
	in, err := pricing.TokenInGivenLpOut(balance, weight, supply, totalWeight, minted, fee)
	require.NoError(t, err)
	require.True(t, in.GTE(bone(10).Sub(boneF(0.01))))
	require.InDelta(t, 10.0, toFloat(in), 1e-2)
}

func TestWithdrawInverse(t *testing.T) {
	supply := bone(100)
	totalWeight := bone(50)
	balance := bone(100)
	weight := bone(10)
	fee := boneF(0.003)

	// burning shares for a computed withdrawal, then asking the share cost
	// of that withdrawal, must burn no fewer shares
	out, err := pricing.TokenOutGivenLpIn(balance, weight, supply, totalWeight, bone(5), fee)
	require.NoError(t, err)

	burned, err := pricing.LpInGivenTokenOut(balance, weight, supply, totalWeight, out, fee)
	require.NoError(t, err)
	require.True(t, burned.GTE(bone(5).Sub(boneF(0.01))))
	require.InDelta(t, 5.0, toFloat(burned), 1e-2)
}

func TestWithdrawMatchesFloatModel(t *testing.T) {
	supply := bone(100)
	totalWeight := bone(50)
	balance := bone(100)
	weight := bone(10)
	fee := boneF(0.003)

	out, err := pricing.TokenOutGivenLpIn(balance, weight, supply, totalWeight, bone(5), fee)
	require.NoError(t, err)

	ratio := 1 - 5.0/100.0
	withdrawnWithFee := 100 * (1 - math.Pow(ratio, 1/0.2))
	exact := withdrawnWithFee * (1 - (1-0.2)*0.003)
	require.InDelta(t, exact, toFloat(out), 1e-2)
}

func TestJoinExitRatios(t *testing.T) {
	supply := bone(100)

	joinRatio, err := pricing.JoinRatio(supply, bone(120))
	require.NoError(t, err)
	require.Equal(t, boneF(1.2), joinRatio)

	exitRatio, err := pricing.ExitRatio(supply, bone(20))
	require.NoError(t, err)
	require.Equal(t, boneF(0.2), exitRatio)

	// ceil and floor part ways on inexact ratios
	joinRatio, err = pricing.JoinRatio(bone(3), bone(1))
	require.NoError(t, err)
	exitRatio, err = pricing.ExitRatio(bone(3), bone(1))
	require.NoError(t, err)
	require.Equal(t, sdkmath.OneInt(), joinRatio.Sub(exitRatio))
}

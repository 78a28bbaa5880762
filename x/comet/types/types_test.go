package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

func TestRecordStorageRoundTrip(t *testing.T) {
	rec := types.Record{
		Balance: math.NewInt(1_000000000),
		Denorm:  math.NewInt(50_000000),
		Scalar:  math.NewIntWithDecimal(1, 11),
		Index:   3,
		Bound:   true,
	}

	bz, err := rec.Marshal()
	require.NoError(t, err)

	var decoded types.Record
	require.NoError(t, decoded.Unmarshal(bz))
	require.Equal(t, rec, decoded)
}

func TestPoolScaleHelpers(t *testing.T) {
	pool := types.Pool{
		SwapFee:     math.NewInt(30000),
		TotalWeight: math.NewInt(100_000000),
		TotalShares: math.NewInt(1_000000000),
	}

	require.Equal(t, math.NewInt(30000).Mul(fixmath.StroopScalar), pool.SwapFeeBone())
	require.Equal(t, math.NewInt(100_000000).Mul(fixmath.StroopScalar), pool.TotalWeightBone())
	require.Equal(t, math.NewInt(1_000000000).Mul(fixmath.StroopScalar), pool.TotalSharesBone())
}

func TestRecordBalanceBone(t *testing.T) {
	rec := types.Record{
		Balance: math.NewInt(123),
		Scalar:  fixmath.TokenScalar(7),
	}
	up, err := rec.BalanceBone()
	require.NoError(t, err)
	require.Equal(t, math.NewInt(123).Mul(math.NewIntWithDecimal(1, 11)), up)
}

func TestPoolAddressDistinct(t *testing.T) {
	require.NotEqual(t, types.PoolAddress(1), types.PoolAddress(2))
	require.Len(t, types.PoolAddress(1), 32)
}

func TestConstants(t *testing.T) {
	require.Equal(t, fixmath.Stroop, types.MinWeight)
	require.Equal(t, fixmath.Stroop.MulRaw(50), types.MaxTotalWeight)
	require.Equal(t, math.NewInt(5_000000), types.MaxInRatio)
	require.Equal(t, math.NewInt(3_333334), types.MaxOutRatio)
	require.Equal(t, fixmath.Stroop.MulRaw(100), types.InitPoolSupply)
}

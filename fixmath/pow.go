package fixmath

import "cosmossdk.io/math"

// Powi computes a^n in fixed point by repeated squaring with floor rounding.
func Powi(a math.Int, n uint64) (math.Int, error) {
	z := Bone
	if n%2 != 0 {
		z = a
	}

	var err error
	for n /= 2; n != 0; n /= 2 {
		a, err = MulFloor(a, a)
		if err != nil {
			return math.Int{}, err
		}
		if n%2 != 0 {
			z, err = MulFloor(z, a)
			if err != nil {
				return math.Int{}, err
			}
		}
	}
	return z, nil
}

// Pow computes base^exp for fixed-point base and exp with a directed bound:
// with roundUp false the result never exceeds the exact value, with roundUp
// true it never falls short, within CPowPrecision. The whole part of the
// exponent goes through Powi, the fractional remainder through the binomial
// series in powApprox.
func Pow(base, exp math.Int, roundUp bool) (math.Int, error) {
	if base.LT(MinCPowBase) {
		return math.Int{}, ErrCPowBaseTooLow
	}
	if base.GT(MaxCPowBase) {
		return math.Int{}, ErrCPowBaseTooHigh
	}

	whole := exp.Quo(Bone)
	remain := exp.Sub(whole.Mul(Bone))
	wholePow, err := Powi(base, whole.Uint64())
	if err != nil {
		return math.Int{}, err
	}
	if remain.IsZero() {
		return wholePow, nil
	}

	partial, err := powApprox(base, remain, CPowPrecision, roundUp)
	if err != nil {
		return math.Int{}, err
	}
	if roundUp {
		return MulCeil(wholePow, partial)
	}
	return MulFloor(wholePow, partial)
}

// powApprox evaluates (1+x)^exp for x = base-Bone and 0 < exp < Bone using
// the generalized binomial series
//
//	(1+x)^a = sum_k C(a,k) x^k
//
// with term recurrence T_{k+1} = T_k * (a - k*Bone) * x / ((k+1)*Bone*Bone).
// The series stops once a term drops below precision, or after
// powIterationCap terms to bound compute. The final term then adjusts the sum
// so the truncation error is one-sided in the requested rounding direction.
func powApprox(base, exp, precision math.Int, roundUp bool) (math.Int, error) {
	x := base.Sub(Bone)
	term := Bone
	sum := term

	var err error
	for i := int64(1); i <= powIterationCap; i++ {
		bigK := Bone.MulRaw(i)
		c := exp.Sub(bigK.Sub(Bone))
		cx, cerr := MulFloor(c, x)
		if cerr != nil {
			return math.Int{}, cerr
		}
		term, err = MulFloor(term, cx)
		if err != nil {
			return math.Int{}, err
		}
		term, err = DivFloor(term, bigK)
		if err != nil {
			return math.Int{}, err
		}
		sum = sum.Add(term)

		if term.Abs().LTE(precision) {
			break
		}
	}

	// The series has predictable truncation bounds, so the final term turns
	// the sum into a one-sided estimate matching the rounding direction.
	if x.IsPositive() {
		// The series oscillates: c goes negative while the first terms are
		// positive.
		if term.IsPositive() && !roundUp {
			// Final applied term was additive; the sum likely overestimates.
			sum = sum.Sub(term)
		} else if term.IsNegative() && roundUp {
			// Final applied term was subtractive; the sum likely
			// underestimates.
			sum = sum.Sub(term)
		}
	} else if !roundUp {
		// Monotonically decreasing series; the final term overestimates.
		sum = sum.Add(term)
	}
	return sum, nil
}

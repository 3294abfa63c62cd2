package awp

import "math"

// fpBits is the width of the internal working mantissa (int64), used to
// scale between it and a native float64's [0.5, 1) mantissa.
const fpBits = 64

// ToDouble converts the triplet held in (R1, R2, R3) to a native float64.
// Returns ErrFPError, with no output, if the triplet is denormalized.
func (r *Registers) ToDouble() (float64, error) {
	f, normalized := unpackFloat(r.triplet())
	if !normalized {
		return 0, ErrFPError
	}

	mantissa := math.Ldexp(float64(f.m), -(fpBits - 1))
	return math.Ldexp(mantissa, int(f.e)), nil
}

// FromDouble converts a native float64 into the AWP triplet held in
// (R1, R2, R3), setting Z and M from the stored mantissa.
//
// Because a native mantissa from Frexp lands in [0.5, 1) (or (-1, -0.5]
// for negatives) while AWP's normalized range is [-1, -0.5) ∪ [0.5, 1),
// normalize performs the same "shift left, decrement exponent" adjustment
// needed to bridge the two representations — notably, to represent -1.0
// exactly. If round is true, the same bit-40 rounding guard used by
// AF/SF/MF is applied, and C reports whether that guard fired; if round
// is false, C is left untouched, matching awp_from_double's direct call
// to awp_store_float with no rounding step.
func (r *Registers) FromDouble(value float64, round bool) error {
	mantissa, exp := math.Frexp(value)
	f := floatState{
		m: int64(math.Ldexp(mantissa, fpBits-1)),
		e: int32(exp),
	}
	normalize(&f)

	if round {
		guard := roundAndRenormalize(&f)
		setFlagBit(r.Flags, FlagC, guard)
	}

	w, err := packFloat(f, r.Flags)
	r.storeTriplet(w)
	return err
}

package awp

import "math"

// dword concatenates two 16-bit words into a 32-bit dword, hi:lo.
func dword(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// splitDword splits a 32-bit dword into hi:lo words.
func splitDword(v uint32) (hi, lo uint16) {
	return uint16(v >> 16), uint16(v)
}

// AddSub implements AD (op >= 0) and SD (op < 0): the 32-bit dword held in
// (R1, R2) is added to, or has subtracted from it, the dword (n1, n2).
// Subtraction is computed as addition of the two's-complement negation of
// the second operand, reusing AD's flag predicates uniformly — see
// DESIGN.md for why this spec prescribes that over the hardware's second,
// borrow-derived implementation.
//
// Updates V, M, C, Z in that order (M depends on V) and always returns nil:
// AD/SD cannot fail.
func (r *Registers) AddSub(n1, n2 uint16, op int8) error {
	a := dword(*r.R1, *r.R2)
	b := dword(n1, n2)
	if op < 0 {
		b = uint32(-int32(b))
	}

	res := uint64(a) + uint64(b)
	*r.R1, *r.R2 = splitDword(uint32(res))

	v := updateV(r.Flags, a, b, res)
	setM(r.Flags, res, v)
	setC(r.Flags, res)
	setZ32(r.Flags, res)

	return nil
}

// Mul implements MW: the signed 16-bit value in R2 is multiplied by n,
// producing a 32-bit signed product stored hi:lo in (R1, R2). Only M and Z
// are updated; V and C are left untouched, matching the hardware.
func (r *Registers) Mul(n int16) error {
	res := int64(int16(*r.R2)) * int64(n)
	*r.R1, *r.R2 = splitDword(uint32(res))

	setM(r.Flags, uint64(uint32(res)), false)
	setZ32(r.Flags, uint64(uint32(res)))

	return nil
}

// Div implements DW: the 32-bit dword held in (R1, R2) is divided by n
// using truncated division. The quotient replaces R2, the remainder
// replaces R1. Only M and Z are updated.
//
// Returns ErrFPError if n is zero (registers and flags untouched), or
// ErrDivOverflow if the quotient doesn't fit in a signed 16-bit register
// (registers and flags untouched). A documented hardware quirk overrides
// the mathematical quotient for the single case a=0x7FFFFFFF, n=-32768.
func (r *Registers) Div(n int16) error {
	if n == 0 {
		return ErrFPError
	}

	a := int32(dword(*r.R1, *r.R2))
	quotient := int64(a) / int64(n)
	remainder := a % int32(n)

	if a == math.MaxInt32 && n == -32768 {
		quotient = 1
	}

	if quotient > math.MaxInt16 || quotient < math.MinInt16 {
		return ErrDivOverflow
	}

	*r.R2 = uint16(int16(quotient))
	*r.R1 = uint16(remainder)

	setM(r.Flags, uint64(uint32(int32(quotient))), false)
	setZ32(r.Flags, uint64(uint32(int32(quotient))))

	return nil
}

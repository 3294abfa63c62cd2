package awp

import "errors"

// Result codes from spec: OK is reported as a nil error; everything else
// is one of the sentinels below, matched with errors.Is.
var (
	// ErrFPUnderflow reports that a float operation's result exponent fell
	// below -128. The truncated result and flags were written anyway.
	ErrFPUnderflow = errors.New("awp: floating point underflow")

	// ErrFPOverflow reports that a float operation's result exponent rose
	// above 127. The truncated result and flags were written anyway.
	ErrFPOverflow = errors.New("awp: floating point overflow")

	// ErrDivOverflow reports that a 32-bit divide's quotient did not fit
	// in a signed 16-bit register. Registers and flags are untouched.
	ErrDivOverflow = errors.New("awp: divide quotient overflow")

	// ErrFPError reports a denormalized float operand, or a zero float or
	// integer divisor. Registers and flags are untouched.
	ErrFPError = errors.New("awp: denormalized operand or division by zero")
)

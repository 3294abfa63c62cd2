package awp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jfik/mera-awp/awp"
)

func newRegisters(flags, r1, r2, r3 uint16) (*awp.Registers, *uint16, *uint16, *uint16, *uint16) {
	f, a, b, c := flags, r1, r2, r3
	return awp.NewRegisters(&f, &a, &b, &c), &f, &a, &b, &c
}

// S4: 32-bit add overflow. 0x7FFFFFFF + 1 -> 0x80000000; V set, C clear,
// Z clear. M is clear too: two positive operands overflowing into a
// negative-looking bit pattern is still a genuinely positive result, and
// setM (flags.go) computes the sign of the result XORed with V, which
// here is true XORed with true.
func TestAddSubOverflow(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0, 0x7FFF, 0xFFFF, 0)

	err := r.AddSub(0, 1, +1)
	require.NoError(t, err)

	require.Equal(t, uint16(0x8000), *r1)
	require.Equal(t, uint16(0x0000), *r2)
	require.Equal(t, awp.FlagV, *flags&(awp.FlagZ|awp.FlagM|awp.FlagV|awp.FlagC))
}

func TestAddSubBasic(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0, 0, 5, 0)

	require.NoError(t, r.AddSub(0, 3, +1))
	require.Equal(t, uint16(0), *r1)
	require.Equal(t, uint16(8), *r2)
	require.Equal(t, uint16(0), *flags&(awp.FlagZ|awp.FlagM|awp.FlagV|awp.FlagC))
}

func TestAddSubNegation(t *testing.T) {
	// SD is AD with the second operand two's-complement negated.
	r, _, r1, r2, _ := newRegisters(0, 0, 10, 0)

	require.NoError(t, r.AddSub(0, 3, -1))
	require.Equal(t, uint16(0), *r1)
	require.Equal(t, uint16(7), *r2)
}

func TestAddSubZeroFlag(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0, 0, 5, 0)

	require.NoError(t, r.AddSub(0, 5, -1))
	require.Equal(t, uint16(0), *r1)
	require.Equal(t, uint16(0), *r2)
	require.True(t, *flags&awp.FlagZ != 0)
}

// V is set and never cleared within a single AddSub call: check it stays
// set through a later non-overflowing operation, per spec.md §4.1.
func TestAddSubVNeverClearedWithinCall(t *testing.T) {
	r, flags, _, _, _ := newRegisters(awp.FlagV, 0, 5, 0)

	require.NoError(t, r.AddSub(0, 3, +1))
	require.True(t, *flags&awp.FlagV != 0)
}

func TestMul(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0xFFFF, 0, 7, 0)

	require.NoError(t, r.Mul(6))
	require.Equal(t, uint16(0), *r1)
	require.Equal(t, uint16(42), *r2)
	require.True(t, *flags&awp.FlagZ == 0)
	require.True(t, *flags&awp.FlagM == 0)
	// MW does not touch V or C.
	require.True(t, *flags&awp.FlagV != 0)
	require.True(t, *flags&awp.FlagC != 0)
}

func TestMulNegative(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0, 0, uint16(int16(-7)), 0)

	require.NoError(t, r.Mul(6))
	require.Equal(t, int32(-42), int32(int16(*r1))<<16|int32(uint16(*r2)))
	require.True(t, *flags&awp.FlagM != 0)
}

// S5: DW overflow. 0x00010000 / 1 -> quotient 0x00010000 doesn't fit in
// 16 bits -> DIV_OF, registers and flags untouched.
func TestDivOverflow(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0x00F0, 1, 0, 0)

	err := r.Div(1)
	require.ErrorIs(t, err, awp.ErrDivOverflow)
	require.Equal(t, uint16(1), *r1)
	require.Equal(t, uint16(0), *r2)
	require.Equal(t, uint16(0x00F0), *flags)
}

func TestDivByZero(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0x00F0, 0, 10, 0)

	err := r.Div(0)
	require.True(t, errors.Is(err, awp.ErrFPError))
	require.Equal(t, uint16(0), *r1)
	require.Equal(t, uint16(10), *r2)
	require.Equal(t, uint16(0x00F0), *flags)
}

func TestDivBasic(t *testing.T) {
	r, flags, r1, r2, _ := newRegisters(0xFFFF, 0, 17, 0)

	require.NoError(t, r.Div(5))
	require.Equal(t, uint16(2), *r1) // remainder
	require.Equal(t, uint16(3), *r2) // quotient
	require.True(t, *flags&awp.FlagZ == 0)
	require.True(t, *flags&awp.FlagM == 0)
}

// The documented hardware quirk: a=0x7FFFFFFF, n=-32768 -> quotient 1,
// overriding the mathematically truncated quotient -65535.
func TestDivHardwareQuirk(t *testing.T) {
	r, _, r1, r2, _ := newRegisters(0, 0x7FFF, 0xFFFF, 0)

	require.NoError(t, r.Div(-32768))
	require.Equal(t, uint16(1), *r2)
	require.Equal(t, uint16(0x7FFF), *r1)
}

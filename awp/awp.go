// Package awp emulates the MERA-400's Arithmetic Extension Unit (AWP): the
// 32-bit two's-complement integer family (AD/SD/MW/DW) and the 48-bit
// MERA-400 floating point family (NF/AF/SF/MF/DF), plus the host-double
// bridge (to_double/from_double).
//
// The package is a pure, allocation-free library over caller-owned memory:
// every operation takes a Registers handle bound to the caller's words and
// mutates them in place. There is no hidden state and no I/O.
package awp

// Registers binds the kernel to the caller's memory: the three-word AWP
// operand triplet (R1, R2, R3) and the 16-bit flags word. It is the Go
// rendering of the emawp.h "handle" returned by an init() call — there is
// no matching destroy, since the handle owns nothing but the pointers it
// was given.
type Registers struct {
	Flags *uint16
	R1    *uint16
	R2    *uint16
	R3    *uint16
}

// NewRegisters binds a kernel handle to caller-owned memory. The pointers
// must remain valid for the lifetime of the handle; the kernel never
// allocates or frees them. Flags, R1 and R2 must be non-nil; R3 is read
// only by the float operations and may be nil for a handle used solely
// for AddSub, Mul and Div.
func NewRegisters(flags, r1, r2, r3 *uint16) *Registers {
	return &Registers{Flags: flags, R1: r1, R2: r2, R3: r3}
}

// triplet reads the current AWP float operand held in (R1, R2, R3).
func (r *Registers) triplet() [3]uint16 {
	return [3]uint16{*r.R1, *r.R2, *r.R3}
}

// storeTriplet writes an AWP float triplet back to (R1, R2, R3).
func (r *Registers) storeTriplet(w [3]uint16) {
	*r.R1, *r.R2, *r.R3 = w[0], w[1], w[2]
}

// Package status implements the 6502 processor status register (the P
// register): eight packed flag bits with helpers to pack/unpack the whole
// byte and to update the Zero/Negative flags, which nearly every
// instruction does.
//
// https://www.nesdev.org/wiki/Status_flags#Flags
// https://problemkaputt.de/everynes.htm#cpuregistersandflags
package status

// A Flag identifies one bit position of the status register.
//
// 7654 3210
// NV1B DIZC
type Flag byte

const (
	Carry Flag = iota
	Zero
	InterruptDisable
	DecimalMode
	Break
	Unused
	Overflow
	Negative
)

// A Register is the packed 8-bit P register. The zero value has every
// flag clear; callers that need the power-on/reset value should use
// Unpack with the documented reset byte instead of relying on the zero
// value.
type Register struct {
	flags byte
}

// Get reports whether f is set.
func (r Register) Get(f Flag) bool {
	return r.flags&(1<<f) != 0
}

// Set assigns f to v.
func (r *Register) Set(f Flag, v bool) {
	if v {
		r.flags |= 1 << f
	} else {
		r.flags &^= 1 << f
	}
}

// Pack returns the raw status byte. Bit 5 (Unused) reflects whatever was
// last written to it by the caller; the CPU core is responsible for
// keeping it pinned to 1 across reset, PLP, and RTI.
func (r Register) Pack() byte {
	return r.flags
}

// Unpack overwrites every bit of the register verbatim. Callers that need
// to preserve B across a pull (PLP, RTI) must do so themselves before
// calling Unpack.
func (r *Register) Unpack(b byte) {
	r.flags = b
}

// UpdateZN sets Zero iff v is zero and Negative iff bit 7 of v is set.
// This is the single most common flag update in the instruction set.
func (r *Register) UpdateZN(v byte) {
	r.Set(Zero, v == 0)
	r.Set(Negative, v&0x80 != 0)
}

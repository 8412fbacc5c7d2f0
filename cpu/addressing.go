package cpu

// An AddressingMode tells the Cpu where to find the operand for a given
// instruction. There are 13 possible modes; most can address the full
// 64 KiB range, the exception being the ZeroPage family, which is
// confined to the first 256 bytes.
//
// https://www.nesdev.org/wiki/CPU_addressing_modes
// https://problemkaputt.de/everynes.htm#cpumemoryaddressing
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand bytes
	Accumulator                       // operand is the Accumulator itself

	Immediate // operand is the next byte, used directly as a value
	ZeroPage  // addr = operand, page 0
	ZeroPageX // addr = (operand + X) mod 256, page 0
	ZeroPageY // addr = (operand + Y) mod 256, page 0
	IndirectX // pre-indexed: pointer = (operand + X) mod 256, in page 0
	IndirectY // post-indexed: pointer = operand, Y added after indirection
	Relative  // operand is a signed 8-bit branch displacement

	Absolute  // addr = 16-bit little-endian operand
	AbsoluteX // addr = Absolute + X, may cross a page
	AbsoluteY // addr = Absolute + Y, may cross a page

	Indirect // JMP only; addr = word stored at the 16-bit operand
)

// OperandBytes reports how many bytes of operand follow the opcode byte
// under this mode.
func (a AddressingMode) OperandBytes() int {
	switch a {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}

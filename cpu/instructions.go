package cpu

import "mos6502/status"

// Each method below implements exactly one mnemonic's semantics. Operands
// are read via load (the accumulator for Accumulator-mode instructions,
// the addressing mode's resolved value otherwise) and written back via
// store, so the same method body serves every addressing mode an opcode
// table entry assigns it.

// Load/store

func (c *Cpu) LDA() { c.A = c.load(); c.Status.UpdateZN(c.A) }
func (c *Cpu) LDX() { c.X = c.load(); c.Status.UpdateZN(c.X) }
func (c *Cpu) LDY() { c.Y = c.load(); c.Status.UpdateZN(c.Y) }

func (c *Cpu) STA() { c.store(c.A) }
func (c *Cpu) STX() { c.store(c.X) }
func (c *Cpu) STY() { c.store(c.Y) }

// Register transfers

func (c *Cpu) TAX() { c.X = c.A; c.Status.UpdateZN(c.X) }
func (c *Cpu) TAY() { c.Y = c.A; c.Status.UpdateZN(c.Y) }
func (c *Cpu) TXA() { c.A = c.X; c.Status.UpdateZN(c.A) }
func (c *Cpu) TYA() { c.A = c.Y; c.Status.UpdateZN(c.A) }
func (c *Cpu) TSX() { c.X = c.SP; c.Status.UpdateZN(c.X) }
func (c *Cpu) TXS() { c.SP = c.X } // does not touch flags

// Stack

func (c *Cpu) PHA() { c.push8(c.A) }
func (c *Cpu) PLA() { c.A = c.pull8(); c.Status.UpdateZN(c.A) }

// PHP always pushes the status byte with B and Unused forced to 1,
// regardless of how the processor itself got here; this differs from the
// pushes IRQ/NMI perform, which force B to 0.
func (c *Cpu) PHP() { c.push8(c.Status.Pack() | (1 << status.Break) | (1 << status.Unused)) }

// PLP discards the pulled B bit entirely, keeping whatever B currently
// reads as (the flag has no real storage outside a pushed copy), and
// forces Unused back to 1.
func (c *Cpu) PLP() { c.installStatus(c.pull8()) }

func (c *Cpu) installStatus(pulled byte) {
	var b byte
	if c.Status.Get(status.Break) {
		b = 1
	}
	c.Status.Unpack((pulled &^ (1 << status.Break)) | (b << status.Break) | (1 << status.Unused))
}

// Arithmetic

func (c *Cpu) adc(value byte) {
	carry := uint16(0)
	if c.Status.Get(status.Carry) {
		carry = 1
	}
	a := c.A
	sum := uint16(a) + uint16(value) + carry
	result := byte(sum)

	c.Status.Set(status.Carry, sum > 0xFF)
	c.Status.Set(status.Overflow, (a^result)&(value^result)&0x80 != 0)
	c.A = result
	c.Status.UpdateZN(c.A)
}

func (c *Cpu) ADC() { c.adc(c.load()) }
func (c *Cpu) SBC() { c.adc(^c.load()) }

func (c *Cpu) compare(reg byte, value byte) {
	result := reg - value
	c.Status.Set(status.Carry, reg >= value)
	c.Status.UpdateZN(result)
}

func (c *Cpu) CMP() { c.compare(c.A, c.load()) }
func (c *Cpu) CPX() { c.compare(c.X, c.load()) }
func (c *Cpu) CPY() { c.compare(c.Y, c.load()) }

// Logic

func (c *Cpu) AND() { c.A &= c.load(); c.Status.UpdateZN(c.A) }
func (c *Cpu) ORA() { c.A |= c.load(); c.Status.UpdateZN(c.A) }
func (c *Cpu) EOR() { c.A ^= c.load(); c.Status.UpdateZN(c.A) }

func (c *Cpu) BIT() {
	value := c.load()
	c.Status.Set(status.Zero, c.A&value == 0)
	c.Status.Set(status.Negative, value&0x80 != 0)
	c.Status.Set(status.Overflow, value&0x40 != 0)
}

// Shift/rotate

func (c *Cpu) ASL() {
	v := c.load()
	result := v << 1
	c.Status.Set(status.Carry, v&0x80 != 0)
	c.Status.UpdateZN(result)
	c.store(result)
}

func (c *Cpu) LSR() {
	v := c.load()
	result := v >> 1
	c.Status.Set(status.Carry, v&0x01 != 0)
	c.Status.UpdateZN(result)
	c.store(result)
}

func (c *Cpu) ROL() {
	v := c.load()
	oldCarry := c.Status.Get(status.Carry)
	result := v << 1
	if oldCarry {
		result |= 0x01
	}
	c.Status.Set(status.Carry, v&0x80 != 0)
	c.Status.UpdateZN(result)
	c.store(result)
}

func (c *Cpu) ROR() {
	v := c.load()
	oldCarry := c.Status.Get(status.Carry)
	result := v >> 1
	if oldCarry {
		result |= 0x80
	}
	c.Status.Set(status.Carry, v&0x01 != 0)
	c.Status.UpdateZN(result)
	c.store(result)
}

// Increment/decrement

func (c *Cpu) INC() { result := c.load() + 1; c.Status.UpdateZN(result); c.store(result) }
func (c *Cpu) DEC() { result := c.load() - 1; c.Status.UpdateZN(result); c.store(result) }

func (c *Cpu) INX() { c.X++; c.Status.UpdateZN(c.X) }
func (c *Cpu) DEX() { c.X--; c.Status.UpdateZN(c.X) }
func (c *Cpu) INY() { c.Y++; c.Status.UpdateZN(c.Y) }
func (c *Cpu) DEY() { c.Y--; c.Status.UpdateZN(c.Y) }

// Flow control

func (c *Cpu) JMP() { c.PC = c.effAddr }

func (c *Cpu) JSR() {
	c.push16(c.PC - 1)
	c.PC = c.effAddr
}

func (c *Cpu) RTS() { c.PC = c.pull16() + 1 }

// BRK behaves like a hardware IRQ triggered by software, except the
// pushed return address skips the padding byte following the opcode and
// the pushed status always has B set.
func (c *Cpu) BRK() {
	c.push16(c.PC + 1)
	c.push8(c.Status.Pack() | (1 << status.Break) | (1 << status.Unused))
	c.Status.Set(status.InterruptDisable, true)
	c.PC = c.Bus.ReadWord(vectorIRQ)
}

func (c *Cpu) RTI() {
	c.installStatus(c.pull8())
	c.PC = c.pull16()
}

// branch applies the common branch-taken bookkeeping: effAddr was already
// computed by resolve(Relative) as the target address. Taken branches cost
// one extra cycle, plus one more if the branch crosses a page boundary.
func (c *Cpu) branch(taken bool) {
	if !taken {
		return
	}
	old := c.PC
	c.PC = c.effAddr
	c.branchExtra = 1
	if old&0xFF00 != c.PC&0xFF00 {
		c.branchExtra++
	}
}

func (c *Cpu) BCC() { c.branch(!c.Status.Get(status.Carry)) }
func (c *Cpu) BCS() { c.branch(c.Status.Get(status.Carry)) }
func (c *Cpu) BEQ() { c.branch(c.Status.Get(status.Zero)) }
func (c *Cpu) BNE() { c.branch(!c.Status.Get(status.Zero)) }
func (c *Cpu) BMI() { c.branch(c.Status.Get(status.Negative)) }
func (c *Cpu) BPL() { c.branch(!c.Status.Get(status.Negative)) }
func (c *Cpu) BVC() { c.branch(!c.Status.Get(status.Overflow)) }
func (c *Cpu) BVS() { c.branch(c.Status.Get(status.Overflow)) }

// Flag instructions

func (c *Cpu) CLC() { c.Status.Set(status.Carry, false) }
func (c *Cpu) SEC() { c.Status.Set(status.Carry, true) }
func (c *Cpu) CLI() { c.Status.Set(status.InterruptDisable, false) }
func (c *Cpu) SEI() { c.Status.Set(status.InterruptDisable, true) }
func (c *Cpu) CLD() { c.Status.Set(status.DecimalMode, false) }
func (c *Cpu) SED() { c.Status.Set(status.DecimalMode, true) }
func (c *Cpu) CLV() { c.Status.Set(status.Overflow, false) }

func (c *Cpu) NOP() {}

// illegal is the fallback handler for the 105 opcode bytes with no legal
// 6502 meaning. Per the documented NMOS behavior this module emulates,
// they execute as a 1-byte, 2-cycle NOP.
func (c *Cpu) illegal() {}

// Package cpu implements an instruction-level MOS 6502 core: registers, the
// 256 entry opcode table, addressing mode resolution, and per-mnemonic
// instruction semantics. The core only ever talks to memory through the
// mem.Bus interface, so it can be attached to any address-space
// implementation the caller provides.
//
// Cycles are counted per whole instruction (base cost plus page-crossing
// and branch-taken penalties); the individual bus cycles inside an
// instruction are not modelled.
package cpu

import (
	"mos6502/mask"
	"mos6502/mem"
	"mos6502/status"
)

const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE

	stackBase = 0x0100
)

// Cpu holds the full architectural state of a 6502: the three 8-bit
// registers, the stack pointer, the program counter, and the packed
// status register. Cycles is the whole-instruction cycle cost most
// recently computed by ExecuteInstruction; Step consumes it one tick at a
// time for callers that want to pace emulation against wall-clock time.
type Cpu struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	Status  status.Register
	Cycles  byte

	Bus mem.Bus

	// Addressing-mode scratch, set fresh by resolve() on every
	// instruction dispatch.
	mode        AddressingMode
	effAddr     uint16
	operand     byte
	pageCrossed bool
	branchExtra byte
}

// New returns a Cpu wired to bus. Callers must call Reset before the first
// ExecuteInstruction/Step to load the program counter from the reset
// vector and establish the documented power-on register state.
func New(bus mem.Bus) *Cpu {
	return &Cpu{Bus: bus}
}

// Reset reproduces the 6502's reset sequence: registers are cleared, the
// stack pointer is set to its post-reset value of 0xFD, status is forced
// to 0x34 (Unused and InterruptDisable set, B reads as set, everything
// else clear), the program counter is loaded from the reset vector, and
// the 7-cycle reset latency is loaded into Cycles.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Status.Unpack(0b0011_0100)
	c.PC = c.Bus.ReadWord(vectorReset)
	c.Cycles = 7
}

// IRQ services a maskable interrupt request: the return address and
// status (with B clear, Unused set) are pushed, InterruptDisable is set,
// and the program counter is loaded from the IRQ/BRK vector. A pending IRQ
// is ignored while InterruptDisable is already set.
func (c *Cpu) IRQ() {
	if c.Status.Get(status.InterruptDisable) {
		return
	}
	c.push16(c.PC)
	c.push8((c.Status.Pack() &^ (1 << status.Break)) | (1 << status.Unused))
	c.Status.Set(status.InterruptDisable, true)
	c.PC = c.Bus.ReadWord(vectorIRQ)
	c.Cycles = 7
}

// NMI services a non-maskable interrupt exactly like IRQ, except it is
// never masked by InterruptDisable and it vectors through 0xFFFA/0xFFFB.
func (c *Cpu) NMI() {
	c.push16(c.PC)
	c.push8((c.Status.Pack() &^ (1 << status.Break)) | (1 << status.Unused))
	c.Status.Set(status.InterruptDisable, true)
	c.PC = c.Bus.ReadWord(vectorNMI)
	c.Cycles = 7
}

// ExecuteInstruction fetches the opcode at PC, resolves its operand
// address under the addressing mode, runs its semantic handler, and
// advances the bus by exactly the instruction's total cycle cost
// (including any page-crossing or branch-taken penalty). It returns that
// cost.
func (c *Cpu) ExecuteInstruction() byte {
	op := c.Bus.Read(c.PC)
	c.PC++

	entry := opcodeTable[op]
	c.mode = entry.Mode
	c.pageCrossed = false
	c.branchExtra = 0

	c.resolve(entry.Mode)
	entry.Run(c)

	cycles := entry.Cycles
	if entry.PageCross && c.pageCrossed {
		cycles++
	}
	cycles += c.branchExtra

	c.Cycles = cycles
	for i := byte(0); i < cycles; i++ {
		c.Bus.Tick()
	}
	return cycles
}

// Step advances the CPU by exactly one emulated cycle. The first cycle of
// an instruction runs the whole instruction via ExecuteInstruction and
// loads the remaining-cycle countdown; subsequent calls just decrement
// that countdown. This lets a driver pace visible state changes at one
// step per cycle without re-deriving bus-cycle-level timing the core
// doesn't model (see the package doc).
func (c *Cpu) Step() {
	if c.Cycles == 0 {
		c.ExecuteInstruction()
	}
	c.Cycles--
}

// resolve computes the effective address and/or operand value for mode,
// advancing PC over any operand bytes and recording whether indexing
// crossed a page boundary.
func (c *Cpu) resolve(mode AddressingMode) {
	switch mode {
	case Implied:
		// nothing to fetch

	case Accumulator:
		c.operand = c.A

	case Immediate:
		c.effAddr = c.PC
		c.operand = c.Bus.Read(c.effAddr)
		c.PC++

	case ZeroPage:
		addr := uint16(c.Bus.Read(c.PC))
		c.PC++
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case ZeroPageX:
		base := c.Bus.Read(c.PC)
		c.PC++
		addr := uint16(base + c.X)
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case ZeroPageY:
		base := c.Bus.Read(c.PC)
		c.PC++
		addr := uint16(base + c.Y)
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case IndirectX:
		base := c.Bus.Read(c.PC)
		c.PC++
		ptr := base + c.X
		lo := c.Bus.Read(uint16(ptr))
		hi := c.Bus.Read(uint16(ptr + 1))
		addr := mask.Word(hi, lo)
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case IndirectY:
		ptr := c.Bus.Read(c.PC)
		c.PC++
		lo := c.Bus.Read(uint16(ptr))
		hi := c.Bus.Read(uint16(ptr + 1))
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		c.pageCrossed = (base & 0xFF00) != (addr & 0xFF00)
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case Relative:
		offset := int8(c.Bus.Read(c.PC))
		c.PC++
		c.effAddr = uint16(int32(c.PC) + int32(offset))

	case Absolute:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		addr := mask.Word(hi, lo)
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case AbsoluteX:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		base := mask.Word(hi, lo)
		addr := base + uint16(c.X)
		c.pageCrossed = (base & 0xFF00) != (addr & 0xFF00)
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case AbsoluteY:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		c.pageCrossed = (base & 0xFF00) != (addr & 0xFF00)
		c.effAddr = addr
		c.operand = c.Bus.Read(addr)

	case Indirect:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		ptr := mask.Word(hi, lo)

		// NMOS hardware bug: the high byte of the target is fetched from
		// (ptr & 0xFF00) | ((ptr + 1) & 0x00FF), not ptr+1, so an
		// indirect pointer on a page boundary (e.g. $xxFF) wraps within
		// the same page instead of crossing into the next one.
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		targetLo := c.Bus.Read(ptr)
		targetHi := c.Bus.Read(hiAddr)
		c.effAddr = mask.Word(targetHi, targetLo)
	}
}

// load returns the current instruction's operand value, reading from the
// accumulator for Accumulator-mode instructions and from the already
// resolved operand otherwise.
func (c *Cpu) load() byte {
	if c.mode == Accumulator {
		return c.A
	}
	return c.operand
}

// store writes v back to wherever the current instruction's operand came
// from: the accumulator, or effAddr in memory.
func (c *Cpu) store(v byte) {
	if c.mode == Accumulator {
		c.A = v
		return
	}
	c.Bus.Write(c.effAddr, v)
}

func (c *Cpu) push8(v byte) {
	c.Bus.Write(stackBase|uint16(c.SP), v)
	c.SP--
}

func (c *Cpu) pull8() byte {
	c.SP++
	return c.Bus.Read(stackBase | uint16(c.SP))
}

func (c *Cpu) push16(v uint16) {
	c.push8(byte(v >> 8))
	c.push8(byte(v))
}

func (c *Cpu) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return mask.Word(hi, lo)
}

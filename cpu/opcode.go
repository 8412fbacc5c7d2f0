package cpu

import "fmt"

// An Opcode describes everything the fetch/decode/execute loop needs to
// know about one opcode byte: its mnemonic (for disassembly/debugging),
// its addressing mode, its total length in bytes, its base cycle cost,
// whether that cost gets a +1 page-crossing penalty, and the semantic
// handler to run.
//
// Multiple opcode bytes may share a handler (e.g. LDA has eight), differing
// only in addressing mode.
type Opcode struct {
	Mnemonic  string
	Mode      AddressingMode
	Bytes     byte
	Cycles    byte
	PageCross bool
	Run       func(*Cpu)
}

// opcodeTable maps every possible opcode byte to its decoded behavior.
// Illegal bytes (105 of the 256) decode to a 2-cycle, 1-byte NOP-alike;
// they are never treated as errors.
var opcodeTable [256]Opcode

func init() {
	illegal := Opcode{Mnemonic: "???", Mode: Implied, Bytes: 1, Cycles: 2, Run: (*Cpu).illegal}
	for i := range opcodeTable {
		opcodeTable[i] = illegal
	}

	set := func(op byte, mnemonic string, mode AddressingMode, bytes, cycles byte, pageCross bool, run func(*Cpu)) {
		opcodeTable[op] = Opcode{Mnemonic: mnemonic, Mode: mode, Bytes: bytes, Cycles: cycles, PageCross: pageCross, Run: run}
	}

	// Load
	set(0xA9, "LDA", Immediate, 2, 2, false, (*Cpu).LDA)
	set(0xA5, "LDA", ZeroPage, 2, 3, false, (*Cpu).LDA)
	set(0xB5, "LDA", ZeroPageX, 2, 4, false, (*Cpu).LDA)
	set(0xAD, "LDA", Absolute, 3, 4, false, (*Cpu).LDA)
	set(0xBD, "LDA", AbsoluteX, 3, 4, true, (*Cpu).LDA)
	set(0xB9, "LDA", AbsoluteY, 3, 4, true, (*Cpu).LDA)
	set(0xA1, "LDA", IndirectX, 2, 6, false, (*Cpu).LDA)
	set(0xB1, "LDA", IndirectY, 2, 5, true, (*Cpu).LDA)

	set(0xA2, "LDX", Immediate, 2, 2, false, (*Cpu).LDX)
	set(0xA6, "LDX", ZeroPage, 2, 3, false, (*Cpu).LDX)
	set(0xB6, "LDX", ZeroPageY, 2, 4, false, (*Cpu).LDX)
	set(0xAE, "LDX", Absolute, 3, 4, false, (*Cpu).LDX)
	set(0xBE, "LDX", AbsoluteY, 3, 4, true, (*Cpu).LDX)

	set(0xA0, "LDY", Immediate, 2, 2, false, (*Cpu).LDY)
	set(0xA4, "LDY", ZeroPage, 2, 3, false, (*Cpu).LDY)
	set(0xB4, "LDY", ZeroPageX, 2, 4, false, (*Cpu).LDY)
	set(0xAC, "LDY", Absolute, 3, 4, false, (*Cpu).LDY)
	set(0xBC, "LDY", AbsoluteX, 3, 4, true, (*Cpu).LDY)

	// Store
	set(0x85, "STA", ZeroPage, 2, 3, false, (*Cpu).STA)
	set(0x95, "STA", ZeroPageX, 2, 4, false, (*Cpu).STA)
	set(0x8D, "STA", Absolute, 3, 4, false, (*Cpu).STA)
	set(0x9D, "STA", AbsoluteX, 3, 5, false, (*Cpu).STA)
	set(0x99, "STA", AbsoluteY, 3, 5, false, (*Cpu).STA)
	set(0x81, "STA", IndirectX, 2, 6, false, (*Cpu).STA)
	set(0x91, "STA", IndirectY, 2, 6, false, (*Cpu).STA)

	set(0x86, "STX", ZeroPage, 2, 3, false, (*Cpu).STX)
	set(0x96, "STX", ZeroPageY, 2, 4, false, (*Cpu).STX)
	set(0x8E, "STX", Absolute, 3, 4, false, (*Cpu).STX)

	set(0x84, "STY", ZeroPage, 2, 3, false, (*Cpu).STY)
	set(0x94, "STY", ZeroPageX, 2, 4, false, (*Cpu).STY)
	set(0x8C, "STY", Absolute, 3, 4, false, (*Cpu).STY)

	// Transfer
	set(0xAA, "TAX", Implied, 1, 2, false, (*Cpu).TAX)
	set(0xA8, "TAY", Implied, 1, 2, false, (*Cpu).TAY)
	set(0x8A, "TXA", Implied, 1, 2, false, (*Cpu).TXA)
	set(0x98, "TYA", Implied, 1, 2, false, (*Cpu).TYA)
	set(0xBA, "TSX", Implied, 1, 2, false, (*Cpu).TSX)
	set(0x9A, "TXS", Implied, 1, 2, false, (*Cpu).TXS)

	// Stack
	set(0x48, "PHA", Implied, 1, 3, false, (*Cpu).PHA)
	set(0x68, "PLA", Implied, 1, 4, false, (*Cpu).PLA)
	set(0x08, "PHP", Implied, 1, 3, false, (*Cpu).PHP)
	set(0x28, "PLP", Implied, 1, 4, false, (*Cpu).PLP)

	// Arithmetic
	set(0x69, "ADC", Immediate, 2, 2, false, (*Cpu).ADC)
	set(0x65, "ADC", ZeroPage, 2, 3, false, (*Cpu).ADC)
	set(0x75, "ADC", ZeroPageX, 2, 4, false, (*Cpu).ADC)
	set(0x6D, "ADC", Absolute, 3, 4, false, (*Cpu).ADC)
	set(0x7D, "ADC", AbsoluteX, 3, 4, true, (*Cpu).ADC)
	set(0x79, "ADC", AbsoluteY, 3, 4, true, (*Cpu).ADC)
	set(0x61, "ADC", IndirectX, 2, 6, false, (*Cpu).ADC)
	set(0x71, "ADC", IndirectY, 2, 5, true, (*Cpu).ADC)

	set(0xE9, "SBC", Immediate, 2, 2, false, (*Cpu).SBC)
	set(0xE5, "SBC", ZeroPage, 2, 3, false, (*Cpu).SBC)
	set(0xF5, "SBC", ZeroPageX, 2, 4, false, (*Cpu).SBC)
	set(0xED, "SBC", Absolute, 3, 4, false, (*Cpu).SBC)
	set(0xFD, "SBC", AbsoluteX, 3, 4, true, (*Cpu).SBC)
	set(0xF9, "SBC", AbsoluteY, 3, 4, true, (*Cpu).SBC)
	set(0xE1, "SBC", IndirectX, 2, 6, false, (*Cpu).SBC)
	set(0xF1, "SBC", IndirectY, 2, 5, true, (*Cpu).SBC)

	set(0xC9, "CMP", Immediate, 2, 2, false, (*Cpu).CMP)
	set(0xC5, "CMP", ZeroPage, 2, 3, false, (*Cpu).CMP)
	set(0xD5, "CMP", ZeroPageX, 2, 4, false, (*Cpu).CMP)
	set(0xCD, "CMP", Absolute, 3, 4, false, (*Cpu).CMP)
	set(0xDD, "CMP", AbsoluteX, 3, 4, true, (*Cpu).CMP)
	set(0xD9, "CMP", AbsoluteY, 3, 4, true, (*Cpu).CMP)
	set(0xC1, "CMP", IndirectX, 2, 6, false, (*Cpu).CMP)
	set(0xD1, "CMP", IndirectY, 2, 5, true, (*Cpu).CMP)

	set(0xE0, "CPX", Immediate, 2, 2, false, (*Cpu).CPX)
	set(0xE4, "CPX", ZeroPage, 2, 3, false, (*Cpu).CPX)
	set(0xEC, "CPX", Absolute, 3, 4, false, (*Cpu).CPX)

	set(0xC0, "CPY", Immediate, 2, 2, false, (*Cpu).CPY)
	set(0xC4, "CPY", ZeroPage, 2, 3, false, (*Cpu).CPY)
	set(0xCC, "CPY", Absolute, 3, 4, false, (*Cpu).CPY)

	// Logic
	set(0x29, "AND", Immediate, 2, 2, false, (*Cpu).AND)
	set(0x25, "AND", ZeroPage, 2, 3, false, (*Cpu).AND)
	set(0x35, "AND", ZeroPageX, 2, 4, false, (*Cpu).AND)
	set(0x2D, "AND", Absolute, 3, 4, false, (*Cpu).AND)
	set(0x3D, "AND", AbsoluteX, 3, 4, true, (*Cpu).AND)
	set(0x39, "AND", AbsoluteY, 3, 4, true, (*Cpu).AND)
	set(0x21, "AND", IndirectX, 2, 6, false, (*Cpu).AND)
	set(0x31, "AND", IndirectY, 2, 5, true, (*Cpu).AND)

	set(0x09, "ORA", Immediate, 2, 2, false, (*Cpu).ORA)
	set(0x05, "ORA", ZeroPage, 2, 3, false, (*Cpu).ORA)
	set(0x15, "ORA", ZeroPageX, 2, 4, false, (*Cpu).ORA)
	set(0x0D, "ORA", Absolute, 3, 4, false, (*Cpu).ORA)
	set(0x1D, "ORA", AbsoluteX, 3, 4, true, (*Cpu).ORA)
	set(0x19, "ORA", AbsoluteY, 3, 4, true, (*Cpu).ORA)
	set(0x01, "ORA", IndirectX, 2, 6, false, (*Cpu).ORA)
	set(0x11, "ORA", IndirectY, 2, 5, true, (*Cpu).ORA)

	set(0x49, "EOR", Immediate, 2, 2, false, (*Cpu).EOR)
	set(0x45, "EOR", ZeroPage, 2, 3, false, (*Cpu).EOR)
	set(0x55, "EOR", ZeroPageX, 2, 4, false, (*Cpu).EOR)
	set(0x4D, "EOR", Absolute, 3, 4, false, (*Cpu).EOR)
	set(0x5D, "EOR", AbsoluteX, 3, 4, true, (*Cpu).EOR)
	set(0x59, "EOR", AbsoluteY, 3, 4, true, (*Cpu).EOR)
	set(0x41, "EOR", IndirectX, 2, 6, false, (*Cpu).EOR)
	set(0x51, "EOR", IndirectY, 2, 5, true, (*Cpu).EOR)

	set(0x24, "BIT", ZeroPage, 2, 3, false, (*Cpu).BIT)
	set(0x2C, "BIT", Absolute, 3, 4, false, (*Cpu).BIT)

	// Shift/rotate
	set(0x0A, "ASL", Accumulator, 1, 2, false, (*Cpu).ASL)
	set(0x06, "ASL", ZeroPage, 2, 5, false, (*Cpu).ASL)
	set(0x16, "ASL", ZeroPageX, 2, 6, false, (*Cpu).ASL)
	set(0x0E, "ASL", Absolute, 3, 6, false, (*Cpu).ASL)
	set(0x1E, "ASL", AbsoluteX, 3, 7, false, (*Cpu).ASL)

	set(0x4A, "LSR", Accumulator, 1, 2, false, (*Cpu).LSR)
	set(0x46, "LSR", ZeroPage, 2, 5, false, (*Cpu).LSR)
	set(0x56, "LSR", ZeroPageX, 2, 6, false, (*Cpu).LSR)
	set(0x4E, "LSR", Absolute, 3, 6, false, (*Cpu).LSR)
	set(0x5E, "LSR", AbsoluteX, 3, 7, false, (*Cpu).LSR)

	set(0x2A, "ROL", Accumulator, 1, 2, false, (*Cpu).ROL)
	set(0x26, "ROL", ZeroPage, 2, 5, false, (*Cpu).ROL)
	set(0x36, "ROL", ZeroPageX, 2, 6, false, (*Cpu).ROL)
	set(0x2E, "ROL", Absolute, 3, 6, false, (*Cpu).ROL)
	set(0x3E, "ROL", AbsoluteX, 3, 7, false, (*Cpu).ROL)

	set(0x6A, "ROR", Accumulator, 1, 2, false, (*Cpu).ROR)
	set(0x66, "ROR", ZeroPage, 2, 5, false, (*Cpu).ROR)
	set(0x76, "ROR", ZeroPageX, 2, 6, false, (*Cpu).ROR)
	set(0x6E, "ROR", Absolute, 3, 6, false, (*Cpu).ROR)
	set(0x7E, "ROR", AbsoluteX, 3, 7, false, (*Cpu).ROR)

	// Increment/decrement
	set(0xE6, "INC", ZeroPage, 2, 5, false, (*Cpu).INC)
	set(0xF6, "INC", ZeroPageX, 2, 6, false, (*Cpu).INC)
	set(0xEE, "INC", Absolute, 3, 6, false, (*Cpu).INC)
	set(0xFE, "INC", AbsoluteX, 3, 7, false, (*Cpu).INC)

	set(0xC6, "DEC", ZeroPage, 2, 5, false, (*Cpu).DEC)
	set(0xD6, "DEC", ZeroPageX, 2, 6, false, (*Cpu).DEC)
	set(0xCE, "DEC", Absolute, 3, 6, false, (*Cpu).DEC)
	set(0xDE, "DEC", AbsoluteX, 3, 7, false, (*Cpu).DEC)

	set(0xE8, "INX", Implied, 1, 2, false, (*Cpu).INX)
	set(0xCA, "DEX", Implied, 1, 2, false, (*Cpu).DEX)
	set(0xC8, "INY", Implied, 1, 2, false, (*Cpu).INY)
	set(0x88, "DEY", Implied, 1, 2, false, (*Cpu).DEY)

	// Flow control
	set(0x4C, "JMP", Absolute, 3, 3, false, (*Cpu).JMP)
	set(0x6C, "JMP", Indirect, 3, 5, false, (*Cpu).JMP)
	set(0x20, "JSR", Absolute, 3, 6, false, (*Cpu).JSR)
	set(0x60, "RTS", Implied, 1, 6, false, (*Cpu).RTS)
	set(0x00, "BRK", Implied, 1, 7, false, (*Cpu).BRK)
	set(0x40, "RTI", Implied, 1, 6, false, (*Cpu).RTI)

	set(0x90, "BCC", Relative, 2, 2, true, (*Cpu).BCC)
	set(0xB0, "BCS", Relative, 2, 2, true, (*Cpu).BCS)
	set(0xF0, "BEQ", Relative, 2, 2, true, (*Cpu).BEQ)
	set(0xD0, "BNE", Relative, 2, 2, true, (*Cpu).BNE)
	set(0x30, "BMI", Relative, 2, 2, true, (*Cpu).BMI)
	set(0x10, "BPL", Relative, 2, 2, true, (*Cpu).BPL)
	set(0x50, "BVC", Relative, 2, 2, true, (*Cpu).BVC)
	set(0x70, "BVS", Relative, 2, 2, true, (*Cpu).BVS)

	// Flags
	set(0x18, "CLC", Implied, 1, 2, false, (*Cpu).CLC)
	set(0x38, "SEC", Implied, 1, 2, false, (*Cpu).SEC)
	set(0x58, "CLI", Implied, 1, 2, false, (*Cpu).CLI)
	set(0x78, "SEI", Implied, 1, 2, false, (*Cpu).SEI)
	set(0xD8, "CLD", Implied, 1, 2, false, (*Cpu).CLD)
	set(0xF8, "SED", Implied, 1, 2, false, (*Cpu).SED)
	set(0xB8, "CLV", Implied, 1, 2, false, (*Cpu).CLV)

	set(0xEA, "NOP", Implied, 1, 2, false, (*Cpu).NOP)
}

// Disassemble renders the instruction at addr as "$addr: MNEM operand",
// without mutating CPU state. It drives the debugger's "next instruction"
// pane and is a convenient standalone tool for inspecting a ROM image.
func (c *Cpu) Disassemble(addr uint16) string {
	op := c.Bus.Read(addr)
	entry := opcodeTable[op]

	var operand string
	switch entry.Bytes {
	case 2:
		operand = fmt.Sprintf(" $%02X", c.Bus.Read(addr+1))
	case 3:
		operand = fmt.Sprintf(" $%02X%02X", c.Bus.Read(addr+2), c.Bus.Read(addr+1))
	}

	return fmt.Sprintf("$%04X: %s%s", addr, entry.Mnemonic, operand)
}

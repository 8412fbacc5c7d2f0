package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mos6502/mem"
)

func TestOpcodeTableHas256Entries(t *testing.T) {
	assert.Len(t, opcodeTable, 256)
}

func TestOpcodeTableHas151LegalEntries(t *testing.T) {
	legal := 0
	for _, op := range opcodeTable {
		if op.Mnemonic != "???" {
			legal++
		}
	}
	assert.Equal(t, 151, legal)
}

func TestIllegalOpcodeIsNopAlike(t *testing.T) {
	// 0xFF has no legal 6502 meaning.
	op := opcodeTable[0xFF]
	assert.Equal(t, "???", op.Mnemonic)
	assert.Equal(t, byte(1), op.Bytes)
	assert.Equal(t, byte(2), op.Cycles)
}

func TestDisassemble(t *testing.T) {
	bus := mem.NewFlatBus()
	bus.Write(0x0200, 0xA9) // LDA #$42
	bus.Write(0x0201, 0x42)

	c := New(bus)
	assert.Equal(t, "$0200: LDA $42", c.Disassemble(0x0200))
}

func TestDisassembleThreeByteForm(t *testing.T) {
	bus := mem.NewFlatBus()
	bus.Write(0x0300, 0x4C) // JMP $1234
	bus.Write(0x0301, 0x34)
	bus.Write(0x0302, 0x12)

	c := New(bus)
	assert.Equal(t, "$0300: JMP $1234", c.Disassemble(0x0300))
}

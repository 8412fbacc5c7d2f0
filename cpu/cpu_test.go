package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mos6502/mem"
	"mos6502/status"
)

func newTestCpu() (*Cpu, *mem.FlatBus) {
	bus := mem.NewFlatBus()
	return New(bus), bus
}

func TestResetLoadsVectorAndPowerOnState(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0xFFFC, 0x00)
	bus.Write(0xFFFD, 0x80)

	c.Reset()

	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0x34), c.Status.Pack())
	assert.Equal(t, byte(7), c.Cycles)
}

func TestLDAImmediate(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0xA9)
	bus.Write(0x0201, 0x00) // zero, to exercise the Zero flag
	c.PC = 0x0200

	c.ExecuteInstruction()

	assert.Equal(t, byte(0), c.A)
	assert.True(t, c.Status.Get(status.Zero))
	assert.False(t, c.Status.Get(status.Negative))
}

func TestLDAImmediateSetsNegative(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0xA9)
	bus.Write(0x0201, 0x80)
	c.PC = 0x0200

	c.ExecuteInstruction()

	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Status.Get(status.Negative))
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newTestCpu()
	// Pointer sits at the end of a page: $30FF/$3100.
	bus.Write(0x0200, 0x6C) // JMP (indirect)
	bus.Write(0x0201, 0xFF)
	bus.Write(0x0202, 0x30)

	bus.Write(0x30FF, 0x80) // low byte of target
	bus.Write(0x3100, 0x50) // correct (but unused) high byte
	bus.Write(0x3000, 0x12) // buggy wraparound high byte, read from $3000 not $3100

	c.PC = 0x0200
	c.ExecuteInstruction()

	assert.Equal(t, uint16(0x1280), c.PC)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0x20) // JSR $0300
	bus.Write(0x0201, 0x00)
	bus.Write(0x0202, 0x03)
	bus.Write(0x0300, 0x60) // RTS

	c.PC = 0x0200
	c.SP = 0xFF

	c.ExecuteInstruction() // JSR
	assert.Equal(t, uint16(0x0300), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)

	c.ExecuteInstruction() // RTS
	assert.Equal(t, uint16(0x0203), c.PC)
	assert.Equal(t, byte(0xFF), c.SP)
}

func TestADCOverflowBoundary(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0x69) // ADC #$50
	bus.Write(0x0201, 0x50)
	c.PC = 0x0200
	c.A = 0x50 // 0x50 + 0x50 = 0xA0: signed overflow (positive + positive = negative)

	c.ExecuteInstruction()

	assert.Equal(t, byte(0xA0), c.A)
	assert.True(t, c.Status.Get(status.Overflow))
	assert.True(t, c.Status.Get(status.Negative))
	assert.False(t, c.Status.Get(status.Carry))
}

func TestSBCBorrow(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0xE9) // SBC #$01
	bus.Write(0x0201, 0x01)
	c.PC = 0x0200
	c.A = 0x00
	c.Status.Set(status.Carry, true) // no borrow pending

	c.ExecuteInstruction()

	assert.Equal(t, byte(0xFF), c.A)
	assert.False(t, c.Status.Get(status.Carry)) // borrow occurred
	assert.True(t, c.Status.Get(status.Negative))
}

func TestBranchTakenSamePageCosts1ExtraCycle(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0xF0) // BEQ +2
	bus.Write(0x0201, 0x02)
	c.PC = 0x0200
	c.Status.Set(status.Zero, true)

	cycles := c.ExecuteInstruction()

	assert.Equal(t, uint16(0x0204), c.PC)
	assert.Equal(t, byte(3), cycles) // base 2 + 1 taken
}

func TestBranchTakenAcrossPageCosts2ExtraCycles(t *testing.T) {
	c, bus := newTestCpu()
	c.PC = 0x02F0
	bus.Write(0x02F0, 0xF0) // BEQ +32, crosses from page 2 to page 3
	bus.Write(0x02F1, 0x20)
	c.Status.Set(status.Zero, true)

	cycles := c.ExecuteInstruction()

	assert.Equal(t, uint16(0x0312), c.PC)
	assert.Equal(t, byte(4), cycles) // base 2 + 1 taken + 1 page cross
}

func TestBranchNotTakenCostsBaseCyclesOnly(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0xF0) // BEQ +2
	bus.Write(0x0201, 0x02)
	c.PC = 0x0200
	c.Status.Set(status.Zero, false)

	cycles := c.ExecuteInstruction()

	assert.Equal(t, uint16(0x0202), c.PC)
	assert.Equal(t, byte(2), cycles)
}

func TestPHPAlwaysSetsBreakAndUnused(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0x08) // PHP
	c.PC = 0x0200
	c.SP = 0xFF
	c.Status.Unpack(0x00) // B and Unused explicitly clear beforehand

	c.ExecuteInstruction()

	pushed := bus.Read(0x01FF)
	assert.NotZero(t, pushed&(1<<status.Break))
	assert.NotZero(t, pushed&(1<<status.Unused))
}

func TestPLPPreservesBreakAcrossThePull(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0x28) // PLP
	c.PC = 0x0200
	c.SP = 0xFE
	bus.Write(0x01FF, 0x00) // pulled byte has B clear and Unused clear
	c.Status.Set(status.Break, true)
	c.Status.Set(status.Carry, true) // unrelated flag, should not survive the pull

	c.ExecuteInstruction()

	assert.True(t, c.Status.Get(status.Break), "PLP must retain the processor's current B, not the pulled one")
	assert.True(t, c.Status.Get(status.Unused))
	assert.False(t, c.Status.Get(status.Carry))
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0x0200, 0xBD) // LDA $12FF,X
	bus.Write(0x0201, 0xFF)
	bus.Write(0x0202, 0x12)
	bus.Write(0x1300, 0x99)
	c.PC = 0x0200
	c.X = 0x01

	cycles := c.ExecuteInstruction()

	assert.Equal(t, byte(0x99), c.A)
	assert.Equal(t, byte(5), cycles) // base 4 + 1 page cross
}

func TestBRKAndRTI(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0xFFFE, 0x00)
	bus.Write(0xFFFF, 0x90)
	bus.Write(0x9000, 0x40) // RTI

	bus.Write(0x0200, 0x00) // BRK
	c.PC = 0x0200
	c.SP = 0xFF
	c.Status.Set(status.Carry, true)

	c.ExecuteInstruction() // BRK
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.Status.Get(status.InterruptDisable))

	c.ExecuteInstruction() // RTI
	assert.Equal(t, uint16(0x0202), c.PC) // BRK pushed PC+1 (skips the signature byte)
	assert.True(t, c.Status.Get(status.Carry))
}

func TestIRQIgnoredWhenInterruptsDisabled(t *testing.T) {
	c, _ := newTestCpu()
	c.Status.Set(status.InterruptDisable, true)
	c.PC = 0x1234

	c.IRQ()

	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestNMIAlwaysFires(t *testing.T) {
	c, bus := newTestCpu()
	bus.Write(0xFFFA, 0x00)
	bus.Write(0xFFFB, 0x40)
	c.Status.Set(status.InterruptDisable, true)
	c.PC = 0x1234
	c.SP = 0xFF

	c.NMI()

	assert.Equal(t, uint16(0x4000), c.PC)
}

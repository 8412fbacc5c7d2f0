package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	b := NewFlatBus()

	b.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), b.Read(0x1234))

	b.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0000))

	b.Write(0xFFFF, 0xFF)
	assert.Equal(t, byte(0xFF), b.Read(0xFFFF))
}

func TestReadWord(t *testing.T) {
	b := NewFlatBus()
	b.Write(0x1000, 0x34)
	b.Write(0x1001, 0x12)

	assert.Equal(t, uint16(0x1234), b.ReadWord(0x1000))
}

func TestReadWordWraps(t *testing.T) {
	b := NewFlatBus()
	b.Write(0xFFFF, 0x34)
	b.Write(0x0000, 0x12)

	assert.Equal(t, uint16(0x1234), b.ReadWord(0xFFFF))
}

func TestLoad(t *testing.T) {
	b := NewFlatBus()
	b.Load(0x8000, []byte{0x01, 0x02, 0x03, 0x04})

	assert.Equal(t, byte(0x01), b.Read(0x8000))
	assert.Equal(t, byte(0x04), b.Read(0x8003))
}

func TestBusSatisfiesInterface(t *testing.T) {
	var _ Bus = NewFlatBus()
}

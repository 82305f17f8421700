// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	MEMORY_SIZE = 0x10000 // Size of the address space, in bytes.
)

// Memory is the flat 64 KiB address space.
// All address arithmetic wraps modulo 65536.
type Memory struct {
	data [MEMORY_SIZE]byte
}

// GetByte reads the byte at addr.
func (m *Memory) GetByte(addr uint16) byte {
	return m.data[addr]
}

// SetByte writes the byte at addr.
func (m *Memory) SetByte(addr uint16, value byte) {
	m.data[addr] = value
}

// GetWord reads a little-endian word: the low byte at addr, the high byte at
// addr+1. Odd addresses are legal, and 0xffff wraps to 0x0000 for the high
// byte.
func (m *Memory) GetWord(addr uint16) uint16 {
	return uint16(m.data[addr]) | (uint16(m.data[addr+1]) << 8)
}

// SetWord writes the low byte of value at addr, then the high byte at addr+1.
func (m *Memory) SetWord(addr uint16, value uint16) {
	m.data[addr] = byte(value)
	m.data[addr+1] = byte(value >> 8)
}

// Load copies data into memory starting at addr, wrapping at the top of the
// address space.
func (m *Memory) Load(addr uint16, data []byte) {
	for n, value := range data {
		m.data[addr+uint16(n)] = value
	}
}

// LoadWords stores words as consecutive little-endian words starting at addr.
func (m *Memory) LoadWords(addr uint16, words []uint16) {
	for n, word := range words {
		m.SetWord(addr+uint16(2*n), word)
	}
}

// Reset clears all of memory.
func (m *Memory) Reset() {
	clear(m.data[:])
}

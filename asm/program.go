// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"

	"github.com/ezrec/msp430/cpu"
)

// Opcode is one line of assembled code: its source location and the words
// it generated.
type Opcode struct {
	LineNo    int      // Source line.
	Address   uint16   // Address of the first generated word.
	Words     []string // Source words.
	Codes     []uint16 // Generated words.
	LinkLabel string   // Jump label resolved at link time.
}

// Program is an assembled memory image.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode covering an address.
type Debug struct {
	*Opcode
	Index int // Word index within the opcode.
}

// Debug returns the opcode whose words cover addr. The Opcode is nil if no
// assembled word lives there.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		offset := addr - op.Address
		if offset%2 != 0 || int(offset/2) >= len(op.Codes) {
			continue
		}
		dbg = Debug{
			Opcode: &prog.Opcodes[n],
			Index:  int(offset / 2),
		}
		break
	}

	return
}

// LineNo returns the source line of the word at addr, or 0.
func (prog *Program) LineNo(addr uint16) int {
	dbg := prog.Debug(addr)
	if dbg.Opcode == nil {
		return 0
	}
	return dbg.LineNo
}

// Entry returns the address of the first assembled word.
func (prog *Program) Entry() uint16 {
	if len(prog.Opcodes) == 0 {
		return 0
	}
	return prog.Opcodes[0].Address
}

// Codes iterates over every assembled word and its address.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	return func(yield func(addr uint16, code uint16) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Address+uint16(2*n), code) {
					return
				}
			}
		}
	}
}

// Load writes the program into memory.
func (prog *Program) Load(mem *cpu.Memory) {
	for addr, code := range prog.Codes() {
		mem.SetWord(addr, code)
	}
}

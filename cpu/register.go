// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Register is an index into the register file.
type Register uint8

// Register aliases.
const (
	REG_PC  = Register(0) // Program counter.
	REG_SP  = Register(1) // Stack pointer.
	REG_SR  = Register(2) // Status register, constant generator #1.
	REG_CG  = Register(3) // Constant generator #2.
	REG_R4  = Register(4)
	REG_R5  = Register(5)
	REG_R6  = Register(6)
	REG_R7  = Register(7)
	REG_R8  = Register(8)
	REG_R9  = Register(9)
	REG_R10 = Register(10)
	REG_R11 = Register(11)
	REG_R12 = Register(12)
	REG_R13 = Register(13)
	REG_R14 = Register(14)
	REG_R15 = Register(15)

	REG_COUNT = 16 // Size of the register file.
)

var registerName = [REG_COUNT]string{
	"pc", "sp", "sr", "cg",
	"r4", "r5", "r6", "r7", "r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

// Valid returns true if the register is inside the register file.
func (reg Register) Valid() bool {
	return reg < REG_COUNT
}

// String returns the assembler name of the register.
func (reg Register) String() string {
	if !reg.Valid() {
		return fmt.Sprintf("r?%d", uint8(reg))
	}
	return registerName[reg]
}

// StatusFlag is a bit mask over the status register.
type StatusFlag uint16

// Status register bits.
const (
	FLAG_CARRY    = StatusFlag(1 << 0) // Carry out of the last result.
	FLAG_ZERO     = StatusFlag(1 << 1) // Last result was zero.
	FLAG_NEGATIVE = StatusFlag(1 << 2) // Last result had its sign bit set.
	FLAG_GIE      = StatusFlag(1 << 3) // General interrupt enable.
	FLAG_CPUOFF   = StatusFlag(1 << 4) // CPU off; halts the dispatch loop.
	FLAG_OSCOFF   = StatusFlag(1 << 5) // LFXT1 oscillator off.
	FLAG_SCG0     = StatusFlag(1 << 6) // System clock generator 0 (DCO) off.
	FLAG_SCG1     = StatusFlag(1 << 7) // System clock generator 1 (SMCLK) off.
	FLAG_OVERFLOW = StatusFlag(1 << 8) // Signed overflow of the last result.
)

var flagName = []struct {
	flag StatusFlag
	name string
}{
	{FLAG_CARRY, "C"},
	{FLAG_ZERO, "Z"},
	{FLAG_NEGATIVE, "N"},
	{FLAG_GIE, "GIE"},
	{FLAG_CPUOFF, "CPUOFF"},
	{FLAG_OSCOFF, "OSCOFF"},
	{FLAG_SCG0, "SCG0"},
	{FLAG_SCG1, "SCG1"},
	{FLAG_OVERFLOW, "V"},
}

// String returns the names of the set bits, joined by '|'.
func (sf StatusFlag) String() (text string) {
	for _, entry := range flagName {
		if sf&entry.flag == 0 {
			continue
		}
		if len(text) != 0 {
			text += "|"
		}
		text += entry.name
	}

	if len(text) == 0 {
		text = "-"
	}

	return
}

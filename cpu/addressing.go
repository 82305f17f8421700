// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// ModeKind selects the active variant of an AddressingMode.
type ModeKind uint8

//go:generate go tool stringer -linecomment -type=ModeKind
const (
	MODE_UNKNOWN                         = ModeKind(0)  // ?
	MODE_REGISTER_DIRECT                 = ModeKind(1)  // Rn
	MODE_REGISTER_INDEXED                = ModeKind(2)  // x(Rn)
	MODE_REGISTER_INDIRECT               = ModeKind(3)  // @Rn
	MODE_REGISTER_INDIRECT_AUTOINCREMENT = ModeKind(4)  // @Rn+
	MODE_IMMEDIATE                       = ModeKind(5)  // #N
	MODE_ABSOLUTE                        = ModeKind(6)  // &ADDR
	MODE_CONSTANT_0                      = ModeKind(7)  // #0
	MODE_CONSTANT_1                      = ModeKind(8)  // #1
	MODE_CONSTANT_2                      = ModeKind(9)  // #2
	MODE_CONSTANT_4                      = ModeKind(10) // #4
	MODE_CONSTANT_8                      = ModeKind(11) // #8
	MODE_CONSTANT_N1                     = ModeKind(12) // #-1
)

// AddressingMode is a resolved operand location.
//
// Only the fields meaningful to Kind are set:
//   - Register: register-direct, indexed, indirect and autoincrement.
//   - Value: indexed displacement, immediate word or absolute address.
//
// The constant kinds carry no payload. The zero value is MODE_UNKNOWN.
type AddressingMode struct {
	Kind     ModeKind
	Register Register
	Value    uint16
}

// RegisterDirect addresses the register itself.
func RegisterDirect(reg Register) AddressingMode {
	return AddressingMode{Kind: MODE_REGISTER_DIRECT, Register: reg}
}

// RegisterIndexed addresses memory at reg + displacement.
func RegisterIndexed(reg Register, displacement uint16) AddressingMode {
	return AddressingMode{Kind: MODE_REGISTER_INDEXED, Register: reg, Value: displacement}
}

// RegisterIndirect addresses memory at the register's value.
func RegisterIndirect(reg Register) AddressingMode {
	return AddressingMode{Kind: MODE_REGISTER_INDIRECT, Register: reg}
}

// RegisterIndirectAutoincrement addresses memory at the register's value;
// the executing instruction applies the increment.
func RegisterIndirectAutoincrement(reg Register) AddressingMode {
	return AddressingMode{Kind: MODE_REGISTER_INDIRECT_AUTOINCREMENT, Register: reg}
}

// Immediate is an operand carried in an extension word.
func Immediate(value uint16) AddressingMode {
	return AddressingMode{Kind: MODE_IMMEDIATE, Value: value}
}

// Absolute addresses memory at a fixed address.
func Absolute(addr uint16) AddressingMode {
	return AddressingMode{Kind: MODE_ABSOLUTE, Value: addr}
}

// Constant returns a synthesized-constant mode. kind must be one of the
// MODE_CONSTANT_* kinds.
func Constant(kind ModeKind) AddressingMode {
	if !kind.IsConstant() {
		return AddressingMode{}
	}
	return AddressingMode{Kind: kind}
}

// IsConstant is true for the synthesized-constant kinds.
func (kind ModeKind) IsConstant() bool {
	return kind >= MODE_CONSTANT_0 && kind <= MODE_CONSTANT_N1
}

var constantValue = map[ModeKind]uint16{
	MODE_CONSTANT_0:  0,
	MODE_CONSTANT_1:  1,
	MODE_CONSTANT_2:  2,
	MODE_CONSTANT_4:  4,
	MODE_CONSTANT_8:  8,
	MODE_CONSTANT_N1: 0xffff,
}

// Displacement returns the indexed displacement as a signed value.
func (am AddressingMode) Displacement() int16 {
	return int16(am.Value)
}

// IsExtension returns true if resolving the mode consumed an extension word.
//
// Indexed and absolute modes always do. Autoincrement does only through the
// program counter, where it aliases immediate addressing; Immediate is the
// resolved form of that alias and so consumes one as well.
func (am AddressingMode) IsExtension() bool {
	switch am.Kind {
	case MODE_REGISTER_INDEXED, MODE_ABSOLUTE, MODE_IMMEDIATE:
		return true
	case MODE_REGISTER_INDIRECT_AUTOINCREMENT:
		return am.Register == REG_PC
	default:
		return false
	}
}

// String returns the assembler syntax of the mode.
func (am AddressingMode) String() string {
	switch am.Kind {
	case MODE_REGISTER_DIRECT:
		return am.Register.String()
	case MODE_REGISTER_INDEXED:
		return fmt.Sprintf("%d(%v)", am.Displacement(), am.Register)
	case MODE_REGISTER_INDIRECT:
		return fmt.Sprintf("@%v", am.Register)
	case MODE_REGISTER_INDIRECT_AUTOINCREMENT:
		return fmt.Sprintf("@%v+", am.Register)
	case MODE_IMMEDIATE:
		return fmt.Sprintf("#0x%04x", am.Value)
	case MODE_ABSOLUTE:
		return fmt.Sprintf("&0x%04x", am.Value)
	default:
		return am.Kind.String()
	}
}

// ResolveSource decodes a source operand field.
//
// Any extension word is read at the current program counter, which must
// already point just past the opcode word. Neither the CPU nor memory is
// modified.
func ResolveSource(cpu *Cpu, reg Register, mode uint8) AddressingMode {
	pc := cpu.Pc()

	switch reg {
	case REG_SR:
		switch mode {
		case 0:
			// Reads through r0, not SR.
			return RegisterDirect(REG_PC)
		case 1:
			return Absolute(cpu.memory.GetWord(pc))
		case 2:
			return Constant(MODE_CONSTANT_4)
		case 3:
			return Constant(MODE_CONSTANT_8)
		}
	case REG_CG:
		switch mode {
		case 0:
			return Constant(MODE_CONSTANT_0)
		case 1:
			return Constant(MODE_CONSTANT_1)
		case 2:
			return Constant(MODE_CONSTANT_2)
		case 3:
			return Constant(MODE_CONSTANT_N1)
		}
	default:
		if !reg.Valid() {
			break
		}
		switch mode {
		case 0:
			return RegisterDirect(reg)
		case 1:
			return RegisterIndexed(reg, cpu.memory.GetWord(pc))
		case 2:
			return RegisterIndirect(reg)
		case 3:
			if reg == REG_PC {
				return Immediate(cpu.memory.GetWord(pc))
			}
			return RegisterIndirectAutoincrement(reg)
		}
	}

	return AddressingMode{}
}

// ResolveDestination decodes a destination operand field.
//
// The extension word is always read at pc+2, behind the slot a source
// extension word would occupy. Instructions therefore carry at most one
// source and one destination extension word, in that order.
func ResolveDestination(cpu *Cpu, reg Register, mode uint8) AddressingMode {
	pc := cpu.Pc()

	if reg == REG_SR && mode == 1 {
		return Absolute(cpu.memory.GetWord(pc + 2))
	}

	if !reg.Valid() {
		return AddressingMode{}
	}

	switch mode {
	case 0:
		return RegisterDirect(reg)
	case 1:
		return RegisterIndexed(reg, cpu.memory.GetWord(pc+2))
	}

	return AddressingMode{}
}

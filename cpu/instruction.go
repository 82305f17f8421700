// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Instruction is a raw opcode word and the address it was fetched from.
type Instruction struct {
	Address uint16 // Fetch location.
	Value   uint16 // Raw opcode word.
}

// Family returns the instruction family selected by the top three opcode bits.
func (insn Instruction) Family() Family {
	switch insn.Value >> 13 {
	case 0:
		return FAMILY_SINGLE
	case 1:
		return FAMILY_JUMP
	default:
		return FAMILY_DOUBLE
	}
}

func (insn Instruction) String() string {
	return fmt.Sprintf("%04x: %04x", insn.Address, insn.Value)
}

// Family is an instruction family.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_SINGLE  = Family(0) // single
	FAMILY_JUMP    = Family(1) // jump
	FAMILY_DOUBLE  = Family(2) // double
	FAMILY_UNKNOWN = Family(3) // unknown
)

// InstructionType is the opcode mnemonic. The numeric value is the
// architectural opcode field, and its range selects the family.
type InstructionType uint8

//go:generate go tool stringer -linecomment -type=InstructionType
const (
	INSN_RRC  = InstructionType(0x00) // RRC
	INSN_SWPB = InstructionType(0x01) // SWPB
	INSN_RRA  = InstructionType(0x02) // RRA
	INSN_SXT  = InstructionType(0x03) // SXT
	INSN_PUSH = InstructionType(0x04) // PUSH
	INSN_CALL = InstructionType(0x05) // CALL
	INSN_RETI = InstructionType(0x06) // RETI

	INSN_JNZ = InstructionType(0x10) // JNZ
	INSN_JZ  = InstructionType(0x11) // JZ
	INSN_JNC = InstructionType(0x12) // JNC
	INSN_JC  = InstructionType(0x13) // JC
	INSN_JN  = InstructionType(0x14) // JN
	INSN_JGE = InstructionType(0x15) // JGE
	INSN_JL  = InstructionType(0x16) // JL
	INSN_JMP = InstructionType(0x17) // JMP

	INSN_MOV  = InstructionType(0x20) // MOV
	INSN_ADD  = InstructionType(0x21) // ADD
	INSN_ADDC = InstructionType(0x22) // ADDC
	INSN_SUBC = InstructionType(0x23) // SUBC
	INSN_SUB  = InstructionType(0x24) // SUB
	INSN_CMP  = InstructionType(0x25) // CMP
	INSN_DADD = InstructionType(0x26) // DADD
	INSN_BIT  = InstructionType(0x27) // BIT
	INSN_BIC  = InstructionType(0x28) // BIC
	INSN_BIS  = InstructionType(0x29) // BIS
	INSN_XOR  = InstructionType(0x2a) // XOR
	INSN_AND  = InstructionType(0x2b) // AND

	INSN_UNKNOWN = InstructionType(0x30) // Unknown
)

// InstructionTypeOf maps a numeric opcode field to its InstructionType.
// Values that name no mnemonic map to INSN_UNKNOWN.
func InstructionTypeOf(field uint16) InstructionType {
	switch {
	case field <= uint16(INSN_RETI):
	case field >= uint16(INSN_JNZ) && field <= uint16(INSN_JMP):
	case field >= uint16(INSN_MOV) && field <= uint16(INSN_AND):
	default:
		return INSN_UNKNOWN
	}

	return InstructionType(field)
}

// Family returns the family the type belongs to.
func (it InstructionType) Family() Family {
	switch {
	case it <= 0x0f:
		return FAMILY_SINGLE
	case it <= 0x17:
		return FAMILY_JUMP
	case it >= INSN_MOV && it < INSN_UNKNOWN:
		return FAMILY_DOUBLE
	default:
		return FAMILY_UNKNOWN
	}
}

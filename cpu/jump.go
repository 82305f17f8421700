// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// JumpCondition is the 3-bit condition field of a jump opcode.
type JumpCondition uint8

const (
	JUMP_NZ      = JumpCondition(0) // Zero clear.
	JUMP_Z       = JumpCondition(1) // Zero set.
	JUMP_NC      = JumpCondition(2) // Carry clear.
	JUMP_C       = JumpCondition(3) // Carry set.
	JUMP_N       = JumpCondition(4) // Negative clear (see Taken).
	JUMP_GE      = JumpCondition(5) // Negative == Overflow.
	JUMP_L       = JumpCondition(6) // Negative != Overflow.
	JUMP_MP      = JumpCondition(7) // Always.
	JUMP_UNKNOWN = JumpCondition(8)
)

// jumpConditionOf extracts the condition from bits 10-12 of a jump opcode.
func jumpConditionOf(value uint16) JumpCondition {
	cond := JumpCondition((value >> 10) & 0x7)
	if cond > JUMP_MP {
		return JUMP_UNKNOWN
	}
	return cond
}

// InstructionType returns the mnemonic for the condition.
func (cond JumpCondition) InstructionType() InstructionType {
	if cond > JUMP_MP {
		return INSN_UNKNOWN
	}
	return INSN_JNZ + InstructionType(cond)
}

func (cond JumpCondition) String() string {
	return cond.InstructionType().String()
}

// jumpOffsetOf sign-extends the 10-bit word displacement in bits 0-9.
func jumpOffsetOf(value uint16) int16 {
	offset := int16(value & 0x3ff)
	if offset&0x200 != 0 {
		offset -= 0x400
	}
	return offset
}

// Jump is a decoded conditional or unconditional relative jump.
type Jump struct {
	insn      Instruction
	condition JumpCondition
	offset    int16
}

var _ Executable = (*Jump)(nil)

// DecodeJump decodes an instruction of the jump family.
func DecodeJump(insn Instruction) ParseState {
	jump := &Jump{
		insn:      insn,
		condition: jumpConditionOf(insn.Value),
		offset:    jumpOffsetOf(insn.Value),
	}

	// The condition field is three bits wide and every value names a
	// condition, so this only rejects conditions added past JUMP_MP.
	if jump.condition == JUMP_UNKNOWN {
		return parseError(insn, ErrJumpCondition)
	}

	return parseDone(jump)
}

func (jump *Jump) executable() {}

// Condition returns the jump condition.
func (jump *Jump) Condition() JumpCondition {
	return jump.condition
}

// Offset returns the signed displacement, in words.
func (jump *Jump) Offset() int16 {
	return jump.offset
}

// Target returns the destination of a taken jump.
func (jump *Jump) Target() uint16 {
	return jump.insn.Address + 2 + uint16(jump.offset*2)
}

// ExtensionsAmount is always zero for jumps.
func (jump *Jump) ExtensionsAmount() uint16 {
	return 0
}

// InstructionType returns the jump mnemonic.
func (jump *Jump) InstructionType() InstructionType {
	return jump.condition.InstructionType()
}

// Instruction returns the raw jump instruction.
func (jump *Jump) Instruction() Instruction {
	return jump.insn
}

// Taken evaluates the jump condition against the status flags.
//
// JN jumps when Negative is clear, which is the inverse of the
// architectural JN.
func (jump *Jump) Taken(cpu *Cpu) bool {
	switch jump.condition {
	case JUMP_NZ:
		return !cpu.IsFlagSet(FLAG_ZERO)
	case JUMP_Z:
		return cpu.IsFlagSet(FLAG_ZERO)
	case JUMP_NC:
		return !cpu.IsFlagSet(FLAG_CARRY)
	case JUMP_C:
		return cpu.IsFlagSet(FLAG_CARRY)
	case JUMP_N:
		return !cpu.IsFlagSet(FLAG_NEGATIVE)
	case JUMP_GE:
		return cpu.IsFlagSet(FLAG_NEGATIVE) == cpu.IsFlagSet(FLAG_OVERFLOW)
	case JUMP_L:
		return cpu.IsFlagSet(FLAG_NEGATIVE) != cpu.IsFlagSet(FLAG_OVERFLOW)
	case JUMP_MP:
		return true
	default:
		return false
	}
}

// Execute moves the program counter by the word offset if the jump is
// taken; otherwise execution falls through. A JUMP_UNKNOWN condition is
// never taken.
func (jump *Jump) Execute(cpu *Cpu) (result ExecutionResult, err error) {
	if jump.Taken(cpu) {
		cpu.SetPc(cpu.Pc() + uint16(jump.offset*2))
	}

	result = RESULT_DONE
	return
}

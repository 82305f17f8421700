// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
)

// Executable is a decoded instruction, ready to run.
//
// The set of implementations is closed to this package; each instruction
// family contributes one. Execute is called after the dispatch loop has moved
// the program counter past the opcode and its extension words.
type Executable interface {
	// ExtensionsAmount is the number of extension words the decoder consumed.
	ExtensionsAmount() uint16
	// InstructionType is the mnemonic of the instruction.
	InstructionType() InstructionType
	// Instruction is the raw instruction the executable was decoded from.
	Instruction() Instruction
	// Execute applies the instruction to the CPU.
	Execute(cpu *Cpu) (result ExecutionResult, err error)

	executable()
}

// ParseState is the outcome of decoding one instruction: either an
// Executable, or the raw instruction and the reason it could not be decoded.
type ParseState struct {
	insn Instruction
	exec Executable
	err  error
}

func parseDone(exec Executable) ParseState {
	return ParseState{insn: exec.Instruction(), exec: exec}
}

func parseError(insn Instruction, reason error) ParseState {
	return ParseState{insn: insn, err: errors.Join(ErrParse(insn), reason)}
}

// Done is true if decoding produced an Executable.
func (ps ParseState) Done() bool {
	return ps.exec != nil
}

// Instruction returns the raw instruction that was decoded.
func (ps ParseState) Instruction() Instruction {
	return ps.insn
}

// Executable returns the decoded instruction, or the parse error.
func (ps ParseState) Executable() (exec Executable, err error) {
	if ps.exec == nil {
		err = ps.err
		if err == nil {
			err = ErrParse(ps.insn)
		}
		return
	}

	exec = ps.exec
	return
}

// familyDecoder decodes one instruction family.
type familyDecoder func(cpu *Cpu, insn Instruction) ParseState

// familyDecoders maps each instruction family to its decoder. The
// single-operand and double-operand families have no decoder yet, and
// decode as ErrFamilyUnimplemented.
var familyDecoders = map[Family]familyDecoder{
	FAMILY_JUMP: func(_ *Cpu, insn Instruction) ParseState { return DecodeJump(insn) },
}

// Decode classifies insn by family and hands it to the family decoder.
//
// The program counter must already point just past the opcode word, since the
// operand resolvers read extension words relative to it.
func Decode(cpu *Cpu, insn Instruction) ParseState {
	if cpu.Pc() != insn.Address+2 {
		return parseError(insn, ErrExtensionCursor)
	}

	decoder, ok := familyDecoders[insn.Family()]
	if !ok {
		return parseError(insn, ErrFamilyUnimplemented)
	}

	return decoder(cpu, insn)
}

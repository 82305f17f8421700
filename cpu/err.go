// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/msp430/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrFamilyUnimplemented = errors.New(f("instruction family not implemented"))
	ErrJumpCondition       = errors.New(f("jump condition unknown"))
	ErrExtensionCursor     = errors.New(f("extension cursor not past opcode"))

	// Execution errors
	ErrExecution = errors.New(f("execution fault"))
)

// ErrParse reports an opcode word that could not be decoded.
type ErrParse Instruction

func (ep ErrParse) Error() string {
	return f("bad opcode 0x%04x at 0x%04x", ep.Value, ep.Address)
}

// Is matches any ErrParse, regardless of the instruction it carries.
func (ep ErrParse) Is(err error) (ok bool) {
	_, ok = err.(ErrParse)
	return
}

// Instruction returns the raw instruction that failed to decode.
func (ep ErrParse) Instruction() Instruction {
	return Instruction(ep)
}

// ErrRegister is raised (as a panic) when a register index outside of the
// register file is used. Decoders mask register fields to four bits, so this
// indicates a decoder bug.
type ErrRegister Register

func (er ErrRegister) Error() string {
	return f("register index %d out of range", uint8(er))
}

// Package cpu implements the instruction-set simulator core for an MSP430-class
// 16-bit microcontroller.
//
// The CPU owns sixteen 16-bit registers (r0 is the program counter, r1 the
// stack pointer, r2 the status register, r3 the constant generator) and a flat
// 64 KiB byte-addressable memory. Each Tick fetches the opcode word at the
// program counter, classifies it into the single-operand, jump or
// double-operand family, skips the extension words the family decoder
// consumed, and executes the decoded instruction.
//
// Operand decoding is split between the addressing-mode resolvers
// (ResolveSource, ResolveDestination), which turn register and mode bits into
// an AddressingMode, and the operand accessors (ReadOperand, WriteOperand),
// which read or write the location an AddressingMode refers to.
package cpu

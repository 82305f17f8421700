// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/sirupsen/logrus"
)

// ExecutionResult is the outcome of a single Tick, or of a Run.
type ExecutionResult uint8

//go:generate go tool stringer -linecomment -type=ExecutionResult
const (
	RESULT_DONE            = ExecutionResult(0) // done
	RESULT_CPU_OFF         = ExecutionResult(1) // cpuoff
	RESULT_PARSE_ERROR     = ExecutionResult(2) // parse error
	RESULT_EXECUTION_ERROR = ExecutionResult(3) // execution error
)

var _cpu_defines = map[string]string{}

func init() {
	for reg, name := range registerName {
		_cpu_defines[name] = fmt.Sprintf("%d", reg)
	}
	for _, entry := range flagName {
		_cpu_defines["FLAG_"+entry.name] = fmt.Sprintf("0x%x", uint16(entry.flag))
	}
}

// Cpu is the simulation context for the microcontroller core.
//
// The Cpu exclusively owns its registers and memory; all mutation goes
// through its methods. It is not safe for concurrent use.
type Cpu struct {
	Verbose bool               // Set to enable verbose logging.
	Logger  logrus.FieldLogger // Destination of verbose logging.

	Ticks int // Instructions executed.

	register [REG_COUNT]uint16
	memory   *Memory
}

// NewCpu creates a CPU over a pre-populated memory image, with all registers
// zeroed. The caller must set the program counter before running.
func NewCpu(memory *Memory) (cpu *Cpu) {
	if memory == nil {
		memory = &Memory{}
	}

	cpu = &Cpu{
		Logger: logrus.StandardLogger(),
		memory: memory,
	}

	return
}

// Defines for the cpu: register aliases and status flag masks.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Memory returns the memory owned by the CPU, for loaders and inspection.
func (cpu *Cpu) Memory() *Memory {
	return cpu.memory
}

// Reset zeroes all registers and statistics. Memory is left untouched.
func (cpu *Cpu) Reset() {
	clear(cpu.register[:])
	cpu.Ticks = 0
}

// GetRegister reads a register. An index outside of the register file
// panics with ErrRegister.
func (cpu *Cpu) GetRegister(reg Register) uint16 {
	if !reg.Valid() {
		panic(ErrRegister(reg))
	}
	return cpu.register[reg]
}

// SetRegister writes a register. An index outside of the register file
// panics with ErrRegister.
func (cpu *Cpu) SetRegister(reg Register, value uint16) {
	if !reg.Valid() {
		panic(ErrRegister(reg))
	}
	cpu.register[reg] = value
}

func (cpu *Cpu) Pc() uint16         { return cpu.GetRegister(REG_PC) }
func (cpu *Cpu) SetPc(value uint16) { cpu.SetRegister(REG_PC, value) }
func (cpu *Cpu) Sp() uint16         { return cpu.GetRegister(REG_SP) }
func (cpu *Cpu) SetSp(value uint16) { cpu.SetRegister(REG_SP, value) }
func (cpu *Cpu) Sr() uint16         { return cpu.GetRegister(REG_SR) }
func (cpu *Cpu) SetSr(value uint16) { cpu.SetRegister(REG_SR, value) }

// IsFlagSet is true if any bit of flag is set in the status register.
func (cpu *Cpu) IsFlagSet(flag StatusFlag) bool {
	return (cpu.Sr() & uint16(flag)) != 0
}

// SetFlag sets or clears the bits of flag in the status register.
func (cpu *Cpu) SetFlag(flag StatusFlag, value bool) {
	if value {
		cpu.SetSr(cpu.Sr() | uint16(flag))
	} else {
		cpu.SetSr(cpu.Sr() &^ uint16(flag))
	}
}

// ToggleFlag inverts the bits of flag that fall within the low byte of the
// status register. Bits 8 and above, including Overflow, are never toggled
// and are preserved. Masking the whole result to the low byte would clear
// them instead; do not reintroduce that.
func (cpu *Cpu) ToggleFlag(flag StatusFlag) {
	sr := cpu.Sr()
	cpu.SetSr((sr & 0xff00) | ((sr ^ uint16(flag)) & 0x00ff))
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for reg := range Register(REG_COUNT) {
		text += fmt.Sprintf("% 5s: %04X", reg.String(), cpu.register[reg])
		if reg%4 == 3 {
			text += "\n"
		}
	}
	text += fmt.Sprintf("flags: %v\n", StatusFlag(cpu.Sr()))

	return
}

func (cpu *Cpu) log() logrus.FieldLogger {
	if cpu.Logger == nil {
		return logrus.StandardLogger()
	}
	return cpu.Logger
}

// Fetch reads the opcode word at the program counter.
func (cpu *Cpu) Fetch() Instruction {
	pc := cpu.Pc()
	return Instruction{Address: pc, Value: cpu.memory.GetWord(pc)}
}

// Tick executes a single instruction cycle.
//
// A set CPUOFF bit halts the cycle before the fetch with RESULT_CPU_OFF.
// Otherwise the opcode is fetched, the program counter advanced past it and
// the instruction decoded. On a parse failure the program counter is restored
// to the opcode address and the ErrParse is returned with RESULT_PARSE_ERROR.
// Decoded instructions have their extension words skipped and are executed.
func (cpu *Cpu) Tick() (result ExecutionResult, err error) {
	if cpu.IsFlagSet(FLAG_CPUOFF) {
		result = RESULT_CPU_OFF
		return
	}

	insn := cpu.Fetch()
	cpu.SetPc(insn.Address + 2)

	exec, err := Decode(cpu, insn).Executable()
	if err != nil {
		cpu.SetPc(insn.Address)
		if cpu.Verbose {
			cpu.log().WithFields(logrus.Fields{
				"pc":     fmt.Sprintf("%04x", insn.Address),
				"opcode": fmt.Sprintf("%04x", insn.Value),
			}).WithError(err).Error("decode")
		}
		result = RESULT_PARSE_ERROR
		return
	}

	if cpu.Verbose {
		cpu.log().WithFields(logrus.Fields{
			"pc":     fmt.Sprintf("%04x", insn.Address),
			"opcode": fmt.Sprintf("%04x", insn.Value),
			"type":   exec.InstructionType().String(),
		}).Info("execute")
	}

	cpu.SetPc(cpu.Pc() + 2*exec.ExtensionsAmount())

	result, err = exec.Execute(cpu)
	if result == RESULT_EXECUTION_ERROR && err == nil {
		err = ErrExecution
	}
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Run ticks until the CPU halts or an error occurs. A clean halt returns
// RESULT_CPU_OFF with a nil error.
func (cpu *Cpu) Run() (result ExecutionResult, err error) {
	for {
		result, err = cpu.Tick()
		if err != nil || result != RESULT_DONE {
			return
		}
	}
}

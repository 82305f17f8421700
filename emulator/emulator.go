// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the cpu: it loads assembled programs, resets the
// core, steps it under a tick budget and attributes faults to source lines.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"

	"github.com/ezrec/msp430/asm"
	"github.com/ezrec/msp430/cpu"
	"github.com/ezrec/msp430/internal"
)

const (
	RESET_VECTOR = 0xfffe // Word holding the reset program counter.
)

var _emulator_defines = map[string]string{
	"RESET_VECTOR": fmt.Sprintf("0x%x", RESET_VECTOR),
}

// Emulator state. CPU + memory + the program it was loaded with.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Reference to the currently loaded program listing.
	MaxTicks int          // Tick budget for Run; 0 is unlimited.

	logger logrus.FieldLogger
}

// Option configures an Emulator.
type Option func(emu *Emulator)

// WithVerbose enables verbose logging of every cycle.
func WithVerbose(verbose bool) Option {
	return func(emu *Emulator) {
		emu.Verbose = verbose
	}
}

// WithLogger sets the destination of verbose logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(emu *Emulator) {
		emu.logger = logger
	}
}

// WithMaxTicks sets the tick budget for Run.
func WithMaxTicks(ticks int) Option {
	return func(emu *Emulator) {
		emu.MaxTicks = ticks
	}
}

// WithProgram sets the program loaded on Reset.
func WithProgram(prog *asm.Program) Option {
	return func(emu *Emulator) {
		emu.Program = prog
	}
}

// NewEmulator creates a new emulator.
func NewEmulator(opts ...Option) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(&cpu.Memory{}),
		Program: &asm.Program{},
		logger:  logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(emu)
	}

	emu.Cpu.Logger = emu.logger

	return
}

// Defines returns an iterator over all of the defines, suitable for
// Assembler.Predefine.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Assembler returns an assembler with the emulator defines predefined.
func (emu *Emulator) Assembler() (assembler *asm.Assembler) {
	assembler = &asm.Assembler{Verbose: emu.Verbose, Logger: emu.logger}
	for equ, value := range emu.Defines() {
		assembler.Predefine(equ, value)
	}

	return
}

// load clears memory and the registers, then loads the program.
func (emu *Emulator) load() {
	mem := emu.Cpu.Memory()
	mem.Reset()
	emu.Cpu.Reset()

	if emu.Program != nil {
		emu.Program.Load(mem)
	}
}

// start sets the program counter after a load.
func (emu *Emulator) start(pc uint16) (err error) {
	if pc%2 != 0 {
		err = ErrResetAlign
		return
	}

	emu.Cpu.SetPc(pc)

	if emu.Verbose {
		emu.logger.WithField("pc", fmt.Sprintf("%04x", pc)).Info("emulator: reset")
	}

	return
}

// Reset reloads the program and starts execution at pc, which must be word
// aligned.
func (emu *Emulator) Reset(pc uint16) (err error) {
	emu.load()
	return emu.start(pc)
}

// ResetFromVector reloads the program and starts execution at the address
// held in the reset vector.
func (emu *Emulator) ResetFromVector() (err error) {
	emu.load()
	return emu.start(emu.Cpu.Memory().GetWord(RESET_VECTOR))
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line of the instruction at the program counter.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}
	return emu.Program.LineNo(emu.Cpu.Pc())
}

// Tick performs a single tick of the emulator. done is set once the CPU has
// halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: pc, LineNo: lineno, Err: err}
		}
	}()

	result, err := emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = result == cpu.RESULT_CPU_OFF
	return
}

// Run ticks until the CPU halts, faults or exhausts the tick budget.
func (emu *Emulator) Run() (err error) {
	for ticks := 0; emu.MaxTicks == 0 || ticks < emu.MaxTicks; ticks++ {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	err = &ErrRuntime{Address: emu.Cpu.Pc(), LineNo: emu.LineNo(), Err: ErrTickBudget}
	return
}

// snapshot is the state shown by Dump.
type snapshot struct {
	Pc        string
	Sp        string
	Flags     string
	Registers map[string]string
	Ticks     int
	LineNo    int
}

// Dump pretty-prints the CPU state to w.
func (emu *Emulator) Dump(w io.Writer) (err error) {
	snap := snapshot{
		Pc:        fmt.Sprintf("%04x", emu.Cpu.Pc()),
		Sp:        fmt.Sprintf("%04x", emu.Cpu.Sp()),
		Flags:     cpu.StatusFlag(emu.Cpu.Sr()).String(),
		Registers: make(map[string]string, cpu.REG_COUNT),
		Ticks:     emu.Cpu.Ticks,
		LineNo:    emu.LineNo(),
	}
	for reg := range cpu.Register(cpu.REG_COUNT) {
		snap.Registers[reg.String()] = fmt.Sprintf("%04x", emu.Cpu.GetRegister(reg))
	}

	printer := pp.New()
	printer.SetColoringEnabled(false)
	_, err = printer.Fprintln(w, snap)

	return
}

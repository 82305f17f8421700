// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// operandAddress returns the memory address a mode refers to, if it
// refers to memory at all.
func (cpu *Cpu) operandAddress(am AddressingMode) (addr uint16, ok bool) {
	switch am.Kind {
	case MODE_REGISTER_INDEXED:
		addr = cpu.GetRegister(am.Register) + am.Value
	case MODE_REGISTER_INDIRECT, MODE_REGISTER_INDIRECT_AUTOINCREMENT:
		addr = cpu.GetRegister(am.Register)
	case MODE_ABSOLUTE:
		addr = am.Value
	default:
		return
	}

	ok = true
	return
}

// ReadOperand reads the word an addressing mode refers to.
//
// Autoincrement reads at the register's current value; the increment is the
// executing instruction's business. MODE_UNKNOWN reads as zero.
func (cpu *Cpu) ReadOperand(am AddressingMode) (value uint16) {
	if addr, ok := cpu.operandAddress(am); ok {
		return cpu.memory.GetWord(addr)
	}

	switch am.Kind {
	case MODE_REGISTER_DIRECT:
		value = cpu.GetRegister(am.Register)
	case MODE_IMMEDIATE:
		value = am.Value
	default:
		value = constantValue[am.Kind]
	}

	return
}

// WriteOperand writes the word an addressing mode refers to.
//
// Writes never fail. An immediate destination writes through to the memory
// cell at the program counter. Constants and MODE_UNKNOWN discard the write.
func (cpu *Cpu) WriteOperand(am AddressingMode, value uint16) {
	if addr, ok := cpu.operandAddress(am); ok {
		cpu.memory.SetWord(addr, value)
		return
	}

	switch am.Kind {
	case MODE_REGISTER_DIRECT:
		cpu.SetRegister(am.Register, value)
	case MODE_IMMEDIATE:
		cpu.memory.SetWord(cpu.Pc(), value)
	}
}

package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzResolve(f *testing.F) {
	for reg := range uint8(REG_COUNT) {
		for mode := range uint8(4) {
			f.Add(reg, mode, uint16(0xbeef), uint16(0xcafe))
		}
	}

	f.Fuzz(func(t *testing.T, reg uint8, mode uint8, src_ext uint16, dst_ext uint16) {
		assert := assert.New(t)

		cpu := NewCpu(nil)
		cpu.Memory().LoadWords(0x1000, []uint16{0x4000, src_ext, dst_ext})
		cpu.SetPc(0x1002)

		r := Register(reg & 0xf)
		desc := fmt.Sprintf("%v mode %d src 0x%04x dst 0x%04x", r, mode&3, src_ext, dst_ext)

		src := ResolveSource(cpu, r, mode&3)
		assert.NotEqual(MODE_UNKNOWN, src.Kind, desc)
		switch src.Kind {
		case MODE_REGISTER_INDEXED, MODE_IMMEDIATE, MODE_ABSOLUTE:
			assert.Equal(src_ext, src.Value, desc)
			assert.True(src.IsExtension(), desc)
		}

		dst := ResolveDestination(cpu, r, mode&1)
		assert.NotEqual(MODE_UNKNOWN, dst.Kind, desc)
		if dst.IsExtension() {
			assert.Equal(dst_ext, dst.Value, desc)
		}

		assert.Equal(uint16(0x1002), cpu.Pc(), desc)
	})
}

func FuzzTick(f *testing.F) {
	f.Add(uint16(0x3c00), uint16(0))
	f.Add(uint16(0x2404), uint16(FLAG_ZERO))
	f.Add(uint16(0x3e00), uint16(FLAG_NEGATIVE|FLAG_OVERFLOW))
	f.Add(uint16(0x0000), uint16(0))
	f.Add(uint16(0x4000), uint16(FLAG_CARRY))
	f.Add(uint16(0x3c00), uint16(FLAG_CPUOFF))

	f.Fuzz(func(t *testing.T, opcode uint16, sr uint16) {
		assert := assert.New(t)

		cpu := NewCpu(nil)
		cpu.Memory().SetWord(0x1000, opcode)
		cpu.SetPc(0x1000)
		cpu.SetSr(sr)

		insn := Instruction{Address: 0x1000, Value: opcode}
		desc := fmt.Sprintf("%v sr %v", insn, StatusFlag(sr))

		result, err := cpu.Tick()
		assert.Equal(sr, cpu.Sr(), desc)

		switch {
		case (sr & uint16(FLAG_CPUOFF)) != 0:
			assert.NoError(err, desc)
			assert.Equal(RESULT_CPU_OFF, result, desc)
			assert.Equal(uint16(0x1000), cpu.Pc(), desc)
		case insn.Family() == FAMILY_JUMP:
			assert.NoError(err, desc)
			assert.Equal(RESULT_DONE, result, desc)
			jump := &Jump{insn: insn, condition: jumpConditionOf(opcode), offset: jumpOffsetOf(opcode)}
			if jump.Taken(cpu) {
				assert.Equal(jump.Target(), cpu.Pc(), desc)
			} else {
				assert.Equal(uint16(0x1002), cpu.Pc(), desc)
			}
		default:
			assert.Equal(RESULT_PARSE_ERROR, result, desc)
			assert.True(errors.Is(err, ErrParse{}), desc)
			assert.Equal(uint16(0x1000), cpu.Pc(), desc)
		}
	})
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Family(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  uint16
		family Family
	}){
		{0x0000, FAMILY_SINGLE},
		{0x1000, FAMILY_SINGLE},
		{0x1fff, FAMILY_SINGLE},
		{0x2000, FAMILY_JUMP},
		{0x3c00, FAMILY_JUMP},
		{0x3fff, FAMILY_JUMP},
		{0x4000, FAMILY_DOUBLE},
		{0x8000, FAMILY_DOUBLE},
		{0xffff, FAMILY_DOUBLE},
	}

	for _, entry := range table {
		insn := Instruction{Address: 0x1000, Value: entry.value}
		assert.Equal(entry.family, insn.Family(), insn.String())
	}

	assert.Equal("1000: 3c00", Instruction{Address: 0x1000, Value: 0x3c00}.String())
	assert.Equal("jump", FAMILY_JUMP.String())
}

func TestInstructionTypeOf(t *testing.T) {
	assert := assert.New(t)

	for field := range uint16(0x100) {
		it := InstructionTypeOf(field)
		if it == INSN_UNKNOWN {
			continue
		}
		assert.Equal(field, uint16(it))
	}

	table := [](struct {
		field  uint16
		it     InstructionType
		family Family
		text   string
	}){
		{0x00, INSN_RRC, FAMILY_SINGLE, "RRC"},
		{0x06, INSN_RETI, FAMILY_SINGLE, "RETI"},
		{0x07, INSN_UNKNOWN, FAMILY_UNKNOWN, "Unknown"},
		{0x0f, INSN_UNKNOWN, FAMILY_UNKNOWN, "Unknown"},
		{0x10, INSN_JNZ, FAMILY_JUMP, "JNZ"},
		{0x17, INSN_JMP, FAMILY_JUMP, "JMP"},
		{0x18, INSN_UNKNOWN, FAMILY_UNKNOWN, "Unknown"},
		{0x20, INSN_MOV, FAMILY_DOUBLE, "MOV"},
		{0x2b, INSN_AND, FAMILY_DOUBLE, "AND"},
		{0x2c, INSN_UNKNOWN, FAMILY_UNKNOWN, "Unknown"},
		{0x30, INSN_UNKNOWN, FAMILY_UNKNOWN, "Unknown"},
		{0xffff, INSN_UNKNOWN, FAMILY_UNKNOWN, "Unknown"},
	}

	for _, entry := range table {
		it := InstructionTypeOf(entry.field)
		assert.Equal(entry.it, it, entry.text)
		assert.Equal(entry.family, it.Family(), entry.text)
		assert.Equal(entry.text, it.String())
	}
}

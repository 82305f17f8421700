package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("pc", REG_PC.String())
	assert.Equal("sp", REG_SP.String())
	assert.Equal("sr", REG_SR.String())
	assert.Equal("cg", REG_CG.String())
	assert.Equal("r4", REG_R4.String())
	assert.Equal("r15", REG_R15.String())
	assert.Equal("r?16", Register(16).String())

	assert.True(REG_R15.Valid())
	assert.False(Register(REG_COUNT).Valid())
}

func TestStatusFlag_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		flag StatusFlag
		text string
	}){
		{0, "-"},
		{FLAG_CARRY, "C"},
		{FLAG_CARRY | FLAG_ZERO, "C|Z"},
		{FLAG_NEGATIVE | FLAG_OVERFLOW, "N|V"},
		{FLAG_CPUOFF | FLAG_GIE, "GIE|CPUOFF"},
		{FLAG_OSCOFF | FLAG_SCG0 | FLAG_SCG1, "OSCOFF|SCG0|SCG1"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.flag.String())
	}
}

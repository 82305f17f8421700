package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func parse(assembler *Assembler, program []string) (*Program, error) {
	return assembler.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestAssembler_Parse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		codes   map[uint16]uint16
	}){
		{"jmp_next", []string{
			".org 0x1000",
			"start: jmp next",
			"next: jz start ; back again",
		}, map[uint16]uint16{0x1000: 0x3c00, 0x1002: 0x27fe}},
		{"aliases", []string{
			".org 0x0200",
			"jne $(here+2)",
			"jeq $(here+2)",
			"jlo $(here+2)",
			"jhs $(here+2)",
			"jn $(here+2)",
			"jge $(here+2)",
			"jl $(here+2)",
			"JMP $(here+2)",
		}, map[uint16]uint16{
			0x0200: 0x2000, 0x0202: 0x2400, 0x0204: 0x2800, 0x0206: 0x2c00,
			0x0208: 0x3000, 0x020a: 0x3400, 0x020c: 0x3800, 0x020e: 0x3c00,
		}},
		{"numeric_target", []string{
			".org 0x1000",
			"jmp 0x1000",
			"jz 0x100a",
		}, map[uint16]uint16{0x1000: 0x3fff, 0x1002: 0x2403}},
		{"words", []string{
			".org 0x1000",
			".word 0x1234, 0xffff",
			".word -1 ~0 'A' '\\n'",
		}, map[uint16]uint16{
			0x1000: 0x1234, 0x1002: 0xffff,
			0x1004: 0xffff, 0x1006: 0xffff, 0x1008: 65, 0x100a: 10,
		}},
		{"equates", []string{
			".equ BASE 0x1000",
			".equ SIZE $(4 * 2)",
			".org BASE",
			"top: .word SIZE",
			".word $(BASE + SIZE) $(top)",
			"jmp $(top + SIZE)",
		}, map[uint16]uint16{0x1000: 8, 0x1002: 0x1008, 0x1004: 0x1000, 0x1006: 0x3c00}},
		{"range", []string{
			".org 0x1000",
			"far: jmp near",
			".org 0x13fe",
			"near: jmp far",
		}, map[uint16]uint16{0x1000: 0x3dfe, 0x13fe: 0x3e00}},
	}

	for _, entry := range table {
		assembler := &Assembler{}
		prog, err := parse(assembler, entry.program)
		if !assert.NoError(err, entry.name) {
			continue
		}

		codes := map[uint16]uint16{}
		for addr, code := range prog.Codes() {
			codes[addr] = code
		}
		assert.Equal(entry.codes, codes, entry.name)
	}
}

func TestAssembler_Predefine(t *testing.T) {
	assert := assert.New(t)

	assembler := &Assembler{}
	assembler.Predefine("RESET", "0xfffe")
	assembler.Predefine("START", "0x1000")

	prog, err := parse(assembler, []string{
		".org RESET",
		".word START",
	})
	assert.NoError(err)
	assert.Equal(uint16(0xfffe), prog.Entry())
	assert.Equal(uint16(0x1000), prog.Opcodes[0].Codes[0])

	// Predefines survive across parses; .equ definitions do not.
	prog, err = parse(assembler, []string{
		".equ LOCAL 3",
		".org START",
		".word LOCAL",
	})
	assert.NoError(err)
	assert.Equal(uint16(0x1000), prog.Entry())

	_, err = parse(assembler, []string{".word LOCAL"})
	var pn ErrParseNumber
	assert.True(errors.As(err, &pn))
	assert.Equal(ErrParseNumber("LOCAL"), pn)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"opcode_invalid", []string{"mov r4, r5"}, 1, ErrOpcodeInvalid},
		{"opcode_missing", []string{"", "jmp"}, 2, ErrOpcodeMissing},
		{"opcode_extra", []string{"jmp a b"}, 1, ErrOpcodeExtraArgs},
		{"label_dup", []string{"a:", "a: jmp a"}, 2, ErrLabelDuplicate},
		{"label_missing", []string{"a: jmp a", "jmp nowhere"}, 2, ErrLabelMissing("nowhere")},
		{"equ_syntax", []string{".equ X"}, 1, ErrEquateSyntax},
		{"equ_dup", []string{".equ X 1", ".equ X 2"}, 2, ErrEquateDuplicate},
		{"org_syntax", []string{".org"}, 1, ErrOrgSyntax},
		{"word_missing", []string{".word"}, 1, ErrWordMissing},
		{"jump_range", []string{"jmp 0x2000"}, 1, ErrJumpRange},
		{"jump_range_back", []string{".org 0x1000", "jmp 0x0800"}, 2, ErrJumpRange},
		{"jump_align", []string{"jmp 0x0003"}, 1, ErrJumpAlign},
		{"expression", []string{".word $(1 +)"}, 1, nil},
	}

	for _, entry := range table {
		assembler := &Assembler{}
		_, err := parse(assembler, entry.program)
		if !assert.Error(err, entry.name) {
			continue
		}

		var es *ErrSyntax
		if assert.True(errors.As(err, &es), entry.name) {
			assert.Equal(entry.lineno, es.LineNo, entry.name)
		}
		if entry.err != nil {
			assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)
		}
	}
}

func TestAssembler_Debug(t *testing.T) {
	assert := assert.New(t)

	assembler := &Assembler{}
	_, err := parse(assembler, []string{
		".org 0x1000",
		"loop: jmp loop",
	})
	assert.NoError(err)

	assert.Equal([]string{"jmp", "loop"}, assembler.Debug(2))
	assert.Nil(assembler.Debug(1))
	assert.Equal(uint16(0x1000), assembler.Label["loop"])
}

func TestAssembler_Verbose(t *testing.T) {
	assert := assert.New(t)

	logger, hook := test.NewNullLogger()
	assembler := &Assembler{Verbose: true, Logger: logger}
	_, err := parse(assembler, []string{
		".org 0x1000",
		"loop: jmp loop ; spin",
	})
	assert.NoError(err)

	entries := hook.AllEntries()
	if assert.Len(entries, 2) {
		assert.Equal(logrus.InfoLevel, entries[1].Level)
		assert.Equal("loop: jmp loop ; spin", entries[1].Message)
		assert.Equal(2, entries[1].Data["line"])
	}
}

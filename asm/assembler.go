// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm is a small assembler for building memory images: the jump
// family, raw words, labels, equates and $(...) compile-time expressions.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/msp430/cpu"
)

// jumpMap maps jump mnemonics, including the common aliases, to conditions.
var jumpMap = map[string]cpu.JumpCondition{
	"jnz": cpu.JUMP_NZ,
	"jne": cpu.JUMP_NZ,
	"jz":  cpu.JUMP_Z,
	"jeq": cpu.JUMP_Z,
	"jnc": cpu.JUMP_NC,
	"jlo": cpu.JUMP_NC,
	"jc":  cpu.JUMP_C,
	"jhs": cpu.JUMP_C,
	"jn":  cpu.JUMP_N,
	"jge": cpu.JUMP_GE,
	"jl":  cpu.JUMP_L,
	"jmp": cpu.JUMP_MP,
}

// Assembler is a single pass assembler; jump labels are linked after the
// last line.
type Assembler struct {
	Verbose bool               // If set, verbosely logs the assembler actions.
	Logger  logrus.FieldLogger // Destination of verbose logging.
	Opcode  []Opcode           // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	org uint16 // Address of the next generated word.
}

// Predefine defines a new equate or redefines an existing one for every
// subsequent Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) log() logrus.FieldLogger {
	if asm.Logger == nil {
		return logrus.StandardLogger()
	}
	return asm.Logger
}

// valueOf returns the 16-bit value of a simple word. Negative values are
// encoded in two's complement.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	invert := false
	if strings.HasPrefix(word, "~") {
		invert = true
		word = word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil || v64 > 0xffff || v64 < -0x8000 {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)
	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations over the equates and the
// labels defined so far.
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		equ, equ_err := asm.valueOf(str)
		if equ_err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(equ))
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(int(addr))
	}
	pred["here"] = starlark.MakeInt(int(asm.org))

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0xffff || st_int64 < -0x8000 {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

var (
	charRegexp  = regexp.MustCompile(`'\\?[^']'`)
	parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)
)

// parseLine expands character literals, $() expressions and equates, and
// splits the line into words.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	line = charRegexp.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			default:
				return word
			}
		}
		return fmt.Sprintf("%v", str[0])
	})

	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	// The name of an .equ is never substituted.
	start := 0
	if len(words) > 0 && words[0] == ".equ" {
		start = 2
	}
	for n := start; n < len(words); n++ {
		equate, ok := asm.Equate[words[n]]
		if ok {
			words[n] = equate
		}
	}

	return
}

// emit appends an opcode at the current origin.
func (asm *Assembler) emit(lineno int, words []string, codes []uint16, label string) {
	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:    lineno,
		Address:   asm.org,
		Words:     words,
		Codes:     codes,
		LinkLabel: label,
	})
	asm.org += uint16(2 * len(codes))
}

// encodeJump builds a jump opcode from addr to target.
func encodeJump(cond cpu.JumpCondition, addr, target uint16) (code uint16, err error) {
	delta := int(int16(target - (addr + 2)))
	if delta%2 != 0 {
		err = ErrJumpAlign
		return
	}
	offset := delta / 2
	if offset < -512 || offset > 511 {
		err = ErrJumpRange
		return
	}

	code = 0x2000 | (uint16(cond) << 10) | (uint16(offset) & 0x3ff)
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.org
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".equ":
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		if _, ok := asm.Equate[words[1]]; ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
	case ".org":
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		asm.org, err = asm.valueOf(words[1])
	case ".word":
		if len(words) < 2 {
			err = ErrWordMissing
			return
		}
		var codes []uint16
		for _, word := range words[1:] {
			var value uint16
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			codes = append(codes, value)
		}
		asm.emit(lineno, words, codes, "")
	default:
		cond, ok := jumpMap[strings.ToLower(words[0])]
		if !ok {
			err = ErrOpcodeInvalid
			return
		}
		if len(words) < 2 {
			err = ErrOpcodeMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}

		// Numeric targets are encoded now, labels at link time.
		target, verr := asm.valueOf(words[1])
		if verr != nil {
			asm.emit(lineno, words, []uint16{0x2000 | (uint16(cond) << 10)}, words[1])
			return
		}
		var code uint16
		code, err = encodeJump(cond, asm.org, target)
		if err != nil {
			return
		}
		asm.emit(lineno, words, []uint16{code}, "")
	}

	return
}

// link resolves the jump labels of all opcodes.
func (asm *Assembler) link() (lineno int, err error) {
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		if len(op.LinkLabel) == 0 {
			continue
		}
		lineno = op.LineNo

		target, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}

		cond := cpu.JumpCondition((op.Codes[0] >> 10) & 0x7)
		op.Codes[0], err = encodeJump(cond, op.Address, target)
		if err != nil {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Label = make(map[string]uint16)
	asm.Equate = maps.Clone(asm.predefine)
	if asm.Equate == nil {
		asm.Equate = make(map[string]string)
	}
	asm.org = 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			asm.log().WithFields(logrus.Fields{"line": lineno}).Info(text)
		}

		line = strings.TrimSpace(strings.SplitN(text, ";", 2)[0])

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	var link_line int
	link_line, err = asm.link()
	if err != nil {
		lineno = link_line
		line = strings.Join(asm.Debug(link_line), " ")
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// Debug returns the source words of the opcode generated at a line.
func (asm *Assembler) Debug(lineno int) []string {
	for _, op := range asm.Opcode {
		if op.LineNo == lineno {
			return op.Words
		}
	}
	return nil
}

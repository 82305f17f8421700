// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/msp430/translate"
)

var f = translate.From

var (
	ErrTickBudget = errors.New(f("tick budget exhausted"))
	ErrResetAlign = errors.New(f("reset address not word aligned"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address uint16 // Address of the faulting instruction.
	LineNo  int    // Source line, or 0 if unknown.
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("0x%04x: %v", err.Address, err.Err)
	}
	return f("0x%04x: line %d %v", err.Address, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"errors"

	"github.com/ezrec/fisc/translate"
)

var f = translate.From

var (
	// Encoding errors
	ErrOpcodeRange   = errors.New(f("opcode out of range"))
	ErrRegisterRange = errors.New(f("register out of range"))
	ErrAddressRange  = errors.New(f("branch target out of range"))
)

// ErrRegisterInvalid is returned when a register operand is not r0-r3.
type ErrRegisterInvalid string

func (er ErrRegisterInvalid) Error() string {
	return f("invalid register '%v', expecting r0-r3", string(er))
}

func (er ErrRegisterInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrRegisterInvalid)
	return
}

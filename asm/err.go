// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"

	"github.com/ezrec/fisc/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrLabelInvalid     = errors.New(f("label invalid"))
	ErrOperandSeparator = errors.New(f("operands must be separated by spaces, not commas"))
	ErrOpcodeExtraArgs  = errors.New(f("excessive arguments"))
	ErrTargetMissing    = errors.New(f("target missing"))
)

// ErrLabelMissing is returned when a branch refers to an undefined label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelMissing)
	return
}

// ErrOpcodeInvalid is returned for an unrecognized mnemonic.
type ErrOpcodeInvalid string

func (eo ErrOpcodeInvalid) Error() string {
	return f("instruction {%v} not recognized in set {add, and, not, bnz}", string(eo))
}

func (eo ErrOpcodeInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeInvalid)
	return
}

// ErrTargetRange is returned when a label address cannot be branched to.
type ErrTargetRange struct {
	Label  string
	Target int
	Limit  int
}

func (err ErrTargetRange) Error() string {
	return f("target %v address 0x%02x out of bounds, limit 0x%02x", err.Label, err.Target, err.Limit)
}

func (err ErrTargetRange) Is(target error) (ok bool) {
	_, ok = target.(ErrTargetRange)
	return
}

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

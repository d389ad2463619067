// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/fisc/translate"
)

var f = translate.From

var (
	ErrCheckResult = errors.New(f("check expression has no result"))
)

// ErrCheck indicates a state check expression could not be evaluated.
type ErrCheck struct {
	Expr string
	Err  error
}

func (err *ErrCheck) Error() string {
	return f("check '%v': %v", err.Expr, err.Err)
}

func (err *ErrCheck) Unwrap() error {
	return err.Err
}

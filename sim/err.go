// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"errors"

	"github.com/ezrec/fisc/translate"
)

var f = translate.From

var (
	ErrCycleBudget = errors.New(f("cycle budget must be positive"))
)

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command fiscsim runs a FISC object file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/tebeka/atexit"

	"github.com/ezrec/fisc/emulator"
	"github.com/ezrec/fisc/internal"
	"github.com/ezrec/fisc/sim"
)

// parseBudget parses a cycle budget argument.
func parseBudget(arg string) (budget int, err error) {
	budget, err = strconv.Atoi(arg)
	if err != nil || budget <= 0 {
		err = fmt.Errorf("%v: %w", arg, sim.ErrCycleBudget)
	}

	return
}

// report writes the final machine state and halt reason.
func report(w io.Writer, result sim.Result) {
	fmt.Fprint(w, result.State)
	fmt.Fprintf(w, "%6s: %v\n", "halt", result.Halt)
}

func main() {
	var debug bool
	var expr string

	log.SetFlags(0)

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.BoolVar(&debug, "d", false, "Trace each cycle to stderr")
	flags.StringVar(&expr, "e", "", "Starlark expression to check against the final state")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %v <object.hex> [-d] [cycle_budget] [-e expr]\n", flags.Name())
		flags.PrintDefaults()
	}

	args, err := internal.ParseArgs(flags, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		atexit.Exit(0)
	}
	if err != nil {
		atexit.Exit(1)
	}

	if len(args) < 1 || len(args) > 2 {
		flags.Usage()
		atexit.Exit(1)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = debug

	if len(args) == 2 {
		emu.Budget, err = parseBudget(args[1])
		if err != nil {
			atexit.Fatal(err)
		}
	}

	input := args[0]
	inf, err := os.Open(input)
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	result, err := emu.Run()
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	report(os.Stdout, result)

	if len(expr) != 0 {
		ok, err := emu.Check(expr)
		if err != nil {
			atexit.Fatal(err)
		}
		if !ok {
			atexit.Fatalf("check failed: %v", expr)
		}
	}
}

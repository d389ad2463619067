// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command fiscas assembles FISC source into an object file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/ezrec/fisc/asm"
	"github.com/ezrec/fisc/internal"
	"github.com/ezrec/fisc/isa"
	"github.com/ezrec/fisc/object"
)

// writeObject writes the object file through a temporary file beside it,
// so a failed write never leaves a partial object behind.
func writeObject(path string, codes []isa.Code) (err error) {
	ouf, err := os.CreateTemp(filepath.Dir(path), ".fiscas-*")
	if err != nil {
		return
	}
	tmp := ouf.Name()
	atexit.Register(func() {
		os.Remove(tmp)
	})

	err = object.Write(ouf, codes)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Chmod(0o644)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	if err != nil {
		return
	}

	err = os.Rename(tmp, path)
	return
}

func main() {
	var listing bool
	var verbose bool

	log.SetFlags(0)

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.BoolVar(&listing, "l", false, "Print label table and listing to stderr")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %v <source.s> [output.hex] [-l] [-v]\n", flags.Name())
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

	source := args[0]
	output := asm.DEFAULT_OUTPUT
	if len(args) == 2 {
		output = args[1]
	}

	inf, err := os.Open(source)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	if listing {
		prog.WriteListing(os.Stderr)
	}

	err = writeObject(output, prog.Binary())
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Printf("%v: %d instructions", output, len(prog.Opcodes))
	}
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts a FISC machine for the command line tools.
package emulator

import (
	"io"
	"iter"
	"log"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fisc/asm"
	"github.com/ezrec/fisc/internal"
	"github.com/ezrec/fisc/isa"
	"github.com/ezrec/fisc/object"
	"github.com/ezrec/fisc/sim"
)

const (
	CYCLE_BUDGET = 20 // Default cycle budget.
)

// Emulator state. Machine + optional source listing.
type Emulator struct {
	Verbose      bool         // If set, logs each executed cycle.
	*sim.Machine              // Reference to the machine simulation.
	Program      *asm.Program // If set, source listing of the loaded program.
	Monitor      sim.Tracer   // If set, observes each executed cycle.
}

// NewEmulator creates a new emulator with the default cycle budget.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: sim.NewMachine(nil, CYCLE_BUDGET),
	}
	emu.Machine.Tracer = emu

	return
}

// Load loads an object file, and resets the machine.
func (emu *Emulator) Load(input io.Reader) (err error) {
	codes, err := object.Read(input)
	if err != nil {
		return
	}

	emu.Program = nil
	emu.Machine.Memory = codes
	emu.Reset()

	return
}

// LoadProgram loads an assembled program, and resets the machine.
func (emu *Emulator) LoadProgram(prog *asm.Program) {
	emu.Program = prog
	emu.Machine.Memory = prog.Binary()
	emu.Reset()
}

// Trace logs the executed cycle when verbose, then passes it to the monitor.
func (emu *Emulator) Trace(step sim.Step) {
	if emu.Verbose {
		log.Printf("[STATE] %v", step.State.Trace())
		if op := emu.debug(step.Ip); op != nil {
			log.Printf("[disassembly] 0x%02x: %v\t; line %d", step.Ip, step.Instruction, op.LineNo)
		} else {
			log.Printf("[disassembly] 0x%02x: %v", step.Ip, step.Instruction)
		}
	}

	if emu.Monitor != nil {
		emu.Monitor.Trace(step)
	}
}

func (emu *Emulator) debug(ip int) *asm.Opcode {
	if emu.Program == nil {
		return nil
	}

	return emu.Program.Debug(ip)
}

// LineNo returns the source line number of the next instruction, or 0 if unknown.
func (emu *Emulator) LineNo() int {
	op := emu.debug(emu.State.PC)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Budget <= 0 {
		err = sim.ErrCycleBudget
		return
	}

	done = emu.Machine.Tick()

	return
}

// Run runs the machine until it halts.
func (emu *Emulator) Run() (result sim.Result, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	result = emu.Result()

	return
}

// Values returns an iterator over the machine state as Starlark values.
func (emu *Emulator) Values() iter.Seq2[string, starlark.Value] {
	state := emu.State

	regs := make([]starlark.Value, len(state.Register))
	for n, value := range state.Register {
		regs[n] = starlark.MakeInt(int(value))
	}

	flags := map[string]starlark.Value{
		"z":       starlark.Bool(state.Z),
		"pc":      starlark.MakeInt(state.PC),
		"cycles":  starlark.MakeInt(state.Cycles),
		"halted":  starlark.Bool(emu.Halt != sim.HALT_NONE),
		"limited": starlark.Bool(emu.Halt == sim.HALT_CYCLES),
	}

	return internal.IterSeq2Concat(
		internal.IterSeq2Indexed(regs, func(n int) string { return isa.Register(n).String() }),
		maps.All(flags),
	)
}

// Check evaluates a Starlark expression against the machine state.
func (emu *Emulator) Check(expr string) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrCheck{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "check"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range emu.Values() {
		pred[key] = value
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "check", prog, pred)
	if err != nil {
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = ErrCheckResult
		return
	}

	ok = bool(rc.Truth())

	return
}

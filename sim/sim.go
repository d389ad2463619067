// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"fmt"

	"github.com/ezrec/fisc/isa"
)

// Halt is the reason the machine stopped.
type Halt int

//go:generate go tool stringer -linecomment -type=Halt
const (
	HALT_NONE   = Halt(0) // running
	HALT_END    = Halt(1) // end of program
	HALT_CYCLES = Halt(2) // cycle limit
)

// Step is a single executed cycle.
type Step struct {
	Ip          int             // Address of the executed code.
	Code        isa.Code        // Executed code.
	Instruction isa.Instruction // Decoded instruction.
	Taken       bool            // Set if a branch was taken.
	State       State           // Machine state after execution.
}

// Tracer observes each executed cycle.
type Tracer interface {
	Trace(step Step)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(step Step)

func (fn TracerFunc) Trace(step Step) {
	fn(step)
}

// Result is the final state of a run.
type Result struct {
	State State
	Halt  Halt
}

// Execute executes a single code, returning the next machine state.
// taken is set if a branch was taken, in which case PC is the branch target.
func Execute(state State, code isa.Code) (next State, taken bool) {
	next = state

	reg := &state.Register

	switch inst := code.Decode().(type) {
	case isa.Add:
		next.setResult(inst.Rd, reg[inst.Rn]+reg[inst.Rm])
	case isa.And:
		next.setResult(inst.Rd, reg[inst.Rn]&reg[inst.Rm])
	case isa.Not:
		next.setResult(inst.Rd, ^reg[inst.Rn])
	case isa.Bnz:
		if !state.Z {
			next.PC = inst.Target
			taken = true
		}
	default:
		panic(fmt.Sprintf("unknown instruction %T", inst))
	}

	if !taken {
		next.PC++
	}
	next.Cycles++

	return
}

// Machine is the simulation context for a FISC program.
type Machine struct {
	Memory []isa.Code // Instruction memory.
	Budget int        // Maximum cycles to execute.
	Tracer Tracer     // If set, observes each executed cycle.

	State State // Current machine state.
	Halt  Halt  // Reason for halting, or HALT_NONE.
}

// NewMachine creates a machine to run a program.
func NewMachine(memory []isa.Code, budget int) (m *Machine) {
	m = &Machine{
		Memory: memory,
		Budget: budget,
	}

	return
}

// Reset clears the machine state.
func (m *Machine) Reset() {
	m.State = State{}
	m.Halt = HALT_NONE
}

// Result returns the current state and halt reason.
func (m *Machine) Result() Result {
	return Result{State: m.State, Halt: m.Halt}
}

// Tick executes a single cycle, and returns true once the machine has halted.
func (m *Machine) Tick() (done bool) {
	if m.Halt != HALT_NONE {
		return true
	}

	ip := m.State.PC
	if ip < 0 || ip >= len(m.Memory) {
		m.Halt = HALT_END
		return true
	}

	if m.State.Cycles >= m.Budget {
		m.Halt = HALT_CYCLES
		return true
	}

	code := m.Memory[ip]

	var taken bool
	m.State, taken = Execute(m.State, code)

	if m.Tracer != nil {
		m.Tracer.Trace(Step{
			Ip:          ip,
			Code:        code,
			Instruction: code.Decode(),
			Taken:       taken,
			State:       m.State,
		})
	}

	return false
}

// Run runs a program from reset until it halts.
func Run(program []isa.Code, budget int, tracer Tracer) (result Result, err error) {
	if budget <= 0 {
		err = ErrCycleBudget
		return
	}

	m := NewMachine(program, budget)
	m.Tracer = tracer

	for !m.Tick() {
	}

	result = m.Result()
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"fmt"
	"strings"

	"github.com/ezrec/fisc/isa"
)

// State is the complete machine state.
type State struct {
	Register [isa.REGISTER_COUNT]uint8 // Register bank.
	Z        bool                      // Zero flag.
	PC       int                       // Program counter.
	Cycles   int                       // Cycles executed.
}

// setResult writes a register and updates the zero flag from it.
func (state *State) setResult(rd isa.Register, value uint8) {
	state.Register[rd] = value
	state.Z = value == 0
}

// String returns the machine state, one item per line.
func (state State) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%6s: %d\n", "cycles", state.Cycles)
	fmt.Fprintf(&sb, "%6s: 0x%02x\n", "pc", state.PC)
	fmt.Fprintf(&sb, "%6s: %v\n", "z", state.Z)
	for n, value := range state.Register {
		fmt.Fprintf(&sb, "%6s: 0x%02x\n", isa.Register(n), value)
	}

	text = sb.String()
	return
}

// Trace returns the machine state on a single line.
func (state State) Trace() string {
	return fmt.Sprintf("clk: %d\tPC: 0x%02x\tZ: %v\tR0: %02x\tR1: %02x\tR2: %02x\tR3: %02x",
		state.Cycles, state.PC, state.Z,
		state.Register[0], state.Register[1], state.Register[2], state.Register[3])
}

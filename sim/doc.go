// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim simulates the FISC machine.
//
// The machine state is four 8-bit registers, the zero flag, the program
// counter, and a cycle counter. Each cycle fetches the code at PC, decodes
// it, and executes it. The machine halts when PC runs past the end of the
// program, or when the cycle budget is exhausted.
package sim

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm implements the two pass FISC assembler.
//
// Source is one instruction per line. A line may be blank, a ';' comment,
// or an instruction optionally preceded by one or more 'label:' prefixes and
// followed by a ';' comment. Operands are separated by whitespace:
//
//	start:  not r0 r1       ; r0 = ~r1
//	        and r0 r0 r1
//	loop:   add r0 r0 r1
//	        bnz loop
//
// The first pass binds labels to instruction addresses, so a branch may
// refer to a label defined later in the file. The second pass encodes.
package asm

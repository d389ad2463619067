// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa defines the FISC instruction encoding shared by the assembler
// and the simulator.
//
// FISC has four 8-bit general purpose registers (r0-r3), a zero flag (Z), and
// four opcodes. Every instruction is a single byte, most significant bit first:
//
//	add rd rn rm   00 rn rm rd
//	and rd rn rm   01 rn rm rd
//	not rd rn      10 rn 00 rd
//	bnz target     11 target(6)
//
// Branch targets are absolute instruction addresses, so programs may only
// branch within their first 64 instructions.
package isa

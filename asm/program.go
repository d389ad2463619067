// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"cmp"
	"iter"
	"slices"

	"github.com/ezrec/fisc/isa"
)

// Opcode represents a line of assembled code with its source location.
type Opcode struct {
	LineNo    int      // Source line number.
	Ip        int      // Instruction address.
	Words     []string // Instruction words, without labels or comment.
	Code      isa.Code // Encoded instruction.
	LinkLabel string   // Branch target label, if any.
}

// Label is a resolved label.
type Label struct {
	Name string
	Ip   int
}

// Program is an assembled FISC program and its label table.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int
}

// Binary returns the encoded program, one code per address.
func (prog *Program) Binary() (codes []isa.Code) {
	codes = make([]isa.Code, 0, len(prog.Opcodes))
	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}

	return
}

// Codes iterates over the program's addresses and codes.
func (prog *Program) Codes() iter.Seq2[int, isa.Code] {
	return func(yield func(ip int, code isa.Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Code) {
				return
			}
		}
	}
}

// Debug returns the opcode at an address, or nil if there is none.
func (prog *Program) Debug(ip int) (op *Opcode) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Ip == ip {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Labels returns the label table ordered by address, then by name.
func (prog *Program) Labels() (labels []Label) {
	for name, ip := range prog.Label {
		labels = append(labels, Label{Name: name, Ip: ip})
	}

	slices.SortFunc(labels, func(a, b Label) int {
		return cmp.Or(cmp.Compare(a.Ip, b.Ip), cmp.Compare(a.Name, b.Name))
	})

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
)

// Opcode is the 2-bit operation selector.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD = Opcode(0) // add
	OP_AND = Opcode(1) // and
	OP_NOT = Opcode(2) // not
	OP_BNZ = Opcode(3) // bnz
)

// Register is a general purpose register index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // r0
	REG_R1 = Register(1) // r1
	REG_R2 = Register(2) // r2
	REG_R3 = Register(3) // r3
)

const (
	REGISTER_COUNT = 4                 // Number of general purpose registers.
	ADDRESS_LIMIT  = 64                // Branch targets must be below this.
	ADDRESS_MASK   = ADDRESS_LIMIT - 1 // Mask of the branch target field.
)

// Valid returns true if the register is one of r0-r3.
func (reg Register) Valid() bool {
	return reg >= REG_R0 && reg < REGISTER_COUNT
}

// regMap maps operand words to registers. An omitted operand is r0.
var regMap = map[string]Register{
	"":   REG_R0,
	"r0": REG_R0,
	"r1": REG_R1,
	"r2": REG_R2,
	"r3": REG_R3,
}

// ParseRegister parses a register operand.
func ParseRegister(word string) (reg Register, err error) {
	reg, ok := regMap[word]
	if !ok {
		err = ErrRegisterInvalid(word)
	}
	return
}

// Code is a single encoded instruction.
type Code uint8

// MakeCodeAlu creates an add, and, or not instruction.
// For not, rm is ignored and encoded as zero.
func MakeCodeAlu(op Opcode, rd, rn, rm Register) (code Code, err error) {
	switch op {
	case OP_ADD, OP_AND:
	case OP_NOT:
		rm = REG_R0
	default:
		err = ErrOpcodeRange
		return
	}

	if !rd.Valid() || !rn.Valid() || !rm.Valid() {
		err = ErrRegisterRange
		return
	}

	code = Code((uint8(op) << 6) | (uint8(rn) << 4) | (uint8(rm) << 2) | (uint8(rd) << 0))
	return
}

// MakeCodeBnz creates a branch-if-not-zero instruction.
func MakeCodeBnz(target int) (code Code, err error) {
	if target < 0 || target >= ADDRESS_LIMIT {
		err = ErrAddressRange
		return
	}

	code = Code((uint8(OP_BNZ) << 6) | uint8(target))
	return
}

// Opcode returns the operation of the instruction.
func (code Code) Opcode() Opcode {
	return Opcode((code >> 6) & 0x3)
}

// AluDecode decodes the register fields of an add, and, or not instruction.
func (code Code) AluDecode() (rd, rn, rm Register) {
	rn = Register((code >> 4) & 0x3)
	rm = Register((code >> 2) & 0x3)
	rd = Register((code >> 0) & 0x3)
	return
}

// BnzDecode decodes the branch target address.
func (code Code) BnzDecode() (target int) {
	target = int(code & ADDRESS_MASK)
	return
}

// Decode returns the instruction encoded by the code. Every code decodes.
func (code Code) Decode() (inst Instruction) {
	rd, rn, rm := code.AluDecode()

	switch code.Opcode() {
	case OP_ADD:
		inst = Add{Rd: rd, Rn: rn, Rm: rm}
	case OP_AND:
		inst = And{Rd: rd, Rn: rn, Rm: rm}
	case OP_NOT:
		inst = Not{Rd: rd, Rn: rn}
	case OP_BNZ:
		inst = Bnz{Target: code.BnzDecode()}
	}

	return
}

// String returns the disassembly of the code.
func (code Code) String() string {
	return code.Decode().String()
}

// Instruction is a decoded FISC instruction: one of Add, And, Not, or Bnz.
type Instruction interface {
	Opcode() Opcode
	Encode() (Code, error)
	String() string

	instruction()
}

// Add is rd = rn + rm.
type Add struct {
	Rd, Rn, Rm Register
}

// And is rd = rn & rm.
type And struct {
	Rd, Rn, Rm Register
}

// Not is rd = ^rn.
type Not struct {
	Rd, Rn Register
}

// Bnz branches to Target when the zero flag is clear.
type Bnz struct {
	Target int
}

var (
	_ Instruction = Add{}
	_ Instruction = And{}
	_ Instruction = Not{}
	_ Instruction = Bnz{}
)

func (Add) instruction() {}
func (And) instruction() {}
func (Not) instruction() {}
func (Bnz) instruction() {}

func (Add) Opcode() Opcode { return OP_ADD }
func (And) Opcode() Opcode { return OP_AND }
func (Not) Opcode() Opcode { return OP_NOT }
func (Bnz) Opcode() Opcode { return OP_BNZ }

func (inst Add) Encode() (Code, error) {
	return MakeCodeAlu(OP_ADD, inst.Rd, inst.Rn, inst.Rm)
}

func (inst And) Encode() (Code, error) {
	return MakeCodeAlu(OP_AND, inst.Rd, inst.Rn, inst.Rm)
}

func (inst Not) Encode() (Code, error) {
	return MakeCodeAlu(OP_NOT, inst.Rd, inst.Rn, REG_R0)
}

func (inst Bnz) Encode() (Code, error) {
	return MakeCodeBnz(inst.Target)
}

func (inst Add) String() string {
	return fmt.Sprintf("%v %v %v %v", OP_ADD, inst.Rd, inst.Rn, inst.Rm)
}

func (inst And) String() string {
	return fmt.Sprintf("%v %v %v %v", OP_AND, inst.Rd, inst.Rn, inst.Rm)
}

func (inst Not) String() string {
	return fmt.Sprintf("%v %v %v", OP_NOT, inst.Rd, inst.Rn)
}

func (inst Bnz) String() string {
	return fmt.Sprintf("%v 0x%02x", OP_BNZ, inst.Target)
}

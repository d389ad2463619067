// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/ezrec/fisc/isa"
)

// DEFAULT_OUTPUT is the object file written when none is named.
const DEFAULT_OUTPUT = "test.hex"

// Line is a source line split into its labels and instruction text.
type Line struct {
	LineNo int      // Line number in the source, from 1.
	Text   string   // Unmodified source text.
	Labels []string // Labels bound on this line.
	Body   string   // Instruction text, without labels or comment.
}

// splitLine removes the comment and labels from a line of source.
func splitLine(lineno int, text string) (line Line) {
	line = Line{LineNo: lineno, Text: text}

	body, _, _ := strings.Cut(text, ";")
	for {
		label, rest, found := strings.Cut(body, ":")
		if !found {
			break
		}
		line.Labels = append(line.Labels, strings.TrimSpace(label))
		body = rest
	}

	line.Body = strings.TrimSpace(body)

	return
}

// validLabel returns true for a non-empty label without whitespace.
func validLabel(label string) bool {
	return len(label) != 0 && !strings.ContainsFunc(label, unicode.IsSpace)
}

// opMap maps mnemonics to opcodes.
var opMap = map[string]isa.Opcode{
	"add": isa.OP_ADD,
	"and": isa.OP_AND,
	"not": isa.OP_NOT,
	"bnz": isa.OP_BNZ,
}

// Assembler is a two pass assembler for FISC.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Label   map[string]int // Map of labels to instruction addresses.
	Opcode  []Opcode       // List of generated opcodes.

	lines []Line
}

// Assemble assembles source text into a Program.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}

// Parse parses an input stream into a Program.
// No Program is returned if any line fails to assemble.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.lines = asm.lines[:0]

	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1
		asm.lines = append(asm.lines, splitLine(lineno, scanner.Text()))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	err = asm.resolve()
	if err != nil {
		return
	}

	err = asm.encode()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Label:   maps.Clone(asm.Label),
	}

	return
}

// resolve is the first pass, binding every label to the address of the
// instruction that follows it.
func (asm *Assembler) resolve() (err error) {
	var line *Line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
		}
	}()

	var ip int
	for n := range asm.lines {
		line = &asm.lines[n]

		for _, label := range line.Labels {
			if !validLabel(label) {
				err = ErrLabelInvalid
				return
			}
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = ip

			if asm.Verbose {
				log.Printf("%v: %v = 0x%02x", line.LineNo, label, ip)
			}
		}

		if len(line.Body) != 0 {
			ip++
		}
	}

	// A label after the final instruction has no instruction to bind to.
	for n := range asm.lines {
		line = &asm.lines[n]
		for _, label := range line.Labels {
			if asm.Label[label] >= ip {
				err = ErrTargetRange{Label: label, Target: asm.Label[label], Limit: ip}
				return
			}
		}
	}

	return
}

// encode is the second pass, encoding every instruction line.
func (asm *Assembler) encode() (err error) {
	var count int
	for _, line := range asm.lines {
		if len(line.Body) != 0 {
			count++
		}
	}

	for _, line := range asm.lines {
		if len(line.Body) == 0 {
			continue
		}

		var code isa.Code
		var label string
		code, label, err = asm.encodeLine(line.Body, count)
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		opcode := Opcode{
			LineNo:    line.LineNo,
			Ip:        len(asm.Opcode),
			Words:     strings.Fields(line.Body),
			Code:      code,
			LinkLabel: label,
		}
		asm.Opcode = append(asm.Opcode, opcode)

		if asm.Verbose {
			log.Printf("%v: 0x%02x %02x %v", line.LineNo, opcode.Ip, uint8(code), code)
		}
	}

	return
}

// encodeLine encodes the instruction text of a single line.
// limit is the length of the program being assembled.
func (asm *Assembler) encodeLine(body string, limit int) (code isa.Code, label string, err error) {
	if strings.Contains(body, ",") {
		err = ErrOperandSeparator
		return
	}

	words := strings.Fields(body)
	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid(words[0])
		return
	}
	args := words[1:]

	switch op {
	case isa.OP_ADD, isa.OP_AND, isa.OP_NOT:
		// Omitted registers are r0.
		var regs [3]isa.Register
		operands := len(regs)
		if op == isa.OP_NOT {
			operands = 2
		}
		if len(args) > operands {
			err = ErrOpcodeExtraArgs
			return
		}
		for n, arg := range args {
			regs[n], err = isa.ParseRegister(arg)
			if err != nil {
				return
			}
		}
		code, err = isa.MakeCodeAlu(op, regs[0], regs[1], regs[2])
	case isa.OP_BNZ:
		if len(args) == 0 {
			err = ErrTargetMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		label = args[0]
		target, ok := asm.Label[label]
		if !ok {
			err = ErrLabelMissing(label)
			return
		}
		limit = min(limit, isa.ADDRESS_LIMIT)
		if target >= limit {
			err = ErrTargetRange{Label: label, Target: target, Limit: limit}
			return
		}
		code, err = isa.MakeCodeBnz(target)
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteListing writes the label table and the annotated program.
func (prog *Program) WriteListing(w io.Writer) {
	names := map[int][]string{}

	labels := table.NewWriter()
	labels.SetOutputMirror(w)
	labels.SetStyle(table.StyleLight)
	labels.SetTitle(f("LABEL LIST"))
	labels.AppendHeader(table.Row{f("Label"), f("Address")})
	for _, label := range prog.Labels() {
		labels.AppendRow(table.Row{label.Name, fmt.Sprintf("0x%02x", label.Ip)})
		names[label.Ip] = append(names[label.Ip], label.Name)
	}
	labels.Render()

	code := table.NewWriter()
	code.SetOutputMirror(w)
	code.SetStyle(table.StyleLight)
	code.SetTitle(f("MACHINE PROGRAM"))
	code.AppendHeader(table.Row{f("Address"), f("Hex"), f("Binary"), f("Label"), f("Disassembly"), f("Source")})
	for _, op := range prog.Opcodes {
		code.AppendRow(table.Row{
			fmt.Sprintf("0x%02x", op.Ip),
			fmt.Sprintf("%02x", uint8(op.Code)),
			fmt.Sprintf("%08b", uint8(op.Code)),
			strings.Join(names[op.Ip], " "),
			op.Code.String(),
			strings.Join(op.Words, " "),
		})
	}
	code.Render()
}

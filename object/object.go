// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package object reads and writes FISC object files.
//
// An object file is a 'v2.0 raw' marker line followed by one instruction
// per line in lowercase hexadecimal.
package object

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/fisc/isa"
	"github.com/ezrec/fisc/translate"
)

var f = translate.From

// HEADER is the format marker on the first line of an object file.
const HEADER = "v2.0 raw"

// ErrObjectByte is returned when an object line is not a byte in hexadecimal.
type ErrObjectByte struct {
	LineNo int
	Text   string
}

func (err ErrObjectByte) Error() string {
	return f("line %d '%v' is not a hexadecimal byte", err.LineNo, err.Text)
}

func (err ErrObjectByte) Is(target error) (ok bool) {
	_, ok = target.(ErrObjectByte)
	return
}

// Write writes the codes as an object file.
func Write(output io.Writer, codes []isa.Code) (err error) {
	w := bufio.NewWriter(output)

	_, err = w.WriteString(HEADER + "\n")
	if err != nil {
		return
	}

	for _, code := range codes {
		_, err = w.WriteString(strconv.FormatUint(uint64(code), 16) + "\n")
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}

// Read reads the codes from an object file.
// The marker line is not checked.
func Read(input io.Reader) (codes []isa.Code, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1
		if lineno == 1 {
			continue
		}

		text := scanner.Text()
		var value uint64
		value, err = strconv.ParseUint(strings.TrimSpace(text), 16, 8)
		if err != nil {
			codes = nil
			err = ErrObjectByte{LineNo: lineno, Text: text}
			return
		}
		codes = append(codes, isa.Code(value))
	}

	err = scanner.Err()
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"
	"maps"

	asmlio "github.com/ezrec/asml/io"

	"github.com/ezrec/asml/cpu"
)

// Predefined system symbols.
var sysSymbol = map[string]uint16{
	"PRINTER":    cpu.PRINTER_PORT,
	"RESET":      cpu.RESET_VECTOR,
	"MEMORY_TOP": 0xFFFF,
}

// Assembler is a two pass assembler for the ASML processor.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Label   map[string]uint16 // Symbol table of the last assembly.

	predefine map[string]uint16 // Predefines
}

// Predefine binds a symbol before assembly, as if it were a label.
func (asm *Assembler) Predefine(name string, value uint16) {
	if asm.predefine == nil {
		asm.predefine = map[string]uint16{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Parse assembles an input stream into a Program.
//
// Syntax errors and first pass errors are all reported together; the
// second pass only runs when there were none, and then reports all of
// its own errors. Every error is an ErrSyntax locating the source line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lex := NewLexer(input)
	lex.Verbose = asm.Verbose

	stmts, errs := parseStatements(lex)

	asm.Label = maps.Clone(sysSymbol)
	maps.Copy(asm.Label, asm.predefine)

	errs = append(errs, asm.bind(stmts)...)
	if len(errs) > 0 {
		err = errors.Join(errs...)
		return
	}

	rom := asmlio.NewRom()
	errs = asm.encode(stmts, rom)
	if len(errs) > 0 {
		err = errors.Join(errs...)
		return
	}

	prog = &Program{
		Statements: stmts,
		Labels:     maps.Clone(asm.Label),
		Rom:        rom,
	}

	return
}

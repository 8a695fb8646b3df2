package asm

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/asml/io"
)

// Program is the result of an assembly.
type Program struct {
	Statements []Statement        // Statements, with addresses and bytes.
	Labels     map[string]uint16 // Symbol table, system symbols included.
	Rom        *io.Rom           // Byte image.
}

// Debug returns the statement that emitted the byte at addr, or nil.
func (prog *Program) Debug(addr uint16) (stmt *Statement) {
	for n := range prog.Statements {
		if prog.Statements[n].Contains(addr) {
			stmt = &prog.Statements[n]
			break
		}
	}

	return
}

// Listing iterates the program listing, one line per statement:
// address, up to four bytes of data, and the statement.
func (prog *Program) Listing() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for n := range prog.Statements {
			stmt := &prog.Statements[n]

			data := stmt.Data
			more := ""
			if len(data) > 4 {
				data = data[:4]
				more = "+"
			}

			hex := make([]string, len(data))
			for n, value := range data {
				hex[n] = fmt.Sprintf("%02X", value)
			}

			line := fmt.Sprintf("%04X: %-12s %5d  %v", stmt.Address, strings.Join(hex, " ")+more, stmt.LineNo, stmt)
			if !yield(line) {
				return
			}
		}
	}
}

package asm

import (
	"log"

	"github.com/ezrec/asml/cpu"
)

// bind is the first pass. It walks the statements with an address cursor,
// sizing each from operand syntax alone, and binds every label definition
// to the cursor.
func (asm *Assembler) bind(stmts []Statement) (errs []error) {
	cursor := 0

	for n := range stmts {
		stmt := &stmts[n]
		err := asm.bindStatement(stmt, &cursor)
		if err != nil {
			errs = append(errs, ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: err})
		}
	}

	return
}

// bindStatement assigns the statement its address and size.
func (asm *Assembler) bindStatement(stmt *Statement, cursor *int) (err error) {
	stmt.Address = uint16(*cursor)

	switch stmt.Kind {
	case STATEMENT_LABEL:
		if *cursor > 0xFFFF {
			err = ErrAddressOverflow
			return
		}
		_, ok := asm.Label[stmt.Label]
		if ok {
			err = ErrLabelDuplicate(stmt.Label)
			return
		}
		asm.Label[stmt.Label] = stmt.Address
		if asm.Verbose {
			log.Printf("asm: %v = 0x%04X", stmt.Label, stmt.Address)
		}
		return
	case STATEMENT_ORG:
		// Only labels bound above the ORG are visible here.
		var value uint64
		value, err = asm.evaluate(stmt.Items[0], stmt.Address)
		if err != nil {
			return
		}
		if value > 0xFFFF {
			err = ErrAddressOverflow
			return
		}
		stmt.Address = uint16(value)
		*cursor = int(value)
		return
	case STATEMENT_INSTRUCTION:
		stmt.Instruction, err = selectInstruction(stmt)
		if err != nil {
			return
		}
		stmt.Size = stmt.Instruction.Width()
	case STATEMENT_FCB:
		for _, item := range stmt.Items {
			if item.Kind == EXPR_STRING {
				stmt.Size += len(item.Bytes)
			} else {
				stmt.Size++
			}
		}
	case STATEMENT_FDB:
		stmt.Size = 2 * len(stmt.Items)
	case STATEMENT_RMB:
		if stmt.Items[0].Value > 0x10000 {
			err = ErrAddressOverflow
			return
		}
		stmt.Size = int(stmt.Items[0].Value)
	}

	if *cursor+stmt.Size > 0x10000 {
		err = ErrAddressOverflow
	}
	*cursor += stmt.Size

	return
}

// evaluate resolves an expression against the symbol table, with pc as
// the value of $. Label-derived values wrap to 16 bits; literals are
// returned whole, for the caller to range check.
func (asm *Assembler) evaluate(expr Expr, pc uint16) (value uint64, err error) {
	switch expr.Kind {
	case EXPR_NUMBER:
		value = expr.Value
	case EXPR_LABEL:
		addr, ok := asm.Label[expr.Label]
		if !ok {
			err = ErrLabelUndefined(expr.Label)
			return
		}
		value = uint64(uint16(int(addr) + expr.Offset))
	case EXPR_CURRENT:
		value = uint64(uint16(int(pc) + expr.Offset))
	case EXPR_SCRIPT:
		var addr uint16
		addr, err = asm.evalScript(expr.Script, pc)
		value = uint64(addr)
	case EXPR_STRING:
		for _, ch := range expr.Bytes {
			value = value<<8 | uint64(ch)
		}
	}

	return
}

// fit evaluates an expression into a field of the given mask. Values
// from the symbol table keep only the bits that fit; a literal that does
// not fit is an encoding error.
func (asm *Assembler) fit(op string, expr Expr, pc uint16, mask uint16) (value uint16, err error) {
	raw, err := asm.evaluate(expr, pc)
	if err != nil {
		return
	}

	if expr.Derived() {
		value = uint16(raw) & mask
		return
	}

	if raw > uint64(mask) {
		err = ErrEncoding{Op: op, Reason: f("value %v does not fit in %d bits", expr, bitsOf(mask))}
		return
	}

	value = uint16(raw)

	return
}

// bitsOf returns the width of a field mask.
func bitsOf(mask uint16) int {
	if mask == 0xFF {
		return 8
	}
	return 16
}

// selectInstruction picks the opcode table entry from operand syntax.
func selectInstruction(stmt *Statement) (ins cpu.Instruction, err error) {
	fields := make([]cpu.Field, len(stmt.Operands))
	for n, op := range stmt.Operands {
		fields[n] = op.Syntax.Field()
	}

	ins, ok := cpu.Lookup(stmt.Mnemonic, fields...)
	if ok {
		return
	}

	// Rotation counts are written as immediates.
	for n, field := range fields {
		if field == cpu.FIELD_IMM {
			fields[n] = cpu.FIELD_COUNT
		}
	}
	ins, ok = cpu.Lookup(stmt.Mnemonic, fields...)
	if ok {
		return
	}

	shape := "no operands"
	if len(stmt.Operands) > 0 {
		shape = ""
		for n, op := range stmt.Operands {
			if n > 0 {
				shape += ", "
			}
			shape += op.Syntax.String()
		}
	}
	err = ErrEncoding{Op: stmt.Mnemonic.String(), Reason: f("no form takes %v", shape)}

	return
}

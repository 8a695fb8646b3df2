package asm

import (
	"log"

	"github.com/ezrec/asml/cpu"
	"github.com/ezrec/asml/io"
)

// encode is the second pass. Every statement is encoded and its bytes
// stored into the image.
func (asm *Assembler) encode(stmts []Statement, rom *io.Rom) (errs []error) {
	for n := range stmts {
		stmt := &stmts[n]

		data, err := asm.encodeStatement(stmt)
		if err == nil && len(data) > 0 {
			err = rom.Store(stmt.Address, data...)
			switch e := err.(type) {
			case io.ErrRomOverlap:
				err = ErrSectionOverlap(e)
			case nil:
			default:
				err = ErrAddressOverflow
			}
		}
		if err != nil {
			errs = append(errs, ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: err})
			continue
		}

		stmt.Data = data

		if asm.Verbose && len(data) > 0 {
			log.Printf("asm: %04X: % X", stmt.Address, data)
		}
	}

	return
}

// encodeStatement maps a bound statement to its bytes.
func (asm *Assembler) encodeStatement(stmt *Statement) (data []byte, err error) {
	op := stmt.Kind.String()

	switch stmt.Kind {
	case STATEMENT_INSTRUCTION:
		return asm.encodeInstruction(stmt)
	case STATEMENT_FCB:
		for _, item := range stmt.Items {
			if item.Kind == EXPR_STRING {
				data = append(data, item.Bytes...)
				continue
			}
			var value uint16
			value, err = asm.fit(op, item, stmt.Address, 0xFF)
			if err != nil {
				return
			}
			data = append(data, byte(value))
		}
	case STATEMENT_FDB:
		for _, item := range stmt.Items {
			if item.Kind == EXPR_STRING && len(item.Bytes) != 2 {
				err = ErrEncoding{Op: op, Reason: f("string %v is not 2 bytes", item)}
				return
			}
			var value uint16
			value, err = asm.fit(op, item, stmt.Address, 0xFFFF)
			if err != nil {
				return
			}
			data = append(data, byte(value>>8), byte(value))
		}
	case STATEMENT_RMB:
		data = make([]byte, stmt.Size)
	}

	return
}

// encodeInstruction resolves one argument per opcode table field.
func (asm *Assembler) encodeInstruction(stmt *Statement) (data []byte, err error) {
	ins := stmt.Instruction
	op := stmt.Mnemonic.String()

	// Immediates match the destination register; LDSP has none, and takes 16 bits.
	width := 2
	args := make([]uint16, len(ins.Fields))

	for n, field := range ins.Fields {
		operand := stmt.Operands[n]
		switch field {
		case cpu.FIELD_REG:
			args[n] = uint16(operand.Register)
			if n == 0 {
				width = operand.Register.Width()
			}
		case cpu.FIELD_ADDR:
			args[n], err = asm.fit(op, operand.Expr, stmt.Address, 0xFFFF)
		case cpu.FIELD_IMM:
			mask := uint16(0xFFFF)
			if width == 1 {
				mask = 0xFF
			}
			if operand.Expr.Kind == EXPR_STRING && len(operand.Expr.Bytes) != width {
				err = ErrEncoding{Op: op, Reason: f("string %v is not %d bytes", operand.Expr, width)}
				return
			}
			args[n], err = asm.fit(op, operand.Expr, stmt.Address, mask)
		case cpu.FIELD_COUNT:
			if operand.Expr.Kind == EXPR_STRING {
				err = ErrEncoding{Op: op, Reason: f("rotation count %v is not a number", operand.Expr)}
				return
			}
			args[n], err = asm.fit(op, operand.Expr, stmt.Address, 0xFF)
		}
		if err != nil {
			return
		}
	}

	data, err = ins.Encode(args...)
	if err != nil {
		err = ErrEncoding{Op: op, Reason: err.Error()}
	}

	return
}

package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/asml/cpu"
)

// Kind is the kind of a statement.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	STATEMENT_INSTRUCTION = Kind(0) // instruction
	STATEMENT_LABEL       = Kind(1) // label
	STATEMENT_ORG         = Kind(2) // ORG
	STATEMENT_FCB         = Kind(3) // FCB
	STATEMENT_FDB         = Kind(4) // FDB
	STATEMENT_RMB         = Kind(5) // RMB
)

// ParseDirective looks up a directive by name, ignoring case.
func ParseDirective(name string) (kind Kind, ok bool) {
	name = strings.ToUpper(name)
	for kind = STATEMENT_ORG; kind <= STATEMENT_RMB; kind++ {
		if kind.String() == name {
			ok = true
			return
		}
	}

	return
}

// Syntax is the written form of an instruction operand. It alone
// selects the addressing mode.
type Syntax int

//go:generate go tool stringer -linecomment -type=Syntax
const (
	SYNTAX_REGISTER  = Syntax(0) // register
	SYNTAX_ADDRESS   = Syntax(1) // address
	SYNTAX_IMMEDIATE = Syntax(2) // immediate
)

// Field returns the opcode table field the syntax encodes to.
func (syntax Syntax) Field() cpu.Field {
	switch syntax {
	case SYNTAX_REGISTER:
		return cpu.FIELD_REG
	case SYNTAX_ADDRESS:
		return cpu.FIELD_ADDR
	default:
		return cpu.FIELD_IMM
	}
}

// ExprKind is the kind of a value expression.
type ExprKind int

//go:generate go tool stringer -linecomment -type=ExprKind
const (
	EXPR_NUMBER  = ExprKind(0) // number
	EXPR_STRING  = ExprKind(1) // string
	EXPR_LABEL   = ExprKind(2) // label
	EXPR_CURRENT = ExprKind(3) // current address
	EXPR_SCRIPT  = ExprKind(4) // script
)

// Expr is a value expression: a literal, a string, label+offset,
// $+offset, or a $( ... ) script.
type Expr struct {
	Kind   ExprKind
	Value  uint64 // EXPR_NUMBER
	Bytes  []byte // EXPR_STRING
	Label  string // EXPR_LABEL
	Offset int    // EXPR_LABEL, EXPR_CURRENT
	Script string // EXPR_SCRIPT
}

// Derived returns true if the value comes from the symbol table.
// Derived values are truncated to fit, rather than rejected.
func (expr Expr) Derived() bool {
	switch expr.Kind {
	case EXPR_LABEL, EXPR_CURRENT, EXPR_SCRIPT:
		return true
	}
	return false
}

func (expr Expr) String() string {
	var base string
	switch expr.Kind {
	case EXPR_NUMBER:
		return fmt.Sprintf("0x%X", expr.Value)
	case EXPR_STRING:
		return strconv.Quote(string(expr.Bytes))
	case EXPR_SCRIPT:
		return "$(" + expr.Script + ")"
	case EXPR_CURRENT:
		base = "$"
	default:
		base = expr.Label
	}

	switch {
	case expr.Offset > 0:
		return fmt.Sprintf("%v+%d", base, expr.Offset)
	case expr.Offset < 0:
		return fmt.Sprintf("%v-%d", base, -expr.Offset)
	}

	return base
}

// Operand is an instruction operand as written.
type Operand struct {
	Syntax   Syntax
	Register cpu.Register // SYNTAX_REGISTER
	Expr     Expr         // SYNTAX_ADDRESS, SYNTAX_IMMEDIATE
}

func (op Operand) String() string {
	switch op.Syntax {
	case SYNTAX_REGISTER:
		return op.Register.String()
	case SYNTAX_IMMEDIATE:
		return "#" + op.Expr.String()
	default:
		return op.Expr.String()
	}
}

// Statement is one parsed source statement.
type Statement struct {
	Kind     Kind
	LineNo   int    // Source line number.
	Line     string // Source line text.
	Label    string // STATEMENT_LABEL
	Mnemonic cpu.Mnemonic
	Operands []Operand // STATEMENT_INSTRUCTION
	Items    []Expr    // STATEMENT_ORG, STATEMENT_FCB, STATEMENT_FDB, STATEMENT_RMB

	// Assigned by symbol resolution.
	Address     uint16
	Size        int
	Instruction cpu.Instruction

	// Assigned by encoding.
	Data []byte
}

func (stmt *Statement) String() string {
	var words []string

	switch stmt.Kind {
	case STATEMENT_LABEL:
		return ":" + stmt.Label
	case STATEMENT_INSTRUCTION:
		words = append(words, stmt.Mnemonic.String())
		for _, op := range stmt.Operands {
			words = append(words, op.String())
		}
	default:
		words = append(words, stmt.Kind.String())
		for _, item := range stmt.Items {
			words = append(words, item.String())
		}
	}

	return strings.Join(words, " ")
}

// Contains returns true if addr is one of the bytes the statement emits.
func (stmt *Statement) Contains(addr uint16) bool {
	return stmt.Size > 0 && int(addr) >= int(stmt.Address) && int(addr) < int(stmt.Address)+stmt.Size
}

// parseNumber parses an unsigned literal. Prefixes: 0x hex, ! binary,
// a leading 0 octal, and decimal otherwise.
func parseNumber(text string) (value uint64, err error) {
	digits := text
	base := 10

	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		digits = text[2:]
		base = 16
	case strings.HasPrefix(text, "!"):
		digits = text[1:]
		base = 2
	case len(text) > 1 && text[0] == '0':
		digits = text[1:]
		base = 8
	}

	value, err = strconv.ParseUint(digits, base, 64)
	if err != nil {
		err = ErrNumber(text)
	}

	return
}

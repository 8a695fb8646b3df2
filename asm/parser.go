package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/asml/cpu"
)

// ParseStatements consumes the lexer's tokens into the ordered statement
// sequence. Every malformed line is reported, joined into one error.
func ParseStatements(lex *Lexer) (stmts []Statement, err error) {
	stmts, errs := parseStatements(lex)
	err = errors.Join(errs...)
	return
}

// parseStatements parses line by line, collecting an ErrSyntax per bad line.
func parseStatements(lex *Lexer) (stmts []Statement, errs []error) {
	var line []Token

	for tok := range lex.Tokens() {
		if tok.Kind == TOKEN_EOF {
			break
		}
		if tok.Kind != TOKEN_EOL {
			line = append(line, tok)
			continue
		}

		text := strings.TrimSpace(lex.Line(tok.LineNo))
		parsed, err := parseLine(line, tok)
		line = line[:0]
		if err != nil {
			errs = append(errs, ErrSyntax{LineNo: tok.LineNo, Line: text, Err: err})
			continue
		}

		for n := range parsed {
			parsed[n].LineNo = tok.LineNo
			parsed[n].Line = text
		}
		stmts = append(stmts, parsed...)
	}

	if err := lex.Err(); err != nil {
		errs = append(errs, err)
	}

	return
}

// parser walks the tokens of a single line.
type parser struct {
	tokens []Token
	eol    Token
	pos    int
}

func (p *parser) peek() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.eol
}

func (p *parser) next() (tok Token) {
	tok = p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return
}

// accept consumes the next token if it is of the given kind.
func (p *parser) accept(kind TokenKind) bool {
	if p.peek().Kind != kind {
		return false
	}
	p.pos++
	return true
}

// parseLine parses: {:label} [mnemonic operands | directive items]
func parseLine(tokens []Token, eol Token) (stmts []Statement, err error) {
	p := &parser{tokens: tokens, eol: eol}

	for p.peek().Kind == TOKEN_LABEL {
		tok := p.next()
		stmts = append(stmts, Statement{Kind: STATEMENT_LABEL, Label: tok.Text})
	}

	tok := p.next()
	switch tok.Kind {
	case TOKEN_EOL:
		return
	case TOKEN_MNEMONIC:
		mn, _ := cpu.ParseMnemonic(tok.Text)
		stmt := Statement{Kind: STATEMENT_INSTRUCTION, Mnemonic: mn}
		stmt.Operands, err = p.operands()
		stmts = append(stmts, stmt)
	case TOKEN_DIRECTIVE:
		kind, _ := ParseDirective(tok.Text)
		stmt := Statement{Kind: kind}
		stmt.Items, err = p.items(kind)
		stmts = append(stmts, stmt)
	default:
		err = ErrToken(tok)
	}
	if err != nil {
		stmts = nil
		return
	}

	if tok := p.next(); tok.Kind != TOKEN_EOL {
		stmts = nil
		err = ErrToken(tok)
	}

	return
}

// operands parses instruction operands, separated by spaces or commas.
func (p *parser) operands() (ops []Operand, err error) {
	for p.peek().Kind != TOKEN_EOL {
		if len(ops) > 0 {
			p.accept(TOKEN_COMMA)
		}

		var op Operand
		op, err = p.operand()
		if err != nil {
			return
		}
		ops = append(ops, op)
	}

	return
}

// operand parses a register, an immediate, or an address.
func (p *parser) operand() (op Operand, err error) {
	tok := p.peek()
	switch tok.Kind {
	case TOKEN_REGISTER:
		p.next()
		op.Syntax = SYNTAX_REGISTER
		op.Register, _ = cpu.ParseRegister(tok.Text)
	case TOKEN_IMMEDIATE:
		p.next()
		op.Syntax = SYNTAX_IMMEDIATE
		op.Expr, err = p.value()
	default:
		op.Syntax = SYNTAX_ADDRESS
		op.Expr, err = p.address()
	}

	return
}

// value parses a string or an address expression.
func (p *parser) value() (expr Expr, err error) {
	if tok := p.peek(); tok.Kind == TOKEN_STRING {
		p.next()
		expr = Expr{Kind: EXPR_STRING, Bytes: []byte(tok.Text)}
		return
	}

	return p.address()
}

// address parses a number, a label or $ with an optional offset,
// or a $( ... ) expression.
func (p *parser) address() (expr Expr, err error) {
	tok := p.next()
	switch tok.Kind {
	case TOKEN_NUMBER:
		expr.Kind = EXPR_NUMBER
		expr.Value, err = parseNumber(tok.Text)
	case TOKEN_EXPR:
		expr.Kind = EXPR_SCRIPT
		expr.Script = tok.Text
	case TOKEN_IDENT:
		expr.Kind = EXPR_LABEL
		expr.Label = tok.Text
		expr.Offset, err = p.offset()
	case TOKEN_CURRENT:
		expr.Kind = EXPR_CURRENT
		expr.Offset, err = p.offset()
	default:
		err = ErrToken(tok)
	}

	return
}

// offset parses an optional +N or -N.
func (p *parser) offset() (offset int, err error) {
	sign := 1
	switch p.peek().Kind {
	case TOKEN_PLUS:
	case TOKEN_MINUS:
		sign = -1
	default:
		return
	}
	p.next()

	tok := p.next()
	if tok.Kind != TOKEN_NUMBER {
		err = errors.Join(ErrOffsetMissing, ErrToken(tok))
		return
	}

	value, err := parseNumber(tok.Text)
	if err != nil {
		return
	}
	if value > 0xFFFF {
		err = ErrNumber(tok.Text)
		return
	}

	offset = sign * int(value)

	return
}

// items parses the arguments of a directive.
func (p *parser) items(kind Kind) (items []Expr, err error) {
	var item Expr

	switch kind {
	case STATEMENT_ORG:
		item, err = p.address()
		items = append(items, item)
	case STATEMENT_RMB:
		tok := p.next()
		if tok.Kind != TOKEN_NUMBER {
			err = ErrToken(tok)
			return
		}
		item.Kind = EXPR_NUMBER
		item.Value, err = parseNumber(tok.Text)
		items = append(items, item)
	case STATEMENT_FCB, STATEMENT_FDB:
		if p.peek().Kind == TOKEN_EOL {
			err = ErrOperandMissing
			return
		}
		for p.peek().Kind != TOKEN_EOL {
			if len(items) > 0 {
				p.accept(TOKEN_COMMA)
			}
			item, err = p.value()
			if err != nil {
				return
			}
			items = append(items, item)
		}
	}

	return
}

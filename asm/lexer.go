// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"iter"
	"log"

	"github.com/ezrec/asml/cpu"
)

// escapes maps string escape characters to their byte values.
var escapes = map[byte]byte{
	'\\': '\\',
	'"':  '"',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'e':  '\033',
	'0':  0,
}

// Lexer splits assembly source into tokens, reading a line at a time.
type Lexer struct {
	Verbose bool     // If set, logs each source line as it is read.
	Lines   []string // Source lines read so far.

	scanner *bufio.Scanner
	err     error
}

// NewLexer creates a lexer over the input.
func NewLexer(input io.Reader) (lex *Lexer) {
	lex = &Lexer{
		scanner: bufio.NewScanner(input),
	}

	return
}

// Err returns the read error that ended the token sequence, if any.
func (lex *Lexer) Err() error {
	return lex.err
}

// Line returns the text of a source line, by 1-based line number.
func (lex *Lexer) Line(lineno int) string {
	if lineno < 1 || lineno > len(lex.Lines) {
		return ""
	}
	return lex.Lines[lineno-1]
}

// Tokens lazily tokenizes the input. Comments are stripped, every line
// ends with a TOKEN_EOL, and the sequence ends with a TOKEN_EOF.
func (lex *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(tok Token) bool) {
		lineno := 0
		for lex.scanner.Scan() {
			text := lex.scanner.Text()
			lineno++
			lex.Lines = append(lex.Lines, text)

			if lex.Verbose {
				log.Printf("%v: %v\n", lineno, text)
			}

			for tok := range lexLine(text, lineno) {
				if !yield(tok) {
					return
				}
			}
		}

		lex.err = lex.scanner.Err()

		yield(Token{Kind: TOKEN_EOF, LineNo: lineno})
	}
}

// lexLine tokenizes a single line.
func lexLine(text string, lineno int) iter.Seq[Token] {
	return func(yield func(tok Token) bool) {
		pos := 0
		for {
			for pos < len(text) && isSpace(text[pos]) {
				pos++
			}
			if pos >= len(text) || text[pos] == ';' {
				break
			}

			tok, next := scanToken(text, pos)
			tok.LineNo = lineno
			tok.Col = pos + 1
			if !yield(tok) {
				return
			}
			pos = next
		}

		yield(Token{Kind: TOKEN_EOL, LineNo: lineno, Col: len(text) + 1})
	}
}

// scanToken scans the token starting at pos.
func scanToken(text string, pos int) (tok Token, next int) {
	ch := text[pos]
	next = pos + 1

	switch {
	case ch == ',':
		tok.Kind = TOKEN_COMMA
	case ch == '+':
		tok.Kind = TOKEN_PLUS
	case ch == '-':
		tok.Kind = TOKEN_MINUS
	case ch == '#':
		tok.Kind = TOKEN_IMMEDIATE
	case ch == ':':
		next = scanWord(text, pos+1)
		if next == pos+1 {
			tok.Kind = TOKEN_ILLEGAL
			break
		}
		tok.Kind = TOKEN_LABEL
		tok.Text = text[pos+1 : next]
		return
	case ch == '%':
		next = scanWord(text, pos+1)
		tok.Kind = TOKEN_ILLEGAL
		if _, ok := cpu.ParseRegister(text[pos:next]); ok {
			tok.Kind = TOKEN_REGISTER
		}
	case ch == '"':
		return scanString(text, pos)
	case ch == '$':
		if next < len(text) && text[next] == '(' {
			return scanExpr(text, pos)
		}
		tok.Kind = TOKEN_CURRENT
	case isDigit(ch) || ch == '!':
		next = scanWord(text, pos+1)
		tok.Kind = TOKEN_NUMBER
	case isLetter(ch):
		next = scanWord(text, pos)
		tok.Kind = TOKEN_IDENT
		word := text[pos:next]
		if _, ok := cpu.ParseMnemonic(word); ok {
			tok.Kind = TOKEN_MNEMONIC
		} else if _, ok := ParseDirective(word); ok {
			tok.Kind = TOKEN_DIRECTIVE
		}
	default:
		tok.Kind = TOKEN_ILLEGAL
	}

	tok.Text = text[pos:next]

	return
}

// scanWord returns the end of the identifier characters starting at pos.
func scanWord(text string, pos int) int {
	for pos < len(text) && (isLetter(text[pos]) || isDigit(text[pos])) {
		pos++
	}
	return pos
}

// scanString scans a double quoted string, decoding escapes.
func scanString(text string, pos int) (tok Token, next int) {
	var data []byte

	for n := pos + 1; n < len(text); n++ {
		ch := text[n]
		switch ch {
		case '"':
			tok = Token{Kind: TOKEN_STRING, Text: string(data)}
			next = n + 1
			return
		case '\\':
			n++
			if n >= len(text) {
				break
			}
			esc, ok := escapes[text[n]]
			if !ok {
				tok = Token{Kind: TOKEN_ILLEGAL, Text: text[pos : n+1]}
				next = n + 1
				return
			}
			data = append(data, esc)
		default:
			data = append(data, ch)
		}
	}

	// Unterminated.
	tok = Token{Kind: TOKEN_ILLEGAL, Text: text[pos:]}
	next = len(text)

	return
}

// scanExpr scans a $( ... ) expression, balancing parentheses.
func scanExpr(text string, pos int) (tok Token, next int) {
	depth := 0
	for n := pos + 1; n < len(text); n++ {
		switch text[n] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				tok = Token{Kind: TOKEN_EXPR, Text: text[pos+2 : n]}
				next = n + 1
				return
			}
		}
	}

	tok = Token{Kind: TOKEN_ILLEGAL, Text: text[pos:]}
	next = len(text)

	return
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

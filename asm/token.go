package asm

import (
	"fmt"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_EOF       = TokenKind(0)  // end of file
	TOKEN_EOL       = TokenKind(1)  // end of line
	TOKEN_ILLEGAL   = TokenKind(2)  // illegal
	TOKEN_MNEMONIC  = TokenKind(3)  // mnemonic
	TOKEN_DIRECTIVE = TokenKind(4)  // directive
	TOKEN_IDENT     = TokenKind(5)  // label reference
	TOKEN_LABEL     = TokenKind(6)  // label definition
	TOKEN_REGISTER  = TokenKind(7)  // register
	TOKEN_IMMEDIATE = TokenKind(8)  // #
	TOKEN_NUMBER    = TokenKind(9)  // number
	TOKEN_STRING    = TokenKind(10) // string
	TOKEN_CURRENT   = TokenKind(11) // $
	TOKEN_EXPR      = TokenKind(12) // expression
	TOKEN_PLUS      = TokenKind(13) // +
	TOKEN_MINUS     = TokenKind(14) // -
	TOKEN_COMMA     = TokenKind(15) // ,
)

// Token is a lexical element of the source.
// Text is the raw source text, except for strings, where it is the
// unescaped contents, and for expressions, where it is the text between
// the parentheses.
type Token struct {
	Kind   TokenKind
	Text   string
	LineNo int
	Col    int
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_EOF, TOKEN_EOL:
		return tok.Kind.String()
	case TOKEN_STRING:
		return fmt.Sprintf("%q", tok.Text)
	case TOKEN_EXPR:
		return "$(" + tok.Text + ")"
	default:
		return tok.Text
	}
}

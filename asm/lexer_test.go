package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_Tokens(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		":loop ADD %1, #0x10 ; comment",
		"  fcb \"a\\n\", $+2, $(PC * (2 + 1))",
		"%E @ \"open",
	}

	type expect struct {
		kind TokenKind
		text string
	}

	table := []expect{
		{TOKEN_LABEL, "loop"},
		{TOKEN_MNEMONIC, "ADD"},
		{TOKEN_REGISTER, "%1"},
		{TOKEN_COMMA, ","},
		{TOKEN_IMMEDIATE, "#"},
		{TOKEN_NUMBER, "0x10"},
		{TOKEN_EOL, ""},
		{TOKEN_DIRECTIVE, "fcb"},
		{TOKEN_STRING, "a\n"},
		{TOKEN_COMMA, ","},
		{TOKEN_CURRENT, "$"},
		{TOKEN_PLUS, "+"},
		{TOKEN_NUMBER, "2"},
		{TOKEN_COMMA, ","},
		{TOKEN_EXPR, "PC * (2 + 1)"},
		{TOKEN_EOL, ""},
		{TOKEN_ILLEGAL, "%E"},
		{TOKEN_ILLEGAL, "@"},
		{TOKEN_ILLEGAL, "\"open"},
		{TOKEN_EOL, ""},
		{TOKEN_EOF, ""},
	}

	lex := NewLexer(strings.NewReader(strings.Join(source, "\n")))

	var got []expect
	var toks []Token
	for tok := range lex.Tokens() {
		got = append(got, expect{tok.Kind, tok.Text})
		toks = append(toks, tok)
	}
	assert.Equal(table, got)
	assert.NoError(lex.Err())

	assert.Equal(1, toks[0].Col)
	assert.Equal(7, toks[1].Col)
	assert.Equal(2, toks[7].LineNo)
	assert.Equal(3, toks[7].Col)

	assert.Equal(3, len(lex.Lines))
	assert.Equal("%E @ \"open", lex.Line(3))
	assert.Equal("", lex.Line(99))
}

func TestLexer_Escapes(t *testing.T) {
	assert := assert.New(t)

	lex := NewLexer(strings.NewReader(`"\\\"\r\t\e\0" "\q"`))

	var toks []Token
	for tok := range lex.Tokens() {
		toks = append(toks, tok)
	}

	assert.Equal(TOKEN_STRING, toks[0].Kind)
	assert.Equal("\\\"\r\t\033\x00", toks[0].Text)
	assert.Equal(TOKEN_ILLEGAL, toks[1].Kind)
	assert.Equal(`"\q`, toks[1].Text)
}

func TestLexer_Lazy(t *testing.T) {
	assert := assert.New(t)

	lex := NewLexer(strings.NewReader("NOOP\nHALT\nRTN\n"))
	for tok := range lex.Tokens() {
		if tok.Kind == TOKEN_EOL {
			break
		}
	}

	assert.Equal([]string{"NOOP"}, lex.Lines)
}

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text  string
		value uint64
		ok    bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"0x1F", 0x1F, true},
		{"0XfF", 0xFF, true},
		{"017", 0o17, true},
		{"!101", 5, true},
		{"09", 0, false},
		{"0xZZ", 0, false},
		{"!102", 0, false},
		{"12ab", 0, false},
	}

	for _, entry := range table {
		value, err := parseNumber(entry.text)
		if entry.ok {
			assert.NoError(err, entry.text)
			assert.Equal(entry.value, value, entry.text)
		} else {
			assert.True(errors.Is(err, ErrNumber("")), entry.text)
		}
	}
}

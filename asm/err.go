package asm

import (
	"errors"

	"github.com/ezrec/asml/translate"
)

var f = translate.From

var (
	// Resolution errors
	ErrAddressOverflow = errors.New(f("address past 0xFFFF"))

	// Parse errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOffsetMissing  = errors.New(f("label offset missing"))

	// Expression errors
	ErrNotInteger = errors.New(f("not an integer"))
)

// ErrSyntax locates an error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrToken is a token that the grammar does not allow where it appears.
type ErrToken Token

func (err ErrToken) Error() string {
	switch err.Kind {
	case TOKEN_EOL, TOKEN_EOF:
		return f("unexpected %v at column %d", err.Kind, err.Col)
	}
	return f("unexpected %v '%v' at column %d", err.Kind, Token(err).String(), err.Col)
}

func (err ErrToken) Is(target error) (ok bool) {
	_, ok = target.(ErrToken)
	return
}

// ErrNumber is a malformed numeric literal.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("invalid number %v", string(err))
}

func (err ErrNumber) Is(target error) (ok bool) {
	_, ok = target.(ErrNumber)
	return
}

// ErrLabelDuplicate is a label bound more than once.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(err))
}

func (err ErrLabelDuplicate) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelDuplicate)
	return
}

// ErrLabelUndefined is a reference to a label that is never bound.
type ErrLabelUndefined string

func (err ErrLabelUndefined) Error() string {
	return f("label %v undefined", string(err))
}

func (err ErrLabelUndefined) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelUndefined)
	return
}

// ErrEncoding is a statement that cannot be encoded, either because no
// opcode table entry matches its operands or because a value does not fit.
type ErrEncoding struct {
	Op     string // Mnemonic or directive.
	Reason string
}

func (err ErrEncoding) Error() string {
	return f("%v: cannot encode: %v", err.Op, err.Reason)
}

func (err ErrEncoding) Is(target error) (ok bool) {
	_, ok = target.(ErrEncoding)
	return
}

// ErrSectionOverlap is an address emitted by more than one statement.
type ErrSectionOverlap uint16

func (err ErrSectionOverlap) Error() string {
	return f("address 0x%04X emitted twice", uint16(err))
}

func (err ErrSectionOverlap) Is(target error) (ok bool) {
	_, ok = target.(ErrSectionOverlap)
	return
}

// ErrExpression is a $( ... ) expression that failed to evaluate to an integer.
type ErrExpression struct {
	Script string
	Err    error
}

func (err ErrExpression) Error() string {
	return f("expression $(%v): %v", err.Script, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

func (err ErrExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrExpression)
	return
}

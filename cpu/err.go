package cpu

import (
	"errors"

	"github.com/ezrec/asml/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted      = errors.New(f("cpu halted"))
	ErrNotLoaded   = errors.New(f("no program loaded"))
	ErrResetVector = errors.New(f("reset vector 0xFFFE-0xFFFF missing from image"))
	ErrPrinter     = errors.New(f("printer"))

	// Instruction encode errors
	ErrFieldCount = errors.New(f("wrong number of operands"))
)

// ErrIllegalOpcode is an opcode byte absent from the opcode table.
type ErrIllegalOpcode struct {
	Address uint16
	Opcode  byte
}

func (err ErrIllegalOpcode) Error() string {
	return f("illegal opcode 0x%02X at 0x%04X", err.Opcode, err.Address)
}

func (err ErrIllegalOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrIllegalOpcode)
	return
}

// ErrIllegalRegister is a register operand byte that names no register.
type ErrIllegalRegister struct {
	Address  uint16
	Register byte
}

func (err ErrIllegalRegister) Error() string {
	return f("illegal register 0x%02X in instruction at 0x%04X", err.Register, err.Address)
}

func (err ErrIllegalRegister) Is(target error) (ok bool) {
	_, ok = target.(ErrIllegalRegister)
	return
}

// ErrFieldRange is an operand value that does not fit its field.
type ErrFieldRange struct {
	Field Field
	Value uint16
}

func (err ErrFieldRange) Error() string {
	return f("%v operand 0x%X out of range", err.Field, err.Value)
}

func (err ErrFieldRange) Is(target error) (ok bool) {
	_, ok = target.(ErrFieldRange)
	return
}

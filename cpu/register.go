package cpu

import (
	"fmt"
	"strings"
)

// Register is a register index, as encoded in an instruction.
type Register byte

const (
	REG_0 = Register(0x0)
	REG_1 = Register(0x1)
	REG_2 = Register(0x2)
	REG_3 = Register(0x3)
	REG_4 = Register(0x4)
	REG_5 = Register(0x5)
	REG_6 = Register(0x6)
	REG_7 = Register(0x7)
	REG_8 = Register(0x8)
	REG_9 = Register(0x9)
	REG_A = Register(0xA) // %2:%3
	REG_B = Register(0xB) // %4:%5
	REG_C = Register(0xC) // %6:%7
	REG_D = Register(0xD) // %8:%9
)

// ParseRegister parses a register name such as "%3" or "%b".
func ParseRegister(name string) (reg Register, ok bool) {
	if len(name) != 2 || name[0] != '%' {
		return
	}

	switch ch := name[1]; {
	case ch >= '0' && ch <= '9':
		reg = Register(ch - '0')
	case ch >= 'A' && ch <= 'D':
		reg = Register(ch-'A') + REG_A
	case ch >= 'a' && ch <= 'd':
		reg = Register(ch-'a') + REG_A
	default:
		return
	}

	ok = true
	return
}

// Valid returns true if the register exists.
func (reg Register) Valid() bool {
	return reg <= REG_D
}

// Wide returns true for the 16-bit overlay registers.
func (reg Register) Wide() bool {
	return reg >= REG_A && reg <= REG_D
}

// Width returns the register width in bytes.
func (reg Register) Width() int {
	if reg.Wide() {
		return 2
	}
	return 1
}

// Mask returns the largest value the register holds.
func (reg Register) Mask() uint16 {
	if reg.Wide() {
		return 0xffff
	}
	return 0xff
}

func (reg Register) String() string {
	if !reg.Valid() {
		return fmt.Sprintf("%%?%02X", byte(reg))
	}
	return "%" + strings.ToUpper(fmt.Sprintf("%x", byte(reg)))
}

// Registers is the register file. Only the ten 8-bit cells have storage;
// the overlay registers are views onto cell pairs.
type Registers [10]uint8

// overlay returns the high and low cells backing a wide register.
func overlay(reg Register) (hi, lo int) {
	hi = 2 + 2*int(reg-REG_A)
	lo = hi + 1
	return
}

// Get returns the value of a register.
func (regs *Registers) Get(reg Register) uint16 {
	if reg.Wide() {
		hi, lo := overlay(reg)
		return uint16(regs[hi])<<8 | uint16(regs[lo])
	}

	return uint16(regs[reg])
}

// Set stores a value to a register, truncated to the register width.
func (regs *Registers) Set(reg Register, value uint16) {
	if reg.Wide() {
		hi, lo := overlay(reg)
		regs[hi] = uint8(value >> 8)
		regs[lo] = uint8(value)
		return
	}

	regs[reg] = uint8(value)
}

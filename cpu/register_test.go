package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name string
		reg  Register
		ok   bool
	}{
		{"%0", REG_0, true},
		{"%9", REG_9, true},
		{"%A", REG_A, true},
		{"%d", REG_D, true},
		{"%E", 0, false},
		{"%10", 0, false},
		{"R1", 0, false},
		{"%", 0, false},
	}

	for _, entry := range table {
		reg, ok := ParseRegister(entry.name)
		assert.Equal(entry.ok, ok, entry.name)
		if ok {
			assert.Equal(entry.reg, reg, entry.name)
		}
	}
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("%1", REG_1.String())
	assert.Equal("%B", REG_B.String())
	assert.Equal("%?0E", Register(0xE).String())
}

func TestRegisters_Overlay(t *testing.T) {
	assert := assert.New(t)

	pairs := []struct {
		wide   Register
		hi, lo Register
	}{
		{REG_A, REG_2, REG_3},
		{REG_B, REG_4, REG_5},
		{REG_C, REG_6, REG_7},
		{REG_D, REG_8, REG_9},
	}

	for _, pair := range pairs {
		var regs Registers

		regs.Set(pair.wide, 0x1234)
		assert.Equal(uint16(0x12), regs.Get(pair.hi), pair.wide.String())
		assert.Equal(uint16(0x34), regs.Get(pair.lo), pair.wide.String())

		regs.Set(pair.hi, 0xAB)
		regs.Set(pair.lo, 0xCD)
		assert.Equal(uint16(0xABCD), regs.Get(pair.wide), pair.wide.String())
	}
}

func TestRegisters_Truncate(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs.Set(REG_1, 0x1FF)
	assert.Equal(uint16(0xFF), regs.Get(REG_1))

	regs.Set(REG_0, 0x100)
	assert.Equal(uint16(0), regs.Get(REG_0))
}

package cpu

import (
	"iter"
	"slices"
	"strings"
)

// Mnemonic is an instruction name.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MN_NOOP  = Mnemonic(0)  // NOOP
	MN_ADD   = Mnemonic(1)  // ADD
	MN_AND   = Mnemonic(2)  // AND
	MN_OR    = Mnemonic(3)  // OR
	MN_XOR   = Mnemonic(4)  // XOR
	MN_ROTR  = Mnemonic(5)  // ROTR
	MN_ROTL  = Mnemonic(6)  // ROTL
	MN_CALL  = Mnemonic(7)  // CALL
	MN_RTN   = Mnemonic(8)  // RTN
	MN_HALT  = Mnemonic(9)  // HALT
	MN_JMP   = Mnemonic(10) // JMP
	MN_JMPA  = Mnemonic(11) // JMPA
	MN_LDSP  = Mnemonic(12) // LDSP
	MN_LOAD  = Mnemonic(13) // LOAD
	MN_STR   = Mnemonic(14) // STR
	MN_XFER  = Mnemonic(15) // XFER
	MN_POP   = Mnemonic(16) // POP
	MN_PUSH  = Mnemonic(17) // PUSH
	MN_DEBUG = Mnemonic(18) // DEBUG
)

// ParseMnemonic looks up a mnemonic by name, ignoring case.
func ParseMnemonic(name string) (mn Mnemonic, ok bool) {
	name = strings.ToUpper(name)
	for mn = MN_NOOP; mn <= MN_DEBUG; mn++ {
		if mn.String() == name {
			ok = true
			return
		}
	}

	return
}

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_INH = Mode(0) // inh
	MODE_ADD = Mode(1) // add
	MODE_IMM = Mode(2) // imm
	MODE_REG = Mode(3) // reg
)

// Field is the encoding of one operand in the bytes following an opcode.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_REG   = Field(0) // reg
	FIELD_ADDR  = Field(1) // addr
	FIELD_IMM   = Field(2) // imm
	FIELD_COUNT = Field(3) // count
)

// Width returns the number of bytes the field occupies.
func (field Field) Width() int {
	switch field {
	case FIELD_ADDR, FIELD_IMM:
		return 2
	default:
		return 1
	}
}

// Instruction is an entry in the opcode table.
type Instruction struct {
	Mnemonic Mnemonic
	Mode     Mode
	Opcode   byte
	Fields   []Field
}

// Width returns the encoded size of the instruction, in bytes.
func (ins Instruction) Width() (width int) {
	width = 1
	for _, field := range ins.Fields {
		width += field.Width()
	}

	return
}

var (
	fieldsRegAddr  = []Field{FIELD_REG, FIELD_ADDR}
	fieldsRegImm   = []Field{FIELD_REG, FIELD_IMM}
	fieldsRegReg   = []Field{FIELD_REG, FIELD_REG}
	fieldsRegCount = []Field{FIELD_REG, FIELD_COUNT}
	fieldsReg      = []Field{FIELD_REG}
	fieldsAddr     = []Field{FIELD_ADDR}
	fieldsImm      = []Field{FIELD_IMM}
)

// Instructions is the opcode table, in opcode order.
var Instructions = []Instruction{
	{MN_NOOP, MODE_INH, 0x00, nil},
	{MN_ADD, MODE_ADD, 0x01, fieldsRegAddr},
	{MN_ADD, MODE_IMM, 0x02, fieldsRegImm},
	{MN_ADD, MODE_REG, 0x03, fieldsRegReg},
	{MN_AND, MODE_ADD, 0x04, fieldsRegAddr},
	{MN_AND, MODE_IMM, 0x05, fieldsRegImm},
	{MN_AND, MODE_REG, 0x06, fieldsRegReg},
	{MN_OR, MODE_ADD, 0x07, fieldsRegAddr},
	{MN_OR, MODE_IMM, 0x08, fieldsRegImm},
	{MN_OR, MODE_REG, 0x09, fieldsRegReg},
	{MN_XOR, MODE_ADD, 0x0A, fieldsRegAddr},
	{MN_XOR, MODE_IMM, 0x0B, fieldsRegImm},
	{MN_XOR, MODE_REG, 0x0C, fieldsRegReg},
	{MN_ROTR, MODE_REG, 0x0D, fieldsRegCount},
	{MN_ROTL, MODE_REG, 0x0E, fieldsRegCount},
	{MN_CALL, MODE_ADD, 0x0F, fieldsAddr},
	{MN_CALL, MODE_REG, 0x10, fieldsReg},
	{MN_RTN, MODE_INH, 0x11, nil},
	{MN_HALT, MODE_INH, 0x12, nil},
	{MN_JMP, MODE_REG, 0x13, fieldsRegAddr},
	{MN_JMPA, MODE_ADD, 0x14, fieldsAddr},
	{MN_LDSP, MODE_ADD, 0x15, fieldsAddr},
	{MN_LDSP, MODE_IMM, 0x16, fieldsImm},
	{MN_LDSP, MODE_REG, 0x17, fieldsReg},
	{MN_LOAD, MODE_ADD, 0x18, fieldsRegAddr},
	{MN_LOAD, MODE_IMM, 0x19, fieldsRegImm},
	{MN_LOAD, MODE_REG, 0x1A, fieldsRegReg},
	{MN_STR, MODE_ADD, 0x1B, fieldsRegAddr},
	{MN_STR, MODE_REG, 0x1C, fieldsRegReg},
	{MN_XFER, MODE_REG, 0x1D, fieldsRegReg},
	{MN_POP, MODE_REG, 0x1E, fieldsReg},
	{MN_PUSH, MODE_REG, 0x1F, fieldsReg},
	{MN_DEBUG, MODE_INH, 0x20, nil},
}

// opcodeMap is the reverse of Instructions.
var opcodeMap = func() (table [256]*Instruction) {
	for n := range Instructions {
		ins := &Instructions[n]
		table[ins.Opcode] = ins
	}
	return
}()

// Decode returns the opcode table entry for an opcode byte.
func Decode(opcode byte) (ins Instruction, ok bool) {
	entry := opcodeMap[opcode]
	if entry == nil {
		return
	}

	return *entry, true
}

// Variants iterates the opcode table entries of a mnemonic.
func Variants(mn Mnemonic) iter.Seq[Instruction] {
	return func(yield func(ins Instruction) bool) {
		for _, ins := range Instructions {
			if ins.Mnemonic != mn {
				continue
			}
			if !yield(ins) {
				return
			}
		}
	}
}

// Lookup finds the instruction of a mnemonic whose fields match exactly.
func Lookup(mn Mnemonic, fields ...Field) (ins Instruction, ok bool) {
	for variant := range Variants(mn) {
		if slices.Equal(variant.Fields, fields) {
			return variant, true
		}
	}

	return
}

// Encode packs the instruction and one argument per field into bytes.
// Register arguments are validated, and COUNT arguments must fit a byte.
func (ins Instruction) Encode(args ...uint16) (data []byte, err error) {
	if len(args) != len(ins.Fields) {
		err = ErrFieldCount
		return
	}

	data = make([]byte, 0, ins.Width())
	data = append(data, ins.Opcode)
	for n, field := range ins.Fields {
		arg := args[n]
		switch field {
		case FIELD_REG:
			if !Register(arg).Valid() || arg > 0xff {
				err = ErrFieldRange{Field: field, Value: arg}
				return
			}
			data = append(data, byte(arg))
		case FIELD_COUNT:
			if arg > 0xff {
				err = ErrFieldRange{Field: field, Value: arg}
				return
			}
			data = append(data, byte(arg))
		case FIELD_ADDR, FIELD_IMM:
			data = append(data, byte(arg>>8), byte(arg))
		}
	}

	return
}

// Code is a decoded instruction.
type Code struct {
	Instruction
	Address uint16   // Address of the opcode byte.
	Args    []uint16 // One argument per field.
}

// Next returns the address following the instruction.
func (code Code) Next() uint16 {
	return code.Address + uint16(code.Width())
}

// Reg returns argument n as a register.
func (code Code) Reg(n int) Register {
	return Register(code.Args[n])
}

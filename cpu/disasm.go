package cpu

import (
	"fmt"
	"strings"
)

// Disassembly is the text form of one instruction in memory.
type Disassembly struct {
	Address  uint16
	Mnemonic string
	Operands string
	Width    int // Bytes consumed.
}

func (dis Disassembly) String() string {
	if dis.Operands == "" {
		return fmt.Sprintf("%04X: %s", dis.Address, dis.Mnemonic)
	}
	return fmt.Sprintf("%04X: %s %s", dis.Address, dis.Mnemonic, dis.Operands)
}

// Disassemble renders the instruction at addr.
// An undecodable instruction renders as an FCB of its opcode byte,
// one byte wide, along with the decode error.
func Disassemble(mem *Memory, addr uint16) (dis Disassembly, err error) {
	code, err := mem.Decode(addr)
	if err != nil {
		dis = Disassembly{
			Address:  addr,
			Mnemonic: "FCB",
			Operands: fmt.Sprintf("0x%02X", mem.Peek(addr)),
			Width:    1,
		}
		return
	}

	operands := make([]string, len(code.Fields))
	for n, field := range code.Fields {
		arg := code.Args[n]
		switch field {
		case FIELD_REG:
			operands[n] = Register(arg).String()
		case FIELD_ADDR:
			operands[n] = fmt.Sprintf("0x%04X", arg)
		case FIELD_IMM:
			operands[n] = fmt.Sprintf("#0x%04X", arg)
		case FIELD_COUNT:
			operands[n] = fmt.Sprintf("#%d", arg)
		}
	}

	dis = Disassembly{
		Address:  addr,
		Mnemonic: code.Mnemonic.String(),
		Operands: strings.Join(operands, " "),
		Width:    code.Width(),
	}

	return
}

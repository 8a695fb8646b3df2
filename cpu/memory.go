package cpu

const (
	MEMORY_SIZE  = 0x10000        // Size of the address space.
	PRINTER_PORT = uint16(0xFFFD) // Write-only printer port.
	RESET_VECTOR = uint16(0xFFFE) // Big-endian initial program counter.
)

// Memory is the flat address space of the CPU.
type Memory [MEMORY_SIZE]byte

// Peek reads a byte.
func (mem *Memory) Peek(addr uint16) byte {
	return mem[addr]
}

// PeekWord reads a big-endian word. The second byte wraps past 0xFFFF.
func (mem *Memory) PeekWord(addr uint16) uint16 {
	return uint16(mem[addr])<<8 | uint16(mem[addr+1])
}

// Slice copies count bytes starting at addr, wrapping past 0xFFFF.
func (mem *Memory) Slice(addr uint16, count int) (data []byte) {
	data = make([]byte, count)
	for n := range data {
		data[n] = mem[addr+uint16(n)]
	}

	return
}

// Decode decodes the instruction at addr.
func (mem *Memory) Decode(addr uint16) (code Code, err error) {
	opcode := mem[addr]
	ins, ok := Decode(opcode)
	if !ok {
		err = ErrIllegalOpcode{Address: addr, Opcode: opcode}
		return
	}

	code = Code{
		Instruction: ins,
		Address:     addr,
		Args:        make([]uint16, len(ins.Fields)),
	}

	pos := addr + 1
	for n, field := range ins.Fields {
		switch field {
		case FIELD_REG:
			reg := Register(mem[pos])
			if !reg.Valid() {
				err = ErrIllegalRegister{Address: addr, Register: byte(reg)}
				return
			}
			code.Args[n] = uint16(reg)
		case FIELD_COUNT:
			code.Args[n] = uint16(mem[pos])
		case FIELD_ADDR, FIELD_IMM:
			code.Args[n] = mem.PeekWord(pos)
		}
		pos += uint16(field.Width())
	}

	return
}

package cpu

// The stack lives in memory at the stack pointer and grows downward.
// CALL and RTN share it with PUSH and POP.

// push stores a 1 or 2 byte value below the stack pointer.
func (cpu *Cpu) push(width int, value uint16) (err error) {
	cpu.Sp -= uint16(width)
	return cpu.store(cpu.Sp, width, value)
}

// pop loads a 1 or 2 byte value at the stack pointer.
func (cpu *Cpu) pop(width int) (value uint16) {
	value = cpu.load(cpu.Sp, width)
	cpu.Sp += uint16(width)
	return
}

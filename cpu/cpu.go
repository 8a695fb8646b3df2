// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"math/bits"

	"github.com/ezrec/asml/io"
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_EMPTY   = State(0) // empty
	STATE_LOADED  = State(1) // loaded
	STATE_RUNNING = State(2) // running
	STATE_PAUSED  = State(3) // paused
	STATE_HALTED  = State(4) // halted
)

// Cpu is the simulation context of the ASML processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Debug   bool // Set to pause at DEBUG instructions.

	Pc       uint16     // Program counter.
	Sp       uint16     // Stack pointer.
	Register Registers  // Register file.
	Memory   Memory     // Address space.
	Printer  io.Printer // Printer port output.
	State    State      // Execution state.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with no program loaded.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %04X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %04X\n", "sp", cpu.Sp)
	for reg := REG_0; reg <= REG_D; reg++ {
		if reg.Wide() {
			text += fmt.Sprintf("% 5s: %04X\n", reg, cpu.Register.Get(reg))
		} else {
			text += fmt.Sprintf("% 5s: %02X\n", reg, cpu.Register.Get(reg))
		}
	}
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)

	return
}

// Load installs a byte image into memory and resets the CPU.
// The image must supply both bytes of the reset vector.
func (cpu *Cpu) Load(rom *io.Rom) (err error) {
	_, hi := rom.Load(RESET_VECTOR)
	_, lo := rom.Load(RESET_VECTOR + 1)
	if !hi || !lo {
		err = ErrResetVector
		return
	}

	clear(cpu.Memory[:])
	for addr, value := range rom.Bytes() {
		cpu.Memory[addr] = value
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", rom.Len())
	}

	cpu.State = STATE_LOADED

	return cpu.Reset()
}

// Reset the CPU state.
// - Clears the registers, stack pointer, and printer output.
// - Zeros the tick counter.
// - Reads the reset vector into the program counter.
func (cpu *Cpu) Reset() (err error) {
	if cpu.State == STATE_EMPTY {
		err = ErrNotLoaded
		return
	}

	clear(cpu.Register[:])
	cpu.Sp = 0
	cpu.Ticks = 0
	cpu.Printer.Rewind()
	cpu.Pc = cpu.Memory.PeekWord(RESET_VECTOR)
	cpu.State = STATE_LOADED

	if cpu.Verbose {
		log.Printf("cpu: reset, pc 0x%04X", cpu.Pc)
	}

	return
}

// Start moves a loaded CPU to the running state.
func (cpu *Cpu) Start() (err error) {
	switch cpu.State {
	case STATE_EMPTY:
		err = ErrNotLoaded
	case STATE_HALTED:
		err = ErrHalted
	case STATE_LOADED, STATE_PAUSED:
		cpu.State = STATE_RUNNING
	}

	return
}

// Step fetches, decodes, and executes a single instruction.
// A paused CPU stays paused, so the debugger can single step.
// On a decode failure the program counter is left at the failing opcode.
func (cpu *Cpu) Step() (err error) {
	switch cpu.State {
	case STATE_EMPTY:
		return ErrNotLoaded
	case STATE_HALTED:
		return ErrHalted
	case STATE_LOADED:
		cpu.State = STATE_RUNNING
	}

	code, err := cpu.Memory.Decode(cpu.Pc)
	if err != nil {
		return
	}

	return cpu.Execute(code)
}

// Continue runs until the CPU pauses at a DEBUG instruction, halts, or fails.
func (cpu *Cpu) Continue() (err error) {
	err = cpu.Start()
	if err != nil {
		return
	}

	for cpu.State == STATE_RUNNING {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

// SetDebug enables or disables pausing at DEBUG instructions.
func (cpu *Cpu) SetDebug(enabled bool) {
	cpu.Debug = enabled
}

// load reads a 1 or 2 byte big-endian value from memory.
func (cpu *Cpu) load(addr uint16, width int) uint16 {
	if width == 2 {
		return cpu.Memory.PeekWord(addr)
	}
	return uint16(cpu.Memory.Peek(addr))
}

// store writes a 1 or 2 byte big-endian value to memory, high byte first.
func (cpu *Cpu) store(addr uint16, width int, value uint16) (err error) {
	if width == 2 {
		err = cpu.storeByte(addr, uint8(value>>8))
		if err != nil {
			return
		}
		addr++
	}

	return cpu.storeByte(addr, uint8(value))
}

// storeByte writes a byte, diverting stores to the printer port.
func (cpu *Cpu) storeByte(addr uint16, value uint8) (err error) {
	if addr == PRINTER_PORT {
		cpu.Memory[addr] = 0
		err = cpu.Printer.Print(value)
		if err != nil {
			err = errors.Join(ErrPrinter, err)
		}
		return
	}

	cpu.Memory[addr] = value
	return
}

// value returns the source operand of a two operand instruction.
func (cpu *Cpu) value(code Code, width int) uint16 {
	arg := code.Args[len(code.Args)-1]

	switch code.Mode {
	case MODE_ADD:
		return cpu.load(arg, width)
	case MODE_REG:
		return cpu.Register.Get(Register(arg))
	default:
		return arg
	}
}

// Execute executes a single decoded instruction. The program counter
// moves past the instruction before its effect is applied.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%04X: %v: %w", code.Address, code.Mnemonic, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04X: %v.%v %#v", code.Address, code.Mnemonic, code.Mode, code.Args)
	}

	cpu.Pc = code.Next()
	cpu.Ticks++

	regs := &cpu.Register

	switch code.Mnemonic {
	case MN_ADD, MN_AND, MN_OR, MN_XOR:
		dst := code.Reg(0)
		input := regs.Get(dst)
		value := cpu.value(code, dst.Width())
		var output uint16
		switch code.Mnemonic {
		case MN_ADD:
			output = input + value
		case MN_AND:
			output = input & value
		case MN_OR:
			output = input | value
		case MN_XOR:
			output = input ^ value
		}
		regs.Set(dst, output)
	case MN_ROTR, MN_ROTL:
		dst := code.Reg(0)
		places := int(code.Args[1])
		if code.Mnemonic == MN_ROTR {
			places = -places
		}
		if dst.Wide() {
			regs.Set(dst, bits.RotateLeft16(regs.Get(dst), places))
		} else {
			regs.Set(dst, uint16(bits.RotateLeft8(uint8(regs.Get(dst)), places)))
		}
	case MN_LOAD:
		dst := code.Reg(0)
		switch code.Mode {
		case MODE_REG:
			// Indirect: the source register holds the address.
			regs.Set(dst, cpu.load(regs.Get(code.Reg(1)), dst.Width()))
		default:
			regs.Set(dst, cpu.value(code, dst.Width()))
		}
	case MN_STR:
		src := code.Reg(0)
		addr := code.Args[1]
		if code.Mode == MODE_REG {
			addr = regs.Get(code.Reg(1))
		}
		err = cpu.store(addr, src.Width(), regs.Get(src))
	case MN_XFER:
		regs.Set(code.Reg(0), regs.Get(code.Reg(1)))
	case MN_LDSP:
		cpu.Sp = cpu.value(code, 2)
	case MN_PUSH:
		reg := code.Reg(0)
		err = cpu.push(reg.Width(), regs.Get(reg))
	case MN_POP:
		reg := code.Reg(0)
		regs.Set(reg, cpu.pop(reg.Width()))
	case MN_CALL:
		target := code.Args[0]
		if code.Mode == MODE_REG {
			target = regs.Get(code.Reg(0))
		}
		err = cpu.push(2, cpu.Pc)
		cpu.Pc = target
	case MN_RTN:
		cpu.Pc = cpu.pop(2)
	case MN_JMP:
		if regs.Get(code.Reg(0)) == regs.Get(REG_0) {
			cpu.Pc = code.Args[1]
		}
	case MN_JMPA:
		cpu.Pc = code.Args[0]
	case MN_NOOP:
		// pass
	case MN_HALT:
		cpu.State = STATE_HALTED
		if cpu.Verbose {
			log.Printf("cpu: halted at 0x%04X", code.Address)
		}
	case MN_DEBUG:
		if cpu.Debug {
			cpu.State = STATE_PAUSED
		}
	default:
		err = ErrIllegalOpcode{Address: code.Address, Opcode: code.Opcode}
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"log"

	"github.com/ezrec/asml/asm"
	"github.com/ezrec/asml/cpu"
	asmlio "github.com/ezrec/asml/io"
)

// Emulator state. CPU plus the listing of the program it runs.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Listing of the loaded program, if assembled here.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Assemble assembles source text and loads the resulting image.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &asm.Assembler{Verbose: emu.Verbose}
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	err = emu.Load(prog.Rom)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Load installs a byte image. Any previous program listing is dropped.
func (emu *Emulator) Load(rom *asmlio.Rom) (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Program = nil

	err = emu.Cpu.Load(rom)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded, pc 0x%04X", emu.Cpu.Pc)
	}

	return
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if there is no listing for it.
func (emu *Emulator) LineNo() int {
	return emu.lineNo(emu.Cpu.Pc)
}

func (emu *Emulator) lineNo(addr uint16) int {
	if emu.Program == nil {
		return 0
	}

	stmt := emu.Program.Debug(addr)
	if stmt == nil {
		return 0
	}

	return stmt.LineNo
}

// runtime annotates a CPU error with the failing address and line.
func (emu *Emulator) runtime(addr uint16, err error) error {
	if err == nil {
		return nil
	}

	return &ErrRuntime{Address: addr, LineNo: emu.lineNo(addr), Err: err}
}

// Step executes a single instruction.
func (emu *Emulator) Step() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	return emu.runtime(pc, emu.Cpu.Step())
}

// Continue runs until a DEBUG pause, a HALT, or an error.
func (emu *Emulator) Continue() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Start()
	if err != nil {
		return
	}

	for emu.Cpu.State == cpu.STATE_RUNNING {
		err = emu.Step()
		if err != nil {
			return
		}
	}

	return
}

// Run executes until HALT, ignoring DEBUG pauses.
func (emu *Emulator) Run() (err error) {
	debug := emu.Cpu.Debug
	defer emu.Cpu.SetDebug(debug)

	emu.Cpu.SetDebug(false)

	return emu.Continue()
}

// Tick performs a single step, reporting when the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu.State == cpu.STATE_HALTED {
		done = true
		return
	}

	err = emu.Step()
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED
	return
}

// Mem returns count bytes of memory starting at addr.
func (emu *Emulator) Mem(addr uint16, count int) []byte {
	return emu.Cpu.Memory.Slice(addr, count)
}

// Enable pausing at DEBUG instructions.
func (emu *Emulator) Enable() {
	emu.Cpu.SetDebug(true)
}

// Disable pausing at DEBUG instructions.
func (emu *Emulator) Disable() {
	emu.Cpu.SetDebug(false)
}

// Next disassembles the instruction at the program counter.
func (emu *Emulator) Next() (dis cpu.Disassembly, err error) {
	return cpu.Disassemble(&emu.Cpu.Memory, emu.Cpu.Pc)
}

// Source returns the source line of the instruction at the program counter,
// if the program was assembled by this emulator.
func (emu *Emulator) Source() (line string, ok bool) {
	if emu.Program == nil {
		return
	}

	stmt := emu.Program.Debug(emu.Cpu.Pc)
	if stmt == nil {
		return
	}

	return stmt.Line, true
}

// Registers returns the CPU registers as text.
func (emu *Emulator) Registers() string {
	return emu.Cpu.String()
}

// Printer returns the printer output since the last reset.
func (emu *Emulator) Printer() string {
	return emu.Cpu.Printer.String()
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package debugger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/asml/cpu"
	"github.com/ezrec/asml/emulator"
	"github.com/ezrec/asml/translate"
)

const (
	PROMPT    = "asml> " // Command prompt.
	MEM_COUNT = 16       // Default byte count of a memory dump.
	MEM_ROW   = 16       // Bytes per memory dump row.
)

// Debugger drives an emulator from an interactive terminal.
type Debugger struct {
	Verbose  bool               // If set, logs each command.
	Emulator *emulator.Emulator // Emulator under control.

	term *term.Terminal
	addr uint16 // Next address for a bare 'mem'.
}

// NewDebugger creates a debugger reading commands from, and writing
// output to, rw. rw is expected to be a terminal in raw mode, or
// anything that sends a carriage return for Enter.
func NewDebugger(emu *emulator.Emulator, rw io.ReadWriter) (dbg *Debugger) {
	dbg = &Debugger{
		Emulator: emu,
		term:     term.NewTerminal(rw, PROMPT),
	}

	return
}

// SetSize sets the terminal dimensions used for line editing.
func (dbg *Debugger) SetSize(width, height int) error {
	return dbg.term.SetSize(width, height)
}

// printf writes translated output to the terminal.
func (dbg *Debugger) printf(format string, args ...any) {
	translate.Fprintf(dbg.term, format, args...)
}

// Run reads and executes commands until 'exit' or end of input.
// Command errors are reported and do not end the session.
func (dbg *Debugger) Run() (err error) {
	for {
		var line string
		line, err = dbg.term.ReadLine()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		var done bool
		done, err = dbg.Execute(line)
		if err != nil {
			dbg.printf("error: %v\n", err)
			err = nil
		}
		if done {
			return
		}
	}
}

// Execute runs a single command line.
func (dbg *Debugger) Execute(line string) (done bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	cmd, ok := lookup(strings.ToLower(words[0]))
	if !ok {
		err = ErrCommand(words[0])
		return
	}
	args := words[1:]

	if dbg.Verbose {
		log.Printf("debugger: %v %v", cmd, args)
	}

	emu := dbg.Emulator

	switch cmd {
	case cmdStep:
		err = emu.Step()
		if err != nil {
			return
		}
		dbg.next()
	case cmdContinue:
		err = emu.Continue()
		if err != nil {
			return
		}
		dbg.printf("%v\n", emu.Cpu.State)
		if emu.Cpu.State == cpu.STATE_PAUSED {
			dbg.next()
		}
	case cmdMem:
		err = dbg.mem(args)
	case cmdEnable:
		emu.Enable()
		dbg.printf("debug enabled\n")
	case cmdDisable:
		emu.Disable()
		dbg.printf("debug disabled\n")
	case cmdNext:
		dbg.next()
	case cmdRegisters:
		dbg.printf("%s", emu.Registers())
	case cmdPrinter:
		dbg.printf("%q\n", emu.Printer())
	case cmdHelp:
		dbg.help()
	case cmdExit:
		done = true
	}

	return
}

// next shows the instruction at the program counter, with its source
// line when known.
func (dbg *Debugger) next() {
	emu := dbg.Emulator

	dis, err := emu.Next()
	text := dis.String()
	if err != nil {
		text = fmt.Sprintf("%v ; %v", text, err)
	} else if line, ok := emu.Source(); ok {
		text = fmt.Sprintf("%-28s ; %v", text, line)
	}

	dbg.printf("%s\n", text)
}

// mem dumps memory. The address defaults to the end of the last dump.
func (dbg *Debugger) mem(args []string) (err error) {
	if len(args) > 2 {
		err = ErrArgument
		return
	}

	addr := dbg.addr
	count := MEM_COUNT

	if len(args) > 0 {
		var value uint64
		value, err = strconv.ParseUint(args[0], 0, 16)
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		addr = uint16(value)
	}

	if len(args) > 1 {
		var value uint64
		value, err = strconv.ParseUint(args[1], 0, 32)
		if err != nil || value == 0 || value > cpu.MEMORY_SIZE {
			err = errors.Join(ErrArgument, err)
			return
		}
		count = int(value)
	}

	data := dbg.Emulator.Mem(addr, count)
	for len(data) > 0 {
		row := data[:min(MEM_ROW, len(data))]
		hex := make([]string, len(row))
		for n, value := range row {
			hex[n] = fmt.Sprintf("%02X", value)
		}
		dbg.printf("%04X: %s\n", addr, strings.Join(hex, " "))
		data = data[len(row):]
		addr += uint16(len(row))
	}

	dbg.addr = addr

	return
}

func (dbg *Debugger) help() {
	for _, cmd := range commands {
		name := cmd
		for short, long := range alias {
			if long == cmd && len(short) == 1 && short != "?" {
				name += "|" + short
			}
		}
		if args, ok := usage[cmd]; ok {
			name += " " + args
		}
		dbg.printf("%-24s %s\n", name, f(help[cmd]))
	}
}

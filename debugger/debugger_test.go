package debugger

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asml/cpu"
	"github.com/ezrec/asml/emulator"
)

type session struct {
	io.Reader
	io.Writer
}

var program = []string{
	":start LOAD %1 #\"H\"",
	"   STR %1 PRINTER",
	"   DEBUG",
	"   LOAD %1 #\"i\"",
	"   STR %1 PRINTER",
	"   HALT",
	"   ORG RESET",
	"   FDB start",
}

func newEmulator(t *testing.T) (emu *emulator.Emulator) {
	emu = emulator.NewEmulator()
	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return
}

// doSession runs the commands, one per Enter, and returns the terminal output.
func doSession(t *testing.T, emu *emulator.Emulator, commands ...string) string {
	input := strings.NewReader(strings.Join(commands, "\r") + "\r")
	output := &bytes.Buffer{}

	dbg := NewDebugger(emu, session{input, output})
	assert.NoError(t, dbg.Run())

	return strings.ReplaceAll(output.String(), "\r\n", "\n")
}

func TestDebugger_Session(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t)

	out := doSession(t, emu,
		"enable",
		"c",
		"printer",
		"next",
		"s",
		"registers",
		"continue",
		"p",
		"exit",
		"registers",
	)

	assert.Contains(out, PROMPT)
	assert.Contains(out, "debug enabled")
	assert.Contains(out, "paused")
	assert.Contains(out, "\"H\"")
	assert.Contains(out, "0009: LOAD %1 #0x0069")
	assert.Contains(out, "; LOAD %1 #\"i\"")
	assert.Contains(out, "000D: STR %1 0xFFFD")
	assert.Contains(out, "   %1: 69")
	assert.Contains(out, "halted")
	assert.Contains(out, "\"Hi\"")

	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
	assert.Equal(1, strings.Count(out, "state: "))
}

func TestDebugger_Disable(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t)

	out := doSession(t, emu, "disable", "continue")
	assert.Contains(out, "debug disabled")
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
	assert.Equal("Hi", emu.Printer())
}

func TestDebugger_Mem(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t)

	out := doSession(t, emu, "mem 0 4", "m", "mem 0xFFFE 2", "mem 0xFFF0 20")

	assert.Contains(out, "0000: 19 01 00 48")
	assert.Contains(out, "0004: 1B 01 FF FD 20 19 01 00 69 1B 01 FF FD 12 00 00")
	assert.Contains(out, "FFFE: 00 00")
	assert.Contains(out, "FFF0: 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00")
	assert.Contains(out, "0000: 19 01 00 48\n")
}

func TestDebugger_Errors(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t)
	dbg := NewDebugger(emu, session{strings.NewReader(""), io.Discard})

	_, err := dbg.Execute("frobnicate")
	assert.True(errors.Is(err, ErrCommand("")))

	_, err = dbg.Execute("mem zz")
	assert.True(errors.Is(err, ErrArgument))

	_, err = dbg.Execute("mem 0 0")
	assert.True(errors.Is(err, ErrArgument))

	_, err = dbg.Execute("mem 1 2 3")
	assert.True(errors.Is(err, ErrArgument))

	done, err := dbg.Execute("   ")
	assert.NoError(err)
	assert.False(done)

	done, err = dbg.Execute("Q")
	assert.NoError(err)
	assert.True(done)

	emu.Disable()
	_, err = dbg.Execute("c")
	assert.NoError(err)
	_, err = dbg.Execute("step")
	assert.True(errors.Is(err, cpu.ErrHalted))

	// Errors are reported, and the session goes on.
	out := doSession(t, emu, "bogus", "step", "help")
	assert.Contains(out, "error: unknown command \"bogus\"")
	assert.Contains(out, "error: ")
	assert.Contains(out, "continue|c")
	assert.Contains(out, "mem|m [addr] [count]")
}

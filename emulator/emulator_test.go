package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asml/cpu"
	"github.com/ezrec/asml/io"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Nil(emu.Program)
	assert.Equal(cpu.STATE_EMPTY, emu.Cpu.State)
	assert.True(errors.Is(emu.Step(), cpu.ErrNotLoaded))
}

func doAssemble(t *testing.T, program []string) (emu *Emulator) {
	emu = NewEmulator()
	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return
}

var countdown = []string{
	":start LOAD %1 #3",
	":loop",
	"   STR %1 PRINTER",
	"   ADD %1 #0xFF",
	"   JMP %1 end",
	"   JMPA loop",
	":end",
	"   HALT",
	"   ORG RESET",
	"   FDB start",
}

func TestEmulator_Countdown(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(t, countdown)
	echo := &bytes.Buffer{}
	emu.Cpu.Printer.Output = echo

	assert.NoError(emu.Run())
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
	assert.Equal("\x03\x02\x01", emu.Printer())
	assert.Equal([]byte{3, 2, 1}, echo.Bytes())
	assert.Equal(byte(0), emu.Mem(cpu.PRINTER_PORT, 1)[0])

	assert.True(errors.Is(emu.Step(), cpu.ErrHalted))
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(t, countdown)

	lines := []int{}
	done := false
	for !done {
		lines = append(lines, emu.LineNo())
		var err error
		done, err = emu.Tick()
		if !assert.NoError(err) {
			return
		}
	}

	assert.Equal([]int{1, 3, 4, 5, 6, 3, 4, 5, 6, 3, 4, 5, 8}, lines)
	assert.Equal(len(lines), emu.Cpu.Ticks)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulator_CallReturn(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(t, []string{
		":start LDSP #0x8000",
		"   CALL sub",
		"   HALT",
		":sub",
		"   LOAD %1 #\"!\"",
		"   STR %1 PRINTER",
		"   RTN",
		"   ORG RESET",
		"   FDB start",
	})

	assert.NoError(emu.Step())
	assert.Equal(uint16(0x8000), emu.Cpu.Sp)

	assert.NoError(emu.Step())
	assert.Equal(uint16(0x0007), emu.Cpu.Pc)
	assert.Equal(uint16(0x7FFE), emu.Cpu.Sp)
	assert.Equal([]byte{0x00, 0x06}, emu.Mem(0x7FFE, 2))

	assert.NoError(emu.Continue())
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
	assert.Equal(uint16(0x8000), emu.Cpu.Sp)
	assert.Equal(uint16(0x0007), emu.Cpu.Pc)
	assert.Equal("!", emu.Printer())
}

func TestEmulator_Debug(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(t, []string{
		":start LOAD %1 #1",
		"   DEBUG",
		"   LOAD %1 #2",
		"   HALT",
		"   ORG RESET",
		"   FDB start",
	})

	emu.Enable()
	assert.NoError(emu.Continue())
	assert.Equal(cpu.STATE_PAUSED, emu.Cpu.State)
	assert.Equal(uint16(1), emu.Cpu.Register.Get(cpu.REG_1))

	dis, err := emu.Next()
	assert.NoError(err)
	assert.Equal("0005: LOAD %1 #0x0002", dis.String())

	line, ok := emu.Source()
	assert.True(ok)
	assert.Equal("LOAD %1 #2", line)
	assert.Equal(3, emu.LineNo())

	assert.NoError(emu.Step())
	assert.Equal(cpu.STATE_PAUSED, emu.Cpu.State)
	assert.Equal(uint16(2), emu.Cpu.Register.Get(cpu.REG_1))

	assert.NoError(emu.Continue())
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
}

func TestEmulator_RunIgnoresDebug(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(t, []string{
		":start DEBUG",
		"   HALT",
		"   ORG RESET",
		"   FDB start",
	})

	emu.Enable()
	assert.NoError(emu.Run())
	assert.Equal(cpu.STATE_HALTED, emu.Cpu.State)
	assert.True(emu.Cpu.Debug)

	emu.Disable()
	assert.False(emu.Cpu.Debug)
}

func TestEmulator_Runtime(t *testing.T) {
	assert := assert.New(t)

	emu := doAssemble(t, []string{
		":start NOOP",
		"   FCB 0xEE",
		"   ORG RESET",
		"   FDB start",
	})

	err := emu.Continue()
	assert.True(errors.Is(err, cpu.ErrIllegalOpcode{}))

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(uint16(0x0001), rt.Address)
		assert.Equal(2, rt.LineNo)
	}

	assert.Equal(uint16(0x0001), emu.Cpu.Pc)
	assert.Equal(cpu.STATE_RUNNING, emu.Cpu.State)

	dis, err := emu.Next()
	assert.Error(err)
	assert.Equal("0001: FCB 0xEE", dis.String())
}

func TestEmulator_LoadImage(t *testing.T) {
	assert := assert.New(t)

	rom := io.NewRom()
	assert.NoError(rom.Store(0x0100, 0x19, 0x02, 0x00, 'A', 0x1B, 0x02, 0xFF, 0xFD, 0x12))
	assert.NoError(rom.Store(cpu.RESET_VECTOR, 0x01, 0x00))

	emu := NewEmulator()
	assert.NoError(emu.Load(rom))
	assert.Nil(emu.Program)
	assert.Equal(0, emu.LineNo())

	_, ok := emu.Source()
	assert.False(ok)

	assert.NoError(emu.Run())
	assert.Equal("A", emu.Printer())
	assert.Contains(emu.Registers(), "state: halted")

	empty := io.NewRom()
	assert.Equal(cpu.ErrResetVector, emu.Load(empty))
}

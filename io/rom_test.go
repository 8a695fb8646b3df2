package io

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_Store(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	assert.NoError(rom.Store(0x100, 1, 2, 3))
	assert.Equal(3, rom.Len())

	value, ok := rom.Load(0x101)
	assert.True(ok)
	assert.Equal(byte(2), value)

	_, ok = rom.Load(0x103)
	assert.False(ok)
}

func TestRom_StoreOverlap(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom()
	assert.NoError(rom.Store(0x10, 0xaa, 0xbb))

	err := rom.Store(0x11, 0xcc)
	assert.True(errors.Is(err, ErrRomOverlap(0)))
	assert.Equal(ErrRomOverlap(0x11), err)

	value, _ := rom.Load(0x11)
	assert.Equal(byte(0xcc), value)
}

func TestRom_StoreOverflow(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom()
	err := rom.Store(0xfffe, 1, 2, 3)
	assert.Equal(ErrRomOverflow, err)
	assert.Equal(2, rom.Len())

	_, ok := rom.Load(0x0000)
	assert.False(ok)
}

func TestRom_Segments(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom()
	assert.NoError(rom.Store(0xfffe, 0x01, 0x00))
	assert.NoError(rom.Store(0x0100, 0x12))
	assert.NoError(rom.Store(0x0000, 0x19, 0x01, 0x00, 0x03))

	segs := slices.Collect(rom.Segments())
	assert.Equal([]Segment{
		{Org: 0x0000, Data: []byte{0x19, 0x01, 0x00, 0x03}},
		{Org: 0x0100, Data: []byte{0x12}},
		{Org: 0xfffe, Data: []byte{0x01, 0x00}},
	}, segs)

	base, ok := rom.Base()
	assert.True(ok)
	assert.Equal(uint16(0), base)

	var addrs []uint16
	for addr := range rom.Bytes() {
		addrs = append(addrs, addr)
		if len(addrs) == 2 {
			break
		}
	}
	assert.Equal([]uint16{0, 1}, addrs)
}

func TestRom_Empty(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom()
	_, ok := rom.Base()
	assert.False(ok)
	assert.Empty(slices.Collect(rom.Segments()))
	assert.True(rom.Equal(&Rom{}))
}

func TestPrinter(t *testing.T) {
	assert := assert.New(t)

	echo := &bytes.Buffer{}
	pr := &Printer{Output: echo}

	assert.NoError(pr.Print('h'))
	assert.NoError(pr.Print('i'))
	assert.Equal("hi", pr.String())
	assert.Equal("hi", echo.String())

	pr.Rewind()
	assert.Equal("", pr.String())
	assert.Equal("hi", echo.String())
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"iter"
	"maps"
	"slices"
)

// Segment is a contiguous run of bytes in a Rom.
type Segment struct {
	Org  uint16 // Address of the first byte.
	Data []byte // Contents, in ascending address order.
}

// Rom is a sparse 64KB byte image.
type Rom struct {
	Data map[uint16]byte
}

// NewRom creates an empty Rom.
func NewRom() (rom *Rom) {
	rom = &Rom{
		Data: make(map[uint16]byte),
	}

	return
}

// Store stores data at sequential addresses starting at addr.
// Every byte is stored, even when an error is returned.
func (rom *Rom) Store(addr uint16, data ...byte) (err error) {
	if int(addr)+len(data) > 0x10000 {
		err = ErrRomOverflow
		data = data[:0x10000-int(addr)]
	}

	if rom.Data == nil {
		rom.Data = make(map[uint16]byte, len(data))
	}

	for n, value := range data {
		here := addr + uint16(n)
		_, exists := rom.Data[here]
		if exists && err == nil {
			err = ErrRomOverlap(here)
		}
		rom.Data[here] = value
	}

	return
}

// Load returns the byte at addr, if one was stored.
func (rom *Rom) Load(addr uint16) (value byte, ok bool) {
	value, ok = rom.Data[addr]
	return
}

// Len returns the number of stored bytes.
func (rom *Rom) Len() int {
	return len(rom.Data)
}

// Bytes iterates the stored bytes in ascending address order.
func (rom *Rom) Bytes() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, value byte) bool) {
		for _, addr := range slices.Sorted(maps.Keys(rom.Data)) {
			if !yield(addr, rom.Data[addr]) {
				return
			}
		}
	}
}

// Segments iterates the contiguous runs of the Rom in ascending address order.
func (rom *Rom) Segments() iter.Seq[Segment] {
	return func(yield func(seg Segment) bool) {
		var seg Segment
		for addr, value := range rom.Bytes() {
			if len(seg.Data) > 0 && int(seg.Org)+len(seg.Data) != int(addr) {
				if !yield(seg) {
					return
				}
				seg = Segment{}
			}
			if len(seg.Data) == 0 {
				seg.Org = addr
			}
			seg.Data = append(seg.Data, value)
		}
		if len(seg.Data) > 0 {
			yield(seg)
		}
	}
}

// Base returns the lowest stored address.
func (rom *Rom) Base() (addr uint16, ok bool) {
	if len(rom.Data) == 0 {
		return
	}

	return slices.Min(slices.Collect(maps.Keys(rom.Data))), true
}

// Equal returns true if both Roms store the same bytes at the same addresses.
func (rom *Rom) Equal(other *Rom) bool {
	return maps.Equal(rom.Data, other.Data)
}

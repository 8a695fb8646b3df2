package io

import (
	"errors"

	"github.com/ezrec/asml/translate"
)

var f = translate.From

var (
	// Rom errors
	ErrRomOverflow = errors.New(f("rom overflow past 0xFFFF"))
)

// ErrRomOverlap reports a Rom address that was stored twice.
type ErrRomOverlap uint16

func (err ErrRomOverlap) Error() string {
	return f("rom address 0x%04X already stored", uint16(err))
}

func (err ErrRomOverlap) Is(target error) (ok bool) {
	_, ok = target.(ErrRomOverlap)
	return
}

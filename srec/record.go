package srec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// RecordType is the digit following the 'S' of a record.
type RecordType byte

const (
	RECORD_HEADER  = RecordType(0) // Header text.
	RECORD_DATA16  = RecordType(1) // Data, 16-bit address.
	RECORD_DATA24  = RecordType(2) // Data, 24-bit address.
	RECORD_DATA32  = RecordType(3) // Data, 32-bit address.
	RECORD_COUNT16 = RecordType(5) // Data record count, 16 bits.
	RECORD_COUNT24 = RecordType(6) // Data record count, 24 bits.
	RECORD_START32 = RecordType(7) // Start address, 32 bits.
	RECORD_START24 = RecordType(8) // Start address, 24 bits.
	RECORD_START16 = RecordType(9) // Start address, 16 bits.
)

func (rt RecordType) String() string {
	return fmt.Sprintf("S%d", byte(rt))
}

// Valid returns true for defined record types.
func (rt RecordType) Valid() bool {
	return rt <= RECORD_START16 && rt != 4
}

// AddressWidth returns the width of the address field, in bytes.
func (rt RecordType) AddressWidth() int {
	switch rt {
	case RECORD_DATA24, RECORD_COUNT24, RECORD_START24:
		return 3
	case RECORD_DATA32, RECORD_START32:
		return 4
	default:
		return 2
	}
}

// Record is a single line of an SRecord stream.
type Record struct {
	Type    RecordType
	Address uint32
	Data    []byte
}

// ByteCount returns the count of address, data and checksum bytes.
func (rec Record) ByteCount() int {
	return rec.Type.AddressWidth() + len(rec.Data) + 1
}

// Checksum returns the ones' complement of the low byte of the sum of
// the byte count, address and data bytes.
func (rec Record) Checksum() byte {
	sum := byte(rec.ByteCount())
	for n := range rec.Type.AddressWidth() {
		sum += byte(rec.Address >> (8 * n))
	}
	for _, value := range rec.Data {
		sum += value
	}

	return ^sum
}

func (rec Record) String() string {
	width := rec.Type.AddressWidth()
	return fmt.Sprintf("%v%02X%0*X%s%02X",
		rec.Type, rec.ByteCount(), 2*width, rec.Address,
		strings.ToUpper(hex.EncodeToString(rec.Data)), rec.Checksum())
}

// ParseRecord parses and validates one record.
func ParseRecord(line string) (rec Record, err error) {
	if len(line) < 2 || line[0] != 'S' {
		err = ErrRecordStart
		return
	}

	kind := line[1]
	if kind < '0' || kind > '9' || !RecordType(kind-'0').Valid() {
		err = ErrRecordType
		return
	}
	rec.Type = RecordType(kind - '0')

	raw, err := hex.DecodeString(line[2:])
	if err != nil {
		err = ErrRecordHex
		return
	}

	width := rec.Type.AddressWidth()
	if len(raw) < 1+width+1 {
		err = ErrTruncated
		return
	}
	if int(raw[0]) != len(raw)-1 {
		err = ErrByteCount
		return
	}

	for _, value := range raw[1 : 1+width] {
		rec.Address = rec.Address<<8 | uint32(value)
	}
	rec.Data = raw[1+width : len(raw)-1]

	if rec.Checksum() != raw[len(raw)-1] {
		err = ErrChecksum
		return
	}

	return
}

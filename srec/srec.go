// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package srec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	asmlio "github.com/ezrec/asml/io"
)

const (
	DEFAULT_HEADER = "ASML" // S0 header text when none is given.
	DATA_MAX       = 252    // Most data bytes in one S1 record.
)

// Records returns the records encoding a byte image: an S0 header, S1
// data records in ascending address order, an S5 (or S6) record count,
// and an S9 record carrying the lowest image address.
func Records(rom *asmlio.Rom, header string) (records []Record) {
	if header == "" {
		header = DEFAULT_HEADER
	}

	records = append(records, Record{Type: RECORD_HEADER, Data: []byte(header)})

	count := 0
	for seg := range rom.Segments() {
		for offset := 0; offset < len(seg.Data); offset += DATA_MAX {
			end := min(offset+DATA_MAX, len(seg.Data))
			records = append(records, Record{
				Type:    RECORD_DATA16,
				Address: uint32(seg.Org) + uint32(offset),
				Data:    seg.Data[offset:end],
			})
			count++
		}
	}

	if count <= 0xFFFF {
		records = append(records, Record{Type: RECORD_COUNT16, Address: uint32(count)})
	} else {
		records = append(records, Record{Type: RECORD_COUNT24, Address: uint32(count)})
	}

	base, _ := rom.Base()
	records = append(records, Record{Type: RECORD_START16, Address: uint32(base)})

	return
}

// Encode writes a byte image as an SRecord stream, one record per line.
func Encode(w io.Writer, rom *asmlio.Rom, header string) (err error) {
	for _, rec := range Records(rom, header) {
		_, err = fmt.Fprintln(w, rec)
		if err != nil {
			return
		}
	}

	return
}

// Decode reads an SRecord stream into a byte image. Every record is
// validated, and the count record must match the data records before it.
func Decode(r io.Reader) (rom *asmlio.Rom, err error) {
	scanner := bufio.NewScanner(r)

	var lineno int
	defer func() {
		if err != nil {
			rom = nil
			err = ErrMalformedRecord{LineNo: lineno, Err: err}
		}
	}()

	rom = asmlio.NewRom()
	count := 0

	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		var rec Record
		rec, err = ParseRecord(line)
		if err != nil {
			return
		}

		switch rec.Type {
		case RECORD_HEADER, RECORD_START16:
		case RECORD_DATA16:
			err = rom.Store(uint16(rec.Address), rec.Data...)
			if err != nil {
				return
			}
			count++
		case RECORD_COUNT16, RECORD_COUNT24:
			if int(rec.Address) != count {
				err = ErrCount
				return
			}
		default:
			err = ErrRecordType
			return
		}
	}

	err = scanner.Err()

	return
}

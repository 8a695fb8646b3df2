package srec

import (
	"errors"

	"github.com/ezrec/asml/translate"
)

var f = translate.From

var (
	// Record errors
	ErrRecordStart = errors.New(f("record does not start with S"))
	ErrRecordType  = errors.New(f("record type unsupported"))
	ErrRecordHex   = errors.New(f("record is not hexadecimal"))
	ErrByteCount   = errors.New(f("record byte count mismatch"))
	ErrTruncated   = errors.New(f("record truncated"))
	ErrChecksum    = errors.New(f("record checksum mismatch"))

	// Stream errors
	ErrCount = errors.New(f("record count does not match data records"))
)

// ErrMalformedRecord locates a record that could not be decoded.
type ErrMalformedRecord struct {
	LineNo int
	Err    error
}

func (err ErrMalformedRecord) Error() string {
	return f("srecord line %d: %v", err.LineNo, err.Err)
}

func (err ErrMalformedRecord) Unwrap() error {
	return err.Err
}

func (err ErrMalformedRecord) Is(target error) (ok bool) {
	_, ok = target.(ErrMalformedRecord)
	return
}

package io

import (
	"io"
)

// Printer collects the bytes written to the printer port.
// Each byte is also echoed to Output, when set.
type Printer struct {
	Output io.Writer

	Data []byte
}

// Rewind discards the collected output.
func (pr *Printer) Rewind() {
	pr.Data = pr.Data[:0]
}

// Print appends a byte to the printer output.
func (pr *Printer) Print(value byte) (err error) {
	pr.Data = append(pr.Data, value)

	if pr.Output != nil {
		_, err = pr.Output.Write([]byte{value})
	}

	return
}

// String returns the collected output as text.
func (pr *Printer) String() string {
	return string(pr.Data)
}

// Package io provides the storage media and devices of the ASML machine.
// A Rom is the sparse byte image produced by the assembler and consumed by
// the SRecord codec and the CPU loader. A Printer collects the characters
// written to the memory mapped printer port.
package io

// Package srec encodes and decodes byte images as Motorola SRecord text.
//
// Only 16-bit address records are written: S0 header, S1 data, S5 (or S6)
// record count, and S9 start address. Each record ends with the ones'
// complement of the low byte of the sum of its byte count, address and
// data bytes.
package srec

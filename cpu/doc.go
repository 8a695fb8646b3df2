// Package cpu implements the ASML processor.
//
// The CPU has ten 8-bit registers (%0-%9), four 16-bit overlay registers
// (%A-%D) that are views onto register pairs (%2:%3 .. %8:%9), a program
// counter, a stack pointer, and a flat 64KB memory. A store to PRINTER_PORT
// prints the stored byte instead of keeping it, and RESET_VECTOR holds the
// initial program counter.
//
// The opcode table is shared by the CPU, the disassembler, and the assembler
// in package asm.
package cpu

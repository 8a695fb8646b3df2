// Package debugger is an interactive command line driver for the emulator.
//
// Commands:
//
//	step|s                  execute one instruction
//	continue|c              run to the next DEBUG pause or HALT
//	mem|m [addr] [count]    dump memory
//	enable                  pause at DEBUG instructions
//	disable                 ignore DEBUG instructions
//	next|n                  disassemble the instruction at pc
//	registers|r             show the registers
//	printer|p               show the printer output
//	help|h                  list the commands
//	exit|q                  leave the debugger
package debugger

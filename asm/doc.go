// Package asm implements the assembler for the ASML processor.
//
// Source is read a line at a time. A line holds an optional label
// definition (":name"), then an instruction or a directive. Comments
// start with ';'.
//
//	:loop ADD %1 %2        ; register
//	      JMP %1 done      ; address, or label expression
//	      LOAD %A #"hi"    ; immediate
//	      ORG 0xFFFE
//	      FDB loop
//
// Assembly takes two passes. The first assigns every statement its
// address from operand syntax alone, so the size of an instruction never
// depends on a label value, and binds labels. The second evaluates label
// expressions ("label", "label+N", "$", "$-N", and Starlark "$( ... )"
// expressions) and encodes each statement into an io.Rom image.
package asm

// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of a 256 byte memory, eight 8-bit registers (R7 doubles
// as the stack pointer), a flags register written only by CMP, an ALU, and a
// program counter. Each opcode byte encodes its own operand count and whether
// the instruction moves the program counter itself, so the execution loop
// never needs a per-instruction length table.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting labels, equates, macros, raw data and compile-time
// expression evaluation.
package cpu

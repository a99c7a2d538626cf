package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an LS-8 instruction byte.
//
// The byte is laid out as AABCDDDD:
//   - AA: number of operand bytes that follow the opcode (0-2).
//   - B: set for ALU instructions.
//   - C: set for instructions that move the program counter themselves.
//   - DDDD: instruction identifier.
type Opcode byte

const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_RET  = Opcode(0b00010001) // RET
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_CALL = Opcode(0b01010000) // CALL
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_SUB  = Opcode(0b10100001) // SUB
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_DIV  = Opcode(0b10100011) // DIV
	OP_CMP  = Opcode(0b10100111) // CMP
	OP_AND  = Opcode(0b10101000) // AND
	OP_OR   = Opcode(0b10101010) // OR
	OP_XOR  = Opcode(0b10101011) // XOR
)

const (
	OPCODE_OPERANDS_SHIFT = 6
	OPCODE_OPERANDS_MASK  = Opcode(0b11 << OPCODE_OPERANDS_SHIFT)
	OPCODE_ALU            = Opcode(1 << 5)
	OPCODE_SETS_PC        = Opcode(1 << 4)
)

// Operand kinds, used by the assembler and disassembler.
type operandKind int

const (
	OPERAND_REGISTER  = operandKind(0)
	OPERAND_IMMEDIATE = operandKind(1)
)

// opcodeName is the fixed instruction table. An empty name is not an
// instruction.
var opcodeName = [256]string{
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_CALL: "CALL",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_LDI:  "LDI",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_MUL:  "MUL",
	OP_DIV:  "DIV",
	OP_CMP:  "CMP",
	OP_AND:  "AND",
	OP_OR:   "OR",
	OP_XOR:  "XOR",
}

// Opcodes returns every opcode in the instruction table, in byte order.
func Opcodes() (ops []Opcode) {
	for n, name := range opcodeName {
		if len(name) != 0 {
			ops = append(ops, Opcode(n))
		}
	}
	return
}

// LookupOpcode finds an opcode by its case-insensitive mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for _, op = range Opcodes() {
		if opcodeName[op] == mnemonic {
			ok = true
			return
		}
	}

	op = 0
	return
}

// Decode checks a fetched byte against the instruction table.
func Decode(value byte) (op Opcode, ok bool) {
	op = Opcode(value)
	ok = op.Valid()
	return
}

// Valid returns true if the opcode is in the instruction table.
func (op Opcode) Valid() bool {
	return len(opcodeName[op]) != 0
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int((op & OPCODE_OPERANDS_MASK) >> OPCODE_OPERANDS_SHIFT)
}

// IsAlu returns true for instructions executed by the ALU.
func (op Opcode) IsAlu() bool {
	return (op & OPCODE_ALU) != 0
}

// SetsPc returns true for instructions that may move the program counter.
func (op Opcode) SetsPc() bool {
	return (op & OPCODE_SETS_PC) != 0
}

// operandKinds returns how each operand byte is interpreted.
func (op Opcode) operandKinds() (kinds []operandKind) {
	for range op.Operands() {
		kinds = append(kinds, OPERAND_REGISTER)
	}
	if op == OP_LDI {
		kinds[1] = OPERAND_IMMEDIATE
	}
	return
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	name := opcodeName[op]
	if len(name) == 0 {
		return fmt.Sprintf("Opcode(0x%02x)", byte(op))
	}
	return name
}

// Disassemble the instruction at addr in mem, returning its text and the
// number of bytes it occupies. Bytes that are not instructions are shown as
// DB data.
func Disassemble(mem []byte, addr int) (text string, size int) {
	if addr < 0 || addr >= len(mem) {
		return
	}

	op, ok := Decode(mem[addr])
	if !ok || addr+op.Operands() >= len(mem) {
		text = fmt.Sprintf("DB 0x%02X", mem[addr])
		size = 1
		return
	}

	var args []string
	for n, kind := range op.operandKinds() {
		value := mem[addr+1+n]
		switch kind {
		case OPERAND_REGISTER:
			args = append(args, fmt.Sprintf("R%d", value))
		case OPERAND_IMMEDIATE:
			args = append(args, fmt.Sprintf("0x%02X", value))
		}
	}

	text = op.String()
	if len(args) != 0 {
		text += " " + strings.Join(args, ",")
	}
	size = 1 + op.Operands()

	return
}

package cpu

// Alu performs the arithmetic or logic operation of op on a and b.
// Results wrap modulo 256.
func Alu(op Opcode, a, b byte) (result byte, err error) {
	switch op {
	case OP_ADD:
		result = a + b
	case OP_SUB:
		result = a - b
	case OP_MUL:
		result = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		result = a / b
	case OP_AND:
		result = a & b
	case OP_OR:
		result = a | b
	case OP_XOR:
		result = a ^ b
	default:
		err = ErrAluOp
	}

	return
}

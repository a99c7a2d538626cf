package cpu

// Control tells the execution loop how to update the program counter.
type Control int

// Control values:
//   - CONTROL_ADVANCE: advance past the instruction and operands.
//   - CONTROL_JUMPED: the instruction has set the program counter.
//
//go:generate go tool stringer -linecomment -type=Control
const (
	CONTROL_ADVANCE = Control(0) // advance
	CONTROL_JUMPED  = Control(1) // jumped
)

// Execute a decoded instruction against the CPU state.
// operands holds exactly op.Operands() bytes.
func (op Opcode) Execute(cpu *Cpu, operands []byte) (ctl Control, err error) {
	ctl = CONTROL_ADVANCE

	switch op {
	case OP_LDI:
		err = cpu.Register.Set(operands[0], operands[1])
	case OP_PRN:
		var value byte
		value, err = cpu.Register.Get(operands[0])
		if err != nil {
			return
		}
		if cpu.output != nil {
			err = cpu.output.Send(value)
		}
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND, OP_OR, OP_XOR:
		var a, b, result byte
		a, b, err = cpu.registerPair(operands)
		if err != nil {
			return
		}
		result, err = Alu(op, a, b)
		if err != nil {
			return
		}
		err = cpu.Register.Set(operands[0], result)
	case OP_CMP:
		var a, b byte
		a, b, err = cpu.registerPair(operands)
		if err != nil {
			return
		}
		cpu.Flags = Compare(a, b)
	case OP_PUSH:
		err = cpu.pushRegister(operands[0])
	case OP_POP:
		err = cpu.popRegister(operands[0])
	case OP_CALL:
		if _, err = cpu.Register.Get(operands[0]); err != nil {
			return
		}
		next := cpu.Pc + 2
		if next >= MEMORY_SIZE {
			err = ErrOutOfBounds(next)
			return
		}
		err = cpu.push(byte(next))
		if err != nil {
			return
		}
		// Target is read after the push, so CALL R7 sees the new SP.
		var target byte
		target, _ = cpu.Register.Get(operands[0])
		cpu.Pc = int(target)
		ctl = CONTROL_JUMPED
	case OP_RET:
		var target byte
		target, err = cpu.pop()
		if err != nil {
			return
		}
		cpu.Pc = int(target)
		ctl = CONTROL_JUMPED
	case OP_JMP:
		ctl, err = cpu.jumpIf(true, operands[0])
	case OP_JEQ:
		ctl, err = cpu.jumpIf(cpu.Flags.Equal(), operands[0])
	case OP_JNE:
		ctl, err = cpu.jumpIf(!cpu.Flags.Equal(), operands[0])
	case OP_HLT:
		cpu.State = STATE_HALTED
	default:
		err = ErrOpcodeUnknown{Addr: cpu.Pc, Opcode: byte(op)}
	}

	return
}

// registerPair returns the values of the two registers named by operands.
func (cpu *Cpu) registerPair(operands []byte) (a, b byte, err error) {
	a, err = cpu.Register.Get(operands[0])
	if err != nil {
		return
	}
	b, err = cpu.Register.Get(operands[1])
	return
}

// jumpIf sets the program counter to the value of register reg if cond holds.
func (cpu *Cpu) jumpIf(cond bool, reg byte) (ctl Control, err error) {
	ctl = CONTROL_ADVANCE

	target, err := cpu.Register.Get(reg)
	if err != nil || !cond {
		return
	}

	cpu.Pc = int(target)
	ctl = CONTROL_JUMPED
	return
}

// push decrements the stack pointer, then stores value at it.
// The stack pointer wraps modulo 256.
func (cpu *Cpu) push(value byte) (err error) {
	cpu.Register[REG_SP]--
	return cpu.Memory.Write(int(cpu.Register[REG_SP]), value)
}

// pushRegister decrements the stack pointer, then stores register reg at
// it. PUSH R7 stores the decremented stack pointer.
func (cpu *Cpu) pushRegister(reg byte) (err error) {
	if _, err = cpu.Register.Get(reg); err != nil {
		return
	}

	cpu.Register[REG_SP]--
	value, _ := cpu.Register.Get(reg)
	return cpu.Memory.Write(int(cpu.Register[REG_SP]), value)
}

// popRegister loads register reg from the stack pointer, then increments
// the stack pointer. POP R7 leaves the loaded value plus one in R7.
func (cpu *Cpu) popRegister(reg byte) (err error) {
	if _, err = cpu.Register.Get(reg); err != nil {
		return
	}

	value, err := cpu.Memory.Read(int(cpu.Register[REG_SP]))
	if err != nil {
		return
	}
	_ = cpu.Register.Set(reg, value)
	cpu.Register[REG_SP]++
	return
}

// pop loads the value at the stack pointer, then increments it.
func (cpu *Cpu) pop() (value byte, err error) {
	value, err = cpu.Memory.Read(int(cpu.Register[REG_SP]))
	if err != nil {
		return
	}
	cpu.Register[REG_SP]++
	return
}

package cpu

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"

	ls8io "github.com/ezrec/ls8/io"
)

func FuzzCpu(f *testing.F) {
	for _, op := range Opcodes() {
		f.Add(byte(op), byte(0), byte(1), uint64(0x0102030405060708), byte(0))
		f.Add(byte(op), byte(7), byte(7), uint64(0xfffefdfcfbfaf9f8), byte(0x80))
	}
	f.Add(byte(0xff), byte(0), byte(0), uint64(0), byte(0))

	f.Fuzz(func(t *testing.T, opcode byte, arg1 byte, arg2 byte, regs uint64, pc byte) {
		assert := assert.New(t)

		rec := &ls8io.Recorder{}
		cpu := NewCpu()
		cpu.SetOutput(rec)
		for n := range cpu.Register {
			cpu.Register[n] = byte(regs >> (8 * n))
		}
		for n, value := range []byte{opcode, arg1, arg2} {
			if int(pc)+n < MEMORY_SIZE {
				cpu.Memory[int(pc)+n] = value
			}
		}
		cpu.Flags = FL_GREATER
		cpu.Pc = int(pc)

		prior := *cpu

		err := cpu.Tick()

		op, ok := Decode(opcode)
		if !ok {
			assert.ErrorIs(err, ErrOpcodeUnknown{})
			assert.Equal(STATE_HALTED, cpu.State)
			assert.Equal(prior.Register, cpu.Register)
			assert.Equal(prior.Memory, cpu.Memory)
			return
		}

		if err != nil {
			assert.ErrorIs(err, ErrInstruction{})
			assert.Equal(STATE_HALTED, cpu.State)
			assert.Equal(int(pc), cpu.Pc)
			switch {
			case errors.Is(err, ErrRegisterInvalid(0)):
				assert.True(arg1 >= REGISTER_COUNT || (op.Operands() == 2 && !(op == OP_LDI) && arg2 >= REGISTER_COUNT))
			case errors.Is(err, ErrDivisionByZero):
				assert.Equal(OP_DIV, op)
			case errors.Is(err, ErrOutOfBounds(0)):
				assert.True(int(pc)+op.Operands() >= MEMORY_SIZE || op == OP_CALL)
			default:
				t.Fatalf("unexpected error %v", err)
			}
			return
		}

		if op == OP_CMP {
			assert.Equal(1, bits.OnesCount8(byte(cpu.Flags)))
		} else {
			assert.Equal(prior.Flags, cpu.Flags)
		}

		if op == OP_HLT {
			assert.Equal(STATE_HALTED, cpu.State)
		} else {
			assert.Equal(STATE_RUNNING, cpu.State)
		}

		if op == OP_PRN {
			assert.Equal([]byte{prior.Register[arg1]}, rec.Values)
		} else {
			assert.Empty(rec.Values)
		}

		if !op.SetsPc() {
			assert.Equal(int(pc)+op.Operands()+1, cpu.Pc)
		}

		switch op {
		case OP_PUSH:
			sp := cpu.Register[REG_SP]
			assert.Equal(prior.Register[REG_SP]-1, sp)
			assert.Equal(cpu.Register[arg1], cpu.Memory[sp])
		case OP_CALL:
			sp := cpu.Register[REG_SP]
			assert.Equal(prior.Register[REG_SP]-1, sp)
			assert.Equal(byte(int(pc)+2), cpu.Memory[sp])
			assert.Equal(int(cpu.Register[arg1]), cpu.Pc)
		case OP_POP:
			value := prior.Memory[prior.Register[REG_SP]]
			if arg1 == REG_SP {
				assert.Equal(value+1, cpu.Register[REG_SP])
			} else {
				assert.Equal(prior.Register[REG_SP]+1, cpu.Register[REG_SP])
				assert.Equal(value, cpu.Register[arg1])
			}
		case OP_JEQ, OP_JNE:
			if cpu.Pc != int(pc)+2 {
				assert.Equal(int(prior.Register[arg1]), cpu.Pc)
			}
		}

		assert.Equal(1, cpu.Ticks)
	})
}


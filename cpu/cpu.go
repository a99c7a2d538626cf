package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

// Channel is the output channel interface used by PRN.
type Channel io.Channel

// State of the execution loop.
type State int

// State values:
//   - STATE_READY: constructed or reset, not yet run.
//   - STATE_RUNNING: executing instructions.
//   - STATE_HALTED: stopped by HLT or a fatal error.
//
//go:generate go tool stringer -linecomment -type=State
const (
	STATE_READY   = State(0) // ready
	STATE_RUNNING = State(1) // running
	STATE_HALTED  = State(2) // halted
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"SP_INIT":     fmt.Sprintf("0x%02x", SP_INIT),
	"FL_EQUAL":    fmt.Sprintf("0x%02x", byte(FL_EQUAL)),
	"FL_GREATER":  fmt.Sprintf("0x%02x", byte(FL_GREATER)),
	"FL_LESS":     fmt.Sprintf("0x%02x", byte(FL_LESS)),
}

// Cpu is the simulation context for the LS-8 processor.
//
// A Cpu is owned by a single goroutine; none of its methods are safe for
// concurrent use.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Instruction and data store.
	Register Registers // Register bank. R7 is the stack pointer.
	Flags    Flags     // Condition codes set by CMP.
	Pc       int       // Program counter.
	State    State     // Execution loop state.

	Ticks int // Instructions executed since reset.

	output Channel // PRN output channel.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// systemDefines returns the assembler visible constants of the LS-8,
// including an OP_<MNEMONIC> define for every opcode.
func systemDefines() iter.Seq2[string, string] {
	opcodes := func(yield func(string, string) bool) {
		for _, op := range Opcodes() {
			if !yield("OP_"+op.String(), fmt.Sprintf("0x%02x", byte(op))) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(maps.All(_cpu_defines), opcodes)
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return systemDefines()
}

// SetOutput sets the channel that receives PRN values.
func (cpu *Cpu) SetOutput(channel Channel) {
	cpu.output = channel
}

// Reset the CPU state.
// - Zeros memory, registers and flags.
// - Sets the stack pointer to SP_INIT.
// - Sets the program counter to 0.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Flags = 0
	cpu.Pc = 0
	cpu.State = STATE_READY
	cpu.Ticks = 0

	if cpu.output != nil {
		cpu.output.Rewind()
	}
}

// Load copies a program image into memory, starting at address 0.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > len(cpu.Memory) {
		err = errors.Join(ErrImageInvalid, ErrOutOfBounds(len(image)))
		return
	}

	copy(cpu.Memory[:], image)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(image))
	}

	return
}

// Running returns true while the execution loop is running.
func (cpu *Cpu) Running() bool {
	return cpu.State == STATE_RUNNING
}

// Tick executes a single fetch, decode, execute cycle.
// Any error is fatal, and leaves the CPU halted.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		err = ErrHalted
		return
	case STATE_READY:
		cpu.State = STATE_RUNNING
	}

	defer func() {
		if err != nil {
			cpu.State = STATE_HALTED
		}
	}()

	pc := cpu.Pc

	value, err := cpu.Memory.Read(pc)
	if err != nil {
		return
	}

	op, ok := Decode(value)
	if !ok {
		err = ErrOpcodeUnknown{Addr: pc, Opcode: value}
		return
	}

	var operands [2]byte
	for n := range op.Operands() {
		operands[n], err = cpu.Memory.Read(pc + 1 + n)
		if err != nil {
			err = errors.Join(ErrInstruction{Addr: pc, Opcode: op}, err)
			return
		}
	}

	if cpu.Verbose {
		text, _ := Disassemble(cpu.Memory[:], pc)
		log.Printf("%02x: %v", pc, text)
	}

	ctl, err := op.Execute(cpu, operands[:op.Operands()])
	if err != nil {
		err = errors.Join(ErrInstruction{Addr: pc, Opcode: op}, err)
		return
	}

	if !op.SetsPc() || ctl == CONTROL_ADVANCE {
		cpu.Pc = pc + op.Operands() + 1
	}

	cpu.Ticks++

	return
}

// Run executes instructions until HLT, or until a fatal error.
func (cpu *Cpu) Run() (err error) {
	if cpu.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	cpu.State = STATE_RUNNING
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Trace returns a single line of CPU state: the program counter, the
// three bytes at the program counter, and all registers.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		value, err := cpu.Memory.Read(cpu.Pc + n)
		if err != nil {
			sb.WriteString(" --")
		} else {
			fmt.Fprintf(&sb, " %02X", value)
		}
	}
	sb.WriteString(" |")
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "fl", cpu.Flags)
	for n, value := range cpu.Register {
		reg := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			reg = "sp"
		}
		text += fmt.Sprintf("% 5s: %02X\n", reg, value)
	}
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)

	return
}

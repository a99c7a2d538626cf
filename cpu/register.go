package cpu

const (
	REGISTER_COUNT = 8    // General purpose registers.
	REG_SP         = 7    // Register used as the stack pointer.
	SP_INIT        = 0xf4 // Stack pointer after reset.
)

// Registers is the register file, R0 through R7.
type Registers [REGISTER_COUNT]byte

// Get returns the value of a register.
func (regs *Registers) Get(index byte) (value byte, err error) {
	if int(index) >= len(regs) {
		err = ErrRegisterInvalid(index)
		return
	}

	value = regs[index]
	return
}

// Set the value of a register.
func (regs *Registers) Set(index byte, value byte) (err error) {
	if int(index) >= len(regs) {
		err = ErrRegisterInvalid(index)
		return
	}

	regs[index] = value
	return
}

// Reset zeros all registers, and sets the stack pointer to SP_INIT.
func (regs *Registers) Reset() {
	clear(regs[:])
	regs[REG_SP] = SP_INIT
}

// Flags is the condition code register.
type Flags byte

// Flag bits, in the low three bits of the register.
const (
	FL_EQUAL   = Flags(1 << 0) // E
	FL_GREATER = Flags(1 << 1) // G
	FL_LESS    = Flags(1 << 2) // L
)

// Compare a and b. Exactly one flag bit is set in the result.
func Compare(a, b byte) Flags {
	switch {
	case a == b:
		return FL_EQUAL
	case a > b:
		return FL_GREATER
	default:
		return FL_LESS
	}
}

// Equal is true if the last comparison was equal.
func (fl Flags) Equal() bool {
	return (fl & FL_EQUAL) != 0
}

// Greater is true if the last comparison was greater than.
func (fl Flags) Greater() bool {
	return (fl & FL_GREATER) != 0
}

// Less is true if the last comparison was less than.
func (fl Flags) Less() bool {
	return (fl & FL_LESS) != 0
}

// String returns the flags in LGE order, with '-' for clear bits.
func (fl Flags) String() string {
	out := []byte("---")
	if fl.Less() {
		out[0] = 'L'
	}
	if fl.Greater() {
		out[1] = 'G'
	}
	if fl.Equal() {
		out[2] = 'E'
	}
	return string(out)
}

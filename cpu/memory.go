package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the byte addressable instruction and data store.
type Memory [MEMORY_SIZE]byte

// Read the byte at addr.
func (mem *Memory) Read(addr int) (value byte, err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrOutOfBounds(addr)
		return
	}

	value = mem[addr]
	return
}

// Write value to the byte at addr.
func (mem *Memory) Write(addr int, value byte) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrOutOfBounds(addr)
		return
	}

	mem[addr] = value
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}

package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Statement is a line of source with its location and generated bytes.
type Statement struct {
	LineNo    int      // Source line number.
	Addr      int      // Memory address of the first byte.
	Words     []string // Source words that produced the bytes.
	Bytes     []byte   // Generated bytes.
	LinkLabel string   // Label to link into LinkIndex, if any.
	LinkIndex int      // Index into Bytes of the linked label address.
}

// Program is a listing of statements, in address order.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug finds the statement that generated the byte at addr.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, st := range prog.Statements {
		if addr >= st.Addr && addr < st.Addr+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     addr - st.Addr,
			}
			break
		}
	}

	return
}

// Bytes iterates over every generated byte, with its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(addr int, value byte) bool) {
		for _, st := range prog.Statements {
			for n, value := range st.Bytes {
				if !yield(st.Addr+n, value) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []byte) {
	for addr, value := range prog.Bytes() {
		if addr >= len(bins) {
			bins = append(bins, make([]byte, addr+1-len(bins))...)
		}
		bins[addr] = value
	}

	return
}

// WriteImage writes the program in the text image format read by
// ReadImage: one binary byte per line, with the source words of each
// statement as a comment on its first byte.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	for _, st := range prog.Statements {
		for n, value := range st.Bytes {
			line := fmt.Sprintf("%08b", value)
			if n == 0 && len(st.Words) != 0 {
				line += " # " + strings.Join(st.Words, " ")
			}
			_, err = fmt.Fprintln(w, line)
			if err != nil {
				return
			}
		}
	}

	return
}

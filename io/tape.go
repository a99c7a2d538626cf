package io

import (
	"fmt"
	"io"
)

// Tape writes each value sent to it as a line of decimal text.
// A Tape with no Output discards its values.
type Tape struct {
	Output io.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Send writes value, followed by a newline, to the output stream.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}

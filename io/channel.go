// Package io provides the output channels for the LS-8 emulator.
// PRN emits one register value per execution to a Channel, either as
// decimal text (Tape) or captured in memory (Recorder).
package io

// Channel defines the interface for PRN output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send emits a single value to the channel.
	Send(value byte) error
}

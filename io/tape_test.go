package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}

	for _, value := range []byte{8, 0, 255, 42} {
		assert.NoError(tape.Send(value))
	}
	tape.Rewind()
	assert.NoError(tape.Send(1))

	assert.Equal("8\n0\n255\n42\n1\n", out.String())
}

func TestTape_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.NoError(tape.Send(1))
}

func TestTape_WriteError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: failWriter{}}
	assert.ErrorIs(tape.Send(1), errWrite)
}

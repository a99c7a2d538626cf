package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

const print8 = `
        LDI R0,8
        PRN R0
        HLT
`

func newDebugEmulator(t *testing.T) (emu *emulator.Emulator, tape *bytes.Buffer) {
	assert := assert.New(t)

	emu = emulator.NewEmulator()
	tape = &bytes.Buffer{}
	emu.Tape.Output = tape

	assert.NoError(emu.Assemble(strings.NewReader(print8)))
	assert.NoError(emu.Reset())

	return
}

func TestCommandStep(t *testing.T) {
	assert := assert.New(t)

	emu, tape := newDebugEmulator(t)
	out := &bytes.Buffer{}

	assert.NoError(command(emu, out, "step"))
	assert.Equal("03: PRN R0\n", out.String())

	out.Reset()
	assert.NoError(command(emu, out, "s 5"))
	assert.Equal("halted\n", out.String())
	assert.Equal("8\n", tape.String())

	out.Reset()
	assert.ErrorIs(command(emu, out, "step"), cpu.ErrHalted)

	assert.Error(command(emu, out, "step x"))
}

func TestCommandRun(t *testing.T) {
	assert := assert.New(t)

	emu, tape := newDebugEmulator(t)
	out := &bytes.Buffer{}

	assert.NoError(command(emu, out, "run"))
	assert.Equal("halted\n", out.String())
	assert.Equal("8\n", tape.String())

	out.Reset()
	assert.NoError(command(emu, out, "reset"))
	assert.Equal("00: LDI R0,0x08\n", out.String())
	assert.Equal(0, emu.Ticks())
}

func TestCommandInspect(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newDebugEmulator(t)
	out := &bytes.Buffer{}

	assert.NoError(command(emu, out, "regs"))
	assert.Equal(emu.Cpu.String(), out.String())

	out.Reset()
	assert.NoError(command(emu, out, "trace"))
	assert.Equal("TRACE: 00 | 82 00 08 | 00 00 00 00 00 00 00 F4\n", out.String())

	out.Reset()
	assert.NoError(command(emu, out, "mem 0 6"))
	assert.Equal("00: 82 00 08 47 00 01\n", out.String())

	out.Reset()
	assert.NoError(command(emu, out, "m 0xf0 10"))
	assert.Equal("F0: 00 00 00 00 00 00 00 00\nF8: 00 00\n", out.String())

	out.Reset()
	assert.ErrorIs(command(emu, out, "mem 0xfe 4"), cpu.ErrOutOfBounds(0))

	out.Reset()
	assert.NoError(command(emu, out, "help"))
	assert.Equal(debugHelp+"\n", out.String())
}

func TestCommandMisc(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newDebugEmulator(t)
	out := &bytes.Buffer{}

	assert.NoError(command(emu, out, ""))
	assert.NoError(command(emu, out, "   "))
	assert.ErrorIs(command(emu, out, "quit"), errQuit)
	assert.ErrorIs(command(emu, out, "q"), errQuit)
	assert.ErrorIs(command(emu, out, "frobnicate"), errCommand)
	assert.Empty(out.String())

	assert.Equal(translate.From("unknown command, try help"), errCommand.Error())
	assert.Equal(translate.From("quit"), errQuit.Error())
}

func TestIsAssembly(t *testing.T) {
	assert := assert.New(t)

	assert.True(isAssembly("prog.asm", false))
	assert.True(isAssembly("PROG.ASM", false))
	assert.False(isAssembly("prog.ls8", false))
	assert.True(isAssembly("prog.ls8", true))
}

func TestLoadProgram(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	source := filepath.Join(dir, "print8.asm")
	assert.NoError(os.WriteFile(source, []byte(print8), 0o644))

	image := filepath.Join(dir, "print8.ls8")
	assert.NoError(os.WriteFile(image, []byte("10000010\n00000000\n00001000\n01000111\n00000000\n00000001\n"), 0o644))

	for _, path := range []string{source, image} {
		emu := emulator.NewEmulator()
		tape := &bytes.Buffer{}
		emu.Tape.Output = tape

		assert.NoError(loadProgram(emu, path, false), path)
		assert.NoError(emu.Run(), path)
		assert.Equal("8\n", tape.String(), path)
	}

	emu := emulator.NewEmulator()
	assert.Error(loadProgram(emu, filepath.Join(dir, "missing.asm"), false))
}

func TestOpenOutput(t *testing.T) {
	assert := assert.New(t)

	out, err := openOutput("-")
	assert.NoError(err)
	assert.NoError(out.Close())

	path := filepath.Join(t.TempDir(), "out.txt")
	out, err = openOutput(path)
	assert.NoError(err)
	_, err = out.Write([]byte("72\n"))
	assert.NoError(err)
	assert.NoError(out.Close())

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("72\n", string(data))
}

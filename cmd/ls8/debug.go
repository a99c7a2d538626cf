package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	errQuit    = errors.New(f("quit"))
	errCommand = errors.New(f("unknown command, try help"))
)

const debugHelp = `step [N]          execute N instructions (default 1)
run               execute until halt
regs              show registers and flags
mem ADDR [COUNT]  dump COUNT bytes of memory (default 16)
trace             show the trace line
reset             reload the program
quit              leave the debugger`

// debug runs the interactive single-step console.
func debug(emu *emulator.Emulator, out io.Writer) (err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "ls8> ",
	})
	if err != nil {
		return
	}
	defer rl.Close()

	fmt.Fprintf(out, "%02X: %v\n", emu.Cpu.Pc, emu.Text())

	for {
		var line string
		line, err = rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		err = command(emu, out, line)
		if errors.Is(err, errQuit) {
			err = nil
			return
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// command executes a single debugger command line.
func command(emu *emulator.Emulator, out io.Writer, line string) (err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	number := func(n int, def int) (value int, err error) {
		if len(words) <= n {
			value = def
			return
		}
		v64, err := strconv.ParseInt(words[n], 0, 32)
		value = int(v64)
		return
	}

	switch words[0] {
	case "step", "s":
		var count int
		count, err = number(1, 1)
		if err != nil {
			return
		}
		for range count {
			var done bool
			done, err = emu.Tick()
			if err != nil {
				return
			}
			if done {
				fmt.Fprintln(out, "halted")
				return
			}
		}
		fmt.Fprintf(out, "%02X: %v\n", emu.Cpu.Pc, emu.Text())
	case "run", "r":
		err = emu.Run()
		if err != nil {
			return
		}
		fmt.Fprintln(out, "halted")
	case "regs":
		fmt.Fprint(out, emu.Cpu.String())
	case "trace", "t":
		fmt.Fprintln(out, emu.Cpu.Trace())
	case "mem", "m":
		var addr, count int
		addr, err = number(1, emu.Cpu.Pc)
		if err != nil {
			return
		}
		count, err = number(2, 16)
		if err != nil {
			return
		}
		for n := range count {
			if n%8 == 0 {
				if n != 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%02X:", addr+n)
			}
			var value byte
			value, err = emu.Cpu.Memory.Read(addr + n)
			if err != nil {
				fmt.Fprintln(out)
				return
			}
			fmt.Fprintf(out, " %02X", value)
		}
		fmt.Fprintln(out)
	case "reset":
		err = emu.Reset()
		if err != nil {
			return
		}
		fmt.Fprintf(out, "%02X: %v\n", emu.Cpu.Pc, emu.Text())
	case "help", "?":
		fmt.Fprintln(out, debugHelp)
	case "quit", "q", "exit":
		err = errQuit
	default:
		err = errCommand
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/emulator"
)

// isAssembly returns true if the file should be assembled before use.
func isAssembly(path string, force bool) bool {
	return force || strings.EqualFold(filepath.Ext(path), ".asm")
}

// openOutput opens a file for writing, or stdout for "-".
func openOutput(path string) (out io.WriteCloser, err error) {
	if path == "-" {
		out = nopCloser{os.Stdout}
		return
	}

	return os.Create(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// loadProgram reads an image or assembly source into the emulator, and
// resets it.
func loadProgram(emu *emulator.Emulator, path string, asm bool) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if isAssembly(path, asm) {
		err = emu.Assemble(inf)
	} else {
		err = emu.ReadImage(inf)
	}
	if err != nil {
		return
	}

	err = emu.Reset()
	return
}

func main() {
	log.SetFlags(0)

	var verbose bool
	var asm bool
	var output string

	rootCmd := &cobra.Command{
		Use:           "ls8",
		Short:         "LS-8 emulator and assembler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().BoolVar(&asm, "asm", false, "Treat the input as assembly source")

	runCmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program image (.ls8) or assembly source (.asm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out, err := openOutput(output)
			if err != nil {
				return
			}
			defer out.Close()

			emu := emulator.NewEmulator()
			emu.Verbose = verbose
			emu.Tape.Output = out

			err = loadProgram(emu, args[0], asm)
			if err != nil {
				return
			}

			return emu.Run()
		},
	}
	runCmd.Flags().StringVarP(&output, "output", "o", "-", "PRN output")

	var image string

	asmCmd := &cobra.Command{
		Use:   "asm FILE",
		Short: "Assemble source into a program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			inf, err := os.Open(args[0])
			if err != nil {
				return
			}
			defer inf.Close()

			emu := emulator.NewEmulator()
			emu.Verbose = verbose
			err = emu.Assemble(inf)
			if err != nil {
				return
			}

			out, err := openOutput(image)
			if err != nil {
				return
			}
			defer out.Close()

			return emu.Program.WriteImage(out)
		},
	}
	asmCmd.Flags().StringVarP(&image, "output", "o", "-", "Program image output")

	debugCmd := &cobra.Command{
		Use:   "debug FILE",
		Short: "Single step a program interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu := emulator.NewEmulator()
			emu.Tape.Output = os.Stdout

			err = loadProgram(emu, args[0], asm)
			if err != nil {
				return
			}

			return debug(emu, os.Stdout)
		},
	}

	rootCmd.AddCommand(runCmd, asmCmd, debugCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v: %v", rootCmd.Name(), err)
	}
}

package cpu

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ReadImage parses a text program image.
//
// Each line holds one byte written in base 2, with an optional 0b prefix
// and '_' digit separators. Text after a '#' is a comment. Lines that do not parse as a byte are skipped. Every byte
// becomes a one byte statement, so runtime errors can be mapped back to
// the image line.
func ReadImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &Program{}

	var lineno int
	var addr int
	for scanner.Scan() {
		lineno++

		text, comment, _ := strings.Cut(scanner.Text(), "#")
		digits := strings.TrimSpace(text)
		if !strings.HasPrefix(strings.ToLower(digits), "0b") {
			digits = "0b" + digits
		}
		value, perr := strconv.ParseUint(digits, 0, 8)
		if perr != nil {
			continue
		}

		if addr >= MEMORY_SIZE {
			err = errors.Join(ErrImageInvalid, &ErrSyntax{LineNo: lineno, Line: text, Err: ErrProgramTooLarge})
			prog = nil
			return
		}

		var words []string
		if comment = strings.TrimSpace(comment); len(comment) != 0 {
			words = strings.Fields(comment)
		}

		prog.Statements = append(prog.Statements, Statement{
			LineNo: lineno,
			Addr:   addr,
			Words:  words,
			Bytes:  []byte{byte(value)},
		})
		addr++
	}

	if serr := scanner.Err(); serr != nil {
		err = errors.Join(ErrImageInvalid, serr)
		prog = nil
		return
	}

	return
}

// LoadImage parses a text program image into a memory image.
func LoadImage(input io.Reader) (image []byte, err error) {
	prog, err := ReadImage(input)
	if err != nil {
		return
	}

	image = prog.Binary()
	return
}

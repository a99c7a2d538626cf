package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("cpu halted"))
	ErrDivisionByZero = errors.New(f("division by zero"))
	ErrAluOp          = errors.New(f("alu operation unsupported"))

	// Program image errors
	ErrImageInvalid = errors.New(f("program image invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrProgramTooLarge    = errors.New(f("program exceeds memory"))
)

// ErrOutOfBounds is an access to a memory address outside of the memory.
type ErrOutOfBounds int

func (err ErrOutOfBounds) Error() string {
	return f("address %d out of bounds", int(err))
}

func (err ErrOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrOutOfBounds)
	return
}

// ErrRegisterInvalid is a register index outside of R0-R7.
type ErrRegisterInvalid int

func (err ErrRegisterInvalid) Error() string {
	return f("register %d invalid", int(err))
}

func (err ErrRegisterInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterInvalid)
	return
}

// ErrOpcodeUnknown is an opcode byte that is not in the instruction table.
type ErrOpcodeUnknown struct {
	Addr   int
	Opcode byte
}

func (err ErrOpcodeUnknown) Error() string {
	return f("unknown instruction 0b%08b at address %d", err.Opcode, err.Addr)
}

func (err ErrOpcodeUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrOpcodeUnknown)
	return
}

// ErrInstruction locates the instruction that failed during execution.
type ErrInstruction struct {
	Addr   int
	Opcode Opcode
}

func (err ErrInstruction) Error() string {
	return f("%v at address %d", err.Opcode.String(), err.Addr)
}

func (err ErrInstruction) Is(target error) (ok bool) {
	_, ok = target.(ErrInstruction)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}

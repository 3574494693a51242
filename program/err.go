package program

import (
	"errors"

	"github.com/ezrec/counter/account"
	"github.com/ezrec/counter/translate"
)

var f = translate.From

var (
	// Processor errors
	ErrMissingAccount = errors.New(f("missing account"))
	ErrDecode         = errors.New(f("decode"))
	ErrWriteFailure   = errors.New(f("write failure"))

	// Decode details
	ErrDataLength = errors.New(f("data length"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
)

// ErrDiscriminant is an unknown instruction discriminant.
type ErrDiscriminant uint8

func (err ErrDiscriminant) Error() string {
	return f("unknown discriminant %v", uint8(err))
}

func (err ErrDiscriminant) Is(target error) bool {
	other, ok := target.(ErrDiscriminant)
	return ok && other == err
}

// ErrAccountData indicates the account whose data could not be processed.
type ErrAccountData struct {
	Key account.Pubkey
	Err error
}

func (err *ErrAccountData) Error() string {
	return f("account %v %v", err.Key, err.Err)
}

func (err *ErrAccountData) Unwrap() error {
	return err.Err
}

// ErrInstructionData indicates an instruction payload that could not be decoded.
type ErrInstructionData struct {
	Data []byte
	Err  error
}

func (err *ErrInstructionData) Error() string {
	return f("instruction %x %v", err.Data, err.Err)
}

func (err *ErrInstructionData) Unwrap() error {
	return err.Err
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

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

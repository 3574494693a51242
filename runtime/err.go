package runtime

import (
	"errors"

	"github.com/ezrec/counter/account"
	"github.com/ezrec/counter/translate"
)

var f = translate.From

var (
	// Account table errors
	ErrAccountExists  = errors.New(f("account already exists"))
	ErrAccountUnknown = errors.New(f("account unknown"))

	// Post-invocation checks
	ErrReadonlyDataModified = errors.New(f("modified data of a read-only account"))
	ErrExternalDataModified = errors.New(f("modified data of an account it does not own"))
	ErrDataSizeChanged      = errors.New(f("changed the size of account data"))
)

// ErrInvoke indicates a failed invocation of the program.
type ErrInvoke struct {
	Program account.Pubkey
	Err     error
}

func (err *ErrInvoke) Error() string {
	return f("program %v failed: %v", err.Program, err.Err)
}

func (err *ErrInvoke) Unwrap() error {
	return err.Err
}

// ErrAccount indicates the account a host check failed on.
type ErrAccount struct {
	Key account.Pubkey
	Err error
}

func (err *ErrAccount) Error() string {
	return f("account %v %v", err.Key, err.Err)
}

func (err *ErrAccount) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the script line of a failed invocation.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

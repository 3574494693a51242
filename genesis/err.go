package genesis

import (
	"errors"

	"github.com/ezrec/counter/translate"
)

var f = translate.From

var (
	ErrGenesisProgram      = errors.New(f("genesis program missing"))
	ErrGenesisCountAndData = errors.New(f("genesis account has both count and data"))
	ErrGenesisKeyMissing   = errors.New(f("genesis account key missing"))
)

// ErrGenesisAccount indicates the genesis account entry at fault.
type ErrGenesisAccount struct {
	Index int
	Err   error
}

func (err *ErrGenesisAccount) Error() string {
	return f("genesis account %d %v", err.Index, err.Err)
}

func (err *ErrGenesisAccount) Unwrap() error {
	return err.Err
}

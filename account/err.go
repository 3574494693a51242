package account

import (
	"errors"

	"github.com/ezrec/counter/translate"
)

var f = translate.From

var (
	// Pubkey errors
	ErrPubkeyEncoding = errors.New(f("pubkey not base58"))
	ErrPubkeyLength   = errors.New(f("pubkey length"))
)

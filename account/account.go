// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package account

import (
	"bytes"
	"io"
	"slices"

	"github.com/mr-tron/base58/base58"
)

// PUBKEY_SIZE is the size in bytes of an account address.
const PUBKEY_SIZE = 32

// Pubkey is an account address.
type Pubkey [PUBKEY_SIZE]byte

// ParsePubkey decodes a base58 account address.
func ParsePubkey(text string) (key Pubkey, err error) {
	raw, err := base58.Decode(text)
	if err != nil {
		err = ErrPubkeyEncoding
		return
	}

	if len(raw) != PUBKEY_SIZE {
		err = ErrPubkeyLength
		return
	}

	copy(key[:], raw)
	return
}

// String returns the base58 form of the address.
func (key Pubkey) String() string {
	return base58.Encode(key[:])
}

// MarshalText implements encoding.TextMarshaler.
func (key Pubkey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (key *Pubkey) UnmarshalText(text []byte) (err error) {
	*key, err = ParsePubkey(string(text))
	return
}

// Compare orders two addresses bytewise.
func (key Pubkey) Compare(other Pubkey) int {
	return bytes.Compare(key[:], other[:])
}

// Account is a host owned storage slot, lent to a program for the
// duration of a single invocation.
type Account struct {
	Key      Pubkey // Address of the slot.
	Owner    Pubkey // Program permitted to modify Data.
	Signer   bool   // Set if the caller signed for this account.
	Writable bool   // Set if the host permits writes to Data.

	Data []byte // Slot contents.
}

// Next returns the first account of the list, and the remainder.
func Next(accounts []*Account) (acct *Account, rest []*Account, ok bool) {
	if len(accounts) == 0 {
		return
	}

	return accounts[0], accounts[1:], true
}

// Unmarshal loads account data from a reader, replacing any existing data.
func (acct *Account) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	acct.Data = data

	return
}

// Marshal writes the account's data to a writer.
func (acct *Account) Marshal(file io.Writer) (err error) {
	_, err = file.Write(acct.Data)

	return
}

// Clone returns a deep copy of the account.
func (acct *Account) Clone() *Account {
	clone := *acct
	clone.Data = slices.Clone(acct.Data)
	return &clone
}

// Equal returns true if both accounts hold the same data.
func (acct *Account) Equal(other *Account) bool {
	return bytes.Equal(acct.Data, other.Data)
}

// Package genesis reads and writes the YAML description of a runtime's
// account table.
package genesis

import (
	"encoding/hex"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/counter/account"
	"github.com/ezrec/counter/program"
	"github.com/ezrec/counter/runtime"
)

// Account is a single account entry.
//
// Count and Data are exclusive. An entry with neither holds a zero counter;
// an entry with an empty Data string holds no data at all.
type Account struct {
	Key      *account.Pubkey `yaml:"key"`
	Owner    *account.Pubkey `yaml:"owner,omitempty"` // Defaults to the program.
	Count    *uint32         `yaml:"count,omitempty"`
	Data     *string         `yaml:"data,omitempty"`     // Hex encoded.
	Writable *bool           `yaml:"writable,omitempty"` // Defaults to true.
	Signer   bool            `yaml:"signer,omitempty"`
}

// Genesis is the account table of a runtime.
type Genesis struct {
	Program  *account.Pubkey `yaml:"program"`
	Accounts []Account       `yaml:"accounts"`
}

// Load decodes a genesis file. Unknown fields are rejected.
func Load(input io.Reader) (gen *Genesis, err error) {
	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)

	gen = &Genesis{}
	err = decoder.Decode(gen)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		gen = nil
		return
	}

	err = gen.Validate()
	if err != nil {
		gen = nil
	}

	return
}

// Validate checks the genesis without building any accounts.
func (gen *Genesis) Validate() (err error) {
	if gen.Program == nil {
		err = ErrGenesisProgram
		return
	}

	for n := range gen.Accounts {
		_, err = gen.account(n)
		if err != nil {
			return
		}
	}

	return
}

// account builds the n'th account entry.
func (gen *Genesis) account(n int) (acct *account.Account, err error) {
	entry := gen.Accounts[n]

	defer func() {
		if err != nil {
			acct = nil
			err = &ErrGenesisAccount{Index: n, Err: err}
		}
	}()

	if entry.Key == nil {
		err = ErrGenesisKeyMissing
		return
	}

	acct = &account.Account{
		Key:      *entry.Key,
		Owner:    *gen.Program,
		Signer:   entry.Signer,
		Writable: true,
	}

	if entry.Owner != nil {
		acct.Owner = *entry.Owner
	}

	if entry.Writable != nil {
		acct.Writable = *entry.Writable
	}

	switch {
	case entry.Count != nil && entry.Data != nil:
		err = ErrGenesisCountAndData
	case entry.Data != nil:
		acct.Data, err = hex.DecodeString(*entry.Data)
		if acct.Data == nil {
			acct.Data = []byte{}
		}
	case entry.Count != nil:
		acct.Data = program.Counter{Count: *entry.Count}.Marshal()
	default:
		acct.Data = program.Counter{}.Marshal()
	}

	return
}

// Apply creates a runtime holding the genesis accounts.
func (gen *Genesis) Apply() (rt *runtime.Runtime, err error) {
	if gen.Program == nil {
		err = ErrGenesisProgram
		return
	}

	rt = runtime.NewRuntime(*gen.Program)

	for n := range gen.Accounts {
		var acct *account.Account
		acct, err = gen.account(n)
		if err == nil {
			err = rt.AddAccount(acct)
		}
		if err != nil {
			rt = nil
			return
		}
	}

	return
}

// Snapshot describes the current account table of a runtime.
// Accounts holding a valid counter are written as counts.
func Snapshot(rt *runtime.Runtime) (gen *Genesis) {
	programID := rt.ProgramID
	gen = &Genesis{Program: &programID}

	for key, acct := range rt.Accounts() {
		entry := Account{
			Key:    &key,
			Signer: acct.Signer,
		}

		if acct.Owner != programID {
			owner := acct.Owner
			entry.Owner = &owner
		}

		if !acct.Writable {
			writable := false
			entry.Writable = &writable
		}

		counter, err := program.UnmarshalCounter(acct.Data)
		if err == nil {
			entry.Count = &counter.Count
		} else {
			data := hex.EncodeToString(acct.Data)
			entry.Data = &data
		}

		gen.Accounts = append(gen.Accounts, entry)
	}

	return
}

// Save encodes the genesis as YAML.
func (gen *Genesis) Save(output io.Writer) (err error) {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)

	err = encoder.Encode(gen)
	if err != nil {
		return
	}

	return encoder.Close()
}

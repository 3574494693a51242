// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package runtime

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/counter/account"
	"github.com/ezrec/counter/internal"
	"github.com/ezrec/counter/program"
)

// Transaction is a single request to invoke the program.
type Transaction struct {
	Caller   account.Pubkey   // Caller identity, passed through unused.
	Accounts []account.Pubkey // Accounts lent to the program, in order.
	Data     []byte           // Instruction payload.
}

// Runtime is the host simulation: an account table plus the program.
type Runtime struct {
	Verbose   bool               // If set, enables verbose logging.
	ProgramID account.Pubkey     // Address of the counter program.
	Processor *program.Processor // Reference to the program.
	Metrics   *Metrics           // Invocation metrics.

	accounts map[account.Pubkey]*account.Account
	logs     []string
}

// NewRuntime creates an empty runtime for the program.
func NewRuntime(programID account.Pubkey) (rt *Runtime) {
	rt = &Runtime{
		ProgramID: programID,
		Processor: &program.Processor{},
		Metrics:   NewMetrics(),
		accounts:  make(map[account.Pubkey]*account.Account),
	}

	return
}

// AddAccount adds an account to the table.
func (rt *Runtime) AddAccount(acct *account.Account) (err error) {
	_, ok := rt.accounts[acct.Key]
	if ok {
		err = &ErrAccount{Key: acct.Key, Err: ErrAccountExists}
		return
	}

	rt.accounts[acct.Key] = acct

	return
}

// CreateCounter adds a writable, program owned account holding count.
func (rt *Runtime) CreateCounter(key account.Pubkey, count uint32) (acct *account.Account, err error) {
	acct = &account.Account{
		Key:      key,
		Owner:    rt.ProgramID,
		Writable: true,
		Data:     program.Counter{Count: count}.Marshal(),
	}

	err = rt.AddAccount(acct)
	if err != nil {
		acct = nil
	}

	return
}

// Account returns the account at an address.
func (rt *Runtime) Account(key account.Pubkey) (acct *account.Account, ok bool) {
	acct, ok = rt.accounts[key]
	return
}

// Accounts iterates over the account table in address order.
func (rt *Runtime) Accounts() iter.Seq2[account.Pubkey, *account.Account] {
	return internal.SortedMap(rt.accounts, account.Pubkey.Compare)
}

// LoadData replaces the raw data of an account from a reader.
func (rt *Runtime) LoadData(key account.Pubkey, input io.Reader) (err error) {
	acct, ok := rt.accounts[key]
	if !ok {
		err = &ErrAccount{Key: key, Err: ErrAccountUnknown}
		return
	}

	err = acct.Unmarshal(input)
	if err != nil {
		err = &ErrAccount{Key: key, Err: err}
		return
	}

	if rt.Verbose {
		log.Printf("runtime: %v: loaded %v bytes", key, len(acct.Data))
	}

	return
}

// DumpData writes the raw data of an account.
func (rt *Runtime) DumpData(key account.Pubkey, output io.Writer) (err error) {
	acct, ok := rt.accounts[key]
	if !ok {
		err = &ErrAccount{Key: key, Err: ErrAccountUnknown}
		return
	}

	err = acct.Marshal(output)
	if err != nil {
		err = &ErrAccount{Key: key, Err: err}
	}

	return
}

// Counter decodes the counter held by an account.
func (rt *Runtime) Counter(key account.Pubkey) (count uint32, err error) {
	acct, ok := rt.accounts[key]
	if !ok {
		err = &ErrAccount{Key: key, Err: ErrAccountUnknown}
		return
	}

	counter, err := program.UnmarshalCounter(acct.Data)
	if err != nil {
		err = &ErrAccount{Key: key, Err: err}
		return
	}

	count = counter.Count
	return
}

// Defines returns the assembler defines for scripts targeting key.
// COUNT is the counter value at the time of the call.
func (rt *Runtime) Defines(key account.Pubkey) iter.Seq2[string, string] {
	defines := map[string]string{
		"ACCOUNTS": fmt.Sprintf("%v", len(rt.accounts)),
	}

	count, err := rt.Counter(key)
	if err == nil {
		defines["COUNT"] = fmt.Sprintf("%v", count)
	}

	return internal.IterSeq2Concat(program.Defines(), maps.All(defines))
}

// Logs returns the log lines of all invocations so far.
func (rt *Runtime) Logs() []string {
	return slices.Clone(rt.logs)
}

// ClearLogs discards the collected log lines.
func (rt *Runtime) ClearLogs() {
	rt.logs = rt.logs[:0]
}

func (rt *Runtime) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	rt.logs = append(rt.logs, line)
	if rt.Verbose {
		log.Printf("runtime: %v", line)
	}
}

// programLog collects program log output into the runtime's log.
type programLog struct {
	rt *Runtime
}

func (pl programLog) Write(data []byte) (n int, err error) {
	for line := range strings.Lines(string(data)) {
		pl.rt.logf("Program log: %v", strings.TrimSuffix(line, "\n"))
	}

	return len(data), nil
}

// resolve looks up the transaction's accounts, in order.
func (rt *Runtime) resolve(keys []account.Pubkey) (accounts []*account.Account, err error) {
	accounts = make([]*account.Account, 0, len(keys))
	for _, key := range keys {
		acct, ok := rt.accounts[key]
		if !ok {
			err = &ErrAccount{Key: key, Err: ErrAccountUnknown}
			return
		}
		accounts = append(accounts, acct)
	}

	return
}

// verify checks the program only changed what it was permitted to.
func (rt *Runtime) verify(before []*account.Account) (err error) {
	for _, snap := range before {
		acct := rt.accounts[snap.Key]
		if acct.Equal(snap) {
			continue
		}

		switch {
		case len(acct.Data) != len(snap.Data):
			err = ErrDataSizeChanged
		case !acct.Writable:
			err = ErrReadonlyDataModified
		case acct.Owner != rt.ProgramID:
			err = ErrExternalDataModified
		default:
			continue
		}

		err = &ErrAccount{Key: acct.Key, Err: err}
		return
	}

	return
}

// Invoke runs one transaction through the program.
//
// Either the program succeeds and passes the host checks, or every
// account lent to it is restored to its state before the invocation.
func (rt *Runtime) Invoke(tx Transaction) (err error) {
	defer func() {
		rt.Metrics.Observe(err)
		if err != nil {
			rt.logf("Program %v failed: %v", rt.ProgramID, err)
			err = &ErrInvoke{Program: rt.ProgramID, Err: err}
		} else {
			rt.logf("Program %v success", rt.ProgramID)
		}
	}()

	rt.logf("Program %v invoke", rt.ProgramID)

	accounts, err := rt.resolve(tx.Accounts)
	if err != nil {
		return
	}

	var before []*account.Account
	seen := make(map[account.Pubkey]bool, len(accounts))
	for _, acct := range accounts {
		if seen[acct.Key] {
			continue
		}
		seen[acct.Key] = true
		before = append(before, acct.Clone())
	}

	defer func() {
		if err != nil {
			for _, snap := range before {
				rt.accounts[snap.Key].Data = snap.Data
			}
		}
	}()

	proc := *rt.Processor
	proc.Verbose = proc.Verbose || rt.Verbose
	proc.Log = log.New(programLog{rt: rt}, "", 0)

	err = proc.ProcessInstruction(rt.ProgramID, accounts, tx.Data)
	if err != nil {
		return
	}

	err = rt.verify(before)
	if err != nil {
		return
	}

	if acct, _, ok := account.Next(accounts); ok {
		count, cerr := rt.Counter(acct.Key)
		if cerr == nil {
			rt.Metrics.SetValue(acct.Key, count)
		}
	}

	return
}

// Run invokes each instruction of an assembled script against one account,
// stopping at the first failure.
func (rt *Runtime) Run(key account.Pubkey, script *program.Script) (err error) {
	for lineno, data := range script.Payloads() {
		err = rt.Invoke(Transaction{
			Accounts: []account.Pubkey{key},
			Data:     data,
		})
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
			return
		}
	}

	return
}

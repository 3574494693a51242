// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math"

	"github.com/ezrec/counter/account"
)

var _program_defines = map[string]string{
	"U32_MAX":          fmt.Sprintf("%#x", uint32(math.MaxUint32)),
	"INCREMENT":        fmt.Sprintf("%v", uint8(INSTRUCTION_INCREMENT)),
	"DECREMENT":        fmt.Sprintf("%v", uint8(INSTRUCTION_DECREMENT)),
	"COUNTER_SIZE":     fmt.Sprintf("%v", COUNTER_SIZE),
	"INSTRUCTION_SIZE": fmt.Sprintf("%v", INSTRUCTION_SIZE),
}

// Defines returns an iterator over the program's assembler defines.
func Defines() iter.Seq2[string, string] {
	return maps.All(_program_defines)
}

// Processor is the counter program's instruction processor.
// It holds no state between invocations.
type Processor struct {
	Verbose bool        // If set, enables verbose logging.
	Log     *log.Logger // Program log; log.Default() if nil.
}

// NewProcessor creates a processor writing to the default logger.
func NewProcessor() *Processor {
	return &Processor{
		Log: log.Default(),
	}
}

func (proc *Processor) logger() *log.Logger {
	if proc.Log == nil {
		return log.Default()
	}
	return proc.Log
}

// ProcessInstruction applies one encoded instruction to the counter held
// in the first account.
//
// The account's data is only written once both the counter and the
// instruction have been decoded. The caller identity is unused.
func (proc *Processor) ProcessInstruction(programID account.Pubkey, accounts []*account.Account, data []byte) (err error) {
	acct, _, ok := account.Next(accounts)
	if !ok {
		err = ErrMissingAccount
		return
	}

	counter, err := UnmarshalCounter(acct.Data)
	if err != nil {
		err = &ErrAccountData{Key: acct.Key, Err: err}
		return
	}

	in, err := UnmarshalInstruction(data)
	if err != nil {
		err = &ErrInstructionData{Data: data, Err: err}
		return
	}

	if proc.Verbose {
		log.Printf("program %v: %v on %v (count %v)", programID, in, acct.Key, counter.Count)
	}

	counter = in.Apply(counter)

	err = counter.MarshalTo(acct.Data)
	if err != nil {
		err = &ErrAccountData{Key: acct.Key, Err: err}
		return
	}

	proc.logger().Printf("Counter updated to %d", counter.Count)

	return
}

package program

import (
	"encoding/binary"
	"errors"
)

// COUNTER_SIZE is the size in bytes of an encoded Counter.
const COUNTER_SIZE = 4

// Counter is the state persisted in a counter account.
type Counter struct {
	Count uint32
}

// UnmarshalCounter decodes a counter from exactly COUNTER_SIZE bytes.
func UnmarshalCounter(data []byte) (counter Counter, err error) {
	if len(data) != COUNTER_SIZE {
		err = errors.Join(ErrDecode, ErrDataLength)
		return
	}

	counter.Count = binary.LittleEndian.Uint32(data)
	return
}

// Marshal returns the encoded counter.
func (counter Counter) Marshal() []byte {
	return binary.LittleEndian.AppendUint32(nil, counter.Count)
}

// MarshalTo encodes the counter in place at the start of data.
func (counter Counter) MarshalTo(data []byte) (err error) {
	if len(data) < COUNTER_SIZE {
		err = errors.Join(ErrWriteFailure, ErrDataLength)
		return
	}

	binary.LittleEndian.PutUint32(data, counter.Count)
	return
}

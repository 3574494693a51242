package program

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzUnmarshalInstruction(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xff})
	for kind := range 3 {
		f.Add([]byte{byte(kind), 0, 0, 0})
		f.Add([]byte{byte(kind), 5, 0, 0, 0})
		f.Add([]byte{byte(kind), 0xff, 0xff, 0xff, 0xff})
		f.Add([]byte{byte(kind), 1, 0, 0, 0, 0})
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		in, err := UnmarshalInstruction(data)
		if err != nil {
			assert.ErrorIs(err, ErrDecode)
			assert.Equal(Instruction{}, in)

			var disc ErrDiscriminant
			if errors.As(err, &disc) {
				assert.Equal(ErrDiscriminant(data[0]), disc)
			} else {
				assert.ErrorIs(err, ErrDataLength)
			}
			return
		}

		assert.Equal(INSTRUCTION_SIZE, len(data))
		assert.True(in.Kind.Valid())
		assert.Equal(data, in.Marshal())
	})
}

func FuzzCounter(f *testing.F) {
	for _, count := range []uint32{0, 1, 0x7fffffff, 0x80000000, 0xffffffff} {
		for _, amount := range []uint32{0, 1, 0xffffffff} {
			f.Add(count, amount)
		}
	}

	f.Fuzz(func(t *testing.T, count uint32, amount uint32) {
		assert := assert.New(t)

		data := Counter{Count: count}.Marshal()
		assert.Equal(COUNTER_SIZE, len(data))

		counter, err := UnmarshalCounter(data)
		assert.NoError(err)
		assert.Equal(count, counter.Count)

		buf := make([]byte, COUNTER_SIZE)
		assert.NoError(counter.MarshalTo(buf))
		assert.Equal(data, buf)

		up := Increment(amount).Apply(counter)
		assert.Equal(count+amount, up.Count)
		assert.Equal(counter, Decrement(amount).Apply(up))
	})
}

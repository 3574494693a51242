package program

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, count := range []uint32{0, 1, 10, 0x12345678, 0x80000000, math.MaxUint32} {
		data := Counter{Count: count}.Marshal()
		assert.Equal(COUNTER_SIZE, len(data))

		counter, err := UnmarshalCounter(data)
		assert.NoError(err)
		assert.Equal(count, counter.Count)
	}
}

func TestCounterLayout(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0x78, 0x56, 0x34, 0x12}, Counter{Count: 0x12345678}.Marshal())

	counter, err := UnmarshalCounter([]byte{10, 0, 0, 0})
	assert.NoError(err)
	assert.Equal(uint32(10), counter.Count)
}

func TestCounterDecodeLength(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		data []byte
	}){
		{"nil", nil},
		{"short", []byte{1, 2, 3}},
		{"long", []byte{1, 2, 3, 4, 5}},
	}

	for _, entry := range table {
		_, err := UnmarshalCounter(entry.data)
		assert.ErrorIs(err, ErrDecode, entry.name)
		assert.ErrorIs(err, ErrDataLength, entry.name)
	}
}

func TestCounterMarshalTo(t *testing.T) {
	assert := assert.New(t)

	data := []byte{0xff, 0xff, 0xff, 0xff, 0xaa}
	assert.NoError(Counter{Count: 15}.MarshalTo(data))
	assert.Equal([]byte{15, 0, 0, 0, 0xaa}, data)

	short := []byte{1, 2}
	err := Counter{Count: 15}.MarshalTo(short)
	assert.ErrorIs(err, ErrWriteFailure)
	assert.Equal([]byte{1, 2}, short)
}

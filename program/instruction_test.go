package program

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("increment", INSTRUCTION_INCREMENT.String())
	assert.Equal("decrement", INSTRUCTION_DECREMENT.String())
	assert.Equal("InstructionKind(2)", InstructionKind(2).String())

	assert.True(INSTRUCTION_INCREMENT.Valid())
	assert.True(INSTRUCTION_DECREMENT.Valid())
	assert.False(InstructionKind(2).Valid())
}

func TestInstructionMarshal(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0, 5, 0, 0, 0}, Increment(5).Marshal())
	assert.Equal([]byte{1, 0x78, 0x56, 0x34, 0x12}, Decrement(0x12345678).Marshal())

	in, err := UnmarshalInstruction([]byte{0, 5, 0, 0, 0})
	assert.NoError(err)
	assert.Equal(Increment(5), in)

	in, err = UnmarshalInstruction([]byte{1, 0xff, 0xff, 0xff, 0xff})
	assert.NoError(err)
	assert.Equal(Decrement(math.MaxUint32), in)

	assert.Equal("increment 5", Increment(5).String())
	assert.Equal("decrement 3", Decrement(3).String())
}

func TestInstructionDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		data   []byte
		detail error
	}){
		{"empty", nil, ErrDataLength},
		{"unknown", []byte{2, 0, 0, 0, 0}, ErrDiscriminant(2)},
		{"unknown_short", []byte{0xff}, ErrDiscriminant(0xff)},
		{"truncated", []byte{0, 0, 0}, ErrDataLength},
		{"kind_only", []byte{1}, ErrDataLength},
		{"trailing", []byte{0, 1, 0, 0, 0, 0}, ErrDataLength},
	}

	for _, entry := range table {
		_, err := UnmarshalInstruction(entry.data)
		assert.ErrorIs(err, ErrDecode, entry.name)
		assert.ErrorIs(err, entry.detail, entry.name)

		var disc ErrDiscriminant
		if errors.As(entry.detail, &disc) {
			var got ErrDiscriminant
			if assert.True(errors.As(err, &got), entry.name) {
				assert.Equal(disc, got, entry.name)
			}
		}
	}
}

func TestErrDiscriminant(t *testing.T) {
	assert := assert.New(t)

	_, err := UnmarshalInstruction([]byte{7, 0, 0, 0, 0})

	var disc ErrDiscriminant
	if assert.True(errors.As(err, &disc)) {
		assert.Equal(ErrDiscriminant(7), disc)
	}

	assert.ErrorIs(err, ErrDiscriminant(7))
	assert.NotErrorIs(err, ErrDiscriminant(2))
	assert.NotErrorIs(err, ErrDataLength)
}

func TestInstructionApply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		count uint32
		in    Instruction
		want  uint32
	}){
		{"inc", 5, Increment(3), 8},
		{"dec", 5, Decrement(3), 2},
		{"inc_wrap", math.MaxUint32, Increment(1), 0},
		{"dec_wrap", 0, Decrement(1), math.MaxUint32},
		{"inc_wrap_far", 0xfffffff0, Increment(0x20), 0x10},
		{"dec_wrap_far", 0x10, Decrement(0x20), 0xfffffff0},
		{"inc_zero", 1234, Increment(0), 1234},
		{"dec_zero", 1234, Decrement(0), 1234},
		{"inc_zero_max", math.MaxUint32, Increment(0), math.MaxUint32},
		{"dec_zero_min", 0, Decrement(0), 0},
	}

	for _, entry := range table {
		counter := entry.in.Apply(Counter{Count: entry.count})
		assert.Equal(entry.want, counter.Count, entry.name)
	}
}

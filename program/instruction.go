package program

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// InstructionKind is the discriminant of an instruction.
type InstructionKind uint8

//go:generate go tool stringer -linecomment -type=InstructionKind
const (
	INSTRUCTION_INCREMENT = InstructionKind(0) // increment
	INSTRUCTION_DECREMENT = InstructionKind(1) // decrement
)

// INSTRUCTION_SIZE is the size in bytes of an encoded Instruction.
const INSTRUCTION_SIZE = 5

// Valid returns true if the kind is a known instruction.
func (kind InstructionKind) Valid() bool {
	return kind <= INSTRUCTION_DECREMENT
}

// Instruction is a single operation on a Counter.
type Instruction struct {
	Kind   InstructionKind
	Amount uint32
}

// Increment makes an increment instruction.
func Increment(amount uint32) Instruction {
	return Instruction{Kind: INSTRUCTION_INCREMENT, Amount: amount}
}

// Decrement makes a decrement instruction.
func Decrement(amount uint32) Instruction {
	return Instruction{Kind: INSTRUCTION_DECREMENT, Amount: amount}
}

// UnmarshalInstruction decodes the discriminant, then the amount.
func UnmarshalInstruction(data []byte) (in Instruction, err error) {
	if len(data) == 0 {
		err = errors.Join(ErrDecode, ErrDataLength)
		return
	}

	kind := InstructionKind(data[0])
	if !kind.Valid() {
		err = errors.Join(ErrDecode, ErrDiscriminant(data[0]))
		return
	}

	if len(data) != INSTRUCTION_SIZE {
		err = errors.Join(ErrDecode, ErrDataLength)
		return
	}

	in = Instruction{
		Kind:   kind,
		Amount: binary.LittleEndian.Uint32(data[1:]),
	}
	return
}

// Marshal returns the encoded instruction.
func (in Instruction) Marshal() []byte {
	return binary.LittleEndian.AppendUint32([]byte{byte(in.Kind)}, in.Amount)
}

// Apply returns the counter after the instruction.
// Arithmetic wraps modulo 2^32 in both directions.
func (in Instruction) Apply(counter Counter) Counter {
	switch in.Kind {
	case INSTRUCTION_INCREMENT:
		counter.Count += in.Amount
	case INSTRUCTION_DECREMENT:
		counter.Count -= in.Amount
	}

	return counter
}

// String returns the instruction in assembler syntax.
func (in Instruction) String() string {
	return fmt.Sprintf("%v %d", in.Kind, in.Amount)
}

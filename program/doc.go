// Package program implements the counter program and an assembler for its
// instruction set.
//
// The program owns a single unsigned 32-bit counter persisted in the first
// account handed to it by the host. Each invocation carries one instruction,
// either an increment or a decrement by a 32-bit amount, which is applied
// with wraparound arithmetic before the counter is written back in place.
//
// The assembler turns a small line oriented language into instruction
// payloads, supporting equates and compile-time expression evaluation.
package program

// Package chip8 decodes CHIP-8 programs into instruction listings.
//
// Decoding is a linear scan over the program buffer: every 2 byte aligned
// window is read as a big endian opcode and classified independently of its
// neighbours. Opcodes that match no known instruction form are skipped.
package chip8

import (
	"errors"
	"fmt"
)

// ErrTruncatedInstruction is returned when the program buffer ends in the
// middle of an opcode.
var ErrTruncatedInstruction = errors.New("truncated instruction")

// Decode decodes all complete opcodes of the program buffer and returns the
// recognized instructions in buffer order.
// If the buffer has an odd length the instructions of all complete opcodes
// are returned together with an error wrapping ErrTruncatedInstruction.
func Decode(data []byte) ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(data)/OpcodeSize)

	pc := 0
	for ; pc+1 < len(data); pc += OpcodeSize {
		op := ReadOpcode(data, pc)
		kind := Classify(op)
		if kind == KindUnknown {
			continue
		}

		instructions = append(instructions, Instruction{
			Offset: pc,
			Opcode: op,
			Kind:   kind,
		})
	}

	if pc < len(data) {
		return instructions, fmt.Errorf("%w: %d trailing byte at offset %d",
			ErrTruncatedInstruction, len(data)-pc, pc)
	}
	return instructions, nil
}

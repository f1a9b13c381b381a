// Package writer implements the listing output of decoded CHIP-8 programs.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/chip8disasm/internal/chip8"
)

// Writer renders instruction listings and writes them to an output.
type Writer struct {
	writer io.Writer
}

// New creates a new writer.
func New(writer io.Writer) *Writer {
	return &Writer{
		writer: writer,
	}
}

// Write renders all instructions and writes the resulting text to the
// output in a single write call.
func (w Writer) Write(instructions []chip8.Instruction) error {
	text := Format(instructions)
	if text == "" {
		return nil
	}

	if _, err := io.WriteString(w.writer, text); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// Format returns the listing text of the instructions, one line per
// instruction, every line terminated by a line break.
func Format(instructions []chip8.Instruction) string {
	var sb strings.Builder
	for _, ins := range instructions {
		line := ins.String()
		if line == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Disassemble decodes the program and returns its listing text.
// On a truncated trailing opcode the listing of all complete opcodes is
// returned together with the decoding error.
func Disassemble(data []byte) (string, error) {
	instructions, err := chip8.Decode(data)
	return Format(instructions), err
}

package writer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/chip8disasm/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"empty", []byte{}, ""},
		{"clear and jump", []byte{0x00, 0xE0, 0x1F, 0xFF}, "CLS\nJMP 4095\n"},
		{"load and add", []byte{0x60, 0x0A, 0x61, 0x0B, 0x81, 0x04}, "LD V0 10\nLD V1 11\nADD V1 V0\n"},
		{"unknown opcode", []byte{0xFF, 0xFF}, ""},
		{"draw", []byte{0xD1, 0x2F}, "DRW V1 V2 15\n"},
		{"timers", []byte{0xF3, 0x07, 0xF3, 0x15, 0xF3, 0x18}, "LD V3 DT\nLD DT V3\nLD ST V3\n"},
		{"memory", []byte{0xF4, 0x55, 0xF4, 0x65, 0xF4, 0x33, 0xF4, 0x29}, "LD [I] V4\nLD V4 [I]\nLD B V4\nLD F V4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Disassemble(tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestDisassemble_Truncated(t *testing.T) {
	text, err := Disassemble([]byte{0x00, 0xEE, 0x12})
	assert.True(t, errors.Is(err, chip8.ErrTruncatedInstruction))
	assert.Equal(t, "RET\n", text)
}

func TestWriter_Write(t *testing.T) {
	instructions, err := chip8.Decode([]byte{0x22, 0x00, 0x00, 0xEE})
	assert.NoError(t, err)

	buf := &bytes.Buffer{}
	w := New(buf)
	assert.NoError(t, w.Write(instructions))
	assert.Equal(t, "CALL 512\nRET\n", buf.String())
}

type countingWriter struct {
	calls int
	data  []byte
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.calls++
	c.data = append(c.data, p...)
	return len(p), nil
}

func TestWriter_WriteSingleCall(t *testing.T) {
	instructions, err := chip8.Decode([]byte{0x60, 0x01, 0x61, 0x02, 0x80, 0x14, 0x00, 0xE0})
	assert.NoError(t, err)

	out := &countingWriter{}
	assert.NoError(t, New(out).Write(instructions))
	assert.Equal(t, 1, out.calls)
	assert.Equal(t, "LD V0 1\nLD V1 2\nADD V0 V1\nCLS\n", string(out.data))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_WriteError(t *testing.T) {
	instructions := []chip8.Instruction{{Opcode: 0x00E0, Kind: chip8.KindCLS}}

	err := New(failingWriter{}).Write(instructions)
	assert.ErrorContains(t, err, "writing listing")
	assert.ErrorContains(t, err, "disk full")
}

func TestFormat_SkipsUnknown(t *testing.T) {
	instructions := []chip8.Instruction{
		{Opcode: 0xFFFF, Kind: chip8.KindUnknown},
		{Offset: 2, Opcode: 0x00E0, Kind: chip8.KindCLS},
	}
	assert.Equal(t, "CLS\n", Format(instructions))
}

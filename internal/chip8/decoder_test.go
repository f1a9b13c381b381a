package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected []string
	}{
		{"empty", nil, []string{}},
		{"clear and jump", []byte{0x00, 0xE0, 0x1F, 0xFF}, []string{"CLS", "JMP 4095"}},
		{"load and add", []byte{0x60, 0x0A, 0x61, 0x0B, 0x81, 0x04}, []string{"LD V0 10", "LD V1 11", "ADD V1 V0"}},
		{"unknown opcode", []byte{0xFF, 0xFF}, []string{}},
		{"draw", []byte{0xD1, 0x2F}, []string{"DRW V1 V2 15"}},
		{"unknown between known", []byte{0x00, 0xE0, 0x00, 0x00, 0x00, 0xEE}, []string{"CLS", "RET"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instructions, err := Decode(tt.data)
			assert.NoError(t, err)

			lines := make([]string, 0, len(instructions))
			for _, ins := range instructions {
				lines = append(lines, ins.String())
			}
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestDecode_Offsets(t *testing.T) {
	data := []byte{0x00, 0xE0, 0xFF, 0xFF, 0x12, 0x00, 0xA2, 0x2A}

	instructions, err := Decode(data)
	assert.NoError(t, err)
	assert.Len(t, instructions, 3)

	assert.Equal(t, 0, instructions[0].Offset)
	assert.Equal(t, 4, instructions[1].Offset)
	assert.Equal(t, 6, instructions[2].Offset)
	assert.Equal(t, Opcode(0xA22A), instructions[2].Opcode)
	assert.Equal(t, KindLDI, instructions[2].Kind)
}

func TestDecode_Truncated(t *testing.T) {
	t.Run("single byte", func(t *testing.T) {
		instructions, err := Decode([]byte{0x00})
		assert.True(t, errors.Is(err, ErrTruncatedInstruction))
		assert.Empty(t, instructions)
	})

	t.Run("trailing byte", func(t *testing.T) {
		instructions, err := Decode([]byte{0x00, 0xE0, 0x1F, 0xFF, 0x00})
		assert.True(t, errors.Is(err, ErrTruncatedInstruction))
		assert.ErrorContains(t, err, "offset 4")
		assert.Len(t, instructions, 2)
		assert.Equal(t, "CLS", instructions[0].String())
		assert.Equal(t, "JMP 4095", instructions[1].String())
	})
}

func TestDecode_Deterministic(t *testing.T) {
	data := make([]byte, 0, 2*0x10000)
	for w := 0; w <= 0xFFFF; w++ {
		data = append(data, byte(w>>8), byte(w))
	}

	first, err := Decode(data)
	assert.NoError(t, err)
	second, err := Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 10*4096+11*256+11*16+2)

	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Offset < first[i].Offset)
	}
}

func TestDecode_DoesNotModifyInput(t *testing.T) {
	data := []byte{0x81, 0x04, 0xD1, 0x2F, 0x07}
	original := append([]byte(nil), data...)

	_, _ = Decode(data)
	assert.Equal(t, original, data)
}

package chip8

import (
	"strconv"
	"strings"
)

// Instruction is a single decoded opcode of a program.
type Instruction struct {
	Offset int // byte offset of the opcode in the program buffer
	Opcode Opcode
	Kind   Kind
}

// Mnemonic returns the instruction name.
func (i Instruction) Mnemonic() string {
	return i.Kind.Mnemonic()
}

// Operands returns the rendered operand tokens in output order.
func (i Instruction) Operands() []string {
	if !i.Kind.Known() {
		return nil
	}

	specs := forms[i.Kind].operands
	operands := make([]string, 0, len(specs))
	for _, spec := range specs {
		operands = append(operands, i.renderOperand(spec))
	}
	return operands
}

// String returns the listing line of the instruction without a line break.
func (i Instruction) String() string {
	if !i.Kind.Known() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(i.Mnemonic())
	for _, op := range i.Operands() {
		sb.WriteByte(' ')
		sb.WriteString(op)
	}
	return sb.String()
}

func (i Instruction) renderOperand(spec operandSpec) string {
	switch spec.typ {
	case operandAddress:
		return strconv.Itoa(int(i.Opcode.Address()))
	case operandByte:
		return strconv.Itoa(int(i.Opcode.Byte()))
	case operandX:
		return register(i.Opcode.X())
	case operandY:
		return register(i.Opcode.Y())
	case operandN:
		return strconv.Itoa(int(i.Opcode.N()))
	default:
		return spec.literal
	}
}

func register(index uint8) string {
	return "V" + strconv.Itoa(int(index))
}

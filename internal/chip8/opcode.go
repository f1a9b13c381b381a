package chip8

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Opcode is a 16 bit CHIP-8 instruction word.
type Opcode uint16

// ReadOpcode returns the big endian opcode stored at the given offset.
// The caller has to ensure that offset+1 is within the buffer.
func ReadOpcode(data []byte, offset int) Opcode {
	return Opcode(uint16(data[offset])<<8 | uint16(data[offset+1]))
}

// Nibbles returns the four 4 bit fields of the opcode, most significant first.
func (o Opcode) Nibbles() [4]uint8 {
	return [4]uint8{
		uint8(o>>12) & 0xF,
		uint8(o>>8) & 0xF,
		uint8(o>>4) & 0xF,
		uint8(o) & 0xF,
	}
}

// Address returns the 12 bit address or literal nnn.
func (o Opcode) Address() uint16 {
	return uint16(o) & 0x0FFF
}

// Byte returns the 8 bit literal kk.
func (o Opcode) Byte() uint8 {
	return uint8(o)
}

// X returns the register index encoded in bits 11-8.
func (o Opcode) X() uint8 {
	return uint8(o>>8) & 0xF
}

// Y returns the register index encoded in bits 7-4.
func (o Opcode) Y() uint8 {
	return uint8(o>>4) & 0xF
}

// N returns the 4 bit count encoded in bits 3-0.
func (o Opcode) N() uint8 {
	return uint8(o) & 0xF
}

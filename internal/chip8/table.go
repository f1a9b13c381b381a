package chip8

import (
	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// kinds maps the opcode patterns of the CPU instruction table to the
// instruction forms of the listing.
var kinds = map[cpu.OpcodeInfo]Kind{
	cpu.Opcode00E0: KindCLS,
	cpu.Opcode00EE: KindRET,
	cpu.Opcode1000: KindJP,
	cpu.Opcode2000: KindCALL,
	cpu.Opcode3000: KindSEByte,
	cpu.Opcode4000: KindSNEByte,
	cpu.Opcode5000: KindSEReg,
	cpu.Opcode6000: KindLDByte,
	cpu.Opcode7000: KindADDByte,
	cpu.Opcode8000: KindLDReg,
	cpu.Opcode8001: KindOR,
	cpu.Opcode8002: KindAND,
	cpu.Opcode8003: KindXOR,
	cpu.Opcode8004: KindADDReg,
	cpu.Opcode8005: KindSUB,
	cpu.Opcode8006: KindSHR,
	cpu.Opcode8007: KindSUBN,
	cpu.Opcode800E: KindSHL,
	cpu.Opcode9000: KindSNEReg,
	cpu.OpcodeA000: KindLDI,
	cpu.OpcodeB000: KindJPV0,
	cpu.OpcodeC000: KindRND,
	cpu.OpcodeD000: KindDRW,
	cpu.OpcodeE09E: KindSKP,
	cpu.OpcodeE0A1: KindSKNP,
	cpu.OpcodeF007: KindLDVxDT,
	cpu.OpcodeF00A: KindLDVxK,
	cpu.OpcodeF015: KindLDDTVx,
	cpu.OpcodeF018: KindLDSTVx,
	cpu.OpcodeF01E: KindADDI,
	cpu.OpcodeF029: KindLDF,
	cpu.OpcodeF033: KindLDB,
	cpu.OpcodeF055: KindLDIVx,
	cpu.OpcodeF065: KindLDVxI,
}

// Classify returns the instruction form of the opcode, or KindUnknown if no
// entry of the CPU opcode table matches. The opcodes of the leading nibble
// are checked in table order, the first match wins.
func Classify(op Opcode) Kind {
	w := uint16(op)
	for _, opcode := range cpu.Opcodes[w>>12] {
		if opcode.Info.Mask&w == opcode.Info.Value {
			return kinds[opcode.Info]
		}
	}
	return KindUnknown
}

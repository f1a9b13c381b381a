package chip8

// Kind identifies one of the instruction forms that the decoder recognizes.
type Kind uint8

// Instruction forms, named after the opcode layout they decode.
const (
	KindUnknown Kind = iota
	KindCLS          // 00E0
	KindRET          // 00EE
	KindJP           // 1nnn
	KindCALL         // 2nnn
	KindSEByte       // 3xkk
	KindSNEByte      // 4xkk
	KindSEReg        // 5xy0
	KindLDByte       // 6xkk
	KindADDByte      // 7xkk
	KindLDReg        // 8xy0
	KindOR           // 8xy1
	KindAND          // 8xy2
	KindXOR          // 8xy3
	KindADDReg       // 8xy4
	KindSUB          // 8xy5
	KindSHR          // 8xy6
	KindSUBN         // 8xy7
	KindSHL          // 8xyE
	KindSNEReg       // 9xy0
	KindLDI          // Annn
	KindJPV0         // Bnnn
	KindRND          // Cxkk
	KindDRW          // Dxyn
	KindSKP          // Ex9E
	KindSKNP         // ExA1
	KindLDVxDT       // Fx07
	KindLDVxK        // Fx0A
	KindLDDTVx       // Fx15
	KindLDSTVx       // Fx18
	KindADDI         // Fx1E
	KindLDF          // Fx29
	KindLDB          // Fx33
	KindLDIVx        // Fx55
	KindLDVxI        // Fx65

	kindCount
)

// operand describes how a single operand token is rendered.
type operand uint8

const (
	operandAddress  operand = iota // nnn
	operandByte                    // kk
	operandX                       // Vx
	operandY                       // Vy
	operandN                       // n
	operandLiteral                 // fixed token like I, DT or [I]
)

type operandSpec struct {
	typ     operand
	literal string
}

type form struct {
	mnemonic string
	operands []operandSpec
}

var (
	opAddr = operandSpec{typ: operandAddress}
	opByte = operandSpec{typ: operandByte}
	opVx   = operandSpec{typ: operandX}
	opVy   = operandSpec{typ: operandY}
	opN    = operandSpec{typ: operandN}
)

func lit(s string) operandSpec {
	return operandSpec{typ: operandLiteral, literal: s}
}

// forms maps every kind to its mnemonic and operand layout.
var forms = [kindCount]form{
	KindCLS:     {"CLS", nil},
	KindRET:     {"RET", nil},
	KindJP:      {"JMP", []operandSpec{opAddr}},
	KindCALL:    {"CALL", []operandSpec{opAddr}},
	KindSEByte:  {"SE", []operandSpec{opVx, opByte}},
	KindSNEByte: {"SNE", []operandSpec{opVx, opByte}},
	KindSEReg:   {"SE", []operandSpec{opVx, opVy}},
	KindLDByte:  {"LD", []operandSpec{opVx, opByte}},
	KindADDByte: {"ADD", []operandSpec{opVx, opByte}},
	KindLDReg:   {"LD", []operandSpec{opVx, opVy}},
	KindOR:      {"OR", []operandSpec{opVx, opVy}},
	KindAND:     {"AND", []operandSpec{opVx, opVy}},
	KindXOR:     {"XOR", []operandSpec{opVx, opVy}},
	KindADDReg:  {"ADD", []operandSpec{opVx, opVy}},
	KindSUB:     {"SUB", []operandSpec{opVx, opVy}},
	KindSHR:     {"SHR", []operandSpec{opVx}},
	KindSUBN:    {"SUBN", []operandSpec{opVx, opVy}},
	KindSHL:     {"SHL", []operandSpec{opVx}},
	KindSNEReg:  {"SNE", []operandSpec{opVx, opVy}},
	KindLDI:     {"LD", []operandSpec{lit("I"), opAddr}},
	KindJPV0:    {"JMP", []operandSpec{lit("V0"), opAddr}},
	KindRND:     {"RND", []operandSpec{opVx, opByte}},
	KindDRW:     {"DRW", []operandSpec{opVx, opVy, opN}},
	KindSKP:     {"SKP", []operandSpec{opVx}},
	KindSKNP:    {"SKNP", []operandSpec{opVx}},
	KindLDVxDT:  {"LD", []operandSpec{opVx, lit("DT")}},
	KindLDVxK:   {"LD", []operandSpec{opVx, lit("K")}},
	KindLDDTVx:  {"LD", []operandSpec{lit("DT"), opVx}},
	KindLDSTVx:  {"LD", []operandSpec{lit("ST"), opVx}},
	KindADDI:    {"ADD", []operandSpec{lit("I"), opVx}},
	KindLDF:     {"LD", []operandSpec{lit("F"), opVx}},
	KindLDB:     {"LD", []operandSpec{lit("B"), opVx}},
	KindLDIVx:   {"LD", []operandSpec{lit("[I]"), opVx}},
	KindLDVxI:   {"LD", []operandSpec{opVx, lit("[I]")}},
}

// Mnemonic returns the instruction name of the kind, or an empty string
// for KindUnknown.
func (k Kind) Mnemonic() string {
	if k >= kindCount {
		return ""
	}
	return forms[k].mnemonic
}

// OperandCount returns the number of operand tokens the kind renders.
func (k Kind) OperandCount() int {
	if k >= kindCount {
		return 0
	}
	return len(forms[k].operands)
}

// Known returns whether the kind is a recognized instruction form.
func (k Kind) Known() bool {
	return k != KindUnknown && k < kindCount
}

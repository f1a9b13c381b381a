// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // binary CHIP-8 program to disassemble
	Output string // text file to write the listing to
}

// Flags contains behavior options.
type Flags struct {
	Debug bool // enable debug logging
	Quiet bool // only log errors
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8disasm/internal/chip8"
	"github.com/retroenv/chip8disasm/internal/loader"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow. The input is
// loaded and decoded completely before the output file gets created, a
// failing step leaves no output behind.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	data, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("Processing CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", len(data)),
	)

	instructions, err := chip8.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding program: %w", err)
	}
	logger.Debug("Decoded program",
		log.Int("instructions", len(instructions)),
		log.Int("unknown", len(data)/chip8.OpcodeSize-len(instructions)),
	)
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeListing(opts.Output, instructions); err != nil {
		return err
	}

	logger.Info("Listing written", log.String("file", opts.Output))
	return nil
}

func writeListing(path string, instructions []chip8.Instruction) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}

	if err := writer.New(file).Write(instructions); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", path, err)
	}
	return nil
}

// PrintBanner logs the application version unless quiet mode is enabled.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8disasm", log.String("version", versionString(version, commit)))
	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// versionString appends the short form of the commit hash to the version.
func versionString(version, commit string) string {
	if commit == "" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}

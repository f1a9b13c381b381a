// Package main implements the main entry point for the CHIP-8 disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/chip8disasm/internal/cli"
	"github.com/retroenv/chip8disasm/internal/config"
	"github.com/retroenv/chip8disasm/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args)
	logger := config.CreateLogger(opts.Flags)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
			if usageErr.HelpRequested() {
				return
			}
		} else {
			logger.Error("Parsing arguments failed", log.Err(err))
		}
		os.Exit(1)
	}

	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
		} else {
			logger.Error("Disassembling failed", log.Err(err))
		}
		os.Exit(1)
	}
}

// Package main implements an instruction metadata compiler for the
// 6502 CPU. It parses a textual instruction set description, merges in
// the curated unofficial opcodes and emits the dense lookup table as a
// generated Go source file, or opens an interactive table inspector.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/nesgoopcodes/internal/cli"
	"github.com/retroenv/nesgoopcodes/internal/codegen"
	"github.com/retroenv/nesgoopcodes/internal/config"
	"github.com/retroenv/nesgoopcodes/internal/inspect"
	"github.com/retroenv/nesgoopcodes/internal/opcodes"
	"github.com/retroenv/nesgoopcodes/internal/options"
	"github.com/retroenv/nesgoopcodes/internal/table"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error(), nil)
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	if err := processFile(logger, opts); err != nil {
		logger.Fatal(err.Error())
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("nesgoopcodes - 6502 instruction metadata compiler",
		log.String("version", buildinfo.Version(version, commit, date)))
}

func processFile(logger *log.Logger, opts options.Program) error {
	file, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening file '%s': %w", opts.Input, err)
	}

	builder := opcodes.NewBuilder(logger)
	if err := builder.Read(file); err != nil {
		_ = file.Close()
		return err
	}
	_ = file.Close()

	variants := builder.Variants()
	tab, err := table.New(variants)
	if err != nil {
		return fmt.Errorf("building lookup table: %w", err)
	}

	if opts.Inspect {
		return inspect.New(tab, variants).Run(os.Stdin, os.Stdout, !opts.Quiet)
	}

	var outputFile io.WriteCloser
	if opts.Output == "" {
		outputFile = os.Stdout
	} else {
		outputFile, err = os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", opts.Output, err)
		}
	}

	if err := codegen.Write(outputFile, opts.Package, variants); err != nil {
		return err
	}
	if opts.Output != "" {
		if err := outputFile.Close(); err != nil {
			return fmt.Errorf("closing file '%s': %w", opts.Output, err)
		}
		logger.Info("Generated opcode table",
			log.String("file", opts.Output),
			log.Int("variants", len(variants)))
	}
	return nil
}

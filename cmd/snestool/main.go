// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command snestool inspects a SNES ROM image: its header, a hex dump
// of a byte region, or a disassembly of a byte region. It exercises
// go65816's rom, hexdump, and disasm packages; it is not part of the
// CPU core.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"go65816/internal/config"
	"go65816/internal/elog"
)

type cli struct {
	Header  headerCmd  `cmd:"" help:"Parse and print a ROM header."`
	Hexdump hexdumpCmd `cmd:"" help:"Hex-dump a region of a ROM image."`
	Disasm  disasmCmd  `cmd:"" help:"Disassemble a region of a ROM image."`

	Log string `help:"Comma-separated log modules to enable for debugging, or \"all\"." placeholder:"mod0,mod1,..."`
}

func main() {
	var cfg cli
	parser, err := kong.New(&cfg,
		kong.Name("snestool"),
		kong.Description("Inspect SNES ROM images using the go65816 core."),
		kong.UsageOnError(),
	)
	checkf(err, "failed to build command-line parser")

	ctx, err := parser.Parse(os.Args[1:])
	checkf(err, "failed to parse command line")

	if cfg.Log != "" {
		if err := applyLogFlag(cfg.Log); err != nil {
			fatalf("%v", err)
		}
	}

	// config.LoadOrDefault is exercised here purely to keep the
	// ambient config stack live for every subcommand; none of the
	// subcommands currently read from it.
	_ = config.LoadOrDefault()

	checkf(ctx.Run(), "command failed")
}

func applyLogFlag(spec string) error {
	if spec == "all" {
		elog.EnableDebugModules(elog.MaskAll)
		return nil
	}
	for _, name := range splitComma(spec) {
		mod, ok := elog.ModuleByName(name)
		if !ok {
			return fmt.Errorf("unknown log module %q", name)
		}
		elog.EnableDebugModules(mod.Mask())
	}
	return nil
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+": "+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "snestool: "+format+"\n", args...)
	os.Exit(1)
}

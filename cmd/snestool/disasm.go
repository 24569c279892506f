// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"go65816/cpu"
	"go65816/disasm"
	"go65816/internal/elog"
)

type disasmCmd struct {
	ROMPath string `arg:"" name:"rom" help:"Path to the ROM image." type:"existingfile"`
	Offset  int64  `name:"offset" help:"Byte offset to start disassembling from." default:"0"`
	Length  int64  `name:"length" help:"Number of bytes to disassemble." default:"64"`
}

func (c *disasmCmd) Run() error {
	data, err := os.ReadFile(c.ROMPath)
	if err != nil {
		return err
	}

	mem := cpu.NewFlatMemoryFromBytes(data)
	core := cpu.NewCPU(mem)
	core.PC = uint16(c.Offset)

	end := c.Offset + c.Length
	for int64(core.PC) < end && int64(core.PC) < int64(len(data)) {
		addr := core.EffectivePC()
		line, length, err := disasm.Disassemble(core)
		if err != nil {
			elog.For(elog.ModDisasm).Warnf("at $%06X: %v", addr, err)
			core.PC++
			continue
		}
		fmt.Printf("$%06X  %s\n", addr, line)
		core.PC += uint16(length)
	}
	return nil
}

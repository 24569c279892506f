// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm_test

import (
	"errors"
	"testing"

	"go65816/cpu"
	"go65816/disasm"
)

func newTestCPU() *cpu.CPU {
	return cpu.NewCPU(cpu.NewFlatMemory(0x10000))
}

func TestDisassembleORAImmediate(t *testing.T) {
	c := newTestCPU()
	c.Mem.WriteByte(0x000000, 0x09)
	c.Mem.WriteByte(0x000001, 0xf0)

	line, length, err := disasm.Disassemble(c)
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if line != "ORA #$F0" {
		t.Errorf("line: exp %q, got %q", "ORA #$F0", line)
	}
	if length != 2 {
		t.Errorf("length: exp 2, got %d", length)
	}
}

func TestDisassembleASLDirectPage(t *testing.T) {
	c := newTestCPU()
	c.Mem.WriteByte(0x000000, 0x06)
	c.Mem.WriteByte(0x000001, 0x05)

	line, length, err := disasm.Disassemble(c)
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if line != "ASL $05" {
		t.Errorf("line: exp %q, got %q", "ASL $05", line)
	}
	if length != 2 {
		t.Errorf("length: exp 2, got %d", length)
	}
}

func TestDisassembleIndirectLong(t *testing.T) {
	c := newTestCPU()
	c.Mem.WriteByte(0x000000, 0x07) // ORA [dp]
	c.Mem.WriteByte(0x000001, 0x10)

	line, _, err := disasm.Disassemble(c)
	if err != nil {
		t.Fatalf("Disassemble returned error: %v", err)
	}
	if line != "ORA [$10]" {
		t.Errorf("line: exp %q, got %q", "ORA [$10]", line)
	}
}

func TestDisassembleUnimplementedOpcode(t *testing.T) {
	c := newTestCPU()
	c.Mem.WriteByte(0x000000, 0xff)

	_, _, err := disasm.Disassemble(c)
	if !errors.Is(err, disasm.ErrUnimplemented) {
		t.Errorf("expected ErrUnimplemented, got %v", err)
	}
}

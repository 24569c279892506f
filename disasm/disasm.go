// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a disassembler over the instruction
// families the go65816/cpu package decodes.
package disasm

import (
	"fmt"

	"go65816/cpu"
)

// ErrUnimplemented is returned by Disassemble when the opcode byte at
// the CPU's effective PC does not belong to any of the families
// go65816/cpu decodes.
// Per spec.md §7, this is the DecodeFailure case: no family claimed the
// byte.
var ErrUnimplemented = fmt.Errorf("disasm: opcode not decodable by any implemented instruction family")

// Disassemble decodes and renders the instruction at the CPU's current
// effective PC, returning its mnemonic+operand text and the byte length
// consumed. It does not advance c.PC; callers drive PC themselves, same
// division of responsibility as the teacher's disasm.Disassemble, which
// takes an explicit address rather than mutating CPU state.
func Disassemble(c *cpu.CPU) (line string, length int, err error) {
	opcode := c.Mem.ReadByte(c.EffectivePC())
	op, ok := cpu.DecodeAny(opcode, c)
	if !ok {
		return "", 0, fmt.Errorf("disasm: opcode %s: %w", hexByte(opcode), ErrUnimplemented)
	}
	return op.Disasm(c), op.ByteSize(c), nil
}

func hexByte(b byte) string {
	return fmt.Sprintf("$%02X", b)
}

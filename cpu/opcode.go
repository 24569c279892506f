// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Opcode is the uniform protocol every decoded instruction instance
// exposes (spec.md §4.6), mirroring the role the teacher's
// *Instruction/InstructionSet play in go6502, but as a decoded-per-
// instance interface rather than a fixed 256-entry table: the 65C816's
// cycle counts and even byte sizes depend on runtime CPU state that a
// static table cannot capture.
type Opcode interface {
	// ByteSize returns the total instruction length in bytes, including
	// the opcode byte itself.
	ByteSize(c *CPU) int

	// TotalCycles returns the cycle cost of executing this instruction
	// against the current CPU state.
	TotalCycles(c *CPU) uint32

	// Execute performs the instruction's effect on c.
	Execute(c *CPU)

	// Disasm renders the instruction's mnemonic and operand text.
	Disasm(c *CPU) string
}

// decoder is a family decode function: given the opcode byte at the
// current PC and the CPU (read by the families whose page-boundary
// CycleMod captures a pre-index base address at decode time), it
// returns a decoded Opcode and true, or
// (nil, false) if the byte does not belong to that family. This is the
// Go rendition of spec.md §9's `from_opcode(byte, cpu) -> Option<Self>`.
type decoder func(opcode byte, c *CPU) (Opcode, bool)

// families lists every instruction-family decoder this core implements,
// tried in turn by DecodeAny.
var families = []decoder{
	decodeLogical,
	decodeBitTest,
	decodeShift,
	decodeIncDec,
	decodeStatus,
}

// DecodeAny tries every known instruction family against opcodeByte and
// returns the first match. It returns (nil, false) if no family claims
// the byte -- spec.md §7's DecodeFailure, left for the caller (the
// external fetch-decode-execute pipeline, out of scope here) to handle,
// e.g. by treating it as unimplemented.
func DecodeAny(opcodeByte byte, c *CPU) (Opcode, bool) {
	for _, d := range families {
		if op, ok := d(opcodeByte, c); ok {
			return op, true
		}
	}
	return nil, false
}

// withPreIndexBoundary prepends a page-boundary CycleMod computed from a
// pre-index address mode to mods, implementing the "families with a
// pre_index_mode" clause of spec.md §4.6 for opcodes whose boundary
// penalty is computed against an un-indexed base address rather than the
// final address (e.g. BIT $3C, and ORA/AND's indexed-absolute variants).
func withPreIndexBoundary(c *CPU, preIndex AddressMode, reg indexReg, mods []CycleMod) []CycleMod {
	initial := preIndex.Address(c)
	out := make([]CycleMod, 0, len(mods)+1)
	out = append(out, CheckPageBoundary(1, initial, reg))
	out = append(out, mods...)
	return out
}

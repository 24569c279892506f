// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// CycleMod is a single conditional cycle-cost adjustment: cycles is
// added to an instruction's total only when predicate holds for the
// current CPU state (spec.md §4.4). The teacher's own opcodeData table
// (beevik-go6502/cpu/instructions.go) encodes the NMOS/CMOS/page-cross
// cycle deltas as fixed table columns; the 65C816's conditions are
// richer (accumulator/index width, direct-page alignment, emulation
// mode, page crossing), so this module generalizes the column into a
// small list of predicates evaluated at TotalCycles time instead.
type CycleMod struct {
	Cycles    int32
	Predicate func(c *CPU) bool
}

// CalcCycles sums the Cycles of every mod in mods whose Predicate holds
// for c.
func CalcCycles(c *CPU, mods []CycleMod) uint32 {
	var total int32
	for _, m := range mods {
		if m.Predicate(c) {
			total += m.Cycles
		}
	}
	return uint32(total)
}

// Constant returns a CycleMod that always applies.
func Constant(n int32) CycleMod {
	return CycleMod{n, func(c *CPU) bool { return true }}
}

// AccIs16Bit returns a CycleMod that applies only when the accumulator's
// observed width is 16 bits.
func AccIs16Bit(n int32) CycleMod {
	return CycleMod{n, func(c *CPU) bool { return c.effAccSize() == Bit16 }}
}

// IndexIs16Bit returns a CycleMod that applies only when the index
// registers' observed width is 16 bits.
func IndexIs16Bit(n int32) CycleMod {
	return CycleMod{n, func(c *CPU) bool { return c.effIndexSize() == Bit16 }}
}

// NativeMode returns a CycleMod that applies only in native mode.
func NativeMode(n int32) CycleMod {
	return CycleMod{n, func(c *CPU) bool { return c.EmuMode == Native }}
}

// LowDirectPageIsNotZero returns a CycleMod that applies only when the
// low byte of the direct-page register is nonzero -- the classic
// direct-page-misaligned penalty.
func LowDirectPageIsNotZero(n int32) CycleMod {
	return CycleMod{n, func(c *CPU) bool { return c.DirectPage&0xff != 0 }}
}

// CheckPageBoundary returns a CycleMod that applies only when indexing
// initial24 by the named index register crosses a 256-byte page boundary
// (i.e. the high 16 bits of the 24-bit address change).
func CheckPageBoundary(n int32, initial24 uint32, r indexReg) CycleMod {
	return CycleMod{n, func(c *CPU) bool {
		indexed := indexedAddr(initial24, c.indexValue(r))
		return (initial24 & 0xffff00) != (indexed & 0xffff00)
	}}
}

// CheckPageBoundaryAndEmulationMode returns a CycleMod that applies only
// when the CPU is in emulation mode and new24's high 16 bits differ from
// initial24's.
func CheckPageBoundaryAndEmulationMode(n int32, initial24, new24 uint32) CycleMod {
	return CycleMod{n, func(c *CPU) bool {
		if c.EmuMode != Emulation {
			return false
		}
		return (initial24 & 0xffff00) != (new24 & 0xffff00)
	}}
}

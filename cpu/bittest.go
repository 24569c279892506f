// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// BitTest implements BIT, TRB, and TSB (spec.md §4.5.2), grounded on the
// teacher's `bit`/`trb`/`tsb` methods in beevik-go6502/cpu/cpu.go,
// widened to the accumulator's current width and the 65C816's direct
// page/boundary cycle modifiers.
type BitTest struct {
	Mnemonic string
	Mode     AddressMode
	Mods     []CycleMod
	Kind     bitTestKind
}

type bitTestKind byte

const (
	bitTestBIT bitTestKind = iota
	bitTestTRB
	bitTestTSB
)

func (b BitTest) ByteSize(c *CPU) int { return b.Mode.ByteSize(c) + 1 }

func (b BitTest) TotalCycles(c *CPU) uint32 { return CalcCycles(c, b.Mods) }

func (b BitTest) Execute(c *CPU) {
	data := b.Mode.Fetch(c)
	acc := uint32(c.Acc())
	switch b.Kind {
	case bitTestBIT:
		width := c.effAccSize()
		c.Negative = data&width.signBit() != 0
		c.Overflow = data&width.overflowBit() != 0
		c.Zero = (acc & data) == 0
	case bitTestTRB:
		c.Zero = (acc & data) == 0
		mask := c.effAccSize().mask()
		b.Mode.Store(c, acc&(^data&mask))
	case bitTestTSB:
		c.Zero = (acc & data) == 0
		b.Mode.Store(c, data|acc)
	}
}

func (b BitTest) Disasm(c *CPU) string {
	return b.Mnemonic + " " + b.Mode.Disasm(c)
}

// decodeBitTest decodes opcode as BIT, TRB, or TSB, per spec.md §4.5.2.
func decodeBitTest(opcode byte, c *CPU) (Opcode, bool) {
	switch opcode {
	case 0x89:
		return BitTest{"BIT", Immediate{}, []CycleMod{Constant(2), AccIs16Bit(1)}, bitTestBIT}, true
	case 0x2c:
		return BitTest{"BIT", AbsoluteData{}, []CycleMod{Constant(4), AccIs16Bit(1)}, bitTestBIT}, true
	case 0x24:
		return BitTest{"BIT", DirectPage{}, dpMods(3), bitTestBIT}, true
	case 0x3c:
		mode := Indexed{AbsoluteData{}, IndexX}
		mods := withPreIndexBoundary(c, AbsoluteData{}, IndexX, []CycleMod{Constant(4), AccIs16Bit(1)})
		return BitTest{"BIT", mode, mods, bitTestBIT}, true
	case 0x34:
		return BitTest{"BIT", Indexed{DirectPage{}, IndexX}, dpMods(4), bitTestBIT}, true
	case 0x1c:
		return BitTest{"TRB", AbsoluteData{}, []CycleMod{AccIs16Bit(2), Constant(6)}, bitTestTRB}, true
	case 0x14:
		return BitTest{"TRB", DirectPage{}, dpTsbMods(5), bitTestTRB}, true
	case 0x0c:
		return BitTest{"TSB", AbsoluteData{}, []CycleMod{AccIs16Bit(2), Constant(6)}, bitTestTSB}, true
	case 0x04:
		return BitTest{"TSB", DirectPage{}, dpTsbMods(5), bitTestTSB}, true
	}
	return nil, false
}

// dpTsbMods builds the (base, acc_is_16_bit(2), dpnz) mod list shared by
// TRB/TSB's direct-page variants (spec.md §4.5.2).
func dpTsbMods(base int32) []CycleMod {
	return []CycleMod{Constant(base), AccIs16Bit(2), LowDirectPageIsNotZero(1)}
}

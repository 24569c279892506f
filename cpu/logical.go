// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Logical implements the ORA and AND instruction family (spec.md
// §4.5.1): a logical-OR or logical-AND of the accumulator with a
// fetched operand, across the family's fifteen addressing-mode variants.
// Grounded on the teacher's terse `ora`/`and` methods in
// beevik-go6502/cpu/cpu.go, widened to the 65C816's width-aware
// accumulator and its larger addressing-mode repertoire.
type Logical struct {
	Mnemonic string
	Mode     AddressMode
	Mods     []CycleMod
	Combine  func(acc, data uint32) uint32
}

func (l Logical) ByteSize(c *CPU) int { return l.Mode.ByteSize(c) + 1 }

func (l Logical) TotalCycles(c *CPU) uint32 { return CalcCycles(c, l.Mods) }

func (l Logical) Execute(c *CPU) {
	data := l.Mode.Fetch(c)
	result := l.Combine(uint32(c.Acc()), data)
	flags := CheckFlagsForValue(result, c.effAccSize())
	c.SetAcc(uint16(result))
	c.Negative = flags.Negative
	c.Zero = flags.Zero
}

func (l Logical) Disasm(c *CPU) string {
	return l.Mnemonic + " " + l.Mode.Disasm(c)
}

func orCombine(acc, data uint32) uint32  { return acc | data }
func andCombine(acc, data uint32) uint32 { return acc & data }

// logicalVariant describes one (opcode, addressing mode, cycles, mods)
// row of the ORA/AND table in spec.md §4.5.1.
type logicalVariant struct {
	oraOpcode, andOpcode byte
	mode                 func() AddressMode
	baseCycles           int32
	mods                 func(base int32) []CycleMod
}

func dpMods(base int32) []CycleMod {
	return []CycleMod{Constant(base), AccIs16Bit(1), LowDirectPageIsNotZero(1)}
}

func accOnlyMods(base int32) []CycleMod {
	return []CycleMod{Constant(base), AccIs16Bit(1)}
}

var logicalVariants = []logicalVariant{
	{0x09, 0x29, func() AddressMode { return Immediate{} }, 2, accOnlyMods},
	{0x0d, 0x2d, func() AddressMode { return AbsoluteData{} }, 4, accOnlyMods},
	{0x0f, 0x2f, func() AddressMode { return AbsoluteLong{} }, 5, accOnlyMods},
	{0x05, 0x25, func() AddressMode { return DirectPage{} }, 3, dpMods},
	{0x12, 0x32, func() AddressMode { return IndirectData(DirectPage{}) }, 5, dpMods},
	{0x07, 0x27, func() AddressMode { return IndirectLong(DirectPage{}) }, 6, dpMods},
	{0x1d, 0x3d, func() AddressMode { return Indexed{AbsoluteData{}, IndexX} }, 4, nil},
	{0x1f, 0x3f, func() AddressMode { return Indexed{AbsoluteLong{}, IndexX} }, 5, accOnlyMods},
	{0x19, 0x39, func() AddressMode { return Indexed{AbsoluteData{}, IndexY} }, 4, nil},
	{0x15, 0x35, func() AddressMode { return Indexed{DirectPage{}, IndexX} }, 4, dpMods},
	{0x01, 0x21, func() AddressMode { return IndirectData(Indexed{DirectPage{}, IndexX}) }, 6, dpMods},
	{0x11, 0x31, func() AddressMode { return Indexed{IndirectData(DirectPage{}), IndexY} }, 5, dpMods},
	{0x17, 0x37, func() AddressMode { return Indexed{IndirectLong(DirectPage{}), IndexY} }, 6, dpMods},
	{0x03, 0x23, func() AddressMode { return Stack{} }, 4, accOnlyMods},
	{0x13, 0x33, func() AddressMode { return Indexed{IndirectData(Stack{}), IndexY} }, 7, accOnlyMods},
}

// decodeLogical decodes opcode as an ORA or AND instruction if it
// belongs to the family, per spec.md §4.5.1.
func decodeLogical(opcode byte, c *CPU) (Opcode, bool) {
	for _, v := range logicalVariants {
		switch opcode {
		case v.oraOpcode:
			return buildLogical("ORA", v, orCombine, c), true
		case v.andOpcode:
			return buildLogical("AND", v, andCombine, c), true
		}
	}
	return nil, false
}

func buildLogical(mnemonic string, v logicalVariant, combine func(acc, data uint32) uint32, c *CPU) Logical {
	mode := v.mode()
	var mods []CycleMod
	switch {
	case v.mods != nil:
		mods = v.mods(v.baseCycles)
	default:
		// boundary_x / boundary_y variants: the penalty is checked
		// against the pre-indexed absolute base, per spec.md §4.5.1.
		reg := IndexX
		if idx, ok := mode.(Indexed); ok {
			reg = idx.Reg
		}
		mods = withPreIndexBoundary(c, AbsoluteData{}, reg, []CycleMod{Constant(v.baseCycles), AccIs16Bit(1)})
	}
	return Logical{Mnemonic: mnemonic, Mode: mode, Mods: mods, Combine: combine}
}

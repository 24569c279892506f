// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Shift implements ASL, LSR, ROL, and ROR (spec.md §4.5.3), grounded on
// the teacher's `asl`/`lsr`/`rol`/`ror` methods in
// beevik-go6502/cpu/cpu.go, which already carry the "load, transform,
// store, update N/Z, capture carry-out" shape this family generalizes to
// the 65C816's width-aware Rotate helper.
type Shift struct {
	Mnemonic string
	Mode     AddressMode
	Mods     []CycleMod
	Op       shiftOp
}

type shiftOp byte

const (
	shiftASL shiftOp = iota
	shiftLSR
	shiftROL
	shiftROR
)

func (s Shift) ByteSize(c *CPU) int { return s.Mode.ByteSize(c) + 1 }

func (s Shift) TotalCycles(c *CPU) uint32 { return CalcCycles(c, s.Mods) }

func (s Shift) Execute(c *CPU) {
	width := c.effAccSize()
	value := s.Mode.Fetch(c)

	var dir Direction
	carryIn := false
	switch s.Op {
	case shiftASL, shiftROL:
		dir = Left
		carryIn = s.Op == shiftROL && c.Carry
	case shiftLSR, shiftROR:
		dir = Right
		carryIn = s.Op == shiftROR && c.Carry
	}

	newValue, bitOut := Rotate(value, width, dir)

	if carryIn {
		switch dir {
		case Left:
			newValue |= 0x0001
		case Right:
			if width == Bit8 {
				newValue |= 0x0080
			} else {
				newValue |= 0x8000
			}
		}
	}

	flags := CheckFlagsForValue(newValue, width)
	s.Mode.Store(c, newValue)
	c.Negative = flags.Negative
	c.Zero = flags.Zero
	c.Carry = bitOut
}

func (s Shift) Disasm(c *CPU) string {
	return s.Mnemonic + " " + s.Mode.Disasm(c)
}

// shiftMnemonic names the four shift/rotate mnemonics, keyed by the
// shiftOp that decodeShift derives from the opcode's high nibble.
var shiftMnemonic = map[shiftOp]string{
	shiftASL: "ASL",
	shiftLSR: "LSR",
	shiftROL: "ROL",
	shiftROR: "ROR",
}

// decodeShift decodes opcode as ASL, LSR, ROL, or ROR, per spec.md
// §4.5.3's bit-masked low-nibble/high-nibble scheme.
func decodeShift(opcode byte, c *CPU) (Opcode, bool) {
	low := opcode & 0x1e
	var mode AddressMode
	var mods []CycleMod
	switch low {
	case 0x1e:
		mode = Indexed{AbsoluteData{}, IndexX}
		mods = []CycleMod{Constant(7), AccIs16Bit(2)}
	case 0x0e:
		mode = AbsoluteData{}
		mods = []CycleMod{Constant(6), AccIs16Bit(2)}
	case 0x0a:
		mode = RegisterA
		mods = []CycleMod{Constant(2)}
	case 0x16:
		mode = Indexed{DirectPage{}, IndexX}
		mods = []CycleMod{Constant(6), AccIs16Bit(1), LowDirectPageIsNotZero(1)}
	case 0x06:
		mode = DirectPage{}
		mods = []CycleMod{Constant(5), AccIs16Bit(1), LowDirectPageIsNotZero(1)}
	default:
		return nil, false
	}

	high := opcode & 0xf0
	var op shiftOp
	switch {
	case high == 0x00 || high == 0x10:
		op = shiftASL
	case high == 0x40 || high == 0x50:
		op = shiftLSR
	case high == 0x20 || high == 0x30:
		op = shiftROL
	case high == 0x60 || high == 0x70:
		op = shiftROR
	default:
		return nil, false
	}

	return Shift{Mnemonic: shiftMnemonic[op], Mode: mode, Mods: mods, Op: op}, true
}

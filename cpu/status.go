// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// This file implements the processor-status control opcodes of spec.md
// §4.5.5: CLC/SEC/CLD/SED/SEI/CLI/CLV/NOP (carried over from the
// teacher's identically named one-liners in beevik-go6502/cpu/cpu.go)
// plus REP/SEP/XBA/XCE, which are novel to the 65C816 and have no
// analogue in the teacher but are written in the same terse,
// no-branches-if-avoidable style.

// statusOpcode is the uniform shape behind every processor-status
// control instruction: a fixed byte size and cycle count, plus an exec
// function that receives the one-byte REP/SEP mask operand (zero for
// the no-operand instructions).
type statusOpcode struct {
	mnemonic string
	byteSize int // 1, or 2 for REP/SEP
	cycles   int32
	exec     func(c *CPU, operand byte)
}

func (s statusOpcode) ByteSize(c *CPU) int       { return s.byteSize }
func (s statusOpcode) TotalCycles(c *CPU) uint32 { return uint32(s.cycles) }

func (s statusOpcode) Execute(c *CPU) {
	var operand byte
	if s.byteSize == 2 {
		operand = byte(readOperandAt(c, 1))
	}
	s.exec(c, operand)
}

func (s statusOpcode) Disasm(c *CPU) string {
	if s.byteSize == 2 {
		return s.mnemonic + " #" + hex(uint32(readOperandAt(c, 1)), 2)
	}
	return s.mnemonic
}

// decodeStatus decodes opcode as one of the processor-status control
// instructions, per spec.md §4.5.5.
func decodeStatus(opcode byte, c *CPU) (Opcode, bool) {
	switch opcode {
	case 0x18:
		return statusOpcode{"CLC", 1, 2, func(c *CPU, _ byte) { c.Carry = false }}, true
	case 0x38:
		return statusOpcode{"SEC", 1, 2, func(c *CPU, _ byte) { c.Carry = true }}, true
	case 0xd8:
		return statusOpcode{"CLD", 1, 2, func(c *CPU, _ byte) { c.DecimalMode = false }}, true
	case 0xf8:
		return statusOpcode{"SED", 1, 2, func(c *CPU, _ byte) { c.DecimalMode = true }}, true
	case 0x78:
		return statusOpcode{"SEI", 1, 2, func(c *CPU, _ byte) { c.IRQDisable = true }}, true
	case 0x58:
		return statusOpcode{"CLI", 1, 2, func(c *CPU, _ byte) { c.IRQDisable = false }}, true
	case 0xb8:
		return statusOpcode{"CLV", 1, 2, func(c *CPU, _ byte) { c.Overflow = false }}, true
	case 0xea:
		return statusOpcode{"NOP", 1, 2, func(c *CPU, _ byte) {}}, true
	case 0xc2:
		return statusOpcode{"REP", 2, 3, execREP}, true
	case 0xe2:
		return statusOpcode{"SEP", 2, 3, execSEP}, true
	case 0xeb:
		return statusOpcode{"XBA", 1, 3, execXBA}, true
	case 0xfb:
		return statusOpcode{"XCE", 1, 2, execXCE}, true
	}
	return nil, false
}

// statusMaskBits is the REP/SEP mask-byte-to-flag bit assignment of
// spec.md §4.5.5.
const (
	maskN = 0x80
	maskV = 0x40
	maskM = 0x20
	maskX = 0x10
	maskD = 0x08
	maskI = 0x04
	maskZ = 0x02
	maskC = 0x01
)

// execREP clears every processor-status flag selected by operand's mask
// bits. In native mode, M and X additionally widen the accumulator and
// index registers to 16 bits; in emulation mode the M/X bits are ignored
// (spec.md §4.5.5).
func execREP(c *CPU, operand byte) {
	if operand&maskN != 0 {
		c.Negative = false
	}
	if operand&maskV != 0 {
		c.Overflow = false
	}
	if operand&maskD != 0 {
		c.DecimalMode = false
	}
	if operand&maskI != 0 {
		c.IRQDisable = false
	}
	if operand&maskZ != 0 {
		c.Zero = false
	}
	if operand&maskC != 0 {
		c.Carry = false
	}
	if c.EmuMode == Native {
		if operand&maskM != 0 {
			c.AccSize = Bit16
		}
		if operand&maskX != 0 {
			c.IndexSize = Bit16
		}
	}
}

// execSEP sets every processor-status flag selected by operand's mask
// bits. In native mode, M and X additionally narrow the accumulator and
// index registers to 8 bits; in emulation mode the M/X bits are ignored.
func execSEP(c *CPU, operand byte) {
	if operand&maskN != 0 {
		c.Negative = true
	}
	if operand&maskV != 0 {
		c.Overflow = true
	}
	if operand&maskD != 0 {
		c.DecimalMode = true
	}
	if operand&maskI != 0 {
		c.IRQDisable = true
	}
	if operand&maskZ != 0 {
		c.Zero = true
	}
	if operand&maskC != 0 {
		c.Carry = true
	}
	if c.EmuMode == Native {
		if operand&maskM != 0 {
			c.AccSize = Bit8
		}
		if operand&maskX != 0 {
			c.IndexSize = Bit8
		}
	}
}

// execXBA exchanges the A and B halves of the accumulator and derives
// N/Z from the resulting 16-bit view, per spec.md §4.5.5.
func execXBA(c *CPU, _ byte) {
	lo, hi := c.A(), c.B()
	result := uint16(lo)<<8 | uint16(hi)
	c.Negative = result > 0x7fff
	c.Zero = result == 0x0000
	c.SetFullAcc(result)
}

// execXCE exchanges the carry and emulation-mode flags, per spec.md
// §4.5.5. Switching from emulation to native mode resets the stored
// accumulator and index widths to 8 bits, so native mode starts with
// the widths emulation mode observed.
func execXCE(c *CPU, _ byte) {
	switch {
	case c.Carry && c.EmuMode == Emulation:
		// no change
	case !c.Carry && c.EmuMode == Native:
		// no change
	case c.Carry && c.EmuMode == Native:
		c.Carry = false
		c.EmuMode = Emulation
	case !c.Carry && c.EmuMode == Emulation:
		c.Carry = true
		c.EmuMode = Native
		c.AccSize = Bit8
		c.IndexSize = Bit8
	}
}

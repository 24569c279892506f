// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// CPU represents a single 65C816 CPU bound to a Memory. Unlike the
// teacher's go6502 CPU, fields here are not consulted directly by
// outside callers that need width-correct values: Acc, X, and Y must be
// read and written through the accessor methods below, since their
// observable width depends on AccSize/IndexSize and EmuMode (spec.md
// §3's "width invariants... enforced by accessors, not by storage").
type CPU struct {
	Mem Memory // assigned memory

	acc uint16 // stored accumulator, both A and B halves
	x   uint16 // stored X index register
	y   uint16 // stored Y index register

	AccSize   Width // logical accumulator width (native mode only)
	IndexSize Width // logical index-register width (native mode only)

	DataBank    byte   // DBR: data bank register
	DirectPage  uint16 // D: direct page register
	ProgramBank byte   // PBR: program bank register
	StackPtr    uint16 // S: stack pointer
	PC          uint16 // program counter

	EmuMode Mode // emulation vs native mode

	Negative    bool // N flag
	Overflow    bool // V flag
	Carry       bool // C flag
	Zero        bool // Z flag
	IRQDisable  bool // I flag
	DecimalMode bool // D flag
}

// NewCPU creates a 65C816 CPU bound to mem, powered on in emulation mode
// with 8-bit accumulator and index registers and the stack pointer set to
// $01FF, mirroring the hardware reset state.
func NewCPU(mem Memory) *CPU {
	c := &CPU{
		Mem:       mem,
		AccSize:   Bit8,
		IndexSize: Bit8,
		StackPtr:  0x01ff,
		EmuMode:   Emulation,
	}
	return c
}

// effAccSize returns the accumulator width actually observed: Bit8 in
// emulation mode regardless of AccSize, else AccSize (spec.md §3).
func (c *CPU) effAccSize() Width {
	if c.EmuMode == Emulation {
		return Bit8
	}
	return c.AccSize
}

// effIndexSize returns the index-register width actually observed: Bit8
// in emulation mode regardless of IndexSize, else IndexSize.
func (c *CPU) effIndexSize() Width {
	if c.EmuMode == Emulation {
		return Bit8
	}
	return c.IndexSize
}

// Acc returns the accumulator, masked to its currently observed width.
func (c *CPU) Acc() uint16 {
	if c.effAccSize() == Bit8 {
		return c.acc & 0x00ff
	}
	return c.acc
}

// SetAcc stores v into the accumulator, masked to its currently observed
// width. The unused high byte of the stored value is left untouched when
// writing at 8-bit width, so a later native-mode widen-out sees whatever
// B previously held -- matching real 65C816 behavior and spec.md §3's
// "reading... returns stored & mask" rule (storage is never truncated,
// only reads are).
func (c *CPU) SetAcc(v uint16) {
	if c.effAccSize() == Bit8 {
		c.acc = (c.acc & 0xff00) | (v & 0x00ff)
		return
	}
	c.acc = v
}

// X returns the X index register, masked to its currently observed width.
func (c *CPU) X() uint16 {
	if c.effIndexSize() == Bit8 {
		return c.x & 0x00ff
	}
	return c.x
}

// SetX stores v into X, masked to its currently observed width.
func (c *CPU) SetX(v uint16) {
	if c.effIndexSize() == Bit8 {
		c.x = v & 0x00ff
		return
	}
	c.x = v
}

// Y returns the Y index register, masked to its currently observed width.
func (c *CPU) Y() uint16 {
	if c.effIndexSize() == Bit8 {
		return c.y & 0x00ff
	}
	return c.y
}

// SetY stores v into Y, masked to its currently observed width.
func (c *CPU) SetY(v uint16) {
	if c.effIndexSize() == Bit8 {
		c.y = v & 0x00ff
		return
	}
	c.y = v
}

// A returns the low 8 bits of the accumulator.
func (c *CPU) A() byte { return byte(c.acc & 0x00ff) }

// SetA sets the low 8 bits of the accumulator, leaving B untouched.
func (c *CPU) SetA(v byte) { c.acc = (c.acc & 0xff00) | uint16(v) }

// B returns the high 8 bits of the accumulator.
func (c *CPU) B() byte { return byte(c.acc >> 8) }

// SetB sets the high 8 bits of the accumulator, leaving A untouched.
func (c *CPU) SetB(v byte) { c.acc = (uint16(v) << 8) | (c.acc & 0x00ff) }

// FullAcc returns the full 16-bit accumulator view C, regardless of
// AccSize or EmuMode.
func (c *CPU) FullAcc() uint16 { return c.acc }

// SetFullAcc sets the full 16-bit accumulator view C, regardless of
// AccSize or EmuMode.
func (c *CPU) SetFullAcc(v uint16) { c.acc = v }

// EffectivePC returns the 24-bit instruction-fetch address
// (ProgramBank<<16)|PC, masked to 24 bits (spec.md §3).
func (c *CPU) EffectivePC() uint32 {
	return (uint32(c.ProgramBank)<<16 | uint32(c.PC)) & 0xffffff
}

// Break reports the processor-status "break" flag. In emulation mode this
// is aliased to the inverse of the index-register width (spec.md §3); in
// native mode the alias is not observable and Break reports false, since
// there is no independently-stored break bit.
func (c *CPU) Break() bool {
	if c.EmuMode != Emulation {
		return false
	}
	return c.IndexSize == Bit8
}

// SetBreak toggles the break/index-width alias described by Break. Only
// meaningful in emulation mode; in native mode it has no effect, since
// the alias is not observable there (spec.md §3).
func (c *CPU) SetBreak(brk bool) {
	if c.EmuMode != Emulation {
		return
	}
	if brk {
		c.IndexSize = Bit8
	} else {
		c.IndexSize = Bit16
	}
}

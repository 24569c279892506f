// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"go65816/cpu"
)

func newTestCPU() *cpu.CPU {
	return cpu.NewCPU(cpu.NewFlatMemory(0x10000))
}

func TestNewCPUResetState(t *testing.T) {
	c := newTestCPU()
	if c.EmuMode != cpu.Emulation {
		t.Error("NewCPU must power on in emulation mode")
	}
	if c.AccSize != cpu.Bit8 || c.IndexSize != cpu.Bit8 {
		t.Error("NewCPU must power on with 8-bit accumulator and index registers")
	}
	if c.StackPtr != 0x01ff {
		t.Errorf("StackPtr: exp $01FF, got $%04X", c.StackPtr)
	}
}

func TestAccWidthMaskingInEmulationMode(t *testing.T) {
	c := newTestCPU()
	c.AccSize = cpu.Bit16 // ignored while in emulation mode
	c.SetAcc(0x1234)
	if got := c.Acc(); got != 0x34 {
		t.Errorf("Acc() in emulation mode: exp $34, got $%02X", got)
	}
}

func TestAccWidthNativeMode16Bit(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = cpu.Native
	c.AccSize = cpu.Bit16
	c.SetAcc(0xbeef)
	if got := c.Acc(); got != 0xbeef {
		t.Errorf("Acc() native 16-bit: exp $BEEF, got $%04X", got)
	}
}

func TestSetAccPreservesBHalfAt8Bit(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = cpu.Native
	c.AccSize = cpu.Bit16
	c.SetFullAcc(0xabcd)
	c.AccSize = cpu.Bit8
	c.SetAcc(0x11)
	if got := c.B(); got != 0xab {
		t.Errorf("B half must survive an 8-bit write to A: exp $AB, got $%02X", got)
	}
	if got := c.A(); got != 0x11 {
		t.Errorf("A half: exp $11, got $%02X", got)
	}
}

func TestABCAccessors(t *testing.T) {
	c := newTestCPU()
	c.SetFullAcc(0x1234)
	if c.A() != 0x34 {
		t.Errorf("A(): exp $34, got $%02X", c.A())
	}
	if c.B() != 0x12 {
		t.Errorf("B(): exp $12, got $%02X", c.B())
	}
	if c.FullAcc() != 0x1234 {
		t.Errorf("FullAcc(): exp $1234, got $%04X", c.FullAcc())
	}
}

func TestEffectivePC(t *testing.T) {
	c := newTestCPU()
	c.ProgramBank = 0x02
	c.PC = 0x1234
	if got := c.EffectivePC(); got != 0x021234 {
		t.Errorf("EffectivePC: exp $021234, got $%06X", got)
	}
}

func TestBreakFlagAliasesIndexWidthInEmulationMode(t *testing.T) {
	c := newTestCPU()
	c.IndexSize = cpu.Bit8
	if !c.Break() {
		t.Error("Break must report true when index_size=bit8 in emulation mode")
	}

	c.SetBreak(false)
	if c.IndexSize != cpu.Bit16 {
		t.Error("SetBreak(false) must widen index_size to bit16 in emulation mode")
	}
	if c.Break() {
		t.Error("Break must report false after SetBreak(false)")
	}
}

func TestBreakFlagNotObservableInNativeMode(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = cpu.Native
	if c.Break() {
		t.Error("Break must report false in native mode")
	}
}

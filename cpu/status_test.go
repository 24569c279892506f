// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"go65816/cpu"
)

// TestXCEThenREPSEP is scenario S5 of spec.md §8.
func TestXCEThenREPSEP(t *testing.T) {
	c := newTestCPU()
	c.Carry = false
	c.EmuMode = cpu.Emulation
	c.Mem.WriteByte(0x000000, 0xfb) // XCE

	op, ok := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	if !ok {
		t.Fatal("opcode $FB should decode as XCE")
	}
	op.Execute(c)

	if !c.Carry || c.EmuMode != cpu.Native || c.AccSize != cpu.Bit8 || c.IndexSize != cpu.Bit8 {
		t.Fatalf("after XCE: got carry=%v mode=%v acc=%v idx=%v, want carry=true mode=native acc=bit8 idx=bit8",
			c.Carry, c.EmuMode, c.AccSize, c.IndexSize)
	}

	c.Mem.WriteByte(0x000000, 0xc2) // REP #$30
	c.Mem.WriteByte(0x000001, 0x30)
	op, _ = cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	op.Execute(c)
	if c.AccSize != cpu.Bit16 || c.IndexSize != cpu.Bit16 {
		t.Fatalf("after REP #$30: got acc=%v idx=%v, want bit16/bit16", c.AccSize, c.IndexSize)
	}

	c.Mem.WriteByte(0x000000, 0xe2) // SEP #$30
	c.Mem.WriteByte(0x000001, 0x30)
	op, _ = cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	op.Execute(c)
	if c.AccSize != cpu.Bit8 || c.IndexSize != cpu.Bit8 {
		t.Fatalf("after SEP #$30: got acc=%v idx=%v, want bit8/bit8", c.AccSize, c.IndexSize)
	}
}

func TestXCETwiceRoundTrips(t *testing.T) {
	for _, start := range []struct {
		carry bool
		mode  cpu.Mode
	}{
		{false, cpu.Emulation},
		{true, cpu.Emulation},
		{false, cpu.Native},
		{true, cpu.Native},
	} {
		c := newTestCPU()
		c.Carry = start.carry
		c.EmuMode = start.mode
		c.Mem.WriteByte(0x000000, 0xfb)

		op, _ := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
		op.Execute(c)
		op.Execute(c)

		if c.Carry != start.carry || c.EmuMode != start.mode {
			t.Errorf("two XCEs from (carry=%v, mode=%v) did not round-trip: got (carry=%v, mode=%v)",
				start.carry, start.mode, c.Carry, c.EmuMode)
		}
	}
}

func TestREPSEPIgnoreMXInEmulationMode(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = cpu.Emulation
	c.Mem.WriteByte(0x000000, 0xc2) // REP #$30
	c.Mem.WriteByte(0x000001, 0x30)

	op, _ := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	op.Execute(c)

	if c.AccSize != cpu.Bit8 || c.IndexSize != cpu.Bit8 {
		t.Error("REP's M/X bits must be ignored in emulation mode")
	}
}

func TestXBASwapsHalvesAndSetsFlagsFromResult(t *testing.T) {
	c := newTestCPU()
	c.SetFullAcc(0x8000)
	c.Mem.WriteByte(0x000000, 0xeb) // XBA

	op, _ := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	op.Execute(c)

	if got := c.FullAcc(); got != 0x0080 {
		t.Errorf("FullAcc after XBA: exp $0080, got $%04X", got)
	}
	if c.Negative {
		t.Error("negative should be false: result $0080 < $8000")
	}
	if c.Zero {
		t.Error("zero should be false")
	}
}

func TestStatusClearAndSetFlags(t *testing.T) {
	c := newTestCPU()
	c.Mem.WriteByte(0x000000, 0x38) // SEC
	op, _ := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	op.Execute(c)
	if !c.Carry {
		t.Error("SEC should set carry")
	}

	c.Mem.WriteByte(0x000000, 0x18) // CLC
	op, _ = cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	op.Execute(c)
	if c.Carry {
		t.Error("CLC should clear carry")
	}
}

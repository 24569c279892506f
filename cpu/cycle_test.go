// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"go65816/cpu"
)

func TestCalcCyclesSumsAppliedMods(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = cpu.Native
	c.AccSize = cpu.Bit16

	mods := []cpu.CycleMod{
		cpu.Constant(4),
		cpu.AccIs16Bit(1),
		cpu.IndexIs16Bit(1),
	}
	if got := cpu.CalcCycles(c, mods); got != 5 {
		t.Errorf("CalcCycles: exp 5, got %d", got)
	}
}

func TestLowDirectPageIsNotZero(t *testing.T) {
	c := newTestCPU()
	mod := cpu.LowDirectPageIsNotZero(1)

	c.DirectPage = 0x0000
	if mod.Predicate(c) {
		t.Error("predicate must be false when D's low byte is zero")
	}

	c.DirectPage = 0x0010
	if !mod.Predicate(c) {
		t.Error("predicate must be true when D's low byte is nonzero")
	}
}

func TestCheckPageBoundaryCrossing(t *testing.T) {
	c := newTestCPU()
	c.SetX(0x10)

	mod := cpu.CheckPageBoundary(1, 0x00fff0, cpu.IndexX)
	if !mod.Predicate(c) {
		t.Error("expected a page-boundary crossing ($00FFF0 + $10 = $010000)")
	}

	mod = cpu.CheckPageBoundary(1, 0x001000, cpu.IndexX)
	if mod.Predicate(c) {
		t.Error("expected no page-boundary crossing ($001000 + $10 = $001010)")
	}
}

func TestCheckPageBoundaryAndEmulationMode(t *testing.T) {
	mod := cpu.CheckPageBoundaryAndEmulationMode(1, 0x00fff0, 0x010000)

	c := newTestCPU()
	c.EmuMode = cpu.Emulation
	if !mod.Predicate(c) {
		t.Error("expected true: emulation mode and differing high 16 bits")
	}

	c.EmuMode = cpu.Native
	if mod.Predicate(c) {
		t.Error("expected false: native mode never applies this mod")
	}
}

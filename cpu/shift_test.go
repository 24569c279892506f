// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"go65816/cpu"
)

// TestASLDirectPage is scenario S3 of spec.md §8.
func TestASLDirectPage(t *testing.T) {
	c := newTestCPU()
	c.DirectPage = 0x0010
	c.Mem.WriteByte(0x000000, 0x06) // ASL dp
	c.Mem.WriteByte(0x000001, 0x05)
	c.Mem.WriteByte(0x000015, 0x81)

	op, ok := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	if !ok {
		t.Fatal("opcode $06 should decode as ASL dp")
	}
	op.Execute(c)

	if got := c.Mem.ReadByte(0x000015); got != 0x02 {
		t.Errorf("stored value: exp $02, got $%02X", got)
	}
	if !c.Carry {
		t.Error("carry should be true")
	}
	if c.Negative {
		t.Error("negative should be false")
	}
	if c.Zero {
		t.Error("zero should be false")
	}
	if got := op.TotalCycles(c); got != 6 {
		t.Errorf("total_cycles: exp 6 (5+1 dpnz), got %d", got)
	}
}

func TestLSRAccumulator(t *testing.T) {
	c := newTestCPU()
	c.SetAcc(0x03)
	c.Mem.WriteByte(0x000000, 0x4a) // LSR A

	op, ok := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	if !ok {
		t.Fatal("opcode $4A should decode as LSR A")
	}
	op.Execute(c)

	if got := c.Acc(); got != 0x01 {
		t.Errorf("acc: exp $01, got $%02X", got)
	}
	if !c.Carry {
		t.Error("carry should be true: bit 0 of $03 fell out")
	}
}

func TestROLReinjectsCarry(t *testing.T) {
	c := newTestCPU()
	c.SetAcc(0x01)
	c.Carry = true
	c.Mem.WriteByte(0x000000, 0x2a) // ROL A

	op, ok := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	if !ok {
		t.Fatal("opcode $2A should decode as ROL A")
	}
	op.Execute(c)

	if got := c.Acc(); got != 0x03 {
		t.Errorf("acc: exp $03 ($01<<1 | carry-in), got $%02X", got)
	}
	if c.Carry {
		t.Error("carry should be false: bit 7 of $01 did not fall out")
	}
}

func TestRORReinjectsCarry(t *testing.T) {
	c := newTestCPU()
	c.SetAcc(0x02)
	c.Carry = true
	c.Mem.WriteByte(0x000000, 0x6a) // ROR A

	op, ok := cpu.DecodeAny(c.Mem.ReadByte(c.EffectivePC()), c)
	if !ok {
		t.Fatal("opcode $6A should decode as ROR A")
	}
	op.Execute(c)

	if got := c.Acc(); got != 0x81 {
		t.Errorf("acc: exp $81 ($02>>1 | carry-in<<7), got $%02X", got)
	}
	if c.Carry {
		t.Error("carry should be false: bit 0 of $02 did not fall out")
	}
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"go65816/cpu"
)

func TestFlatMemoryByteRoundTrip(t *testing.T) {
	m := cpu.NewFlatMemory(0x10000)
	m.WriteByte(0x1234, 0x5e)
	if got := m.ReadByte(0x1234); got != 0x5e {
		t.Errorf("ReadByte: exp $5E, got $%02X", got)
	}
}

func TestFlatMemoryWordLittleEndian(t *testing.T) {
	m := cpu.NewFlatMemory(0x10000)
	m.WriteWord(0x2000, 0xbeef)
	if got := m.ReadByte(0x2000); got != 0xef {
		t.Errorf("low byte: exp $EF, got $%02X", got)
	}
	if got := m.ReadByte(0x2001); got != 0xbe {
		t.Errorf("high byte: exp $BE, got $%02X", got)
	}
	if got := m.ReadWord(0x2000); got != 0xbeef {
		t.Errorf("ReadWord: exp $BEEF, got $%04X", got)
	}
}

func TestFlatMemoryLongLittleEndian(t *testing.T) {
	m := cpu.NewFlatMemory(0x10000)
	m.WriteLong(0x3000, 0x123456)
	if got := m.ReadLong(0x3000); got != 0x123456 {
		t.Errorf("ReadLong: exp $123456, got $%06X", got)
	}
	if got := m.ReadLong(0x3000); got&0xffffff != got {
		t.Errorf("ReadLong result exceeds 24-bit mask: $%08X", got)
	}
}

func TestFlatMemoryOutOfBoundsPanics(t *testing.T) {
	m := cpu.NewFlatMemory(4)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on out-of-bounds access")
		}
	}()
	m.ReadByte(4)
}

func TestNewFlatMemoryFromBytes(t *testing.T) {
	b := []byte{0x11, 0x22, 0x33, 0x44}
	m := cpu.NewFlatMemoryFromBytes(b)
	if got := m.Len(); got != 4 {
		t.Errorf("Len: exp 4, got %d", got)
	}
	if got := m.ReadWord(0); got != 0x2211 {
		t.Errorf("ReadWord: exp $2211, got $%04X", got)
	}
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "errors"

// Errors
var (
	// ErrMemoryOutOfBounds is the value FlatMemory panics with when a read
	// or write targets an address outside the memory's configured size. Per spec.md §7, this
	// is a precondition violation, not a wraparound: ROM/RAM image length
	// is fixed by the loader.
	ErrMemoryOutOfBounds = errors.New("go65816: memory access out of bounds")
)

// Memory presents the byte-addressable, 24-bit address space through
// which every CPU memory access occurs. Implementations own their
// storage exclusively; the CPU never aliases it (spec.md §5).
type Memory interface {
	// ReadByte reads a single byte at addr.
	ReadByte(addr uint32) byte

	// ReadWord reads a little-endian 16-bit word at addr..addr+1.
	ReadWord(addr uint32) uint16

	// ReadLong reads a little-endian 24-bit value at addr..addr+2.
	ReadLong(addr uint32) uint32

	// WriteByte stores a single byte at addr.
	WriteByte(addr uint32, v byte)

	// WriteWord stores a little-endian 16-bit word at addr..addr+1.
	WriteWord(addr uint32, v uint16)

	// WriteLong stores a little-endian 24-bit value at addr..addr+2.
	WriteLong(addr uint32, v uint32)
}

// FlatMemory represents an entire 24-bit address space as a single
// contiguous buffer, mirroring the single-buffer design of the teacher's
// go6502 FlatMemory but sized to the 65C816's 24-bit bus.
type FlatMemory struct {
	b []byte
}

// NewFlatMemory creates a new flat memory image of size bytes, addressable
// from 0 up to size-1 (size must not exceed 0x1000000).
func NewFlatMemory(size int) *FlatMemory {
	return &FlatMemory{b: make([]byte, size)}
}

// NewFlatMemoryFromBytes wraps an existing byte slice as a FlatMemory
// image, taking ownership of the slice.
func NewFlatMemoryFromBytes(b []byte) *FlatMemory {
	return &FlatMemory{b: b}
}

// check panics with ErrMemoryOutOfBounds-carrying detail when the byte
// range [addr, addr+n) falls outside the memory image. Bounds violations
// are preconditions, not recoverable runtime states (spec.md §7), so a
// panic -- rather than a silently-wrapped zero -- is how this
// implementation of Memory signals the violation.
func (m *FlatMemory) check(addr uint32, n int) {
	if addr+uint32(n) > uint32(len(m.b)) {
		panic(ErrMemoryOutOfBounds)
	}
}

// ReadByte loads a single byte from the address and returns it.
func (m *FlatMemory) ReadByte(addr uint32) byte {
	m.check(addr, 1)
	return m.b[addr]
}

// ReadWord loads a little-endian 16-bit word, low byte at addr.
func (m *FlatMemory) ReadWord(addr uint32) uint16 {
	m.check(addr, 2)
	return uint16(m.b[addr]) | uint16(m.b[addr+1])<<8
}

// ReadLong loads a little-endian 24-bit value, low byte at addr.
func (m *FlatMemory) ReadLong(addr uint32) uint32 {
	m.check(addr, 3)
	return uint32(m.b[addr]) | uint32(m.b[addr+1])<<8 | uint32(m.b[addr+2])<<16
}

// WriteByte stores a byte at addr.
func (m *FlatMemory) WriteByte(addr uint32, v byte) {
	m.check(addr, 1)
	m.b[addr] = v
}

// WriteWord stores a little-endian 16-bit word, low byte at addr.
func (m *FlatMemory) WriteWord(addr uint32, v uint16) {
	m.check(addr, 2)
	m.b[addr] = byte(v)
	m.b[addr+1] = byte(v >> 8)
}

// WriteLong stores a little-endian 24-bit value, low byte at addr.
func (m *FlatMemory) WriteLong(addr uint32, v uint32) {
	m.check(addr, 3)
	m.b[addr] = byte(v)
	m.b[addr+1] = byte(v >> 8)
	m.b[addr+2] = byte(v >> 16)
}

// Len returns the size of the memory image in bytes.
func (m *FlatMemory) Len() int {
	return len(m.b)
}

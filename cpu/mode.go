// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// AddressMode is the tagged-variant family described in spec.md §3 and
// §9, rendered in Go as an interface with one concrete type per
// constructor rather than a single switch-on-tag. Composition
// (Indexed/Indirect wrapping a base mode) is plain struct embedding of
// another AddressMode value, so no dynamic-dispatch mechanism beyond
// ordinary interface method calls is needed.
type AddressMode interface {
	// Address returns the 24-bit effective address this mode resolves to
	// given the current CPU state. Register and Immediate modes return 0;
	// callers must not rely on Address for those.
	Address(c *CPU) uint32

	// ByteSize returns the number of operand bytes this mode consumes
	// from the instruction stream, not counting the opcode byte itself.
	ByteSize(c *CPU) int

	// Fetch reads and returns the width-correct operand or memory value
	// addressed by this mode.
	Fetch(c *CPU) uint32

	// Store writes data through this mode, at the accumulator's current
	// width for memory-backed modes.
	Store(c *CPU, data uint32)

	// Disasm renders this mode's operand syntax, per spec.md §6.4.
	Disasm(c *CPU) string
}

// readOperandAt reads byteSize bytes (1, 2, or 3) from the instruction stream
// starting immediately after the opcode byte at the effective PC, and
// returns them as a little-endian value. The 65C816 pipeline external to
// this core (spec.md §1) is responsible for positioning PC at the
// opcode; every AddressMode computes operand addresses relative to
// PC+1.
func readOperandAt(c *CPU, byteSize int) uint32 {
	base := (uint32(c.ProgramBank)<<16 | uint32(c.PC+1)) & 0xffffff
	switch byteSize {
	case 1:
		return uint32(c.Mem.ReadByte(base))
	case 2:
		return uint32(c.Mem.ReadWord(base))
	case 3:
		return c.Mem.ReadLong(base)
	}
	return 0
}

// absoluteOffset composes a bank byte and a 16-bit address into a 24-bit
// effective address (spec.md §4.3).
func absoluteOffset(bank byte, addr16 uint16) uint32 {
	return (uint32(bank)<<16 | uint32(addr16)) & 0xffffff
}

// calcOffset adds two 16-bit values with 16-bit wraparound (spec.md
// §4.3).
func calcOffset(a, b uint16) uint16 {
	return uint16(uint32(a) + uint32(b))
}

// indexedAddr adds an index register's value to a 24-bit address,
// wrapping within the 24-bit address space (spec.md §4.3).
func indexedAddr(addr24 uint32, indexValue uint16) uint32 {
	return (addr24 + uint32(indexValue)) & 0xffffff
}

// readDataWidth reads n bytes (2 or 3) at addr, used by the Indirect
// family to fetch the pointer they dereference through.
func readDataWidth(c *CPU, addr uint32, n int) uint32 {
	if n == 2 {
		return uint32(c.Mem.ReadWord(addr))
	}
	return c.Mem.ReadLong(addr)
}

// readData reads the CPU's current accumulator-width-correct value at
// addr (spec.md §4.3 fetch/store semantics).
func readData(c *CPU, addr uint32) uint32 {
	if c.effAccSize() == Bit8 {
		return uint32(c.Mem.ReadByte(addr))
	}
	return uint32(c.Mem.ReadWord(addr))
}

// writeData writes v at addr at the CPU's current accumulator width.
func writeData(c *CPU, addr uint32, v uint32) {
	if c.effAccSize() == Bit8 {
		c.Mem.WriteByte(addr, byte(v))
	} else {
		c.Mem.WriteWord(addr, uint16(v))
	}
}

// Immediate is the `#...` addressing mode: its operand is the value
// itself, read directly from the instruction stream at the accumulator's
// current width. It has no effective address and Store is a no-op.
type Immediate struct{}

func (Immediate) Address(c *CPU) uint32 { return 0 }

func (Immediate) ByteSize(c *CPU) int {
	if c.effAccSize() == Bit8 {
		return 1
	}
	return 2
}

func (m Immediate) Fetch(c *CPU) uint32 {
	return readOperandAt(c, m.ByteSize(c))
}

func (Immediate) Store(c *CPU, data uint32) {}

func (m Immediate) Disasm(c *CPU) string {
	return "#" + hex(m.Fetch(c), m.ByteSize(c)*2)
}

// AbsoluteData addresses a 16-bit offset within the current data bank
// (DBR).
type AbsoluteData struct{}

func (AbsoluteData) Address(c *CPU) uint32 {
	return absoluteOffset(c.DataBank, uint16(readOperandAt(c, 2)))
}

func (AbsoluteData) ByteSize(c *CPU) int { return 2 }

func (m AbsoluteData) Fetch(c *CPU) uint32   { return readData(c, m.Address(c)) }
func (m AbsoluteData) Store(c *CPU, v uint32) { writeData(c, m.Address(c), v) }

func (m AbsoluteData) Disasm(c *CPU) string {
	return hex(uint32(readOperandAt(c, 2)), 4)
}

// AbsoluteProgram addresses a 16-bit offset within the current program
// bank (PBR).
type AbsoluteProgram struct{}

func (AbsoluteProgram) Address(c *CPU) uint32 {
	return absoluteOffset(c.ProgramBank, uint16(readOperandAt(c, 2)))
}

func (AbsoluteProgram) ByteSize(c *CPU) int { return 2 }

func (m AbsoluteProgram) Fetch(c *CPU) uint32   { return readData(c, m.Address(c)) }
func (m AbsoluteProgram) Store(c *CPU, v uint32) { writeData(c, m.Address(c), v) }

func (m AbsoluteProgram) Disasm(c *CPU) string {
	return hex(uint32(readOperandAt(c, 2)), 4)
}

// AbsoluteLong addresses a full 24-bit operand: bank and offset are both
// taken from the instruction stream.
type AbsoluteLong struct{}

func (AbsoluteLong) Address(c *CPU) uint32 { return readOperandAt(c, 3) & 0xffffff }

func (AbsoluteLong) ByteSize(c *CPU) int { return 3 }

func (m AbsoluteLong) Fetch(c *CPU) uint32   { return readData(c, m.Address(c)) }
func (m AbsoluteLong) Store(c *CPU, v uint32) { writeData(c, m.Address(c), v) }

func (m AbsoluteLong) Disasm(c *CPU) string {
	return hex(m.Address(c), 6)
}

// DirectPage addresses an 8-bit offset within the direct-page window (D).
type DirectPage struct{}

func (DirectPage) Address(c *CPU) uint32 {
	return uint32(calcOffset(uint16(readOperandAt(c, 1)), c.DirectPage))
}

func (DirectPage) ByteSize(c *CPU) int { return 1 }

func (m DirectPage) Fetch(c *CPU) uint32   { return readData(c, m.Address(c)) }
func (m DirectPage) Store(c *CPU, v uint32) { writeData(c, m.Address(c), v) }

func (m DirectPage) Disasm(c *CPU) string {
	return hex(readOperandAt(c, 1), 2)
}

// Stack is the stack-relative addressing mode: an 8-bit offset from the
// current stack pointer (S).
type Stack struct{}

func (Stack) Address(c *CPU) uint32 {
	return uint32(calcOffset(c.StackPtr, uint16(readOperandAt(c, 1))))
}

func (Stack) ByteSize(c *CPU) int { return 1 }

func (m Stack) Fetch(c *CPU) uint32   { return readData(c, m.Address(c)) }
func (m Stack) Store(c *CPU, v uint32) { writeData(c, m.Address(c), v) }

func (m Stack) Disasm(c *CPU) string {
	return hex(readOperandAt(c, 1), 2) + ",S"
}

// regKind selects which register a Register addressing mode targets.
type regKind byte

const (
	regA regKind = iota
	regX
	regY
)

// register is the shared implementation behind RegisterA, RegisterX, and
// RegisterY: a zero-byte mode that reads and writes a CPU register
// directly rather than memory.
type register struct{ kind regKind }

// RegisterA addresses the accumulator directly.
var RegisterA AddressMode = register{regA}

// RegisterX addresses the X index register directly.
var RegisterX AddressMode = register{regX}

// RegisterY addresses the Y index register directly.
var RegisterY AddressMode = register{regY}

func (register) Address(c *CPU) uint32 { return 0 }
func (register) ByteSize(c *CPU) int    { return 0 }

func (m register) Fetch(c *CPU) uint32 {
	switch m.kind {
	case regA:
		return uint32(c.Acc())
	case regX:
		return uint32(c.X())
	default:
		return uint32(c.Y())
	}
}

func (m register) Store(c *CPU, v uint32) {
	switch m.kind {
	case regA:
		c.SetAcc(uint16(v))
	case regX:
		c.SetX(uint16(v))
	default:
		c.SetY(uint16(v))
	}
}

func (m register) Disasm(c *CPU) string {
	switch m.kind {
	case regA:
		return "A"
	case regX:
		return "X"
	default:
		return "Y"
	}
}

// indexReg selects which index register an Indexed mode adds.
type indexReg byte

const (
	// IndexX selects the X register as the index for Indexed/Indirect
	// modes.
	IndexX indexReg = iota

	// IndexY selects the Y register as the index for Indexed/Indirect
	// modes.
	IndexY
)

func (c *CPU) indexValue(r indexReg) uint16 {
	if r == IndexX {
		return c.X()
	}
	return c.Y()
}

func (r indexReg) suffix() string {
	if r == IndexX {
		return ",X"
	}
	return ",Y"
}

// Indexed adds an index register's value to Base's effective address
// (spec.md §4.3). Its ByteSize and Disasm delegate to Base, since the
// index register contributes no additional operand bytes.
type Indexed struct {
	Base AddressMode
	Reg  indexReg
}

func (m Indexed) Address(c *CPU) uint32 {
	return indexedAddr(m.Base.Address(c), c.indexValue(m.Reg))
}

func (m Indexed) ByteSize(c *CPU) int { return m.Base.ByteSize(c) }

func (m Indexed) Fetch(c *CPU) uint32   { return readData(c, m.Address(c)) }
func (m Indexed) Store(c *CPU, v uint32) { writeData(c, m.Address(c), v) }

func (m Indexed) Disasm(c *CPU) string {
	return m.Base.Disasm(c) + m.Reg.suffix()
}

// indirectKind selects which bank supplies the high byte of the address
// an Indirect mode dereferences to, or selects the 24-bit long form.
type indirectKind byte

const (
	indirectData indirectKind = iota
	indirectProgram
	indirectLong
)

// Indirect dereferences through a pointer stored at Base's effective
// address (spec.md §4.3). IndirectData and IndirectProgram read a 16-bit
// pointer and combine it with DBR or PBR respectively; IndirectLong reads
// a full 24-bit pointer.
type Indirect struct {
	Base AddressMode
	Kind indirectKind
}

// IndirectData dereferences a 16-bit pointer combined with the data bank.
func IndirectData(base AddressMode) Indirect { return Indirect{base, indirectData} }

// IndirectProgram dereferences a 16-bit pointer combined with the
// program bank.
func IndirectProgram(base AddressMode) Indirect { return Indirect{base, indirectProgram} }

// IndirectLong dereferences a full 24-bit pointer.
func IndirectLong(base AddressMode) Indirect { return Indirect{base, indirectLong} }

func (m Indirect) Address(c *CPU) uint32 {
	indirectAddr := m.Base.Address(c)
	if m.Kind == indirectLong {
		return readDataWidth(c, indirectAddr, 3) & 0xffffff
	}
	offset16 := uint16(readDataWidth(c, indirectAddr, 2))
	bank := c.DataBank
	if m.Kind == indirectProgram {
		bank = c.ProgramBank
	}
	return absoluteOffset(bank, offset16)
}

func (m Indirect) ByteSize(c *CPU) int { return m.Base.ByteSize(c) }

func (m Indirect) Fetch(c *CPU) uint32   { return readData(c, m.Address(c)) }
func (m Indirect) Store(c *CPU, v uint32) { writeData(c, m.Address(c), v) }

func (m Indirect) Disasm(c *CPU) string {
	if m.Kind == indirectLong {
		return "[" + m.Base.Disasm(c) + "]"
	}
	return "(" + m.Base.Disasm(c) + ")"
}

// Static is a test-only fixture mode that ignores the CPU entirely and
// always resolves to a preconfigured address, byte size, fetched value,
// and disassembly text -- useful for exercising Indexed/Indirect
// composition and the cycle calculator in isolation from real operand
// decoding.
type Static struct {
	Addr   uint32
	Size   int
	Value  uint32
	Text   string
	stored *uint32
}

func (m *Static) Address(c *CPU) uint32 { return m.Addr }
func (m *Static) ByteSize(c *CPU) int    { return m.Size }
func (m *Static) Fetch(c *CPU) uint32    { return m.Value }
func (m *Static) Store(c *CPU, v uint32) {
	m.stored = &v
}
func (m *Static) Disasm(c *CPU) string { return m.Text }

// Stored returns the last value passed to Store, and whether Store was
// ever called.
func (m *Static) Stored() (uint32, bool) {
	if m.stored == nil {
		return 0, false
	}
	return *m.stored, true
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Flags is the subset of processor-status bits derivable from a bare
// produced value, per spec.md §4.2. Carry is never derived here: the
// Carry field is always false, and carry must be produced by the
// operation itself (e.g. Rotate's bitOut).
type Flags struct {
	Negative bool
	Overflow bool
	Zero     bool
	Carry    bool // always false; see DESIGN.md Open Questions
}

// CheckFlagsForValue derives Negative, Overflow, and Zero from a value
// already computed at the given width. Overflow here is a structural
// inspection of bit 6 (Bit8) or bit 14 (Bit16) of value -- not semantic
// ADC/SBC overflow; callers that need signed-overflow semantics compute
// it themselves (spec.md §4.2 and §9 Open Questions).
func CheckFlagsForValue(value uint32, width Width) Flags {
	return Flags{
		Negative: value&width.signBit() != 0,
		Overflow: value&width.overflowBit() != 0,
		Zero:     value == 0,
		Carry:    false,
	}
}

// Direction selects which way Rotate shifts a value.
type Direction byte

const (
	// Left rotates the value toward the high bit.
	Left Direction = iota

	// Right rotates the value toward the low bit.
	Right
)

// Rotate shifts value by one bit in the given direction at the given
// width and returns the new value along with the bit that fell off the
// end (spec.md §4.2). Right rotation is width-independent: bit 0 always
// falls out regardless of width, since there is no width-dependent top
// bit on that side.
func Rotate(value uint32, width Width, dir Direction) (newValue uint32, bitOut bool) {
	switch dir {
	case Left:
		bitOut = value&width.signBit() != 0
		newValue = (value << 1) & width.mask()
	case Right:
		bitOut = value&1 != 0
		newValue = value >> 1
	}
	return newValue, bitOut
}

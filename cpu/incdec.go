// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// IncDec implements INC/INX/INY and DEC/DEX/DEY (spec.md §4.5.4),
// grounded on the teacher's `inc`/`dec`/`inx`/`iny`/`dex`/`dey` methods
// in beevik-go6502/cpu/cpu.go. The register-form variants (INX/INY/
// DEX/DEY) size their operation by the index-register width rather than
// the accumulator width, per spec.md's "sz" column.
type IncDec struct {
	Mnemonic   string
	Mode       AddressMode
	Mods       []CycleMod
	Dir        incDecDir
	Width      func(c *CPU) Width
	DisasmText string // overrides Mnemonic+" "+Mode.Disasm when non-empty
}

type incDecDir byte

const (
	incDir incDecDir = iota
	decDir
)

func accWidth(c *CPU) Width   { return c.effAccSize() }
func indexWidth(c *CPU) Width { return c.effIndexSize() }

func (o IncDec) ByteSize(c *CPU) int { return o.Mode.ByteSize(c) + 1 }

func (o IncDec) TotalCycles(c *CPU) uint32 { return CalcCycles(c, o.Mods) }

func (o IncDec) Execute(c *CPU) {
	width := o.Width(c)
	mask := width.mask()
	value := o.Mode.Fetch(c)

	var result uint32
	switch o.Dir {
	case incDir:
		result = (value + 1) & mask
	case decDir:
		if value == 0 {
			result = mask
		} else {
			result = (value - 1) & mask
		}
	}

	flags := CheckFlagsForValue(result, width)
	o.Mode.Store(c, result)
	c.Negative = flags.Negative
	c.Zero = flags.Zero
}

func (o IncDec) Disasm(c *CPU) string {
	if o.DisasmText != "" {
		return o.DisasmText
	}
	return o.Mnemonic + " " + o.Mode.Disasm(c)
}

// decodeIncDec decodes opcode as INC, INX, INY, DEC, DEX, or DEY, per
// spec.md §4.5.4.
func decodeIncDec(opcode byte, c *CPU) (Opcode, bool) {
	switch opcode {
	case 0x1a:
		return IncDec{"INC", RegisterA, []CycleMod{Constant(2)}, incDir, accWidth, ""}, true
	case 0xee:
		return IncDec{"INC", AbsoluteData{}, []CycleMod{Constant(6), AccIs16Bit(2)}, incDir, accWidth, ""}, true
	case 0xe6:
		return IncDec{"INC", DirectPage{}, dpTsbMods(5), incDir, accWidth, ""}, true
	case 0xfe:
		return IncDec{"INC", Indexed{AbsoluteData{}, IndexX}, []CycleMod{Constant(7), AccIs16Bit(2)}, incDir, accWidth, ""}, true
	case 0xf6:
		return IncDec{"INC", Indexed{DirectPage{}, IndexX}, dpTsbMods(6), incDir, accWidth, ""}, true
	case 0xe8:
		return IncDec{"INC", RegisterX, []CycleMod{Constant(2)}, incDir, indexWidth, "INX"}, true
	case 0xc8:
		return IncDec{"INC", RegisterY, []CycleMod{Constant(2)}, incDir, indexWidth, "INY"}, true
	case 0x3a:
		return IncDec{"DEC", RegisterA, []CycleMod{Constant(2)}, decDir, accWidth, ""}, true
	case 0xce:
		return IncDec{"DEC", AbsoluteData{}, []CycleMod{Constant(6), AccIs16Bit(2)}, decDir, accWidth, ""}, true
	case 0xc6:
		return IncDec{"DEC", DirectPage{}, dpTsbMods(5), decDir, accWidth, ""}, true
	case 0xde:
		return IncDec{"DEC", Indexed{AbsoluteData{}, IndexX}, []CycleMod{Constant(7), AccIs16Bit(2)}, decDir, accWidth, ""}, true
	case 0xd6:
		return IncDec{"DEC", Indexed{DirectPage{}, IndexX}, dpTsbMods(6), decDir, accWidth, ""}, true
	case 0xca:
		return IncDec{"DEC", RegisterX, []CycleMod{Constant(2)}, decDir, indexWidth, "DEX"}, true
	case 0x88:
		return IncDec{"DEC", RegisterY, []CycleMod{Constant(2)}, decDir, indexWidth, "DEY"}, true
	}
	return nil, false
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elog provides module-tagged structured logging for
// go65816's ambient tooling (disassembler CLI, ROM loader). It is not
// imported by the cpu package itself, whose correctness must not
// depend on logging being enabled.
package elog

// Module identifies a logical subsystem a log entry belongs to, so a
// caller can enable or disable entire subsystems of logging without
// touching call sites.
type Module uint

// Standard modules. Additional ones can be registered with NewModule.
const (
	ModROM Module = iota + 1
	ModDisasm
	ModCPU
	ModConfig

	endStandardModules
)

var moduleNames = []string{
	"<error>", "rom", "disasm", "cpu", "config",
}

var moduleCount = endStandardModules

// Mask selects a set of modules to enable or disable together.
type Mask uint64

// MaskAll selects every registered module.
const MaskAll Mask = 0xffffffffffffffff

var debugMask Mask

// NewModule registers an additional module under name and returns its
// identifier.
func NewModule(name string) Module {
	mod := moduleCount
	moduleCount++
	moduleNames = append(moduleNames, name)
	return mod
}

// ModuleByName looks up a module previously registered under name.
func ModuleByName(name string) (Module, bool) {
	for i, n := range moduleNames {
		if n == name {
			return Module(i), true
		}
	}
	return 0, false
}

// ModuleNames lists every registered module name, standard modules
// first.
func ModuleNames() []string {
	return append([]string(nil), moduleNames[1:]...)
}

// Mask returns the single-module bitmask identifying mod.
func (mod Module) Mask() Mask { return 1 << Mask(mod) }

func (mod Module) String() string {
	if int(mod) < len(moduleNames) {
		return moduleNames[mod]
	}
	return "<error>"
}

// EnableDebugModules enables debug-level logging for every module in
// mask, in addition to any already enabled.
func EnableDebugModules(mask Mask) { debugMask |= mask }

// DisableDebugModules disables debug-level logging for every module in
// mask.
func DisableDebugModules(mask Mask) { debugMask &^= mask }

// debugEnabled reports whether mod's debug-level entries should be
// emitted. Info level and above are always emitted.
func debugEnabled(mod Module) bool { return debugMask&mod.Mask() != 0 }

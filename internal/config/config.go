// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads and saves go65816's TOML runtime configuration:
// the default ROM search path and disassembler display preferences.
// Ambient tooling only; the cpu package has no configuration of its own.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"go65816/internal/elog"
)

// Config is go65816's persisted runtime configuration.
type Config struct {
	Disasm  DisasmConfig  `toml:"disasm"`
	General GeneralConfig `toml:"general"`
}

// DisasmConfig holds disassembler display preferences. disasm.Disassemble
// does not read it; its output is the same whatever these fields hold.
type DisasmConfig struct {
	UppercaseMnemonics bool `toml:"uppercase_mnemonics"`
}

// GeneralConfig holds preferences not specific to any one package.
type GeneralConfig struct {
	DefaultROMPath string `toml:"default_rom_path"`
}

const filename = "config.toml"

// Dir is the OS-appropriate per-user configuration directory for
// go65816, created on first access.
var Dir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("go65816")
	if err := configdir.MakePath(dir); err != nil {
		elog.For(elog.ModConfig).Fatalf("failed to create config directory %s: %v", dir, err)
	}
	return dir
})

// LoadOrDefault loads the configuration from go65816's config
// directory, or returns a zero-value Config if none exists yet or it
// cannot be parsed.
func LoadOrDefault() Config {
	var cfg Config
	_, err := toml.DecodeFile(filepath.Join(Dir(), filename), &cfg)
	if err != nil {
		elog.For(elog.ModConfig).Debugf("no usable config file, using defaults: %v", err)
		return Config{}
	}
	return cfg
}

// Save writes cfg to go65816's config directory.
func Save(cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(Dir(), filename), buf.Bytes(), 0o644)
}

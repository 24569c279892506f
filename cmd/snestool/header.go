// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"go65816/internal/elog"
	"go65816/rom"
)

type headerCmd struct {
	ROMPath string `arg:"" name:"rom" help:"Path to the ROM image." type:"existingfile"`
}

func (c *headerCmd) Run() error {
	data, err := os.ReadFile(c.ROMPath)
	if err != nil {
		return err
	}
	if len(data) < rom.HeaderSize {
		return fmt.Errorf("%s is shorter than a %d-byte header", c.ROMPath, rom.HeaderSize)
	}

	h, err := rom.ParseHeader(data[:rom.HeaderSize])
	if err != nil {
		return err
	}
	elog.For(elog.ModROM).Infof("parsed header for %s", c.ROMPath)

	fmt.Printf("title:       %s\n", h.Title)
	fmt.Printf("makeup:      %s\n", h.MakeupName())
	fmt.Printf("rom size:    %d bytes\n", h.ROMSize)
	fmt.Printf("sram size:   %d bytes\n", h.SRAMSize)
	fmt.Printf("license id:  %d\n", h.LicenseID)
	fmt.Printf("version:     %d\n", h.Version)
	fmt.Printf("checksum ok: %v\n", h.ChecksumValid())

	nv := h.NativeVectors()
	fmt.Printf("native vectors:    reset=$%04X irq=$%04X nmi=$%04X abort=$%04X cop=$%04X brk=$%04X\n",
		nv.Reset, nv.IRQ, nv.NMI, nv.Abort, nv.COP, nv.Break)

	ev := h.EmulationVectors()
	fmt.Printf("emulation vectors: reset=$%04X irq=$%04X nmi=$%04X abort=$%04X cop=$%04X brk=$%04X\n",
		ev.Reset, ev.IRQ, ev.NMI, ev.Abort, ev.COP, ev.Break)

	return nil
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"go65816/hexdump"
)

type hexdumpCmd struct {
	ROMPath string `arg:"" name:"rom" help:"Path to the ROM image." type:"existingfile"`
	Offset  int64  `name:"offset" help:"Byte offset to start dumping from." default:"0"`
	Length  int64  `name:"length" help:"Number of bytes to dump." default:"256"`
}

func (c *hexdumpCmd) Run() error {
	data, err := os.ReadFile(c.ROMPath)
	if err != nil {
		return err
	}

	start := c.Offset
	if start < 0 || start > int64(len(data)) {
		start = int64(len(data))
	}
	end := start + c.Length
	if end > int64(len(data)) {
		end = int64(len(data))
	}

	return hexdump.Dump(os.Stdout, uint32(start), data[start:end])
}
